package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMinLength = "must be at least %s characters long"
	ErrMaxLength = "must be at most %s characters long"
	ErrMinValue  = "must be at least %s"
	ErrOneOf     = "must be one of: %s"
	ErrDate      = "must be a date in YYYY-MM-DD format"
	ErrImdbID    = "must be an IMDb title ID (tt followed by digits)"
)

var imdbIDRgx = regexp.MustCompile(`^tt\d{7,8}$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("imdb_id", validateImdbID)

	return validator
}

func validateImdbID(fl validator.FieldLevel) bool {
	return imdbIDRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		if err.Kind().String() == "string" {
			return fmt.Sprintf(ErrMinLength, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "datetime":
		return ErrDate
	case "imdb_id":
		return ErrImdbID
	default:
		return "is invalid"
	}
}
