package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

// readStrings returns all values of a repeatable query parameter. Absent
// key means an empty, unrestricted filter.
func readStrings(qs url.Values, key string) []string {
	return qs[key]
}

func readInts(qs url.Values, key string) ([]int, error) {
	values := qs[key]

	ints := make([]int, 0, len(values))
	for _, value := range values {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer, got %q", key, value)
		}
		ints = append(ints, n)
	}

	return ints, nil
}

// today truncates the given instant to its calendar day. The comparison
// instant always comes in as an argument so handlers stay deterministic
// under test.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
