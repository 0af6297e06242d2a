package repository

import (
	"fmt"
	"strings"

	"github.com/cinelist/cinelist-api/internal/domain"
)

// predicate is one optional filter fragment. A nil predicate stands for an
// absent filter dimension and renders to nothing; present fragments are
// ANDed in declaration order. Values always travel as bind parameters.
type predicate struct {
	// format holds exactly one %s, replaced by the fragment's numbered
	// placeholder when rendered.
	format string
	arg    any
}

func cinemaIn(ids []int) *predicate {
	if len(ids) == 0 {
		return nil
	}

	return &predicate{format: "st.cinema_id = ANY(%s)", arg: ids}
}

func versionPrefixAny(categories []string) *predicate {
	if len(categories) == 0 {
		return nil
	}

	patterns := make([]string, len(categories))
	for i, category := range categories {
		patterns[i] = category + "%"
	}

	return &predicate{format: "st.version LIKE ANY(%s)", arg: patterns}
}

// hasAnyGenre keeps movies with at least one matching genre row. One match
// suffices, the movie does not need all of the given genres.
func hasAnyGenre(ids []int) *predicate {
	if len(ids) == 0 {
		return nil
	}

	return &predicate{
		format: "EXISTS (SELECT 1 FROM movies_genres mg2 WHERE mg2.movie_uuid = m.uuid AND mg2.genre_id = ANY(%s))",
		arg:    ids,
	}
}

// renderPredicates appends each present fragment to the SQL being built,
// prefixing every fragment with sep and numbering its placeholder after the
// arguments collected so far.
func renderPredicates(sep string, predicates []*predicate, args []any) (string, []any) {
	var sb strings.Builder

	for _, p := range predicates {
		if p == nil {
			continue
		}

		args = append(args, p.arg)
		sb.WriteString(sep)
		sb.WriteString(fmt.Sprintf(p.format, fmt.Sprintf("$%d", len(args))))
	}

	return sb.String(), args
}

func showtimePredicates(filters domain.ShowtimeFilters) []*predicate {
	return []*predicate{
		cinemaIn(filters.CinemaIDs),
		versionPrefixAny(filters.VersionCategories),
	}
}
