package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/padraicbc/jrabrowser/models"
	"github.com/padraicbc/jrabrowser/roster"
)

// ErrBadYearRange is returned for year ranges not of the form "1990-1999".
var ErrBadYearRange = errors.New("year range must look like 1990-1999")

// Grid holds the data-grid filters. Zero values disable a filter.
type Grid struct {
	FromYear int
	ToYear   int
	Breed    string
}

// ParseYearRange parses an inclusive "from-to" birth-year range.
// An empty string yields no bounds.
func ParseYearRange(s string) (from, to int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil
	}
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadYearRange, s)
	}
	if from, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadYearRange, s)
	}
	if to, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadYearRange, s)
	}
	if from > to {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadYearRange, s)
	}
	return from, to, nil
}

// Filter returns records born within the grid's year range and of its breed,
// in load order. The breed must match exactly.
func Filter(snap *roster.Snapshot, g Grid) []models.HorseRecord {
	var keep []matcher
	if g.FromYear != 0 || g.ToYear != 0 {
		keep = append(keep, func(h models.HorseRecord) bool {
			return h.BirthYear >= g.FromYear && (g.ToYear == 0 || h.BirthYear <= g.ToYear)
		})
	}
	if g.Breed != "" {
		keep = append(keep, func(h models.HorseRecord) bool { return h.Breed == g.Breed })
	}
	return filter(snap, keep...)
}

// Breeds returns the distinct breeds in load order, for populating the grid's
// breed selector.
func Breeds(snap *roster.Snapshot) []string {
	seen := map[string]bool{}
	var out []string
	for _, h := range snap.Records() {
		if !seen[h.Breed] {
			seen[h.Breed] = true
			out = append(out, h.Breed)
		}
	}
	return out
}
