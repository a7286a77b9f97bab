// Package query holds the read-only search, ranking and filter views over a
// roster snapshot. Every function returns a new slice and leaves the
// snapshot untouched.
package query

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/padraicbc/jrabrowser/models"
	"github.com/padraicbc/jrabrowser/roster"
)

// Ranking names one of the ranking views.
type Ranking string

const (
	ByWinRate   Ranking = "win-rate"
	ByEarnings  Ranking = "earnings"
	ByRaceCount Ranking = "races"
)

// ErrUnknownRanking is returned by RankBy for names outside Rankings.
var ErrUnknownRanking = errors.New("unknown ranking")

// Rankings lists the ranking views in display order.
var Rankings = []Ranking{ByWinRate, ByEarnings, ByRaceCount}

// matcher reports whether a field contains the query, ignoring case.
// An empty query matches everything.
type matcher func(models.HorseRecord) bool

func contains(q string, field func(models.HorseRecord) string) matcher {
	fold := cases.Fold()
	needle := fold.String(q)
	return func(h models.HorseRecord) bool {
		return strings.Contains(fold.String(field(h)), needle)
	}
}

func jockeyOf(h models.HorseRecord) string { return h.Jockey }
func nameOf(h models.HorseRecord) string   { return h.Name }

func filter(snap *roster.Snapshot, keep ...matcher) []models.HorseRecord {
	out := []models.HorseRecord{}
	for _, h := range snap.Records() {
		ok := true
		for _, m := range keep {
			if !m(h) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, h)
		}
	}
	return out
}

// SearchByJockey returns records whose jockey contains q, in load order.
func SearchByJockey(snap *roster.Snapshot, q string) []models.HorseRecord {
	return filter(snap, contains(q, jockeyOf))
}

// SearchByHorse returns records whose name contains q, in load order.
func SearchByHorse(snap *roster.Snapshot, q string) []models.HorseRecord {
	return filter(snap, contains(q, nameOf))
}

// SearchByBoth returns records matching both the jockey and the horse query.
func SearchByBoth(snap *roster.Snapshot, jockeyQ, horseQ string) []models.HorseRecord {
	return filter(snap, contains(jockeyQ, jockeyOf), contains(horseQ, nameOf))
}

func rankBy[T cmp.Ordered](snap *roster.Snapshot, key func(models.HorseRecord) T) []models.HorseRecord {
	out := snap.Records()
	slices.SortStableFunc(out, func(a, b models.HorseRecord) int {
		return cmp.Compare(key(b), key(a))
	})
	return out
}

// RankByWinRate orders every record by win rate, highest first. Ties keep
// load order.
func RankByWinRate(snap *roster.Snapshot) []models.HorseRecord {
	return rankBy(snap, func(h models.HorseRecord) float64 { return h.WinRate })
}

// RankByEarnings orders every record by earnings in yen, highest first.
func RankByEarnings(snap *roster.Snapshot) []models.HorseRecord {
	return rankBy(snap, func(h models.HorseRecord) int64 { return h.Earnings })
}

// RankByRaceCount orders every record by races run, most first.
func RankByRaceCount(snap *roster.Snapshot) []models.HorseRecord {
	return rankBy(snap, func(h models.HorseRecord) int { return h.Races })
}

// RankBy dispatches on a ranking name.
func RankBy(snap *roster.Snapshot, r Ranking) ([]models.HorseRecord, error) {
	switch r {
	case ByWinRate:
		return RankByWinRate(snap), nil
	case ByEarnings:
		return RankByEarnings(snap), nil
	case ByRaceCount:
		return RankByRaceCount(snap), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownRanking, r)
}
