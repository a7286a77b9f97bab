package roster

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Raw is one loosely-typed source record as decoded from JSON.
type Raw map[string]any

// Unknown is the value given to text fields no source key supplied.
const Unknown = "unknown"

type field int

const (
	fieldName field = iota
	fieldJockey
	fieldBirthYear
	fieldWins
	fieldRaces
	fieldWinRate
	fieldBreed
	fieldColor
	fieldTrainer
	fieldCareerLength
	fieldEarnings
	fieldHeightNum
	fieldHeightText
	fieldWeightNum
	fieldWeightText
)

// sourceKeys lists, per canonical field, the source keys to try in order.
// The first key holding a usable value wins.
var sourceKeys = map[field][]string{
	fieldName:         {"马匹名称（日文名）", "name"},
	fieldJockey:       {"骑师姓名", "jockey"},
	fieldBirthYear:    {"出生年份", "birthYear", "year"},
	fieldWins:         {"胜场数", "wins"},
	fieldRaces:        {"参赛数", "races"},
	fieldWinRate:      {"胜率", "winRate"},
	fieldBreed:        {"品种", "breed"},
	fieldColor:        {"毛色", "color"},
	fieldTrainer:      {"训练师", "trainer"},
	fieldCareerLength: {"生涯年数", "careerLength"},
	fieldEarnings:     {"奖金", "总奖金", "奖金(円)", "earnings"},
	fieldHeightNum:    {"身高"},
	fieldHeightText:   {"height"},
	fieldWeightNum:    {"体重"},
	fieldWeightText:   {"weight"},
}

// resolve walks the candidate keys for f and returns the first value conv
// accepts. Absent keys and JSON nulls are skipped; zero values are not.
func resolve[T any](r Raw, f field, conv func(any) (T, bool)) (T, bool) {
	for _, k := range sourceKeys[f] {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		if out, ok := conv(v); ok {
			return out, true
		}
	}
	var zero T
	return zero, false
}

func stringOr(r Raw, f field, def string) string {
	if s, ok := resolve(r, f, asString); ok {
		return s
	}
	return def
}

func countOr(r Raw, f field) int {
	if n, ok := resolve(r, f, asCount); ok {
		return n
	}
	return 0
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

func asFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// asCount accepts non-negative whole numbers that fit an int, truncating
// fractions.
func asCount(v any) (int, bool) {
	f, ok := asFloat(v)
	if !ok || f < 0 || f >= float64(math.MaxInt) {
		return 0, false
	}
	return int(f), true
}

func asYen(v any) (int64, bool) {
	f, ok := asFloat(v)
	// float64(math.MaxInt64) rounds up to 2^63, which no int64 holds.
	if !ok || f < 0 || math.Round(f) >= float64(math.MaxInt64) {
		return 0, false
	}
	return int64(math.Round(f)), true
}

// measure renders a numeric source value with its unit, otherwise falls
// back to the pre-formatted text field.
func measure(r Raw, num, text field, unit string) string {
	if f, ok := resolve(r, num, asFloat); ok {
		return fmt.Sprintf("%s%s", strconv.FormatFloat(f, 'f', -1, 64), unit)
	}
	return stringOr(r, text, Unknown)
}
