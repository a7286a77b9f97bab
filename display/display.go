// Package display formats roster values for people. The roster and query
// packages never call it; numbers stay raw until they reach a renderer.
package display

import (
	"fmt"
	"strconv"
)

// MillionYen is the label used for earnings shown in millions of yen.
const MillionYen = "百万円"

// Earnings renders yen as millions with one decimal place, e.g. "993.3百万円".
func Earnings(yen int64) string {
	return fmt.Sprintf("%.1f%s", float64(yen)/1_000_000, MillionYen)
}

// WinRate renders a percentage as stored, e.g. "30.61%".
func WinRate(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// Career renders a career length in years.
func Career(years int) string {
	return strconv.Itoa(years) + "年"
}
