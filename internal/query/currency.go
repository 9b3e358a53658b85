// Package query implements the derived-view computations over store
// collections: free-text search, filter conjunction, date buckets,
// currency-aware stable sorting, pagination and aggregate stats. Everything
// here is a pure function; the store is never mutated and nothing is cached.
package query

import (
	"strconv"
	"strings"
)

// magnitude suffixes accepted in display values like "$1.2M"
var magnitudes = map[byte]float64{
	'K': 1_000, 'k': 1_000,
	'M': 1_000_000, 'm': 1_000_000,
	'B': 1_000_000_000, 'b': 1_000_000_000,
}

// ParseCurrency converts a display value such as "$1.2M", "$800K" or
// "$1,250,000" into its numeric magnitude. Reports false when the string
// is not a currency-looking value.
func ParseCurrency(s string) (float64, bool) {
	v := strings.TrimSpace(s)
	if !strings.HasPrefix(v, "$") {
		return 0, false
	}
	v = strings.TrimPrefix(v, "$")
	v = strings.ReplaceAll(v, ",", "")
	if v == "" {
		return 0, false
	}

	// Look at the raw final byte only. Case-folding the whole string first
	// can change its byte length for some runes, which would make this
	// index unsafe; multibyte trailers simply fail ParseFloat below.
	mult := 1.0
	if m, ok := magnitudes[v[len(v)-1]]; ok {
		mult = m
		v = v[:len(v)-1]
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n * mult, true
}
