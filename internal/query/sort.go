package query

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SortBy returns a stably sorted copy of items ordered by the extracted
// key. Stability is part of the contract: equal keys keep their input
// order, so repeated queries are deterministic. Currency-formatted strings
// ("$800K", "$1.2M") compare by numeric magnitude, not lexically.
func SortBy[T any](items []T, key func(T) any, desc bool) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		c := Compare(key(out[i]), key(out[j]))
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Compare orders two field values: numbers numerically, times
// chronologically, currency strings by parsed magnitude and everything
// else as case-folded strings. Mixed types fall back to string compare.
func Compare(a, b any) int {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(strings.ToLower(str(a)), strings.ToLower(str(b)))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		return ParseCurrency(n)
	}
	return 0, false
}

func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}
