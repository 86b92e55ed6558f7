package engine

import (
	"cmp"
	"slices"
	"strconv"
)

// Stat is a summary value that may be unavailable, for example the mean of
// an empty set.
type Stat struct {
	Value     float64
	Available bool
}

// String renders the value, or "" when unavailable.
func (s Stat) String() string {
	if !s.Available {
		return ""
	}
	return FormatAmount(s.Value)
}

// Summary holds the statistics appended to the report footer.
type Summary struct {
	SecondHighest Stat
	Average       Stat
	// Count is the number of gross salaries the statistics were computed over.
	Count int
}

// Summarize computes the footer statistics over values.
//
// SecondHighest is the value in position two of a descending sort, so two
// rows tied for the top both count. With a single value it is that value;
// with none it is unavailable. Average is the arithmetic mean, unavailable
// for an empty input.
func Summarize(values []float64) Summary {
	s := Summary{Count: len(values)}
	if len(values) == 0 {
		return s
	}

	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b float64) int { return cmp.Compare(b, a) })

	if len(sorted) > 1 {
		s.SecondHighest = Stat{Value: sorted[1], Available: true}
	} else {
		s.SecondHighest = Stat{Value: sorted[0], Available: true}
	}

	var total float64
	for _, v := range values {
		total += v
	}
	s.Average = Stat{Value: total / float64(len(values)), Available: true}

	return s
}

// FormatAmount renders f with the fewest digits that parse back to the
// same float64, without exponent notation.
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
