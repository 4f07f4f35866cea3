package dss

import (
	"fmt"
	"sort"
	"time"
)

// GroupCount is one bucket of a grouped count: a categorical key (specialty,
// appointment type, month label, patient name) and how many records fell in.
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Rate formats num/den as a percentage with two decimals. A zero denominator
// yields the bare "0%" rather than dividing.
func Rate(num, den int) string {
	if den == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", float64(num)/float64(den)*100)
}

// TopN returns the n largest buckets, descending by count. The sort is
// stable, so ties keep the input order; callers that need a deterministic
// tie-break supply rows pre-ordered by their identifier.
func TopN(rows []GroupCount, n int) []GroupCount {
	out := make([]GroupCount, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// MonthKey labels a timestamp with its calendar month bucket.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Money formats a currency amount with the clinic's display convention.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
