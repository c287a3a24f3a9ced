// Package report formats solver verdicts the same way across all three
// engines and the CLI driver.
package report

import (
	"strconv"
	"strings"
)

// FormatSAT renders the verdict line "SAT" followed, on a second line, by
// the model as "<lit> <lit> ... 0". Variables are expected
// in ascending order starting at 1; unassigned variables should already
// have been defaulted to their positive literal by the caller.
func FormatSAT(model []int) string {
	var b strings.Builder
	b.WriteString("SAT\n")
	for i, lit := range model {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(lit))
	}
	if len(model) > 0 {
		b.WriteByte(' ')
	}
	b.WriteString("0")
	return b.String()
}

// FormatUNSAT renders the UNSAT verdict.
func FormatUNSAT() string { return "UNSAT" }
