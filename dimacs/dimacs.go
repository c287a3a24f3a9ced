// Package dimacs reads and writes propositional CNF formulas in the DIMACS
// format used by SAT competitions and solvers.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cnfkit/satcore/errs"
)

// Problem is a CNF formula: NumVars variables numbered 1..NumVars and a list
// of clauses, each a slice of signed integers (0 never appears as a
// literal internally; it is only the DIMACS clause terminator).
type Problem struct {
	NumVars int
	Clauses [][]int
}

// Parse reads a DIMACS CNF stream. Comment lines ('c' prefix) and blank
// lines are ignored anywhere in the file. The header line "p cnf V C" must
// appear before any literal and declares the variable/clause counts; a
// trailing '%' line (as emitted by some generators) ends the formula.
//
// Parse returns an *errs.ParseError if a literal appears before the header,
// the header is malformed, a token isn't a signed integer, or a literal's
// magnitude exceeds the declared variable count.
func Parse(r io.Reader) (Problem, error) {
	var p Problem
	headerSeen := false
	var clause []int
	lineNo := 0

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for s.Scan() {
		lineNo++
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if headerSeen {
				return Problem{}, errs.NewParseError(lineNo, "multiple header lines")
			}
			if len(clause) > 0 || len(p.Clauses) > 0 {
				return Problem{}, errs.NewParseError(lineNo, "header line appears after clauses")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return Problem{}, errs.NewParseError(lineNo, fmt.Sprintf("malformed header %q", line))
			}
			numVars, err := strconv.Atoi(fields[2])
			if err != nil || numVars < 0 {
				return Problem{}, errs.NewParseError(lineNo, fmt.Sprintf("invalid variable count %q", fields[2]))
			}
			numClauses, err := strconv.Atoi(fields[3])
			if err != nil || numClauses < 0 {
				return Problem{}, errs.NewParseError(lineNo, fmt.Sprintf("invalid clause count %q", fields[3]))
			}
			p.NumVars = numVars
			p.Clauses = make([][]int, 0, numClauses)
			headerSeen = true
			continue
		}
		if !headerSeen {
			return Problem{}, errs.NewParseError(lineNo, "literal appears before header")
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return Problem{}, errs.NewParseError(lineNo, fmt.Sprintf("non-integer token %q", field))
			}
			if n == 0 {
				p.Clauses = append(p.Clauses, clause)
				clause = nil
				continue
			}
			if abs(n) > p.NumVars {
				return Problem{}, errs.NewParseError(lineNo, fmt.Sprintf("literal %d exceeds declared variable count %d", n, p.NumVars))
			}
			clause = append(clause, n)
		}
	}
	if err := s.Err(); err != nil {
		return Problem{}, errs.IOError{Cause: err}
	}
	if len(clause) > 0 {
		return Problem{}, errs.NewParseError(lineNo, "clause missing terminating 0")
	}
	if !headerSeen {
		return Problem{}, errs.NewParseError(lineNo, "missing header line")
	}
	return p, nil
}

// Write serializes a Problem back into DIMACS form, one clause per line.
func Write(w io.Writer, p Problem) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", p.NumVars, len(p.Clauses)); err != nil {
		return err
	}
	for _, cls := range p.Clauses {
		var b strings.Builder
		for i, lit := range cls {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", lit)
		}
		if len(cls) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("0\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
