package dimacs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cnfkit/satcore/errs"
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		want Problem
	}{
		{
			name: "no vars or clauses",
			text: "c No vars or clauses\np cnf 0 0\n",
			want: Problem{NumVars: 0, Clauses: nil},
		},
		{
			name: "one var one clause",
			text: "c 1 var, 1 clause\np cnf 1 1\n1 0\n",
			want: Problem{NumVars: 1, Clauses: [][]int{{1}}},
		},
		{
			name: "clause spans lines",
			text: "p cnf 4 3\n1 3\n-4 0\n4 0 2\n-3 0\n",
			want: Problem{NumVars: 4, Clauses: [][]int{{1, 3, -4}, {4}, {2, -3}}},
		},
		{
			name: "percent trailer ends the formula",
			text: "c percent sign\np cnf 2 2\n1 2 0\n-1 2 0\n%\n1 2 3\nx y z\n",
			want: Problem{NumVars: 2, Clauses: [][]int{{1, 2}, {-1, 2}}},
		},
		{
			name: "empty clause is preserved",
			text: "p cnf 3 2\n1 0\n0\n",
			want: Problem{NumVars: 3, Clauses: [][]int{{1}, {}}},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.text))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(got, tt.want, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("Parse() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
	}{
		{"literal before header", "1 2 0\np cnf 2 1\n"},
		{"malformed header", "p cnf 2\n"},
		{"non-cnf format", "p sat 2 1\n"},
		{"literal exceeds declared vars", "p cnf 1 1\n2 0\n"},
		{"non-integer token", "p cnf 1 1\nfoo 0\n"},
		{"clause missing terminator", "p cnf 1 1\n1"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.text))
			if err == nil {
				t.Fatal("Parse: want error, got nil")
			}
			var pe *errs.ParseError
			if !isParseError(err, &pe) {
				t.Fatalf("Parse: got error %v (%T), want *errs.ParseError", err, err)
			}
		})
	}
}

func isParseError(err error, target **errs.ParseError) bool {
	pe, ok := err.(*errs.ParseError)
	if ok {
		*target = pe
	}
	return ok
}

func TestWriteRoundtrip(t *testing.T) {
	p := Problem{NumVars: 4, Clauses: [][]int{{1, 3, -4}, {4}, {2, -3}}}
	var b strings.Builder
	if err := Write(&b, p); err != nil {
		t.Fatal(err)
	}
	got, err := Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Parse(Write(p)): %v", err)
	}
	if diff := cmp.Diff(got, p, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("roundtrip mismatch (-got +want):\n%s", diff)
	}
}
