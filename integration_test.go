package satcore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cnfkit/satcore/cdcl"
	"github.com/cnfkit/satcore/dimacs"
	"github.com/cnfkit/satcore/dp"
	"github.com/cnfkit/satcore/dpll"
	"github.com/cnfkit/satcore/internal/generate"
)

// bruteForceSat is a reference oracle for small instances, used to check
// that each engine's verdict agrees with exhaustive enumeration.
func bruteForceSat(p dimacs.Problem) bool {
	n := p.NumVars
	for assignment := 0; assignment < 1<<uint(n); assignment++ {
		ok := true
	clauseLoop:
		for _, cls := range p.Clauses {
			for _, lit := range cls {
				v := lit
				neg := v < 0
				if neg {
					v = -v
				}
				bit := assignment & (1 << uint(v-1))
				if (bit != 0) != neg {
					continue clauseLoop
				}
			}
			ok = false
			break
		}
		if ok {
			return true
		}
	}
	return false
}

func satisfies(clauses [][]int, model []int) bool {
	set := make(map[int]bool, len(model))
	for _, lit := range model {
		set[lit] = true
	}
clauseLoop:
	for _, cls := range clauses {
		for _, lit := range cls {
			if set[lit] {
				continue clauseLoop
			}
		}
		return false
	}
	return true
}

func TestEngineEquivalence(t *testing.T) {
	rng := generate.NewRand(42)
	for i := 0; i < 300; i++ {
		p := generate.Random(rng, 7, 18, 1, 4)

		cdclRes, err := cdcl.Solve(context.Background(), p)
		require.NoError(t, err)
		dpllRes := dpll.Solve(p)
		dpRes := dp.Solve(p)

		require.Equalf(t, cdclRes.Sat, dpllRes.Sat, "CDCL/DPLL disagree on %v", p.Clauses)
		require.Equalf(t, cdclRes.Sat, dpRes, "CDCL/DP disagree on %v", p.Clauses)

		if cdclRes.Sat {
			require.Truef(t, satisfies(p.Clauses, cdclRes.Model), "CDCL model invalid for %v", p.Clauses)
			require.Truef(t, satisfies(p.Clauses, dpllRes.Model), "DPLL model invalid for %v", p.Clauses)
		}
	}
}

func TestEngineAgreementAgainstBruteForce(t *testing.T) {
	rng := generate.NewRand(7)
	for i := 0; i < 50; i++ {
		p := generate.Random(rng, 5, 10, 1, 3)
		want := bruteForceSat(p)

		cdclRes, err := cdcl.Solve(context.Background(), p)
		require.NoError(t, err)
		require.Equal(t, want, cdclRes.Sat)
		require.Equal(t, want, dpll.Solve(p).Sat)
		require.Equal(t, want, dp.Solve(p))
	}
}

func TestPigeonholeUnsatAllEngines(t *testing.T) {
	for _, holes := range []int{2, 3} {
		p := generate.Pigeonhole(holes)

		cdclRes, err := cdcl.Solve(context.Background(), p)
		require.NoError(t, err)
		require.False(t, cdclRes.Sat)
		require.False(t, dpll.Solve(p).Sat)
		require.False(t, dp.Solve(p))
	}
}

func TestTriangleColoringSatAllEngines(t *testing.T) {
	p := generate.TriangleColoring()

	cdclRes, err := cdcl.Solve(context.Background(), p)
	require.NoError(t, err)
	require.True(t, cdclRes.Sat)
	require.True(t, satisfies(p.Clauses, cdclRes.Model))

	dpllRes := dpll.Solve(p)
	require.True(t, dpllRes.Sat)
	require.True(t, satisfies(p.Clauses, dpllRes.Model))

	require.True(t, dp.Solve(p))
}
