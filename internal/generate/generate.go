// Package generate produces structured and random CNF instances: the
// pigeonhole and triangle-coloring encoders and a uniform random k-CNF
// generator. These exercise the solving engines against formulas with
// known verdicts and known-hard structure, without hand-writing CNF
// fixtures.
package generate

import (
	"math/rand"

	"github.com/cnfkit/satcore/dimacs"
)

// NewRand builds a seeded random source so generated instances are
// reproducible across test runs.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Pigeonhole builds PHP(holes): holes+1 pigeons into holes holes, which is
// always UNSAT. Variable x[i][j] (pigeon i in hole j, both 0-indexed)
// is numbered i*holes + j + 1.
func Pigeonhole(holes int) dimacs.Problem {
	pigeons := holes + 1
	v := func(i, j int) int { return i*holes + j + 1 }

	var clauses [][]int
	for i := 0; i < pigeons; i++ {
		cls := make([]int, holes)
		for j := 0; j < holes; j++ {
			cls[j] = v(i, j)
		}
		clauses = append(clauses, cls)
	}
	for j := 0; j < holes; j++ {
		for i := 0; i < pigeons; i++ {
			for k := i + 1; k < pigeons; k++ {
				clauses = append(clauses, []int{-v(i, j), -v(k, j)})
			}
		}
	}
	return dimacs.Problem{NumVars: holes * pigeons, Clauses: clauses}
}

// TriangleColoring builds the 3-coloring instance for K3 (three mutually
// adjacent nodes, three colors), which is always SAT. Variable
// c[node][color] (both 0-indexed) is numbered node*3 + color + 1.
func TriangleColoring() dimacs.Problem {
	c := func(node, color int) int { return node*3 + color + 1 }

	var clauses [][]int
	for node := 0; node < 3; node++ {
		clauses = append(clauses, []int{c(node, 0), c(node, 1), c(node, 2)})
		clauses = append(clauses, []int{-c(node, 0), -c(node, 1)})
		clauses = append(clauses, []int{-c(node, 0), -c(node, 2)})
		clauses = append(clauses, []int{-c(node, 1), -c(node, 2)})
	}
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}}
	for _, e := range edges {
		for color := 0; color < 3; color++ {
			clauses = append(clauses, []int{-c(e[0], color), -c(e[1], color)})
		}
	}
	return dimacs.Problem{NumVars: 9, Clauses: clauses}
}

// Random produces numClauses clauses over numVars variables, each of
// uniformly random length in [kMin, kMax], with distinct variables and
// uniformly random polarities.
func Random(rng *rand.Rand, numVars, numClauses, kMin, kMax int) dimacs.Problem {
	if kMax > numVars {
		kMax = numVars
	}
	if kMin > kMax {
		kMin = kMax
	}
	clauses := make([][]int, numClauses)
	for i := range clauses {
		k := kMin
		if kMax > kMin {
			k += rng.Intn(kMax - kMin + 1)
		}
		vars := rng.Perm(numVars)[:k]
		cls := make([]int, k)
		for j, v := range vars {
			lit := v + 1
			if rng.Intn(2) == 1 {
				lit = -lit
			}
			cls[j] = lit
		}
		clauses[i] = cls
	}
	return dimacs.Problem{NumVars: numVars, Clauses: clauses}
}
