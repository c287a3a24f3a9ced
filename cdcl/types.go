// Package cdcl implements a Conflict-Driven Clause Learning SAT solver:
// two-watched-literals unit propagation, 1-UIP conflict analysis, and
// non-chronological backtracking over a monotonically growing clause
// database.
package cdcl

// lit is a packed literal: variable index (0-based) in the high bits, sign
// in bit 0 (2*var + sign). It is a named type so arithmetic on it can't be
// confused with a raw, signed, 1-indexed DIMACS integer.
type lit int32

const litUndef lit = -1

func mkLit(v int, negated bool) lit {
	l := lit(v) << 1
	if negated {
		l |= 1
	}
	return l
}

// fromDIMACS converts a signed, 1-indexed DIMACS literal into the packed,
// 0-indexed internal encoding.
func fromDIMACS(x int) lit {
	v := x
	neg := false
	if v < 0 {
		neg = true
		v = -v
	}
	return mkLit(v-1, neg)
}

func (l lit) variable() int  { return int(l >> 1) }
func (l lit) negated() bool  { return l&1 == 1 }
func (l lit) neg() lit       { return l ^ 1 }
func (l lit) toDIMACS() int  { return signedVar(l.variable()+1, l.negated()) }
func signedVar(v int, neg bool) int {
	if neg {
		return -v
	}
	return v
}

// clauseRec is an entry in the append-only clause arena. The first two
// literals are always the watched pair (invariant W1): for clauses of
// length >= 2, lits[0] and lits[1] are watched; a clause of length 1 has
// no watches at all (it is only ever consumed as a reason).
type clauseRec struct {
	lits    []lit
	learned bool
}

// clauseIdx indexes into the arena. -1 ("noReason") marks a decision
// literal, which has no reason clause.
type clauseIdx int32

const noReason clauseIdx = -1

// varState is a variable's assignment, decision level, and reason clause,
// collapsed into one struct for cache locality.
type varState struct {
	assigned bool
	value    bool // meaningful only if assigned; true means the variable is true
	level    int
	reason   clauseIdx
}

// Stats are purely informational counters accumulated during a solve.
type Stats struct {
	Decisions    int64
	Propagations int64
	Conflicts    int64
	Learned      int64
}

// Result is the outcome of a solve.
type Result struct {
	Sat   bool
	Model []int // 1-indexed, signed; only meaningful when Sat is true
	Stats Stats
}
