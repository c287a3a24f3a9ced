package cdcl

// propagate drains the trail from qHead onward, so each call only
// processes literals assigned since the last one: qHead marks the
// boundary between already-propagated and newly-assigned literals, and
// nothing before it needs to be revisited.
//
// For each newly-true literal it walks the watch list of its negation,
// the set of clauses that might have just been falsified. It returns the
// index of a falsified clause, or noReason if propagation reaches a
// fixpoint with no conflict.
func (s *solver) propagate() clauseIdx {
	for s.qHead < len(s.trail) {
		p := s.trail[s.qHead]
		s.qHead++
		neg := p.neg()

		ws := s.watches[neg]
		i := 0
		for i < len(ws) {
			ci := ws[i]
			cls := &s.arena[ci]

			// Normalize so lits[1] is the literal that just went false
			// (the one currently watching `neg`).
			if cls.lits[0] == neg {
				cls.lits[0], cls.lits[1] = cls.lits[1], cls.lits[0]
			}
			other := cls.lits[0]
			if s.litTrue(other) {
				// Already satisfied by the other watch; nothing to do.
				i++
				continue
			}

			replaced := false
			for j := 2; j < len(cls.lits); j++ {
				cand := cls.lits[j]
				if !s.litFalse(cand) {
					cls.lits[1], cls.lits[j] = cls.lits[j], cls.lits[1]
					s.watches[cand] = append(s.watches[cand], ci)
					ws[i] = ws[len(ws)-1]
					ws = ws[:len(ws)-1]
					s.watches[neg] = ws
					replaced = true
					break
				}
			}
			if replaced {
				continue
			}

			// No replacement: the clause is unit on `other`, or `other`
			// is also false and we have a conflict.
			if s.litFalse(other) {
				s.watches[neg] = ws
				return ci
			}
			s.assign(other, s.level, ci)
			s.stats.Propagations++
			i++
		}
	}
	return noReason
}
