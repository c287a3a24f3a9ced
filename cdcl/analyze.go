package cdcl

// analyze derives a 1-UIP learned clause and backjump level from a
// conflict. It walks the trail from the tail, resolving the conflicting
// clause against each literal's reason clause in turn until exactly one
// literal from the current decision level remains unresolved (the
// first unique implication point); a `seen` marker on each variable
// tracks what has already been folded into the resolvent so nothing is
// counted twice.
//
// learned[0] is the asserting literal (the negated UIP); if len(learned)
// > 1, learned[1] is the remaining literal with the highest decision
// level, which becomes the clause's second watch and whose level is the
// returned backjump level.
func (s *solver) analyze(conflict clauseIdx) (learned []lit, backjumpLevel int) {
	for i := range s.seen {
		s.seen[i] = false
	}

	currLevel := s.level
	pathCount := 0
	p := litUndef
	learned = append(learned, 0) // placeholder for the asserting literal
	idx := len(s.trail) - 1
	reason := conflict

	for {
		for _, q := range s.arena[reason].lits {
			if p != litUndef && q.variable() == p.variable() {
				continue // skip the literal this reason clause justifies
			}
			v := q.variable()
			if s.seen[v] || s.vars[v].level == 0 {
				continue
			}
			s.seen[v] = true
			if s.vars[v].level >= currLevel {
				pathCount++
			} else {
				learned = append(learned, q)
			}
		}

		for !s.seen[s.trail[idx].variable()] {
			idx--
		}
		p = s.trail[idx]
		s.seen[p.variable()] = false
		pathCount--
		idx--

		if pathCount == 0 {
			break
		}
		reason = s.vars[p.variable()].reason
	}

	learned[0] = p.neg()

	backjumpLevel = 0
	swapAt := -1
	for i := 1; i < len(learned); i++ {
		lv := s.vars[learned[i].variable()].level
		if lv > backjumpLevel {
			backjumpLevel = lv
			swapAt = i
		}
	}
	if swapAt > 1 {
		learned[1], learned[swapAt] = learned[swapAt], learned[1]
	}
	return learned, backjumpLevel
}
