package dp

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// outcome is the result of one variable-elimination attempt.
type outcome int

const (
	// skipped means the atom lacks clauses of one polarity and cannot
	// be resolved on this round; the caller should try the next atom.
	skipped outcome = iota
	// eliminated means the atom was resolved away and its clauses
	// replaced by their resolvents.
	eliminated
	// propagated means a unit resolvent was derived; the caller must
	// re-run unit propagation before resolving further.
	propagated
	// unsat means the empty clause was derived.
	unsat
)

func (o outcome) String() string {
	return [...]string{"skipped", "eliminated", "propagated", "unsat"}[o]
}

// eliminationOrder returns the formula's atoms ordered by descending
// occurrence count, ties broken by ascending atom value. Eliminating
// busy atoms first tends to shrink the formula sooner and keeps the
// resolvent blow-up in check.
func (s *solver) eliminationOrder() []int {
	count := make(map[int]int)
	for _, c := range s.f.Clauses() {
		for l := range c {
			count[l.Atom()]++
		}
	}
	atoms := make([]int, 0, len(count))
	for a := range count {
		atoms = append(atoms, a)
	}
	sort.Slice(atoms, func(i, j int) bool {
		if count[atoms[i]] != count[atoms[j]] {
			return count[atoms[i]] > count[atoms[j]]
		}
		return atoms[i] < atoms[j]
	})
	return atoms
}

// clausesWith returns the clauses currently containing l.
func (s *solver) clausesWith(l Literal) []Clause {
	var out []Clause
	for _, c := range s.f.Clauses() {
		if c.Has(l) {
			out = append(out, c)
		}
	}
	return out
}

// resolve computes the resolvent of two clauses over the given atom:
// the union of their literals with both polarities of the atom removed
// from both sides.
func resolve(c1, c2 Clause, atom int) Clause {
	pos, neg := Literal(atom), Literal(-atom)
	r := make(Clause, len(c1)+len(c2))
	for l := range c1 {
		if l != pos && l != neg {
			r[l] = struct{}{}
		}
	}
	for l := range c2 {
		if l != pos && l != neg {
			r[l] = struct{}{}
		}
	}
	return r
}

// eliminate attempts to remove atom from the formula by resolving every
// clause containing its positive literal against every clause
// containing its negative literal. Completeness of the refutation
// depends on covering every such pair.
func (s *solver) eliminate(atom int) outcome {
	pos := s.clausesWith(Literal(atom))
	neg := s.clausesWith(Literal(-atom))
	if len(pos) == 0 || len(neg) == 0 {
		return skipped
	}
	for _, c1 := range pos {
		for _, c2 := range neg {
			r := resolve(c1, c2, atom)
			switch {
			case r.Empty():
				logrus.Debugf("derived the empty clause resolving %s with %s", c1, c2)
				return unsat
			case r.Unit():
				// Record the forced value and let propagation run
				// before any more resolvents are generated; it may
				// simplify away the need for them entirely.
				s.falseLits[r.Lit().Negate()] = struct{}{}
				logrus.Debugf("derived unit resolvent %s on atom %d", r, atom)
				return propagated
			case r.Tautological():
				// Contributes nothing.
			default:
				s.f.Add(r)
			}
		}
	}
	for _, c := range pos {
		s.f.Remove(c)
	}
	for _, c := range neg {
		s.f.Remove(c)
	}
	posLit, negLit := Literal(atom), Literal(-atom)
	delete(s.universe, posLit)
	delete(s.universe, negLit)
	delete(s.falseLits, posLit)
	delete(s.falseLits, negLit)
	return eliminated
}
