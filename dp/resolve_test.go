package dp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestResolve(t *testing.T) {
	for _, tt := range []struct {
		c1, c2 Clause
		atom   int
		want   []Literal
	}{
		// (A ∨ p), (B ∨ ¬p) resolve to (A ∨ B).
		{NewClause(1, 2), NewClause(-1, 3), 1, []Literal{2, 3}},
		// Shared context literals collapse.
		{NewClause(1, 2), NewClause(-1, 2), 1, []Literal{2}},
		// Both polarities of the pivot are dropped from both sides.
		{NewClause(1, -2), NewClause(2, 3), 2, []Literal{1, 3}},
		// Complementary units resolve to the empty clause.
		{NewClause(1), NewClause(-1), 1, nil},
	} {
		got := resolve(tt.c1, tt.c2, tt.atom).Literals()
		if diff := cmp.Diff(got, tt.want, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("resolve(%s, %s, %d) (-got, +want):\n%s", tt.c1, tt.c2, tt.atom, diff)
		}
	}
}

func TestEliminationOrder(t *testing.T) {
	s := newSolver([][]int{{1, 2}, {1, 3}, {2, 3}, {1, -2}})
	// Occurrences: 1 in three clauses, 2 in three, 3 in two. The tie
	// between 1 and 2 breaks toward the smaller atom.
	want := []int{1, 2, 3}
	if diff := cmp.Diff(s.eliminationOrder(), want); diff != "" {
		t.Fatalf("eliminationOrder (-got, +want):\n%s", diff)
	}
}

// Every (positive-clause, negative-clause) pair must produce a
// resolvent; a missing pair breaks refutation completeness.
func TestEliminateCoversAllPairs(t *testing.T) {
	s := newSolver([][]int{{1, 2}, {1, 3}, {-1, 4}, {-1, 5}})
	if got := s.eliminate(1); got != eliminated {
		t.Fatalf("eliminate(1) = %s; want %s", got, eliminated)
	}
	want := [][]Literal{{2, 4}, {2, 5}, {3, 4}, {3, 5}}
	if diff := cmp.Diff(formulaLits(s.f), want); diff != "" {
		t.Fatalf("resolvents after eliminate(1) (-got, +want):\n%s", diff)
	}
}

func TestEliminateSkipsSinglePolarity(t *testing.T) {
	s := newSolver([][]int{{1, 2}, {2, 3}})
	if got := s.eliminate(1); got != skipped {
		t.Fatalf("eliminate(1) = %s; want %s", got, skipped)
	}
	if s.f.Len() != 2 {
		t.Fatalf("skipped elimination changed the formula: %s", s.f)
	}
}

func TestEliminateEmptyResolvent(t *testing.T) {
	s := newSolver([][]int{{1}, {-1}})
	if got := s.eliminate(1); got != unsat {
		t.Fatalf("eliminate(1) = %s; want %s", got, unsat)
	}
}

func TestEliminateUnitResolvent(t *testing.T) {
	s := newSolver([][]int{{1, 2}, {-1}})
	if got := s.eliminate(1); got != propagated {
		t.Fatalf("eliminate(1) = %s; want %s", got, propagated)
	}
	// The derived unit 2 is recorded as forcing -2 false, not inserted
	// as a clause.
	if !s.isFalse(-2) {
		t.Fatal("unit resolvent did not record -2 in the false-literal set")
	}
	if s.f.Has(NewClause(2)) {
		t.Fatal("unit resolvent was inserted into the formula")
	}
}

func TestEliminateDiscardsTautologies(t *testing.T) {
	s := newSolver([][]int{{1, 2}, {-1, -2, 3}})
	if got := s.eliminate(1); got != eliminated {
		t.Fatalf("eliminate(1) = %s; want %s", got, eliminated)
	}
	// The sole resolvent {2, -2, 3} is tautological, so nothing remains.
	if !s.f.Empty() {
		t.Fatalf("tautological resolvent kept: %s", s.f)
	}
}

func TestEliminateShrinksUniverse(t *testing.T) {
	s := newSolver([][]int{{1, 2}, {-1, 3}})
	if got := s.eliminate(1); got != eliminated {
		t.Fatalf("eliminate(1) = %s; want %s", got, eliminated)
	}
	for _, l := range []Literal{1, -1} {
		if _, ok := s.universe[l]; ok {
			t.Errorf("literal %d still in the universe after elimination", l)
		}
	}
	want := [][]Literal{{2, 3}}
	if diff := cmp.Diff(formulaLits(s.f), want); diff != "" {
		t.Fatalf("after eliminate(1) (-got, +want):\n%s", diff)
	}
}
