package dp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClauseTautological(t *testing.T) {
	for _, tt := range []struct {
		clause Clause
		want   bool
	}{
		{NewClause(), false},
		{NewClause(1), false},
		{NewClause(1, 2, 3), false},
		{NewClause(1, -1), true},
		{NewClause(1, -2, 3, 2), true},
	} {
		if got := tt.clause.Tautological(); got != tt.want {
			t.Errorf("Tautological(%s) = %t; want %t", tt.clause, got, tt.want)
		}
	}
}

func TestClauseDedup(t *testing.T) {
	c := NewClause(1, 2, 1, -3, 2)
	want := []Literal{-3, 1, 2}
	if diff := cmp.Diff(c.Literals(), want); diff != "" {
		t.Fatalf("Literals (-got, +want):\n%s", diff)
	}
}

func TestFormulaMergesDuplicateClauses(t *testing.T) {
	f := NewFormula(NewClause(1, 2), NewClause(2, 1), NewClause(-1))
	if f.Len() != 2 {
		t.Fatalf("Len = %d; want 2", f.Len())
	}
	if !f.Has(NewClause(1, 2)) || !f.Has(NewClause(-1)) {
		t.Fatalf("formula %s is missing an expected clause", f)
	}
}

func TestFormulaRemove(t *testing.T) {
	f := NewFormula(NewClause(1, 2), NewClause(-1, 3))
	f.Remove(NewClause(2, 1))
	if f.Len() != 1 || f.Has(NewClause(1, 2)) {
		t.Fatalf("after Remove, formula = %s", f)
	}
}

func TestClauseString(t *testing.T) {
	got := NewClause(3, -1, 2).String()
	if want := "[ -1 2 3 ]"; got != want {
		t.Fatalf("String = %q; want %q", got, want)
	}
}
