// Package dp decides satisfiability of propositional formulas in
// conjunctive normal form using the Davis-Putnam resolution procedure:
// variables are eliminated one at a time by resolving every clause
// containing a variable against every clause containing its negation.
// There is no branching search and no backtracking, and consequently no
// satisfying assignment is produced; Solve answers yes or no.
package dp

import (
	"sort"
	"strconv"
	"strings"
)

// A Literal is a signed reference to a propositional variable: the
// magnitude identifies the atom and the sign gives the polarity
// (positive asserts the variable, negative negates it). Literal 0 is
// reserved as the DIMACS clause terminator and never appears in a
// formula.
type Literal int

// Atom returns the variable the literal refers to.
func (l Literal) Atom() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Negate returns the literal of the same atom with opposite polarity.
func (l Literal) Negate() Literal { return -l }

// A Clause is a disjunction of literals, stored as a set: duplicate
// literals collapse on insertion and order is immaterial. The empty
// clause denotes a contradiction.
type Clause map[Literal]struct{}

// NewClause builds a clause from the given literals.
func NewClause(lits ...Literal) Clause {
	c := make(Clause, len(lits))
	for _, l := range lits {
		c[l] = struct{}{}
	}
	return c
}

// Has reports whether l is a member of the clause.
func (c Clause) Has(l Literal) bool {
	_, ok := c[l]
	return ok
}

// Empty reports whether the clause has no literals.
func (c Clause) Empty() bool { return len(c) == 0 }

// Unit reports whether the clause has exactly one literal.
func (c Clause) Unit() bool { return len(c) == 1 }

// Lit returns the sole literal of a unit clause.
func (c Clause) Lit() Literal {
	if !c.Unit() {
		panic("Lit called on a non-unit clause")
	}
	for l := range c {
		return l
	}
	panic("unreached")
}

// Tautological reports whether the clause contains both a literal and
// its negation, making it vacuously true.
func (c Clause) Tautological() bool {
	for l := range c {
		if c.Has(l.Negate()) {
			return true
		}
	}
	return false
}

// Literals returns the clause's literals in ascending order.
func (c Clause) Literals() []Literal {
	lits := make([]Literal, 0, len(c))
	for l := range c {
		lits = append(lits, l)
	}
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
	return lits
}

// key is the canonical form of a clause, used to merge duplicates
// within a formula.
func (c Clause) key() string {
	var b strings.Builder
	for i, l := range c.Literals() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(l)))
	}
	return b.String()
}

func (c Clause) String() string { return "[ " + c.key() + " ]" }

// A Formula is a conjunction of clauses, stored as a set: inserting a
// duplicate clause silently merges it with the existing one.
type Formula struct {
	clauses map[string]Clause
}

// NewFormula builds a formula from the given clauses.
func NewFormula(clauses ...Clause) *Formula {
	f := &Formula{clauses: make(map[string]Clause, len(clauses))}
	for _, c := range clauses {
		f.Add(c)
	}
	return f
}

// Add inserts c into the formula.
func (f *Formula) Add(c Clause) { f.clauses[c.key()] = c }

// Remove deletes c from the formula, if present.
func (f *Formula) Remove(c Clause) { delete(f.clauses, c.key()) }

// Has reports whether an equal clause is present in the formula.
func (f *Formula) Has(c Clause) bool {
	_, ok := f.clauses[c.key()]
	return ok
}

// Len returns the number of distinct clauses.
func (f *Formula) Len() int { return len(f.clauses) }

// Empty reports whether the formula has no clauses.
func (f *Formula) Empty() bool { return len(f.clauses) == 0 }

// Clauses returns a snapshot of the formula's clauses in a
// deterministic order. Callers may mutate the formula while ranging
// over the snapshot.
func (f *Formula) Clauses() []Clause {
	keys := make([]string, 0, len(f.clauses))
	for k := range f.clauses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Clause, len(keys))
	for i, k := range keys {
		out[i] = f.clauses[k]
	}
	return out
}

func (f *Formula) String() string {
	var b strings.Builder
	for _, c := range f.Clauses() {
		b.WriteString(c.String())
	}
	return b.String()
}
