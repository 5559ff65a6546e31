package lambda

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

type nameSet map[string]struct{}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s nameSet) sorted() []string {
	names := lo.Keys(s)
	slices.Sort(names)
	return names
}

// freeSet computes the free variables of r. Sets are memoized per cell, so
// shared subterms are only walked once.
func (g *Graph) freeSet(r Ref, memo map[Ref]nameSet) nameSet {
	r = g.Resolve(r)
	if s, ok := memo[r]; ok {
		return s
	}
	s := make(nameSet)
	switch c := g.cells[r]; c.kind {
	case KindVar:
		s[c.name] = struct{}{}
	case KindAbs:
		for name := range g.freeSet(c.l, memo) {
			if name != c.name {
				s[name] = struct{}{}
			}
		}
	case KindApp:
		for name := range g.freeSet(c.l, memo) {
			s[name] = struct{}{}
		}
		for name := range g.freeSet(c.r, memo) {
			s[name] = struct{}{}
		}
	}
	memo[r] = s
	return s
}

// boundInto adds every binder name occurring in r to s.
func (g *Graph) boundInto(r Ref, s nameSet, seen map[Ref]bool) {
	r = g.Resolve(r)
	if seen[r] {
		return
	}
	seen[r] = true
	switch c := g.cells[r]; c.kind {
	case KindAbs:
		s[c.name] = struct{}{}
		g.boundInto(c.l, s, seen)
	case KindApp:
		g.boundInto(c.l, s, seen)
		g.boundInto(c.r, s, seen)
	}
}

// FreeVars returns the sorted free variables of r.
func (g *Graph) FreeVars(r Ref) []string {
	return g.freeSet(r, make(map[Ref]nameSet)).sorted()
}

// BoundVars returns the sorted names bound by some abstraction inside r.
func (g *Graph) BoundVars(r Ref) []string {
	s := make(nameSet)
	g.boundInto(r, s, make(map[Ref]bool))
	return s.sorted()
}
