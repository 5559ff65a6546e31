package lambda

import "strconv"

// substitution rewrites terms under x := arg. The body is rebuilt cell by
// cell; only occurrences of x share a cell, the arg itself.
type substitution struct {
	g   *Graph
	x   string
	arg Ref

	argFree nameSet
}

// Substitute returns body[x := arg] without modifying any existing cell.
// Occurrences of x are replaced by arg itself, never by a copy. Every
// application and abstraction on the way is rebuilt, except an abstraction
// that rebinds x.
func (g *Graph) Substitute(body Ref, x string, arg Ref) Ref {
	s := &substitution{g: g, x: x, arg: arg}
	return s.apply(body)
}

func (s *substitution) captures(name string) bool {
	if s.argFree == nil {
		s.argFree = s.g.freeSet(s.arg, make(map[Ref]nameSet))
	}
	return s.argFree.has(name)
}

func (s *substitution) apply(t Ref) Ref {
	g := s.g
	t = g.Resolve(t)
	switch c := g.cells[t]; c.kind {
	case KindVar:
		if c.name == s.x {
			return s.arg
		}
		return t
	case KindAbs:
		if c.name == s.x {
			return t
		}
		if s.captures(c.name) {
			fresh := s.freshName(c.l)
			renamed := g.Substitute(c.l, c.name, g.Var(fresh))
			return g.Abs(fresh, s.apply(renamed))
		}
		return g.Abs(c.name, s.apply(c.l))
	case KindApp:
		fn := s.apply(c.l)
		return g.App(fn, s.apply(c.r))
	}
	panic("unreachable")
}

// freshName picks the first vN that is free in neither arg nor body, is not
// bound inside body, and differs from x.
func (s *substitution) freshName(body Ref) string {
	spoiled := make(nameSet)
	for name := range s.argFree {
		spoiled[name] = struct{}{}
	}
	for name := range s.g.freeSet(body, make(map[Ref]nameSet)) {
		spoiled[name] = struct{}{}
	}
	s.g.boundInto(body, spoiled, make(map[Ref]bool))
	spoiled[s.x] = struct{}{}
	for i := 0; ; i++ {
		if name := "v" + strconv.Itoa(i); !spoiled.has(name) {
			return name
		}
	}
}

// redex reports whether r is an application of an abstraction.
func (g *Graph) redex(r Ref) bool {
	c := g.cells[r]
	return c.kind == KindApp && g.cells[g.Resolve(c.l)].kind == KindAbs
}

// contract performs (λx.body) arg → body[x := arg] at r, in place.
func (g *Graph) contract(r Ref) {
	c := g.cells[r]
	fn := g.cells[g.Resolve(c.l)]
	g.overwrite(r, g.Substitute(fn.l, fn.name, c.r))
}

// Step reduces the first redex found by a breadth-first walk from the root
// (function before argument, abstraction bodies included). It reports
// false when the term is in beta-normal form.
func (g *Graph) Step() bool {
	r, ok := g.nextRedex()
	if ok {
		g.contract(r)
	}
	return ok
}

// IsNormal reports whether the term at the root contains no redex.
func (g *Graph) IsNormal() bool {
	_, ok := g.nextRedex()
	return !ok
}

// nextRedex walks the graph level by level. Each cell is visited at most
// once, which finds the same redex as walking the term as a tree: the first
// visit of a shared cell is always its shallowest, leftmost occurrence.
func (g *Graph) nextRedex() (Ref, bool) {
	if len(g.mark) < len(g.cells) {
		g.mark = append(g.mark, make([]uint32, len(g.cells)-len(g.mark))...)
	}
	g.epoch++
	if g.epoch == 0 {
		clear(g.mark)
		g.epoch = 1
	}
	g.queue = append(g.queue[:0], g.Root)
	for i := 0; i < len(g.queue); i++ {
		r := g.Resolve(g.queue[i])
		if g.mark[r] == g.epoch {
			continue
		}
		g.mark[r] = g.epoch
		if g.redex(r) {
			return r, true
		}
		switch c := g.cells[r]; c.kind {
		case KindAbs:
			g.queue = append(g.queue, c.l)
		case KindApp:
			g.queue = append(g.queue, c.l, c.r)
		}
	}
	return -1, false
}
