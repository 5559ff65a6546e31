package lambda

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// pair matches λb.b x y.
func (g *Graph) pair(r Ref) (x, y Ref, ok bool) {
	c := g.cells[g.Resolve(r)]
	if c.kind != KindAbs {
		return -1, -1, false
	}
	outer := g.cells[g.Resolve(c.l)]
	if outer.kind != KindApp {
		return -1, -1, false
	}
	inner := g.cells[g.Resolve(outer.l)]
	if inner.kind != KindApp {
		return -1, -1, false
	}
	sel := g.cells[g.Resolve(inner.l)]
	if sel.kind != KindVar || sel.name != c.name {
		return -1, -1, false
	}
	return inner.r, outer.r, true
}

// Boolean decodes λa.λb.a as true and λa.λb.b as false.
func (g *Graph) Boolean(r Ref) (value, ok bool) {
	a := g.cells[g.Resolve(r)]
	if a.kind != KindAbs {
		return false, false
	}
	b := g.cells[g.Resolve(a.l)]
	if b.kind != KindAbs {
		return false, false
	}
	v := g.cells[g.Resolve(b.l)]
	switch {
	case v.kind != KindVar:
		return false, false
	case v.name == b.name:
		return false, true
	case v.name == a.name:
		return true, true
	}
	return false, false
}

// Numeral decodes the Church numeral λf.λa.f (f (... a)).
func (g *Graph) Numeral(r Ref) (int, bool) {
	f := g.cells[g.Resolve(r)]
	if f.kind != KindAbs {
		return 0, false
	}
	a := g.cells[g.Resolve(f.l)]
	if a.kind != KindAbs {
		return 0, false
	}
	n := 0
	t := a.l
	for {
		c := g.cells[g.Resolve(t)]
		switch c.kind {
		case KindVar:
			return n, c.name == a.name
		case KindApp:
			fn := g.cells[g.Resolve(c.l)]
			if fn.kind != KindVar || fn.name != f.name || f.name == a.name {
				return 0, false
			}
			n++
			t = c.r
		default:
			return 0, false
		}
	}
}

// cons matches one array cell: it returns the head and tail of a non-empty
// array, or end=true for the empty array.
func (g *Graph) cons(r Ref) (head, tail Ref, end, ok bool) {
	tag, rest, ok := g.pair(r)
	if !ok {
		return -1, -1, false, false
	}
	more, ok := g.Boolean(tag)
	if !ok {
		return -1, -1, false, false
	}
	if !more {
		return -1, -1, true, true
	}
	head, tail, ok = g.pair(rest)
	return head, tail, false, ok
}

// Array decodes a tagged array into its elements.
func (g *Graph) Array(r Ref) ([]Ref, bool) {
	var elems []Ref
	for {
		head, tail, end, ok := g.cons(r)
		if !ok {
			return nil, false
		}
		if end {
			return elems, true
		}
		elems = append(elems, head)
		r = tail
	}
}

// Show renders a value: numerals in decimal, true, arrays in brackets, and
// anything else as a plain term. false has the same normal form as 0 and is
// shown as 0.
func (g *Graph) Show(r Ref) string {
	if n, ok := g.Numeral(r); ok {
		return strconv.Itoa(n)
	}
	if v, ok := g.Boolean(r); ok && v {
		return "true"
	}
	if elems, ok := g.Array(r); ok {
		return "[" + strings.Join(lo.Map(elems, func(e Ref, _ int) string { return g.Show(e) }), ", ") + "]"
	}
	return g.String(r)
}

// DecodeState splits a normal-form root of shape λi.i memory log.
func (g *Graph) DecodeState() (memory, log Ref, err error) {
	memory, log, ok := g.pair(g.Root)
	if !ok {
		return -1, -1, &DecodeError{Reason: "result is not a state", Term: g.Root, g: g}
	}
	return memory, log, nil
}

// DecodeOutput returns the printed values of a program run, in the order they
// were printed. The print log is an array whose newest entry comes first.
func (g *Graph) DecodeOutput() ([]Ref, error) {
	_, log, err := g.DecodeState()
	if err != nil {
		return nil, err
	}
	var out []Ref
	for r := log; ; {
		head, tail, end, ok := g.cons(r)
		if !ok {
			return nil, &DecodeError{Reason: "malformed print log", Term: r, g: g}
		}
		if end {
			break
		}
		out = append(out, head)
		r = tail
	}
	return lo.Reverse(out), nil
}
