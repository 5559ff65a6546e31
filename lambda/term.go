// Package lambda implements untyped lambda terms as a mutable graph, together
// with a parser, printers and a breadth-first reduction engine.
//
// Terms live in an arena owned by a Graph and are addressed by Ref. Every
// structural field is a Ref, so overwriting the cell behind a Ref is visible
// to every term that holds it. Reduction relies on this: a step rewrites the
// redex cell in place and arguments are shared rather than copied.
package lambda

import "fmt"

// Ref addresses a cell in a Graph.
type Ref int32

// Kind is the shape of a resolved cell.
type Kind uint8

const (
	KindVar Kind = iota + 1
	KindAbs
	KindApp
	kindInd
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "var"
	case KindAbs:
		return "abs"
	case KindApp:
		return "app"
	case kindInd:
		return "ind"
	}
	panic("unreachable")
}

// cell layout per kind:
//
//	KindVar  name
//	KindAbs  name=param  l=body
//	KindApp  l=fn        r=arg
//	kindInd  l=target
type cell struct {
	kind Kind
	name string
	l, r Ref
}

// Graph is an arena of term cells with a distinguished root.
type Graph struct {
	Root Ref

	cells []cell

	// scratch state for Step
	mark  []uint32
	epoch uint32
	queue []Ref
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{Root: -1}
}

func (g *Graph) alloc(c cell) Ref {
	g.cells = append(g.cells, c)
	return Ref(len(g.cells) - 1)
}

// Var allocates a variable occurrence.
func (g *Graph) Var(name string) Ref {
	return g.alloc(cell{kind: KindVar, name: name})
}

// Abs allocates the abstraction λparam.body.
func (g *Graph) Abs(param string, body Ref) Ref {
	return g.alloc(cell{kind: KindAbs, name: param, l: body})
}

// App allocates the application (fn arg).
func (g *Graph) App(fn, arg Ref) Ref {
	return g.alloc(cell{kind: KindApp, l: fn, r: arg})
}

// Len reports the number of allocated cells.
func (g *Graph) Len() int { return len(g.cells) }

// Resolve follows indirections to the cell that holds a term. Chains are
// compressed so later lookups are a single hop.
func (g *Graph) Resolve(r Ref) Ref {
	t := r
	for g.cells[t].kind == kindInd {
		t = g.cells[t].l
	}
	for r != t && g.cells[r].kind == kindInd {
		next := g.cells[r].l
		g.cells[r].l = t
		r = next
	}
	return t
}

// Kind reports the shape of the term behind r.
func (g *Graph) Kind(r Ref) Kind {
	return g.cells[g.Resolve(r)].kind
}

// Name returns a variable's name or an abstraction's parameter.
func (g *Graph) Name(r Ref) string {
	return g.cells[g.Resolve(r)].name
}

// Body returns an abstraction's body.
func (g *Graph) Body(r Ref) Ref {
	return g.field(r, KindAbs).l
}

// Fn returns the function side of an application.
func (g *Graph) Fn(r Ref) Ref {
	return g.field(r, KindApp).l
}

// Arg returns the argument side of an application.
func (g *Graph) Arg(r Ref) Ref {
	return g.field(r, KindApp).r
}

func (g *Graph) field(r Ref, want Kind) cell {
	c := g.cells[g.Resolve(r)]
	if c.kind != want {
		panic(fmt.Sprintf("lambda: %s cell used as %s", c.kind, want))
	}
	return c
}

// overwrite turns r into an indirection to target.
func (g *Graph) overwrite(r, target Ref) {
	g.cells[r] = cell{kind: kindInd, l: target}
}
