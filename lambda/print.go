package lambda

import "strings"

// String prints the term at r fully parenthesised, as (λx.M) and (M N). The
// output parses back to an alpha-equivalent term.
func (g *Graph) String(r Ref) string {
	var b strings.Builder
	g.write(&b, r)
	return b.String()
}

func (g *Graph) write(b *strings.Builder, r Ref) {
	switch c := g.cells[g.Resolve(r)]; c.kind {
	case KindVar:
		b.WriteString(c.name)
	case KindAbs:
		b.WriteString("(λ" + c.name + ".")
		g.write(b, c.l)
		b.WriteByte(')')
	case KindApp:
		b.WriteByte('(')
		g.write(b, c.l)
		b.WriteByte(' ')
		g.write(b, c.r)
		b.WriteByte(')')
	}
}

var colors = []string{"\x1b[31m", "\x1b[32m", "\x1b[33m", "\x1b[34m", "\x1b[35m", "\x1b[36m"}

const colorReset = "\x1b[39m"

// Pretty prints the term like String, coloring each nesting level so that
// matching parentheses share a color.
func (g *Graph) Pretty(r Ref) string {
	var b strings.Builder
	g.pretty(&b, r, 0)
	b.WriteString(colorReset)
	return b.String()
}

func (g *Graph) pretty(b *strings.Builder, r Ref, depth int) {
	c := g.cells[g.Resolve(r)]
	if c.kind == KindVar {
		b.WriteString(c.name)
		return
	}
	b.WriteString(colors[(depth+1)%len(colors)])
	switch c.kind {
	case KindAbs:
		b.WriteString("(λ" + c.name + ".")
		g.pretty(b, c.l, depth+1)
	case KindApp:
		b.WriteByte('(')
		g.pretty(b, c.l, depth+1)
		b.WriteByte(' ')
		g.pretty(b, c.r, depth+1)
	}
	b.WriteByte(')')
	b.WriteString(colors[depth%len(colors)])
}

// AlphaEqual reports whether a in g and b in h are equal up to renaming of
// bound variables.
func AlphaEqual(g *Graph, a Ref, h *Graph, b Ref) bool {
	var envA, envB []string
	lookup := func(env []string, name string) int {
		for i := len(env) - 1; i >= 0; i-- {
			if env[i] == name {
				return len(env) - 1 - i
			}
		}
		return -1
	}
	var eq func(a, b Ref) bool
	eq = func(a, b Ref) bool {
		ca, cb := g.cells[g.Resolve(a)], h.cells[h.Resolve(b)]
		if ca.kind != cb.kind {
			return false
		}
		switch ca.kind {
		case KindVar:
			ia, ib := lookup(envA, ca.name), lookup(envB, cb.name)
			if ia < 0 && ib < 0 {
				return ca.name == cb.name
			}
			return ia == ib
		case KindAbs:
			envA, envB = append(envA, ca.name), append(envB, cb.name)
			ok := eq(ca.l, cb.l)
			envA, envB = envA[:len(envA)-1], envB[:len(envB)-1]
			return ok
		case KindApp:
			return eq(ca.l, cb.l) && eq(ca.r, cb.r)
		}
		return false
	}
	return eq(a, b)
}
