package magma

import (
	"fmt"

	"github.com/iWaroz/Magma/church"
	"github.com/samber/lo"
)

var binaryOps = map[string]string{
	"+":  church.Add,
	"-":  church.Sub,
	"*":  church.Mult,
	"/":  church.Div,
	"%":  church.Mod,
	"**": church.Pow,
	"<":  church.Lt,
	">":  church.Gt,
	"<=": church.Leq,
	">=": church.Geq,
	"==": church.Eq,
	"!=": church.Neq,
	"||": church.Or,
	"&":  church.And,
	"..": church.Range,
	"@":  church.Get,
}

type compiler struct {
	slots SlotMap
}

func (c *compiler) fail(format string, args ...any) {
	panic(bailout{&CompileError{Msg: fmt.Sprintf(format, args...)}})
}

// expr lowers x to a term whose only free name is st.
func (c *compiler) expr(x Expr) string {
	switch x := x.(type) {
	case *IntLit:
		return church.Numeral(x.Value)
	case *BoolLit:
		if x.Value {
			return church.True
		}
		return church.False
	case *Var:
		return church.ReadVar(c.slots[x.Name])
	case *Not:
		return fmt.Sprintf("(%s (%s))", church.Not, c.expr(x.X))
	case *ArrayLit:
		return church.Array(lo.Map(x.Elems, func(e Expr, _ int) string { return c.expr(e) }))
	case *BinaryOp:
		if x.Op == "," {
			c.fail("%q outside an array literal", x.Op)
		}
		op, ok := binaryOps[x.Op]
		if !ok {
			c.fail("unknown operator %q", x.Op)
		}
		return fmt.Sprintf("(%s (%s) (%s))", op, c.expr(x.Left), c.expr(x.Right))
	}
	c.fail("cannot compile expression %T", x)
	panic("unreachable")
}

// stmt lowers s to a closed state transformer.
func (c *compiler) stmt(s Stmt) string {
	switch s := s.(type) {
	case *Block:
		parts := lo.Map(s.Stmts, func(s Stmt, _ int) string { return c.stmt(s) })
		if len(parts) == 1 {
			return parts[0]
		}
		body := lo.Reduce(parts, func(acc, p string, _ int) string {
			return fmt.Sprintf("%s (%s)", p, acc)
		}, "st")
		return "(λst." + body + ")"
	case *Assign:
		return church.Assign(c.slots[s.Name], c.expr(s.Value))
	case *IndexAssign:
		return church.AssignIndex(c.slots[s.Name], c.expr(s.Index), c.expr(s.Value))
	case *Print:
		return church.Print(c.expr(s.X))
	case *If:
		otherwise := ""
		if s.Else != nil {
			otherwise = c.stmt(s.Else)
		}
		return church.If(c.expr(s.Cond), c.stmt(s.Then), otherwise)
	case *While:
		return church.While(c.expr(s.Cond), c.stmt(s.Body))
	case *Repeat:
		return church.Repeat(c.expr(s.Count), c.stmt(s.Body))
	case *For:
		return church.For(c.slots[s.Var], c.expr(s.Iter), c.stmt(s.Body))
	}
	c.fail("cannot compile statement %T", s)
	panic("unreachable")
}

// Compile lowers prog to a lambda term that applies the program to the
// initial state.
func Compile(prog *Block) (out string, err error) {
	defer func() {
		if e := recover(); e != nil {
			b, ok := e.(bailout)
			if !ok {
				panic(e)
			}
			out, err = "", b.err
		}
	}()
	c := &compiler{slots: Slots(prog)}
	return church.Program(c.stmt(prog), len(c.slots)), nil
}

// CompileSource parses and compiles a Magma program.
func CompileSource(src string) (string, error) {
	prog, err := ParseSource(src)
	if err != nil {
		return "", err
	}
	return Compile(prog)
}
