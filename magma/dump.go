package magma

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

func exprNodes(xs []Expr) []Node {
	return lo.Map(xs, func(x Expr, _ int) Node { return x })
}

func (n *Not) children() []Node      { return []Node{n.X} }
func (n *BinaryOp) children() []Node { return []Node{n.Left, n.Right} }
func (*Var) children() []Node        { return nil }
func (n *ArrayLit) children() []Node { return exprNodes(n.Elems) }
func (*IntLit) children() []Node     { return nil }
func (*BoolLit) children() []Node    { return nil }

func (n *While) children() []Node { return []Node{n.Cond, n.Body} }

func (n *If) children() []Node {
	if n.Else == nil {
		return []Node{n.Cond, n.Then}
	}
	return []Node{n.Cond, n.Then, n.Else}
}

func (n *For) children() []Node         { return []Node{n.Iter, n.Body} }
func (n *Print) children() []Node       { return []Node{n.X} }
func (n *Repeat) children() []Node      { return []Node{n.Count, n.Body} }
func (n *Assign) children() []Node      { return []Node{n.Value} }
func (n *IndexAssign) children() []Node { return []Node{n.Index, n.Value} }

func (n *Block) children() []Node {
	return lo.Map(n.Stmts, func(s Stmt, _ int) Node { return s })
}

func label(n Node) string {
	switch n := n.(type) {
	case *Not:
		return "!"
	case *BinaryOp:
		return n.Op
	case *Var:
		return n.Name
	case *ArrayLit:
		return "array"
	case *IntLit:
		return strconv.Itoa(n.Value)
	case *BoolLit:
		return strconv.FormatBool(n.Value)
	case *While:
		return "while"
	case *If:
		return "if"
	case *For:
		return "for " + n.Var
	case *Print:
		return "print"
	case *Repeat:
		return "repeat"
	case *Assign:
		return n.Name + " ="
	case *IndexAssign:
		return n.Name + " @ ="
	case *Block:
		return "block"
	}
	panic("unreachable")
}

func printChildren(buf *strings.Builder, indent string, children []Node) {
	for i, n := range children {
		switch i {
		case len(children) - 1:
			fmt.Fprintf(buf, "%s└─%s\n", indent, label(n))
			printChildren(buf, indent+"  ", n.children())
		default:
			fmt.Fprintf(buf, "%s├─%s\n", indent, label(n))
			printChildren(buf, indent+"│ ", n.children())
		}
	}
}

// Dump renders n as a tree, one node per line.
func Dump(n Node) string {
	buf := new(strings.Builder)
	fmt.Fprintln(buf, label(n))
	printChildren(buf, "", n.children())
	return buf.String()
}
