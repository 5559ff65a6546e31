package magma

// Expr is an expression node: *Not, *BinaryOp, *Var, *ArrayLit, *IntLit or
// *BoolLit.
type Expr interface {
	Node
	isExpr()
}

// Stmt is a statement node: *While, *If, *For, *Print, *Repeat, *Assign,
// *IndexAssign or *Block.
type Stmt interface {
	Node
	isStmt()
}

// Node is any syntax tree node.
type Node interface {
	children() []Node
}

type (
	Not struct {
		X Expr
	}

	BinaryOp struct {
		Left  Expr
		Op    string
		Right Expr
	}

	Var struct {
		Name string
	}

	ArrayLit struct {
		Elems []Expr
	}

	IntLit struct {
		Value int
	}

	BoolLit struct {
		Value bool
	}
)

type (
	While struct {
		Cond Expr
		Body *Block
	}

	// If holds an optional Else: nil, an *If for elif, or a *Block.
	If struct {
		Cond Expr
		Then *Block
		Else Stmt
	}

	For struct {
		Var  string
		Iter Expr
		Body *Block
	}

	Print struct {
		X Expr
	}

	Repeat struct {
		Count Expr
		Body  *Block
	}

	Assign struct {
		Name  string
		Value Expr
	}

	// IndexAssign is x @ i = v.
	IndexAssign struct {
		Name  string
		Index Expr
		Value Expr
	}

	// Block is a non-empty statement sequence.
	Block struct {
		Stmts []Stmt
	}
)

func (*Not) isExpr()      {}
func (*BinaryOp) isExpr() {}
func (*Var) isExpr()      {}
func (*ArrayLit) isExpr() {}
func (*IntLit) isExpr()   {}
func (*BoolLit) isExpr()  {}

func (*While) isStmt()       {}
func (*If) isStmt()          {}
func (*For) isStmt()         {}
func (*Print) isStmt()       {}
func (*Repeat) isStmt()      {}
func (*Assign) isStmt()      {}
func (*IndexAssign) isStmt() {}
func (*Block) isStmt()       {}
