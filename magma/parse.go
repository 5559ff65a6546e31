package magma

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// precedence of binary operators; higher binds tighter. All are left
// associative.
var precedence = map[string]int{
	",": 1, "||": 1, "&": 1,
	"<": 2, ">": 2, "<=": 2, ">=": 2, "==": 2, "!=": 2, "..": 2, "@": 2,
	"+": 3, "-": 3,
	"*": 4,
	"/": 5, "%": 5, "**": 5,
}

// notPrecedence is the priority the operand of prefix ! is parsed at.
const notPrecedence = 5

type bailout struct{ err error }

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) peekAt(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

func (p *parser) next() Token {
	t := p.tokens[p.pos]
	if t.Kind != EOF {
		p.pos++
	}
	return t
}

func (p *parser) fail(line int, format string, args ...any) {
	panic(bailout{&ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}})
}

func (p *parser) unexpected(t Token, want string) {
	p.fail(t.Line, "expected %s, got %q", want, t.String())
}

func (p *parser) expect(k Kind) Token {
	t := p.next()
	if t.Kind != k {
		p.fail(t.Line, "expected token %q, got %q", k.String(), t.String())
	}
	return t
}

func (p *parser) expectText(k Kind, text string) {
	t := p.next()
	if t.Kind != k || t.Text != text {
		p.fail(t.Line, "expected token %q, got %q", text, t.String())
	}
}

func isOperator(t Token, op string) bool { return t.Kind == Operator && t.Text == op }

func isKeyword(t Token, kw string) bool { return t.Kind == Keyword && t.Text == kw }

// block parses an optional colon, an indented run of statements and the
// matching dedent.
func (p *parser) block() *Block {
	if p.peek().Kind == Colon {
		p.next()
	}
	if t := p.next(); t.Kind != Delta || t.N <= 0 {
		p.unexpected(t, "indented block")
	}
	b := &Block{}
	for {
		b.Stmts = append(b.Stmts, p.stmt())
		if t := p.peek(); t.Kind == Delta && t.N < 0 {
			p.next()
			return b
		}
	}
}

// ifStmt parses the condition and branches after an if or elif keyword.
func (p *parser) ifStmt() *If {
	p.next()
	s := &If{Cond: p.expr(1), Then: p.block()}
	switch t := p.peek(); {
	case isKeyword(t, "elif"):
		s.Else = p.ifStmt()
	case isKeyword(t, "else"):
		p.next()
		s.Else = p.block()
	}
	return s
}

func (p *parser) stmt() Stmt {
	t := p.peek()
	switch t.Kind {
	case Keyword:
		switch t.Text {
		case "if":
			return p.ifStmt()
		case "while":
			p.next()
			return &While{Cond: p.expr(1), Body: p.block()}
		case "repeat":
			p.next()
			return &Repeat{Count: p.expr(1), Body: p.block()}
		case "print":
			p.next()
			return &Print{X: p.expr(1)}
		case "for":
			p.next()
			name := p.expect(Ident).Text
			p.expectText(Keyword, "in")
			return &For{Var: name, Iter: p.expr(1), Body: p.block()}
		}
	case Ident:
		switch next := p.peekAt(1); {
		case isOperator(next, "="):
			p.next()
			p.next()
			return &Assign{Name: t.Text, Value: p.expr(1)}
		case isOperator(next, "@"):
			p.next()
			p.next()
			index := p.expr(1)
			p.expectText(Operator, "=")
			return &IndexAssign{Name: t.Text, Index: index, Value: p.expr(1)}
		}
	}
	p.unexpected(t, "statement")
	panic("unreachable")
}

// expr parses a binary expression whose operators all have priority of at
// least min.
func (p *parser) expr(min int) Expr {
	left := p.operand()
	for {
		t := p.peek()
		prec, ok := precedence[t.Text]
		if t.Kind != Operator || !ok || prec < min {
			return left
		}
		p.next()
		left = &BinaryOp{Left: left, Op: t.Text, Right: p.expr(prec + 1)}
	}
}

// flatten unrolls the left spine of a comma chain.
func flatten(x Expr) []Expr {
	if b, ok := x.(*BinaryOp); ok && b.Op == "," {
		return append(flatten(b.Left), b.Right)
	}
	return []Expr{x}
}

func (p *parser) operand() Expr {
	t := p.next()
	switch t.Kind {
	case Int:
		return &IntLit{Value: t.N}
	case Bool:
		return &BoolLit{Value: t.Text == "true"}
	case Ident:
		return &Var{Name: t.Text}
	case LParen:
		x := p.expr(1)
		p.expect(RParen)
		return x
	case LBracket:
		if p.peek().Kind == RBracket {
			p.next()
			return &ArrayLit{}
		}
		x := p.expr(1)
		p.expect(RBracket)
		return &ArrayLit{Elems: flatten(x)}
	case Operator:
		if t.Text == "!" {
			return &Not{X: p.expr(notPrecedence)}
		}
	}
	p.unexpected(t, "expression")
	panic("unreachable")
}

// Parse parses the output of Tokenize into the program's top-level block.
func Parse(tokens []Token) (prog *Block, err error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		tokens = append(slices.Clip(tokens), Token{Kind: EOF})
	}
	defer func() {
		if e := recover(); e != nil {
			b, ok := e.(bailout)
			if !ok {
				panic(e)
			}
			prog, err = nil, b.err
		}
	}()
	p := &parser{tokens: tokens}
	prog = &Block{}
	for {
		prog.Stmts = append(prog.Stmts, p.stmt())
		if p.peek().Kind == EOF {
			return prog, nil
		}
	}
}

// ParseSource tokenizes and parses a Magma program.
func ParseSource(src string) (*Block, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
