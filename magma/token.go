// Package magma implements the front end and compiler of the Magma language:
// an indentation-structured imperative language that compiles to untyped
// lambda calculus.
package magma

import (
	"fmt"
	"strconv"
)

type Kind uint8

const (
	EOF Kind = iota
	Ident
	Int
	Bool
	Operator
	Keyword
	Delta
	LParen
	RParen
	LBracket
	RBracket
	Colon

	// raw tokens, removed by Indent
	newline
	space
	tab
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case Int:
		return "integer"
	case Bool:
		return "boolean"
	case Operator:
		return "operator"
	case Keyword:
		return "keyword"
	case Delta:
		return "block"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Colon:
		return ":"
	case newline:
		return "newline"
	case space:
		return "space"
	case tab:
		return "tab"
	}
	panic("unreachable")
}

// Token is a lexical unit. Text holds the identifier, operator, keyword or
// literal spelling; N holds the integer value or, for Delta, the signed
// indentation change.
type Token struct {
	Kind Kind
	Text string
	N    int
	Line int
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, Operator, Keyword, Bool:
		return t.Text
	case Int:
		return strconv.Itoa(t.N)
	case Delta:
		if t.N > 0 {
			return fmt.Sprintf("indent(+%d)", t.N)
		}
		return fmt.Sprintf("dedent(%d)", t.N)
	}
	return t.Kind.String()
}

var keywords = []string{"if", "elif", "else", "for", "in", "while", "repeat", "print"}

// operators in maximal-munch order: two-character spellings first.
var operators = []string{
	"**", "||", "<=", ">=", "==", "!=", "..",
	"=", "*", "+", "-", "/", "%", "&", "!", "<", ">", ",", "@",
}

const operatorChars = "=*+-/%&|!<>.,@"
