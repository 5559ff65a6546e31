package magma

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

func isWordRune(r rune) bool {
	return r == '_' || r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

func isDigits(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
}

func wordToken(w string, line int) (Token, error) {
	switch {
	case isDigits(w):
		n, err := strconv.Atoi(w)
		if err != nil {
			return Token{}, &LexError{Line: line, Text: w}
		}
		return Token{Kind: Int, Text: w, N: n, Line: line}, nil
	case slices.Contains(keywords, w):
		return Token{Kind: Keyword, Text: w, Line: line}, nil
	case w == "true" || w == "false":
		return Token{Kind: Bool, Text: w, Line: line}, nil
	case unicode.IsDigit(rune(w[0])):
		return Token{}, &LexError{Line: line, Text: w}
	}
	return Token{Kind: Ident, Text: w, Line: line}, nil
}

// splitOperators cuts a run of operator characters into operators, longest
// spelling first.
func splitOperators(run string, line int) ([]Token, error) {
	var toks []Token
	for run != "" {
		i := slices.IndexFunc(operators, func(op string) bool { return strings.HasPrefix(run, op) })
		if i < 0 {
			return nil, &LexError{Line: line, Text: run}
		}
		toks = append(toks, Token{Kind: Operator, Text: operators[i], Line: line})
		run = run[len(operators[i]):]
	}
	return toks, nil
}

var punctuation = map[rune]Kind{
	'(':  LParen,
	')':  RParen,
	'[':  LBracket,
	']':  RBracket,
	':':  Colon,
	'\n': newline,
	' ':  space,
	'\t': tab,
}

// Lex turns source text into raw tokens. Newlines and whitespace are kept
// as tokens for Indent to interpret.
func Lex(src string) ([]Token, error) {
	var toks []Token
	line := 1
	rs := []rune(src)
	for i := 0; i < len(rs); {
		c := rs[i]
		if k, ok := punctuation[c]; ok {
			toks = append(toks, Token{Kind: k, Text: string(c), Line: line})
			if k == newline {
				line++
			}
			i++
			continue
		}
		j := i + 1
		switch {
		case c == '\r':
		case strings.ContainsRune(operatorChars, c):
			for j < len(rs) && strings.ContainsRune(operatorChars, rs[j]) {
				j++
			}
			ops, err := splitOperators(string(rs[i:j]), line)
			if err != nil {
				return nil, err
			}
			toks = append(toks, ops...)
		case isWordRune(c):
			for j < len(rs) && isWordRune(rs[j]) {
				j++
			}
			t, err := wordToken(string(rs[i:j]), line)
			if err != nil {
				return nil, err
			}
			toks = append(toks, t)
		default:
			return nil, &LexError{Line: line, Text: string(c)}
		}
		i = j
	}
	return toks, nil
}

// Indent replaces newline and whitespace tokens with Delta tokens. A tab
// counts as two columns and a space as one. Line breaks inside parentheses
// or brackets do not start a logical line; an unmatched closing bracket
// leaves the count at zero. The result ends with EOF, after
// every open block has been closed.
func Indent(raw []Token) ([]Token, error) {
	var (
		out    []Token
		stack  []int
		level  int
		width  int
		depth  int
		line   = 1
		atLine = true
	)
	for _, t := range raw {
		line = t.Line
		switch t.Kind {
		case newline:
			if depth == 0 {
				atLine, width = true, 0
			}
			continue
		case space, tab:
			if atLine {
				width += map[Kind]int{space: 1, tab: 2}[t.Kind]
			}
			continue
		}
		if atLine {
			atLine = false
			switch {
			case width > level:
				out = append(out, Token{Kind: Delta, N: width - level, Line: line})
				stack = append(stack, width-level)
				level = width
			case width < level:
				for level > width && len(stack) > 0 {
					d := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					level -= d
					out = append(out, Token{Kind: Delta, N: -d, Line: line})
				}
				if level != width {
					return nil, &ParseError{Line: line, Msg: "inconsistent indentation"}
				}
			}
		}
		switch t.Kind {
		case LParen, LBracket:
			depth++
		case RParen, RBracket:
			if depth > 0 {
				depth--
			}
		}
		out = append(out, t)
	}
	for len(stack) > 0 {
		out = append(out, Token{Kind: Delta, N: -stack[len(stack)-1], Line: line})
		stack = stack[:len(stack)-1]
	}
	return append(out, Token{Kind: EOF, Line: line}), nil
}

// Tokenize lexes src and resolves its indentation.
func Tokenize(src string) ([]Token, error) {
	raw, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return Indent(raw)
}
