package lambda

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

const lambdaSign = "λ"

func isIdent(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return r > unicode.MaxASCII || !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
	}) < 0
}

func validateToken(s string) error {
	switch s {
	case "(", ")", lambdaSign, ".":
		return nil
	}
	if !isIdent(s) {
		return &LexError{Token: s}
	}
	return nil
}

func scan(s string) (res []string, err error) {
	res = strings.Fields(s)
	sep := func(c string) []string {
		return lo.FlatMap(res, func(s string, _ int) (ret []string) {
			for {
				before, after, found := strings.Cut(s, c)
				if before != "" {
					ret = append(ret, before)
				}
				s = after
				if !found {
					break
				}
				ret = append(ret, c)
			}
			return ret
		})
	}
	res = sep("(")
	res = sep(")")
	res = sep(".")
	res = sep(lambdaSign)
	for _, s := range res {
		if err := validateToken(s); err != nil {
			return nil, err
		}
	}
	return res, nil
}

type bailout struct{ err error }

type parser struct {
	g *Graph
}

func (p *parser) fail(err error) {
	panic(bailout{err})
}

func (p *parser) unexpected(s string) {
	p.fail(&ParseError{Msg: fmt.Sprintf("unexpected token %q", s)})
}

func (p *parser) eof(want string) {
	p.fail(&ParseError{Msg: fmt.Sprintf("expected %s, got \"EOF\"", want), Incomplete: true})
}

func (p *parser) expect(tok string, tokens []string) []string {
	if len(tokens) == 0 {
		p.eof(fmt.Sprintf("token %q", tok))
	}
	hd, tl := tokens[0], tokens[1:]
	if hd != tok {
		p.fail(&ParseError{Msg: fmt.Sprintf("expected token %q, got %q", tok, hd)})
	}
	return tl
}

// parseLambda parses the rest of an abstraction; the λ is already consumed.
func (p *parser) parseLambda(tokens []string) (Ref, []string) {
	if len(tokens) == 0 {
		p.eof("identifier")
	}
	tok, tokens := tokens[0], tokens[1:]
	if !isIdent(tok) {
		p.fail(&ParseError{Msg: fmt.Sprintf("expected identifier, got %q", tok)})
	}
	tokens = p.expect(".", tokens)
	body, tokens := p.parse(tokens)
	return p.g.Abs(tok, body), tokens
}

func (p *parser) parseParenExpr(tokens []string) (Ref, []string) {
	t, tokens := p.parse(tokens)
	return t, p.expect(")", tokens)
}

func (p *parser) parseSingle(tokens []string) (Ref, []string) {
	tok, tokens := tokens[0], tokens[1:]
	switch tok {
	case ")", ".":
		p.unexpected(tok)
	case "(":
		return p.parseParenExpr(tokens)
	case lambdaSign:
		return p.parseLambda(tokens)
	}
	return p.g.Var(tok), tokens
}

// parse reads one term. Juxtaposed atoms fold to the left, so f g h parses as
// ((f g) h); an abstraction extends as far to the right as possible.
func (p *parser) parse(tokens []string) (Ref, []string) {
	if len(tokens) == 0 {
		p.eof("term")
	}
	if tokens[0] == ")" {
		p.unexpected(tokens[0])
	}
	t, tokens := p.parseSingle(tokens)
	for len(tokens) > 0 && tokens[0] != ")" {
		var arg Ref
		arg, tokens = p.parseSingle(tokens)
		t = p.g.App(t, arg)
	}
	return t, tokens
}

// ParseTerm parses src into g and returns the new term. g.Root is left
// untouched.
func (g *Graph) ParseTerm(src string) (r Ref, err error) {
	tokens, err := scan(src)
	if err != nil {
		return -1, err
	}
	defer func() {
		if e := recover(); e != nil {
			b, ok := e.(bailout)
			if !ok {
				panic(e)
			}
			r, err = -1, b.err
		}
	}()
	p := &parser{g: g}
	r, tokens = p.parse(tokens)
	if len(tokens) != 0 {
		return -1, &ParseError{Msg: fmt.Sprintf("expected token \"EOF\", got %q", tokens[0])}
	}
	return r, nil
}

// Parse parses src into a fresh graph rooted at the parsed term.
func Parse(src string) (*Graph, error) {
	g := New()
	r, err := g.ParseTerm(src)
	if err != nil {
		return nil, err
	}
	g.Root = r
	return g, nil
}
