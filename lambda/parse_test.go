package lambda_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/iWaroz/Magma/lambda"
)

var corpus = []string{
	"x",
	"λx.x",
	"λx.λy.x",
	"f g h t",
	"f (g h) t",
	"(λx.x x) (λx.x x)",
	"λf.λa.f (f (f a))",
	"λsel.sel (λa.λb.a) nil",
	"(λf.(λx.f (x x)) (λx.f (x x))) g",
	"λx.(λy.y x) λz.z",
	"a_1 (λv0.v0 v1) B2",
}

func TestRoundTrip(t *testing.T) {
	for _, src := range corpus {
		g, err := lambda.Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		printed := g.String(g.Root)
		h, err := lambda.Parse(printed)
		if err != nil {
			t.Fatalf("Parse(%q) of printed %q: %v", printed, src, err)
		}
		if !lambda.AlphaEqual(g, g.Root, h, h.Root) {
			t.Errorf("%q printed as %q does not parse back to the same term", src, printed)
		}
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{"f g h t", "(((f g) h) t)"},
		{"λx.x y", "(λx.(x y))"},
		{"(λx.x) y", "((λx.x) y)"},
		{"f λx.x y", "(f (λx.(x y)))"},
		{"  (( a ))  ", "a"},
		{"λx.λy.y x", "(λx.(λy.(y x)))"},
	}
	for _, tt := range tests {
		g, err := lambda.Parse(tt.src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.src, err)
		}
		if got := g.String(g.Root); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestAlphaEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"λx.x", "λy.y", true},
		{"λx.λy.x", "λa.λb.a", true},
		{"λx.λy.x", "λa.λb.b", false},
		{"λx.y", "λx.z", false},
		{"λx.y", "λy.y", false},
		{"f x", "f x", true},
	}
	for _, tt := range tests {
		g, _ := lambda.Parse(tt.a)
		h, _ := lambda.Parse(tt.b)
		if got := lambda.AlphaEqual(g, g.Root, h, h.Root); got != tt.want {
			t.Errorf("AlphaEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src        string
		lex        bool
		incomplete bool
	}{
		{src: "", incomplete: true},
		{src: "(x", incomplete: true},
		{src: "λx", incomplete: true},
		{src: "λx.", incomplete: true},
		{src: "x)"},
		{src: "λ.x"},
		{src: "()"},
		{src: "x + y", lex: true},
		{src: "λx.x#", lex: true},
	}
	for _, tt := range tests {
		_, err := lambda.Parse(tt.src)
		if err == nil {
			t.Errorf("Parse(%q) succeeded", tt.src)
			continue
		}
		var le *lambda.LexError
		if got := errors.As(err, &le); got != tt.lex {
			t.Errorf("Parse(%q) = %v, lex error %v, want %v", tt.src, err, got, tt.lex)
		}
		if got := lambda.IsIncomplete(err); got != tt.incomplete {
			t.Errorf("Parse(%q) = %v, incomplete %v, want %v", tt.src, err, got, tt.incomplete)
		}
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9]+m")

func TestPrettyMatchesString(t *testing.T) {
	g, _ := lambda.Parse("(λx.x x) (λy.y)")
	if got, want := ansi.ReplaceAllString(g.Pretty(g.Root), ""), g.String(g.Root); got != want {
		t.Errorf("Pretty without colors = %q, want %q", got, want)
	}
}
