package lambda_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/iWaroz/Magma/lambda"
	"github.com/samber/lo"
)

func substitute(t *testing.T, body, x, arg string) (*lambda.Graph, lambda.Ref, lambda.Ref, lambda.Ref) {
	t.Helper()
	g := lambda.New()
	b, err := g.ParseTerm(body)
	if err != nil {
		t.Fatalf("ParseTerm(%q): %v", body, err)
	}
	a, err := g.ParseTerm(arg)
	if err != nil {
		t.Fatalf("ParseTerm(%q): %v", arg, err)
	}
	return g, b, a, g.Substitute(b, x, a)
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		body, x, arg string
		want         string
	}{
		{"x", "x", "z", "z"},
		{"y", "x", "z", "y"},
		{"λx.x", "x", "z", "(λx.x)"},
		{"λy.z", "x", "y", "(λv0.z)"},
		{"λy.y", "v0", "y", "(λv1.v1)"},
		{"λy.x y", "x", "z", "(λy.(z y))"},
		{"λy.x y", "x", "y", "(λv0.(y v0))"},
		{"λy.x", "x", "y", "(λv0.y)"},
		{"λy.x v0 y", "x", "y", "(λv1.((y v0) v1))"},
		{"λy.λv0.x y v0", "x", "y v0", "(λv1.(λv2.(((y v0) v1) v2)))"},
		{"x (λx.x)", "x", "f", "(f (λx.x))"},
	}
	for _, tt := range tests {
		g, _, _, res := substitute(t, tt.body, tt.x, tt.arg)
		if got := g.String(res); got != tt.want {
			t.Errorf("(%s)[%s := %s] = %s, want %s", tt.body, tt.x, tt.arg, got, tt.want)
		}
	}
}

func TestSubstituteShares(t *testing.T) {
	g, body, arg, res := substitute(t, "λy.x x y", "x", "λa.a")
	inner := g.Fn(g.Body(res))
	if g.Resolve(g.Fn(inner)) != g.Resolve(arg) || g.Resolve(g.Arg(inner)) != g.Resolve(arg) {
		t.Errorf("occurrences of x were not replaced by the argument itself")
	}
	if got, want := g.String(body), "(λy.((x x) y))"; got != want {
		t.Errorf("body changed to %s, want %s", got, want)
	}

	g, body, _, res = substitute(t, "f (λz.z)", "x", "q")
	if g.Resolve(res) == g.Resolve(body) || g.Resolve(g.Arg(res)) == g.Resolve(g.Arg(body)) {
		t.Errorf("substitution shared a rebuilt subterm of the body")
	}
	if got, want := g.String(res), "(f (λz.z))"; got != want {
		t.Errorf("result %s, want %s", got, want)
	}

	g, body, _, res = substitute(t, "λx.x y", "x", "q")
	if g.Resolve(res) != g.Resolve(body) {
		t.Errorf("substitution rebuilt an abstraction that rebinds x")
	}
}

var captureCases = []struct {
	body, x, arg string
}{
	{"λy.x", "x", "y"},
	{"λy.x y", "x", "y"},
	{"λy.λz.x y z", "x", "y z"},
	{"λy.λv0.x (y v0)", "x", "y v0 v1"},
	{"(λy.x) (λz.x z)", "x", "y z"},
	{"λa.λb.λc.x a b c", "x", "a b c"},
	{"λx.x y", "x", "y"},
	{"λy.y", "x", "y"},
}

func TestNoCapture(t *testing.T) {
	for _, tt := range captureCases {
		g, body, arg, res := substitute(t, tt.body, tt.x, tt.arg)
		if !lo.Contains(g.FreeVars(body), tt.x) {
			continue
		}
		free := g.FreeVars(res)
		for _, v := range g.FreeVars(arg) {
			if !lo.Contains(free, v) {
				t.Errorf("(%s)[%s := %s] = %s captures %s", tt.body, tt.x, tt.arg, g.String(res), v)
			}
		}
	}
}

func TestFreeVarContainment(t *testing.T) {
	for _, tt := range captureCases {
		g, body, arg, res := substitute(t, tt.body, tt.x, tt.arg)
		allowed := append(lo.Filter(g.FreeVars(body), func(v string, _ int) bool { return v != tt.x }), g.FreeVars(arg)...)
		for _, v := range g.FreeVars(res) {
			if !lo.Contains(allowed, v) {
				t.Errorf("(%s)[%s := %s] = %s has unexpected free variable %s", tt.body, tt.x, tt.arg, g.String(res), v)
			}
		}
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		src   string
		steps []string
	}{
		{"(λx.x) y", []string{"y"}},
		{"f ((λx.x) a) ((λy.y) b)", []string{"((f ((λx.x) a)) b)", "((f a) b)"}},
		{"λz.(λx.x z) w", []string{"(λz.(w z))"}},
		{"(λx.λy.x) (λa.a) b", []string{"((λy.(λa.a)) b)", "(λa.a)"}},
		{"(λx.λy.q) y", []string{"(λv0.q)"}},
		{"x y", nil},
	}
	for _, tt := range tests {
		g, err := lambda.Parse(tt.src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.src, err)
		}
		for i, want := range tt.steps {
			if !g.Step() {
				t.Fatalf("%q: step %d made no progress", tt.src, i+1)
			}
			if got := g.String(g.Root); got != want {
				t.Errorf("%q: step %d gave %s, want %s", tt.src, i+1, got, want)
			}
		}
		if g.Step() {
			t.Errorf("%q: reducible after %d steps: %s", tt.src, len(tt.steps), g.String(g.Root))
		}
		if !g.IsNormal() {
			t.Errorf("%q: IsNormal = false at normal form", tt.src)
		}
	}
}

func TestSharedArgumentReducedOnce(t *testing.T) {
	g, _ := lambda.Parse("(λx.x x) ((λy.y) z)")
	res, err := g.Normalize(lambda.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.String(g.Root), "(z z)"; got != want {
		t.Errorf("normal form %s, want %s", got, want)
	}
	if res.Steps != 2 {
		t.Errorf("reduced in %d steps, want 2", res.Steps)
	}
}

func TestCopiesAreReducedSeparately(t *testing.T) {
	g, _ := lambda.Parse("(λf.f a (f b)) (λx.(λy.y) c x)")
	res, err := g.Normalize(lambda.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.String(g.Root), "((c a) (c b))"; got != want {
		t.Errorf("normal form %s, want %s", got, want)
	}
	if res.Steps != 5 {
		t.Errorf("reduced in %d steps, want 5", res.Steps)
	}
}

const twoPlusTwo = "(λn.λm.λf.λa.n f (m f a)) (λf.λa.f (f a)) (λf.λa.f (f a))"

func TestDeterminism(t *testing.T) {
	for _, src := range []string{twoPlusTwo, "(λf.(λx.f (x x)) (λx.f (x x))) (λr.λn.n) (λq.q)"} {
		var steps []int
		var terms []string
		for i := 0; i < 2; i++ {
			g, _ := lambda.Parse(src)
			res, err := g.Normalize(lambda.Options{MaxSteps: 10000})
			if err != nil {
				t.Fatalf("%q: %v", src, err)
			}
			steps = append(steps, res.Steps)
			terms = append(terms, g.String(g.Root))
		}
		if steps[0] != steps[1] || terms[0] != terms[1] {
			t.Errorf("%q: runs differ: %v steps, %q", src, steps, terms)
		}
	}
}

const omega = "(λx.x x) (λx.x x)"

func TestBudgetExceeded(t *testing.T) {
	g, _ := lambda.Parse(omega)
	res, err := g.Normalize(lambda.Options{MaxSteps: 1000})
	if !errors.Is(err, lambda.ErrBudgetExceeded) {
		t.Fatalf("Normalize(Ω) = %v, want ErrBudgetExceeded", err)
	}
	if res.Steps != 1000 {
		t.Errorf("Normalize(Ω) took %d steps, want 1000", res.Steps)
	}

	g, _ = lambda.Parse(omega)
	if _, err := g.Normalize(lambda.Options{Timeout: 20 * time.Millisecond}); !errors.Is(err, lambda.ErrBudgetExceeded) {
		t.Fatalf("Normalize(Ω) with timeout = %v, want ErrBudgetExceeded", err)
	}
}

func TestBudgetReachedAtNormalForm(t *testing.T) {
	g, _ := lambda.Parse("(λx.x) y")
	res, err := g.Normalize(lambda.Options{MaxSteps: 1})
	if err != nil || res.Steps != 1 {
		t.Errorf("Normalize = %+v, %v; want 1 step, no error", res, err)
	}
}

func TestNormalizeLogsProgress(t *testing.T) {
	var buf bytes.Buffer
	g, _ := lambda.Parse(twoPlusTwo)
	res, err := g.Normalize(lambda.Options{
		Logger:      slog.New(slog.NewTextHandler(&buf, nil)),
		ReportEvery: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "msg=reducing"); got != res.Steps {
		t.Errorf("logged %d progress records for %d steps", got, res.Steps)
	}
	if n, ok := g.Numeral(g.Root); !ok || n != 4 {
		t.Errorf("2+2 reduced to %s", g.String(g.Root))
	}
}
