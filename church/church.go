// Package church holds the runtime encoding library: closed lambda terms, as
// source text, for booleans, numerals, pairs, lists, arrays and the program
// state, plus the state transformers the compiler plugs statements into.
//
// Every exported term is closed and wrapped in parentheses so it can be
// pasted anywhere. Functions taking term arguments substitute them textually;
// their arguments may only be free in st (and the documented loop names).
package church

import (
	"fmt"
	"strings"
)

// Nil fills memory slots that were never written.
const Nil = "nil"

const (
	True  = "(λa.λb.a)"
	False = "(λa.λb.b)"
)

// Y is the fixed-point combinator used by every recursive definition.
const Y = "(λf.(λx.f (x x)) (λx.f (x x)))"

// Pair builds λsel.sel x y. Neither component may mention sel.
func Pair(x, y string) string {
	return fmt.Sprintf("(λsel.sel (%s) (%s))", x, y)
}

var (
	First  = fmt.Sprintf("(λp.p %s)", True)
	Second = fmt.Sprintf("(λp.p %s)", False)
)

var (
	Not = fmt.Sprintf("(λx.x %s %s)", False, True)
	And = "(λa.λb.a b a)"
	Or  = "(λa.λb.a a b)"
)

// Numeral returns λf.λa.fⁿ a.
func Numeral(n int) string {
	if n < 0 {
		panic("church: negative numeral")
	}
	return "(λf.λa." + strings.Repeat("f (", n) + "a" + strings.Repeat(")", n) + ")"
}

var (
	IsZero = fmt.Sprintf("(λn.n (λa.%s) %s)", False, True)
	Succ   = "(λn.λf.λa.f (n f a))"
	// Pred saturates at zero.
	Pred = "(λn.λf.λx.n (λg.λh.h (g f)) (λu.x) (λu.u))"
	Add  = "(λn.λm.λf.λa.n f (m f a))"
	// Sub saturates at zero.
	Sub  = fmt.Sprintf("(λn.λm.m %s n)", Pred)
	Mult = "(λn.λm.λf.n (m f))"
	// Pow is b to the power e, eta-expanded so the result is always a numeral.
	Pow = "(λb.λe.λf.λa.e b f a)"

	Leq = fmt.Sprintf("(λn.λm.%s (%s n m))", IsZero, Sub)
	Geq = fmt.Sprintf("(λn.λm.%s (%s m n))", IsZero, Sub)
	Lt  = fmt.Sprintf("(λn.λm.%s (%s (%s m n)))", Not, IsZero, Sub)
	Gt  = fmt.Sprintf("(λn.λm.%s (%s (%s n m)))", Not, IsZero, Sub)
	Eq  = fmt.Sprintf("(λn.λm.%s (%s n m) (%s m n))", And, Leq, Leq)
	Neq = fmt.Sprintf("(λn.λm.%s (%s n m))", Not, Eq)

	// Div and Mod subtract until the dividend drops below the divisor; a zero
	// divisor never does.
	Div = fmt.Sprintf("(%s (λF.λn.λm.%s n m %s (%s (F (%s n m) m))))", Y, Lt, Numeral(0), Succ, Sub)
	Mod = fmt.Sprintf("(%s (λF.λn.λm.%s n m n (F (%s n m) m)))", Y, Lt, Sub)
)

// List returns a fixed list of size Nil placeholders.
func List(size int) string {
	if size == 0 {
		return Nil
	}
	return Pair(Nil, List(size-1))
}

var (
	// ListGet l n returns element n of a fixed list.
	ListGet = fmt.Sprintf("(λl.λn.n %s l %s)", Second, True)
	// ListSet l n x returns l with element n replaced by x.
	ListSet = fmt.Sprintf("(%s (λF.λl.λn.λx.%s n %s %s))", Y, IsZero,
		Pair("x", Second+" l"),
		Pair(First+" l", fmt.Sprintf("F (%s l) (%s n) x", Second, Pred)))
)
