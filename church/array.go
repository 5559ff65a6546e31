package church

import "fmt"

// Arrays are tagged cons cells: pair hasNext (pair head tail), terminated by
// pair false nil.

var Empty = Pair(False, Nil)

// Cons prepends head to the array tail.
func Cons(head, tail string) string {
	return Pair(True, Pair(head, tail))
}

// Array builds an array literal from element terms.
func Array(elems []string) string {
	out := Empty
	for i := len(elems) - 1; i >= 0; i-- {
		out = Cons(elems[i], out)
	}
	return out
}

var (
	Head = fmt.Sprintf("(λl.%s (%s l))", First, Second)
	Tail = fmt.Sprintf("(λl.%s (%s l))", Second, Second)

	// Get l n drops n cells and takes the head.
	Get = fmt.Sprintf("(λl.λn.%s (n %s l))", Head, Tail)

	// Set l n x replaces element n.
	Set = fmt.Sprintf("(%s (λF.λl.λn.λx.%s n %s %s))", Y, IsZero,
		Cons("x", Tail+" l"),
		Cons(Head+" l", fmt.Sprintf("F (%s l) (%s n) x", Tail, Pred)))

	// Fold l g a computes g (... (g (g a e0) e1) ...) en.
	Fold = fmt.Sprintf("(%s (λF.λl.λg.λa.%s l (F (%s l) g (g a (%s l))) a))", Y, First, Tail, Head)

	// Range n m is [n, n+1, ..., m], empty when n > m.
	Range = fmt.Sprintf("(%s (λF.λn.λm.%s n m %s %s))", Y, Gt, Empty,
		Cons("n", fmt.Sprintf("F (%s n) m", Succ)))
)
