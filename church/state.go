package church

import "fmt"

// The program state is pair memory log: memory is a fixed list indexed by
// slot, log is the array of printed values, newest first.
//
// Statements compile to state transformers λst.st'. Expression terms read
// the current state through the free name st, so they are only meaningful
// inside one of the transformers below.

var (
	memory = fmt.Sprintf("(st %s)", True)
	log    = fmt.Sprintf("(st %s)", False)
)

// State returns the initial state for a program using slots variables.
func State(slots int) string {
	return Pair(List(slots), Empty)
}

// ReadVar reads a slot from the current state st.
func ReadVar(slot int) string {
	return fmt.Sprintf("(%s %s %s)", ListGet, memory, Numeral(slot))
}

// Assign stores value into a slot.
func Assign(slot int, value string) string {
	return "(λst." + Pair(fmt.Sprintf("%s %s %s (%s)", ListSet, memory, Numeral(slot), value), log) + ")"
}

// AssignIndex stores value at index of the array held in a slot.
func AssignIndex(slot int, index, value string) string {
	return Assign(slot, fmt.Sprintf("%s %s (%s) (%s)", Set, ReadVar(slot), index, value))
}

// Print appends value to the log.
func Print(value string) string {
	return "(λst." + Pair(memory, Cons(value, log)) + ")"
}

// If runs then or otherwise depending on cond. An empty otherwise keeps the
// state unchanged.
func If(cond, then, otherwise string) string {
	if otherwise == "" {
		return fmt.Sprintf("(λst.(%s) ((%s) st) st)", cond, then)
	}
	return fmt.Sprintf("(λst.(%s) ((%s) st) ((%s) st))", cond, then, otherwise)
}

// While runs body as long as cond holds.
func While(cond, body string) string {
	return fmt.Sprintf("(%s (λF.λst.(%s) (F ((%s) st)) st))", Y, cond, body)
}

// Repeat runs body count times, count being read from the incoming state.
func Repeat(count, body string) string {
	return fmt.Sprintf("(λst.(%s) (%s) st)", count, body)
}

// For folds over iter, storing each element into slot before running body.
func For(slot int, iter, body string) string {
	return fmt.Sprintf("(λst.%s (%s) (λs.λv.(%s) (%s s)) st)", Fold, iter, body, Assign(slot, "v"))
}

// Program applies a compiled block to the initial state.
func Program(block string, slots int) string {
	return fmt.Sprintf("(%s) %s", block, State(slots))
}
