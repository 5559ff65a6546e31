package lambda

import (
	"errors"
	"fmt"
)

// ErrBudgetExceeded is returned by Normalize when the step or time budget runs
// out before the term reaches normal form.
var ErrBudgetExceeded = errors.New("budget exceeded")

// LexError reports a token that is neither punctuation nor an identifier.
type LexError struct {
	Token string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected token %q", e.Token)
}

// ParseError reports malformed lambda syntax. Incomplete is set when the
// input ended early, i.e. more text could still make it valid.
type ParseError struct {
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string { return e.Msg }

// IsIncomplete reports whether err was caused by input ending too early.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Incomplete
}

// DecodeError reports a normal form that does not have the expected state
// shape. Term is the offending subterm.
type DecodeError struct {
	Reason string
	Term   Ref

	g *Graph
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %s: %s", e.Reason, e.g.String(e.Term))
}

// Pretty renders the offending subterm with the colorized printer.
func (e *DecodeError) Pretty() string {
	return e.g.Pretty(e.Term)
}
