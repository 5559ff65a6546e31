package magma

import "fmt"

// LexError reports characters that do not form a token.
type LexError struct {
	Line int
	Text string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d: unrecognized token %q", e.Line, e.Text)
}

// ParseError reports a token sequence the grammar does not accept.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// CompileError reports a syntax tree node that has no lowering.
type CompileError struct {
	Msg string
}

func (e *CompileError) Error() string {
	return "compile: " + e.Msg
}
