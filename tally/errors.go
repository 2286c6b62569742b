package tally

import (
	"fmt"
	"strings"
)

// LexError reports input the lexer cannot turn into a valid token: a
// character outside the calculator's alphabet, or an integer literal too
// large for int64.
type LexError struct {
	pos    Position
	lexeme string
	msg    string
	source string
}

func (e *LexError) Error() string {
	return renderError("lex error", e.pos, e.msg, e.source)
}

// Pos returns the location of the offending lexeme.
func (e *LexError) Pos() Position { return e.pos }

// Lexeme returns the offending text.
func (e *LexError) Lexeme() string { return e.lexeme }

// SyntaxError reports a token stream that does not match the
// operand/operator alternation the evaluator requires.
type SyntaxError struct {
	pos      Position
	expected string
	got      TokenType
	source   string
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("expected %s, got %s", e.expected, tokenLabel(e.got))
	return renderError("syntax error", e.pos, msg, e.source)
}

// Pos returns the location of the unexpected token.
func (e *SyntaxError) Pos() Position { return e.pos }

// DivisionByZeroError reports a division whose right-hand operand is zero.
type DivisionByZeroError struct {
	pos    Position
	source string
}

func (e *DivisionByZeroError) Error() string {
	return renderError("division by zero", e.pos, "right-hand operand is zero", e.source)
}

// Pos returns the location of the zero operand.
func (e *DivisionByZeroError) Pos() Position { return e.pos }

func renderError(kind string, pos Position, msg, source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s", kind, pos.Line, pos.Column, msg)
	if frame := formatCodeFrame(source, pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

func tokenLabel(tt TokenType) string {
	switch tt {
	case tokenIllegal:
		return "invalid token"
	case tokenEOF:
		return "end of input"
	case tokenInt:
		return "integer"
	default:
		return fmt.Sprintf("%q", string(tt))
	}
}
