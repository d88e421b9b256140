package lexer

import "fmt"

// ErrorKind identifies the category of a lexical error.
type ErrorKind int

const (
	// ErrUnexpectedChar reports a character no token can start with.
	ErrUnexpectedChar ErrorKind = iota
	// ErrIncompleteString reports a string literal with no closing quote.
	// It is also reported for a bare '=' not followed by whitespace.
	ErrIncompleteString
	// ErrInvalidEscape reports a backslash followed by anything other
	// than '"' or '\' inside a string literal.
	ErrInvalidEscape
)

// Error is a single lexical error. It includes the position of the token
// that triggered it. The scanner has already moved past the offending
// input when an Error is returned, so pulling again continues the stream.
type Error struct {
	Kind   ErrorKind
	Char   rune // the offending character, set for ErrUnexpectedChar
	Line   int
	Column int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnexpectedChar:
		return fmt.Sprintf("unexpected character %q at line %d, column %d", e.Char, e.Line, e.Column)
	case ErrIncompleteString:
		return fmt.Sprintf("incomplete string at line %d, column %d", e.Line, e.Column)
	case ErrInvalidEscape:
		return fmt.Sprintf("invalid escape sequence at line %d, column %d", e.Line, e.Column)
	}
	return fmt.Sprintf("lexical error at line %d, column %d", e.Line, e.Column)
}
