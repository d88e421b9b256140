// Package lexer turns gate source text into a stream of tokens.
package lexer

import (
	"bytes"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/gatelang/gate/token"
)

// Lexer holds the state for tokenizing gate source. It borrows the input
// slice for its whole lifetime and never mutates it; the only state between
// pulls is the cursor position.
type Lexer struct {
	input        []byte
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

// New creates and returns a new Lexer over input.
func New(input []byte) *Lexer {
	l := &Lexer{input: input, line: 1, column: 1}
	l.readChar()
	return l
}

// NextToken scans the input and returns the next token, or a *Error when
// the input at the cursor forms no valid token. Errors do not stop the
// stream: the cursor is already past the offending input, so the next call
// picks up from there. Once the input is exhausted every call returns a
// token.EOF token with a nil error.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipTrivia()
	tok := token.Token{Line: l.line, Column: l.column}
	start := l.position
	switch l.ch {
	case 0:
		tok.Type = token.EOF
		return tok, nil
	case '(', '[', '{':
		tok.Type = token.LPAREN
		tok.Literal = string(l.ch)
		l.advance()
		return tok, nil
	case ')', ']', '}':
		tok.Type = token.RPAREN
		tok.Literal = string(l.ch)
		l.advance()
		return tok, nil
	case '=':
		l.advance()
		if unicode.IsSpace(l.ch) {
			tok.Type = token.EQ
			tok.Literal = "="
			return tok, nil
		}
		// A '=' must stand alone. Anything glued to it, or a '=' at the
		// end of the input, reports ErrIncompleteString; historical
		// behavior kept for compatibility.
		return tok, &Error{Kind: ErrIncompleteString, Line: tok.Line, Column: tok.Column}
	case '<':
		l.advance()
		if l.ch == '=' {
			l.advance()
			tok.Type = token.LTEQ
			tok.Literal = "<="
		} else {
			tok.Type = token.LT
			tok.Literal = "<"
		}
		return tok, nil
	case '>':
		l.advance()
		if l.ch == '=' {
			l.advance()
			tok.Type = token.GTEQ
			tok.Literal = ">="
		} else {
			tok.Type = token.GT
			tok.Literal = ">"
		}
		return tok, nil
	case '+':
		l.advance()
		if isDigit(l.ch) {
			// A sign directly attached to a digit starts a number.
			tok.Type = token.NUMBER
			tok.Number = l.readNumber()
			tok.Literal = string(l.input[start:l.position])
			return tok, nil
		}
		tok.Type = token.PLUS
		tok.Literal = "+"
		return tok, nil
	case '-':
		l.advance()
		if isDigit(l.ch) {
			tok.Type = token.NUMBER
			tok.Number = -l.readNumber()
			tok.Literal = string(l.input[start:l.position])
			return tok, nil
		}
		tok.Type = token.MINUS
		tok.Literal = "-"
		return tok, nil
	case '*':
		tok.Type = token.ASTERISK
		tok.Literal = "*"
		l.advance()
		return tok, nil
	case '/':
		tok.Type = token.SLASH
		tok.Literal = "/"
		l.advance()
		return tok, nil
	case '%':
		tok.Type = token.PERCENT
		tok.Literal = "%"
		l.advance()
		return tok, nil
	case '#':
		l.advance()
		word := l.readHashWord()
		switch word {
		case "t", "true":
			tok.Type = token.BOOLEAN
			tok.Bool = true
		case "f", "false":
			tok.Type = token.BOOLEAN
			tok.Bool = false
		default:
			tok.Type = token.IDENT
		}
		tok.Literal = word
		return tok, nil
	case '"':
		return l.readString(tok)
	default:
		if isWordStart(l.ch) {
			tok.Literal = l.readWord()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok, nil
		}
		if isDigit(l.ch) {
			tok.Type = token.NUMBER
			tok.Number = l.readNumber()
			tok.Literal = string(l.input[start:l.position])
			return tok, nil
		}
		ch := l.ch
		l.advance()
		return tok, &Error{Kind: ErrUnexpectedChar, Char: ch, Line: tok.Line, Column: tok.Column}
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition // Important for correct slicing at EOF
	} else {
		r, size := utf8.DecodeRune(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += size
	}
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.readChar()
	l.column++
}

// skipTrivia consumes whitespace and comments. A ';' starts a comment that
// runs through the next newline, or to the end of the input.
func (l *Lexer) skipTrivia() {
	for {
		switch {
		case l.ch == ';':
			l.skipLine()
		case unicode.IsSpace(l.ch):
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) skipLine() {
	for l.ch != 0 {
		ch := l.ch
		l.advance()
		if ch == '\n' {
			return
		}
	}
}

// readWord consumes an identifier or keyword. Words end at whitespace or at
// a bracket of any style; no separating whitespace is required before a
// bracket.
func (l *Lexer) readWord() string {
	start := l.position
	for l.ch != 0 && !unicode.IsSpace(l.ch) && !isBracket(l.ch) {
		l.advance()
	}
	return string(l.input[start:l.position])
}

// readHashWord consumes the value part of a '#' literal: a maximal run of
// non-whitespace characters. Unlike words, brackets do not terminate it.
func (l *Lexer) readHashWord() string {
	start := l.position
	for l.ch != 0 && !unicode.IsSpace(l.ch) {
		l.advance()
	}
	return string(l.input[start:l.position])
}

// readNumber consumes an unsigned numeric literal: a digit run with an
// optional '.' and a further, possibly empty, digit run. "1." is valid and
// has the value 1.
func (l *Lexer) readNumber() float64 {
	start := l.position
	for isDigit(l.ch) {
		l.advance()
	}
	if l.ch == '.' {
		l.advance()
		for isDigit(l.ch) {
			l.advance()
		}
	}
	// The accumulated text is digits with at most one decimal point,
	// which ParseFloat always accepts.
	n, _ := strconv.ParseFloat(string(l.input[start:l.position]), 64)
	return n
}

// readString consumes a string literal. The opening quote is the current
// character. Only \" and \\ are recognized escapes; the escaped character
// is appended literally. On an invalid escape the character after the
// backslash is left unconsumed.
func (l *Lexer) readString(tok token.Token) (token.Token, error) {
	l.advance() // consume opening quote
	var buf bytes.Buffer
	for l.ch != 0 {
		ch := l.ch
		l.advance()
		switch ch {
		case '"':
			tok.Type = token.STRING
			tok.Literal = buf.String()
			return tok, nil
		case '\\':
			if l.ch == '"' || l.ch == '\\' {
				buf.WriteRune(l.ch)
				l.advance()
			} else {
				return tok, &Error{Kind: ErrInvalidEscape, Line: tok.Line, Column: tok.Column}
			}
		default:
			buf.WriteRune(ch)
		}
	}
	return tok, &Error{Kind: ErrIncompleteString, Line: tok.Line, Column: tok.Column}
}

func isBracket(ch rune) bool {
	switch ch {
	case '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isWordStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}
