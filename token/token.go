// Package token defines the lexical vocabulary of the gate language.
package token

// Type is the type of a token.
type Type string

// Token represents a lexical token. Literal holds the lexeme text as it
// appeared in the source (escape sequences decoded for strings, the leading
// '#' stripped for hash values). Number and Bool carry the decoded value for
// NUMBER and BOOLEAN tokens respectively and are zero otherwise.
type Token struct {
	Type    Type
	Literal string
	Number  float64
	Bool    bool
	Line    int
	Column  int
}

const (
	// EOF marks the end of the input. It is sticky: once returned, every
	// following pull returns it again.
	EOF Type = "EOF"

	// Brackets. Parens, square brackets and braces are interchangeable;
	// all three open styles produce LPAREN and all three close styles
	// produce RPAREN.
	LPAREN Type = "("
	RPAREN Type = ")"

	// Operators
	EQ       Type = "="
	LT       Type = "<"
	LTEQ     Type = "<="
	GT       Type = ">"
	GTEQ     Type = ">="
	PLUS     Type = "+"
	MINUS    Type = "-"
	ASTERISK Type = "*"
	SLASH    Type = "/"
	PERCENT  Type = "%"

	// Keywords
	COND   Type = "COND"
	ELSE   Type = "ELSE"
	LET    Type = "LET"
	LIST   Type = "LIST"
	DEFINE Type = "DEFINE"
	LAMBDA Type = "LAMBDA"

	// Literals
	IDENT   Type = "IDENT"   // foo, _bar
	NUMBER  Type = "NUMBER"  // 12, -1.5
	STRING  Type = "STRING"  // "hello world"
	BOOLEAN Type = "BOOLEAN" // #t, #false
)

var keywords = map[string]Type{
	"cond":   COND,
	"else":   ELSE,
	"let":    LET,
	"list":   LIST,
	"define": DEFINE,
	"lambda": LAMBDA,
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT. The match is case-sensitive: "Cond" is an
// ordinary identifier.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
