package gate

import (
	"errors"

	"github.com/gatelang/gate/lexer"
	"github.com/gatelang/gate/token"
)

// ScanErrors is a slice of lexical errors that implements the error
// interface. Tokenize returns one so callers get every error found in the
// input at once, in source order.
type ScanErrors []*lexer.Error

func (e ScanErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	// For simplicity, the default error message for the collection
	// just reports the first error.
	return "gate: " + e[0].Error()
}

// Tokenize scans src to the end of the input and returns every token
// produced, excluding the terminating EOF token. Scanning does not stop at
// the first lexical error: the lexer has already moved past the offending
// input, so Tokenize keeps pulling and collects all errors into a
// ScanErrors value. The returned tokens are valid even when the error is
// non-nil.
func Tokenize(src []byte) ([]token.Token, error) {
	l := lexer.New(src)

	var toks []token.Token
	var errs ScanErrors
	for {
		tok, err := l.NextToken()
		if err != nil {
			var scanErr *lexer.Error
			if errors.As(err, &scanErr) {
				errs = append(errs, scanErr)
			}
			continue
		}
		if tok.Type == token.EOF {
			break
		}
		toks = append(toks, tok)
	}

	if len(errs) > 0 {
		return toks, errs
	}
	return toks, nil
}
