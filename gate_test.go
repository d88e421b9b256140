package gate_test

import (
	"testing"

	"github.com/gatelang/gate"
	"github.com/gatelang/gate/lexer"
	"github.com/gatelang/gate/token"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	toks, err := gate.Tokenize([]byte("(+ 1 2)"))
	require.NoError(t, err)

	types := make([]token.Type, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	require.Equal(t, []token.Type{
		token.LPAREN,
		token.PLUS,
		token.NUMBER,
		token.NUMBER,
		token.RPAREN,
	}, types)
	require.Equal(t, 1.0, toks[2].Number)
	require.Equal(t, 2.0, toks[3].Number)
}

func TestTokenizeEmpty(t *testing.T) {
	toks, err := gate.Tokenize([]byte("; nothing but trivia\n   "))
	require.NoError(t, err)
	require.Empty(t, toks)
}

func TestTokenizeCollectsErrors(t *testing.T) {
	toks, err := gate.Tokenize([]byte(`($ 1) "oops`))
	require.Error(t, err)

	var errs gate.ScanErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	require.Equal(t, lexer.ErrUnexpectedChar, errs[0].Kind)
	require.Equal(t, '$', errs[0].Char)
	require.Equal(t, lexer.ErrIncompleteString, errs[1].Kind)

	// The valid tokens around the errors are still returned.
	require.Len(t, toks, 3)
	require.Equal(t, token.LPAREN, toks[0].Type)
	require.Equal(t, token.NUMBER, toks[1].Type)
	require.Equal(t, token.RPAREN, toks[2].Type)
}

func TestScanErrorsMessage(t *testing.T) {
	require.Empty(t, gate.ScanErrors{}.Error())

	_, err := gate.Tokenize([]byte("($)"))
	require.Error(t, err)
	require.Equal(t, `gate: unexpected character '$' at line 1, column 2`, err.Error())
}
