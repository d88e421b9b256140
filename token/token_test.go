package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"cond", COND},
		{"else", ELSE},
		{"let", LET},
		{"list", LIST},
		{"define", DEFINE},
		{"lambda", LAMBDA},
		{"foobar", IDENT},
		{"my_var", IDENT},
		{"r2d2", IDENT},
		// Keyword matching is case-sensitive.
		{"Cond", IDENT},
		{"LET", IDENT},
		{"Lambda", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual := LookupIdent(tt.input)
			require.Equal(t, tt.expected, actual)
		})
	}
}
