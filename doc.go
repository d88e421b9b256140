/*
Package gate provides the lexical front end for the gate language, a small
S-expression (Scheme-like) language. It converts raw source text into a
stream of typed tokens for a downstream parser to consume; no parser,
syntax tree, or evaluator lives in this module.

The package offers two ways to scan source, depending on the use case:

1. Pull-Based Scanning

The lexer subpackage exposes the scanner directly. Each call to NextToken
returns exactly one token or one lexical error; errors do not stop the
stream, so a consumer is free to abort on the first error, collect them
all, or skip past them:

	l := lexer.New([]byte(`(+ 1 2)`))
	for {
		tok, err := l.NextToken()
		if err != nil {
			// handle or collect the error; scanning can continue
		}
		if tok.Type == token.EOF {
			break
		}
		// use tok
	}

The lexer borrows the input slice for its whole lifetime and never mutates
it. It is single-pass and forward-only: there is no rewind, and once EOF
has been returned every further call returns EOF again.

2. Whole-Input Tokenizing

For the common case of scanning a complete source text up front, Tokenize
drives a lexer to the end of the input and returns every token produced.
All lexical errors found along the way are returned together as a
ScanErrors value:

	toks, err := gate.Tokenize(src)
	if err != nil {
		var errs gate.ScanErrors
		if errors.As(err, &errs) {
			// errs holds every lexical error, in source order
		}
	}

Token kinds, keyword lookup, and the Token struct itself live in the token
subpackage so that a downstream parser can share the vocabulary without
importing the scanner.
*/
package gate
