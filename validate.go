// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package spotless

// Validate reports whether data is a single syntactically valid JSON value,
// optionally surrounded by whitespace. It returns nil if so, or otherwise an
// error of concrete type *Error describing the first failure.
func Validate(data []byte) error { return ValidateDepth(data, 0) }

// ValidateString is as Validate, but accepts a string.
func ValidateString(s string) error { return check(NewLexerString(s), 0) }

// ValidateDepth is as Validate, but limits the nesting depth of objects and
// arrays to maxDepth. If maxDepth == 0, DefaultMaxDepth is used.
func ValidateDepth(data []byte, maxDepth int) error { return check(NewLexer(data), maxDepth) }

func check(lex *Lexer, maxDepth int) error {
	p := NewParser(lex)
	p.LimitDepth(maxDepth)
	return p.Parse()
}
