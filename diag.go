// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package spotless

import "fmt"

// Kind identifies the reason a validation failed. Each Kind has a fixed,
// human-readable diagnostic text, returned by its String and Error methods.
// A Kind is itself an error, so callers may test for a specific failure with
// errors.Is.
type Kind byte

// Lexical failures.
const (
	NoToken           Kind = iota + 1 // input ended before any token
	UnknownChar                       // no token begins with this character
	BadTrue                           // malformed or truncated "true"
	BadFalse                          // malformed or truncated "false"
	BadNull                           // malformed or truncated "null"
	MissingDigit                      // sign not followed by a digit
	MissingFraction                   // "." not followed by a digit
	MissingExponentMark               // exponent without "e" or "E"
	MissingExponent                   // exponent marker not followed by a digit
	NegativeZero                      // "-0" with no fraction or exponent
	MissingOpenQuote                  // string without an opening quote
	MissingCloseQuote                 // input ended inside a string
	BadEscape                         // "\" followed by an invalid character
	BadUnicodeEscape                  // "\u" not followed by four hex digits

	numLexical // sentinel; not a valid Kind
)

// Grammar failures.
const (
	ExpectedKey        Kind = iota + numLexical + 1 // object member without a string key
	ExpectedColon                                   // key not followed by ":"
	ExpectedValue                                   // no value where one is required
	ExpectedComma                                   // elements not separated by ","
	ExpectedPairOrEnd                               // "{" followed by neither a key nor "}"
	NotArray                                        // "[" followed by neither a value nor "]"
	UnterminatedObject                              // input ended inside an object
	UnterminatedArray                               // input ended inside an array
	ExpectedEOF                                     // content after the root value
	TooDeep                                         // nesting exceeds the parser's limit

	numKinds // sentinel; not a valid Kind
)

var kindStr = [...]string{
	NoToken:             "no token",
	UnknownChar:         "unknown character",
	BadTrue:             "error reading 'true'",
	BadFalse:            "error reading 'false'",
	BadNull:             "error reading 'null'",
	MissingDigit:        "missing digit in number",
	MissingFraction:     "missing fractional part",
	MissingExponentMark: "missing 'e' in number",
	MissingExponent:     "missing exponent part",
	NegativeZero:        "zero cannot be negative",
	MissingOpenQuote:    `expected opening '"'`,
	MissingCloseQuote:   `expected closing '"'`,
	BadEscape:           "invalid escape sequence",
	BadUnicodeEscape:    "invalid unicode escape sequence",

	ExpectedKey:        "expected a string key",
	ExpectedColon:      "expected a ':'",
	ExpectedValue:      "expected value",
	ExpectedComma:      "expected ','",
	ExpectedPairOrEnd:  "expected a key-value pair or nothing",
	NotArray:           "not an array",
	UnterminatedObject: "unterminated object",
	UnterminatedArray:  "unterminated array",
	ExpectedEOF:        "expected EOF",
	TooDeep:            "maximum nesting depth exceeded",
}

// String returns the diagnostic text for k.
func (k Kind) String() string {
	if k == 0 || k == numLexical || k >= numKinds {
		return fmt.Sprintf("invalid kind %d", byte(k))
	}
	return kindStr[k]
}

// Error satisfies the error interface.
func (k Kind) Error() string { return k.String() }

// Lexical reports whether k is a failure detected by the lexer, as opposed to
// a failure of the grammar.
func (k Kind) Lexical() bool { return k > 0 && k < numLexical }

// Error is the concrete type of errors reported by a Lexer or a Parser.  It
// records what went wrong and the byte offset of the cursor at the point of
// failure.
type Error struct {
	Kind   Kind
	Offset int // 0-based byte offset into the input
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Kind, e.Offset)
}

// Unwrap supports error wrapping. It returns the Kind of e.
func (e *Error) Unwrap() error { return e.Kind }
