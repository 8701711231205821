// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package spotless implements a syntax-only validator for JSON.
//
// The validator determines whether an input conforms to the JSON grammar and,
// if not, reports the first point and reason of failure. It never builds a
// value: numbers are not converted, strings are not unescaped, and the
// contents of objects and arrays are not retained.
//
// # Validating
//
// To check a complete document held in memory, call Validate:
//
//	if err := spotless.Validate(data); err != nil {
//	   log.Fatalf("Invalid JSON: %v", err)
//	}
//
// Failures have concrete type *spotless.Error, which records a Kind and the
// byte offset at which the failure was detected. Each Kind is also an error,
// so a specific failure can be recognized with errors.Is:
//
//	if errors.Is(err, spotless.UnterminatedArray) {
//	   log.Print("Input was truncated")
//	}
//
// # Scanning
//
// The Lexer type classifies the tokens of an input. Construct a lexer from a
// byte slice or a string and call its Next method to advance it:
//
//	lex := spotless.NewLexer(data)
//	for {
//	   tok, err := lex.Next()
//	   if err != nil {
//	      log.Fatalf("Scanning failed: %v", err)
//	   } else if tok == spotless.EOF {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// End of input is sticky: once Next has returned EOF, it keeps doing so.
//
// # Parsing
//
// The Parser type drives a Lexer to check the grammar:
//
//	value  := null | true | false | number | string | object | array
//	object := "{" [ pair ( "," pair )* ] "}"
//	pair   := string ":" value
//	array  := "[" [ value ( "," value )* ] "]"
//
// Exactly one value must be present, followed only by whitespace. Trailing
// commas are not accepted. Parsing stops at the first failure.
//
// # Deviations
//
// The number "-0", with no fraction or exponent, is rejected with the
// NegativeZero failure, although RFC 8259 permits it. Raw control characters
// and invalid UTF-8 inside strings are not checked.
package spotless
