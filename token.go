// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package spotless

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	None    Token = iota // nothing scanned yet
	EOF                  // end of input
	Null                 // constant: null
	False                // constant: false
	True                 // constant: true
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Colon                // colon ":"
	Comma                // comma ","
	Number               // number
	String               // quoted string
)

var tokenStr = [...]string{
	None:    "no token",
	EOF:     "end of input",
	Null:    "null",
	False:   "false",
	True:    "true",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Colon:   `":"`,
	Comma:   `","`,
	Number:  "number",
	String:  "string",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return "invalid token"
	}
	return tokenStr[v]
}

// isValueStart reports whether t can begin a value.
func (t Token) isValueStart() bool {
	switch t {
	case Null, False, True, Number, String, LBrace, LSquare:
		return true
	}
	return false
}
