// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package spotless

import "go4.org/mem"

// A Lexer reads lexical tokens from an in-memory input.  Each call to Next
// advances the lexer past one token, or reports an error.
//
// The lexer classifies tokens but does not retain or decode their text.
// Whitespace preceding a token is skipped when that token is requested, so
// after a successful call to Next the cursor rests just past the last byte of
// the token that was produced.
type Lexer struct {
	src   mem.RO
	pos   int    // cursor: offset of the next unexamined byte
	start int    // offset of the first byte of the current token
	tok   Token  // most recently produced token
	err   *Error // sticky failure, if any
}

// NewLexer constructs a lexer that consumes src. The lexer does not modify
// src, but the caller must not modify it while the lexer is in use.
func NewLexer(src []byte) *Lexer { return &Lexer{src: mem.B(src)} }

// NewLexerString constructs a lexer that consumes src.
func NewLexerString(src string) *Lexer { return &Lexer{src: mem.S(src)} }

// Next advances l to the next token of the input and returns its type, or
// reports an error of concrete type *Error.
//
// At the end of the input Next returns EOF, unless no token was ever produced,
// in which case it fails with NoToken. Once EOF has been reported, every later
// call also returns EOF. Once an error has been reported, every later call
// returns the same error and the cursor does not move.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return None, l.err
	} else if l.tok == EOF {
		return EOF, nil
	}

	l.skipSpace()
	l.start = l.pos
	if l.pos >= l.src.Len() {
		if l.tok == None {
			return l.fail(NoToken)
		}
		l.tok = EOF
		return EOF, nil
	}

	var tok Token
	var err error
	switch ch := l.src.At(l.pos); ch {
	case '"':
		tok, err = String, l.scanString()
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		tok, err = Number, l.scanNumber()
	case 't':
		tok, err = True, l.scanKeyword("true", BadTrue)
	case 'f':
		tok, err = False, l.scanKeyword("false", BadFalse)
	case 'n':
		tok, err = Null, l.scanKeyword("null", BadNull)
	default:
		t, ok := selfDelim(ch)
		if !ok {
			return l.fail(UnknownChar)
		}
		l.pos++
		tok = t
	}
	if err != nil {
		return None, err
	}
	l.tok = tok
	return tok, nil
}

// Token returns the type of the most recently produced token.
func (l *Lexer) Token() Token { return l.tok }

// Offset returns the current byte offset of the cursor.
func (l *Lexer) Offset() int { return l.pos }

// Span returns the location span of the current token. At the end of input the
// span is empty and positioned at the end of the input.
func (l *Lexer) Span() Span { return Span{Pos: l.start, End: l.pos} }

// Err returns the error reported by Next, or nil.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) fail(k Kind) (Token, error) {
	l.err = &Error{Kind: k, Offset: l.pos}
	return None, l.err
}

func (l *Lexer) failErr(k Kind) error {
	_, err := l.fail(k)
	return err
}

// peek returns the byte at the cursor, or 0 if the input is exhausted.
func (l *Lexer) peek() byte {
	if l.pos < l.src.Len() {
		return l.src.At(l.pos)
	}
	return 0
}

func (l *Lexer) skipSpace() {
	for l.pos < l.src.Len() && isSpace(l.src.At(l.pos)) {
		l.pos++
	}
}

func (l *Lexer) skipDigits() int {
	start := l.pos
	for isDigit(l.peek()) {
		l.pos++
	}
	return l.pos - start
}

// scanKeyword matches the literal word at the cursor. On a mismatch the cursor
// is left at the first byte that does not match.
func (l *Lexer) scanKeyword(word string, bad Kind) error {
	if mem.HasPrefix(l.src.SliceFrom(l.pos), mem.S(word)) {
		l.pos += len(word)
		return nil
	}
	for i := 0; i < len(word) && l.peek() == word[i]; i++ {
		l.pos++
	}
	return l.failErr(bad)
}

// scanNumber consumes a number:
//
//	[-] (0 | [1-9][0-9]*) [. [0-9]+] [(e|E) [+|-] [0-9]+]
//
// A leading zero is a complete integer part: any digits following it are not
// part of this token.
func (l *Lexer) scanNumber() error {
	neg := l.peek() == '-'
	if neg {
		l.pos++
	}

	var zero bool
	switch ch := l.peek(); {
	case ch == '0':
		l.pos++
		zero = true
	case isDigit(ch):
		l.skipDigits()
	default:
		return l.failErr(MissingDigit)
	}

	var frac, exp bool
	if l.peek() == '.' {
		if err := l.scanFraction(); err != nil {
			return err
		}
		frac = true
	}
	if ch := l.peek(); ch == 'e' || ch == 'E' {
		if err := l.scanExponent(); err != nil {
			return err
		}
		exp = true
	}

	// N.B. This is stricter than RFC 8259, which permits "-0".
	if neg && zero && !frac && !exp {
		return l.failErr(NegativeZero)
	}
	return nil
}

// scanFraction consumes "." followed by one or more digits.
func (l *Lexer) scanFraction() error {
	l.pos++ // skip "."
	if l.skipDigits() == 0 {
		return l.failErr(MissingFraction)
	}
	return nil
}

// scanExponent consumes an exponent marker, an optional sign, and one or more
// digits.
func (l *Lexer) scanExponent() error {
	if ch := l.peek(); ch != 'e' && ch != 'E' {
		return l.failErr(MissingExponentMark)
	}
	l.pos++
	if ch := l.peek(); ch == '+' || ch == '-' {
		l.pos++
	}
	if l.skipDigits() == 0 {
		return l.failErr(MissingExponent)
	}
	return nil
}

// scanString consumes a quoted string, checking but not decoding its escapes.
func (l *Lexer) scanString() error {
	if l.peek() != '"' {
		return l.failErr(MissingOpenQuote)
	}
	l.pos++

	for l.pos < l.src.Len() {
		ch := l.src.At(l.pos)
		l.pos++
		if ch == '"' {
			return nil
		} else if ch != '\\' {
			continue
		}

		// We are awaiting the completion of a \-escape.
		if l.pos >= l.src.Len() {
			break
		}
		switch l.src.At(l.pos) {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			l.pos++
		case 'u':
			l.pos++
			if err := l.scanHex4(); err != nil {
				return err
			}
		default:
			return l.failErr(BadEscape)
		}
	}
	return l.failErr(MissingCloseQuote)
}

// scanHex4 consumes exactly 4 hexadecimal digits.
func (l *Lexer) scanHex4() error {
	for i := 0; i < 4; i++ {
		if l.pos >= l.src.Len() || !isHexDigit(l.src.At(l.pos)) {
			return l.failErr(BadUnicodeEscape)
		}
		l.pos++
	}
	return nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func selfDelim(ch byte) (Token, bool) {
	switch ch {
	case '{':
		return LBrace, true
	case '}':
		return RBrace, true
	case '[':
		return LSquare, true
	case ']':
		return RSquare, true
	case ':':
		return Colon, true
	case ',':
		return Comma, true
	}
	return None, false
}
