// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package spotless

// DefaultMaxDepth is the maximum nesting depth of objects and arrays accepted
// by a Parser unless a different limit is set with LimitDepth.
const DefaultMaxDepth = 10000

// A Parser checks that the tokens produced by a Lexer form exactly one JSON
// value followed by the end of the input. It does not construct any
// representation of the value.
//
// A Parser performs a single validation pass: construct a fresh Lexer and
// Parser for each input.
type Parser struct {
	lex      *Lexer
	tok      Token // current token, copied from lex
	err      *Error
	depth    int // current nesting depth
	maxDepth int
	used     bool
}

// NewParser constructs a parser that consumes tokens from lex.
func NewParser(lex *Lexer) *Parser { return &Parser{lex: lex} }

// LimitDepth sets the maximum nesting depth of objects and arrays the parser
// will accept. If n == 0, DefaultMaxDepth is used. LimitDepth panics if n < 0.
func (p *Parser) LimitDepth(n int) {
	if n < 0 {
		panic("spotless: negative depth limit")
	}
	p.maxDepth = n
}

// Token returns the current token of the parser.
func (p *Parser) Token() Token { return p.tok }

// Err returns the error reported by Parse, or nil.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// Parse reads a single value from the lexer and checks that nothing but
// whitespace follows it. It returns nil if the input is valid; otherwise it
// reports the first failure found, as an error of concrete type *Error.
// Failures reported by the lexer are returned unmodified.
//
// Parse panics if it is called more than once on the same Parser.
func (p *Parser) Parse() (err error) {
	if p.used {
		panic("spotless: parser has already been used")
	}
	p.used = true
	defer p.recoverParseError(&err)

	p.advance()
	p.parseValue(0)
	if p.tok != EOF {
		p.fail(ExpectedEOF)
	}
	return nil
}

// parseValue consumes a single value of any type.  If within != 0, the value
// is nested in a container, and within is the failure to report if the input
// ends here.
func (p *Parser) parseValue(within Kind) {
	switch p.tok {
	case Null, False, True, Number, String:
		p.advance()
	case LBrace:
		p.parseObject()
	case LSquare:
		p.parseArray()
	case EOF:
		if within != 0 {
			p.fail(within)
		}
		p.fail(ExpectedValue)
	default:
		p.fail(ExpectedValue)
	}
}

// parseObject consumes an object.
// Precondition: token == LBrace.
func (p *Parser) parseObject() {
	p.enter()
	switch p.advance() {
	case RBrace:
		p.advance()
		p.leave()
		return // empty object
	case String:
		p.parseMember()
	case EOF:
		p.fail(UnterminatedObject)
	default:
		p.fail(ExpectedPairOrEnd)
	}

	// Check whether we have more members (",") or are done ("}").
	for {
		switch p.tok {
		case RBrace:
			p.advance()
			p.leave()
			return
		case Comma:
			p.advance()
			p.parseMember()
		case EOF:
			p.fail(UnterminatedObject)
		default:
			p.fail(ExpectedComma)
		}
	}
}

// parseMember consumes a single "key": value member.
func (p *Parser) parseMember() {
	p.expect(String, ExpectedKey, UnterminatedObject)
	p.expect(Colon, ExpectedColon, UnterminatedObject)
	p.parseValue(UnterminatedObject)
}

// parseArray consumes an array.
// Precondition: token == LSquare.
func (p *Parser) parseArray() {
	p.enter()
	switch tok := p.advance(); {
	case tok == RSquare:
		p.advance()
		p.leave()
		return // empty array
	case tok == EOF:
		p.fail(UnterminatedArray)
	case !tok.isValueStart():
		p.fail(NotArray)
	}
	p.parseValue(UnterminatedArray)

	for {
		switch p.tok {
		case RSquare:
			p.advance()
			p.leave()
			return
		case Comma:
			p.advance()
			p.parseValue(UnterminatedArray)
		case EOF:
			p.fail(UnterminatedArray)
		default:
			p.fail(ExpectedComma)
		}
	}
}

// expect consumes a token of type want, or fails with bad.  If the input ends
// instead, it fails with eof.
func (p *Parser) expect(want Token, bad, eof Kind) {
	if p.tok == EOF {
		p.fail(eof)
	} else if p.tok != want {
		p.fail(bad)
	}
	p.advance()
}

// advance fetches the next token from the lexer and returns it.
func (p *Parser) advance() Token {
	tok, err := p.lex.Next()
	if err != nil {
		panic(p.lex.err)
	}
	p.tok = tok
	return tok
}

func (p *Parser) enter() {
	p.depth++
	limit := p.maxDepth
	if limit == 0 {
		limit = DefaultMaxDepth
	}
	if p.depth > limit {
		p.fail(TooDeep)
	}
}

func (p *Parser) leave() { p.depth-- }

// fail aborts the parse with a failure of kind k at the current token.
func (p *Parser) fail(k Kind) {
	panic(&Error{Kind: k, Offset: p.lex.Span().Pos})
}

func (p *Parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		err, ok := perr.(*Error)
		if !ok {
			panic(perr)
		}
		p.err = err
		*errp = err
	}
}
