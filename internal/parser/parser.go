// Package parser implements the Nenyr recursive-descent parser: the
// context parser, the eight Declare-family sub-parsers, and the shared
// expression parser they call into for value positions.
package parser

import (
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/lexer"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// maxNestingDepth bounds Class → PanoramicViewer → state-block recursion so
// that adversarial input cannot exhaust the goroutine stack.
const maxNestingDepth = 64

// Parser drives one parse of one source unit. It is not safe for concurrent
// use, and it is not reusable: construct a new Parser per Parse call.
type Parser struct {
	lex      *lexer.Lexer
	current  token.Token
	peek     token.Token
	source   string
	filename string

	diags  []diagnostics.Diagnostic
	frames []string // Context stack, outermost first; mirrors the diagnostic builder's contract.

	pendingDoc string // Text of the most recently lexed doc comment, consumed by the next entry.
	fatal      bool   // Set once a fatal diagnostic (see Kind.IsFatal) has been emitted.
}

// New creates a parser over source. filename is attached to diagnostics for
// callers juggling multiple source units; it may be empty.
func New(source, filename string) *Parser {
	p := &Parser{
		lex:      lexer.NewWithFilename(source, filename),
		source:   source,
		filename: filename,
	}

	p.advance()
	p.advance()

	return p
}

// advance moves the token window forward by one, skipping doc comments into
// pendingDoc and lexer error tokens into diagnostics rather than exposing
// either to the grammar. A lexer error is recorded via FromLexError and the
// scan resumes at the next token, which is where the lexer itself already
// left the cursor; this is what "synchronizes" past the bad input.
func (p *Parser) advance() {
	p.current = p.peek

	for {
		next := p.lex.NextToken()

		switch next.Kind {
		case token.CommentLine:
			p.pendingDoc = next.Lexeme

			continue
		case token.Error:
			p.emit(diagnostics.FromLexError(next, p.frameSnapshot()))

			continue
		}

		p.peek = next

		break
	}
}

// takeDoc consumes and returns the doc comment pending before the token the
// parser is currently sitting on, if any.
func (p *Parser) takeDoc() string {
	doc := p.pendingDoc
	p.pendingDoc = ""

	return doc
}

// emit records a diagnostic, attaching the source window RenderWithSource
// needs. Every parser failure path is required to funnel through here. A
// fatal-kind diagnostic latches p.fatal so callers can stop parsing further
// declarations instead of pressing on over corrupted state.
func (p *Parser) emit(d diagnostics.Diagnostic) {
	d.Source = diagnostics.SourceContextFor(p.source, d.Span)
	p.diags = append(p.diags, d)

	if d.Kind.IsFatal() {
		p.fatal = true
	}
}

func (p *Parser) pushFrame(f string) {
	p.frames = append(p.frames, f)
}

func (p *Parser) popFrame() {
	if len(p.frames) > 0 {
		p.frames = p.frames[:len(p.frames)-1]
	}
}

func (p *Parser) frameSnapshot() []string {
	out := make([]string, len(p.frames))
	copy(out, p.frames)

	return out
}

func (p *Parser) atKeyword(kw string) bool {
	return p.current.Kind == token.Keyword && p.current.Lexeme == kw
}

func (p *Parser) atPunct(pt token.Punct) bool {
	return p.current.Kind == token.PunctKind && p.current.Punct == pt
}

func (p *Parser) expectKeyword(kw string) (token.Token, bool) {
	if p.atKeyword(kw) {
		tok := p.current
		p.advance()

		return tok, true
	}

	p.emit(diagnostics.ExpectedKeyword(kw, p.current, p.frameSnapshot()))

	return p.current, false
}

func (p *Parser) expectPunct(pt token.Punct) (token.Token, bool) {
	if p.atPunct(pt) {
		tok := p.current
		p.advance()

		return tok, true
	}

	p.emit(diagnostics.ExpectedPunct(pt, p.current, p.frameSnapshot()))

	return p.current, false
}

func (p *Parser) expectIdentifier() (token.Token, bool) {
	if p.current.Kind == token.Identifier {
		tok := p.current
		p.advance()

		return tok, true
	}

	p.emit(diagnostics.ExpectedIdentifier(p.current, p.frameSnapshot()))

	return p.current, false
}

func (p *Parser) expectNumber() (token.Token, bool) {
	if p.current.Kind == token.Number {
		tok := p.current
		p.advance()

		return tok, true
	}

	p.emit(diagnostics.ExpectedNumber(p.current, p.frameSnapshot()))

	return p.current, false
}

func (p *Parser) expectStringLiteral() (token.Token, bool) {
	if p.current.Kind == token.StringLiteral {
		tok := p.current
		p.advance()

		return tok, true
	}

	p.emit(diagnostics.ExpectedString(p.current, p.frameSnapshot()))

	return p.current, false
}

// synchronize advances the token stream to the next top-level comma or a
// matching close brace, tracking brace/paren depth so that recovery never
// escapes the production it was called from (§9 "the parser tracks brace
// depth to avoid escaping the enclosing production prematurely").
func (p *Parser) synchronize() {
	depth := 0

	for {
		switch {
		case p.current.Kind == token.EOF:
			return
		case p.atPunct(token.Comma) && depth == 0:
			return
		case p.atPunct(token.LBrace) || p.atPunct(token.LParen):
			depth++
		case p.atPunct(token.RBrace) || p.atPunct(token.RParen):
			if depth == 0 {
				return
			}

			depth--
		}

		p.advance()
	}
}
