package parser

import (
	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// parseTypefaces parses `Declare Typefaces({ alias: "path", ... })`.
func (p *Parser) parseTypefaces(ctx *ast.Context, declareTok token.Token) {
	p.pushFrame("inside Declare Typefaces")
	defer p.popFrame()

	if _, ok := p.expectKeyword("Typefaces"); !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.LBrace); !ok {
		p.synchronize()

		return
	}

	entries := ast.NewOrderedMap[ast.TypefaceEntry]()

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		p.parseTypefaceEntry(entries)

		if p.atPunct(token.Comma) {
			p.advance()
		} else if !p.atPunct(token.RBrace) {
			break
		}
	}

	closeBrace, _ := p.expectPunct(token.RBrace)
	p.expectPunct(token.RParen)

	span := position.Span{Start: declareTok.Span.Start, End: closeBrace.Span.End}

	if ctx.Typefaces != nil {
		p.emit(diagnostics.DuplicateSectionInScope("Typefaces", declareTok.Span, p.frameSnapshot()))
		p.mergeTypefaces(ctx.Typefaces, entries)
		ctx.Typefaces.Span = ctx.Typefaces.Span.Union(span)

		return
	}

	ctx.Typefaces = &ast.TypefacesDecl{Entries: entries, Span: span}
}

func (p *Parser) parseTypefaceEntry(entries *ast.OrderedMap[ast.TypefaceEntry]) {
	aliasTok, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.Colon); !ok {
		p.synchronize()

		return
	}

	pathTok, ok := p.expectStringLiteral()
	if !ok {
		p.synchronize()

		return
	}

	entry := ast.TypefaceEntry{
		Alias: aliasTok.Lexeme,
		Path:  ast.StringLiteral{Value: pathTok.Lexeme, Span: pathTok.Span},
		Span:  position.Span{Start: aliasTok.Span.Start, End: pathTok.Span.End},
	}

	if entries.Set(entry.Alias, entry) {
		p.emit(diagnostics.DuplicateKey(entry.Alias, entry.Span, p.frameSnapshot()))
	}
}

func (p *Parser) mergeTypefaces(into *ast.TypefacesDecl, from *ast.OrderedMap[ast.TypefaceEntry]) {
	from.Each(func(key string, val ast.TypefaceEntry) {
		if into.Entries.Set(key, val) {
			p.emit(diagnostics.DuplicateKey(key, val.Span, p.frameSnapshot()))
		}
	})
}
