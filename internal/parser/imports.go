package parser

import (
	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// parseImports parses `Declare Imports({ "path", ... })` and merges it into
// ctx.Imports, which is a plain ordered list rather than a keyed map, so
// re-declaring the family just appends.
func (p *Parser) parseImports(ctx *ast.Context, declareTok token.Token) {
	p.pushFrame("inside Declare Imports")
	defer p.popFrame()

	if _, ok := p.expectKeyword("Imports"); !ok {
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

	var items []ast.StringLiteral

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		tok, ok := p.expectStringLiteral()
		if ok {
			items = append(items, ast.StringLiteral{Value: tok.Lexeme, Span: tok.Span})
		} else {
			p.synchronize()
		}

		if p.atPunct(token.Comma) {
			p.advance()
		} else if !p.atPunct(token.RBrace) {
			break
		}
	}

	closeBrace, _ := p.expectPunct(token.RBrace)
	p.expectPunct(token.RParen)

	span := position.Span{Start: declareTok.Span.Start, End: closeBrace.Span.End}

	if ctx.Imports != nil {
		p.emit(diagnostics.DuplicateSectionInScope("Imports", declareTok.Span, p.frameSnapshot()))
		ctx.Imports.Items = append(ctx.Imports.Items, items...)
		ctx.Imports.Span = ctx.Imports.Span.Union(span)

		return
	}

	ctx.Imports = &ast.ImportsDecl{Items: items, Span: span}
}
