package parser

import (
	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// parseAliases parses `Declare Aliases({ alias: canonical, ... })`.
func (p *Parser) parseAliases(ctx *ast.Context, declareTok token.Token) {
	p.pushFrame("inside Declare Aliases")
	defer p.popFrame()

	if _, ok := p.expectKeyword("Aliases"); !ok {
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

	entries := ast.NewOrderedMap[ast.AliasEntry]()

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		p.parseAliasEntry(entries)

		if p.atPunct(token.Comma) {
			p.advance()
		} else if !p.atPunct(token.RBrace) {
			break
		}
	}

	closeBrace, _ := p.expectPunct(token.RBrace)
	p.expectPunct(token.RParen)

	span := position.Span{Start: declareTok.Span.Start, End: closeBrace.Span.End}

	if ctx.Aliases != nil {
		p.emit(diagnostics.DuplicateSectionInScope("Aliases", declareTok.Span, p.frameSnapshot()))
		entries.Each(func(key string, val ast.AliasEntry) {
			if ctx.Aliases.Entries.Set(key, val) {
				p.emit(diagnostics.DuplicateKey(key, val.Span, p.frameSnapshot()))
			}
		})
		ctx.Aliases.Span = ctx.Aliases.Span.Union(span)

		return
	}

	ctx.Aliases = &ast.AliasesDecl{Entries: entries, Span: span}
}

func (p *Parser) parseAliasEntry(entries *ast.OrderedMap[ast.AliasEntry]) {
	fromTok, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.Colon); !ok {
		p.synchronize()

		return
	}

	toTok, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()

		return
	}

	entry := ast.AliasEntry{
		From: fromTok.Lexeme,
		To:   toTok.Lexeme,
		Span: position.Span{Start: fromTok.Span.Start, End: toTok.Span.End},
	}

	if entries.Set(entry.From, entry) {
		p.emit(diagnostics.DuplicateKey(entry.From, entry.Span, p.frameSnapshot()))
	}
}
