package parser

import (
	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// parseTopLevelVariables parses `Declare Variables({ ident: value, ... })`
// directly inside a context body.
func (p *Parser) parseTopLevelVariables(ctx *ast.Context, declareTok token.Token) {
	p.pushFrame("inside Declare Variables")
	defer p.popFrame()

	varTok, ok := p.expectKeyword("Variables")
	if !ok {
		p.synchronize()

		return
	}

	decl := p.parseVariablesBody(varTok)
	if decl == nil {
		return
	}

	if ctx.Variables != nil {
		p.emit(diagnostics.DuplicateSectionInScope("Variables", declareTok.Span, p.frameSnapshot()))
		decl.Entries.Each(func(key string, val ast.VariableEntry) {
			if ctx.Variables.Entries.Set(key, val) {
				p.emit(diagnostics.DuplicateKey(key, val.Span, p.frameSnapshot()))
			}
		})
		ctx.Variables.Span = ctx.Variables.Span.Union(decl.Span)

		return
	}

	ctx.Variables = decl
}

// parseVariablesBody parses the `({ ident: value, ... })` body shared by a
// top-level Declare Variables and a Themes Light/Dark group's nested
// `Declare Variables({...})`. nameTok anchors the returned span's start.
func (p *Parser) parseVariablesBody(nameTok token.Token) *ast.VariablesDecl {
	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return nil
	}

	if _, ok := p.expectPunct(token.LBrace); !ok {
		p.synchronize()

		return nil
	}

	entries := ast.NewOrderedMap[ast.VariableEntry]()

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		p.parseVariableEntry(entries)

		if p.atPunct(token.Comma) {
			p.advance()
		} else if !p.atPunct(token.RBrace) {
			break
		}
	}

	closeBrace, _ := p.expectPunct(token.RBrace)
	p.expectPunct(token.RParen)

	return &ast.VariablesDecl{Entries: entries, Span: position.Span{Start: nameTok.Span.Start, End: closeBrace.Span.End}}
}

func (p *Parser) parseVariableEntry(entries *ast.OrderedMap[ast.VariableEntry]) {
	doc := p.takeDoc()

	nameTok, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.Colon); !ok {
		p.synchronize()

		return
	}

	val, ok := p.parseValue(exprContext{insideVariablesBody: true})
	if !ok {
		p.synchronize()

		return
	}

	entry := ast.VariableEntry{
		Name:       nameTok.Lexeme,
		Value:      val,
		DocComment: doc,
		Span:       position.Span{Start: nameTok.Span.Start, End: val.GetSpan().End},
	}

	if entries.Set(entry.Name, entry) {
		p.emit(diagnostics.DuplicateKey(entry.Name, entry.Span, p.frameSnapshot()))
	}
}
