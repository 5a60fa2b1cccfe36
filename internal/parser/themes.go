package parser

import (
	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// parseThemes parses:
//
//	Declare Themes({ Light({ Declare Variables({...}) }), Dark({...}) })
//
// Either side may be absent; each may appear at most once.
func (p *Parser) parseThemes(ctx *ast.Context, declareTok token.Token) {
	p.pushFrame("inside Declare Themes")
	defer p.popFrame()

	if _, ok := p.expectKeyword("Themes"); !ok {
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

	decl := &ast.ThemesDecl{}

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		switch {
		case p.atKeyword("Light"):
			p.parseThemeGroup(decl, true)
		case p.atKeyword("Dark"):
			p.parseThemeGroup(decl, false)
		default:
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
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

	decl.Span = position.Span{Start: declareTok.Span.Start, End: closeBrace.Span.End}

	if ctx.Themes != nil {
		p.emit(diagnostics.DuplicateSectionInScope("Themes", declareTok.Span, p.frameSnapshot()))
		p.mergeThemesInto(ctx.Themes, decl)
		ctx.Themes.Span = ctx.Themes.Span.Union(decl.Span)

		return
	}

	ctx.Themes = decl
}

func (p *Parser) parseThemeGroup(decl *ast.ThemesDecl, light bool) {
	label := "Dark"
	if light {
		label = "Light"
	}

	nameTok, _ := p.expectKeyword(label)

	p.pushFrame("inside " + label + " theme group")
	defer p.popFrame()

	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.LBrace); !ok {
		p.synchronize()

		return
	}

	var vars *ast.VariablesDecl

	if _, ok := p.expectKeyword("Declare"); ok {
		if varTok, ok := p.expectKeyword("Variables"); ok {
			vars = p.parseVariablesBody(varTok)
		} else {
			p.synchronize()
		}
	} else {
		p.synchronize()
	}

	closeBrace, _ := p.expectPunct(token.RBrace)
	p.expectPunct(token.RParen)

	group := &ast.ThemeGroup{Variables: vars, Span: position.Span{Start: nameTok.Span.Start, End: closeBrace.Span.End}}

	existing := decl.Dark
	if light {
		existing = decl.Light
	}

	if existing != nil {
		p.emit(diagnostics.DuplicateSectionInScope(label, nameTok.Span, p.frameSnapshot()))

		if existing.Variables != nil && group.Variables != nil {
			group.Variables.Entries.Each(func(key string, val ast.VariableEntry) {
				if existing.Variables.Entries.Set(key, val) {
					p.emit(diagnostics.DuplicateKey(key, val.Span, p.frameSnapshot()))
				}
			})
		} else if existing.Variables == nil {
			existing.Variables = group.Variables
		}

		existing.Span = existing.Span.Union(group.Span)

		return
	}

	if light {
		decl.Light = group
	} else {
		decl.Dark = group
	}
}

func (p *Parser) mergeThemesInto(into, from *ast.ThemesDecl) {
	if from.Light != nil {
		if into.Light == nil {
			into.Light = from.Light
		} else {
			p.emit(diagnostics.DuplicateSectionInScope("Light", from.Light.Span, p.frameSnapshot()))

			if from.Light.Variables != nil && into.Light.Variables != nil {
				from.Light.Variables.Entries.Each(func(key string, val ast.VariableEntry) {
					if into.Light.Variables.Entries.Set(key, val) {
						p.emit(diagnostics.DuplicateKey(key, val.Span, p.frameSnapshot()))
					}
				})
			}
		}
	}

	if from.Dark != nil {
		if into.Dark == nil {
			into.Dark = from.Dark
		} else {
			p.emit(diagnostics.DuplicateSectionInScope("Dark", from.Dark.Span, p.frameSnapshot()))

			if from.Dark.Variables != nil && into.Dark.Variables != nil {
				from.Dark.Variables.Entries.Each(func(key string, val ast.VariableEntry) {
					if into.Dark.Variables.Entries.Set(key, val) {
						p.emit(diagnostics.DuplicateKey(key, val.Span, p.frameSnapshot()))
					}
				})
			}
		}
	}
}
