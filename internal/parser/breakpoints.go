package parser

import (
	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// parseBreakpoints parses:
//
//	Declare Breakpoints({ MobileFirst({ ident: "size", ... }), DesktopFirst({ ... }) })
//
// Either group may be absent; each may appear at most once.
func (p *Parser) parseBreakpoints(ctx *ast.Context, declareTok token.Token) {
	p.pushFrame("inside Declare Breakpoints")
	defer p.popFrame()

	if _, ok := p.expectKeyword("Breakpoints"); !ok {
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

	decl := &ast.BreakpointsDecl{}

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		switch {
		case p.atKeyword("MobileFirst"):
			p.parseBreakpointGroup(decl, true)
		case p.atKeyword("DesktopFirst"):
			p.parseBreakpointGroup(decl, false)
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

	if ctx.Breakpoints != nil {
		p.emit(diagnostics.DuplicateSectionInScope("Breakpoints", declareTok.Span, p.frameSnapshot()))
		p.mergeBreakpointsInto(ctx.Breakpoints, decl)
		ctx.Breakpoints.Span = ctx.Breakpoints.Span.Union(decl.Span)

		return
	}

	ctx.Breakpoints = decl
}

func (p *Parser) parseBreakpointGroup(decl *ast.BreakpointsDecl, mobileFirst bool) {
	label := "DesktopFirst"
	if mobileFirst {
		label = "MobileFirst"
	}

	nameTok, _ := p.expectKeyword(label)

	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.LBrace); !ok {
		p.synchronize()

		return
	}

	entries := ast.NewOrderedMap[ast.BreakpointEntry]()

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		p.parseBreakpointEntry(entries)

		if p.atPunct(token.Comma) {
			p.advance()
		} else if !p.atPunct(token.RBrace) {
			break
		}
	}

	closeBrace, _ := p.expectPunct(token.RBrace)
	p.expectPunct(token.RParen)

	group := &ast.BreakpointGroup{Entries: entries, Span: position.Span{Start: nameTok.Span.Start, End: closeBrace.Span.End}}

	existing := decl.DesktopFirst
	if mobileFirst {
		existing = decl.MobileFirst
	}

	if existing != nil {
		p.emit(diagnostics.DuplicateSectionInScope(label, nameTok.Span, p.frameSnapshot()))
		entries.Each(func(key string, val ast.BreakpointEntry) {
			if existing.Entries.Set(key, val) {
				p.emit(diagnostics.DuplicateKey(key, val.Span, p.frameSnapshot()))
			}
		})
		existing.Span = existing.Span.Union(group.Span)

		return
	}

	if mobileFirst {
		decl.MobileFirst = group
	} else {
		decl.DesktopFirst = group
	}
}

func (p *Parser) parseBreakpointEntry(entries *ast.OrderedMap[ast.BreakpointEntry]) {
	nameTok, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.Colon); !ok {
		p.synchronize()

		return
	}

	sizeTok, ok := p.expectStringLiteral()
	if !ok {
		p.synchronize()

		return
	}

	entry := ast.BreakpointEntry{
		Name: nameTok.Lexeme,
		Size: ast.StringLiteral{Value: sizeTok.Lexeme, Span: sizeTok.Span},
		Span: position.Span{Start: nameTok.Span.Start, End: sizeTok.Span.End},
	}

	if entries.Set(entry.Name, entry) {
		p.emit(diagnostics.DuplicateKey(entry.Name, entry.Span, p.frameSnapshot()))
	}
}

func (p *Parser) mergeBreakpointsInto(into, from *ast.BreakpointsDecl) {
	if from.MobileFirst != nil {
		if into.MobileFirst == nil {
			into.MobileFirst = from.MobileFirst
		} else {
			p.emit(diagnostics.DuplicateSectionInScope("MobileFirst", from.MobileFirst.Span, p.frameSnapshot()))
			from.MobileFirst.Entries.Each(func(key string, val ast.BreakpointEntry) {
				if into.MobileFirst.Entries.Set(key, val) {
					p.emit(diagnostics.DuplicateKey(key, val.Span, p.frameSnapshot()))
				}
			})
		}
	}

	if from.DesktopFirst != nil {
		if into.DesktopFirst == nil {
			into.DesktopFirst = from.DesktopFirst
		} else {
			p.emit(diagnostics.DuplicateSectionInScope("DesktopFirst", from.DesktopFirst.Span, p.frameSnapshot()))
			from.DesktopFirst.Entries.Each(func(key string, val ast.BreakpointEntry) {
				if into.DesktopFirst.Entries.Set(key, val) {
					p.emit(diagnostics.DuplicateKey(key, val.Span, p.frameSnapshot()))
				}
			})
		}
	}
}
