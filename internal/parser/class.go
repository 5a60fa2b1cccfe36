package parser

import (
	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// pseudoStateKeywords lists the state-selector keywords a class body or a
// PanoramicViewer breakpoint entry may nest. Kept as an explicit table so an
// arbitrary keyword occurring in that position produces UnexpectedToken
// rather than being silently absorbed as a state name.
var pseudoStateKeywords = map[string]bool{
	"Hover":  true,
	"Active": true,
	"Focus":  true,
}

// parseClasses parses `Declare Class({ name({...}), ... })`.
func (p *Parser) parseClasses(ctx *ast.Context, declareTok token.Token) {
	p.pushFrame("inside Declare Class")
	defer p.popFrame()

	if _, ok := p.expectKeyword("Class"); !ok {
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

	entries := ast.NewOrderedMap[*ast.ClassDecl]()

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		p.parseClassDecl(entries)

		if p.atPunct(token.Comma) {
			p.advance()
		} else if !p.atPunct(token.RBrace) {
			break
		}
	}

	closeBrace, _ := p.expectPunct(token.RBrace)
	p.expectPunct(token.RParen)

	span := position.Span{Start: declareTok.Span.Start, End: closeBrace.Span.End}

	if ctx.Classes != nil {
		p.emit(diagnostics.DuplicateSectionInScope("Class", declareTok.Span, p.frameSnapshot()))
		entries.Each(func(key string, val *ast.ClassDecl) {
			if ctx.Classes.Entries.Set(key, val) {
				p.emit(diagnostics.DuplicateKey(key, val.Span, p.frameSnapshot()))
			}
		})
		ctx.Classes.Span = ctx.Classes.Span.Union(span)

		return
	}

	ctx.Classes = &ast.ClassesDecl{Entries: entries, Span: span}
}

func (p *Parser) parseClassDecl(entries *ast.OrderedMap[*ast.ClassDecl]) {
	doc := p.takeDoc()

	nameTok, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()

		return
	}

	p.pushFrame("inside Class \"" + nameTok.Lexeme + "\"")
	defer p.popFrame()

	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.LBrace); !ok {
		p.synchronize()

		return
	}

	decl := &ast.ClassDecl{
		Name:         nameTok.Lexeme,
		PseudoStates: ast.NewOrderedMap[*ast.StyleBlock](),
		Panoramic:    ast.NewOrderedMap[*ast.PanoramicBlock](),
		DocComment:   doc,
	}

	haveDeriving, haveImportant := false, false

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		switch {
		case p.atKeyword("Extending") || p.atKeyword("Deriving"):
			if haveDeriving {
				p.emit(diagnostics.DuplicateSectionInScope("Extending/Deriving", p.current.Span, p.frameSnapshot()))
			}

			haveDeriving = true
			p.parseDerivingEntry(decl)
		case p.atKeyword("Important"):
			if haveImportant {
				p.emit(diagnostics.DuplicateSectionInScope("Important", p.current.Span, p.frameSnapshot()))
			}

			haveImportant = true
			p.parseImportantEntry(decl)
		case p.atKeyword("Stylesheet"):
			p.parseStylesheetEntry(decl)
		case pseudoStateKeywords[p.current.Lexeme] && p.current.Kind == token.Keyword:
			p.parsePseudoStateEntry(decl.PseudoStates, 1)
		case p.atKeyword("PanoramicViewer"):
			p.parsePanoramicViewer(decl, 1)
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

	decl.Span = position.Span{Start: nameTok.Span.Start, End: closeBrace.Span.End}

	if entries.Set(decl.Name, decl) {
		p.emit(diagnostics.DuplicateKey(decl.Name, decl.Span, p.frameSnapshot()))
	}
}

func (p *Parser) parseDerivingEntry(decl *ast.ClassDecl) {
	p.advance()

	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return
	}

	parentTok, ok := p.expectStringLiteral()
	if !ok {
		p.synchronize()

		return
	}

	p.expectPunct(token.RParen)

	decl.Deriving = parentTok.Lexeme
}

func (p *Parser) parseImportantEntry(decl *ast.ClassDecl) {
	p.advance()

	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return
	}

	valTok, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()

		return
	}

	p.expectPunct(token.RParen)

	switch valTok.Lexeme {
	case "true":
		v := true
		decl.Important = &v
	case "false":
		v := false
		decl.Important = &v
	default:
		p.emit(diagnostics.UnexpectedToken(valTok, p.frameSnapshot()))
	}
}

func (p *Parser) parseStylesheetEntry(decl *ast.ClassDecl) {
	tok := p.current
	p.advance()

	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return
	}

	props, ok := p.parsePropertyList()

	closeParen, _ := p.expectPunct(token.RParen)

	if !ok {
		return
	}

	block := &ast.StyleBlock{Properties: props, Span: position.Span{Start: tok.Span.Start, End: closeParen.Span.End}}

	if decl.Stylesheet != nil {
		p.emit(diagnostics.DuplicateSectionInScope("Stylesheet", tok.Span, p.frameSnapshot()))
		props.Each(func(key string, val ast.Value) {
			if decl.Stylesheet.Properties.Set(key, val) {
				p.emit(diagnostics.DuplicateProperty(key, val.GetSpan(), p.frameSnapshot()))
			}
		})

		return
	}

	decl.Stylesheet = block
}

// parsePseudoStateEntry parses one `Hover({...})`-shaped state block, merging
// duplicate property names and reporting DuplicateSectionInScope if the same
// state name occurs twice within the same states map.
func (p *Parser) parsePseudoStateEntry(states *ast.OrderedMap[*ast.StyleBlock], depth int) {
	if depth > maxNestingDepth {
		p.emit(diagnostics.ExcessiveNesting(maxNestingDepth, p.current.Span, p.frameSnapshot()))
		p.synchronize()

		return
	}

	nameTok := p.current
	p.advance()

	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return
	}

	props, ok := p.parsePropertyList()

	closeParen, _ := p.expectPunct(token.RParen)

	if !ok {
		return
	}

	block := &ast.StyleBlock{Properties: props, Span: position.Span{Start: nameTok.Span.Start, End: closeParen.Span.End}}

	if existing, found := states.Get(nameTok.Lexeme); found {
		p.emit(diagnostics.DuplicateSectionInScope(nameTok.Lexeme, nameTok.Span, p.frameSnapshot()))
		props.Each(func(key string, val ast.Value) {
			if existing.Properties.Set(key, val) {
				p.emit(diagnostics.DuplicateProperty(key, val.GetSpan(), p.frameSnapshot()))
			}
		})

		return
	}

	states.Set(nameTok.Lexeme, block)
}

// parsePanoramicViewer parses `PanoramicViewer({ breakpointIdent({ ... }), ... })`,
// where each breakpoint entry's body is itself an optional Stylesheet plus
// zero or more pseudo-state blocks, recursively bounded by maxNestingDepth.
func (p *Parser) parsePanoramicViewer(decl *ast.ClassDecl, depth int) {
	if depth > maxNestingDepth {
		p.emit(diagnostics.ExcessiveNesting(maxNestingDepth, p.current.Span, p.frameSnapshot()))
		p.synchronize()

		return
	}

	p.advance()

	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.LBrace); !ok {
		p.synchronize()

		return
	}

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		p.parsePanoramicBreakpoint(decl, depth+1)

		if p.atPunct(token.Comma) {
			p.advance()
		} else if !p.atPunct(token.RBrace) {
			break
		}
	}

	p.expectPunct(token.RBrace)
	p.expectPunct(token.RParen)
}

func (p *Parser) parsePanoramicBreakpoint(decl *ast.ClassDecl, depth int) {
	nameTok, ok := p.expectIdentifier()
	if !ok {
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

	block := &ast.PanoramicBlock{Breakpoint: nameTok.Lexeme, States: ast.NewOrderedMap[*ast.StyleBlock]()}

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		switch {
		case p.atKeyword("Stylesheet"):
			tok := p.current
			p.advance()

			if _, ok := p.expectPunct(token.LParen); !ok {
				p.synchronize()

				break
			}

			props, ok := p.parsePropertyList()

			closeParen, _ := p.expectPunct(token.RParen)

			if ok {
				sheet := &ast.StyleBlock{Properties: props, Span: position.Span{Start: tok.Span.Start, End: closeParen.Span.End}}

				if block.Stylesheet != nil {
					p.emit(diagnostics.DuplicateSectionInScope("Stylesheet", tok.Span, p.frameSnapshot()))
					props.Each(func(key string, val ast.Value) {
						if block.Stylesheet.Properties.Set(key, val) {
							p.emit(diagnostics.DuplicateProperty(key, val.GetSpan(), p.frameSnapshot()))
						}
					})
				} else {
					block.Stylesheet = sheet
				}
			}
		case pseudoStateKeywords[p.current.Lexeme] && p.current.Kind == token.Keyword:
			p.parsePseudoStateEntry(block.States, depth)
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

	block.Span = position.Span{Start: nameTok.Span.Start, End: closeBrace.Span.End}

	if existing, found := decl.Panoramic.Get(block.Breakpoint); found {
		p.emit(diagnostics.DuplicateSectionInScope(block.Breakpoint, nameTok.Span, p.frameSnapshot()))

		if existing.Stylesheet == nil {
			existing.Stylesheet = block.Stylesheet
		} else if block.Stylesheet != nil {
			block.Stylesheet.Properties.Each(func(key string, val ast.Value) {
				if existing.Stylesheet.Properties.Set(key, val) {
					p.emit(diagnostics.DuplicateProperty(key, val.GetSpan(), p.frameSnapshot()))
				}
			})
		}

		block.States.Each(func(key string, val *ast.StyleBlock) {
			if prior, found := existing.States.Get(key); found {
				val.Properties.Each(func(pk string, pv ast.Value) {
					if prior.Properties.Set(pk, pv) {
						p.emit(diagnostics.DuplicateProperty(pk, pv.GetSpan(), p.frameSnapshot()))
					}
				})
			} else {
				existing.States.Set(key, val)
			}
		})

		return
	}

	decl.Panoramic.Set(block.Breakpoint, block)
}
