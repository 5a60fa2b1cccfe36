package parser

import (
	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// parseAnimations parses `Declare Animation({ name({ stops }), ... })`.
func (p *Parser) parseAnimations(ctx *ast.Context, declareTok token.Token) {
	p.pushFrame("inside Declare Animation")
	defer p.popFrame()

	if _, ok := p.expectKeyword("Animation"); !ok {
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

	entries := ast.NewOrderedMap[*ast.AnimationDecl]()

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		p.parseAnimationDecl(entries)

		if p.atPunct(token.Comma) {
			p.advance()
		} else if !p.atPunct(token.RBrace) {
			break
		}
	}

	closeBrace, _ := p.expectPunct(token.RBrace)
	p.expectPunct(token.RParen)

	span := position.Span{Start: declareTok.Span.Start, End: closeBrace.Span.End}

	if ctx.Animations != nil {
		p.emit(diagnostics.DuplicateSectionInScope("Animation", declareTok.Span, p.frameSnapshot()))
		entries.Each(func(key string, val *ast.AnimationDecl) {
			if ctx.Animations.Entries.Set(key, val) {
				p.emit(diagnostics.DuplicateKey(key, val.Span, p.frameSnapshot()))
			}
		})
		ctx.Animations.Span = ctx.Animations.Span.Union(span)

		return
	}

	ctx.Animations = &ast.AnimationsDecl{Entries: entries, Span: span}
}

func (p *Parser) parseAnimationDecl(entries *ast.OrderedMap[*ast.AnimationDecl]) {
	doc := p.takeDoc()

	nameTok, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()

		return
	}

	p.pushFrame("inside Animation \"" + nameTok.Lexeme + "\"")
	defer p.popFrame()

	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.LBrace); !ok {
		p.synchronize()

		return
	}

	var stops []ast.Stop

	haveFrom, haveHalfway, haveTo := false, false, false

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		stop, ok := p.parseAnimationStop()
		if ok {
			switch stop.Kind {
			case ast.StopFrom:
				if haveFrom {
					p.emit(diagnostics.InvalidAnimationStop("From", stop.Span, p.frameSnapshot()))
				}

				haveFrom = true
			case ast.StopHalfway:
				if haveHalfway {
					p.emit(diagnostics.InvalidAnimationStop("Halfway", stop.Span, p.frameSnapshot()))
				}

				haveHalfway = true
			case ast.StopTo:
				if haveTo {
					p.emit(diagnostics.InvalidAnimationStop("To", stop.Span, p.frameSnapshot()))
				}

				haveTo = true
			}

			stops = append(stops, stop)
		}

		if p.atPunct(token.Comma) {
			p.advance()
		} else if !p.atPunct(token.RBrace) {
			break
		}
	}

	closeBrace, _ := p.expectPunct(token.RBrace)
	p.expectPunct(token.RParen)

	decl := &ast.AnimationDecl{
		Name:       nameTok.Lexeme,
		Stops:      stops,
		DocComment: doc,
		Span:       position.Span{Start: nameTok.Span.Start, End: closeBrace.Span.End},
	}

	if entries.Set(decl.Name, decl) {
		p.emit(diagnostics.DuplicateKey(decl.Name, decl.Span, p.frameSnapshot()))
	}
}

func (p *Parser) parseAnimationStop() (ast.Stop, bool) {
	var kind ast.StopKind

	switch {
	case p.atKeyword("From"):
		kind = ast.StopFrom
	case p.atKeyword("Halfway"):
		kind = ast.StopHalfway
	case p.atKeyword("To"):
		kind = ast.StopTo
	case p.atKeyword("Fraction"):
		kind = ast.StopFraction
	case p.atKeyword("Progressive"):
		kind = ast.StopProgressive
	default:
		p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
		p.synchronize()

		return ast.Stop{}, false
	}

	startTok := p.current
	p.advance()

	if _, ok := p.expectPunct(token.LParen); !ok {
		p.synchronize()

		return ast.Stop{}, false
	}

	stop := ast.Stop{Kind: kind}

	switch kind {
	case ast.StopFraction:
		numTok, ok := p.expectNumber()
		if !ok {
			p.synchronize()

			return ast.Stop{}, false
		}

		if numTok.Number < 0 || numTok.Number > 1 {
			p.emit(diagnostics.FractionOutOfRange(numTok.Number, numTok.Span, p.frameSnapshot()))
		}

		stop.Fraction = numTok.Number

		if _, ok := p.expectPunct(token.Comma); !ok {
			p.synchronize()

			return ast.Stop{}, false
		}
	case ast.StopProgressive:
		numTok, ok := p.expectNumber()
		if !ok {
			p.synchronize()

			return ast.Stop{}, false
		}

		if numTok.Number <= 0 || numTok.Number != float64(int(numTok.Number)) {
			p.emit(diagnostics.NonPositiveProgressive(numTok.Number, numTok.Span, p.frameSnapshot()))
		}

		stop.Progressive = int(numTok.Number)

		if _, ok := p.expectPunct(token.Comma); !ok {
			p.synchronize()

			return ast.Stop{}, false
		}
	}

	props, ok := p.parsePropertyList()
	if !ok {
		p.synchronize()

		return ast.Stop{}, false
	}

	closeParen, _ := p.expectPunct(token.RParen)

	stop.Properties = props
	stop.Span = position.Span{Start: startTok.Span.Start, End: closeParen.Span.End}

	return stop, true
}

// parsePropertyList parses the shared `{ property: value, ... }` shape used
// by animation stops and class style blocks.
func (p *Parser) parsePropertyList() (*ast.OrderedMap[ast.Value], bool) {
	if _, ok := p.expectPunct(token.LBrace); !ok {
		return nil, false
	}

	props := ast.NewOrderedMap[ast.Value]()

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.atPunct(token.Comma) {
			p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))
			p.advance()

			continue
		}

		p.parseProperty(props)

		if p.atPunct(token.Comma) {
			p.advance()
		} else if !p.atPunct(token.RBrace) {
			break
		}
	}

	if _, ok := p.expectPunct(token.RBrace); !ok {
		return nil, false
	}

	return props, true
}

func (p *Parser) parseProperty(props *ast.OrderedMap[ast.Value]) {
	nameTok, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()

		return
	}

	if _, ok := p.expectPunct(token.Colon); !ok {
		p.synchronize()

		return
	}

	val, ok := p.parseValue(exprContext{propertyName: nameTok.Lexeme})
	if !ok {
		p.synchronize()

		return
	}

	if props.Set(nameTok.Lexeme, val) {
		p.emit(diagnostics.DuplicateProperty(nameTok.Lexeme, val.GetSpan(), p.frameSnapshot()))
	}
}
