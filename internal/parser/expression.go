package parser

import (
	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// animationRefProperties is the small, explicit property-to-reference-kind
// table Design Notes §9 calls for: property names whose interpolations
// resolve to an AnimationRef rather than a VariableRef. Kept as one static table rather than threaded
// global dispatch state.
var animationRefProperties = map[string]bool{
	"animationName": true,
	"animation":     true,
}

// exprContext carries just enough surrounding information for parseValue to
// decide what kind of reference an interpolation produces (§4.3, §9).
// insideVariablesBody forces every interpolation to VariableRef regardless
// of propertyName, matching "inside Declare Variables body an interpolation
// is always VariableRef".
type exprContext struct {
	insideVariablesBody bool
	propertyName        string
}

func (c exprContext) refKind() refKind {
	if c.insideVariablesBody {
		return refKindVariable
	}

	if animationRefProperties[c.propertyName] {
		return refKindAnimation
	}

	return refKindVariable
}

type refKind int

const (
	refKindVariable refKind = iota
	refKindAnimation
)

func isValidIdentifierShape(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]

		isAlpha := ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
		isDigit := ch >= '0' && ch <= '9'

		if i == 0 && !isAlpha {
			return false
		}

		if i > 0 && !isAlpha && !isDigit {
			return false
		}
	}

	return true
}

// parseValue implements the Expression Parser contract (§4.3): a bare
// string (optionally carrying ${ident} interpolation), a bare number, or a
// bare identifier (VariableRef shorthand).
func (p *Parser) parseValue(ctx exprContext) (ast.Value, bool) {
	switch p.current.Kind {
	case token.StringLiteral:
		tok := p.current
		p.advance()

		return &ast.Literal{
			Parts: []ast.LiteralPart{ast.TextPart{Text: tok.Lexeme, Span: tok.Span}},
			Span:  tok.Span,
		}, true

	case token.StringFragment:
		return p.parseInterpolatedLiteral(ctx)

	case token.Number:
		tok := p.current
		p.advance()

		return &ast.NumberValue{Val: tok.Number, Span: tok.Span}, true

	case token.Identifier:
		tok := p.current
		p.advance()

		return &ast.VariableRef{Name: tok.Lexeme, Span: tok.Span}, true

	default:
		p.emit(diagnostics.ExpectedValue(p.current, p.frameSnapshot()))

		return nil, false
	}
}

// parseInterpolatedLiteral consumes the StringFragment/InterpolationOpen/
// Identifier/InterpolationClose run the lexer decomposes an interpolated
// string literal into (§4.1), producing a Literal whose Parts interleave
// text and resolved references.
func (p *Parser) parseInterpolatedLiteral(ctx exprContext) (ast.Value, bool) {
	startSpan := p.current.Span

	var parts []ast.LiteralPart

	lastSpan := startSpan

	for {
		if p.current.Kind == token.StringFragment {
			tok := p.current
			p.advance()

			if tok.Lexeme != "" {
				parts = append(parts, ast.TextPart{Text: tok.Lexeme, Span: tok.Span})
			}

			lastSpan = tok.Span

			continue
		}

		if p.current.Kind != token.InterpolationOpen {
			break
		}

		openTok := p.current
		p.advance()

		identTok := p.current
		if identTok.Kind != token.Identifier {
			p.emit(diagnostics.MalformedInterpolation(identTok.Lexeme, identTok.Span, p.frameSnapshot()))
			p.advance()

			continue
		}

		p.advance()

		closeSpan := identTok.Span
		if p.current.Kind == token.InterpolationClose {
			closeSpan = p.current.Span
			p.advance()
		}

		switch {
		case identTok.Lexeme == "":
			p.emit(diagnostics.EmptyInterpolationTarget(
				position.Span{Start: openTok.Span.Start, End: closeSpan.End}, p.frameSnapshot()))
		case !isValidIdentifierShape(identTok.Lexeme):
			p.emit(diagnostics.MalformedInterpolation(identTok.Lexeme, identTok.Span, p.frameSnapshot()))
		default:
			switch ctx.refKind() {
			case refKindAnimation:
				parts = append(parts, &ast.AnimationRef{Name: identTok.Lexeme, Span: identTok.Span})
			default:
				parts = append(parts, &ast.VariableRef{Name: identTok.Lexeme, Span: identTok.Span})
			}
		}

		lastSpan = closeSpan
	}

	return &ast.Literal{Parts: parts, Span: position.Span{Start: startSpan.Start, End: lastSpan.End}}, true
}
