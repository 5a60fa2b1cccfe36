package parser

import (
	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// Parse runs the context parser (§4.5): exactly one Construct context, its
// Declare bodies, and EndOfFile. It returns a best-effort AST alongside the
// diagnostics collected while producing it; per the external contract, a
// non-nil error-severity diagnostic means the AST must not be handed to a
// downstream generator (see diagnostics.HasErrors).
func (p *Parser) Parse() (*ast.Context, []diagnostics.Diagnostic) {
	ctx, _ := p.parseContext()

	return ctx, p.diags
}

func (p *Parser) parseContext() (*ast.Context, bool) {
	startSpan := p.current.Span

	if !p.atKeyword("Construct") {
		p.emit(diagnostics.MissingContext(p.current.Span))

		return nil, false
	}

	p.advance()

	var (
		kind ast.ContextKind
		name string
	)

	switch {
	case p.atKeyword("Central"):
		kind = ast.ContextCentral
		p.advance()
	case p.atKeyword("Layout"):
		kind = ast.ContextLayout
		p.advance()

		name, _ = p.parseContextName()
	case p.atKeyword("Module"):
		kind = ast.ContextModule
		p.advance()

		name, _ = p.parseContextName()
	default:
		p.emit(diagnostics.ExpectedKeyword("Central, Layout, or Module", p.current, p.frameSnapshot()))

		return nil, false
	}

	ctx := &ast.Context{Kind: kind, Name: name}

	p.pushFrame(contextFrameLabel(kind, name))
	defer p.popFrame()

	if _, ok := p.expectPunct(token.LBrace); !ok {
		ctx.Span = position.Span{Start: startSpan.Start, End: p.current.Span.End}

		return ctx, false
	}

	for !p.atPunct(token.RBrace) && p.current.Kind != token.EOF {
		if p.fatal {
			ctx.Span = position.Span{Start: startSpan.Start, End: p.current.Span.End}

			return ctx, true
		}

		if !p.atKeyword("Declare") {
			p.emit(diagnostics.ExpectedKeyword("Declare", p.current, p.frameSnapshot()))
			p.synchronize()

			if p.atPunct(token.Comma) {
				p.advance()
			}

			continue
		}

		p.parseDeclare(ctx)

		switch {
		case p.atPunct(token.Comma):
			p.advance()
		case p.atPunct(token.RBrace):
			// Trailing comma omitted; fine.
		default:
			p.emit(diagnostics.ExpectedComma(p.current, p.frameSnapshot()))
			p.synchronize()

			if p.atPunct(token.Comma) {
				p.advance()
			}
		}
	}

	closeTok, _ := p.expectPunct(token.RBrace)
	ctx.Span = position.Span{Start: startSpan.Start, End: closeTok.Span.End}

	if p.fatal || p.current.Kind == token.EOF {
		return ctx, p.fatal
	}

	if p.atKeyword("Construct") {
		p.emit(diagnostics.MultipleContexts(p.current.Span))

		return ctx, true
	}

	p.emit(diagnostics.UnexpectedToken(p.current, p.frameSnapshot()))

	return ctx, false
}

// parseContextName parses the `("Name")` suffix required after Layout and
// Module.
func (p *Parser) parseContextName() (string, bool) {
	if _, ok := p.expectPunct(token.LParen); !ok {
		return "", false
	}

	tok, ok := p.expectStringLiteral()
	if !ok {
		return "", false
	}

	if _, ok := p.expectPunct(token.RParen); !ok {
		return tok.Lexeme, false
	}

	return tok.Lexeme, true
}

func contextFrameLabel(kind ast.ContextKind, name string) string {
	if name == "" {
		return "inside " + kind.String() + " context"
	}

	return "inside " + kind.String() + "(\"" + name + "\") context"
}

// parseDeclare consumes one `Declare <Family>({ ... })` block and merges it
// into ctx, dispatching to the family's sub-parser. The `Declare` keyword
// has already been confirmed present by the caller.
func (p *Parser) parseDeclare(ctx *ast.Context) {
	declareTok, _ := p.expectKeyword("Declare")

	switch {
	case p.atKeyword("Imports"):
		p.parseImports(ctx, declareTok)
	case p.atKeyword("Typefaces"):
		p.parseTypefaces(ctx, declareTok)
	case p.atKeyword("Breakpoints"):
		p.parseBreakpoints(ctx, declareTok)
	case p.atKeyword("Themes"):
		p.parseThemes(ctx, declareTok)
	case p.atKeyword("Aliases"):
		p.parseAliases(ctx, declareTok)
	case p.atKeyword("Variables"):
		p.parseTopLevelVariables(ctx, declareTok)
	case p.atKeyword("Animation"):
		p.parseAnimations(ctx, declareTok)
	case p.atKeyword("Class"):
		p.parseClasses(ctx, declareTok)
	default:
		p.emit(diagnostics.UnknownDeclaration(p.current.Lexeme, p.current.Span, p.frameSnapshot()))
		p.synchronize()
	}
}
