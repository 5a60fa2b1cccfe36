package diagnostics

import (
	"fmt"
	"strings"

	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// Builder provides a fluent interface for constructing a Diagnostic. It is
// the single funnel every lex and parse failure path is required to pass
// through.
type Builder struct {
	d Diagnostic
}

// New starts building a diagnostic of the given kind at span.
func New(kind Kind, span position.Span) *Builder {
	return &Builder{d: Diagnostic{Kind: kind, Span: span, Severity: SeverityError}}
}

// Warning marks the diagnostic as advisory.
func (b *Builder) Warning() *Builder {
	b.d.Severity = SeverityWarning

	return b
}

// WithMessage sets the diagnostic message.
func (b *Builder) WithMessage(msg string) *Builder {
	b.d.Message = msg

	return b
}

// WithMessagef sets a formatted diagnostic message.
func (b *Builder) WithMessagef(format string, args ...interface{}) *Builder {
	b.d.Message = fmt.Sprintf(format, args...)

	return b
}

// WithSuggestion attaches a human-readable suggestion.
func (b *Builder) WithSuggestion(suggestion string) *Builder {
	b.d.Suggestion = suggestion

	return b
}

// WithSuggestionf attaches a formatted suggestion.
func (b *Builder) WithSuggestionf(format string, args ...interface{}) *Builder {
	b.d.Suggestion = fmt.Sprintf(format, args...)

	return b
}

// WithContext attaches the context stack active when the diagnostic was
// raised. Frames are stored topmost-first, matching the rendering format.
func (b *Builder) WithContext(frames []string) *Builder {
	if len(frames) == 0 {
		return b
	}

	reversed := make([]string, len(frames))
	for i, f := range frames {
		reversed[len(frames)-1-i] = f
	}

	b.d.Context = reversed

	return b
}

// WithSource attaches the source window surrounding the diagnostic's span,
// extracted from the full source buffer the parser was invoked on.
func (b *Builder) WithSource(source string) *Builder {
	b.d.Source = extractSourceContext(source, b.d.Span)

	return b
}

// Build returns the constructed diagnostic.
func (b *Builder) Build() Diagnostic {
	return b.d
}

// SourceContextFor extracts the source window surrounding span out of
// source. Exposed so callers holding an already-built Diagnostic (such as
// the parser's central emit path) can attach source context without
// rebuilding the diagnostic through the fluent Builder.
func SourceContextFor(source string, span position.Span) *SourceContext {
	return extractSourceContext(source, span)
}

// extractSourceContext pulls the line the span starts on plus its
// immediate neighbors out of source, for RenderWithSource.
func extractSourceContext(source string, span position.Span) *SourceContext {
	lines := strings.Split(source, "\n")
	idx := span.Start.Line - 1

	if idx < 0 || idx >= len(lines) {
		return nil
	}

	ctx := &SourceContext{
		ErrorLine: strings.TrimRight(lines[idx], "\r"),
		Column:    span.Start.Column,
	}

	if idx > 0 {
		ctx.LineBefore = strings.TrimRight(lines[idx-1], "\r")
	}

	if idx+1 < len(lines) {
		ctx.LineAfter = strings.TrimRight(lines[idx+1], "\r")
	}

	return ctx
}

// The constructors below cover the exhaustive error taxonomy. Each names
// the offending span, produces a deterministic message, and where a fix is
// obvious, a suggestion.

func ExpectedKeyword(expected string, got token.Token, ctx []string) Diagnostic {
	return New(KindExpectedKeyword, got.Span).
		WithMessagef("expected keyword `%s`, found `%s`", expected, describeToken(got)).
		WithSuggestionf("write `%s` exactly as shown; Nenyr keywords are case-sensitive", expected).
		WithContext(ctx).
		Build()
}

func ExpectedIdentifier(got token.Token, ctx []string) Diagnostic {
	return New(KindExpectedIdentifier, got.Span).
		WithMessagef("expected an identifier, found `%s`", describeToken(got)).
		WithSuggestion("identifiers must start with a letter and contain only letters and digits").
		WithContext(ctx).
		Build()
}

func ExpectedString(got token.Token, ctx []string) Diagnostic {
	return New(KindExpectedString, got.Span).
		WithMessagef("expected a string literal, found `%s`", describeToken(got)).
		WithSuggestion(`wrap the value in double quotes, e.g. "value"`).
		WithContext(ctx).
		Build()
}

func ExpectedNumber(got token.Token, ctx []string) Diagnostic {
	return New(KindExpectedNumber, got.Span).
		WithMessagef("expected a number, found `%s`", describeToken(got)).
		WithContext(ctx).
		Build()
}

func ExpectedPunct(expected token.Punct, got token.Token, ctx []string) Diagnostic {
	return New(KindExpectedPunct, got.Span).
		WithMessagef("expected `%s`, found `%s`", expected, describeToken(got)).
		WithContext(ctx).
		Build()
}

func ExpectedComma(got token.Token, ctx []string) Diagnostic {
	return New(KindExpectedComma, got.Span).
		WithMessagef("expected `,`, found `%s`", describeToken(got)).
		WithSuggestion("separate entries with a comma; a trailing comma is allowed but two in a row are not").
		WithContext(ctx).
		Build()
}

func ExpectedColon(got token.Token, ctx []string) Diagnostic {
	return New(KindExpectedColon, got.Span).
		WithMessagef("expected `:`, found `%s`", describeToken(got)).
		WithContext(ctx).
		Build()
}

func ExpectedOpenBrace(got token.Token, ctx []string) Diagnostic {
	return New(KindExpectedOpenBrace, got.Span).
		WithMessagef("expected `{`, found `%s`", describeToken(got)).
		WithContext(ctx).
		Build()
}

func ExpectedCloseBrace(got token.Token, ctx []string) Diagnostic {
	return New(KindExpectedCloseBrace, got.Span).
		WithMessagef("expected `}`, found `%s`", describeToken(got)).
		WithContext(ctx).
		Build()
}

func ExpectedValue(got token.Token, ctx []string) Diagnostic {
	return New(KindExpectedValue, got.Span).
		WithMessagef("expected a value (string, number, or identifier), found `%s`", describeToken(got)).
		WithContext(ctx).
		Build()
}

func UnknownDeclaration(name string, span position.Span, ctx []string) Diagnostic {
	return New(KindUnknownDeclaration, span).
		WithMessagef("`%s` is not a recognized Declare family", name).
		WithSuggestion("valid families are Imports, Typefaces, Breakpoints, Themes, Aliases, Variables, Animation, and Class").
		WithContext(ctx).
		Build()
}

func MultipleContexts(span position.Span) Diagnostic {
	return New(KindMultipleContexts, span).
		WithMessage("a source unit may declare exactly one Construct context, but a second one was found").
		WithSuggestion("split the additional Construct block into its own .nyr source unit").
		Build()
}

func MissingContext(span position.Span) Diagnostic {
	return New(KindMissingContext, span).
		WithMessage("expected the source unit to begin with a `Construct` context").
		WithSuggestion("start the file with `Construct Central { ... }`, `Construct Layout(\"Name\") { ... }`, or `Construct Module(\"Name\") { ... }`").
		Build()
}

func UnexpectedToken(got token.Token, ctx []string) Diagnostic {
	return New(KindUnexpectedToken, got.Span).
		WithMessagef("unexpected token `%s`", describeToken(got)).
		WithContext(ctx).
		Build()
}

func UnexpectedEndOfFile(span position.Span, ctx []string) Diagnostic {
	return New(KindUnexpectedEndOfFile, span).
		WithMessage("unexpected end of file").
		WithContext(ctx).
		Build()
}

func InvalidAnimationStop(stopName string, span position.Span, ctx []string) Diagnostic {
	return New(KindInvalidAnimationStop, span).
		WithMessagef("an Animation body may declare at most one `%s` stop", stopName).
		WithSuggestionf("remove the duplicate `%s` stop or replace it with a `Fraction`/`Progressive` stop", stopName).
		WithContext(ctx).
		Build()
}

func FractionOutOfRange(value float64, span position.Span, ctx []string) Diagnostic {
	return New(KindFractionOutOfRange, span).
		WithMessagef("fraction %v is out of range; expected a value between 0 and 1", value).
		WithContext(ctx).
		Build()
}

func NonPositiveProgressive(value float64, span position.Span, ctx []string) Diagnostic {
	return New(KindNonPositiveProgressive, span).
		WithMessagef("progressive count %v must be a positive integer", value).
		WithContext(ctx).
		Build()
}

func MalformedInterpolation(raw string, span position.Span, ctx []string) Diagnostic {
	return New(KindMalformedInterpolation, span).
		WithMessagef("`${%s}` is not a valid interpolation target", raw).
		WithSuggestion("interpolation targets must be a bare identifier, e.g. ${primary}").
		WithContext(ctx).
		Build()
}

func EmptyInterpolationTarget(span position.Span, ctx []string) Diagnostic {
	return New(KindEmptyInterpolationTarget, span).
		WithMessage("interpolation `${}` has no target").
		WithSuggestion("name the variable or animation to interpolate, e.g. ${primary}").
		WithContext(ctx).
		Build()
}

func InvalidIdentifierShape(name string, span position.Span, ctx []string) Diagnostic {
	return New(KindInvalidIdentifierShape, span).
		WithMessagef("`%s` is not a valid identifier", name).
		WithSuggestion("identifiers start with a letter and contain only letters and digits; no underscores or hyphens").
		WithContext(ctx).
		Build()
}

func DuplicateSectionInScope(name string, span position.Span, ctx []string) Diagnostic {
	return New(KindDuplicateSectionInScope, span).
		Warning().
		WithMessagef("`%s` was already declared in this scope; entries are merged and the later occurrence wins", name).
		WithContext(ctx).
		Build()
}

func ExcessiveNesting(limit int, span position.Span, ctx []string) Diagnostic {
	return New(KindExcessiveNesting, span).
		WithMessagef("nesting depth exceeds the limit of %d", limit).
		WithSuggestion("flatten deeply nested PanoramicViewer/state blocks").
		WithContext(ctx).
		Build()
}

func DuplicateProperty(name string, span position.Span, ctx []string) Diagnostic {
	return New(KindDuplicateProperty, span).
		Warning().
		WithMessagef("property `%s` is declared more than once in this state block; the later value wins", name).
		WithContext(ctx).
		Build()
}

func DuplicateKey(name string, span position.Span, ctx []string) Diagnostic {
	return New(KindDuplicateKey, span).
		Warning().
		WithMessagef("key `%s` is declared more than once; the later value wins", name).
		WithContext(ctx).
		Build()
}

// FromLexError converts a lexer error token into a diagnostic.
func FromLexError(tok token.Token, ctx []string) Diagnostic {
	switch tok.LexErr {
	case token.UnterminatedString:
		return New(KindUnterminatedString, tok.Span).
			WithMessage("string literal is not terminated on the same line").
			WithSuggestion(`close the string with a matching " before the end of the line, or escape embedded quotes as \"`).
			WithContext(ctx).
			Build()
	case token.UnterminatedBlockComment:
		return New(KindUnterminatedBlockComment, tok.Span).
			WithMessage("block comment is not terminated").
			WithSuggestion("add a matching */; block comments do not nest").
			WithContext(ctx).
			Build()
	case token.UnknownEscape:
		return New(KindUnknownEscape, tok.Span).
			WithMessage(`unrecognized escape sequence; only \", \\, \n, and \t are supported`).
			WithContext(ctx).
			Build()
	case token.InvalidNumber:
		return New(KindInvalidNumber, tok.Span).
			WithMessagef("`%s` is not a valid number", tok.Lexeme).
			WithSuggestion("numbers are digits with at most one decimal point and no exponent").
			WithContext(ctx).
			Build()
	default:
		return New(KindUnexpectedChar, tok.Span).
			WithMessagef("unexpected character `%s`", tok.Lexeme).
			WithContext(ctx).
			Build()
	}
}

func describeToken(t token.Token) string {
	if t.Kind == token.EOF {
		return "end of file"
	}

	if t.Lexeme != "" {
		return t.Lexeme
	}

	return t.Kind.String()
}
