package parser

import (
	"testing"

	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
)

func mustParse(t *testing.T, source string) (*ast.Context, []diagnostics.Diagnostic) {
	t.Helper()

	ctx, diags := New(source, "test.nyr").Parse()

	return ctx, diags
}

func TestEmptyCentralContextParsesWithNoDiagnostics(t *testing.T) {
	ctx, diags := mustParse(t, `Construct Central { }`)

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}

	if ctx.Kind != ast.ContextCentral {
		t.Fatalf("expected Central context, got %v", ctx.Kind)
	}
}

func TestLayoutContextCarriesName(t *testing.T) {
	ctx, diags := mustParse(t, `Construct Layout("Nav") { Declare Variables({ primary: "#ff0000", radius: 4 }) }`)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	if ctx.Kind != ast.ContextLayout || ctx.Name != "Nav" {
		t.Fatalf("expected Layout(\"Nav\"), got %v(%q)", ctx.Kind, ctx.Name)
	}

	if ctx.Variables == nil || ctx.Variables.Entries.Len() != 2 {
		t.Fatalf("expected two variable entries, got %+v", ctx.Variables)
	}

	primary, ok := ctx.Variables.Entries.Get("primary")
	if !ok {
		t.Fatal("expected a \"primary\" entry")
	}

	lit, ok := primary.Value.(*ast.Literal)
	if !ok || len(lit.Parts) != 1 {
		t.Fatalf("expected primary to be a single-part literal, got %+v", primary.Value)
	}

	radius, ok := ctx.Variables.Entries.Get("radius")
	if !ok {
		t.Fatal("expected a \"radius\" entry")
	}

	if num, ok := radius.Value.(*ast.NumberValue); !ok || num.Val != 4 {
		t.Fatalf("expected radius to be Number(4), got %+v", radius.Value)
	}
}

func TestRedeclaredVariablesFamilyMergesWithWarning(t *testing.T) {
	ctx, diags := mustParse(t, `Construct Central { Declare Variables({ a: 1 }), Declare Variables({ b: 2 }) }`)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindDuplicateSectionInScope {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected a DuplicateSectionInScope warning, got %v", diags)
	}

	if ctx.Variables.Entries.Len() != 2 {
		t.Fatalf("expected merged Variables to have 2 entries, got %d", ctx.Variables.Entries.Len())
	}

	if _, ok := ctx.Variables.Entries.Get("a"); !ok {
		t.Fatal("expected merged entry \"a\"")
	}

	if _, ok := ctx.Variables.Entries.Get("b"); !ok {
		t.Fatal("expected merged entry \"b\"")
	}
}

func TestSecondFromStopIsInvalidAnimationStop(t *testing.T) {
	src := `Construct Central { Declare Animation({ Pulse({
		From({ opacity: "0" }),
		To({ opacity: "1" }),
		From({ opacity: "0.5" })
	}) }) }`

	_, diags := mustParse(t, src)

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindInvalidAnimationStop {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected InvalidAnimationStop, got %v", diags)
	}
}

func TestFractionAboveOneIsOutOfRange(t *testing.T) {
	src := `Construct Central { Declare Animation({ Pulse({ Fraction(1.5, { x: "1" }) }) }) }`

	_, diags := mustParse(t, src)

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindFractionOutOfRange {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected FractionOutOfRange, got %v", diags)
	}
}

func TestClassExtendingAndInterpolatedStylesheet(t *testing.T) {
	src := `Construct Module("M") { Declare Class({ Card({ Extending("Base"), Stylesheet({ color: "${primary}" }) }) }) }`

	ctx, diags := mustParse(t, src)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	if ctx.Classes == nil || ctx.Classes.Entries.Len() != 1 {
		t.Fatalf("expected exactly one class, got %+v", ctx.Classes)
	}

	card, ok := ctx.Classes.Entries.Get("Card")
	if !ok {
		t.Fatal("expected class \"Card\"")
	}

	if card.Deriving != "Base" {
		t.Fatalf("expected Deriving \"Base\", got %q", card.Deriving)
	}

	if card.Stylesheet == nil {
		t.Fatal("expected a Stylesheet block")
	}

	color, ok := card.Stylesheet.Properties.Get("color")
	if !ok {
		t.Fatal("expected a \"color\" property")
	}

	lit, ok := color.(*ast.Literal)
	if !ok || len(lit.Parts) != 1 {
		t.Fatalf("expected a single-part literal, got %+v", color)
	}

	ref, ok := lit.Parts[0].(*ast.VariableRef)
	if !ok || ref.Name != "primary" {
		t.Fatalf("expected VariableRef(\"primary\"), got %+v", lit.Parts[0])
	}
}

func TestTrailingCommaIsAccepted(t *testing.T) {
	_, diags := mustParse(t, `Construct Central { Declare Imports({ "a.nyr", }) }`)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}
}

func TestLeadingCommaIsUnexpectedToken(t *testing.T) {
	_, diags := mustParse(t, `Construct Central { Declare Imports({ , "a.nyr" }) }`)

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindUnexpectedToken {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected UnexpectedToken, got %v", diags)
	}
}

func TestDoubleTrailingCommaIsUnexpectedToken(t *testing.T) {
	_, diags := mustParse(t, `Construct Central { Declare Imports({ "a.nyr",, }) }`)

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindUnexpectedToken {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected UnexpectedToken, got %v", diags)
	}
}

func TestTwoConstructHeadersIsMultipleContexts(t *testing.T) {
	_, diags := mustParse(t, `Construct Central { } Construct Central { }`)

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindMultipleContexts {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected MultipleContexts, got %v", diags)
	}
}

func TestLowercaseDeclareIsExpectedKeyword(t *testing.T) {
	_, diags := mustParse(t, `Construct Central { declare Imports({ "a.nyr" }) }`)

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindExpectedKeyword {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected ExpectedKeyword, got %v", diags)
	}
}

func TestUnterminatedBlockCommentIsFatalAndStopsFurtherDeclarations(t *testing.T) {
	src := "Construct Central { Declare Imports({ \"a.nyr\" }), /* never closed"

	ctx, diags := mustParse(t, src)

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindUnterminatedBlockComment {
			found = true

			if !d.Kind.IsFatal() {
				t.Fatal("expected UnterminatedBlockComment to be fatal")
			}
		}
	}

	if !found {
		t.Fatalf("expected UnterminatedBlockComment, got %v", diags)
	}

	if ctx.Imports == nil || ctx.Imports.Items[0].Value != "a.nyr" {
		t.Fatalf("expected the Imports declared before the fatal comment to survive, got %+v", ctx.Imports)
	}
}

func TestUnknownEscapeInStringProducesLexicalDiagnostic(t *testing.T) {
	src := `Construct Central { Declare Imports({ "a\qb.nyr" }) }`

	_, diags := mustParse(t, src)

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindUnknownEscape {
			found = true

			if d.Kind.IsFatal() {
				t.Fatal("expected UnknownEscape to be recoverable, not fatal")
			}
		}
	}

	if !found {
		t.Fatalf("expected UnknownEscape, got %v", diags)
	}
}

func TestDerivingKeywordIsSynonymForExtending(t *testing.T) {
	src := `Construct Module("M") { Declare Class({ Card({ Deriving("Base") }) }) }`

	ctx, diags := mustParse(t, src)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	card, ok := ctx.Classes.Entries.Get("Card")
	if !ok {
		t.Fatal("expected class \"Card\"")
	}

	if card.Deriving != "Base" {
		t.Fatalf("expected Deriving \"Base\", got %q", card.Deriving)
	}
}
