package parser

import (
	"testing"

	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
)

func TestTypefacesEntriesParseInOrder(t *testing.T) {
	ctx, diags := mustParse(t, `Construct Central { Declare Typefaces({ roboto: "./Roboto.ttf", inter: "./Inter.ttf" }) }`)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	keys := ctx.Typefaces.Entries.Keys()
	if len(keys) != 2 || keys[0] != "roboto" || keys[1] != "inter" {
		t.Fatalf("expected [roboto inter] in order, got %v", keys)
	}
}

func TestBreakpointsMobileAndDesktopGroups(t *testing.T) {
	src := `Construct Central { Declare Breakpoints({
		MobileFirst({ small: "480px" }),
		DesktopFirst({ large: "1200px" })
	}) }`

	ctx, diags := mustParse(t, src)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	if ctx.Breakpoints.MobileFirst == nil || ctx.Breakpoints.DesktopFirst == nil {
		t.Fatalf("expected both groups present, got %+v", ctx.Breakpoints)
	}

	if entry, ok := ctx.Breakpoints.MobileFirst.Entries.Get("small"); !ok || entry.Size.Value != "480px" {
		t.Fatalf("expected small=480px, got %+v", entry)
	}
}

func TestDuplicateMobileFirstGroupMergesWithWarning(t *testing.T) {
	src := `Construct Central { Declare Breakpoints({
		MobileFirst({ small: "480px" }),
		MobileFirst({ medium: "768px" })
	}) }`

	ctx, diags := mustParse(t, src)

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindDuplicateSectionInScope {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected DuplicateSectionInScope, got %v", diags)
	}

	if ctx.Breakpoints.MobileFirst.Entries.Len() != 2 {
		t.Fatalf("expected merged entries, got %d", ctx.Breakpoints.MobileFirst.Entries.Len())
	}
}

func TestAliasesMapIdentifiers(t *testing.T) {
	ctx, diags := mustParse(t, `Construct Central { Declare Aliases({ bg: backgroundColor }) }`)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	entry, ok := ctx.Aliases.Entries.Get("bg")
	if !ok || entry.To != "backgroundColor" {
		t.Fatalf("expected bg -> backgroundColor, got %+v", entry)
	}
}

func TestThemesLightAndDarkNestVariables(t *testing.T) {
	src := `Construct Central { Declare Themes({
		Light({ Declare Variables({ bg: "#ffffff" }) }),
		Dark({ Declare Variables({ bg: "#000000" }) })
	}) }`

	ctx, diags := mustParse(t, src)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	if ctx.Themes.Light == nil || ctx.Themes.Dark == nil {
		t.Fatalf("expected both theme groups, got %+v", ctx.Themes)
	}

	light, ok := ctx.Themes.Light.Variables.Entries.Get("bg")
	if !ok {
		t.Fatal("expected Light Variables to contain \"bg\"")
	}

	lit, ok := light.Value.(*ast.Literal)
	if !ok || len(lit.Parts) != 1 {
		t.Fatalf("expected a single-part literal, got %+v", light.Value)
	}
}

func TestDuplicatePropertyWithinStyleBlockWarns(t *testing.T) {
	src := `Construct Module("M") { Declare Class({ Card({ Stylesheet({ color: "red", color: "blue" }) }) }) }`

	ctx, diags := mustParse(t, src)

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindDuplicateProperty {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected DuplicateProperty, got %v", diags)
	}

	card, _ := ctx.Classes.Entries.Get("Card")

	color, ok := card.Stylesheet.Properties.Get("color")
	if !ok {
		t.Fatal("expected \"color\" property")
	}

	lit, ok := color.(*ast.Literal)
	if !ok || len(lit.Parts) != 1 {
		t.Fatalf("expected literal, got %+v", color)
	}

	text, ok := lit.Parts[0].(ast.TextPart)
	if !ok || text.Text != "blue" {
		t.Fatalf("expected last-value-wins \"blue\", got %+v", lit.Parts[0])
	}
}

func TestPanoramicViewerNestsStateBlocks(t *testing.T) {
	src := `Construct Module("M") { Declare Class({ Card({
		PanoramicViewer({ tablet({ Stylesheet({ padding: "8px" }), Hover({ color: "green" }) }) })
	}) }) }`

	ctx, diags := mustParse(t, src)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	card, ok := ctx.Classes.Entries.Get("Card")
	if !ok {
		t.Fatal("expected class \"Card\"")
	}

	block, ok := card.Panoramic.Get("tablet")
	if !ok {
		t.Fatal("expected a \"tablet\" panoramic breakpoint")
	}

	if block.Stylesheet == nil {
		t.Fatal("expected a nested Stylesheet")
	}

	if _, ok := block.States.Get("Hover"); !ok {
		t.Fatal("expected a nested Hover state")
	}
}

func TestAnimationWithFractionAndProgressiveStops(t *testing.T) {
	src := `Construct Central { Declare Animation({ Pulse({
		From({ opacity: "0" }),
		Fraction(0.5, { opacity: "0.5" }),
		Progressive(3, { opacity: "0.75" }),
		To({ opacity: "1" })
	}) }) }`

	ctx, diags := mustParse(t, src)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	pulse, ok := ctx.Animations.Entries.Get("Pulse")
	if !ok {
		t.Fatal("expected animation \"Pulse\"")
	}

	if len(pulse.Stops) != 4 {
		t.Fatalf("expected 4 stops, got %d", len(pulse.Stops))
	}
}

func TestNonPositiveProgressiveIsFlagged(t *testing.T) {
	src := `Construct Central { Declare Animation({ Pulse({ Progressive(0, { x: "1" }) }) }) }`

	_, diags := mustParse(t, src)

	found := false

	for _, d := range diags {
		if d.Kind == diagnostics.KindNonPositiveProgressive {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected NonPositiveProgressive, got %v", diags)
	}
}

func TestAnimationNamePropertyTagsAnimationRef(t *testing.T) {
	src := `Construct Central {
		Declare Animation({ Pulse({ From({ opacity: "0" }) }) }),
		Declare Class({ Card({ Stylesheet({ animationName: "${Pulse}" }) }) })
	}`

	ctx, diags := mustParse(t, src)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	card, _ := ctx.Classes.Entries.Get("Card")

	val, ok := card.Stylesheet.Properties.Get("animationName")
	if !ok {
		t.Fatal("expected \"animationName\" property")
	}

	lit, ok := val.(*ast.Literal)
	if !ok || len(lit.Parts) != 1 {
		t.Fatalf("expected single-part literal, got %+v", val)
	}

	if _, ok := lit.Parts[0].(*ast.AnimationRef); !ok {
		t.Fatalf("expected AnimationRef, got %+v", lit.Parts[0])
	}
}

func TestBareIdentifierValueIsVariableRefShorthand(t *testing.T) {
	ctx, diags := mustParse(t, `Construct Central { Declare Variables({ base: primary }) }`)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	base, ok := ctx.Variables.Entries.Get("base")
	if !ok {
		t.Fatal("expected a \"base\" entry")
	}

	ref, ok := base.Value.(*ast.VariableRef)
	if !ok || ref.Name != "primary" {
		t.Fatalf("expected VariableRef(\"primary\"), got %+v", base.Value)
	}
}

func TestDocCommentIsAttachedToFollowingVariableEntry(t *testing.T) {
	src := "Construct Central { Declare Variables({ /// the brand color\n primary: \"#ff0000\" }) }"

	ctx, diags := mustParse(t, src)

	if diagnostics.HasErrors(diags) {
		t.Fatalf("unexpected error diagnostics: %v", diags)
	}

	entry, ok := ctx.Variables.Entries.Get("primary")
	if !ok {
		t.Fatal("expected a \"primary\" entry")
	}

	if entry.DocComment != "the brand color" {
		t.Fatalf("expected doc comment to be attached, got %q", entry.DocComment)
	}
}
