// Package diagnostics is the parser's diagnostic factory. Every failure
// path the lexer and parser can take funnels through here so that
// diagnostics stay structured and deterministic instead of ad-hoc strings.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/nenyr-lang/nenyr/internal/position"
)

// Severity classifies a diagnostic. Error severity means the AST it
// accompanies must not be handed to a downstream CSS generator; Warning
// severity is advisory and the AST remains usable.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}

	return "error"
}

// Kind is the exhaustive taxonomy of diagnostics the parser can emit.
type Kind int

const (
	// Lexical.
	KindUnterminatedString Kind = iota
	KindUnterminatedBlockComment
	KindUnknownEscape
	KindInvalidNumber
	KindUnexpectedChar

	// Structural.
	KindMultipleContexts
	KindMissingContext
	KindUnknownDeclaration
	KindUnexpectedToken
	KindUnexpectedEndOfFile

	// Syntactic.
	KindExpectedKeyword
	KindExpectedIdentifier
	KindExpectedString
	KindExpectedNumber
	KindExpectedPunct
	KindExpectedComma
	KindExpectedColon
	KindExpectedOpenBrace
	KindExpectedCloseBrace
	KindExpectedValue

	// Semantic, parser-enforced.
	KindInvalidAnimationStop
	KindFractionOutOfRange
	KindNonPositiveProgressive
	KindMalformedInterpolation
	KindEmptyInterpolationTarget
	KindInvalidIdentifierShape
	KindDuplicateSectionInScope
	KindExcessiveNesting

	// Warnings.
	KindDuplicateProperty
	KindDuplicateKey
)

var kindNames = map[Kind]string{
	KindUnterminatedString:       "UnterminatedString",
	KindUnterminatedBlockComment: "UnterminatedBlockComment",
	KindUnknownEscape:            "UnknownEscape",
	KindInvalidNumber:            "InvalidNumber",
	KindUnexpectedChar:           "UnexpectedChar",
	KindMultipleContexts:         "MultipleContexts",
	KindMissingContext:           "MissingContext",
	KindUnknownDeclaration:       "UnknownDeclaration",
	KindUnexpectedToken:          "UnexpectedToken",
	KindUnexpectedEndOfFile:      "UnexpectedEndOfFile",
	KindExpectedKeyword:          "ExpectedKeyword",
	KindExpectedIdentifier:       "ExpectedIdentifier",
	KindExpectedString:           "ExpectedString",
	KindExpectedNumber:           "ExpectedNumber",
	KindExpectedPunct:            "ExpectedPunct",
	KindExpectedComma:            "ExpectedComma",
	KindExpectedColon:            "ExpectedColon",
	KindExpectedOpenBrace:        "ExpectedOpenBrace",
	KindExpectedCloseBrace:       "ExpectedCloseBrace",
	KindExpectedValue:            "ExpectedValue",
	KindInvalidAnimationStop:     "InvalidAnimationStop",
	KindFractionOutOfRange:       "FractionOutOfRange",
	KindNonPositiveProgressive:   "NonPositiveProgressive",
	KindMalformedInterpolation:   "MalformedInterpolation",
	KindEmptyInterpolationTarget: "EmptyInterpolationTarget",
	KindInvalidIdentifierShape:   "InvalidIdentifierShape",
	KindDuplicateSectionInScope:  "DuplicateSectionInScope",
	KindExcessiveNesting:         "ExcessiveNesting",
	KindDuplicateProperty:        "DuplicateProperty",
	KindDuplicateKey:             "DuplicateKey",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// fatalKinds abort parsing outright rather than triggering local recovery.
var fatalKinds = map[Kind]bool{
	KindMultipleContexts:         true,
	KindUnterminatedBlockComment: true,
}

// IsFatal reports whether a diagnostic of this kind must halt parsing
// instead of resynchronizing to the next production.
func (k Kind) IsFatal() bool {
	return fatalKinds[k]
}

// Diagnostic is a single structured error or warning produced while
// lexing or parsing a source unit.
type Diagnostic struct {
	Kind       Kind
	Severity   Severity
	Message    string
	Span       position.Span
	Suggestion string
	// Context is the stack of human-readable frames active when the
	// diagnostic was raised, topmost (innermost) frame first.
	Context []string
	// Source is the surrounding source window (line before/at/after the
	// diagnostic's span), populated by the parser when available. It is
	// additive: the fixed rendering format in Render never includes it.
	Source *SourceContext
}

// SourceContext is a three-line window of source text around a diagnostic's
// span, used by RenderWithSource to show the offending line in place.
type SourceContext struct {
	LineBefore string // Empty if the error line is the first line.
	ErrorLine  string
	LineAfter  string // Empty if the error line is the last line.
	Column     int    // 1-based column within ErrorLine to place the caret.
}

// Render formats a diagnostic in the human-readable rendering the parser's
// external contract specifies.
func (d Diagnostic) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", d.Severity, d.Message)
	fmt.Fprintf(&b, "  at line %d, column %d\n", d.Span.Start.Line, d.Span.Start.Column)

	if len(d.Context) > 0 {
		fmt.Fprintf(&b, "  context: %s\n", strings.Join(d.Context, " › "))
	}

	if d.Suggestion != "" {
		fmt.Fprintf(&b, "  suggestion: %s\n", d.Suggestion)
	}

	return b.String()
}

// RenderWithSource renders a diagnostic exactly as Render does, then
// appends the three-line source window with a caret under the offending
// column, when Source is populated. It is strictly additive to the
// external rendering contract: callers that only need the fixed format
// keep using Render.
func (d Diagnostic) RenderWithSource() string {
	var b strings.Builder

	b.WriteString(d.Render())

	if d.Source == nil {
		return b.String()
	}

	if d.Source.LineBefore != "" {
		fmt.Fprintf(&b, "  %s\n", d.Source.LineBefore)
	}

	fmt.Fprintf(&b, "  %s\n", d.Source.ErrorLine)

	caretCol := d.Source.Column
	if caretCol < 1 {
		caretCol = 1
	}

	fmt.Fprintf(&b, "  %s^\n", strings.Repeat(" ", caretCol-1))

	if d.Source.LineAfter != "" {
		fmt.Fprintf(&b, "  %s\n", d.Source.LineAfter)
	}

	return b.String()
}

// RenderAll renders a full diagnostic list, one block per diagnostic.
func RenderAll(diags []Diagnostic) string {
	var b strings.Builder

	for _, d := range diags {
		b.WriteString(d.Render())
	}

	return b.String()
}

// HasErrors reports whether any diagnostic in the list is Error severity;
// per the external contract, that means the accompanying AST must not be
// handed to a downstream generator.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}

// MachineReadable is the JSON-serializable rendering of a Diagnostic,
// carrying the byte-offset span the human-readable rendering omits.
type MachineReadable struct {
	Severity   string `json:"severity"`
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Context    []string `json:"context,omitempty"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	StartByte  int    `json:"startByte"`
	EndByte    int    `json:"endByte"`
}

// ToMachineReadable converts a Diagnostic into its JSON-serializable form.
func (d Diagnostic) ToMachineReadable() MachineReadable {
	return MachineReadable{
		Severity:   d.Severity.String(),
		Kind:       d.Kind.String(),
		Message:    d.Message,
		Suggestion: d.Suggestion,
		Context:    d.Context,
		Line:       d.Span.Start.Line,
		Column:     d.Span.Start.Column,
		StartByte:  d.Span.Start.Offset,
		EndByte:    d.Span.End.Offset,
	}
}
