// Package ast defines the Nenyr Abstract Syntax Tree: a tagged context node
// (Central, Layout, or Module) holding the ordered declarations parsed from
// a single source unit. Every node is immutable once returned by the
// parser and holds ordinary Go strings, so an AST can outlive the source
// it was parsed from. Names taken from identifiers are substrings that
// share memory with the source string; string-literal values are decoded
// copies.
package ast

import "github.com/nenyr-lang/nenyr/internal/position"

// Node is implemented by every AST node so that diagnostics and downstream
// tooling can recover the source range a node came from.
type Node interface {
	GetSpan() position.Span
}

// ContextKind tags which of the three top-level Nenyr contexts a source
// unit declares. A source unit declares exactly one.
type ContextKind int

const (
	ContextCentral ContextKind = iota
	ContextLayout
	ContextModule
)

func (k ContextKind) String() string {
	switch k {
	case ContextCentral:
		return "Central"
	case ContextLayout:
		return "Layout"
	case ContextModule:
		return "Module"
	default:
		return "Unknown"
	}
}

// Context is the AST root: the product of parsing one .nyr source unit.
// Each declaration family field is nil when the source unit never declared
// that family; an empty `Construct Central { }` yields a Context with every
// field nil.
type Context struct {
	Kind        ContextKind
	Name        string // Set for Layout and Module; empty for Central.
	Imports     *ImportsDecl
	Typefaces   *TypefacesDecl
	Breakpoints *BreakpointsDecl
	Themes      *ThemesDecl
	Aliases     *AliasesDecl
	Variables   *VariablesDecl
	Animations  *AnimationsDecl
	Classes     *ClassesDecl
	Span        position.Span
}

// GetSpan implements Node.
func (c *Context) GetSpan() position.Span { return c.Span }

// String renders a short, human-oriented description of the context,
// mainly useful for debugging and test failure messages.
func (c *Context) String() string {
	if c.Name != "" {
		return c.Kind.String() + "(\"" + c.Name + "\")"
	}

	return c.Kind.String()
}

// StringLiteral is a plain, non-interpolated string used where the grammar
// calls for a bare path or URL rather than a general value expression:
// Imports entries and Typefaces paths.
type StringLiteral struct {
	Value string
	Span  position.Span
}

// GetSpan implements Node.
func (s StringLiteral) GetSpan() position.Span { return s.Span }
