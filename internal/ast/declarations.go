package ast

import "github.com/nenyr-lang/nenyr/internal/position"

// ImportsDecl is the ordered list of string literals declared by
// `Declare Imports({ "path", ... })`.
type ImportsDecl struct {
	Items []StringLiteral
	Span  position.Span
}

// GetSpan implements Node.
func (d *ImportsDecl) GetSpan() position.Span { return d.Span }

// TypefaceEntry binds one alias to a font file path.
type TypefaceEntry struct {
	Alias string
	Path  StringLiteral
	Span  position.Span
}

// GetSpan implements Node.
func (e TypefaceEntry) GetSpan() position.Span { return e.Span }

// TypefacesDecl is `Declare Typefaces({ alias: "path", ... })`.
type TypefacesDecl struct {
	Entries *OrderedMap[TypefaceEntry]
	Span    position.Span
}

// GetSpan implements Node.
func (d *TypefacesDecl) GetSpan() position.Span { return d.Span }

// BreakpointEntry binds one breakpoint name to its size string.
type BreakpointEntry struct {
	Name string
	Size StringLiteral
	Span position.Span
}

// GetSpan implements Node.
func (e BreakpointEntry) GetSpan() position.Span { return e.Span }

// BreakpointGroup is the body of a MobileFirst or DesktopFirst block.
type BreakpointGroup struct {
	Entries *OrderedMap[BreakpointEntry]
	Span    position.Span
}

// GetSpan implements Node.
func (g *BreakpointGroup) GetSpan() position.Span { return g.Span }

// BreakpointsDecl is `Declare Breakpoints({ MobileFirst({...}), DesktopFirst({...}) })`.
// Either group may be nil if the source unit omits it.
type BreakpointsDecl struct {
	MobileFirst  *BreakpointGroup
	DesktopFirst *BreakpointGroup
	Span         position.Span
}

// GetSpan implements Node.
func (d *BreakpointsDecl) GetSpan() position.Span { return d.Span }

// AliasEntry binds one alias identifier to the canonical property identifier
// it stands for.
type AliasEntry struct {
	From string
	To   string
	Span position.Span
}

// GetSpan implements Node.
func (e AliasEntry) GetSpan() position.Span { return e.Span }

// AliasesDecl is `Declare Aliases({ alias: canonical, ... })`.
type AliasesDecl struct {
	Entries *OrderedMap[AliasEntry]
	Span    position.Span
}

// GetSpan implements Node.
func (d *AliasesDecl) GetSpan() position.Span { return d.Span }

// VariableEntry binds one identifier to a value expression. DocComment
// carries the text of an immediately preceding `///` doc comment, if any;
// it never affects parsing.
type VariableEntry struct {
	Name       string
	Value      Value
	DocComment string
	Span       position.Span
}

// GetSpan implements Node.
func (e VariableEntry) GetSpan() position.Span { return e.Span }

// VariablesDecl is `Declare Variables({ name: value, ... })`. It is reused
// verbatim as the body of a Themes Light/Dark group.
type VariablesDecl struct {
	Entries *OrderedMap[VariableEntry]
	Span    position.Span
}

// GetSpan implements Node.
func (d *VariablesDecl) GetSpan() position.Span { return d.Span }

// ThemeGroup is the Light or Dark side of a Themes declaration; its body is
// itself a Variables declaration.
type ThemeGroup struct {
	Variables *VariablesDecl
	Span      position.Span
}

// GetSpan implements Node.
func (g *ThemeGroup) GetSpan() position.Span { return g.Span }

// ThemesDecl is `Declare Themes({ Light({...}), Dark({...}) })`. Either side
// may be nil if the source unit omits it.
type ThemesDecl struct {
	Light *ThemeGroup
	Dark  *ThemeGroup
	Span  position.Span
}

// GetSpan implements Node.
func (d *ThemesDecl) GetSpan() position.Span { return d.Span }
