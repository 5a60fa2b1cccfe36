package ast

import "github.com/nenyr-lang/nenyr/internal/position"

// StyleBlock is a flat mapping of property identifier to value expression,
// the body of a Stylesheet(...), a pseudo-state block such as Hover(...),
// or a state block nested inside a PanoramicViewer breakpoint. Duplicate
// property names merge, later value winning, with a DuplicateProperty
// warning raised at the point of the second occurrence.
type StyleBlock struct {
	Properties *OrderedMap[Value]
	Span       position.Span
}

// GetSpan implements Node.
func (b *StyleBlock) GetSpan() position.Span { return b.Span }

// PanoramicBlock is one `breakpoint-ident({ <nested state blocks> })` entry
// inside a PanoramicViewer. Breakpoint is the referenced identifier, not
// yet resolved against a Breakpoints declaration; Stylesheet holds the
// nested Stylesheet block, and States holds the nested pseudo-state blocks
// keyed by state name, same shape as a ClassDecl's own PseudoStates map.
type PanoramicBlock struct {
	Breakpoint string
	Stylesheet *StyleBlock
	States     *OrderedMap[*StyleBlock]
	Span       position.Span
}

// GetSpan implements Node.
func (b *PanoramicBlock) GetSpan() position.Span { return b.Span }

// ClassDecl is one named class body inside a Declare Class family:
// `name({ Extending("Parent"), Important(true), Stylesheet({...}),
// Hover({...}), PanoramicViewer({...}) })`. Extending and Important are
// each optional and may appear at most once; Stylesheet is optional;
// pseudo-state and PanoramicViewer entries may each repeat.
// DocComment carries the text of an immediately preceding `///` doc
// comment, if any; it never affects parsing.
type ClassDecl struct {
	Name         string
	Deriving     string // Parent class name from Extending(...) or Deriving(...); empty if absent.
	Important    *bool  // Nil if the Important(...) entry is absent.
	Stylesheet   *StyleBlock
	PseudoStates *OrderedMap[*StyleBlock]
	Panoramic    *OrderedMap[*PanoramicBlock] // Keyed by breakpoint identifier.
	DocComment   string
	Span         position.Span
}

// GetSpan implements Node.
func (c *ClassDecl) GetSpan() position.Span { return c.Span }

// ClassesDecl is `Declare Class({ name({...}), ... })`.
type ClassesDecl struct {
	Entries *OrderedMap[*ClassDecl]
	Span    position.Span
}

// GetSpan implements Node.
func (d *ClassesDecl) GetSpan() position.Span { return d.Span }
