package ast

import "github.com/nenyr-lang/nenyr/internal/position"

// Value is the tagged union of expressions the value position of a
// declaration entry or style property can hold: a literal (possibly
// carrying embedded interpolation), a bare number, a variable reference, or
// an animation reference.
type Value interface {
	Node
	valueNode()
}

// LiteralPart is one fragment of a Literal: either raw text or an embedded
// reference produced by ${...} interpolation.
type LiteralPart interface {
	Node
	literalPart()
}

// TextPart is a run of literal text between interpolations.
type TextPart struct {
	Text string
	Span position.Span
}

// GetSpan implements Node.
func (t TextPart) GetSpan() position.Span { return t.Span }
func (TextPart) literalPart()             {}

// Literal is a string value, optionally interleaved with VariableRef and
// AnimationRef fragments from ${...} interpolation. A literal with no
// interpolation is a single TextPart.
type Literal struct {
	Parts []LiteralPart
	Span  position.Span
}

// GetSpan implements Node.
func (l *Literal) GetSpan() position.Span { return l.Span }
func (*Literal) valueNode()               {}

// NumberValue is a bare numeric literal.
type NumberValue struct {
	Val  float64
	Span position.Span
}

// GetSpan implements Node.
func (n *NumberValue) GetSpan() position.Span { return n.Span }
func (*NumberValue) valueNode()               {}

// VariableRef names a Variables (or theme Variables) entry resolved by an
// interpolation or, in a bare-identifier value position, resolved directly.
type VariableRef struct {
	Name string
	Span position.Span
}

// GetSpan implements Node.
func (r *VariableRef) GetSpan() position.Span { return r.Span }
func (*VariableRef) valueNode()               {}
func (*VariableRef) literalPart()             {}

// AnimationRef names an Animation declaration referenced by a ${...}
// interpolation inside the value of an animation-name property. A bare
// identifier in value position always yields a VariableRef, never an
// AnimationRef.
type AnimationRef struct {
	Name string
	Span position.Span
}

// GetSpan implements Node.
func (r *AnimationRef) GetSpan() position.Span { return r.Span }
func (*AnimationRef) valueNode()               {}
func (*AnimationRef) literalPart()             {}
