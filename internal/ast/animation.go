package ast

import "github.com/nenyr-lang/nenyr/internal/position"

// StopKind tags which keyframe position an Animation stop occupies.
type StopKind int

const (
	StopFrom StopKind = iota
	StopHalfway
	StopTo
	StopFraction
	StopProgressive
)

func (k StopKind) String() string {
	switch k {
	case StopFrom:
		return "From"
	case StopHalfway:
		return "Halfway"
	case StopTo:
		return "To"
	case StopFraction:
		return "Fraction"
	case StopProgressive:
		return "Progressive"
	default:
		return "Unknown"
	}
}

// Stop is one keyframe of an Animation body. From, Halfway, and To may each
// appear at most once; Fraction and Progressive stops may repeat, each
// carrying its own numeric argument.
type Stop struct {
	Kind        StopKind
	Fraction    float64 // Valid when Kind == StopFraction; 0..1.
	Progressive int     // Valid when Kind == StopProgressive; > 0.
	Properties  *OrderedMap[Value]
	Span        position.Span
}

// GetSpan implements Node.
func (s Stop) GetSpan() position.Span { return s.Span }

// AnimationDecl is a single named animation: `name({ From({...}), ... })`.
// DocComment carries the text of an immediately preceding `///` doc
// comment, if any; it never affects parsing.
type AnimationDecl struct {
	Name       string
	Stops      []Stop
	DocComment string
	Span       position.Span
}

// GetSpan implements Node.
func (a *AnimationDecl) GetSpan() position.Span { return a.Span }

// AnimationsDecl is `Declare Animation({ name({...}), ... })`.
type AnimationsDecl struct {
	Entries *OrderedMap[*AnimationDecl]
	Span    position.Span
}

// GetSpan implements Node.
func (d *AnimationsDecl) GetSpan() position.Span { return d.Span }
