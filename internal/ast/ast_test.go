package ast

import (
	"testing"

	"github.com/nenyr-lang/nenyr/internal/position"
)

func TestOrderedMapPreservesFirstSeenOrder(t *testing.T) {
	m := NewOrderedMap[int]()

	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	if got := m.Keys(); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Fatalf("expected order [b a], got %v", got)
	}

	v, ok := m.Get("b")
	if !ok || v != 3 {
		t.Fatalf("expected b to hold the last-set value 3, got %v (ok=%v)", v, ok)
	}
}

func TestOrderedMapSetReportsExisted(t *testing.T) {
	m := NewOrderedMap[string]()

	if m.Set("k", "first") {
		t.Fatal("first Set should report existed=false")
	}

	if !m.Set("k", "second") {
		t.Fatal("second Set of the same key should report existed=true")
	}
}

func TestOrderedMapEachVisitsInOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("z", 3)

	var seen []string
	m.Each(func(key string, val int) {
		seen = append(seen, key)
	})

	if len(seen) != 3 || seen[0] != "x" || seen[1] != "y" || seen[2] != "z" {
		t.Fatalf("unexpected visit order: %v", seen)
	}
}

func TestContextKindString(t *testing.T) {
	cases := map[ContextKind]string{
		ContextCentral: "Central",
		ContextLayout:  "Layout",
		ContextModule:  "Module",
	}

	for kind, want := range cases {
		if kind.String() != want {
			t.Fatalf("expected %s, got %s", want, kind.String())
		}
	}
}

func TestContextStringIncludesName(t *testing.T) {
	c := &Context{Kind: ContextLayout, Name: "Nav"}
	if c.String() != `Layout("Nav")` {
		t.Fatalf("unexpected string: %s", c.String())
	}

	central := &Context{Kind: ContextCentral}
	if central.String() != "Central" {
		t.Fatalf("unexpected string: %s", central.String())
	}
}

func TestValueVariantsImplementNode(t *testing.T) {
	sp := position.Span{}

	var values = []Value{
		&Literal{Span: sp},
		&NumberValue{Span: sp},
		&VariableRef{Span: sp},
		&AnimationRef{Span: sp},
	}

	for _, v := range values {
		_ = v.GetSpan()
	}
}

func TestLiteralPartsHoldMixedFragmentsAndRefs(t *testing.T) {
	lit := &Literal{
		Parts: []LiteralPart{
			TextPart{Text: "color: "},
			&VariableRef{Name: "primary"},
			TextPart{Text: ";"},
		},
	}

	if len(lit.Parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(lit.Parts))
	}

	ref, ok := lit.Parts[1].(*VariableRef)
	if !ok || ref.Name != "primary" {
		t.Fatalf("expected embedded VariableRef(primary), got %+v", lit.Parts[1])
	}
}
