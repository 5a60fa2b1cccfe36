package lexer

import (
	"testing"

	"github.com/nenyr-lang/nenyr/internal/token"
)

func collect(src string) []token.Token {
	l := New(src)

	var toks []token.Token

	for {
		t := l.NextToken()
		toks = append(toks, t)

		if t.Kind == token.EOF {
			return toks
		}
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	toks := collect("Construct declare Declare")

	if toks[0].Kind != token.Keyword || toks[0].Lexeme != "Construct" {
		t.Fatalf("expected Construct keyword, got %+v", toks[0])
	}

	if toks[1].Kind != token.Identifier || toks[1].Lexeme != "declare" {
		t.Fatalf("expected lowercase 'declare' to lex as an identifier, got %+v", toks[1])
	}

	if toks[2].Kind != token.Keyword || toks[2].Lexeme != "Declare" {
		t.Fatalf("expected Declare keyword, got %+v", toks[2])
	}
}

func TestLineComment(t *testing.T) {
	toks := collect("Central // trailing comment\nModule")

	if len(toks) != 3 || toks[0].Lexeme != "Central" || toks[1].Lexeme != "Module" {
		t.Fatalf("expected comment to be stripped, got %+v", toks)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	toks := collect("/* never closed")

	if toks[0].Kind != token.Error || toks[0].LexErr != token.UnterminatedBlockComment {
		t.Fatalf("expected UnterminatedBlockComment, got %+v", toks[0])
	}
}

func TestBlockCommentDoesNotNest(t *testing.T) {
	toks := collect("/* outer /* inner */ stillHere */")

	if toks[0].Kind != token.Identifier || toks[0].Lexeme != "stillHere" {
		t.Fatalf("expected first '*/' to close the block comment, got %+v", toks[0])
	}
}

func TestStringLiteralSimple(t *testing.T) {
	toks := collect(`"#ff0000"`)

	if toks[0].Kind != token.StringLiteral || toks[0].Lexeme != "#ff0000" {
		t.Fatalf("unexpected token: %+v", toks[0])
	}
}

func TestStringEscapes(t *testing.T) {
	toks := collect(`"line\nbreak \"quoted\" \\slash\\ \ttab"`)

	want := "line\nbreak \"quoted\" \\slash\\ \ttab"
	if toks[0].Lexeme != want {
		t.Fatalf("expected %q, got %q", want, toks[0].Lexeme)
	}
}

func TestUnknownEscape(t *testing.T) {
	toks := collect(`"bad\qescape"`)

	if toks[0].Kind != token.Error || toks[0].LexErr != token.UnknownEscape {
		t.Fatalf("expected UnknownEscape, got %+v", toks[0])
	}
}

func TestUnterminatedString(t *testing.T) {
	toks := collect(`"never closed`)

	if toks[0].Kind != token.Error || toks[0].LexErr != token.UnterminatedString {
		t.Fatalf("expected UnterminatedString, got %+v", toks[0])
	}
}

func TestStringWithInterpolation(t *testing.T) {
	toks := collect(`"color: ${primary};"`)

	wantKinds := []token.Kind{
		token.StringFragment, token.InterpolationOpen, token.Identifier,
		token.InterpolationClose, token.StringFragment, token.EOF,
	}

	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(wantKinds), len(toks), toks)
	}

	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Fatalf("token %d: expected kind %s, got %s (%+v)", i, k, toks[i].Kind, toks[i])
		}
	}

	if toks[0].Lexeme != "color: " || toks[2].Lexeme != "primary" || toks[4].Lexeme != ";" {
		t.Fatalf("unexpected lexemes: %+v", toks)
	}
}

func TestEmptyInterpolationTargetIsLexedRaw(t *testing.T) {
	toks := collect(`"${}"`)

	if toks[1].Kind != token.InterpolationOpen || toks[2].Kind != token.Identifier || toks[2].Lexeme != "" {
		t.Fatalf("expected an empty identifier token for the interpolation target, got %+v", toks)
	}
}

func TestNumbers(t *testing.T) {
	toks := collect("4 3.5 0.25")

	for i, want := range []float64{4, 3.5, 0.25} {
		if toks[i].Kind != token.Number || toks[i].Number != want {
			t.Fatalf("token %d: expected number %v, got %+v", i, want, toks[i])
		}
	}
}

func TestMalformedNumberTrailingLetters(t *testing.T) {
	toks := collect("12px")

	if toks[0].Kind != token.Error || toks[0].LexErr != token.InvalidNumber {
		t.Fatalf("expected InvalidNumber, got %+v", toks[0])
	}
}

func TestMalformedNumberDoubleDot(t *testing.T) {
	toks := collect("1.2.3")

	if toks[0].Kind != token.Error || toks[0].LexErr != token.InvalidNumber {
		t.Fatalf("expected InvalidNumber, got %+v", toks[0])
	}
}

func TestPunctuation(t *testing.T) {
	toks := collect("{}(),:;.")

	want := []token.Punct{token.LBrace, token.RBrace, token.LParen, token.RParen, token.Comma, token.Colon, token.Semicolon, token.Dot}
	for i, p := range want {
		if toks[i].Kind != token.PunctKind || toks[i].Punct != p {
			t.Fatalf("token %d: expected punct %s, got %+v", i, p, toks[i])
		}
	}
}

func TestUnexpectedChar(t *testing.T) {
	toks := collect("Central # Module")

	found := false

	for _, tk := range toks {
		if tk.Kind == token.Error && tk.LexErr == token.UnexpectedChar {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected an UnexpectedChar error token, got %+v", toks)
	}
}

func TestSpansAreByteAccurate(t *testing.T) {
	toks := collect("Construct Central")

	if toks[0].Span.Start.Offset != 0 || toks[0].Span.End.Offset != len("Construct") {
		t.Fatalf("unexpected span for first token: %+v", toks[0].Span)
	}

	if toks[1].Span.Start.Column != len("Construct ")+1 {
		t.Fatalf("unexpected column for second token: %+v", toks[1].Span)
	}
}

func TestDocCommentIsARealToken(t *testing.T) {
	toks := collect("/// Primary brand color\nDeclare")

	if toks[0].Kind != token.CommentLine || toks[0].Lexeme != "Primary brand color" {
		t.Fatalf("expected a doc comment token, got %+v", toks[0])
	}

	if toks[1].Kind != token.Keyword || toks[1].Lexeme != "Declare" {
		t.Fatalf("expected Declare keyword after doc comment, got %+v", toks[1])
	}
}

func TestOrdinaryLineCommentIsStillStripped(t *testing.T) {
	toks := collect("// just a comment\nDeclare")

	if len(toks) != 2 || toks[0].Lexeme != "Declare" {
		t.Fatalf("expected ordinary comment to be stripped, got %+v", toks)
	}
}

func TestCRLFLineCounting(t *testing.T) {
	toks := collect("Central\r\nModule")

	if toks[1].Span.Start.Line != 2 {
		t.Fatalf("expected second token on line 2, got %+v", toks[1].Span)
	}
}
