// Package token defines the lexical vocabulary of Nenyr: token kinds, the
// static keyword table, and the punctuation set the lexer recognizes.
package token

import (
	"fmt"

	"github.com/nenyr-lang/nenyr/internal/position"
)

// Kind is the tag of a Token's variant.
type Kind int

const (
	// EOF terminates every token stream produced by the lexer.
	EOF Kind = iota
	// Error wraps a lexical failure (see LexErrorKind) as a token so that
	// the caller can synchronize instead of panicking mid-scan.
	Error

	Keyword
	Identifier
	StringLiteral // A complete, non-interpolated string literal.
	StringFragment
	Number
	PunctKind

	InterpolationOpen
	InterpolationClose

	CommentLine
	CommentBlock
)

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

var kindNames = map[Kind]string{
	EOF:                "EndOfFile",
	Error:              "Error",
	Keyword:            "Keyword",
	Identifier:         "Identifier",
	StringLiteral:      "StringLiteral",
	StringFragment:     "StringFragment",
	Number:             "Number",
	PunctKind:          "Punct",
	InterpolationOpen:  "InterpolationOpen",
	InterpolationClose: "InterpolationClose",
	CommentLine:        "Comment(line)",
	CommentBlock:       "Comment(block)",
}

// Punct enumerates the punctuation marks that form the grammar's external
// contract, per the language's punctuation set.
type Punct int

const (
	LBrace Punct = iota
	RBrace
	LParen
	RParen
	Comma
	Colon
	Semicolon
	Dot
	Dollar
)

var punctNames = map[Punct]string{
	LBrace:    "{",
	RBrace:    "}",
	LParen:    "(",
	RParen:    ")",
	Comma:     ",",
	Colon:     ":",
	Semicolon: ";",
	Dot:       ".",
	Dollar:    "$",
}

func (p Punct) String() string {
	if s, ok := punctNames[p]; ok {
		return s
	}

	return "?"
}

// Token is a single lexical unit with the source span it was scanned from.
type Token struct {
	Kind    Kind
	Lexeme  string // Raw source text, or the decoded text for strings; numbers keep raw text here and their value in Number.
	Punct   Punct  // Valid when Kind == PunctKind.
	Number  float64
	Span    position.Span
	LexErr  LexErrorKind // Valid when Kind == Error.
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Span)
}

// LexErrorKind enumerates the lexical failures the lexer can report.
type LexErrorKind int

const (
	UnterminatedString LexErrorKind = iota
	UnterminatedBlockComment
	UnknownEscape
	InvalidNumber
	UnexpectedChar
)

var lexErrorNames = map[LexErrorKind]string{
	UnterminatedString:       "UnterminatedString",
	UnterminatedBlockComment: "UnterminatedBlockComment",
	UnknownEscape:            "UnknownEscape",
	InvalidNumber:            "InvalidNumber",
	UnexpectedChar:           "UnexpectedChar",
}

func (k LexErrorKind) String() string {
	if s, ok := lexErrorNames[k]; ok {
		return s
	}

	return "UnknownLexError"
}

// Keywords is the static, read-only keyword table. It is built once at
// package init and never mutated; the lexer only reads from it.
var Keywords = map[string]bool{
	"Construct":       true,
	"Central":         true,
	"Layout":          true,
	"Module":          true,
	"Declare":         true,
	"Imports":         true,
	"Typefaces":       true,
	"Breakpoints":     true,
	"Themes":          true,
	"Aliases":         true,
	"Variables":       true,
	"Animation":       true,
	"Class":           true,
	"Extending":       true,
	"Deriving":        true,
	"Important":       true,
	"Stylesheet":      true,
	"PanoramicViewer": true,
	"Hover":           true,
	"Active":          true,
	"Focus":           true,
	"MobileFirst":     true,
	"DesktopFirst":    true,
	"Light":           true,
	"Dark":            true,
	"From":            true,
	"Halfway":         true,
	"To":              true,
	"Fraction":        true,
	"Progressive":     true,
}

// IsKeyword reports whether lexeme is a recognized keyword. Keyword
// matching is case-sensitive: "declare" is not "Declare".
func IsKeyword(lexeme string) bool {
	return Keywords[lexeme]
}
