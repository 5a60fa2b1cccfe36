// Package nenyr is the public entry point for parsing Nenyr source into an
// AST plus a list of diagnostics. It exposes the internal lexer/parser
// pipeline (internal/token, internal/lexer, internal/diagnostics,
// internal/ast, internal/parser) through a single call, since those
// packages themselves are unimportable outside this module.
package nenyr

import (
	"github.com/nenyr-lang/nenyr/internal/ast"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/parser"
)

// Parse runs the full lexer → parser pipeline over source and returns the
// best-effort context AST alongside every diagnostic collected along the
// way. filename is attached to diagnostics for callers juggling multiple
// source units; it may be empty. Per the parser's external contract, callers
// must check diagnostics.HasErrors before handing the returned AST to a
// downstream CSS generator: a best-effort AST may still be returned
// alongside error-severity diagnostics.
func Parse(source, filename string) (*ast.Context, []diagnostics.Diagnostic) {
	return parser.New(source, filename).Parse()
}
