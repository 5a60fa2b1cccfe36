// Package lexer implements the Nenyr tokenizer: a lazy, finite,
// non-restartable sequence of tokens with spans, terminated by EOF.
package lexer

import (
	"strconv"
	"strings"

	"github.com/nenyr-lang/nenyr/internal/position"
	"github.com/nenyr-lang/nenyr/internal/token"
)

// Lexer scans a single immutable source buffer into tokens. It is
// single-threaded and holds no state beyond the cursor and a small pending
// queue used to decompose interpolated strings into their constituent
// tokens.
type Lexer struct {
	cur      *position.Cursor
	filename string
	pending  []token.Token
}

// New creates a lexer over src.
func New(src string) *Lexer {
	return NewWithFilename(src, "")
}

// NewWithFilename creates a lexer over src, attaching filename to the spans
// it produces is left to the caller; the lexer itself only tracks
// line/column/offset.
func NewWithFilename(src, filename string) *Lexer {
	return &Lexer{cur: position.NewCursor(src), filename: filename}
}

var puncts = map[byte]token.Punct{
	'{': token.LBrace,
	'}': token.RBrace,
	'(': token.LParen,
	')': token.RParen,
	',': token.Comma,
	':': token.Colon,
	';': token.Semicolon,
	'.': token.Dot,
	'$': token.Dollar,
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// NextToken returns the next significant token, having stripped whitespace
// and comments. The final token in the stream always has Kind == token.EOF.
func (l *Lexer) NextToken() token.Token {
	if len(l.pending) > 0 {
		t := l.pending[0]
		l.pending = l.pending[1:]

		return t
	}

	if doc, errTok := l.skipTrivia(); errTok != nil {
		return *errTok
	} else if doc != nil {
		return *doc
	}

	start := l.cur.Pos()

	if l.cur.AtEnd() {
		return token.Token{Kind: token.EOF, Span: position.Span{Start: start, End: start}}
	}

	ch := l.cur.Current()

	switch {
	case isIdentStart(ch):
		return l.scanIdentifierOrKeyword(start)
	case isDigit(ch):
		return l.scanNumber(start)
	case ch == '"':
		toks := l.scanString(start)
		if len(toks) > 1 {
			l.pending = toks[1:]
		}

		return toks[0]
	default:
		if p, ok := puncts[ch]; ok {
			l.cur.Advance()
			end := l.cur.Pos()

			return token.Token{Kind: token.PunctKind, Punct: p, Lexeme: string(ch), Span: position.Span{Start: start, End: end}}
		}

		lexeme := string(ch)
		l.cur.Advance()
		end := l.cur.Pos()

		return token.Token{Kind: token.Error, LexErr: token.UnexpectedChar, Lexeme: lexeme, Span: position.Span{Start: start, End: end}}
	}
}

// skipTrivia consumes whitespace, line comments, and block comments. It
// returns a non-nil error token only for an unterminated block comment,
// which is fatal and must propagate to the caller immediately. A `///` doc
// comment is not trivia: skipTrivia stops and returns it as a real token so
// the parser can attach it to the declaration that follows.
func (l *Lexer) skipTrivia() (doc *token.Token, fatal *token.Token) {
	for {
		ch := l.cur.Current()

		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.cur.Advance()
		case ch == '/' && l.cur.Peek() == '/':
			start := l.cur.Pos()
			l.cur.Advance()
			l.cur.Advance()

			isDoc := l.cur.Current() == '/'
			if isDoc {
				l.cur.Advance()
			}

			bodyOffset := l.cur.Offset()

			for l.cur.Current() != 0 && l.cur.Current() != '\n' {
				l.cur.Advance()
			}

			if !isDoc {
				continue
			}

			body := strings.TrimSpace(l.cur.Slice(bodyOffset, l.cur.Offset()))
			end := l.cur.Pos()
			tok := token.Token{Kind: token.CommentLine, Lexeme: body, Span: position.Span{Start: start, End: end}}

			return &tok, nil
		case ch == '/' && l.cur.Peek() == '*':
			start := l.cur.Pos()
			l.cur.Advance()
			l.cur.Advance()

			closed := false

			for !l.cur.AtEnd() {
				if l.cur.Current() == '*' && l.cur.Peek() == '/' {
					l.cur.Advance()
					l.cur.Advance()

					closed = true

					break
				}

				l.cur.Advance()
			}

			if !closed {
				tok := l.errorToken(token.UnterminatedBlockComment, start)

				return nil, &tok
			}
		default:
			return nil, nil
		}
	}
}

func (l *Lexer) errorToken(kind token.LexErrorKind, start position.Position) token.Token {
	end := l.cur.Pos()

	return token.Token{Kind: token.Error, LexErr: kind, Span: position.Span{Start: start, End: end}}
}

func (l *Lexer) scanIdentifierOrKeyword(start position.Position) token.Token {
	startOffset := l.cur.Offset()

	for isIdentStart(l.cur.Current()) || isDigit(l.cur.Current()) {
		l.cur.Advance()
	}

	lexeme := l.cur.Slice(startOffset, l.cur.Offset())
	end := l.cur.Pos()

	kind := token.Identifier
	if token.IsKeyword(lexeme) {
		kind = token.Keyword
	}

	return token.Token{Kind: kind, Lexeme: lexeme, Span: position.Span{Start: start, End: end}}
}

// scanNumber reads one or more digits, an optional single '.', and an
// optional fractional part. There is no exponent form. A digit run
// immediately followed by a letter, or by a second '.', is malformed.
func (l *Lexer) scanNumber(start position.Position) token.Token {
	startOffset := l.cur.Offset()

	for isDigit(l.cur.Current()) {
		l.cur.Advance()
	}

	hasDot := false
	if l.cur.Current() == '.' && isDigit(l.cur.Peek()) {
		hasDot = true

		l.cur.Advance()

		for isDigit(l.cur.Current()) {
			l.cur.Advance()
		}
	}

	if isIdentStart(l.cur.Current()) {
		for isIdentStart(l.cur.Current()) || isDigit(l.cur.Current()) {
			l.cur.Advance()
		}

		lexeme := l.cur.Slice(startOffset, l.cur.Offset())
		end := l.cur.Pos()

		return token.Token{Kind: token.Error, LexErr: token.InvalidNumber, Lexeme: lexeme, Span: position.Span{Start: start, End: end}}
	}

	if hasDot && l.cur.Current() == '.' {
		l.cur.Advance()

		for isDigit(l.cur.Current()) {
			l.cur.Advance()
		}

		lexeme := l.cur.Slice(startOffset, l.cur.Offset())
		end := l.cur.Pos()

		return token.Token{Kind: token.Error, LexErr: token.InvalidNumber, Lexeme: lexeme, Span: position.Span{Start: start, End: end}}
	}

	lexeme := l.cur.Slice(startOffset, l.cur.Offset())
	end := l.cur.Pos()
	value, _ := strconv.ParseFloat(lexeme, 64)

	return token.Token{Kind: token.Number, Lexeme: lexeme, Number: value, Span: position.Span{Start: start, End: end}}
}

// scanString scans a double-quoted string literal starting at the opening
// quote. When the literal contains no "${...}" interpolation it returns a
// single StringLiteral token holding the decoded value. Otherwise it
// decomposes the literal into StringFragment / InterpolationOpen /
// Identifier / InterpolationClose tokens in source order, mirroring the
// grammar's Token kind set. Nesting interpolation is not permitted: a
// second "${" encountered while scanning an interpolation target is simply
// swallowed into the (invalid) target text for the parser to reject.
func (l *Lexer) scanString(start position.Position) []token.Token {
	l.cur.Advance() // Consume the opening quote.

	var (
		frags        []token.Token
		buf          strings.Builder
		hasInterp    bool
		fragmentFrom = l.cur.Pos()
	)

	finalizeFragment := func(end position.Position) {
		frags = append(frags, token.Token{
			Kind:   token.StringFragment,
			Lexeme: buf.String(),
			Span:   position.Span{Start: fragmentFrom, End: end},
		})
		buf.Reset()
	}

	for {
		ch := l.cur.Current()

		switch {
		case ch == 0 || ch == '\n':
			return []token.Token{l.errorToken(token.UnterminatedString, start)}
		case ch == '"':
			end := l.cur.Pos()
			l.cur.Advance()
			fullEnd := l.cur.Pos()

			if !hasInterp {
				return []token.Token{{Kind: token.StringLiteral, Lexeme: buf.String(), Span: position.Span{Start: start, End: fullEnd}}}
			}

			finalizeFragment(end)

			return frags
		case ch == '$' && l.cur.Peek() == '{':
			hasInterp = true
			openStart := l.cur.Pos()
			finalizeFragment(openStart)

			l.cur.Advance()
			l.cur.Advance()

			openEnd := l.cur.Pos()
			frags = append(frags, token.Token{Kind: token.InterpolationOpen, Lexeme: "${", Span: position.Span{Start: openStart, End: openEnd}})

			identStart := l.cur.Pos()

			var identBuf strings.Builder
			for l.cur.Current() != '}' && l.cur.Current() != '"' && l.cur.Current() != 0 && l.cur.Current() != '\n' {
				identBuf.WriteByte(l.cur.Current())
				l.cur.Advance()
			}

			if l.cur.Current() != '}' {
				return []token.Token{l.errorToken(token.UnterminatedString, start)}
			}

			identEnd := l.cur.Pos()
			frags = append(frags, token.Token{Kind: token.Identifier, Lexeme: identBuf.String(), Span: position.Span{Start: identStart, End: identEnd}})

			closeStart := l.cur.Pos()
			l.cur.Advance()

			closeEnd := l.cur.Pos()
			frags = append(frags, token.Token{Kind: token.InterpolationClose, Lexeme: "}", Span: position.Span{Start: closeStart, End: closeEnd}})

			fragmentFrom = l.cur.Pos()
		case ch == '\\':
			switch l.cur.Peek() {
			case '"':
				buf.WriteByte('"')
			case '\\':
				buf.WriteByte('\\')
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			default:
				return []token.Token{l.errorToken(token.UnknownEscape, start)}
			}

			l.cur.Advance()
			l.cur.Advance()
		default:
			buf.WriteByte(ch)
			l.cur.Advance()
		}
	}
}
