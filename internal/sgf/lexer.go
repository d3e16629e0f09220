package sgf

import (
	"strings"
	"unicode/utf8"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
)

// Lexer tokenizes SGF input.
type Lexer struct {
	input  string
	pos    int
	line   int
	column int

	// err is set when a value is left unterminated.
	err error
}

// NewLexer creates a lexer over the given text.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

// Err returns the first lexical error encountered, if any.
func (l *Lexer) Err() error {
	return l.err
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.line
}

// peek returns the next rune without consuming it.
func (l *Lexer) peek() (rune, int) {
	if l.pos >= len(l.input) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

// advance consumes one rune and keeps line and column current.
func (l *Lexer) advance() rune {
	r, size := l.peek()
	if size == 0 {
		return 0
	}
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// skipWhitespace skips spaces, tabs and line breaks between tokens.
func (l *Lexer) skipWhitespace() {
	for {
		r, size := l.peek()
		if size == 0 {
			return
		}
		switch r {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			l.advance()
		default:
			return
		}
	}
}

// SkipTo discards input up to the next occurrence of r.
// It reports whether r was found.
func (l *Lexer) SkipTo(r rune) bool {
	for {
		c, size := l.peek()
		if size == 0 {
			return false
		}
		if c == r {
			return true
		}
		l.advance()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	l.skipWhitespace()

	tok := &Token{Line: l.line, Column: l.column}
	r, size := l.peek()
	if size == 0 {
		tok.Type = EOFToken
		return tok
	}

	switch {
	case r == '(':
		l.advance()
		tok.Type = TreeStart
	case r == ')':
		l.advance()
		tok.Type = TreeEnd
	case r == ';':
		l.advance()
		tok.Type = NodeStart
	case r == '[':
		l.advance()
		tok.Type = ValueToken
		tok.Text = l.readValue(tok)
	case isIdentChar(r):
		tok.Type = IdentToken
		tok.Text = l.readIdent()
	default:
		l.advance()
		tok.Type = ErrorToken
		tok.Text = string(r)
	}
	return tok
}

// isIdentChar reports whether r may appear in a property identifier.
func isIdentChar(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// readIdent reads a property identifier. Lower-case letters are dropped,
// so old-style identifiers such as AddBlack read as AB.
func (l *Lexer) readIdent() string {
	var sb strings.Builder
	for {
		r, size := l.peek()
		if size == 0 || !isIdentChar(r) {
			break
		}
		l.advance()
		if r >= 'A' && r <= 'Z' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// readValue reads a property value up to the closing bracket.
// A backslash escapes the next character; an escaped line break is removed.
func (l *Lexer) readValue(start *Token) string {
	var sb strings.Builder
	for {
		r, size := l.peek()
		if size == 0 {
			l.err = &sgferrors.ParseError{
				Err:      sgferrors.ErrParseFailure,
				Line:     start.Line,
				Column:   start.Column,
				Expected: "']'",
				Got:      "end of input",
			}
			return sb.String()
		}
		l.advance()

		switch r {
		case ']':
			return sb.String()
		case '\\':
			next, nsize := l.peek()
			if nsize == 0 {
				continue
			}
			l.advance()
			if next == '\r' {
				if c, _ := l.peek(); c == '\n' {
					l.advance()
				}
				continue
			}
			if next == '\n' {
				if c, _ := l.peek(); c == '\r' {
					l.advance()
				}
				continue
			}
			sb.WriteRune(next)
		default:
			sb.WriteRune(r)
		}
	}
}
