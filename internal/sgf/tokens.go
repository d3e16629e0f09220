// Package sgf provides Smart Game Format lexing and parsing.
package sgf

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	TreeStart          // (
	TreeEnd            // )
	NodeStart          // ;
	IdentToken         // property identifier, e.g. AB
	ValueToken         // bracketed property value, brackets stripped
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:   "end of input",
	TreeStart:  "'('",
	TreeEnd:    "')'",
	NodeStart:  "';'",
	IdentToken: "property identifier",
	ValueToken: "property value",
	ErrorToken: "invalid character",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown token"
}

// Token is a lexical token with its source position.
type Token struct {
	Type   TokenType
	Text   string
	Line   int
	Column int
}

// describe renders the token for error messages.
func (t *Token) describe() string {
	switch t.Type {
	case IdentToken:
		return "identifier " + t.Text
	case ValueToken:
		return "value [" + t.Text + "]"
	case ErrorToken:
		return "character " + quoteRune(t.Text)
	}
	return t.Type.String()
}

func quoteRune(s string) string {
	return "'" + s + "'"
}
