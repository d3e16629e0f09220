package sgf

import (
	"io"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
)

// Parser parses SGF input into a Collection.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
}

// NewParser creates a new parser for the given text.
func NewParser(input string) *Parser {
	return &Parser{
		lexer: NewLexer(input),
	}
}

// Parse reads all of r and parses it as an SGF collection.
func Parse(r io.Reader) (*Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, sgferrors.Wrap(err, "reading SGF")
	}
	return ParseString(string(data))
}

// ParseString parses an SGF collection held in a string.
func ParseString(text string) (*Collection, error) {
	return NewParser(text).ParseCollection()
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() error {
	p.currentToken = p.lexer.NextToken()
	return p.lexer.Err()
}

// errorf builds a ParseError at the current token.
func (p *Parser) errorf(expected string) error {
	return &sgferrors.ParseError{
		Err:      sgferrors.ErrParseFailure,
		Line:     p.currentToken.Line,
		Column:   p.currentToken.Column,
		Expected: expected,
		Got:      p.currentToken.describe(),
	}
}

// ParseCollection parses one or more game trees. Text before the first
// '(' is ignored, as many SGF writers prepend a header.
func (p *Parser) ParseCollection() (*Collection, error) {
	if !p.lexer.SkipTo('(') {
		return nil, &sgferrors.ParseError{
			Err:      sgferrors.ErrParseFailure,
			Line:     p.lexer.LineNumber(),
			Expected: "'('",
			Got:      "end of input",
		}
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	collection := &Collection{}
	for p.currentToken.Type == TreeStart {
		tree, err := p.parseGameTree()
		if err != nil {
			return nil, err
		}
		collection.Trees = append(collection.Trees, tree)
	}

	if p.currentToken.Type != EOFToken {
		return nil, p.errorf("'(' or end of input")
	}
	return collection, nil
}

// parseGameTree parses "(" Sequence GameTree* ")".
// The current token is the opening parenthesis.
func (p *Parser) parseGameTree() (*GameTree, error) {
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if p.currentToken.Type != NodeStart {
		return nil, p.errorf("';'")
	}

	tree := &GameTree{}
	for p.currentToken.Type == NodeStart {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		tree.Nodes = append(tree.Nodes, node)
	}

	for p.currentToken.Type == TreeStart {
		child, err := p.parseGameTree()
		if err != nil {
			return nil, err
		}
		tree.Children = append(tree.Children, child)
	}

	if p.currentToken.Type != TreeEnd {
		return nil, p.errorf("')'")
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return tree, nil
}

// parseNode parses ";" Property*. The current token is the semicolon.
func (p *Parser) parseNode() (*Node, error) {
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	node := &Node{}
	for p.currentToken.Type == IdentToken {
		ident := p.currentToken.Text
		if ident == "" {
			return nil, p.errorf("upper-case property identifier")
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if p.currentToken.Type != ValueToken {
			return nil, p.errorf("'[' after " + ident)
		}

		var values []string
		for p.currentToken.Type == ValueToken {
			values = append(values, p.currentToken.Text)
			if err := p.nextToken(); err != nil {
				return nil, err
			}
		}
		node.add(ident, values)
	}

	switch p.currentToken.Type {
	case NodeStart, TreeStart, TreeEnd:
		return node, nil
	}
	return nil, p.errorf("property, ';', '(' or ')'")
}
