// Package parser implements the recursive-descent, predictive parser for
// Java SE 8-era source: full declaration, statement, and expression
// grammar, generics (diamond, bounded wildcards), varargs, declaration and
// type annotations, lambdas, method references, try-with-resources, and
// multi-catch. Java's locally ambiguous constructs (cast vs. parenthesized
// expression, type arguments vs. the less-than operator, lambda vs.
// parenthesized expression, generic method invocation) are resolved via
// bounded lookahead and mark/reset backtracking over the token cursor, and
// the result is an *ast.Node tree rooted at a CompilationUnit.
//
// Parsing is synchronous, allocates no shared state across calls, and
// aborts at the first lexer.Error or *Error: there is no error recovery.
// A Parser value is built fresh per parse by the package-level entry
// points; nothing here is safe for concurrent reuse across parses, though
// independent parses may run in parallel with no coordination.
package parser

import (
	"github.com/evaristocosta/javalang/ast"
	"github.com/evaristocosta/javalang/lexer"
	"github.com/evaristocosta/javalang/token"
)

// Option configures a Parser at construction time, the same functional-
// options idiom the ambient CLI/LSP layer uses to thread flags through.
type Option func(*Parser)

// WithFile attaches a logical file name to positions for diagnostics. The
// core grammar never reads it.
func WithFile(file string) Option {
	return func(p *Parser) { p.file = file }
}

// Parser holds one parse's mutable state: the token cursor and whatever
// configuration Options supplied. Nothing here is global.
type Parser struct {
	file string
	cur  *cursor
}

func newParser(source string, opts ...Option) (*Parser, error) {
	tokens, javadocBefore, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &Parser{cur: newCursor(tokens, javadocBefore)}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Tokenize lexes source into its full token sequence, or fails with a
// *lexer.Error.
func Tokenize(source string) ([]token.Token, error) {
	tokens, _, err := lexer.Tokenize(source)
	return tokens, err
}

// Parse lexes and parses a full compilation unit, or fails with a
// *lexer.Error or *Error.
func Parse(source string, opts ...Option) (*ast.Node, error) {
	p, err := newParser(source, opts...)
	if err != nil {
		return nil, err
	}
	cu, err := p.parseCompilationUnit()
	if err != nil {
		return nil, err
	}
	if p.cur.peek().Kind != token.KindEndOfInput {
		return nil, p.errorf("end of input")
	}
	return cu, nil
}

// ParseExpression parses source as a single expression.
func ParseExpression(source string, opts ...Option) (*ast.Node, error) {
	p, err := newParser(source, opts...)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.cur.peek().Kind != token.KindEndOfInput {
		return nil, p.errorf("end of input")
	}
	return expr, nil
}

// ParseMemberDeclaration parses source as a single class/interface member
// (field, method, constructor, or nested type declaration), including any
// leading modifiers and annotations.
func ParseMemberDeclaration(source string, opts ...Option) (*ast.Node, error) {
	p, err := newParser(source, opts...)
	if err != nil {
		return nil, err
	}
	member, err := p.parseClassBodyDeclaration()
	if err != nil {
		return nil, err
	}
	if p.cur.peek().Kind != token.KindEndOfInput {
		return nil, p.errorf("end of input")
	}
	return member, nil
}

// ParseType parses source as a single type (basic or reference, with type
// arguments).
func ParseType(source string, opts ...Option) (*ast.Node, error) {
	p, err := newParser(source, opts...)
	if err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.cur.peek().Kind != token.KindEndOfInput {
		return nil, p.errorf("end of input")
	}
	return typ, nil
}

// --- small cursor conveniences shared across grammar files ---

func (p *Parser) at(text string) bool {
	return p.cur.peek().Text == text
}

func (p *Parser) atAny(texts ...string) bool {
	cur := p.cur.peek().Text
	for _, t := range texts {
		if cur == t {
			return true
		}
	}
	return false
}

func (p *Parser) atKeyword(text string) bool {
	t := p.cur.peek()
	return t.Kind == token.KindKeyword && t.Text == text
}

func (p *Parser) atIdent() bool {
	return p.cur.peek().Kind == token.KindIdentifier
}

// expect consumes the current token if it matches text, else fails with a
// *Error describing what this production wanted.
func (p *Parser) expect(text string) (token.Token, error) {
	if !p.at(text) {
		return token.Token{}, p.errorf("'" + text + "'")
	}
	return p.cur.next(), nil
}

func (p *Parser) expectIdent() (token.Token, error) {
	if !p.atIdent() {
		return token.Token{}, p.errorf("identifier")
	}
	return p.cur.next(), nil
}
