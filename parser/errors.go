package parser

import (
	"fmt"

	"github.com/evaristocosta/javalang/token"
)

// Error reports an unexpected token, carrying the offending token and a
// description of what the calling production expected. It is terminal:
// parsing never recovers from one, and the partial AST built so far is
// discarded.
type Error struct {
	Pos      token.Position
	Got      token.Token
	Expected string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: unexpected %s, expected %s", e.Pos, e.Got, e.Expected)
}

func (p *Parser) errorf(expected string) error {
	got := p.cur.peek()
	return &Error{Pos: got.Pos(), Got: got, Expected: expected}
}
