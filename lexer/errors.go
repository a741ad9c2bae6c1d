package lexer

import (
	"fmt"

	"github.com/evaristocosta/javalang/token"
)

// Error reports a malformed token, carrying the position it was found at
// and a human-readable description. It is terminal: the lexer never
// attempts recovery.
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}
