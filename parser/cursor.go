package parser

import "github.com/evaristocosta/javalang/token"

// cursor provides peek/next/mark/reset/lookAhead over an eagerly produced
// token sequence, plus the composite-token split needed when closing a
// nested type-argument list runs into a >> or >>> token. Speculation is
// index save/restore; no tokens are ever copied.
type cursor struct {
	tokens        []token.Token
	javadocBefore []token.Position
	pos           int
}

func newCursor(tokens []token.Token, javadocBefore []token.Position) *cursor {
	return &cursor{tokens: tokens, javadocBefore: javadocBefore}
}

// peek returns the current token without consuming it.
func (c *cursor) peek() token.Token { return c.lookAhead(0) }

// lookAhead returns the token k positions ahead without consuming anything;
// it never runs past EndOfInput.
func (c *cursor) lookAhead(k int) token.Token {
	i := c.pos + k
	if i >= len(c.tokens) {
		i = len(c.tokens) - 1
	}
	return c.tokens[i]
}

// next consumes and returns the current token.
func (c *cursor) next() token.Token {
	t := c.tokens[c.pos]
	if c.pos < len(c.tokens)-1 {
		c.pos++
	}
	return t
}

// lastConsumedEnd returns the end position of the most recently consumed
// token, used when a node's span must extend through a token that was
// consumed by a helper (e.g. the closing `>` of a type-argument list)
// without that helper returning the token itself.
func (c *cursor) lastConsumedEnd() token.Position {
	if c.pos == 0 {
		return c.tokens[0].Span.Start
	}
	return c.tokens[c.pos-1].Span.End
}

// mark returns an opaque cursor position for later reset; it is a plain
// index, not a copy of any tokens.
func (c *cursor) mark() int { return c.pos }

// reset restores the cursor to a previously marked position, discarding any
// speculative progress made since. Speculation failures consumed this way
// never surface as errors to the caller.
func (c *cursor) reset(m int) { c.pos = m }

// prePosition returns the position of the Javadoc comment immediately
// preceding the current token, if any, and whether one was found.
func (c *cursor) prePosition() (token.Position, bool) {
	p := c.javadocBefore[c.pos]
	return p, p.Line != 0
}

// splitCompositeGT rewrites the current >> or >>> token into a lone >
// token followed by the remainder (> or >>) reinserted at the cursor with
// shifted positions. It panics if the current token is not >> or >>>,
// which would be a parser bug, not a user error.
func (c *cursor) splitCompositeGT() {
	t := c.tokens[c.pos]
	if t.Text != token.Shr && t.Text != token.UShr {
		panic("splitCompositeGT: current token is not >> or >>>")
	}

	head := token.Token{
		Kind: token.KindOperator,
		Text: token.Gt,
		Span: token.Span{
			Start: t.Span.Start,
			End:   token.Position{Offset: t.Span.Start.Offset + 1, Line: t.Span.Start.Line, Column: t.Span.Start.Column + 1},
		},
	}
	rest := token.Token{
		Kind: token.KindOperator,
		Text: t.Text[1:],
		Span: token.Span{Start: head.Span.End, End: t.Span.End},
	}

	replacement := make([]token.Token, 0, len(c.tokens)+1)
	replacement = append(replacement, c.tokens[:c.pos]...)
	replacement = append(replacement, head, rest)
	replacement = append(replacement, c.tokens[c.pos+1:]...)
	c.tokens = replacement

	javadocReplacement := make([]token.Position, 0, len(c.javadocBefore)+1)
	javadocReplacement = append(javadocReplacement, c.javadocBefore[:c.pos]...)
	javadocReplacement = append(javadocReplacement, c.javadocBefore[c.pos], token.Position{})
	javadocReplacement = append(javadocReplacement, c.javadocBefore[c.pos+1:]...)
	c.javadocBefore = javadocReplacement
}

// expectCloseAngle consumes one > level off the current token, splitting a
// >> or >>> composite token if that is what sits at the cursor. It is the
// operation every nested type-argument-list close goes through.
func (c *cursor) expectCloseAngle() bool {
	switch c.peek().Text {
	case token.Gt:
		c.next()
		return true
	case token.Shr, token.UShr:
		c.splitCompositeGT()
		c.next()
		return true
	default:
		return false
	}
}
