package parser

import (
	"github.com/evaristocosta/javalang/ast"
	"github.com/evaristocosta/javalang/token"
)

// assignmentOperators are all right-associative and sit at the bottom of
// the precedence table.
var assignmentOperators = map[string]bool{
	token.Assign: true, token.PlusAssign: true, token.MinusAssign: true,
	token.StarAssign: true, token.SlashAssign: true, token.PercentAssign: true,
	token.AndAssign: true, token.OrAssign: true, token.XorAssign: true,
	token.ShlAssign: true, token.ShrAssign: true, token.UShrAssign: true,
}

// parseExpression parses the lowest-precedence production: an assignment
// expression, which is also an ordinary expression when no assignment
// operator is present.
func (p *Parser) parseExpression() (*ast.Node, error) {
	return p.parseAssignmentExpr()
}

// parseAssignmentExpr resolves lambda vs. parenthesized expression before
// falling through to the ternary level, then checks for a trailing
// assignment operator.
func (p *Parser) parseAssignmentExpr() (*ast.Node, error) {
	if lambda, ok, err := p.tryParseLambda(); err != nil {
		return nil, err
	} else if ok {
		return lambda, nil
	}

	left, err := p.parseTernaryExpr()
	if err != nil {
		return nil, err
	}

	if assignmentOperators[p.cur.peek().Text] {
		opTok := p.cur.next()
		right, err := p.parseAssignmentExpr()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.Assignment, left.Pos())
		n.Tok = &opTok
		n.Set("target", left)
		n.Set("value", right)
		n.SetEnd(right.End())
		return n, nil
	}

	return left, nil
}

// --- lambda vs. parenthesized expression ---

// tryParseLambda recognizes a lambda expression: an identifier directly
// followed by `->`, or a parenthesized parameter list (empty, untyped
// comma list, or typed formal parameters) followed by `->`. On any other
// shape it resets the cursor and returns ok=false so the caller falls
// through to ordinary expression parsing.
func (p *Parser) tryParseLambda() (*ast.Node, bool, error) {
	start := p.cur.mark()

	if p.atIdent() && p.cur.lookAhead(1).Text == token.Arrow {
		nameTok := p.cur.next()
		param := ast.New(ast.FormalParameter, nameTok.Pos())
		param.Str = nameTok.Text
		param.SetEnd(nameTok.Span.End)
		arrow := p.cur.next()
		body, err := p.parseLambdaBody()
		if err != nil {
			p.cur.reset(start)
			return nil, false, nil
		}
		n := ast.New(ast.LambdaExpression, nameTok.Pos())
		n.Tok = &arrow
		n.SetList("parameters", []*ast.Node{param})
		n.Set("body", body)
		n.SetEnd(body.End())
		return n, true, nil
	}

	if !p.at(token.LParen) {
		return nil, false, nil
	}

	params, ok := p.tryParseLambdaParameterList()
	if !ok || !p.at(token.Arrow) {
		p.cur.reset(start)
		return nil, false, nil
	}
	startTok := p.cur.tokens[start]
	arrow := p.cur.next()
	body, err := p.parseLambdaBody()
	if err != nil {
		p.cur.reset(start)
		return nil, false, nil
	}
	n := ast.New(ast.LambdaExpression, startTok.Pos())
	n.Tok = &arrow
	n.SetList("parameters", params)
	n.Set("body", body)
	n.SetEnd(body.End())
	return n, true, nil
}

// tryParseLambdaParameterList speculatively parses `(...)` as a lambda
// parameter list: empty, a comma list of bare identifiers, or a comma list
// of (optionally annotated/final/typed) formal parameters. It never
// returns with the cursor left mid-way on failure; the caller resets.
func (p *Parser) tryParseLambdaParameterList() ([]*ast.Node, bool) {
	mark := p.cur.mark()
	p.cur.next() // '('

	if p.at(token.RParen) {
		p.cur.next()
		return nil, true
	}

	var params []*ast.Node
	for {
		param, ok := p.tryParseLambdaParameter()
		if !ok {
			p.cur.reset(mark)
			return nil, false
		}
		params = append(params, param)
		if p.at(token.Comma) {
			p.cur.next()
			continue
		}
		break
	}

	if !p.at(token.RParen) {
		p.cur.reset(mark)
		return nil, false
	}
	p.cur.next()
	return params, true
}

// tryParseLambdaParameter parses one lambda parameter: a bare identifier
// (untyped lambda) or `[final] [annotations] Type name`.
func (p *Parser) tryParseLambdaParameter() (*ast.Node, bool) {
	if p.atIdent() && (p.cur.lookAhead(1).Text == token.Comma || p.cur.lookAhead(1).Text == token.RParen) {
		nameTok := p.cur.next()
		n := ast.New(ast.FormalParameter, nameTok.Pos())
		n.Str = nameTok.Text
		n.SetEnd(nameTok.Span.End)
		return n, true
	}

	mark := p.cur.mark()
	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		p.cur.reset(mark)
		return nil, false
	}
	typ, err := p.parseType()
	if err != nil || !p.atIdent() {
		p.cur.reset(mark)
		return nil, false
	}
	nameTok := p.cur.next()
	n := ast.New(ast.FormalParameter, typ.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Set("type", typ)
	n.Str = nameTok.Text
	n.SetEnd(nameTok.Span.End)
	return n, true
}

// parseLambdaBody parses either a block (`{ ... }`) or a bare expression.
func (p *Parser) parseLambdaBody() (*ast.Node, error) {
	if p.at(token.LBrace) {
		return p.parseBlock()
	}
	return p.parseExpression()
}

// --- binary operator precedence chain ---

func (p *Parser) parseTernaryExpr() (*ast.Node, error) {
	cond, err := p.parseBinaryLevel(orLevel)
	if err != nil {
		return nil, err
	}
	if !p.at(token.Question) {
		return cond, nil
	}
	p.cur.next()
	then, err := p.parseAssignmentExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	els, err := p.parseAssignmentExpr()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.TernaryExpression, cond.Pos())
	n.Set("condition", cond)
	n.Set("then", then)
	n.Set("else", els)
	n.SetEnd(els.End())
	return n, nil
}

// binaryLevel describes one row of the binary-operator precedence table,
// lowest (orLevel) to highest (multiplicativeLevel); casts,
// unary, postfix, and selectors sit above this table and are handled
// separately.
type binaryLevel struct {
	operators []string
	next      func(*Parser) (*ast.Node, error)
}

var (
	orLevel             binaryLevel
	andLevel            binaryLevel
	bitOrLevel          binaryLevel
	bitXorLevel         binaryLevel
	bitAndLevel         binaryLevel
	equalityLevel       binaryLevel
	relationalLevel     binaryLevel
	shiftLevel          binaryLevel
	additiveLevel       binaryLevel
	multiplicativeLevel binaryLevel
)

func init() {
	multiplicativeLevel = binaryLevel{[]string{token.Star, token.Slash, token.Percent}, (*Parser).parseUnaryExpr}
	additiveLevel = binaryLevel{[]string{token.Plus, token.Minus}, (*Parser).parseMultiplicative}
	shiftLevel = binaryLevel{[]string{token.Shl, token.Shr, token.UShr}, (*Parser).parseAdditive}
	relationalLevel = binaryLevel{[]string{token.Lt, token.Gt, token.Le, token.Ge}, (*Parser).parseShift}
	equalityLevel = binaryLevel{[]string{token.Eq, token.Ne}, (*Parser).parseRelationalOrInstanceof}
	bitAndLevel = binaryLevel{[]string{token.BitAnd}, (*Parser).parseEquality}
	bitXorLevel = binaryLevel{[]string{token.BitXor}, (*Parser).parseBitAnd}
	bitOrLevel = binaryLevel{[]string{token.BitOr}, (*Parser).parseBitXor}
	andLevel = binaryLevel{[]string{token.AndAnd}, (*Parser).parseBitOr}
	orLevel = binaryLevel{[]string{token.OrOr}, (*Parser).parseAnd}
}

func (p *Parser) parseMultiplicative() (*ast.Node, error) { return p.parseBinaryLevel(multiplicativeLevel) }
func (p *Parser) parseAdditive() (*ast.Node, error)       { return p.parseBinaryLevel(additiveLevel) }
func (p *Parser) parseShift() (*ast.Node, error)          { return p.parseBinaryLevel(shiftLevel) }
func (p *Parser) parseEquality() (*ast.Node, error)       { return p.parseBinaryLevel(equalityLevel) }
func (p *Parser) parseBitAnd() (*ast.Node, error)         { return p.parseBinaryLevel(bitAndLevel) }
func (p *Parser) parseBitXor() (*ast.Node, error)         { return p.parseBinaryLevel(bitXorLevel) }
func (p *Parser) parseBitOr() (*ast.Node, error)          { return p.parseBinaryLevel(bitOrLevel) }
func (p *Parser) parseAnd() (*ast.Node, error)            { return p.parseBinaryLevel(andLevel) }

func (p *Parser) parseBinaryLevel(level binaryLevel) (*ast.Node, error) {
	left, err := level.next(p)
	if err != nil {
		return nil, err
	}
	for {
		matched := false
		for _, op := range level.operators {
			if p.at(op) {
				matched = true
				break
			}
		}
		if !matched {
			return left, nil
		}
		opTok := p.cur.next()
		right, err := level.next(p)
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.BinaryOperation, left.Pos())
		n.Tok = &opTok
		n.Set("left", left)
		n.Set("right", right)
		n.SetEnd(right.End())
		left = n
	}
}

// parseRelationalOrInstanceof implements the relational row of the
// precedence table plus `instanceof`, which shares its precedence slot.
func (p *Parser) parseRelationalOrInstanceof() (*ast.Node, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("instanceof") {
		opTok := p.cur.next()
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.BinaryOperation, left.Pos())
		n.Tok = &opTok
		n.Set("left", left)
		n.Set("right", typ)
		n.SetEnd(typ.End())
		left = n
	}
	return left, nil
}

func (p *Parser) parseRelational() (*ast.Node, error) { return p.parseBinaryLevel(relationalLevel) }

// --- unary, cast, postfix ---

var unaryPrefixOps = map[string]bool{
	token.Plus: true, token.Minus: true, token.Not: true, token.BitNot: true,
	token.Increment: true, token.Decrement: true,
}

// parseUnaryExpr implements the prefix unary level, then cast vs.
// parenthesized expression.
func (p *Parser) parseUnaryExpr() (*ast.Node, error) {
	if unaryPrefixOps[p.cur.peek().Text] {
		opTok := p.cur.next()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		kind := ast.UnaryOperation
		if opTok.Text == token.Increment {
			kind = ast.Increment
		} else if opTok.Text == token.Decrement {
			kind = ast.Decrement
		}
		n := ast.New(kind, opTok.Pos())
		n.Tok = &opTok
		n.Set("operand", operand)
		n.SetEnd(operand.End())
		return n, nil
	}

	if p.at(token.LParen) {
		if cast, ok, err := p.tryParseCast(); err != nil {
			return nil, err
		} else if ok {
			return cast, nil
		}
	}

	return p.parsePostfixExpr()
}

// tryParseCast disambiguates casts from parenthesized expressions: after
// `(`, attempt to parse a type followed by `)`; if that succeeds and the
// next token can begin a unary expression, it is a cast. Primitive types
// after `(` are always casts: `(int)` can never be a parenthesized
// expression or a lambda parameter list, so that case commits without the
// follow-token check.
func (p *Parser) tryParseCast() (*ast.Node, bool, error) {
	start := p.cur.mark()
	isPrimitive := p.cur.lookAhead(1).Kind == token.KindKeyword && basicTypeKeywords[p.cur.lookAhead(1).Text]

	p.cur.next() // '('
	typ, err := p.parseType()
	if err != nil {
		p.cur.reset(start)
		return nil, false, nil
	}
	if !p.at(token.RParen) {
		p.cur.reset(start)
		return nil, false, nil
	}
	p.cur.next() // ')'

	if !isPrimitive && !p.canStartUnaryExpr() {
		p.cur.reset(start)
		return nil, false, nil
	}

	// The operand of a reference cast may itself be a lambda or method
	// reference ((Runnable) () -> run()); lambdas are recognized above the
	// unary level, so they get their own attempt here.
	var operand *ast.Node
	if lambda, ok, err := p.tryParseLambda(); err != nil {
		return nil, false, err
	} else if ok {
		operand = lambda
	} else {
		operand, err = p.parseUnaryExpr()
		if err != nil {
			return nil, false, err
		}
	}
	n := ast.New(ast.Cast, p.cur.tokens[start].Pos())
	n.Set("type", typ)
	n.Set("operand", operand)
	n.SetEnd(operand.End())
	return n, true, nil
}

// canStartUnaryExpr reports whether the current token can begin the operand
// of a reference cast: an identifier, a literal, `(`, `~`, `!`, `new`,
// `this`, `super`: any prefix that unambiguously cannot continue the
// parenthesized expression instead. `+`, `-`, `++`, and `--` are excluded:
// `(a) - b` is a subtraction and `(a)++` a postfix increment, never casts
// (only a primitive cast, which commits without this check, may take a
// plus/minus-prefixed operand).
func (p *Parser) canStartUnaryExpr() bool {
	cur := p.cur.peek()
	switch cur.Kind {
	case token.KindIdentifier, token.KindLiteral:
		return true
	}
	if cur.Kind == token.KindKeyword {
		switch cur.Text {
		case "new", "this", "super":
			return true
		}
	}
	switch cur.Text {
	case token.LParen, token.BitNot, token.Not:
		return true
	}
	return false
}

// --- postfix and primary ---

func (p *Parser) parsePostfixExpr() (*ast.Node, error) {
	expr, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at(token.Dot):
			expr, err = p.parsePostfixDot(expr)
		case p.at(token.LBracket):
			expr, err = p.parseArraySelector(expr)
		case p.at(token.ColonColon):
			expr, err = p.parseMethodReference(expr)
		case p.at(token.Increment), p.at(token.Decrement):
			opTok := p.cur.next()
			kind := ast.Increment
			if opTok.Text == token.Decrement {
				kind = ast.Decrement
			}
			n := ast.New(kind, expr.Pos())
			n.Tok = &opTok
			n.Set("operand", expr)
			n.Str = "postfix"
			n.SetEnd(opTok.Span.End)
			expr = n
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseArraySelector(target *ast.Node) (*ast.Node, error) {
	p.cur.next() // '['
	index, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	closeBracket, err := p.expect(token.RBracket)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.ArraySelector, target.Pos())
	n.Set("array", target)
	n.Set("index", index)
	n.SetEnd(closeBracket.Span.End)
	return n, nil
}

// parsePostfixDot handles every construct that can follow `.`: a field or
// method reference, `.class`, `.this`, `.new` (inner class creation), or
// an explicit type-argument list introducing a generic method invocation
// (`obj.<T>method(args)`).
func (p *Parser) parsePostfixDot(target *ast.Node) (*ast.Node, error) {
	p.cur.next() // '.'

	if p.at(token.Lt) {
		typeArgs, err := p.parseTypeArguments()
		if err != nil {
			return nil, err
		}
		nameTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		args, err := p.parseArgumentList()
		if err != nil {
			return nil, err
		}
		closeParen, err := p.expect(token.RParen)
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.MethodInvocation, target.Pos())
		n.Str = nameTok.Text
		n.Set("target", target)
		n.SetList("typeArguments", typeArgs)
		n.SetList("arguments", args)
		n.SetEnd(closeParen.Span.End)
		return n, nil
	}

	if p.atKeyword("class") {
		classTok := p.cur.next()
		n := ast.New(ast.ClassReference, target.Pos())
		n.Set("type", target)
		n.SetEnd(classTok.Span.End)
		return n, nil
	}

	if p.atKeyword("this") {
		thisTok := p.cur.next()
		n := ast.New(ast.This, target.Pos())
		n.Set("qualifier", target)
		n.SetEnd(thisTok.Span.End)
		return n, nil
	}

	if p.atKeyword("new") {
		return p.parseInnerClassCreation(target)
	}

	if p.atKeyword("super") {
		superTok := p.cur.next()
		if _, err := p.expect(token.Dot); err != nil {
			return nil, err
		}
		nameTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if p.at(token.LParen) {
			return p.finishMethodInvocationSuper(target, superTok, nameTok)
		}
		n := ast.New(ast.MemberReference, target.Pos())
		n.Str = nameTok.Text
		n.Set("qualifier", target)
		n.SetEnd(nameTok.Span.End)
		return n, nil
	}

	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if p.at(token.LParen) {
		p.cur.next()
		args, err := p.parseArgumentList()
		if err != nil {
			return nil, err
		}
		closeParen, err := p.expect(token.RParen)
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.MethodInvocation, target.Pos())
		n.Str = nameTok.Text
		n.Set("target", target)
		n.SetEnd(closeParen.Span.End)
		n.SetList("arguments", args)
		return n, nil
	}

	n := ast.New(ast.MemberReference, target.Pos())
	n.Str = nameTok.Text
	n.Set("qualifier", target)
	n.SetEnd(nameTok.Span.End)
	return n, nil
}

func (p *Parser) finishMethodInvocationSuper(target *ast.Node, superTok, nameTok token.Token) (*ast.Node, error) {
	p.cur.next() // '('
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	closeParen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.SuperMethodInvocation, target.Pos())
	n.Str = nameTok.Text
	n.Set("qualifier", target)
	n.SetList("arguments", args)
	n.SetEnd(closeParen.Span.End)
	return n, nil
}

func (p *Parser) parseInnerClassCreation(outer *ast.Node) (*ast.Node, error) {
	newTok := p.cur.next() // 'new'
	typeArgs, err := p.optionalTypeArgumentsForNew()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseReferenceType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	closeParen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.InnerClassCreation, newTok.Pos())
	n.Tok = &newTok
	n.Set("outer", outer)
	n.Set("type", typ)
	n.SetList("typeArguments", typeArgs)
	n.SetList("arguments", args)
	n.SetEnd(closeParen.Span.End)

	if p.at(token.LBrace) {
		body, err := p.parseClassBody()
		if err != nil {
			return nil, err
		}
		n.Set("body", body)
		n.SetEnd(body.End())
	}
	return n, nil
}

func (p *Parser) optionalTypeArgumentsForNew() ([]*ast.Node, error) {
	if !p.at(token.Lt) {
		return nil, nil
	}
	return p.parseTypeArguments()
}

// parseMethodReference parses `X::m`, `X::new`, and `X::<T>m`.
func (p *Parser) parseMethodReference(target *ast.Node) (*ast.Node, error) {
	p.cur.next() // '::'
	n := ast.New(ast.MethodReference, target.Pos())
	n.Set("target", target)

	var typeArgs []*ast.Node
	if p.at(token.Lt) {
		args, err := p.parseTypeArguments()
		if err != nil {
			return nil, err
		}
		typeArgs = args
	}
	n.SetList("typeArguments", typeArgs)

	if p.atKeyword("new") {
		newTok := p.cur.next()
		n.Str = "new"
		n.SetEnd(newTok.Span.End)
		return n, nil
	}

	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	n.Str = nameTok.Text
	n.SetEnd(nameTok.Span.End)
	return n, nil
}

// parseArgumentList parses a comma-separated expression list; the caller
// has already consumed the opening `(` and will consume the closing `)`.
func (p *Parser) parseArgumentList() ([]*ast.Node, error) {
	var args []*ast.Node
	if p.at(token.RParen) {
		return args, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.at(token.Comma) {
			p.cur.next()
			continue
		}
		break
	}
	return args, nil
}

// parsePrimaryExpr parses the atoms of the expression grammar: literals,
// names (bare or followed by a call, becoming a MethodInvocation), `this`,
// `super(...)` explicit constructor invocations, parenthesized
// expressions, `new` (instance/array creation), and primitive/void class
// literals. Switch expressions are out of scope (post-8).
func (p *Parser) parsePrimaryExpr() (*ast.Node, error) {
	cur := p.cur.peek()

	switch {
	case cur.Kind == token.KindLiteral:
		tok := p.cur.next()
		n := ast.New(ast.Literal, tok.Pos())
		n.Tok = &tok
		n.SetEnd(tok.Span.End)
		return n, nil

	case cur.Kind == token.KindIdentifier:
		return p.parseNameOrCall()

	case cur.Kind == token.KindKeyword && cur.Text == "this":
		thisTok := p.cur.next()
		if p.at(token.LParen) {
			p.cur.next()
			args, err := p.parseArgumentList()
			if err != nil {
				return nil, err
			}
			closeParen, err := p.expect(token.RParen)
			if err != nil {
				return nil, err
			}
			n := ast.New(ast.ExplicitConstructorInvocation, thisTok.Pos())
			n.Str = "this"
			n.SetList("arguments", args)
			n.SetEnd(closeParen.Span.End)
			return n, nil
		}
		n := ast.New(ast.This, thisTok.Pos())
		n.SetEnd(thisTok.Span.End)
		return n, nil

	case cur.Kind == token.KindKeyword && cur.Text == "super":
		superTok := p.cur.next()
		if p.at(token.LParen) {
			p.cur.next()
			args, err := p.parseArgumentList()
			if err != nil {
				return nil, err
			}
			closeParen, err := p.expect(token.RParen)
			if err != nil {
				return nil, err
			}
			n := ast.New(ast.ExplicitConstructorInvocation, superTok.Pos())
			n.Str = "super"
			n.SetList("arguments", args)
			n.SetEnd(closeParen.Span.End)
			return n, nil
		}
		if p.at(token.ColonColon) {
			// super::m; leave the :: to the postfix loop.
			n := ast.New(ast.Name, superTok.Pos())
			n.Tok = &superTok
			n.Str = "super"
			n.SetEnd(superTok.Span.End)
			return n, nil
		}
		return p.parsePostfixDotOnSuper(superTok)

	case cur.Kind == token.KindKeyword && cur.Text == "new":
		return p.parseInstanceOrArrayCreation()

	case cur.Kind == token.KindKeyword && cur.Text == "void":
		voidTok := p.cur.next()
		if _, err := p.expect(token.Dot); err != nil {
			return nil, err
		}
		classTok, err := p.expectKeyword("class")
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.VoidClassReference, voidTok.Pos())
		n.SetEnd(classTok.Span.End)
		return n, nil

	case cur.Kind == token.KindKeyword && basicTypeKeywords[cur.Text]:
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Dot); err != nil {
			return nil, err
		}
		classTok, err := p.expectKeyword("class")
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.ClassReference, typ.Pos())
		n.Set("type", typ)
		n.SetEnd(classTok.Span.End)
		return n, nil

	case p.at(token.LParen):
		return p.parseParenthesizedExpr()
	}

	return nil, p.errorf("an expression")
}

func (p *Parser) expectKeyword(text string) (token.Token, error) {
	if !p.atKeyword(text) {
		return token.Token{}, p.errorf("'" + text + "'")
	}
	return p.cur.next(), nil
}

// parsePostfixDotOnSuper handles `super.field` / `super.method(...)`, the
// qualifier-less sibling of the `.super.x` form handled in parsePostfixDot.
func (p *Parser) parsePostfixDotOnSuper(superTok token.Token) (*ast.Node, error) {
	if _, err := p.expect(token.Dot); err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.at(token.LParen) {
		p.cur.next()
		args, err := p.parseArgumentList()
		if err != nil {
			return nil, err
		}
		closeParen, err := p.expect(token.RParen)
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.SuperMethodInvocation, superTok.Pos())
		n.Str = nameTok.Text
		n.SetList("arguments", args)
		n.SetEnd(closeParen.Span.End)
		return n, nil
	}
	n := ast.New(ast.MemberReference, superTok.Pos())
	n.Str = nameTok.Text
	n.SetEnd(nameTok.Span.End)
	return n, nil
}

// parseNameOrCall parses a bare Name or a MethodInvocation (`name(args)`);
// generic method calls with an explicit `.` target are parsePostfixDot's
// business.
func (p *Parser) parseNameOrCall() (*ast.Node, error) {
	nameTok := p.cur.next()
	if p.at(token.LParen) {
		p.cur.next()
		args, err := p.parseArgumentList()
		if err != nil {
			return nil, err
		}
		closeParen, err := p.expect(token.RParen)
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.MethodInvocation, nameTok.Pos())
		n.Str = nameTok.Text
		n.SetList("arguments", args)
		n.SetEnd(closeParen.Span.End)
		return n, nil
	}
	n := ast.New(ast.Name, nameTok.Pos())
	n.Tok = &nameTok
	n.Str = nameTok.Text
	n.SetEnd(nameTok.Span.End)
	return n, nil
}

// parseParenthesizedExpr is the fallback once neither a cast nor a lambda
// matched: `(` starts an ordinary parenthesized expression.
func (p *Parser) parseParenthesizedExpr() (*ast.Node, error) {
	open := p.cur.next()
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	closeParen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}
	inner.Start = open.Pos()
	inner.SetEnd(closeParen.Span.End)
	return inner, nil
}

// parseInstanceOrArrayCreation parses `new Type(args)`, `new Type(args) {
// body }` (anonymous class, folded into InstanceCreation's "body"
// attribute), and array creation `new T[n]...` / `new T[]{...}`.
func (p *Parser) parseInstanceOrArrayCreation() (*ast.Node, error) {
	newTok := p.cur.next()

	typeArgs, err := p.optionalTypeArgumentsForNew()
	if err != nil {
		return nil, err
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if p.at(token.LBracket) || typ.Dims > 0 {
		return p.parseArrayCreation(newTok, typ)
	}

	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	closeParen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.InstanceCreation, newTok.Pos())
	n.Tok = &newTok
	n.Set("type", typ)
	n.SetList("typeArguments", typeArgs)
	n.SetList("arguments", args)
	n.SetEnd(closeParen.Span.End)

	if p.at(token.LBrace) {
		body, err := p.parseClassBody()
		if err != nil {
			return nil, err
		}
		n.Set("body", body)
		n.SetEnd(body.End())
	}
	return n, nil
}

func (p *Parser) parseArrayCreation(newTok token.Token, elementType *ast.Node) (*ast.Node, error) {
	n := ast.New(ast.ArrayCreation, newTok.Pos())
	n.Tok = &newTok
	n.Set("elementType", elementType)

	// parseType has already consumed any leading empty `[]` pairs onto the
	// element type; they are empty dimensions of this creation.
	var dims []*ast.Node
	dimCount := elementType.Dims
	sawEmptyDim := dimCount > 0
	elementType.Dims = 0
	if dimCount > 0 {
		n.SetEnd(p.cur.lastConsumedEnd())
	}
	for p.at(token.LBracket) {
		p.cur.next()
		if p.at(token.RBracket) {
			closeBracket := p.cur.next()
			dimCount++
			sawEmptyDim = true
			n.SetEnd(closeBracket.Span.End)
			continue
		}
		// Sized dimensions must all precede empty ones: new int[][3] is a
		// syntax error.
		if sawEmptyDim {
			return nil, p.errorf("']'")
		}
		size, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		closeBracket, err := p.expect(token.RBracket)
		if err != nil {
			return nil, err
		}
		dims = append(dims, size)
		dimCount++
		n.SetEnd(closeBracket.Span.End)
	}
	n.SetList("dimensions", dims)
	n.Dims = dimCount

	if p.at(token.LBrace) {
		init, err := p.parseArrayInitializer()
		if err != nil {
			return nil, err
		}
		n.Set("initializer", init)
		n.SetEnd(init.End())
	}
	return n, nil
}

// parseArrayInitializer parses `{ v1, v2, ... }`, possibly nested, used
// both for array creation and for `Type[] xs = {1, 2, 3};` initializers.
func (p *Parser) parseArrayInitializer() (*ast.Node, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.ArrayInitializer, open.Pos())
	var values []*ast.Node
	for !p.at(token.RBrace) {
		var v *ast.Node
		var err error
		if p.at(token.LBrace) {
			v, err = p.parseArrayInitializer()
		} else {
			v, err = p.parseExpression()
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		if p.at(token.Comma) {
			p.cur.next()
			continue
		}
		break
	}
	closeBrace, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	n.SetList("values", values)
	n.SetEnd(closeBrace.Span.End)
	return n, nil
}
