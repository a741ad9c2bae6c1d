package parser

import (
	"github.com/evaristocosta/javalang/ast"
	"github.com/evaristocosta/javalang/token"
)

var basicTypeKeywords = map[string]bool{
	"byte": true, "short": true, "int": true, "long": true,
	"float": true, "double": true, "boolean": true, "char": true,
}

// parseType parses a single Java type: a BasicType keyword or a (possibly
// qualified, possibly generic) ReferenceType, followed by any number of
// `[]` array-dimension suffixes.
func (p *Parser) parseType() (*ast.Node, error) {
	if p.cur.peek().Kind == token.KindKeyword && basicTypeKeywords[p.cur.peek().Text] {
		tok := p.cur.next()
		n := ast.New(ast.BasicType, tok.Pos())
		n.Tok = &tok
		n.SetEnd(tok.Span.End)
		n.Dims = p.parseArrayDims()
		return n, nil
	}
	return p.parseReferenceType()
}

// parseReferenceType parses a qualified, possibly-generic named type such
// as `List<String>` or `Outer<T>.Inner<U>`. Each dotted segment can carry
// its own type-argument list; the returned node is the last (innermost)
// segment, with its "qualifier" attribute chaining back to the enclosing
// segment.
func (p *Parser) parseReferenceType() (*ast.Node, error) {
	var annotations []*ast.Node
	for p.cur.peek().Kind == token.KindAnnotationSigil {
		ann, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, ann)
	}

	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.ReferenceType, nameTok.Pos())
	n.Str = nameTok.Text
	n.Annotations = annotations
	n.SetEnd(nameTok.Span.End)

	if p.at(token.Lt) {
		args, err := p.parseTypeArguments()
		if err != nil {
			return nil, err
		}
		n.SetList("typeArguments", args)
		n.SetEnd(p.cur.lastConsumedEnd())
	} else {
		n.SetList("typeArguments", nil)
	}

	for p.at(token.Dot) && p.cur.lookAhead(1).Kind == token.KindIdentifier {
		p.cur.next()
		inner, err := p.parseReferenceTypeSegment()
		if err != nil {
			return nil, err
		}
		inner.Set("qualifier", n)
		n = inner
	}

	n.Dims = p.parseArrayDims()
	return n, nil
}

// parseReferenceTypeSegment parses one dotted segment of a qualified type
// (after the leading `.` has been consumed): name plus optional type
// arguments, without recursing into further dots; the caller's loop in
// parseReferenceType handles chaining.
func (p *Parser) parseReferenceTypeSegment() (*ast.Node, error) {
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.ReferenceType, nameTok.Pos())
	n.Str = nameTok.Text
	n.SetEnd(nameTok.Span.End)
	if p.at(token.Lt) {
		args, err := p.parseTypeArguments()
		if err != nil {
			return nil, err
		}
		n.SetList("typeArguments", args)
		n.SetEnd(p.cur.lastConsumedEnd())
	} else {
		n.SetList("typeArguments", nil)
	}
	return n, nil
}

func (p *Parser) parseArrayDims() int {
	dims := 0
	for p.at(token.LBracket) && p.cur.lookAhead(1).Text == token.RBracket {
		p.cur.next()
		p.cur.next()
		dims++
	}
	return dims
}

// parseTypeArguments parses `< arg, arg, ... >` (or the empty diamond `<>`)
// assuming the cursor sits at the opening `<`. It commits: callers in an
// unambiguous type context call it directly, while expression-context
// callers (where `<` may instead be the less-than operator) must
// mark/reset around the call themselves and additionally validate the
// follow token.
func (p *Parser) parseTypeArguments() ([]*ast.Node, error) {
	_, err := p.expect(token.Lt)
	if err != nil {
		return nil, err
	}

	var args []*ast.Node
	if p.at(token.Gt) || p.at(token.Shr) || p.at(token.UShr) {
		// diamond <>
		if !p.cur.expectCloseAngle() {
			return nil, p.errorf("'>'")
		}
		return nil, nil
	}

	for {
		arg, err := p.parseTypeArgument()
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

	if !p.cur.expectCloseAngle() {
		return nil, p.errorf("'>'")
	}
	return args, nil
}

// parseTypeArgument parses one element of a type-argument list: a bounded
// wildcard (`?`, `? extends T`, `? super T`) or a concrete (possibly
// annotated) type.
func (p *Parser) parseTypeArgument() (*ast.Node, error) {
	if p.at(token.Question) {
		q := p.cur.next()
		n := ast.New(ast.TypeArgument, q.Pos())
		n.Str = token.Question
		n.SetEnd(q.Span.End)
		if p.atKeyword("extends") {
			p.cur.next()
			bound, err := p.parseReferenceType()
			if err != nil {
				return nil, err
			}
			n.Set("extendsBound", bound)
			n.SetEnd(bound.End())
		} else if p.atKeyword("super") {
			p.cur.next()
			bound, err := p.parseReferenceType()
			if err != nil {
				return nil, err
			}
			n.Set("superBound", bound)
			n.SetEnd(bound.End())
		}
		return n, nil
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.TypeArgument, typ.Pos())
	n.Set("type", typ)
	n.SetEnd(typ.End())
	return n, nil
}

// parseTypeParameters parses `< T, U extends V & W, ... >` at a
// declaration site (class, interface, method, constructor).
func (p *Parser) parseTypeParameters() ([]*ast.Node, error) {
	if !p.at(token.Lt) {
		return nil, nil
	}
	p.cur.next()

	var params []*ast.Node
	for {
		param, err := p.parseTypeParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.at(token.Comma) {
			p.cur.next()
			continue
		}
		break
	}
	if !p.cur.expectCloseAngle() {
		return nil, p.errorf("'>'")
	}
	return params, nil
}

func (p *Parser) parseTypeParameter() (*ast.Node, error) {
	var annotations []*ast.Node
	for p.cur.peek().Kind == token.KindAnnotationSigil {
		ann, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, ann)
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.TypeParameter, nameTok.Pos())
	n.Str = nameTok.Text
	n.Annotations = annotations
	n.SetEnd(nameTok.Span.End)

	var bounds []*ast.Node
	if p.atKeyword("extends") {
		p.cur.next()
		for {
			bound, err := p.parseReferenceType()
			if err != nil {
				return nil, err
			}
			bounds = append(bounds, bound)
			n.SetEnd(bound.End())
			if p.at(token.BitAnd) {
				p.cur.next()
				continue
			}
			break
		}
	}
	n.SetList("bounds", bounds)
	return n, nil
}
