package parser

import (
	"github.com/evaristocosta/javalang/ast"
	"github.com/evaristocosta/javalang/token"
)

var modifierKeywords = map[string]ast.Modifier{
	"public": ast.Public, "protected": ast.Protected, "private": ast.Private,
	"static": ast.Static, "final": ast.Final, "abstract": ast.Abstract,
	"native": ast.Native, "synchronized": ast.SynchronizedM,
	"transient": ast.Transient, "volatile": ast.Volatile,
	"strictfp": ast.Strictfp, "default": ast.Default,
}

// parseModifiersAndAnnotations consumes the freely interleaved run of
// modifier keywords and annotations that precedes a declaration, a formal
// parameter, or a local variable declaration: the same prefix grammar,
// reused everywhere a declaration can start. Type parameters take
// annotations only and parse them in parseTypeParameter.
func (p *Parser) parseModifiersAndAnnotations() (ast.ModifierSet, []*ast.Node, error) {
	var mods ast.ModifierSet
	var annotations []*ast.Node

	for {
		cur := p.cur.peek()
		if cur.Kind == token.KindKeyword {
			if m, ok := modifierKeywords[cur.Text]; ok {
				p.cur.next()
				mods.Add(m)
				continue
			}
		}
		if cur.Kind == token.KindAnnotationSigil && !p.isAnnotationTypeDeclAhead() {
			ann, err := p.parseAnnotation()
			if err != nil {
				return mods, nil, err
			}
			annotations = append(annotations, ann)
			continue
		}
		break
	}

	return mods, annotations, nil
}

// isAnnotationTypeDeclAhead reports whether the cursor is at `@interface`,
// which starts an annotation TYPE declaration rather than an annotation
// usage, the one case parseModifiersAndAnnotations must not swallow.
func (p *Parser) isAnnotationTypeDeclAhead() bool {
	return p.cur.peek().Kind == token.KindAnnotationSigil && p.cur.lookAhead(1).Text == "interface"
}

// parseAnnotation parses `@Name`, `@Name(value)`, or
// `@Name(k1 = v1, k2 = v2, ...)`.
func (p *Parser) parseAnnotation() (*ast.Node, error) {
	at, err := p.expect(token.At)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.Annotation, at.Pos())

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	n.Str = name

	var pairs []*ast.Node
	if p.at(token.LParen) {
		p.cur.next()
		if !p.at(token.RParen) {
			for {
				pair, err := p.parseElementValuePairOrSingle()
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, pair)
				if p.at(token.Comma) {
					p.cur.next()
					continue
				}
				break
			}
		}
		closeParen, err := p.expect(token.RParen)
		if err != nil {
			return nil, err
		}
		n.SetEnd(closeParen.Span.End)
	} else {
		n.SetEnd(p.cur.peek().Pos())
	}
	n.SetList("values", pairs)
	return n, nil
}

// parseElementValuePairOrSingle disambiguates `name = value` from a single
// bare value (`@SuppressWarnings("x")`) with one token of lookahead: an
// identifier directly followed by `=` starts a pair.
func (p *Parser) parseElementValuePairOrSingle() (*ast.Node, error) {
	if p.atIdent() && p.cur.lookAhead(1).Text == token.Assign {
		nameTok, _ := p.expectIdent()
		p.cur.next() // '='
		value, err := p.parseElementValue()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.ElementValuePair, nameTok.Pos())
		n.Str = nameTok.Text
		n.Set("value", value)
		n.SetEnd(value.End())
		return n, nil
	}
	return p.parseElementValue()
}

// parseElementValue parses an annotation element value: a nested
// annotation, an array initializer `{ ... }`, or a conditional expression.
func (p *Parser) parseElementValue() (*ast.Node, error) {
	if p.cur.peek().Kind == token.KindAnnotationSigil {
		return p.parseAnnotation()
	}
	if p.at(token.LBrace) {
		return p.parseElementArrayValue()
	}
	return p.parseTernaryExpr()
}

func (p *Parser) parseElementArrayValue() (*ast.Node, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.ElementArrayValue, open.Pos())
	var values []*ast.Node
	for !p.at(token.RBrace) {
		v, err := p.parseElementValue()
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

// parseQualifiedName parses a dotted identifier chain (package names,
// import targets, annotation names) and returns its dotted text.
func (p *Parser) parseQualifiedName() (string, error) {
	first, err := p.expectIdent()
	if err != nil {
		return "", err
	}
	name := first.Text
	for p.at(token.Dot) && p.cur.lookAhead(1).Kind == token.KindIdentifier {
		p.cur.next()
		part, _ := p.expectIdent()
		name += "." + part.Text
	}
	return name, nil
}
