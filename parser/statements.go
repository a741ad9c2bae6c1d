package parser

import (
	"github.com/evaristocosta/javalang/ast"
	"github.com/evaristocosta/javalang/token"
)

// parseBlock parses `{ statement* }`.
func (p *Parser) parseBlock() (*ast.Node, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.Block, open.Pos())
	var stmts []*ast.Node
	for !p.at(token.RBrace) {
		s, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	closeBrace, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	n.SetList("statements", stmts)
	n.SetEnd(closeBrace.Span.End)
	return n, nil
}

// parseBlockStatement parses one statement inside a block, including the
// three forms that can only appear there: local variable declarations,
// local class declarations, and ordinary statements.
func (p *Parser) parseBlockStatement() (*ast.Node, error) {
	if p.isLocalClassAhead() {
		return p.parseClassDeclaration(ast.ModifierSet{}, nil)
	}
	if decl, ok, err := p.tryParseLocalVariableDeclaration(); err != nil {
		return nil, err
	} else if ok {
		return decl, nil
	}
	return p.parseStatement()
}

func (p *Parser) isLocalClassAhead() bool {
	return p.atKeyword("class") ||
		(p.atKeyword("final") && p.cur.lookAhead(1).Text == "class") ||
		(p.atKeyword("abstract") && p.cur.lookAhead(1).Text == "class")
}

// tryParseLocalVariableDeclaration speculatively parses
// `[final] [annotations] Type name [= init] (, name [= init])* ;`. On any
// mismatch it resets and reports ok=false so the caller falls through to
// parseStatement (which handles bare expression statements).
func (p *Parser) tryParseLocalVariableDeclaration() (*ast.Node, bool, error) {
	mark := p.cur.mark()

	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		p.cur.reset(mark)
		return nil, false, nil
	}

	start := p.cur.peek()
	if !p.canStartType() {
		p.cur.reset(mark)
		return nil, false, nil
	}

	typ, err := p.parseType()
	if err != nil {
		p.cur.reset(mark)
		return nil, false, nil
	}

	if !p.atIdent() {
		p.cur.reset(mark)
		return nil, false, nil
	}

	decls, err := p.parseVariableDeclarators()
	if err != nil {
		p.cur.reset(mark)
		return nil, false, nil
	}

	if !p.at(token.Semicolon) {
		p.cur.reset(mark)
		return nil, false, nil
	}
	semi := p.cur.next()

	n := ast.New(ast.LocalVariableDeclaration, start.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Set("type", typ)
	n.SetList("declarators", decls)
	n.SetEnd(semi.Span.End)
	return n, true, nil
}

// canStartType reports whether the current token can begin a type: a
// primitive keyword, an identifier, or an annotation sigil (type
// annotation).
func (p *Parser) canStartType() bool {
	cur := p.cur.peek()
	if cur.Kind == token.KindKeyword && basicTypeKeywords[cur.Text] {
		return true
	}
	return cur.Kind == token.KindIdentifier || cur.Kind == token.KindAnnotationSigil
}

// parseVariableDeclarators parses a comma-separated list of
// `name [] = initializer?`. The legacy C-style trailing-bracket form
// (`int a[]`) is recorded on the declarator's Dims field.
func (p *Parser) parseVariableDeclarators() ([]*ast.Node, error) {
	var decls []*ast.Node
	for {
		d, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
		if p.at(token.Comma) {
			p.cur.next()
			continue
		}
		break
	}
	return decls, nil
}

func (p *Parser) parseVariableDeclarator() (*ast.Node, error) {
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.VariableDeclarator, nameTok.Pos())
	n.Str = nameTok.Text
	n.SetEnd(nameTok.Span.End)
	n.Dims = p.parseArrayDims()

	if p.at(token.Assign) {
		p.cur.next()
		var init *ast.Node
		var err error
		if p.at(token.LBrace) {
			init, err = p.parseArrayInitializer()
		} else {
			init, err = p.parseExpression()
		}
		if err != nil {
			return nil, err
		}
		n.Set("initializer", init)
		n.SetEnd(init.End())
	} else {
		n.Set("initializer", nil)
	}
	return n, nil
}

// parseStatement parses one ordinary (non-declaration) statement.
func (p *Parser) parseStatement() (*ast.Node, error) {
	switch {
	case p.at(token.LBrace):
		return p.parseBlock()
	case p.at(token.Semicolon):
		semi := p.cur.next()
		n := ast.New(ast.EmptyStatement, semi.Pos())
		n.SetEnd(semi.Span.End)
		return n, nil
	case p.atKeyword("if"):
		return p.parseIfStatement()
	case p.atKeyword("while"):
		return p.parseWhileStatement()
	case p.atKeyword("do"):
		return p.parseDoWhileStatement()
	case p.atKeyword("for"):
		return p.parseForStatement()
	case p.atKeyword("switch"):
		return p.parseSwitchStatement()
	case p.atKeyword("break"):
		return p.parseBreakStatement()
	case p.atKeyword("continue"):
		return p.parseContinueStatement()
	case p.atKeyword("return"):
		return p.parseReturnStatement()
	case p.atKeyword("throw"):
		return p.parseThrowStatement()
	case p.atKeyword("try"):
		return p.parseTryStatement()
	case p.atKeyword("synchronized"):
		return p.parseSynchronizedStatement()
	case p.atKeyword("assert"):
		return p.parseAssertStatement()
	case p.atIdent() && p.cur.lookAhead(1).Text == token.Colon:
		return p.parseLabeledStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseIfStatement() (*ast.Node, error) {
	ifTok := p.cur.next()
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.IfStatement, ifTok.Pos())
	n.Set("condition", cond)
	n.Set("then", then)
	n.SetEnd(then.End())

	if p.atKeyword("else") {
		p.cur.next()
		els, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		n.Set("else", els)
		n.SetEnd(els.End())
	} else {
		n.Set("else", nil)
	}
	return n, nil
}

func (p *Parser) parseWhileStatement() (*ast.Node, error) {
	whileTok := p.cur.next()
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.WhileStatement, whileTok.Pos())
	n.Set("condition", cond)
	n.Set("body", body)
	n.SetEnd(body.End())
	return n, nil
}

func (p *Parser) parseDoWhileStatement() (*ast.Node, error) {
	doTok := p.cur.next()
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("while"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.DoWhileStatement, doTok.Pos())
	n.Set("body", body)
	n.Set("condition", cond)
	n.SetEnd(semi.Span.End)
	return n, nil
}

// parseForStatement disambiguates the classic three-part for loop from a
// for-each loop with a speculative parse after the opening `(`: a for-each
// header is `[final] [annotations] Type identifier : expression`,
// recognized by parsing a type and identifier and finding a `:` next;
// otherwise the cursor is reset and the classic header is parsed.
func (p *Parser) parseForStatement() (*ast.Node, error) {
	forTok := p.cur.next()
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	if forEach, ok, err := p.tryParseForEachHeader(forTok); err != nil {
		return nil, err
	} else if ok {
		return forEach, nil
	}

	n := ast.New(ast.ForStatement, forTok.Pos())

	var init []*ast.Node
	if !p.at(token.Semicolon) {
		if decl, ok, err := p.tryParseLocalVariableDeclaration(); err != nil {
			return nil, err
		} else if ok {
			init = []*ast.Node{decl}
		} else {
			for {
				e, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				init = append(init, e)
				if p.at(token.Comma) {
					p.cur.next()
					continue
				}
				break
			}
			if _, err := p.expect(token.Semicolon); err != nil {
				return nil, err
			}
		}
	} else {
		p.cur.next()
	}
	n.SetList("init", init)

	var cond *ast.Node
	if !p.at(token.Semicolon) {
		c, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	n.Set("condition", cond)

	var update []*ast.Node
	if !p.at(token.RParen) {
		for {
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			update = append(update, e)
			if p.at(token.Comma) {
				p.cur.next()
				continue
			}
			break
		}
	}
	n.SetList("update", update)
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	n.Set("body", body)
	n.SetEnd(body.End())
	return n, nil
}

func (p *Parser) tryParseForEachHeader(forTok token.Token) (*ast.Node, bool, error) {
	mark := p.cur.mark()

	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		p.cur.reset(mark)
		return nil, false, nil
	}

	if !p.canStartType() {
		p.cur.reset(mark)
		return nil, false, nil
	}
	typ, err := p.parseType()
	if err != nil {
		p.cur.reset(mark)
		return nil, false, nil
	}

	if !p.atIdent() {
		p.cur.reset(mark)
		return nil, false, nil
	}
	nameTok := p.cur.next()

	if !p.at(token.Colon) {
		p.cur.reset(mark)
		return nil, false, nil
	}
	p.cur.next()

	iterable, err := p.parseExpression()
	if err != nil {
		return nil, false, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, false, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, false, err
	}

	param := ast.New(ast.FormalParameter, nameTok.Pos())
	param.Modifiers = mods
	param.Annotations = annotations
	param.Set("type", typ)
	param.Str = nameTok.Text
	param.SetEnd(nameTok.Span.End)

	n := ast.New(ast.ForEachStatement, forTok.Pos())
	n.Set("variable", param)
	n.Set("iterable", iterable)
	n.Set("body", body)
	n.SetEnd(body.End())
	return n, true, nil
}

func (p *Parser) parseSwitchStatement() (*ast.Node, error) {
	switchTok := p.cur.next()
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	selector, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	n := ast.New(ast.SwitchStatement, switchTok.Pos())
	n.Set("selector", selector)

	var cases []*ast.Node
	for !p.at(token.RBrace) {
		c, err := p.parseSwitchCase()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	closeBrace, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	n.SetList("cases", cases)
	n.SetEnd(closeBrace.Span.End)
	return n, nil
}

// parseSwitchCase parses one classic `case expr:` / `default:` label plus
// the run of statements up to the next label (Java 8 fall-through switch,
// not the arrow form introduced later).
func (p *Parser) parseSwitchCase() (*ast.Node, error) {
	start := p.cur.peek()
	var labels []*ast.Node
	isDefault := false

	for {
		if p.atKeyword("case") {
			p.cur.next()
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon); err != nil {
				return nil, err
			}
			labels = append(labels, e)
		} else if p.atKeyword("default") {
			p.cur.next()
			if _, err := p.expect(token.Colon); err != nil {
				return nil, err
			}
			isDefault = true
		} else {
			break
		}
		if !p.atKeyword("case") && !p.atKeyword("default") {
			break
		}
	}

	n := ast.New(ast.SwitchCase, start.Pos())
	n.SetList("labels", labels)
	if isDefault {
		n.Str = "default"
	}

	var stmts []*ast.Node
	for !p.atKeyword("case") && !p.atKeyword("default") && !p.at(token.RBrace) {
		s, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	n.SetList("statements", stmts)
	if len(stmts) > 0 {
		n.SetEnd(stmts[len(stmts)-1].End())
	} else {
		n.SetEnd(p.cur.lastConsumedEnd())
	}
	return n, nil
}

func (p *Parser) parseBreakStatement() (*ast.Node, error) {
	breakTok := p.cur.next()
	n := ast.New(ast.BreakStatement, breakTok.Pos())
	if p.atIdent() {
		labelTok := p.cur.next()
		n.Str = labelTok.Text
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n.SetEnd(semi.Span.End)
	return n, nil
}

func (p *Parser) parseContinueStatement() (*ast.Node, error) {
	continueTok := p.cur.next()
	n := ast.New(ast.ContinueStatement, continueTok.Pos())
	if p.atIdent() {
		labelTok := p.cur.next()
		n.Str = labelTok.Text
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n.SetEnd(semi.Span.End)
	return n, nil
}

func (p *Parser) parseReturnStatement() (*ast.Node, error) {
	returnTok := p.cur.next()
	n := ast.New(ast.ReturnStatement, returnTok.Pos())
	if !p.at(token.Semicolon) {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		n.Set("value", e)
	} else {
		n.Set("value", nil)
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n.SetEnd(semi.Span.End)
	return n, nil
}

func (p *Parser) parseThrowStatement() (*ast.Node, error) {
	throwTok := p.cur.next()
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.ThrowStatement, throwTok.Pos())
	n.Set("value", e)
	n.SetEnd(semi.Span.End)
	return n, nil
}

func (p *Parser) parseSynchronizedStatement() (*ast.Node, error) {
	syncTok := p.cur.next()
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	lock, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.SynchronizedStatement, syncTok.Pos())
	n.Set("lock", lock)
	n.Set("body", body)
	n.SetEnd(body.End())
	return n, nil
}

func (p *Parser) parseAssertStatement() (*ast.Node, error) {
	assertTok := p.cur.next()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.AssertStatement, assertTok.Pos())
	n.Set("condition", cond)
	if p.at(token.Colon) {
		p.cur.next()
		msg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		n.Set("message", msg)
		n.SetEnd(msg.End())
	} else {
		n.Set("message", nil)
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n.SetEnd(semi.Span.End)
	return n, nil
}

func (p *Parser) parseLabeledStatement() (*ast.Node, error) {
	labelTok := p.cur.next()
	p.cur.next() // ':'
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.LabeledStatement, labelTok.Pos())
	n.Str = labelTok.Text
	n.Set("statement", stmt)
	n.SetEnd(stmt.End())
	return n, nil
}

func (p *Parser) parseExpressionStatement() (*ast.Node, error) {
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.ExpressionStatement, e.Pos())
	n.Set("expression", e)
	n.SetEnd(semi.Span.End)
	return n, nil
}

// parseTryStatement parses `try [(resources)] block [catch ...]* [finally
// block]`, including multi-catch (`catch (A | B e)`) and try-with-resources
// (semicolon-separated resource declarations).
func (p *Parser) parseTryStatement() (*ast.Node, error) {
	tryTok := p.cur.next()
	n := ast.New(ast.TryStatement, tryTok.Pos())

	var resources []*ast.Node
	if p.at(token.LParen) {
		p.cur.next()
		for {
			res, err := p.parseResource()
			if err != nil {
				return nil, err
			}
			resources = append(resources, res)
			if p.at(token.Semicolon) {
				p.cur.next()
				if p.at(token.RParen) {
					break
				}
				continue
			}
			break
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
	}
	n.SetList("resources", resources)

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	n.Set("body", body)
	n.SetEnd(body.End())

	var catches []*ast.Node
	for p.atKeyword("catch") {
		c, err := p.parseCatchClause()
		if err != nil {
			return nil, err
		}
		catches = append(catches, c)
		n.SetEnd(c.End())
	}
	n.SetList("catches", catches)

	if p.atKeyword("finally") {
		p.cur.next()
		fin, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		n.Set("finally", fin)
		n.SetEnd(fin.End())
	} else {
		n.Set("finally", nil)
	}
	return n, nil
}

func (p *Parser) parseResource() (*ast.Node, error) {
	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.LocalVariableDeclaration, typ.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Set("type", typ)
	decl := ast.New(ast.VariableDeclarator, nameTok.Pos())
	decl.Str = nameTok.Text
	decl.Set("initializer", init)
	decl.SetEnd(init.End())
	n.SetList("declarators", []*ast.Node{decl})
	n.SetEnd(init.End())
	return n, nil
}

func (p *Parser) parseCatchClause() (*ast.Node, error) {
	catchTok := p.cur.next()
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		return nil, err
	}

	var exceptionTypes []*ast.Node
	first, err := p.parseReferenceType()
	if err != nil {
		return nil, err
	}
	exceptionTypes = append(exceptionTypes, first)
	for p.at(token.BitOr) {
		p.cur.next()
		t, err := p.parseReferenceType()
		if err != nil {
			return nil, err
		}
		exceptionTypes = append(exceptionTypes, t)
	}

	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	param := ast.New(ast.FormalParameter, nameTok.Pos())
	param.Modifiers = mods
	param.Annotations = annotations
	param.SetList("types", exceptionTypes)
	param.Str = nameTok.Text
	param.SetEnd(nameTok.Span.End)

	n := ast.New(ast.CatchClause, catchTok.Pos())
	n.Set("parameter", param)
	n.Set("body", body)
	n.SetEnd(body.End())
	return n, nil
}
