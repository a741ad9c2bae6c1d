package parser

import (
	"github.com/evaristocosta/javalang/ast"
	"github.com/evaristocosta/javalang/token"
)

// parseCompilationUnit parses `[package decl] import* typeDeclaration*`.
// Stray top-level semicolons (empty declarations, a legal no-op in the
// grammar) are skipped between type declarations.
func (p *Parser) parseCompilationUnit() (*ast.Node, error) {
	start := p.cur.peek()
	n := ast.New(ast.CompilationUnit, start.Pos())

	if pkg, ok, err := p.tryParsePackageDeclaration(); err != nil {
		return nil, err
	} else if ok {
		n.Set("package", pkg)
		n.SetEnd(pkg.End())
	} else {
		n.Set("package", nil)
	}

	var imports []*ast.Node
	for p.atKeyword("import") {
		imp, err := p.parseImportDeclaration()
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
		n.SetEnd(imp.End())
	}
	n.SetList("imports", imports)

	var types []*ast.Node
	for p.cur.peek().Kind != token.KindEndOfInput {
		if p.at(token.Semicolon) {
			p.cur.next()
			continue
		}
		td, err := p.parseTypeDeclaration()
		if err != nil {
			return nil, err
		}
		types = append(types, td)
		n.SetEnd(td.End())
	}
	n.SetList("types", types)
	return n, nil
}

// tryParsePackageDeclaration speculatively parses `[annotations] package
// qualifiedName ;`, needed because a run of leading annotations can belong
// either to a package declaration or to the first type declaration.
func (p *Parser) tryParsePackageDeclaration() (*ast.Node, bool, error) {
	mark := p.cur.mark()
	var annotations []*ast.Node
	for p.cur.peek().Kind == token.KindAnnotationSigil {
		ann, err := p.parseAnnotation()
		if err != nil {
			p.cur.reset(mark)
			return nil, false, nil
		}
		annotations = append(annotations, ann)
	}
	if !p.atKeyword("package") {
		p.cur.reset(mark)
		return nil, false, nil
	}
	pkgTok := p.cur.next()
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, false, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, false, err
	}
	n := ast.New(ast.PackageDeclaration, pkgTok.Pos())
	n.Str = name
	n.Annotations = annotations
	n.SetEnd(semi.Span.End)
	return n, true, nil
}

// parseImportDeclaration parses `import [static] qualifiedName [. *] ;`.
// The wildcard flag is carried as the presence of a "wildcard" child
// attribute, distinct from the dotted name.
func (p *Parser) parseImportDeclaration() (*ast.Node, error) {
	importTok := p.cur.next()
	n := ast.New(ast.Import, importTok.Pos())

	if p.atKeyword("static") {
		p.cur.next()
		n.Modifiers.Add(ast.Static)
	}

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	n.Str = name

	if p.at(token.Dot) && p.cur.lookAhead(1).Text == token.Star {
		p.cur.next()
		starTok := p.cur.next()
		marker := ast.New(ast.Name, starTok.Pos())
		marker.Str = token.Star
		n.Set("wildcard", marker)
	} else {
		n.Set("wildcard", nil)
	}

	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n.SetEnd(semi.Span.End)
	return n, nil
}

// parseTypeDeclaration parses one top-level or nested type declaration:
// class, interface, enum, or annotation type, with its leading modifiers
// and annotations.
func (p *Parser) parseTypeDeclaration() (*ast.Node, error) {
	javadoc := p.pendingJavadoc()
	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		return nil, err
	}
	n, err := p.parseTypeDeclarationBody(mods, annotations)
	if err != nil {
		return nil, err
	}
	n.Javadoc = javadoc
	return n, nil
}

func (p *Parser) parseTypeDeclarationBody(mods ast.ModifierSet, annotations []*ast.Node) (*ast.Node, error) {
	switch {
	case p.atKeyword("class"):
		return p.parseClassDeclaration(mods, annotations)
	case p.atKeyword("interface"):
		return p.parseInterfaceDeclaration(mods, annotations)
	case p.atKeyword("enum"):
		return p.parseEnumDeclaration(mods, annotations)
	case p.isAnnotationTypeDeclAhead():
		return p.parseAnnotationTypeDeclaration(mods, annotations)
	default:
		return nil, p.errorf("a type declaration (class, interface, enum, or @interface)")
	}
}

// pendingJavadoc queries the cursor for a Javadoc comment attached to the
// current token, to be called before any token of a declaration
// (including its modifiers) is consumed.
func (p *Parser) pendingJavadoc() *token.Position {
	if pos, ok := p.cur.prePosition(); ok {
		pos := pos
		return &pos
	}
	return nil
}

// parseClassDeclaration parses `class Name [<T,...>] [extends T] [implements
// T,...] classBody`.
func (p *Parser) parseClassDeclaration(mods ast.ModifierSet, annotations []*ast.Node) (*ast.Node, error) {
	classTok := p.cur.next()
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.ClassDeclaration, classTok.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Str = nameTok.Text

	typeParams, err := p.parseTypeParameters()
	if err != nil {
		return nil, err
	}
	n.SetList("typeParameters", typeParams)

	if p.atKeyword("extends") {
		p.cur.next()
		sup, err := p.parseReferenceType()
		if err != nil {
			return nil, err
		}
		n.Set("extends", sup)
	} else {
		n.Set("extends", nil)
	}

	ifaces, err := p.parseOptionalImplementsClause()
	if err != nil {
		return nil, err
	}
	n.SetList("implements", ifaces)

	body, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	n.Set("body", body)
	n.SetEnd(body.End())
	return n, nil
}

// parseInterfaceDeclaration parses `interface Name [<T,...>] [extends
// T,...] classBody`. An interface can extend multiple other interfaces.
func (p *Parser) parseInterfaceDeclaration(mods ast.ModifierSet, annotations []*ast.Node) (*ast.Node, error) {
	ifaceTok := p.cur.next()
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.InterfaceDeclaration, ifaceTok.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Str = nameTok.Text

	typeParams, err := p.parseTypeParameters()
	if err != nil {
		return nil, err
	}
	n.SetList("typeParameters", typeParams)

	var extends []*ast.Node
	if p.atKeyword("extends") {
		p.cur.next()
		for {
			t, err := p.parseReferenceType()
			if err != nil {
				return nil, err
			}
			extends = append(extends, t)
			if p.at(token.Comma) {
				p.cur.next()
				continue
			}
			break
		}
	}
	n.SetList("extends", extends)

	body, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	n.Set("body", body)
	n.SetEnd(body.End())
	return n, nil
}

// parseOptionalImplementsClause parses `implements T, U, ...` if present.
func (p *Parser) parseOptionalImplementsClause() ([]*ast.Node, error) {
	if !p.atKeyword("implements") {
		return nil, nil
	}
	p.cur.next()
	var out []*ast.Node
	for {
		t, err := p.parseReferenceType()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		if p.at(token.Comma) {
			p.cur.next()
			continue
		}
		break
	}
	return out, nil
}

// parseEnumDeclaration parses `enum Name [implements T,...] { constants*
// [; member*] }`.
func (p *Parser) parseEnumDeclaration(mods ast.ModifierSet, annotations []*ast.Node) (*ast.Node, error) {
	enumTok := p.cur.next()
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.EnumDeclaration, enumTok.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Str = nameTok.Text

	ifaces, err := p.parseOptionalImplementsClause()
	if err != nil {
		return nil, err
	}
	n.SetList("implements", ifaces)

	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}

	var constants []*ast.Node
	for p.atIdent() || p.cur.peek().Kind == token.KindAnnotationSigil {
		c, err := p.parseEnumConstant()
		if err != nil {
			return nil, err
		}
		constants = append(constants, c)
		if p.at(token.Comma) {
			p.cur.next()
			continue
		}
		break
	}
	n.SetList("constants", constants)

	var members []*ast.Node
	if p.at(token.Semicolon) {
		p.cur.next()
		for !p.at(token.RBrace) {
			m, err := p.parseClassBodyDeclaration()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
	}
	n.SetList("body", members)

	closeBrace, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	_ = open
	n.SetEnd(closeBrace.Span.End)
	return n, nil
}

// parseEnumConstant parses `[annotations] Name [(args)] [classBody]`.
func (p *Parser) parseEnumConstant() (*ast.Node, error) {
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
	n := ast.New(ast.EnumConstantDeclaration, nameTok.Pos())
	n.Annotations = annotations
	n.Str = nameTok.Text
	n.SetEnd(nameTok.Span.End)

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
		n.SetList("arguments", args)
		n.SetEnd(closeParen.Span.End)
	} else {
		n.SetList("arguments", nil)
	}

	if p.at(token.LBrace) {
		body, err := p.parseClassBody()
		if err != nil {
			return nil, err
		}
		n.Set("body", body)
		n.SetEnd(body.End())
	} else {
		n.Set("body", nil)
	}
	return n, nil
}

// parseAnnotationTypeDeclaration parses `@interface Name { element* }`.
func (p *Parser) parseAnnotationTypeDeclaration(mods ast.ModifierSet, annotations []*ast.Node) (*ast.Node, error) {
	at := p.cur.next() // '@'
	p.cur.next()        // 'interface'
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.AnnotationTypeDeclaration, at.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Str = nameTok.Text

	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	_ = open
	var members []*ast.Node
	for !p.at(token.RBrace) {
		m, err := p.parseAnnotationTypeBodyDeclaration()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	n.SetList("body", members)

	closeBrace, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	n.SetEnd(closeBrace.Span.End)
	return n, nil
}

// parseAnnotationTypeBodyDeclaration parses one member of an annotation
// type: an annotation method (`Type name() [default value] ;`), a constant
// field declaration, or a nested type declaration.
func (p *Parser) parseAnnotationTypeBodyDeclaration() (*ast.Node, error) {
	if p.at(token.Semicolon) {
		semi := p.cur.next()
		n := ast.New(ast.EmptyStatement, semi.Pos())
		n.SetEnd(semi.Span.End)
		return n, nil
	}

	javadoc := p.pendingJavadoc()
	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		return nil, err
	}

	if p.atKeyword("class") || p.atKeyword("interface") || p.atKeyword("enum") || p.isAnnotationTypeDeclAhead() {
		n, err := p.parseTypeDeclarationBody(mods, annotations)
		if err != nil {
			return nil, err
		}
		n.Javadoc = javadoc
		return n, nil
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if p.at(token.LParen) {
		n, err := p.parseAnnotationMethod(mods, annotations, typ, nameTok)
		if err != nil {
			return nil, err
		}
		n.Javadoc = javadoc
		return n, nil
	}

	n := ast.New(ast.FieldDeclaration, typ.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Javadoc = javadoc
	n.Set("type", typ)

	decl := ast.New(ast.VariableDeclarator, nameTok.Pos())
	decl.Str = nameTok.Text
	decl.Dims = p.parseArrayDims()
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
		decl.Set("initializer", init)
		decl.SetEnd(init.End())
	} else {
		decl.Set("initializer", nil)
		decl.SetEnd(nameTok.Span.End)
	}
	decls := []*ast.Node{decl}
	for p.at(token.Comma) {
		p.cur.next()
		more, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		decls = append(decls, more)
	}
	n.SetList("declarators", decls)

	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n.SetEnd(semi.Span.End)
	return n, nil
}

// parseAnnotationMethod parses the tail of `Type name(` ... `) [default
// value] ;`. An annotation method declaration never takes parameters, but
// the empty parameter list is still consumed.
func (p *Parser) parseAnnotationMethod(mods ast.ModifierSet, annotations []*ast.Node, returnType *ast.Node, nameTok token.Token) (*ast.Node, error) {
	p.cur.next() // '('
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	n := ast.New(ast.AnnotationMethodDeclaration, returnType.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Str = nameTok.Text
	n.Set("type", returnType)
	n.Dims = p.parseArrayDims()

	if p.atKeyword("default") {
		p.cur.next()
		dv, err := p.parseElementValue()
		if err != nil {
			return nil, err
		}
		n.Set("default", dv)
	} else {
		n.Set("default", nil)
	}

	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n.SetEnd(semi.Span.End)
	return n, nil
}

// parseClassBody parses `{ member* }` for a class, interface, enum, or
// anonymous class body, returning a Block node whose "members" list holds
// the declarations in source order.
func (p *Parser) parseClassBody() (*ast.Node, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.Block, open.Pos())
	var members []*ast.Node
	for !p.at(token.RBrace) {
		m, err := p.parseClassBodyDeclaration()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	closeBrace, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	n.SetList("members", members)
	n.SetEnd(closeBrace.Span.End)
	return n, nil
}

// parseClassBodyDeclaration parses one member of a class/interface/enum/
// anonymous-class body: an initializer block, a nested type declaration, a
// constructor, a method, or a field: the shared grammar
// ParseMemberDeclaration exposes directly.
func (p *Parser) parseClassBodyDeclaration() (*ast.Node, error) {
	if p.at(token.Semicolon) {
		semi := p.cur.next()
		n := ast.New(ast.EmptyStatement, semi.Pos())
		n.SetEnd(semi.Span.End)
		return n, nil
	}

	javadoc := p.pendingJavadoc()
	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		return nil, err
	}

	if p.at(token.LBrace) {
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		block.Modifiers = mods
		block.Javadoc = javadoc
		return block, nil
	}

	if p.atKeyword("class") || p.atKeyword("interface") || p.atKeyword("enum") || p.isAnnotationTypeDeclAhead() {
		n, err := p.parseTypeDeclarationBody(mods, annotations)
		if err != nil {
			return nil, err
		}
		n.Javadoc = javadoc
		return n, nil
	}

	var typeParams []*ast.Node
	if p.at(token.Lt) {
		typeParams, err = p.parseTypeParameters()
		if err != nil {
			return nil, err
		}
	}

	if p.atIdent() && p.cur.lookAhead(1).Text == token.LParen {
		n, err := p.parseConstructorDeclaration(mods, annotations, typeParams)
		if err != nil {
			return nil, err
		}
		n.Javadoc = javadoc
		return n, nil
	}

	returnType, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	if p.at(token.LParen) {
		n, err := p.parseMethodDeclaration(mods, annotations, typeParams, returnType, nameTok)
		if err != nil {
			return nil, err
		}
		n.Javadoc = javadoc
		return n, nil
	}

	n, err := p.parseFieldDeclarationTail(mods, annotations, returnType, nameTok)
	if err != nil {
		return nil, err
	}
	n.Javadoc = javadoc
	return n, nil
}

// parseReturnType parses a method's return type, including `void`, which
// is not a BasicType (it is valid only here) and is recorded as a nil
// "returnType" child, the same nil-means-absent convention used for
// VariableDeclarator.initializer.
func (p *Parser) parseReturnType() (*ast.Node, error) {
	if p.atKeyword("void") {
		p.cur.next()
		return nil, nil
	}
	return p.parseType()
}

// parseConstructorDeclaration parses `Name(params) [throws T,...] block`.
// The constructor body is an ordinary block: an explicit `this(...)` or
// `super(...)` first statement parses as an ExplicitConstructorInvocation
// expression statement through the regular statement grammar.
func (p *Parser) parseConstructorDeclaration(mods ast.ModifierSet, annotations []*ast.Node, typeParams []*ast.Node) (*ast.Node, error) {
	nameTok := p.cur.next()
	n := ast.New(ast.ConstructorDeclaration, nameTok.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Str = nameTok.Text
	n.SetList("typeParameters", typeParams)

	params, err := p.parseFormalParameterList()
	if err != nil {
		return nil, err
	}
	n.SetList("parameters", params)

	throws, err := p.parseOptionalThrowsClause()
	if err != nil {
		return nil, err
	}
	n.SetList("throws", throws)

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	n.Set("body", body)
	n.SetEnd(body.End())
	return n, nil
}

// parseMethodDeclaration parses the tail of a method declaration, starting
// after its name has already been consumed: `(params) []* [throws T,...]
// (block | ;)`.
func (p *Parser) parseMethodDeclaration(mods ast.ModifierSet, annotations []*ast.Node, typeParams []*ast.Node, returnType *ast.Node, nameTok token.Token) (*ast.Node, error) {
	n := ast.New(ast.MethodDeclaration, nameTok.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Str = nameTok.Text
	n.SetList("typeParameters", typeParams)
	n.Set("returnType", returnType)

	params, err := p.parseFormalParameterList()
	if err != nil {
		return nil, err
	}
	n.SetList("parameters", params)

	// Legacy C-style trailing dims on the declaration itself, e.g.
	// `int[] f()[] { ... }` (exceedingly rare, but grammatically legal).
	n.Dims = p.parseArrayDims()

	throws, err := p.parseOptionalThrowsClause()
	if err != nil {
		return nil, err
	}
	n.SetList("throws", throws)

	if p.at(token.LBrace) {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		n.Set("body", body)
		n.SetEnd(body.End())
		return n, nil
	}

	n.Set("body", nil)
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n.SetEnd(semi.Span.End)
	return n, nil
}

// parseFieldDeclarationTail parses the tail of a field declaration after
// its type and first declarator name have already been consumed.
func (p *Parser) parseFieldDeclarationTail(mods ast.ModifierSet, annotations []*ast.Node, typ *ast.Node, nameTok token.Token) (*ast.Node, error) {
	n := ast.New(ast.FieldDeclaration, typ.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Set("type", typ)

	first := ast.New(ast.VariableDeclarator, nameTok.Pos())
	first.Str = nameTok.Text
	first.SetEnd(nameTok.Span.End)
	first.Dims = p.parseArrayDims()
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
		first.Set("initializer", init)
		first.SetEnd(init.End())
	} else {
		first.Set("initializer", nil)
	}

	decls := []*ast.Node{first}
	for p.at(token.Comma) {
		p.cur.next()
		more, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		decls = append(decls, more)
	}
	n.SetList("declarators", decls)

	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	n.SetEnd(semi.Span.End)
	return n, nil
}

// parseOptionalThrowsClause parses `throws T, U, ...` if present.
func (p *Parser) parseOptionalThrowsClause() ([]*ast.Node, error) {
	if !p.atKeyword("throws") {
		return nil, nil
	}
	p.cur.next()
	var out []*ast.Node
	for {
		t, err := p.parseReferenceType()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		if p.at(token.Comma) {
			p.cur.next()
			continue
		}
		break
	}
	return out, nil
}

// parseFormalParameterList parses `( [param (, param)*] )`, including
// varargs on the final parameter.
func (p *Parser) parseFormalParameterList() ([]*ast.Node, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var params []*ast.Node
	if !p.at(token.RParen) {
		for {
			param, err := p.parseFormalParameter()
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
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

// parseFormalParameter parses `[modifiers] Type [...] name []*`. Varargs is
// recorded as the presence of a "varargs" child attribute, the same
// presence-as-attribute idiom used for Import.wildcard.
func (p *Parser) parseFormalParameter() (*ast.Node, error) {
	mods, annotations, err := p.parseModifiersAndAnnotations()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.FormalParameter, typ.Pos())
	n.Modifiers = mods
	n.Annotations = annotations
	n.Set("type", typ)

	if p.at(token.Ellipsis) {
		ellipsis := p.cur.next()
		marker := ast.New(ast.Name, ellipsis.Pos())
		marker.Str = token.Ellipsis
		n.Set("varargs", marker)
	} else {
		n.Set("varargs", nil)
	}

	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	n.Str = nameTok.Text
	n.Dims = p.parseArrayDims()
	n.SetEnd(p.cur.lastConsumedEnd())
	return n, nil
}
