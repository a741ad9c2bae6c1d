package parser

import (
	"testing"

	"github.com/evaristocosta/javalang/ast"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("class Foo {}")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(tokens) != 5 { // class, Foo, {, }, EOF
		t.Fatalf("got %d tokens, want 5: %v", len(tokens), tokens)
	}
}

func TestParseExpressionKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.Kind
	}{
		{"42", ast.Literal},
		{"x", ast.Name},
		{"x + y", ast.BinaryOperation},
		{"x * y + z", ast.BinaryOperation},
		{"-x", ast.UnaryOperation},
		{"!x", ast.UnaryOperation},
		{"x++", ast.Increment},
		{"a ? b : c", ast.TernaryExpression},
		{"x = 5", ast.Assignment},
		{"obj.field", ast.MemberReference},
		{"obj.method()", ast.MethodInvocation},
		{"arr[0]", ast.ArraySelector},
		{"new Foo()", ast.InstanceCreation},
		{"new int[10]", ast.ArrayCreation},
		{"x -> x + 1", ast.LambdaExpression},
		{"(a, b) -> a + b", ast.LambdaExpression},
		{"obj::method", ast.MethodReference},
		{"(int) x", ast.Cast},
		{"String.class", ast.ClassReference},
		{"int.class", ast.ClassReference},
		{"void.class", ast.VoidClassReference},
		{"this", ast.This},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := ParseExpression(tt.input)
			if err != nil {
				t.Fatalf("ParseExpression(%q) error: %v", tt.input, err)
			}
			if node.Kind != tt.kind {
				t.Errorf("got %v, want %v", node.Kind, tt.kind)
			}
		})
	}
}

func TestArrayCreationDimensionOrdering(t *testing.T) {
	if _, err := ParseExpression("new int[3][]"); err != nil {
		t.Errorf("ParseExpression(new int[3][]) error: %v", err)
	}
	// Sized dimensions must all precede empty ones.
	if _, err := ParseExpression("new int[][3]"); err == nil {
		t.Errorf("expected an error for a sized dimension after an empty one")
	}
}

func TestParseExpressionRejectsTrailingInput(t *testing.T) {
	if _, err := ParseExpression("x + y extra"); err == nil {
		t.Errorf("expected an error for trailing tokens after the expression")
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.Kind
	}{
		{"int", ast.BasicType},
		{"int[]", ast.BasicType},
		{"String", ast.ReferenceType},
		{"List<String>", ast.ReferenceType},
		{"Map<String, List<Integer>>", ast.ReferenceType},
		{"Outer<T>.Inner<U>", ast.ReferenceType},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := ParseType(tt.input)
			if err != nil {
				t.Fatalf("ParseType(%q) error: %v", tt.input, err)
			}
			if node.Kind != tt.kind {
				t.Errorf("got %v, want %v", node.Kind, tt.kind)
			}
		})
	}
}

func TestParseCompilationUnit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty class", "class Foo {}"},
		{"class with package", "package com.example;\nclass Foo {}"},
		{"class with import", "import java.util.List;\nclass Foo {}"},
		{"class with static wildcard import", "import static java.util.Collections.*;\nclass Foo {}"},
		{"class with field", "class Foo { int x; }"},
		{"class with method", "class Foo { void bar() {} }"},
		{"class with constructor", "class Foo { Foo() {} }"},
		{"public class", "public class Foo {}"},
		{"class extends", "class Foo extends Bar {}"},
		{"class implements", "class Foo implements Bar, Baz {}"},
		{"generic class", "class Foo<T> {}"},
		{"interface", "interface Foo {}"},
		{"interface extends multiple", "interface Foo extends Bar, Baz {}"},
		{"enum", "enum Color { RED, GREEN, BLUE }"},
		{"enum with body", "enum Op { PLUS { int apply(int a, int b) { return a + b; } } }"},
		{"annotation type", "@interface Override {}"},
		{"annotation type with element", "@interface Named { String value(); }"},
		{"annotation type with default", "@interface Named { String value() default \"x\"; }"},
		{"method with params", "class Foo { void bar(int x, String y) {} }"},
		{"method with varargs", "class Foo { void bar(int... xs) {} }"},
		{"method with throws", "class Foo { void bar() throws Exception {} }"},
		{"method with return type", "class Foo { int bar() { return 0; } }"},
		{"abstract method", "abstract class Foo { abstract void bar(); }"},
		{"field with initializer", "class Foo { int x = 5; }"},
		{"static field", "class Foo { static int x; }"},
		{"multiple declarators", "class Foo { int x = 1, y = 2; }"},
		{"annotated class", "@Deprecated public class Foo {}"},
		{"static initializer", "class Foo { static { int x = 1; } }"},
		{"instance initializer", "class Foo { { int x = 1; } }"},
		{"nested class", "class Foo { class Inner {} }"},
		{"empty declaration", "class Foo {} ;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.input, WithFile("test.java"))
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if node.Kind != ast.CompilationUnit {
				t.Errorf("got %v, want CompilationUnit", node.Kind)
			}
		})
	}
}

func TestParseMemberDeclaration(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.Kind
	}{
		{"int x;", ast.FieldDeclaration},
		{"void f() {}", ast.MethodDeclaration},
		{"Foo() {}", ast.ConstructorDeclaration},
		{"class Inner {}", ast.ClassDeclaration},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := ParseMemberDeclaration(tt.input)
			if err != nil {
				t.Fatalf("ParseMemberDeclaration(%q) error: %v", tt.input, err)
			}
			if node.Kind != tt.kind {
				t.Errorf("got %v, want %v", node.Kind, tt.kind)
			}
		})
	}
}

// --- the locally ambiguous constructs ---

func TestAmbiguityCastVsParenthesized(t *testing.T) {
	cast, err := ParseExpression("(int) x")
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	if cast.Kind != ast.Cast {
		t.Errorf("(int) x: got %v, want Cast", cast.Kind)
	}

	paren, err := ParseExpression("(x)")
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	if paren.Kind == ast.Cast {
		t.Errorf("(x): got Cast, want a parenthesized Name")
	}
}

func TestCastFollowSet(t *testing.T) {
	// A plus/minus continuation after (name) is a binary operation, never a
	// reference cast; a primitive cast commits regardless.
	sub, err := ParseExpression("(a) - b")
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	if sub.Kind != ast.BinaryOperation {
		t.Errorf("(a) - b: got %v, want BinaryOperation", sub.Kind)
	}

	inc, err := ParseExpression("(a)++")
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	if inc.Kind != ast.Increment {
		t.Errorf("(a)++: got %v, want Increment", inc.Kind)
	}

	primCast, err := ParseExpression("(int) - b")
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	if primCast.Kind != ast.Cast {
		t.Errorf("(int) - b: got %v, want Cast", primCast.Kind)
	}
}

func TestCastOfLambdaAndMethodReference(t *testing.T) {
	cast, err := ParseExpression("(Runnable) () -> run()")
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	if cast.Kind != ast.Cast {
		t.Fatalf("got %v, want Cast", cast.Kind)
	}
	if op := cast.Child("operand"); op == nil || op.Kind != ast.LambdaExpression {
		t.Errorf("cast operand = %v, want LambdaExpression", op)
	}

	mref, err := ParseExpression("(Runnable) Foo::bar")
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	if op := mref.Child("operand"); op == nil || op.Kind != ast.MethodReference {
		t.Errorf("cast operand = %v, want MethodReference", op)
	}
}

func TestMethodReferenceForms(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"Foo::bar", "bar"},
		{"Foo::new", "new"},
		{"Foo::<T>bar", "bar"},
		{"super::bar", "bar"},
		{"this::bar", "bar"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := ParseExpression(tt.input)
			if err != nil {
				t.Fatalf("ParseExpression(%q) error: %v", tt.input, err)
			}
			if node.Kind != ast.MethodReference {
				t.Fatalf("got %v, want MethodReference", node.Kind)
			}
			if node.Str != tt.name {
				t.Errorf("referenced name = %q, want %q", node.Str, tt.name)
			}
		})
	}
}

func TestWhitespaceAndCommentInvariance(t *testing.T) {
	compact := "package p;class A{int x=1;void f(){if(x>0){x--;}}}"
	spaced := "package p ;\n\n  class A {\n\t/* fields */ int x = 1 ;\n  void f ( ) { if ( x > 0 ) { x -- ; } }\n}\n"

	a, err := Parse(compact)
	if err != nil {
		t.Fatalf("Parse(compact) error: %v", err)
	}
	b, err := Parse(spaced)
	if err != nil {
		t.Fatalf("Parse(spaced) error: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("expected structurally equal ASTs regardless of whitespace and comments")
	}
}

func TestAmbiguityLambdaVsParenthesized(t *testing.T) {
	lambda, err := ParseExpression("(x) -> x")
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	if lambda.Kind != ast.LambdaExpression {
		t.Errorf("(x) -> x: got %v, want LambdaExpression", lambda.Kind)
	}

	paren, err := ParseExpression("(x)")
	if err != nil {
		t.Fatalf("ParseExpression error: %v", err)
	}
	if paren.Kind == ast.LambdaExpression {
		t.Errorf("(x): got LambdaExpression, want a parenthesized Name")
	}
}

func TestAmbiguityCompositeGTSplitting(t *testing.T) {
	// Closing three nested type-argument lists runs into a >>> token that
	// must split into three individual '>' closes.
	node, err := ParseType("Foo<Bar<Baz<Qux>>>")
	if err != nil {
		t.Fatalf("ParseType error: %v", err)
	}
	if node.Kind != ast.ReferenceType || node.Str != "Foo" {
		t.Fatalf("got %v %q, want ReferenceType Foo", node.Kind, node.Str)
	}
}

func TestAmbiguityFreeExpressionRejectsDoubleComparison(t *testing.T) {
	// "a < b , c > ( d )" as a free expression is two comparisons joined by
	// a comma, which Java's expression grammar does not allow.
	if _, err := ParseExpression("a < b , c > ( d )"); err == nil {
		t.Errorf("expected a ParserError for a free double-comparison expression")
	}
}

// --- end-to-end scenarios ---

func TestScenarioEmptyClass(t *testing.T) {
	cu, err := Parse("class A {}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	types := cu.Children("types")
	if len(types) != 1 || types[0].Kind != ast.ClassDeclaration || types[0].Str != "A" {
		t.Fatalf("types = %v, want one ClassDeclaration A", types)
	}
	body := types[0].Child("body")
	if body == nil || len(body.Children("members")) != 0 {
		t.Errorf("expected an empty class body")
	}
}

func TestScenarioPackageImportGenericField(t *testing.T) {
	src := `package p; import java.util.List; class A { List<String> xs; }`
	cu, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	pkg := cu.Child("package")
	if pkg == nil || pkg.Str != "p" {
		t.Fatalf("package = %v, want \"p\"", pkg)
	}

	imports := cu.Children("imports")
	if len(imports) != 1 {
		t.Fatalf("imports = %v, want one entry", imports)
	}
	imp := imports[0]
	if imp.Str != "java.util.List" {
		t.Errorf("import name = %q, want java.util.List", imp.Str)
	}
	if imp.Modifiers.Has(ast.Static) {
		t.Errorf("expected import to not be static")
	}
	if imp.Child("wildcard") != nil {
		t.Errorf("expected import to not be a wildcard")
	}

	class := cu.Children("types")[0]
	body := class.Child("body")
	field := body.Children("members")[0]
	if field.Kind != ast.FieldDeclaration {
		t.Fatalf("got %v, want FieldDeclaration", field.Kind)
	}
	fieldType := field.Child("type")
	if fieldType.Kind != ast.ReferenceType || fieldType.Str != "List" {
		t.Fatalf("field type = %v %q, want ReferenceType List", fieldType.Kind, fieldType.Str)
	}
	typeArgs := fieldType.Children("typeArguments")
	if len(typeArgs) != 1 {
		t.Fatalf("typeArguments = %v, want one entry", typeArgs)
	}
	argType := typeArgs[0].Child("type")
	if argType.Kind != ast.ReferenceType || argType.Str != "String" {
		t.Fatalf("type argument = %v %q, want ReferenceType String", argType.Kind, argType.Str)
	}
	decl := field.Children("declarators")[0]
	if decl.Str != "xs" {
		t.Errorf("declarator name = %q, want xs", decl.Str)
	}
}

func TestScenarioBoundedGenericMethod(t *testing.T) {
	src := `class A { <T extends Comparable<T>> T max(T a, T b) { return a; } }`
	cu, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	method := cu.Children("types")[0].Child("body").Children("members")[0]
	if method.Kind != ast.MethodDeclaration {
		t.Fatalf("got %v, want MethodDeclaration", method.Kind)
	}
	typeParams := method.Children("typeParameters")
	if len(typeParams) != 1 || typeParams[0].Str != "T" {
		t.Fatalf("typeParameters = %v, want one TypeParameter T", typeParams)
	}
	bounds := typeParams[0].Children("bounds")
	if len(bounds) != 1 || bounds[0].Str != "Comparable" {
		t.Fatalf("bounds = %v, want one ReferenceType Comparable", bounds)
	}
	params := method.Children("parameters")
	if len(params) != 2 {
		t.Fatalf("parameters = %v, want two FormalParameters", params)
	}
}

func TestScenarioLambdaFieldInitializer(t *testing.T) {
	member, err := ParseMemberDeclaration(`Runnable r = () -> System.out.println("hi");`)
	if err != nil {
		t.Fatalf("ParseMemberDeclaration error: %v", err)
	}
	if member.Kind != ast.FieldDeclaration {
		t.Fatalf("got %v, want FieldDeclaration", member.Kind)
	}
	decl := member.Children("declarators")[0]
	init := decl.Child("initializer")
	if init == nil || init.Kind != ast.LambdaExpression {
		t.Fatalf("initializer = %v, want LambdaExpression", init)
	}
	if len(init.Children("parameters")) != 0 {
		t.Errorf("expected zero lambda parameters")
	}
	body := init.Child("body")
	if body == nil || body.Kind != ast.MethodInvocation {
		t.Fatalf("lambda body = %v, want MethodInvocation", body)
	}
}

func TestScenarioHexIntegerLiteralVerbatim(t *testing.T) {
	member, err := ParseMemberDeclaration("int x = 0xCAFE_BABE;")
	if err != nil {
		t.Fatalf("ParseMemberDeclaration error: %v", err)
	}
	decl := member.Children("declarators")[0]
	init := decl.Child("initializer")
	if init == nil || init.Kind != ast.Literal {
		t.Fatalf("initializer = %v, want Literal", init)
	}
	if init.Tok == nil || init.Tok.Text != "0xCAFE_BABE" {
		t.Fatalf("literal text = %v, want \"0xCAFE_BABE\" preserved verbatim", init.Tok)
	}
}

func TestScenarioTryWithResourcesMultiCatch(t *testing.T) {
	src := `class A { void f() { try (R r = open()) { } catch (A | B e) { } } }`
	cu, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	method := cu.Children("types")[0].Child("body").Children("members")[0]
	body := method.Child("body")
	tryStmt := body.Children("statements")[0]
	if tryStmt.Kind != ast.TryStatement {
		t.Fatalf("got %v, want TryStatement", tryStmt.Kind)
	}
	resources := tryStmt.Children("resources")
	if len(resources) != 1 || resources[0].Kind != ast.LocalVariableDeclaration {
		t.Fatalf("resources = %v, want one LocalVariableDeclaration", resources)
	}
	catches := tryStmt.Children("catches")
	if len(catches) != 1 {
		t.Fatalf("catches = %v, want one CatchClause", catches)
	}
	types := catches[0].Child("parameter").Children("types")
	if len(types) != 2 || types[0].Str != "A" || types[1].Str != "B" {
		t.Fatalf("catch types = %v, want [A, B]", types)
	}
}
