package parser

import (
	"testing"

	"github.com/evaristocosta/javalang/ast"
)

func TestClassDeclarationShape(t *testing.T) {
	cu, err := Parse("public abstract class Foo<T> extends Bar implements Baz, Qux {}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	class := cu.Children("types")[0]
	if class.Kind != ast.ClassDeclaration || class.Str != "Foo" {
		t.Fatalf("got %v %q, want ClassDeclaration Foo", class.Kind, class.Str)
	}
	if !class.Modifiers.Has(ast.Public) || !class.Modifiers.Has(ast.Abstract) {
		t.Errorf("modifiers = %v, want public and abstract", class.Modifiers)
	}
	typeParams := class.Children("typeParameters")
	if len(typeParams) != 1 || typeParams[0].Str != "T" {
		t.Fatalf("typeParameters = %v, want [T]", typeParams)
	}
	ext := class.Child("extends")
	if ext == nil || ext.Str != "Bar" {
		t.Fatalf("extends = %v, want Bar", ext)
	}
	impls := class.Children("implements")
	if len(impls) != 2 || impls[0].Str != "Baz" || impls[1].Str != "Qux" {
		t.Fatalf("implements = %v, want [Baz, Qux]", impls)
	}
}

func TestClassDeclarationWithoutExtends(t *testing.T) {
	cu, err := Parse("class Foo {}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	class := cu.Children("types")[0]
	if class.Child("extends") != nil {
		t.Errorf("expected no extends clause for a class without one")
	}
}

func TestInterfaceExtendsMultiple(t *testing.T) {
	cu, err := Parse("interface Foo extends Bar, Baz {}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	iface := cu.Children("types")[0]
	if iface.Kind != ast.InterfaceDeclaration {
		t.Fatalf("got %v, want InterfaceDeclaration", iface.Kind)
	}
	ext := iface.Children("extends")
	if len(ext) != 2 || ext[0].Str != "Bar" || ext[1].Str != "Baz" {
		t.Fatalf("extends = %v, want [Bar, Baz]", ext)
	}
}

func TestEnumConstantsAndBody(t *testing.T) {
	src := `enum Op {
		PLUS("+") { int apply(int a, int b) { return a + b; } },
		MINUS("-");
		private final String symbol;
		Op(String s) { this.symbol = s; }
	}`
	cu, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	enum := cu.Children("types")[0]
	if enum.Kind != ast.EnumDeclaration {
		t.Fatalf("got %v, want EnumDeclaration", enum.Kind)
	}
	constants := enum.Children("constants")
	if len(constants) != 2 {
		t.Fatalf("constants = %v, want 2 entries", constants)
	}
	plus := constants[0]
	if plus.Str != "PLUS" {
		t.Fatalf("constants[0].Str = %q, want PLUS", plus.Str)
	}
	if args := plus.Children("arguments"); len(args) != 1 {
		t.Fatalf("PLUS arguments = %v, want one literal", args)
	}
	if plus.Child("body") == nil {
		t.Errorf("expected PLUS to have a constant body overriding apply")
	}
	minus := constants[1]
	if minus.Child("body") != nil {
		t.Errorf("expected MINUS to have no constant body")
	}

	members := enum.Children("body")
	if len(members) != 2 {
		t.Fatalf("enum body members = %v, want a field and a constructor", members)
	}
	if members[0].Kind != ast.FieldDeclaration {
		t.Errorf("members[0] = %v, want FieldDeclaration", members[0].Kind)
	}
	if members[1].Kind != ast.ConstructorDeclaration {
		t.Errorf("members[1] = %v, want ConstructorDeclaration", members[1].Kind)
	}
}

func TestAnnotationTypeElementsAndDefault(t *testing.T) {
	src := `@interface Named {
		String value();
		int priority() default 0;
	}`
	cu, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	at := cu.Children("types")[0]
	if at.Kind != ast.AnnotationTypeDeclaration {
		t.Fatalf("got %v, want AnnotationTypeDeclaration", at.Kind)
	}
	members := at.Children("body")
	if len(members) != 2 {
		t.Fatalf("members = %v, want 2 elements", members)
	}
	value := members[0]
	if value.Kind != ast.AnnotationMethodDeclaration || value.Str != "value" {
		t.Fatalf("members[0] = %v %q, want AnnotationMethodDeclaration value", value.Kind, value.Str)
	}
	if value.Child("default") != nil {
		t.Errorf("expected value() to have no default")
	}
	priority := members[1]
	def := priority.Child("default")
	if def == nil || def.Kind != ast.Literal {
		t.Fatalf("priority() default = %v, want a Literal", def)
	}
}

func TestConstructorDeclaration(t *testing.T) {
	member, err := ParseMemberDeclaration("Foo(int x) { this.x = x; }")
	if err != nil {
		t.Fatalf("ParseMemberDeclaration error: %v", err)
	}
	if member.Kind != ast.ConstructorDeclaration || member.Str != "Foo" {
		t.Fatalf("got %v %q, want ConstructorDeclaration Foo", member.Kind, member.Str)
	}
	params := member.Children("parameters")
	if len(params) != 1 || params[0].Str != "x" {
		t.Fatalf("parameters = %v, want [x]", params)
	}
	body := member.Child("body")
	if body == nil || len(body.Children("statements")) != 1 {
		t.Fatalf("body = %v, want one statement", body)
	}
}

func TestMethodWithVarargsAndThrows(t *testing.T) {
	member, err := ParseMemberDeclaration("void bar(int first, String... rest) throws java.io.IOException {}")
	if err != nil {
		t.Fatalf("ParseMemberDeclaration error: %v", err)
	}
	if member.Kind != ast.MethodDeclaration {
		t.Fatalf("got %v, want MethodDeclaration", member.Kind)
	}
	params := member.Children("parameters")
	if len(params) != 2 {
		t.Fatalf("parameters = %v, want 2", params)
	}
	if params[0].Child("varargs") != nil {
		t.Errorf("expected first parameter to not be varargs")
	}
	if params[1].Child("varargs") == nil {
		t.Errorf("expected second parameter to be varargs")
	}
	throws := member.Children("throws")
	// A qualified type is its innermost segment, chained outward through
	// "qualifier": IOException -> io -> java.
	if len(throws) != 1 || throws[0].Str != "IOException" {
		t.Fatalf("throws = %v, want [java.io.IOException]", throws)
	}
	io := throws[0].Child("qualifier")
	if io == nil || io.Str != "io" || io.Child("qualifier") == nil || io.Child("qualifier").Str != "java" {
		t.Fatalf("throws[0] qualifier chain = %v, want io -> java", io)
	}
}

func TestAbstractMethodHasNoBody(t *testing.T) {
	member, err := ParseMemberDeclaration("abstract void bar();")
	if err != nil {
		t.Fatalf("ParseMemberDeclaration error: %v", err)
	}
	if member.Kind != ast.MethodDeclaration {
		t.Fatalf("got %v, want MethodDeclaration", member.Kind)
	}
	if !member.Modifiers.Has(ast.Abstract) {
		t.Errorf("expected abstract modifier")
	}
	if member.Child("body") != nil {
		t.Errorf("expected an abstract method to have no body")
	}
}

func TestFieldMultipleDeclarators(t *testing.T) {
	member, err := ParseMemberDeclaration("int x = 1, y, z = 3;")
	if err != nil {
		t.Fatalf("ParseMemberDeclaration error: %v", err)
	}
	decls := member.Children("declarators")
	if len(decls) != 3 {
		t.Fatalf("declarators = %v, want 3", decls)
	}
	if decls[0].Child("initializer") == nil {
		t.Errorf("expected x to have an initializer")
	}
	if decls[1].Child("initializer") != nil {
		t.Errorf("expected y to have no initializer")
	}
	if decls[2].Child("initializer") == nil {
		t.Errorf("expected z to have an initializer")
	}
}

func TestNestedClassDeclaration(t *testing.T) {
	cu, err := Parse("class Outer { static class Inner {} }")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	outer := cu.Children("types")[0]
	members := outer.Child("body").Children("members")
	if len(members) != 1 {
		t.Fatalf("members = %v, want one nested class", members)
	}
	inner := members[0]
	if inner.Kind != ast.ClassDeclaration || inner.Str != "Inner" {
		t.Fatalf("got %v %q, want ClassDeclaration Inner", inner.Kind, inner.Str)
	}
	if !inner.Modifiers.Has(ast.Static) {
		t.Errorf("expected Inner to be static")
	}
}

func TestStaticAndInstanceInitializers(t *testing.T) {
	cu, err := Parse("class Foo { static { int x = 1; } { int y = 2; } }")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	members := cu.Children("types")[0].Child("body").Children("members")
	if len(members) != 2 {
		t.Fatalf("members = %v, want 2 initializer blocks", members)
	}
	if members[0].Kind != ast.Block || !members[0].Modifiers.Has(ast.Static) {
		t.Errorf("members[0] = %v (static=%v), want a static Block", members[0].Kind, members[0].Modifiers)
	}
	if members[1].Kind != ast.Block || members[1].Modifiers.Has(ast.Static) {
		t.Errorf("members[1] = %v (static=%v), want a non-static Block", members[1].Kind, members[1].Modifiers)
	}
}

func TestAnnotatedClassDeclaration(t *testing.T) {
	cu, err := Parse("@Deprecated public class Foo {}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	class := cu.Children("types")[0]
	if len(class.Annotations) != 1 || class.Annotations[0].Str != "Deprecated" {
		t.Fatalf("annotations = %v, want [Deprecated]", class.Annotations)
	}
	if !class.Modifiers.Has(ast.Public) {
		t.Errorf("expected public modifier")
	}
}

func TestArrayFieldLegacyBracketsOnName(t *testing.T) {
	member, err := ParseMemberDeclaration("int x[];")
	if err != nil {
		t.Fatalf("ParseMemberDeclaration error: %v", err)
	}
	decl := member.Children("declarators")[0]
	if decl.Dims != 1 {
		t.Fatalf("Dims = %d, want 1 for legacy array declarator brackets", decl.Dims)
	}
}
