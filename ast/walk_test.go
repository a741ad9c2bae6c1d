package ast

import (
	"testing"

	"github.com/evaristocosta/javalang/token"
)

func buildSampleTree() *Node {
	pos := token.Position{Line: 1, Column: 1}
	cu := New(CompilationUnit, pos)

	class := New(ClassDeclaration, pos)
	class.Str = "Foo"

	field := New(FieldDeclaration, pos)
	typ := New(ReferenceType, pos)
	typ.Str = "String"
	field.Set("type", typ)

	body := New(Block, pos)
	body.SetList("members", []*Node{field})
	class.Set("body", body)

	cu.SetList("types", []*Node{class})
	return cu
}

func TestWalkPreOrder(t *testing.T) {
	cu := buildSampleTree()

	var visited []Kind
	Walk(cu, func(path []*Node, node *Node) bool {
		visited = append(visited, node.Kind)
		return true
	})

	want := []Kind{CompilationUnit, ClassDeclaration, Block, FieldDeclaration, ReferenceType}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i, k := range want {
		if visited[i] != k {
			t.Errorf("visited[%d] = %v, want %v", i, visited[i], k)
		}
	}
}

func TestWalkStopsEarly(t *testing.T) {
	cu := buildSampleTree()

	var visited []Kind
	Walk(cu, func(path []*Node, node *Node) bool {
		visited = append(visited, node.Kind)
		return node.Kind != ClassDeclaration
	})

	if len(visited) != 2 {
		t.Fatalf("expected walk to stop after ClassDeclaration, visited %v", visited)
	}
}

func TestFilterByKind(t *testing.T) {
	cu := buildSampleTree()
	refs := FilterByKind(cu, ReferenceType)
	if len(refs) != 1 || refs[0].Str != "String" {
		t.Fatalf("FilterByKind(ReferenceType) = %v, want one ReferenceType named String", refs)
	}
}
