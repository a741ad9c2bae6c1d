package ast

// Kind tags every AST node variant. Rather than a deep type hierarchy
// (Node -> Declaration -> TypeDeclaration -> ClassDeclaration -> ...), a
// single Node struct carries a Kind plus the attributes relevant to that
// Kind, and category predicates (IsTypeDeclaration, IsStatement,
// IsExpression) stand in for inheritance. Finer distinctions (e.g. a
// dedicated variant per binary operator) are instead carried as an
// operator token on a shared Kind, still uniquely addressable via the
// attribute-iteration protocol in node.go, never via reflection.
type Kind int

const (
	KindInvalid Kind = iota

	// Compilation unit and declarations.
	CompilationUnit
	PackageDeclaration
	Import
	ClassDeclaration
	InterfaceDeclaration
	EnumDeclaration
	AnnotationTypeDeclaration
	FieldDeclaration
	MethodDeclaration
	ConstructorDeclaration
	EnumConstantDeclaration
	AnnotationMethodDeclaration
	FormalParameter
	LocalVariableDeclaration
	VariableDeclarator

	// Types.
	BasicType
	ReferenceType
	TypeArgument
	TypeParameter

	// Statements.
	Block
	IfStatement
	WhileStatement
	DoWhileStatement
	ForStatement
	ForEachStatement
	SwitchStatement
	SwitchCase
	BreakStatement
	ContinueStatement
	ReturnStatement
	ThrowStatement
	TryStatement
	CatchClause
	SynchronizedStatement
	ExpressionStatement
	AssertStatement
	LabeledStatement
	EmptyStatement

	// Expressions.
	Literal
	Name
	MemberReference
	MethodInvocation
	SuperMethodInvocation
	ExplicitConstructorInvocation
	This
	Cast
	BinaryOperation
	Assignment
	TernaryExpression
	InstanceCreation
	InnerClassCreation
	ArrayCreation
	ArrayInitializer
	ArraySelector
	MethodReference
	LambdaExpression
	ClassReference
	VoidClassReference
	Increment
	Decrement
	UnaryOperation

	// Annotations.
	Annotation
	ElementValuePair
	ElementArrayValue
)

var kindNames = map[Kind]string{
	KindInvalid:                   "Invalid",
	CompilationUnit:               "CompilationUnit",
	PackageDeclaration:            "PackageDeclaration",
	Import:                        "Import",
	ClassDeclaration:              "ClassDeclaration",
	InterfaceDeclaration:          "InterfaceDeclaration",
	EnumDeclaration:               "EnumDeclaration",
	AnnotationTypeDeclaration:     "AnnotationTypeDeclaration",
	FieldDeclaration:              "FieldDeclaration",
	MethodDeclaration:             "MethodDeclaration",
	ConstructorDeclaration:        "ConstructorDeclaration",
	EnumConstantDeclaration:       "EnumConstantDeclaration",
	AnnotationMethodDeclaration:   "AnnotationMethodDeclaration",
	FormalParameter:               "FormalParameter",
	LocalVariableDeclaration:      "LocalVariableDeclaration",
	VariableDeclarator:            "VariableDeclarator",
	BasicType:                     "BasicType",
	ReferenceType:                 "ReferenceType",
	TypeArgument:                  "TypeArgument",
	TypeParameter:                 "TypeParameter",
	Block:                         "Block",
	IfStatement:                   "IfStatement",
	WhileStatement:                "WhileStatement",
	DoWhileStatement:              "DoWhileStatement",
	ForStatement:                  "ForStatement",
	ForEachStatement:              "ForEachStatement",
	SwitchStatement:               "SwitchStatement",
	SwitchCase:                    "SwitchCase",
	BreakStatement:                "BreakStatement",
	ContinueStatement:             "ContinueStatement",
	ReturnStatement:               "ReturnStatement",
	ThrowStatement:                "ThrowStatement",
	TryStatement:                  "TryStatement",
	CatchClause:                   "CatchClause",
	SynchronizedStatement:         "SynchronizedStatement",
	ExpressionStatement:           "ExpressionStatement",
	AssertStatement:               "AssertStatement",
	LabeledStatement:              "LabeledStatement",
	EmptyStatement:                "EmptyStatement",
	Literal:                       "Literal",
	Name:                          "Name",
	MemberReference:               "MemberReference",
	MethodInvocation:              "MethodInvocation",
	SuperMethodInvocation:         "SuperMethodInvocation",
	ExplicitConstructorInvocation: "ExplicitConstructorInvocation",
	This:                          "This",
	Cast:                          "Cast",
	BinaryOperation:               "BinaryOperation",
	Assignment:                    "Assignment",
	TernaryExpression:             "TernaryExpression",
	InstanceCreation:              "InstanceCreation",
	InnerClassCreation:            "InnerClassCreation",
	ArrayCreation:                 "ArrayCreation",
	ArrayInitializer:              "ArrayInitializer",
	ArraySelector:                 "ArraySelector",
	MethodReference:               "MethodReference",
	LambdaExpression:              "LambdaExpression",
	ClassReference:                "ClassReference",
	VoidClassReference:            "VoidClassReference",
	Increment:                     "Increment",
	Decrement:                     "Decrement",
	UnaryOperation:                "UnaryOperation",
	Annotation:                    "Annotation",
	ElementValuePair:              "ElementValuePair",
	ElementArrayValue:             "ElementArrayValue",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var typeDeclarationKinds = map[Kind]bool{
	ClassDeclaration: true, InterfaceDeclaration: true,
	EnumDeclaration: true, AnnotationTypeDeclaration: true,
}

// IsTypeDeclaration reports whether k is one of the four type declaration
// variants (class, interface, enum, annotation type).
func (k Kind) IsTypeDeclaration() bool { return typeDeclarationKinds[k] }

var statementKinds = map[Kind]bool{
	Block: true, IfStatement: true, WhileStatement: true, DoWhileStatement: true,
	ForStatement: true, ForEachStatement: true, SwitchStatement: true,
	BreakStatement: true, ContinueStatement: true, ReturnStatement: true,
	ThrowStatement: true, TryStatement: true, SynchronizedStatement: true,
	ExpressionStatement: true, AssertStatement: true, LabeledStatement: true,
	EmptyStatement: true, LocalVariableDeclaration: true,
}

// IsStatement reports whether k is one of the statement variants,
// LocalVariableDeclaration included. A local class declaration inside a
// Block is a ClassDeclaration and is not counted.
func (k Kind) IsStatement() bool { return statementKinds[k] }

var expressionKinds = map[Kind]bool{
	Literal: true, Name: true, MemberReference: true, MethodInvocation: true,
	SuperMethodInvocation: true, ExplicitConstructorInvocation: true, This: true,
	Cast: true, BinaryOperation: true, Assignment: true, TernaryExpression: true,
	InstanceCreation: true, InnerClassCreation: true, ArrayCreation: true,
	ArrayInitializer: true, ArraySelector: true, MethodReference: true,
	LambdaExpression: true, ClassReference: true, VoidClassReference: true,
	Increment: true, Decrement: true, UnaryOperation: true,
}

// IsExpression reports whether k is one of the Expression variants.
func (k Kind) IsExpression() bool { return expressionKinds[k] }
