package ast

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Doc describes a node kind for tooling and error messages.
type Doc struct {
	Kind        string
	Description string
	// Props maps each field to its meaning.
	Props map[string]string
}

var docs = map[string]Doc{
	"KeyValue": {
		Kind:        "KeyValue",
		Description: "A key: value pair in an object literal",
		Props: map[string]string{
			"Key":   "a bare string or number, or a computed key",
			"Value": "the property value expression",
			"Quote": "the quote character used for a bare key in the source, if any",
		},
	},
	"Getter": {
		Kind:        "Getter",
		Description: "An object or class property getter",
		Props: map[string]string{
			"Key":    "a method symbol, or a computed key",
			"Value":  "the accessor function, taking no parameters",
			"Quote":  "the quote character used for the key in the source, if any",
			"Static": "whether this is a static class member",
		},
	},
	"Setter": {
		Kind:        "Setter",
		Description: "An object or class property setter",
		Props: map[string]string{
			"Key":    "a method symbol, or a computed key",
			"Value":  "the accessor function, taking one parameter",
			"Quote":  "the quote character used for the key in the source, if any",
			"Static": "whether this is a static class member",
		},
	},
	"ConciseMethod": {
		Kind:        "ConciseMethod",
		Description: "An ES6 concise method inside an object or class",
		Props: map[string]string{
			"Key":       "a method symbol, or a computed key",
			"Value":     "the method function",
			"Quote":     "the quote character used for the key in the source, if any",
			"Static":    "whether this is a static class member",
			"Async":     "whether the method is async",
			"Generator": "whether the method is a generator",
		},
	},
	"Accessor": {
		Kind:        "Accessor",
		Description: "The function of a getter, setter or method; it has no name",
		Props: map[string]string{
			"Params": "the parameter bindings",
			"Body":   "the statements of the function body",
		},
	},
	"SymbolMethod": {
		Kind:        "SymbolMethod",
		Description: "The bare name of a getter, setter or method",
		Props: map[string]string{
			"Name": "the property name",
		},
	},
	"ComputedKey": {
		Kind:        "ComputedKey",
		Description: "A [expression] property key",
		Props: map[string]string{
			"Expr": "the expression evaluated to produce the key",
		},
	},
	"Program": {
		Kind:        "Program",
		Description: "The top-level statement list",
		Props: map[string]string{
			"Body": "the statements of the program",
		},
	},
	"ClassLiteral": {
		Kind:        "ClassLiteral",
		Description: "A class expression",
		Props: map[string]string{
			"Name":       "the class name binding, if any",
			"SuperClass": "the extends expression, if any",
			"Body":       "the getters, setters and methods of the class",
		},
	},
	"FunctionLiteral": {
		Kind:        "FunctionLiteral",
		Description: "A function expression",
		Props: map[string]string{
			"Name":      "the function name binding, if any",
			"Params":    "the parameter bindings",
			"Body":      "the statements of the function body",
			"Async":     "whether the function is async",
			"Generator": "whether the function is a generator",
		},
	},
	"ArrowFunctionLiteral": {
		Kind:        "ArrowFunctionLiteral",
		Description: "An arrow function; a body that is a single return prints without braces",
		Props: map[string]string{
			"Params": "the parameter bindings",
			"Body":   "the statements of the function body",
			"Async":  "whether the arrow is async",
		},
	},
	"Identifier": {
		Kind:        "Identifier",
		Description: "A reference to a variable",
		Props: map[string]string{
			"Name":         "the variable name",
			"ScopeContext": "the scope the name resolved to, or the unresolved mark",
		},
	},
	"Binding": {
		Kind:        "Binding",
		Description: "A variable declaration site",
		Props: map[string]string{
			"Name":         "the declared name",
			"Kind":         "var, let or const; undetermined for parameters and names",
			"ScopeContext": "the scope the name is declared in",
		},
	},
	"StringLiteral": {
		Kind:        "StringLiteral",
		Description: "A string literal",
		Props: map[string]string{
			"Value": "the decoded string value",
			"Quote": "the quote character used in the source, if any",
		},
	},
	"NumberLiteral": {
		Kind:        "NumberLiteral",
		Description: "A numeric literal",
		Props: map[string]string{
			"Value": "the numeric value",
		},
	},
	"BooleanLiteral": {
		Kind:        "BooleanLiteral",
		Description: "true or false",
		Props: map[string]string{
			"Value": "the boolean value",
		},
	},
	"NullLiteral": {
		Kind:        "NullLiteral",
		Description: "The null literal",
	},
	"ThisExpression": {
		Kind:        "ThisExpression",
		Description: "The this keyword",
	},
	"ArrayLiteral": {
		Kind:        "ArrayLiteral",
		Description: "An array literal",
		Props: map[string]string{
			"Value": "the element expressions",
		},
	},
	"ObjectLiteral": {
		Kind:        "ObjectLiteral",
		Description: "An object literal",
		Props: map[string]string{
			"Value": "the properties, in source order",
		},
	},
	"CallExpression": {
		Kind:        "CallExpression",
		Description: "A function call",
		Props: map[string]string{
			"Callee":       "the called expression",
			"ArgumentList": "the argument expressions",
		},
	},
	"MemberExpression": {
		Kind:        "MemberExpression",
		Description: "A dot property access",
		Props: map[string]string{
			"Object":   "the expression whose property is read",
			"Property": "the property name",
		},
	},
	"AssignExpression": {
		Kind:        "AssignExpression",
		Description: "An assignment, plain or compound",
		Props: map[string]string{
			"Operator": "the assignment operator",
			"Left":     "the assigned target",
			"Right":    "the assigned value",
		},
	},
	"BinaryExpression": {
		Kind:        "BinaryExpression",
		Description: "A binary or logical operation",
		Props: map[string]string{
			"Operator": "the operator",
			"Left":     "the left operand",
			"Right":    "the right operand",
		},
	},
	"UnaryExpression": {
		Kind:        "UnaryExpression",
		Description: "A prefix unary operation",
		Props: map[string]string{
			"Operator": "the operator",
			"Operand":  "the operand",
		},
	},
	"SequenceExpression": {
		Kind:        "SequenceExpression",
		Description: "Comma-separated expressions; the last one is the value",
		Props: map[string]string{
			"Sequence": "the expressions, in evaluation order",
		},
	},
	"ExpressionStatement": {
		Kind:        "ExpressionStatement",
		Description: "An expression evaluated for its effects",
		Props: map[string]string{
			"Expression": "the evaluated expression",
		},
	},
	"ReturnStatement": {
		Kind:        "ReturnStatement",
		Description: "A return statement",
		Props: map[string]string{
			"Argument": "the returned expression, if any",
		},
	},
	"VariableDeclaration": {
		Kind:        "VariableDeclaration",
		Description: "A var, let or const statement",
		Props: map[string]string{
			"Kind": "the declaration keyword",
			"List": "the declarators",
		},
	},
	"VariableDeclarator": {
		Kind:        "VariableDeclarator",
		Description: "One name of a declaration, with its initializer",
		Props: map[string]string{
			"Target":      "the declared binding",
			"Initializer": "the initial value, if any",
		},
	},
	"EmptyStatement": {
		Kind:        "EmptyStatement",
		Description: "A lone semicolon",
	},
}

// Docs returns the documentation of kind.
func Docs(kind string) (Doc, bool) {
	d, ok := docs[kind]
	return d, ok
}

// DocumentedKinds lists the kinds Docs knows, sorted.
func DocumentedKinds() []string {
	kinds := maps.Keys(docs)
	slices.Sort(kinds)
	return kinds
}

// Fields returns the documented fields of d, sorted.
func (d Doc) Fields() []string {
	fields := maps.Keys(d.Props)
	slices.Sort(fields)
	return fields
}
