package ast

import "github.com/banyudu/tsterser-sub002/estree"

// Idx is a byte offset into the source text.
type Idx int

// Node is implemented by every node kind. Besides position and traversal it
// carries the analyses and renderings the compressor and code generator
// rely on.
type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx

	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)

	// MayThrow reports whether evaluating the node could raise an exception.
	MayThrow(c Compressor) bool
	// HasSideEffects reports whether evaluating the node could be observed.
	HasSideEffects(c Compressor) bool
	// Size estimates the node's own contribution to the printed length,
	// excluding its children.
	Size() int
	// ShallowEqual compares the node's own attributes with other, ignoring
	// children.
	ShallowEqual(other Node) bool

	Print(p *Printer)
	// ESTree converts the node. parent is the enclosing node, needed where
	// the record shape depends on context.
	ESTree(parent Node) (estree.Node, error)
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	// Optimize returns an equivalent, no larger replacement. Children have
	// already been optimized.
	Optimize(c Compressor) Expr
	// DropSideEffectFree returns the part of the node that must still be
	// evaluated when its value is unused, or nil.
	DropSideEffectFree(c Compressor, first bool) Expr
	_expr()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	Optimize(c Compressor) Stmt
	_stmt()
}

// Prop is implemented by the members of object and class literals.
type Prop interface {
	Node
	Optimize(c Compressor) Prop
	DropSideEffectFree(c Compressor, first bool) Expr
	// ComputedKey reports whether the key is evaluated at runtime.
	ComputedKey() bool
	PropKey() PropKey
	IsStatic() bool
	_prop()
}

type (
	Expressions []Expression

	// Expression is a rewritable slot holding an expression.
	Expression struct {
		Expr
	}

	Statements []Statement

	Statement struct {
		Stmt
	}

	Properties []Property

	Property struct {
		Prop
	}

	Program struct {
		Body Statements

		ScopeContext ScopeContext
	}
)

func (n *Program) Idx0() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[0].Idx0()
}

func (n *Program) Idx1() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[len(n.Body)-1].Idx1()
}

// Exprs wraps expressions into slots.
func Exprs(list ...Expr) Expressions {
	out := make(Expressions, len(list))
	for i, e := range list {
		out[i] = Expression{e}
	}
	return out
}

// Stmts wraps statements into slots.
func Stmts(list ...Stmt) Statements {
	out := make(Statements, len(list))
	for i, s := range list {
		out[i] = Statement{s}
	}
	return out
}

// Props wraps properties into slots.
func Props(list ...Prop) Properties {
	out := make(Properties, len(list))
	for i, p := range list {
		out[i] = Property{p}
	}
	return out
}
