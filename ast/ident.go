package ast

import "github.com/banyudu/tsterser-sub002/token"

type ScopeContext int

const (
	UnresolvedMark ScopeContext = 0
	TopLevelMark   ScopeContext = 1
)

type (
	// Id names one variable: the same Name in different scopes is a
	// different Id.
	Id struct {
		Name         string
		ScopeContext ScopeContext
	}

	// Identifier is a reference to a variable.
	Identifier struct {
		Idx          Idx
		Name         string
		ScopeContext ScopeContext
	}

	// Binding declares a variable: a parameter, a declarator target or the
	// name of a function or class.
	Binding struct {
		Idx          Idx
		Name         string
		Kind         token.Token
		ScopeContext ScopeContext
	}

	// SymbolMethod is the bare name of a getter, setter or method.
	SymbolMethod struct {
		Idx  Idx
		Name string
	}
)

func (n *Identifier) ToId() Id {
	return Id{Name: n.Name, ScopeContext: n.ScopeContext}
}

func (n *Binding) ToId() Id {
	return Id{Name: n.Name, ScopeContext: n.ScopeContext}
}

// Resolved reports whether the reference was bound to a declaration.
func (n *Identifier) Resolved() bool {
	return n.ScopeContext != UnresolvedMark
}

func (n *Identifier) Idx0() Idx   { return n.Idx }
func (n *Identifier) Idx1() Idx   { return n.Idx + Idx(len(n.Name)) }
func (n *Binding) Idx0() Idx      { return n.Idx }
func (n *Binding) Idx1() Idx      { return n.Idx + Idx(len(n.Name)) }
func (n *SymbolMethod) Idx0() Idx { return n.Idx }
func (n *SymbolMethod) Idx1() Idx { return n.Idx + Idx(len(n.Name)) }

func (*Identifier) _expr() {}
