package ast

import "github.com/banyudu/tsterser-sub002/token"

type (
	ExpressionStatement struct {
		Expression *Expression
	}

	ReturnStatement struct {
		Return   Idx
		Argument *Expression
	}

	VariableDeclaration struct {
		Idx  Idx
		Kind token.Token // Var, Let or Const
		List []*VariableDeclarator
	}

	VariableDeclarator struct {
		Target      *Binding
		Initializer *Expression
	}

	EmptyStatement struct {
		Semicolon Idx
	}
)

func (n *ExpressionStatement) Idx0() Idx { return n.Expression.Idx0() }
func (n *ExpressionStatement) Idx1() Idx { return n.Expression.Idx1() }
func (n *ReturnStatement) Idx0() Idx     { return n.Return }
func (n *ReturnStatement) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Return + 6
}
func (n *VariableDeclaration) Idx0() Idx { return n.Idx }
func (n *VariableDeclaration) Idx1() Idx {
	if len(n.List) == 0 {
		return n.Idx + Idx(len(n.Kind.String()))
	}
	return n.List[len(n.List)-1].Idx1()
}
func (n *VariableDeclarator) Idx0() Idx { return n.Target.Idx0() }
func (n *VariableDeclarator) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Target.Idx1()
}
func (n *EmptyStatement) Idx0() Idx { return n.Semicolon }
func (n *EmptyStatement) Idx1() Idx { return n.Semicolon + 1 }

func (*ExpressionStatement) _stmt() {}
func (*ReturnStatement) _stmt()     {}
func (*VariableDeclaration) _stmt() {}
func (*EmptyStatement) _stmt()      {}
