package ast

type (
	// Lambda is the part shared by every function-like node.
	Lambda struct {
		Params []*Binding
		Body   Statements

		ScopeContext ScopeContext
	}

	FunctionLiteral struct {
		Function Idx
		End      Idx
		Name     *Binding
		Lambda

		Async, Generator bool
	}

	ArrowFunctionLiteral struct {
		Start Idx
		End   Idx
		Lambda

		Async bool
	}

	// Accessor is the function of a getter, setter or method. It has no
	// name, and async/generator flags belong to the owning method.
	Accessor struct {
		Start Idx
		End   Idx
		Lambda
	}
)

func (n *FunctionLiteral) Idx0() Idx      { return n.Function }
func (n *FunctionLiteral) Idx1() Idx      { return n.End }
func (n *ArrowFunctionLiteral) Idx0() Idx { return n.Start }
func (n *ArrowFunctionLiteral) Idx1() Idx { return n.End }
func (n *Accessor) Idx0() Idx             { return n.Start }
func (n *Accessor) Idx1() Idx             { return n.End }

func (*FunctionLiteral) _expr()      {}
func (*ArrowFunctionLiteral) _expr() {}
func (*Accessor) _expr()             {}

// ReturnValue returns the expression of a body consisting of exactly one
// return statement with a value, or nil.
func (l *Lambda) ReturnValue() Expr {
	if len(l.Body) != 1 {
		return nil
	}
	ret, ok := l.Body[0].Stmt.(*ReturnStatement)
	if !ok || ret.Argument == nil {
		return nil
	}
	return ret.Argument.Expr
}

// IsBraceless reports whether the arrow prints as params=>expression.
func (n *ArrowFunctionLiteral) IsBraceless() bool {
	return n.ReturnValue() != nil
}
