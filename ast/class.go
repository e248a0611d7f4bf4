package ast

type ClassLiteral struct {
	Class      Idx
	RightBrace Idx
	Name       *Binding
	SuperClass *Expression
	// Body holds getters, setters and methods only.
	Body Properties
}

func (n *ClassLiteral) Idx0() Idx { return n.Class }
func (n *ClassLiteral) Idx1() Idx { return n.RightBrace + 1 }

func (*ClassLiteral) _expr() {}
