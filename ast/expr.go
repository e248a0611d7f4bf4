package ast

import "github.com/banyudu/tsterser-sub002/token"

type (
	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	CallExpression struct {
		Callee       *Expression
		LeftParen    Idx
		ArgumentList Expressions
		RightParen   Idx
	}

	// MemberExpression is a dot access. Computed access is not modelled.
	MemberExpression struct {
		Object   *Expression
		Property string
		End      Idx
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	UnaryExpression struct {
		Idx      Idx
		Operator token.Token
		Operand  *Expression
	}

	SequenceExpression struct {
		Sequence Expressions
	}
)

func (n *ArrayLiteral) Idx0() Idx       { return n.LeftBracket }
func (n *ArrayLiteral) Idx1() Idx       { return n.RightBracket + 1 }
func (n *ObjectLiteral) Idx0() Idx      { return n.LeftBrace }
func (n *ObjectLiteral) Idx1() Idx      { return n.RightBrace + 1 }
func (n *CallExpression) Idx0() Idx     { return n.Callee.Idx0() }
func (n *CallExpression) Idx1() Idx     { return n.RightParen + 1 }
func (n *MemberExpression) Idx0() Idx   { return n.Object.Idx0() }
func (n *MemberExpression) Idx1() Idx   { return n.End }
func (n *AssignExpression) Idx0() Idx   { return n.Left.Idx0() }
func (n *AssignExpression) Idx1() Idx   { return n.Right.Idx1() }
func (n *BinaryExpression) Idx0() Idx   { return n.Left.Idx0() }
func (n *BinaryExpression) Idx1() Idx   { return n.Right.Idx1() }
func (n *UnaryExpression) Idx0() Idx    { return n.Idx }
func (n *UnaryExpression) Idx1() Idx    { return n.Operand.Idx1() }
func (n *SequenceExpression) Idx0() Idx { return n.Sequence[0].Idx0() }
func (n *SequenceExpression) Idx1() Idx { return n.Sequence[len(n.Sequence)-1].Idx1() }

func (*ArrayLiteral) _expr()       {}
func (*ObjectLiteral) _expr()      {}
func (*CallExpression) _expr()     {}
func (*MemberExpression) _expr()   {}
func (*AssignExpression) _expr()   {}
func (*BinaryExpression) _expr()   {}
func (*UnaryExpression) _expr()    {}
func (*SequenceExpression) _expr() {}

// IsUndefined reports whether e evaluates to undefined without effects:
// void 0 or the global undefined.
func IsUndefined(e Expr) bool {
	switch e := e.(type) {
	case *UnaryExpression:
		if e.Operator != token.Void {
			return false
		}
		n, ok := e.Operand.Expr.(*NumberLiteral)
		return ok && n.Value == 0
	case *Identifier:
		return e.Name == "undefined" && !e.Resolved()
	}
	return false
}

// Sequence joins the non-nil expressions into a sequence, returning the
// single element or nil when there is nothing to join.
func Sequence(list ...Expr) Expr {
	var seq Expressions
	for _, e := range list {
		if e == nil {
			continue
		}
		if s, ok := e.(*SequenceExpression); ok {
			seq = append(seq, s.Sequence...)
			continue
		}
		seq = append(seq, Expression{e})
	}
	switch len(seq) {
	case 0:
		return nil
	case 1:
		return seq[0].Expr
	}
	return &SequenceExpression{Sequence: seq}
}
