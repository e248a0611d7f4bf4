package ast

import "github.com/banyudu/tsterser-sub002/output"

type (
	StringLiteral struct {
		Idx   Idx
		Value string
		// Quote is the quote character used in the source, or 0.
		Quote byte
	}

	NumberLiteral struct {
		Idx   Idx
		Value float64
	}

	BooleanLiteral struct {
		Idx   Idx
		Value bool
	}

	NullLiteral struct {
		Idx Idx
	}

	ThisExpression struct {
		Idx Idx
	}
)

func (n *StringLiteral) Idx0() Idx  { return n.Idx }
func (n *StringLiteral) Idx1() Idx  { return n.Idx + Idx(len(n.Value)+2) }
func (n *NumberLiteral) Idx0() Idx  { return n.Idx }
func (n *NumberLiteral) Idx1() Idx  { return n.Idx + Idx(len(output.FormatNumber(n.Value))) }
func (n *BooleanLiteral) Idx0() Idx { return n.Idx }
func (n *BooleanLiteral) Idx1() Idx {
	if n.Value {
		return n.Idx + 4
	}
	return n.Idx + 5
}
func (n *NullLiteral) Idx0() Idx    { return n.Idx }
func (n *NullLiteral) Idx1() Idx    { return n.Idx + 4 }
func (n *ThisExpression) Idx0() Idx { return n.Idx }
func (n *ThisExpression) Idx1() Idx { return n.Idx + 4 }

func (*StringLiteral) _expr()  {}
func (*NumberLiteral) _expr()  {}
func (*BooleanLiteral) _expr() {}
func (*NullLiteral) _expr()    {}
func (*ThisExpression) _expr() {}
