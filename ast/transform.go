package ast

// Transformer rewrites a tree bottom-up. Every expression, statement and
// property slot is visited after its children; the matching hook returns
// the node to store back into the slot.
//
// Enter and Leave bracket the descent into a slot's node, so a caller can
// keep its own ancestor stack: when a hook runs, the node's parent is the
// last node entered and not yet left.
type Transformer struct {
	NoopVisitor

	Enter func(n Node)
	Leave func(n Node)

	Expr func(e Expr) Expr
	Stmt func(s Stmt) Stmt
	Prop func(p Prop) Prop
}

// Transform runs t over root.
func Transform(root Node, t *Transformer) {
	t.V = t
	if t.Enter != nil {
		t.Enter(root)
	}
	root.VisitChildrenWith(t)
	if t.Leave != nil {
		t.Leave(root)
	}
}

func (t *Transformer) descend(n Node) {
	if t.Enter != nil {
		t.Enter(n)
	}
	n.VisitChildrenWith(t)
	if t.Leave != nil {
		t.Leave(n)
	}
}

func (t *Transformer) VisitExpression(n *Expression) {
	t.descend(n.Expr)
	if t.Expr != nil {
		if r := t.Expr(n.Expr); r != nil {
			n.Expr = r
		}
	}
}

func (t *Transformer) VisitStatement(n *Statement) {
	t.descend(n.Stmt)
	if t.Stmt != nil {
		if r := t.Stmt(n.Stmt); r != nil {
			n.Stmt = r
		}
	}
}

func (t *Transformer) VisitProperty(n *Property) {
	t.descend(n.Prop)
	if t.Prop != nil {
		if r := t.Prop(n.Prop); r != nil {
			n.Prop = r
		}
	}
}

// Getters, setters and methods hold their function directly; it is entered
// like a slot so that it appears among the ancestors of its body.
func (t *Transformer) VisitAccessor(n *Accessor) {
	t.descend(n)
}
