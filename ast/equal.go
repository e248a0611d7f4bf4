package ast

func (n *Program) ShallowEqual(other Node) bool {
	_, ok := other.(*Program)
	return ok
}

func (n *ExpressionStatement) ShallowEqual(other Node) bool {
	_, ok := other.(*ExpressionStatement)
	return ok
}

func (n *ReturnStatement) ShallowEqual(other Node) bool {
	o, ok := other.(*ReturnStatement)
	return ok && (n.Argument == nil) == (o.Argument == nil)
}

func (n *VariableDeclaration) ShallowEqual(other Node) bool {
	o, ok := other.(*VariableDeclaration)
	return ok && n.Kind == o.Kind
}

func (n *VariableDeclarator) ShallowEqual(other Node) bool {
	o, ok := other.(*VariableDeclarator)
	return ok && (n.Initializer == nil) == (o.Initializer == nil)
}

func (n *EmptyStatement) ShallowEqual(other Node) bool {
	_, ok := other.(*EmptyStatement)
	return ok
}

func (n *Identifier) ShallowEqual(other Node) bool {
	o, ok := other.(*Identifier)
	return ok && n.Name == o.Name
}

func (n *Binding) ShallowEqual(other Node) bool {
	o, ok := other.(*Binding)
	return ok && n.Name == o.Name
}

func (n *SymbolMethod) ShallowEqual(other Node) bool {
	o, ok := other.(*SymbolMethod)
	return ok && n.Name == o.Name
}

func (n *StringLiteral) ShallowEqual(other Node) bool {
	o, ok := other.(*StringLiteral)
	return ok && n.Value == o.Value
}

func (n *NumberLiteral) ShallowEqual(other Node) bool {
	o, ok := other.(*NumberLiteral)
	return ok && n.Value == o.Value
}

func (n *BooleanLiteral) ShallowEqual(other Node) bool {
	o, ok := other.(*BooleanLiteral)
	return ok && n.Value == o.Value
}

func (n *NullLiteral) ShallowEqual(other Node) bool {
	_, ok := other.(*NullLiteral)
	return ok
}

func (n *ThisExpression) ShallowEqual(other Node) bool {
	_, ok := other.(*ThisExpression)
	return ok
}

func (n *ArrayLiteral) ShallowEqual(other Node) bool {
	_, ok := other.(*ArrayLiteral)
	return ok
}

func (n *ObjectLiteral) ShallowEqual(other Node) bool {
	_, ok := other.(*ObjectLiteral)
	return ok
}

func (n *ClassLiteral) ShallowEqual(other Node) bool {
	o, ok := other.(*ClassLiteral)
	return ok && (n.Name == nil) == (o.Name == nil) && (n.SuperClass == nil) == (o.SuperClass == nil)
}

func (n *FunctionLiteral) ShallowEqual(other Node) bool {
	o, ok := other.(*FunctionLiteral)
	return ok && n.Async == o.Async && n.Generator == o.Generator && (n.Name == nil) == (o.Name == nil)
}

func (n *ArrowFunctionLiteral) ShallowEqual(other Node) bool {
	o, ok := other.(*ArrowFunctionLiteral)
	return ok && n.Async == o.Async
}

func (n *Accessor) ShallowEqual(other Node) bool {
	_, ok := other.(*Accessor)
	return ok
}

func (n *CallExpression) ShallowEqual(other Node) bool {
	_, ok := other.(*CallExpression)
	return ok
}

func (n *MemberExpression) ShallowEqual(other Node) bool {
	o, ok := other.(*MemberExpression)
	return ok && n.Property == o.Property
}

func (n *AssignExpression) ShallowEqual(other Node) bool {
	o, ok := other.(*AssignExpression)
	return ok && n.Operator == o.Operator
}

func (n *BinaryExpression) ShallowEqual(other Node) bool {
	o, ok := other.(*BinaryExpression)
	return ok && n.Operator == o.Operator
}

func (n *UnaryExpression) ShallowEqual(other Node) bool {
	o, ok := other.(*UnaryExpression)
	return ok && n.Operator == o.Operator
}

func (n *SequenceExpression) ShallowEqual(other Node) bool {
	_, ok := other.(*SequenceExpression)
	return ok
}

// ShallowEqual compares only the kind; keys are compared by Equivalent as
// part of the key slot.
func (n *KeyValue) ShallowEqual(other Node) bool {
	_, ok := other.(*KeyValue)
	return ok
}

func (n *Getter) ShallowEqual(other Node) bool {
	o, ok := other.(*Getter)
	return ok && n.Static == o.Static
}

func (n *Setter) ShallowEqual(other Node) bool {
	o, ok := other.(*Setter)
	return ok && n.Static == o.Static
}

func (n *ConciseMethod) ShallowEqual(other Node) bool {
	o, ok := other.(*ConciseMethod)
	return ok && n.Static == o.Static && n.Generator == o.Generator && n.Async == o.Async
}

type equivEntry struct {
	node Node
	key  string
}

func flatten(n Node) []equivEntry {
	var out []equivEntry
	Inspect(n, func(n, _ Node) bool {
		e := equivEntry{node: n}
		if p, ok := n.(Prop); ok {
			switch k := p.PropKey().(type) {
			case KeyString:
				e.key = "s:" + string(k)
			case KeyNumber:
				e.key = "n:" + k.String()
			case *ComputedKey:
				e.key = "[]"
			}
		}
		out = append(out, e)
		return true
	})
	return out
}

// Equivalent reports whether a and b are structurally equal: the same node
// kinds in the same places with equal attributes and equal bare keys.
func Equivalent(a, b Node) bool {
	fa, fb := flatten(a), flatten(b)
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i].key != fb[i].key || !fa[i].node.ShallowEqual(fb[i].node) {
			return false
		}
	}
	return true
}
