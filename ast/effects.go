package ast

import "github.com/banyudu/tsterser-sub002/token"

func mayThrow(e *Expression, c Compressor) bool {
	return e != nil && e.Expr.MayThrow(c)
}

func hasSideEffects(e *Expression, c Compressor) bool {
	return e != nil && e.Expr.HasSideEffects(c)
}

func dropSideEffectFree(e *Expression, c Compressor, first bool) Expr {
	if e == nil {
		return nil
	}
	return e.Expr.DropSideEffectFree(c, first)
}

func anyMayThrow(list Expressions, c Compressor) bool {
	for i := range list {
		if list[i].MayThrow(c) {
			return true
		}
	}
	return false
}

func anyHasSideEffects(list Expressions, c Compressor) bool {
	for i := range list {
		if list[i].HasSideEffects(c) {
			return true
		}
	}
	return false
}

func dropList(list Expressions, c Compressor, first bool) Expr {
	out := make([]Expr, len(list))
	for i := range list {
		out[i] = list[i].DropSideEffectFree(c, first && i == 0)
	}
	return Sequence(out...)
}

// mayBeNull reports whether property access on e could hit null or
// undefined.
func mayBeNull(e Expr) bool {
	switch e.(type) {
	case *ObjectLiteral, *ArrayLiteral, *FunctionLiteral, *ArrowFunctionLiteral, *ClassLiteral,
		*StringLiteral, *NumberLiteral, *BooleanLiteral:
		return false
	}
	return true
}

func (n *Identifier) safe() bool {
	if n.Resolved() {
		return true
	}
	switch n.Name {
	case "undefined", "NaN", "Infinity":
		return true
	}
	return false
}

func (n *Identifier) MayThrow(c Compressor) bool       { return !n.safe() }
func (n *Identifier) HasSideEffects(c Compressor) bool { return !n.safe() }
func (n *Identifier) DropSideEffectFree(c Compressor, first bool) Expr {
	if n.safe() {
		return nil
	}
	return n
}

func (n *Binding) MayThrow(c Compressor) bool           { return false }
func (n *Binding) HasSideEffects(c Compressor) bool     { return false }
func (n *SymbolMethod) MayThrow(c Compressor) bool       { return false }
func (n *SymbolMethod) HasSideEffects(c Compressor) bool { return false }

func (n *StringLiteral) MayThrow(c Compressor) bool        { return false }
func (n *StringLiteral) HasSideEffects(c Compressor) bool  { return false }
func (n *NumberLiteral) MayThrow(c Compressor) bool        { return false }
func (n *NumberLiteral) HasSideEffects(c Compressor) bool  { return false }
func (n *BooleanLiteral) MayThrow(c Compressor) bool       { return false }
func (n *BooleanLiteral) HasSideEffects(c Compressor) bool { return false }
func (n *NullLiteral) MayThrow(c Compressor) bool          { return false }
func (n *NullLiteral) HasSideEffects(c Compressor) bool    { return false }
func (n *ThisExpression) MayThrow(c Compressor) bool       { return false }
func (n *ThisExpression) HasSideEffects(c Compressor) bool { return false }

func (n *StringLiteral) DropSideEffectFree(c Compressor, first bool) Expr  { return nil }
func (n *NumberLiteral) DropSideEffectFree(c Compressor, first bool) Expr  { return nil }
func (n *BooleanLiteral) DropSideEffectFree(c Compressor, first bool) Expr { return nil }
func (n *NullLiteral) DropSideEffectFree(c Compressor, first bool) Expr    { return nil }
func (n *ThisExpression) DropSideEffectFree(c Compressor, first bool) Expr { return nil }

func (n *ArrayLiteral) MayThrow(c Compressor) bool       { return anyMayThrow(n.Value, c) }
func (n *ArrayLiteral) HasSideEffects(c Compressor) bool { return anyHasSideEffects(n.Value, c) }
func (n *ArrayLiteral) DropSideEffectFree(c Compressor, first bool) Expr {
	return dropList(n.Value, c, first)
}

func anyPropMayThrow(list Properties, c Compressor) bool {
	for i := range list {
		if list[i].MayThrow(c) {
			return true
		}
	}
	return false
}

func anyPropHasSideEffects(list Properties, c Compressor) bool {
	for i := range list {
		if list[i].HasSideEffects(c) {
			return true
		}
	}
	return false
}

func dropProps(list Properties, c Compressor, first bool) []Expr {
	out := make([]Expr, len(list))
	for i := range list {
		out[i] = list[i].DropSideEffectFree(c, first && i == 0)
	}
	return out
}

func (n *ObjectLiteral) MayThrow(c Compressor) bool { return anyPropMayThrow(n.Value, c) }
func (n *ObjectLiteral) HasSideEffects(c Compressor) bool {
	return anyPropHasSideEffects(n.Value, c)
}
func (n *ObjectLiteral) DropSideEffectFree(c Compressor, first bool) Expr {
	return Sequence(dropProps(n.Value, c, first)...)
}

// A class evaluates its superclass and its computed keys; the methods
// themselves are inert until called.
func (n *ClassLiteral) MayThrow(c Compressor) bool {
	return mayThrow(n.SuperClass, c) || anyPropMayThrow(n.Body, c)
}

func (n *ClassLiteral) HasSideEffects(c Compressor) bool {
	return hasSideEffects(n.SuperClass, c) || anyPropHasSideEffects(n.Body, c)
}

func (n *ClassLiteral) DropSideEffectFree(c Compressor, first bool) Expr {
	list := append([]Expr{dropSideEffectFree(n.SuperClass, c, first)}, dropProps(n.Body, c, false)...)
	return Sequence(list...)
}

func (n *FunctionLiteral) MayThrow(c Compressor) bool            { return false }
func (n *FunctionLiteral) HasSideEffects(c Compressor) bool      { return false }
func (n *ArrowFunctionLiteral) MayThrow(c Compressor) bool       { return false }
func (n *ArrowFunctionLiteral) HasSideEffects(c Compressor) bool { return false }
func (n *Accessor) MayThrow(c Compressor) bool                   { return false }
func (n *Accessor) HasSideEffects(c Compressor) bool             { return false }

func (n *FunctionLiteral) DropSideEffectFree(c Compressor, first bool) Expr {
	return nil
}
func (n *ArrowFunctionLiteral) DropSideEffectFree(c Compressor, first bool) Expr {
	return nil
}
func (n *Accessor) DropSideEffectFree(c Compressor, first bool) Expr { return nil }

func (n *CallExpression) MayThrow(c Compressor) bool       { return true }
func (n *CallExpression) HasSideEffects(c Compressor) bool { return true }
func (n *CallExpression) DropSideEffectFree(c Compressor, first bool) Expr {
	return n
}

func (n *MemberExpression) pure(c Compressor) bool {
	return optionBool(c, "pure_getters") && !mayBeNull(n.Object.Expr)
}

func (n *MemberExpression) MayThrow(c Compressor) bool {
	return !n.pure(c) || n.Object.MayThrow(c)
}

func (n *MemberExpression) HasSideEffects(c Compressor) bool {
	return !n.pure(c) || n.Object.HasSideEffects(c)
}

func (n *MemberExpression) DropSideEffectFree(c Compressor, first bool) Expr {
	if n.pure(c) {
		return n.Object.DropSideEffectFree(c, first)
	}
	return n
}

func (n *AssignExpression) MayThrow(c Compressor) bool {
	if n.Right.MayThrow(c) {
		return true
	}
	if _, ok := n.Left.Expr.(*Identifier); ok && n.Operator == token.Assign {
		return false
	}
	return n.Left.MayThrow(c)
}

func (n *AssignExpression) HasSideEffects(c Compressor) bool { return true }
func (n *AssignExpression) DropSideEffectFree(c Compressor, first bool) Expr {
	return n
}

func (n *BinaryExpression) MayThrow(c Compressor) bool {
	switch n.Operator {
	case token.In, token.InstanceOf:
		return true
	}
	return n.Left.MayThrow(c) || n.Right.MayThrow(c)
}

func (n *BinaryExpression) HasSideEffects(c Compressor) bool {
	switch n.Operator {
	case token.In, token.InstanceOf:
		return true
	}
	return n.Left.HasSideEffects(c) || n.Right.HasSideEffects(c)
}

func (n *BinaryExpression) DropSideEffectFree(c Compressor, first bool) Expr {
	switch n.Operator {
	case token.In, token.InstanceOf:
		return n
	}
	if n.Operator.IsLogical() {
		right := n.Right.DropSideEffectFree(c, false)
		switch right {
		case nil:
			return n.Left.DropSideEffectFree(c, first)
		case n.Right.Expr:
			return n
		}
		return &BinaryExpression{Operator: n.Operator, Left: n.Left, Right: &Expression{right}}
	}
	return Sequence(n.Left.DropSideEffectFree(c, first), n.Right.DropSideEffectFree(c, false))
}

func (n *UnaryExpression) typeofReference() bool {
	if n.Operator != token.Typeof {
		return false
	}
	_, ok := n.Operand.Expr.(*Identifier)
	return ok
}

func (n *UnaryExpression) MayThrow(c Compressor) bool {
	if n.typeofReference() {
		return false
	}
	return n.Operand.MayThrow(c)
}

func (n *UnaryExpression) HasSideEffects(c Compressor) bool {
	if n.Operator == token.Delete {
		return true
	}
	if n.typeofReference() {
		return false
	}
	return n.Operand.HasSideEffects(c)
}

func (n *UnaryExpression) DropSideEffectFree(c Compressor, first bool) Expr {
	if n.Operator == token.Delete {
		return n
	}
	if n.typeofReference() {
		return nil
	}
	return n.Operand.DropSideEffectFree(c, first)
}

func (n *SequenceExpression) MayThrow(c Compressor) bool { return anyMayThrow(n.Sequence, c) }
func (n *SequenceExpression) HasSideEffects(c Compressor) bool {
	return anyHasSideEffects(n.Sequence, c)
}
func (n *SequenceExpression) DropSideEffectFree(c Compressor, first bool) Expr {
	r := dropList(n.Sequence, c, first)
	if s, ok := r.(*SequenceExpression); ok && len(s.Sequence) == len(n.Sequence) {
		same := true
		for i := range s.Sequence {
			if s.Sequence[i].Expr != n.Sequence[i].Expr {
				same = false
				break
			}
		}
		if same {
			return n
		}
	}
	return r
}

func (n *Program) MayThrow(c Compressor) bool {
	for i := range n.Body {
		if n.Body[i].MayThrow(c) {
			return true
		}
	}
	return false
}

func (n *Program) HasSideEffects(c Compressor) bool {
	for i := range n.Body {
		if n.Body[i].HasSideEffects(c) {
			return true
		}
	}
	return false
}

func (n *ExpressionStatement) MayThrow(c Compressor) bool { return n.Expression.MayThrow(c) }
func (n *ExpressionStatement) HasSideEffects(c Compressor) bool {
	return n.Expression.HasSideEffects(c)
}

func (n *ReturnStatement) MayThrow(c Compressor) bool       { return mayThrow(n.Argument, c) }
func (n *ReturnStatement) HasSideEffects(c Compressor) bool { return hasSideEffects(n.Argument, c) }

func (n *VariableDeclaration) MayThrow(c Compressor) bool {
	for _, d := range n.List {
		if d.MayThrow(c) {
			return true
		}
	}
	return false
}

func (n *VariableDeclaration) HasSideEffects(c Compressor) bool {
	for _, d := range n.List {
		if d.HasSideEffects(c) {
			return true
		}
	}
	return false
}

func (n *VariableDeclarator) MayThrow(c Compressor) bool { return mayThrow(n.Initializer, c) }
func (n *VariableDeclarator) HasSideEffects(c Compressor) bool {
	return hasSideEffects(n.Initializer, c)
}

func (n *EmptyStatement) MayThrow(c Compressor) bool       { return false }
func (n *EmptyStatement) HasSideEffects(c Compressor) bool { return false }

// Property members: only a computed key and the value are evaluated.

func propMayThrow(p Prop, value Expr, c Compressor) bool {
	if k := keyExpr(p.PropKey()); k != nil && p.ComputedKey() && k.MayThrow(c) {
		return true
	}
	return value != nil && value.MayThrow(c)
}

func propHasSideEffects(p Prop, value Expr, c Compressor) bool {
	if k := keyExpr(p.PropKey()); k != nil && p.ComputedKey() && k.HasSideEffects(c) {
		return true
	}
	return value != nil && value.HasSideEffects(c)
}

func propDropSideEffectFree(p Prop, value Expr, c Compressor, first bool) Expr {
	var key Expr
	if k := keyExpr(p.PropKey()); k != nil && p.ComputedKey() {
		key = k.DropSideEffectFree(c, first)
		first = false
	}
	var val Expr
	if value != nil {
		val = value.DropSideEffectFree(c, first)
	}
	return Sequence(key, val)
}

func kvValue(n *KeyValue) Expr {
	if n.Value == nil {
		return nil
	}
	return n.Value.Expr
}

func (n *KeyValue) MayThrow(c Compressor) bool { return propMayThrow(n, kvValue(n), c) }
func (n *KeyValue) HasSideEffects(c Compressor) bool {
	return propHasSideEffects(n, kvValue(n), c)
}
func (n *KeyValue) DropSideEffectFree(c Compressor, first bool) Expr {
	return propDropSideEffectFree(n, kvValue(n), c, first)
}

func (n *Getter) MayThrow(c Compressor) bool { return propMayThrow(n, accessorValue(n.Value), c) }
func (n *Getter) HasSideEffects(c Compressor) bool {
	return propHasSideEffects(n, accessorValue(n.Value), c)
}
func (n *Getter) DropSideEffectFree(c Compressor, first bool) Expr {
	return propDropSideEffectFree(n, accessorValue(n.Value), c, first)
}

func (n *Setter) MayThrow(c Compressor) bool { return propMayThrow(n, accessorValue(n.Value), c) }
func (n *Setter) HasSideEffects(c Compressor) bool {
	return propHasSideEffects(n, accessorValue(n.Value), c)
}
func (n *Setter) DropSideEffectFree(c Compressor, first bool) Expr {
	return propDropSideEffectFree(n, accessorValue(n.Value), c, first)
}

func (n *ConciseMethod) MayThrow(c Compressor) bool {
	return propMayThrow(n, accessorValue(n.Value), c)
}
func (n *ConciseMethod) HasSideEffects(c Compressor) bool {
	return propHasSideEffects(n, accessorValue(n.Value), c)
}
func (n *ConciseMethod) DropSideEffectFree(c Compressor, first bool) Expr {
	return propDropSideEffectFree(n, accessorValue(n.Value), c, first)
}
