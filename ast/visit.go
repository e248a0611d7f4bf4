package ast

type Visitor interface {
	VisitProgram(n *Program)
	VisitStatements(n *Statements)
	VisitStatement(n *Statement)
	VisitExpressions(n *Expressions)
	VisitExpression(n *Expression)
	VisitProperties(n *Properties)
	VisitProperty(n *Property)

	VisitExpressionStatement(n *ExpressionStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitVariableDeclarator(n *VariableDeclarator)
	VisitEmptyStatement(n *EmptyStatement)

	VisitIdentifier(n *Identifier)
	VisitBinding(n *Binding)
	VisitSymbolMethod(n *SymbolMethod)
	VisitStringLiteral(n *StringLiteral)
	VisitNumberLiteral(n *NumberLiteral)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitNullLiteral(n *NullLiteral)
	VisitThisExpression(n *ThisExpression)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitClassLiteral(n *ClassLiteral)
	VisitFunctionLiteral(n *FunctionLiteral)
	VisitArrowFunctionLiteral(n *ArrowFunctionLiteral)
	VisitAccessor(n *Accessor)
	VisitCallExpression(n *CallExpression)
	VisitMemberExpression(n *MemberExpression)
	VisitAssignExpression(n *AssignExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitSequenceExpression(n *SequenceExpression)

	VisitKeyValue(n *KeyValue)
	VisitGetter(n *Getter)
	VisitSetter(n *Setter)
	VisitConciseMethod(n *ConciseMethod)
	VisitComputedKey(n *ComputedKey)
}

// NoopVisitor visits every child and does nothing else. Embed it and set V
// to the embedding visitor so that overridden methods are reached.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(n *Program)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatements(n *Statements)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatement(n *Statement)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressions(n *Expressions) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpression(n *Expression)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperties(n *Properties)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperty(n *Property)       { n.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitVariableDeclarator(n *VariableDeclarator) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement)         {}

func (nv *NoopVisitor) VisitIdentifier(n *Identifier)         {}
func (nv *NoopVisitor) VisitBinding(n *Binding)               {}
func (nv *NoopVisitor) VisitSymbolMethod(n *SymbolMethod)     {}
func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral)   {}
func (nv *NoopVisitor) VisitNumberLiteral(n *NumberLiteral)   {}
func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral) {}
func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral)       {}
func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression) {}
func (nv *NoopVisitor) VisitArrayLiteral(n *ArrayLiteral)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectLiteral(n *ObjectLiteral)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassLiteral(n *ClassLiteral)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionLiteral(n *FunctionLiteral) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitArrowFunctionLiteral(n *ArrowFunctionLiteral) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitAccessor(n *Accessor)                 { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCallExpression(n *CallExpression)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAssignExpression(n *AssignExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitKeyValue(n *KeyValue)           { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitGetter(n *Getter)               { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSetter(n *Setter)               { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConciseMethod(n *ConciseMethod) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitComputedKey(n *ComputedKey)     { n.VisitChildrenWith(nv.V) }

func (n *Program) VisitWith(v Visitor) { v.VisitProgram(n) }
func (n *Program) VisitChildrenWith(v Visitor) {
	v.VisitStatements(&n.Body)
}

func (n *Statements) VisitWith(v Visitor) { v.VisitStatements(n) }
func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitStatement(&(*n)[i])
	}
}

func (n *Statement) VisitWith(v Visitor)         { v.VisitStatement(n) }
func (n *Statement) VisitChildrenWith(v Visitor) { n.Stmt.VisitWith(v) }

func (n *Expressions) VisitWith(v Visitor) { v.VisitExpressions(n) }
func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitExpression(&(*n)[i])
	}
}

func (n *Expression) VisitWith(v Visitor)         { v.VisitExpression(n) }
func (n *Expression) VisitChildrenWith(v Visitor) { n.Expr.VisitWith(v) }

func (n *Properties) VisitWith(v Visitor) { v.VisitProperties(n) }
func (n *Properties) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitProperty(&(*n)[i])
	}
}

func (n *Property) VisitWith(v Visitor)         { v.VisitProperty(n) }
func (n *Property) VisitChildrenWith(v Visitor) { n.Prop.VisitWith(v) }

func (n *ExpressionStatement) VisitWith(v Visitor) { v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *ReturnStatement) VisitWith(v Visitor) { v.VisitReturnStatement(n) }
func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }
func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for _, d := range n.List {
		d.VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitWith(v Visitor) { v.VisitVariableDeclarator(n) }
func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Target.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *EmptyStatement) VisitWith(v Visitor)         { v.VisitEmptyStatement(n) }
func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *Identifier) VisitWith(v Visitor)           { v.VisitIdentifier(n) }
func (n *Identifier) VisitChildrenWith(v Visitor)   {}
func (n *Binding) VisitWith(v Visitor)              { v.VisitBinding(n) }
func (n *Binding) VisitChildrenWith(v Visitor)      {}
func (n *SymbolMethod) VisitWith(v Visitor)         { v.VisitSymbolMethod(n) }
func (n *SymbolMethod) VisitChildrenWith(v Visitor) {}

func (n *StringLiteral) VisitWith(v Visitor)          { v.VisitStringLiteral(n) }
func (n *StringLiteral) VisitChildrenWith(v Visitor)  {}
func (n *NumberLiteral) VisitWith(v Visitor)          { v.VisitNumberLiteral(n) }
func (n *NumberLiteral) VisitChildrenWith(v Visitor)  {}
func (n *BooleanLiteral) VisitWith(v Visitor)         { v.VisitBooleanLiteral(n) }
func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}
func (n *NullLiteral) VisitWith(v Visitor)            { v.VisitNullLiteral(n) }
func (n *NullLiteral) VisitChildrenWith(v Visitor)    {}
func (n *ThisExpression) VisitWith(v Visitor)         { v.VisitThisExpression(n) }
func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *ArrayLiteral) VisitWith(v Visitor) { v.VisitArrayLiteral(n) }
func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	v.VisitExpressions(&n.Value)
}

func (n *ObjectLiteral) VisitWith(v Visitor) { v.VisitObjectLiteral(n) }
func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	v.VisitProperties(&n.Value)
}

func (n *ClassLiteral) VisitWith(v Visitor) { v.VisitClassLiteral(n) }
func (n *ClassLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(v)
	}
	v.VisitProperties(&n.Body)
}

func (l *Lambda) visitChildrenWith(v Visitor) {
	for _, p := range l.Params {
		p.VisitWith(v)
	}
	v.VisitStatements(&l.Body)
}

func (n *FunctionLiteral) VisitWith(v Visitor) { v.VisitFunctionLiteral(n) }
func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	n.Lambda.visitChildrenWith(v)
}

func (n *ArrowFunctionLiteral) VisitWith(v Visitor) { v.VisitArrowFunctionLiteral(n) }
func (n *ArrowFunctionLiteral) VisitChildrenWith(v Visitor) {
	n.Lambda.visitChildrenWith(v)
}

func (n *Accessor) VisitWith(v Visitor) { v.VisitAccessor(n) }
func (n *Accessor) VisitChildrenWith(v Visitor) {
	n.Lambda.visitChildrenWith(v)
}

func (n *CallExpression) VisitWith(v Visitor) { v.VisitCallExpression(n) }
func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	v.VisitExpressions(&n.ArgumentList)
}

func (n *MemberExpression) VisitWith(v Visitor) { v.VisitMemberExpression(n) }
func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
}

func (n *AssignExpression) VisitWith(v Visitor) { v.VisitAssignExpression(n) }
func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BinaryExpression) VisitWith(v Visitor) { v.VisitBinaryExpression(n) }
func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *UnaryExpression) VisitWith(v Visitor) { v.VisitUnaryExpression(n) }
func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *SequenceExpression) VisitWith(v Visitor) { v.VisitSequenceExpression(n) }
func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	v.VisitExpressions(&n.Sequence)
}

func visitKey(k PropKey, v Visitor) {
	switch k := k.(type) {
	case *SymbolMethod:
		k.VisitWith(v)
	case *ComputedKey:
		k.VisitWith(v)
	}
}

func (n *ComputedKey) VisitWith(v Visitor) { v.VisitComputedKey(n) }
func (n *ComputedKey) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *KeyValue) VisitWith(v Visitor) { v.VisitKeyValue(n) }
func (n *KeyValue) VisitChildrenWith(v Visitor) {
	visitKey(n.Key, v)
	if n.Value != nil {
		n.Value.VisitWith(v)
	}
}

func (n *Getter) VisitWith(v Visitor) { v.VisitGetter(n) }
func (n *Getter) VisitChildrenWith(v Visitor) {
	visitKey(n.Key, v)
	if n.Value != nil {
		n.Value.VisitWith(v)
	}
}

func (n *Setter) VisitWith(v Visitor) { v.VisitSetter(n) }
func (n *Setter) VisitChildrenWith(v Visitor) {
	visitKey(n.Key, v)
	if n.Value != nil {
		n.Value.VisitWith(v)
	}
}

func (n *ConciseMethod) VisitWith(v Visitor) { v.VisitConciseMethod(n) }
func (n *ConciseMethod) VisitChildrenWith(v Visitor) {
	visitKey(n.Key, v)
	if n.Value != nil {
		n.Value.VisitWith(v)
	}
}

// Inspect calls f for node and every node below it in pre-order, passing the
// enclosing node (nil for the root). Children are skipped when f returns
// false.
func Inspect(node Node, f func(n, parent Node) bool) {
	i := &inspector{f: f}
	i.V = i
	i.visit(node)
}

type inspector struct {
	NoopVisitor
	f     func(n, parent Node) bool
	stack []Node
}

func (i *inspector) visit(n Node) {
	var parent Node
	if len(i.stack) > 0 {
		parent = i.stack[len(i.stack)-1]
	}
	if !i.f(n, parent) {
		return
	}
	i.stack = append(i.stack, n)
	n.VisitChildrenWith(i)
	i.stack = i.stack[:len(i.stack)-1]
}

func (i *inspector) VisitProgram(n *Program)                         { i.visit(n) }
func (i *inspector) VisitExpressionStatement(n *ExpressionStatement) { i.visit(n) }
func (i *inspector) VisitReturnStatement(n *ReturnStatement)         { i.visit(n) }
func (i *inspector) VisitVariableDeclaration(n *VariableDeclaration) { i.visit(n) }
func (i *inspector) VisitVariableDeclarator(n *VariableDeclarator)   { i.visit(n) }
func (i *inspector) VisitEmptyStatement(n *EmptyStatement)           { i.visit(n) }
func (i *inspector) VisitIdentifier(n *Identifier)                   { i.visit(n) }
func (i *inspector) VisitBinding(n *Binding)                         { i.visit(n) }
func (i *inspector) VisitSymbolMethod(n *SymbolMethod)               { i.visit(n) }
func (i *inspector) VisitStringLiteral(n *StringLiteral)             { i.visit(n) }
func (i *inspector) VisitNumberLiteral(n *NumberLiteral)             { i.visit(n) }
func (i *inspector) VisitBooleanLiteral(n *BooleanLiteral)           { i.visit(n) }
func (i *inspector) VisitNullLiteral(n *NullLiteral)                 { i.visit(n) }
func (i *inspector) VisitThisExpression(n *ThisExpression)           { i.visit(n) }
func (i *inspector) VisitArrayLiteral(n *ArrayLiteral)               { i.visit(n) }
func (i *inspector) VisitObjectLiteral(n *ObjectLiteral)             { i.visit(n) }
func (i *inspector) VisitClassLiteral(n *ClassLiteral)               { i.visit(n) }
func (i *inspector) VisitFunctionLiteral(n *FunctionLiteral)         { i.visit(n) }
func (i *inspector) VisitArrowFunctionLiteral(n *ArrowFunctionLiteral) {
	i.visit(n)
}
func (i *inspector) VisitAccessor(n *Accessor)                     { i.visit(n) }
func (i *inspector) VisitCallExpression(n *CallExpression)         { i.visit(n) }
func (i *inspector) VisitMemberExpression(n *MemberExpression)     { i.visit(n) }
func (i *inspector) VisitAssignExpression(n *AssignExpression)     { i.visit(n) }
func (i *inspector) VisitBinaryExpression(n *BinaryExpression)     { i.visit(n) }
func (i *inspector) VisitUnaryExpression(n *UnaryExpression)       { i.visit(n) }
func (i *inspector) VisitSequenceExpression(n *SequenceExpression) { i.visit(n) }
func (i *inspector) VisitKeyValue(n *KeyValue)                     { i.visit(n) }
func (i *inspector) VisitGetter(n *Getter)                         { i.visit(n) }
func (i *inspector) VisitSetter(n *Setter)                         { i.visit(n) }
func (i *inspector) VisitConciseMethod(n *ConciseMethod)           { i.visit(n) }
