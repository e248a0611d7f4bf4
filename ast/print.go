package ast

import (
	"fmt"

	"github.com/banyudu/tsterser-sub002/output"
	"github.com/banyudu/tsterser-sub002/token"
)

// Printer renders nodes into an output stream, tracking the chain of nodes
// being printed so that a node can see its context.
type Printer struct {
	*output.Stream
	stack []Node
}

func NewPrinter(s *output.Stream) *Printer {
	return &Printer{Stream: s}
}

// Parent returns the n-th enclosing node of the node being printed; 0 is the
// immediate parent.
func (p *Printer) Parent(n int) Node {
	i := len(p.stack) - 2 - n
	if i < 0 {
		return nil
	}
	return p.stack[i]
}

// PrintNode prints n, adding parentheses where its context requires them.
func (p *Printer) PrintNode(n Node) {
	var parent Node
	if len(p.stack) > 0 {
		parent = p.stack[len(p.stack)-1]
	}
	p.addMapping(n)
	p.stack = append(p.stack, n)
	if needsParens(n, parent) {
		p.WithParens(func() { n.Print(p) })
	} else {
		n.Print(p)
	}
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *Printer) addMapping(n Node) {
	switch n := n.(type) {
	case *Identifier:
		p.AddMapping(int(n.Idx), n.Name)
	case *Binding:
		p.AddMapping(int(n.Idx), n.Name)
	case Prop, *SymbolMethod, *Program:
	default:
		p.AddMapping(int(n.Idx0()), "")
	}
}

// isLeftHandSide reports whether e can appear as a callee, member object or
// superclass without parentheses.
func isLeftHandSide(e Node) bool {
	switch e.(type) {
	case *Identifier, *MemberExpression, *CallExpression, *ThisExpression,
		*StringLiteral, *BooleanLiteral, *NullLiteral, *ArrayLiteral, *ObjectLiteral,
		*FunctionLiteral, *ClassLiteral:
		return true
	}
	return false
}

func needsParens(n, parent Node) bool {
	if c, ok := parent.(*ClassLiteral); ok && c.SuperClass != nil && c.SuperClass.Expr == n {
		return !isLeftHandSide(n)
	}
	switch n := n.(type) {
	case *SequenceExpression:
		switch parent.(type) {
		case *CallExpression, *ArrayLiteral, *KeyValue, *Getter, *Setter, *ConciseMethod,
			*ArrowFunctionLiteral, *BinaryExpression, *UnaryExpression, *AssignExpression,
			*MemberExpression, *VariableDeclarator, *SequenceExpression:
			return true
		}
	case *ArrowFunctionLiteral, *AssignExpression:
		switch pa := parent.(type) {
		case *CallExpression:
			return pa.Callee.Expr == n
		case *MemberExpression, *BinaryExpression, *UnaryExpression:
			return true
		}
	case *BinaryExpression:
		switch pa := parent.(type) {
		case *UnaryExpression, *MemberExpression:
			return true
		case *CallExpression:
			return pa.Callee.Expr == n
		case *BinaryExpression:
			pp, np := pa.Operator.Precedence(), n.Operator.Precedence()
			if pp > np {
				return true
			}
			if pp == np {
				if pa.Operator == token.Exponent {
					return pa.Left.Expr == n
				}
				return pa.Right.Expr == n
			}
			// ?? cannot be mixed with && or || without parentheses.
			if pa.Operator.IsLogical() && n.Operator.IsLogical() {
				return (pa.Operator == token.Coalesce) != (n.Operator == token.Coalesce)
			}
		}
	case *UnaryExpression:
		switch pa := parent.(type) {
		case *MemberExpression:
			return true
		case *CallExpression:
			return pa.Callee.Expr == n
		case *BinaryExpression:
			return pa.Operator == token.Exponent && pa.Left.Expr == n
		}
	case *NumberLiteral:
		switch pa := parent.(type) {
		case *MemberExpression:
			return true
		case *BinaryExpression:
			return n.Value < 0 && pa.Operator == token.Exponent && pa.Left.Expr == n
		}
	}
	return false
}

// startsWith follows the leftmost chain of e and reports whether it reaches
// a node matching f.
func startsWith(e Expr, f func(Expr) bool) bool {
	for {
		if f(e) {
			return true
		}
		switch x := e.(type) {
		case *CallExpression:
			e = x.Callee.Expr
		case *MemberExpression:
			e = x.Object.Expr
		case *BinaryExpression:
			e = x.Left.Expr
		case *AssignExpression:
			e = x.Left.Expr
		case *SequenceExpression:
			e = x.Sequence[0].Expr
		default:
			return false
		}
	}
}

// statementAmbiguous matches what a statement may not start with.
func statementAmbiguous(e Expr) bool {
	switch e.(type) {
	case *ObjectLiteral, *FunctionLiteral, *ClassLiteral:
		return true
	}
	return false
}

func isObject(e Expr) bool {
	_, ok := e.(*ObjectLiteral)
	return ok
}

func (p *Printer) printStatements(list Statements) {
	for i := range list {
		p.Indent()
		p.PrintNode(list[i].Stmt)
		p.Newline()
	}
}

func (p *Printer) printBlock(list Statements) {
	if len(list) == 0 {
		p.Print("{}")
		return
	}
	p.WithBlock(func() { p.printStatements(list) })
}

func (p *Printer) printList(list Expressions) {
	for i := range list {
		if i > 0 {
			p.Comma()
		}
		p.PrintNode(list[i].Expr)
	}
}

func (p *Printer) printLambda(l *Lambda) {
	p.WithParens(func() {
		for i, b := range l.Params {
			if i > 0 {
				p.Comma()
			}
			p.PrintNode(b)
		}
	})
	p.Space()
	p.printBlock(l.Body)
}

func (n *Program) Print(p *Printer) {
	for i := range n.Body {
		if i > 0 {
			p.Newline()
		}
		p.PrintNode(n.Body[i].Stmt)
	}
}

func (n *ExpressionStatement) Print(p *Printer) {
	if startsWith(n.Expression.Expr, statementAmbiguous) {
		p.WithParens(func() { p.PrintNode(n.Expression.Expr) })
	} else {
		p.PrintNode(n.Expression.Expr)
	}
	p.Semicolon()
}

func (n *ReturnStatement) Print(p *Printer) {
	p.Print("return")
	if n.Argument != nil {
		p.Space()
		p.PrintNode(n.Argument.Expr)
	}
	p.Semicolon()
}

func (n *VariableDeclaration) Print(p *Printer) {
	p.Print(n.Kind.String())
	p.Space()
	for i, d := range n.List {
		if i > 0 {
			p.Comma()
		}
		p.PrintNode(d)
	}
	p.Semicolon()
}

func (n *VariableDeclarator) Print(p *Printer) {
	p.PrintNode(n.Target)
	if n.Initializer != nil {
		p.Space()
		p.Print("=")
		p.Space()
		p.PrintNode(n.Initializer.Expr)
	}
}

func (n *EmptyStatement) Print(p *Printer) { p.Print(";") }

func (n *Identifier) Print(p *Printer)   { p.PrintName(n.Name) }
func (n *Binding) Print(p *Printer)      { p.PrintName(n.Name) }
func (n *SymbolMethod) Print(p *Printer) { p.PrintPropertyName(n.Name, 0) }

func (n *StringLiteral) Print(p *Printer) { p.PrintString(n.Value, n.Quote) }
func (n *NumberLiteral) Print(p *Printer) { p.PrintNumber(n.Value) }
func (n *BooleanLiteral) Print(p *Printer) {
	if n.Value {
		p.Print("true")
	} else {
		p.Print("false")
	}
}
func (n *NullLiteral) Print(p *Printer)    { p.Print("null") }
func (n *ThisExpression) Print(p *Printer) { p.Print("this") }

func (n *ArrayLiteral) Print(p *Printer) {
	p.WithSquare(func() { p.printList(n.Value) })
}

func (n *ObjectLiteral) Print(p *Printer) {
	if len(n.Value) == 0 {
		p.Print("{}")
		return
	}
	p.WithBlock(func() {
		for i := range n.Value {
			if i > 0 {
				p.Print(",")
				p.Newline()
			}
			p.Indent()
			p.PrintNode(n.Value[i].Prop)
		}
		p.Newline()
	})
}

func (n *ClassLiteral) Print(p *Printer) {
	p.Print("class")
	if n.Name != nil {
		p.Space()
		p.PrintNode(n.Name)
	}
	if n.SuperClass != nil {
		p.Space()
		p.Print("extends")
		p.Space()
		p.PrintNode(n.SuperClass.Expr)
	}
	p.Space()
	if len(n.Body) == 0 {
		p.Print("{}")
		return
	}
	p.WithBlock(func() {
		for i := range n.Body {
			if i > 0 {
				p.Newline()
			}
			p.Indent()
			p.PrintNode(n.Body[i].Prop)
		}
		p.Newline()
	})
}

func (n *FunctionLiteral) Print(p *Printer) {
	if n.Async {
		p.Print("async")
		p.Space()
	}
	p.Print("function")
	if n.Generator {
		p.Print("*")
	}
	if n.Name != nil {
		p.Space()
		p.PrintNode(n.Name)
	}
	p.printLambda(&n.Lambda)
}

func (n *ArrowFunctionLiteral) Print(p *Printer) {
	if n.Async {
		p.Print("async")
		p.Space()
	}
	if len(n.Params) == 1 {
		p.PrintNode(n.Params[0])
	} else {
		p.WithParens(func() {
			for i, b := range n.Params {
				if i > 0 {
					p.Comma()
				}
				p.PrintNode(b)
			}
		})
	}
	p.Space()
	p.Print("=>")
	p.Space()
	v := n.ReturnValue()
	switch {
	case v == nil:
		p.printBlock(n.Body)
	case startsWith(v, isObject):
		p.WithParens(func() { p.PrintNode(v) })
	default:
		p.PrintNode(v)
	}
}

func (n *Accessor) Print(p *Printer) { p.printLambda(&n.Lambda) }

func (n *CallExpression) Print(p *Printer) {
	p.PrintNode(n.Callee.Expr)
	p.WithParens(func() { p.printList(n.ArgumentList) })
}

func (n *MemberExpression) Print(p *Printer) {
	p.PrintNode(n.Object.Expr)
	p.Print(".")
	p.PrintName(n.Property)
}

func (n *AssignExpression) Print(p *Printer) {
	p.PrintNode(n.Left.Expr)
	p.Space()
	p.Print(n.Operator.String())
	p.Space()
	p.PrintNode(n.Right.Expr)
}

func (n *BinaryExpression) Print(p *Printer) {
	p.PrintNode(n.Left.Expr)
	p.Space()
	p.Print(n.Operator.String())
	p.Space()
	p.PrintNode(n.Right.Expr)
}

func (n *UnaryExpression) Print(p *Printer) {
	p.Print(n.Operator.String())
	if n.Operator.IsKeyword() {
		p.Space()
	} else if n.Operator == token.Plus || n.Operator == token.Minus {
		switch o := n.Operand.Expr.(type) {
		case *UnaryExpression:
			if o.Operator == token.Plus || o.Operator == token.Minus {
				p.Space()
			}
		case *NumberLiteral:
			if o.Value < 0 {
				p.Space()
			}
		}
	}
	p.PrintNode(n.Operand.Expr)
}

func (n *SequenceExpression) Print(p *Printer) { p.printList(n.Sequence) }

// printKey prints a property key; computed keys go in brackets.
func (p *Printer) printKey(k PropKey, quote byte, idx Idx) {
	switch k := k.(type) {
	case KeyString:
		p.AddMapping(int(idx), string(k))
		p.PrintPropertyName(string(k), quote)
	case KeyNumber:
		p.AddMapping(int(idx), "")
		p.PrintPropertyName(k.String(), quote)
	case *SymbolMethod:
		p.AddMapping(int(k.Idx), k.Name)
		p.PrintPropertyName(k.Name, quote)
	case *ComputedKey:
		p.WithSquare(func() { p.PrintNode(k.Expr.Expr) })
	default:
		panic(fmt.Sprintf("ast: cannot print property key %T", k))
	}
}

// printAccessorProp prints the members that carry a function value:
// [static ][kind ]key(params){body}.
func (p *Printer) printAccessorProp(static bool, kind string, key PropKey, quote byte, idx Idx, value *Accessor) {
	if static {
		p.Print("static")
		p.Space()
	}
	if kind != "" {
		p.Print(kind)
		p.Space()
	}
	p.printKey(key, quote, idx)
	p.PrintNode(value)
}

func (n *KeyValue) shorthand(opts output.Options) (string, bool) {
	if !opts.Shorthand || opts.Ecma < 2015 || opts.QuoteKeys || (n.Quote != 0 && opts.KeepQuotedProps) {
		return "", false
	}
	k, ok := n.Key.(KeyString)
	if !ok {
		return "", false
	}
	id, ok := n.Value.Expr.(*Identifier)
	if !ok || id.Name != string(k) || !output.IsIdentifier(id.Name, true) || output.IsReserved(id.Name) {
		return "", false
	}
	return id.Name, true
}

func (n *KeyValue) Print(p *Printer) {
	if name, ok := n.shorthand(p.Options()); ok {
		p.AddMapping(int(n.Idx), name)
		p.PrintName(name)
		return
	}
	p.printKey(n.Key, n.Quote, n.Idx)
	p.Colon()
	p.PrintNode(n.Value.Expr)
}

func (n *Getter) Print(p *Printer) {
	p.printAccessorProp(n.Static, "get", n.Key, n.Quote, n.Idx, n.Value)
}

func (n *Setter) Print(p *Printer) {
	p.printAccessorProp(n.Static, "set", n.Key, n.Quote, n.Idx, n.Value)
}

func (n *ConciseMethod) Print(p *Printer) {
	var kind string
	switch {
	case n.Generator && n.Async:
		kind = "async*"
	case n.Generator:
		kind = "*"
	case n.Async:
		kind = "async"
	}
	p.printAccessorProp(n.Static, kind, n.Key, n.Quote, n.Idx, n.Value)
}
