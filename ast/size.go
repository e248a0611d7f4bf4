package ast

import (
	"github.com/banyudu/tsterser-sub002/output"
	"github.com/banyudu/tsterser-sub002/token"
)

// TreeSize estimates the printed length of n and everything below it.
func TreeSize(n Node) int {
	size := 0
	Inspect(n, func(n, _ Node) bool {
		size += n.Size()
		return true
	})
	return size
}

// listOverhead is the number of separators between n list elements.
func listOverhead(n int) int {
	if n == 0 {
		return 0
	}
	return n - 1
}

func staticSize(static bool) int {
	if static {
		return 7
	}
	return 0
}

// keySize is the cost of a key that is not itself a node.
func keySize(k PropKey) int {
	switch k := k.(type) {
	case KeyString:
		return len(k)
	case KeyNumber:
		return len(k.String())
	case *ComputedKey:
		return 2
	}
	return 0
}

func (n *Program) Size() int             { return listOverhead(len(n.Body)) }
func (n *EmptyStatement) Size() int      { return 1 }
func (n *ExpressionStatement) Size() int { return 1 }

func (n *ReturnStatement) Size() int {
	if n.Argument != nil {
		return 7
	}
	return 6
}

func (n *VariableDeclaration) Size() int {
	base := 4
	if n.Kind == token.Const {
		base = 6
	}
	return base + listOverhead(len(n.List))
}

func (n *VariableDeclarator) Size() int {
	if n.Initializer != nil {
		return 1
	}
	return 0
}

func (n *Identifier) Size() int   { return len(n.Name) }
func (n *Binding) Size() int      { return len(n.Name) }
func (n *SymbolMethod) Size() int { return len(n.Name) }

func (n *StringLiteral) Size() int { return len(n.Value) + 2 }
func (n *NumberLiteral) Size() int { return len(output.FormatNumber(n.Value)) }
func (n *BooleanLiteral) Size() int {
	if n.Value {
		return 4
	}
	return 5
}
func (n *NullLiteral) Size() int    { return 4 }
func (n *ThisExpression) Size() int { return 4 }

func (n *ArrayLiteral) Size() int  { return 2 + listOverhead(len(n.Value)) }
func (n *ObjectLiteral) Size() int { return 2 + listOverhead(len(n.Value)) }

func (n *ClassLiteral) Size() int {
	size := 7
	if n.Name != nil {
		size++
	}
	if n.SuperClass != nil {
		size += 8
	}
	return size
}

func lambdaModifiers(async, generator bool) int {
	size := 0
	if async {
		size += 6
	}
	if generator {
		size++
	}
	return size
}

func (n *FunctionLiteral) Size() int {
	return lambdaModifiers(n.Async, n.Generator) + 12 + listOverhead(len(n.Params)) + listOverhead(len(n.Body))
}

func (n *ArrowFunctionLiteral) Size() int {
	args := 2 + listOverhead(len(n.Params))
	if len(n.Params) != 1 {
		args += 2
	}
	// A braceless body prints without its return statement.
	body := -(&ReturnStatement{Argument: &Expression{}}).Size()
	if !n.IsBraceless() {
		body = listOverhead(len(n.Body)) + 2
	}
	return lambdaModifiers(n.Async, false) + args + body
}

func (n *Accessor) Size() int {
	return 4 + listOverhead(len(n.Params)) + listOverhead(len(n.Body))
}

func (n *CallExpression) Size() int   { return 2 + listOverhead(len(n.ArgumentList)) }
func (n *MemberExpression) Size() int { return 1 + len(n.Property) }
func (n *AssignExpression) Size() int { return len(n.Operator.String()) }

func (n *BinaryExpression) Size() int {
	size := len(n.Operator.String())
	if n.Operator.IsKeyword() {
		size += 2
	}
	return size
}

func (n *UnaryExpression) Size() int {
	switch n.Operator {
	case token.Typeof, token.Delete:
		return 7
	case token.Void:
		return 5
	}
	return len(n.Operator.String())
}

func (n *SequenceExpression) Size() int { return listOverhead(len(n.Sequence)) }

func (n *KeyValue) Size() int { return keySize(n.Key) + 1 }
func (n *Getter) Size() int   { return 5 + staticSize(n.Static) + keySize(n.Key) }
func (n *Setter) Size() int   { return 5 + staticSize(n.Static) + keySize(n.Key) }
func (n *ConciseMethod) Size() int {
	return staticSize(n.Static) + keySize(n.Key) + lambdaModifiers(n.Async, n.Generator)
}
