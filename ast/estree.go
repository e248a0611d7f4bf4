package ast

import (
	"errors"
	"fmt"

	"github.com/banyudu/tsterser-sub002/estree"
	"github.com/banyudu/tsterser-sub002/token"
)

// ErrUnsupportedKey is returned when a property key cannot be exported.
var ErrUnsupportedKey = errors.New("unsupported property key")

func toESTree(e *Expression, parent Node) (estree.Node, error) {
	if e == nil {
		return nil, nil
	}
	return e.Expr.ESTree(parent)
}

func listESTree(list Expressions, parent Node) ([]any, error) {
	out := make([]estree.Node, len(list))
	for i := range list {
		n, err := list[i].ESTree(parent)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return estree.List(out), nil
}

func statementsESTree(list Statements, parent Node) ([]any, error) {
	out := make([]estree.Node, len(list))
	for i := range list {
		n, err := list[i].ESTree(parent)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return estree.List(out), nil
}

func paramsESTree(params []*Binding, parent Node) ([]any, error) {
	out := make([]estree.Node, len(params))
	for i, b := range params {
		n, err := b.ESTree(parent)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return estree.List(out), nil
}

func (n *Program) ESTree(parent Node) (estree.Node, error) {
	body, err := statementsESTree(n.Body, n)
	if err != nil {
		return nil, err
	}
	return estree.Node{"type": "Program", "sourceType": "script", "body": body}, nil
}

func (n *ExpressionStatement) ESTree(parent Node) (estree.Node, error) {
	e, err := toESTree(n.Expression, n)
	if err != nil {
		return nil, err
	}
	return estree.Node{"type": "ExpressionStatement", "expression": e}, nil
}

func (n *ReturnStatement) ESTree(parent Node) (estree.Node, error) {
	arg, err := toESTree(n.Argument, n)
	if err != nil {
		return nil, err
	}
	return estree.Node{"type": "ReturnStatement", "argument": estree.Nullable(arg)}, nil
}

func (n *VariableDeclaration) ESTree(parent Node) (estree.Node, error) {
	decls := make([]estree.Node, len(n.List))
	for i, d := range n.List {
		r, err := d.ESTree(n)
		if err != nil {
			return nil, err
		}
		decls[i] = r
	}
	return estree.Node{
		"type":         "VariableDeclaration",
		"kind":         n.Kind.String(),
		"declarations": estree.List(decls),
	}, nil
}

func (n *VariableDeclarator) ESTree(parent Node) (estree.Node, error) {
	id, err := n.Target.ESTree(n)
	if err != nil {
		return nil, err
	}
	init, err := toESTree(n.Initializer, n)
	if err != nil {
		return nil, err
	}
	return estree.Node{"type": "VariableDeclarator", "id": id, "init": estree.Nullable(init)}, nil
}

func (n *EmptyStatement) ESTree(parent Node) (estree.Node, error) {
	return estree.Node{"type": "EmptyStatement"}, nil
}

func (n *Identifier) ESTree(parent Node) (estree.Node, error) {
	return estree.Identifier(n.Name), nil
}

func (n *Binding) ESTree(parent Node) (estree.Node, error) {
	return estree.Identifier(n.Name), nil
}

func (n *SymbolMethod) ESTree(parent Node) (estree.Node, error) {
	return estree.Identifier(n.Name), nil
}

func (n *StringLiteral) ESTree(parent Node) (estree.Node, error) {
	return estree.Literal(n.Value), nil
}

func (n *NumberLiteral) ESTree(parent Node) (estree.Node, error) {
	return estree.Literal(n.Value), nil
}

func (n *BooleanLiteral) ESTree(parent Node) (estree.Node, error) {
	return estree.Literal(n.Value), nil
}

func (n *NullLiteral) ESTree(parent Node) (estree.Node, error) {
	return estree.Literal(nil), nil
}

func (n *ThisExpression) ESTree(parent Node) (estree.Node, error) {
	return estree.Node{"type": "ThisExpression"}, nil
}

func (n *ArrayLiteral) ESTree(parent Node) (estree.Node, error) {
	elems, err := listESTree(n.Value, n)
	if err != nil {
		return nil, err
	}
	return estree.Node{"type": "ArrayExpression", "elements": elems}, nil
}

func (n *ObjectLiteral) ESTree(parent Node) (estree.Node, error) {
	props, err := propsESTree(n.Value, n)
	if err != nil {
		return nil, err
	}
	return estree.Node{"type": "ObjectExpression", "properties": props}, nil
}

func propsESTree(list Properties, parent Node) ([]any, error) {
	out := make([]estree.Node, len(list))
	for i := range list {
		r, err := list[i].ESTree(parent)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return estree.List(out), nil
}

func (n *ClassLiteral) ESTree(parent Node) (estree.Node, error) {
	var id estree.Node
	if n.Name != nil {
		var err error
		if id, err = n.Name.ESTree(n); err != nil {
			return nil, err
		}
	}
	super, err := toESTree(n.SuperClass, n)
	if err != nil {
		return nil, err
	}
	body, err := propsESTree(n.Body, n)
	if err != nil {
		return nil, err
	}
	return estree.Node{
		"type":       "ClassExpression",
		"id":         estree.Nullable(id),
		"superClass": estree.Nullable(super),
		"body":       estree.Node{"type": "ClassBody", "body": body},
	}, nil
}

func (l *Lambda) estree(parent Node, typ string, id estree.Node, async, generator bool) (estree.Node, error) {
	params, err := paramsESTree(l.Params, parent)
	if err != nil {
		return nil, err
	}
	body, err := statementsESTree(l.Body, parent)
	if err != nil {
		return nil, err
	}
	return estree.Node{
		"type":       typ,
		"id":         estree.Nullable(id),
		"params":     params,
		"body":       estree.Node{"type": "BlockStatement", "body": body},
		"async":      async,
		"generator":  generator,
		"expression": false,
	}, nil
}

func (n *FunctionLiteral) ESTree(parent Node) (estree.Node, error) {
	var id estree.Node
	if n.Name != nil {
		var err error
		if id, err = n.Name.ESTree(n); err != nil {
			return nil, err
		}
	}
	return n.Lambda.estree(n, "FunctionExpression", id, n.Async, n.Generator)
}

func (n *ArrowFunctionLiteral) ESTree(parent Node) (estree.Node, error) {
	if v := n.ReturnValue(); v != nil {
		params, err := paramsESTree(n.Params, n)
		if err != nil {
			return nil, err
		}
		body, err := v.ESTree(n)
		if err != nil {
			return nil, err
		}
		return estree.Node{
			"type":       "ArrowFunctionExpression",
			"id":         nil,
			"params":     params,
			"body":       body,
			"async":      n.Async,
			"generator":  false,
			"expression": true,
		}, nil
	}
	return n.Lambda.estree(n, "ArrowFunctionExpression", nil, n.Async, false)
}

func (n *Accessor) ESTree(parent Node) (estree.Node, error) {
	return n.Lambda.estree(n, "FunctionExpression", nil, false, false)
}

func (n *CallExpression) ESTree(parent Node) (estree.Node, error) {
	callee, err := toESTree(n.Callee, n)
	if err != nil {
		return nil, err
	}
	args, err := listESTree(n.ArgumentList, n)
	if err != nil {
		return nil, err
	}
	return estree.Node{"type": "CallExpression", "callee": callee, "arguments": args, "optional": false}, nil
}

func (n *MemberExpression) ESTree(parent Node) (estree.Node, error) {
	obj, err := toESTree(n.Object, n)
	if err != nil {
		return nil, err
	}
	return estree.Node{
		"type":     "MemberExpression",
		"object":   obj,
		"property": estree.Identifier(n.Property),
		"computed": false,
		"optional": false,
	}, nil
}

func binaryESTree(typ string, op token.Token, left, right *Expression, parent Node) (estree.Node, error) {
	l, err := toESTree(left, parent)
	if err != nil {
		return nil, err
	}
	r, err := toESTree(right, parent)
	if err != nil {
		return nil, err
	}
	return estree.Node{"type": typ, "operator": op.String(), "left": l, "right": r}, nil
}

func (n *AssignExpression) ESTree(parent Node) (estree.Node, error) {
	return binaryESTree("AssignmentExpression", n.Operator, n.Left, n.Right, n)
}

func (n *BinaryExpression) ESTree(parent Node) (estree.Node, error) {
	if n.Operator.IsLogical() {
		return binaryESTree("LogicalExpression", n.Operator, n.Left, n.Right, n)
	}
	return binaryESTree("BinaryExpression", n.Operator, n.Left, n.Right, n)
}

func (n *UnaryExpression) ESTree(parent Node) (estree.Node, error) {
	arg, err := toESTree(n.Operand, n)
	if err != nil {
		return nil, err
	}
	return estree.Node{"type": "UnaryExpression", "operator": n.Operator.String(), "prefix": true, "argument": arg}, nil
}

func (n *SequenceExpression) ESTree(parent Node) (estree.Node, error) {
	list, err := listESTree(n.Sequence, n)
	if err != nil {
		return nil, err
	}
	return estree.Node{"type": "SequenceExpression", "expressions": list}, nil
}

// keyESTree encodes a property key: a bare string becomes an Identifier, a
// bare number a Literal, anything else is converted as a node.
func keyESTree(k PropKey, parent Node) (estree.Node, error) {
	switch k := k.(type) {
	case KeyString:
		return estree.Identifier(string(k)), nil
	case KeyNumber:
		return estree.Literal(float64(k)), nil
	case *SymbolMethod:
		return k.ESTree(parent)
	case *ComputedKey:
		if k.Expr == nil {
			return nil, fmt.Errorf("%w: empty computed key", ErrUnsupportedKey)
		}
		return k.Expr.ESTree(parent)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, k)
}

// propESTree builds the record for a member of an object or class literal.
// Class members become MethodDefinition records.
func propESTree(p Prop, parent Node, kind string, method bool, value Node) (estree.Node, error) {
	key, err := keyESTree(p.PropKey(), p)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, fmt.Errorf("%w: property without value", ErrInvariant)
	}
	val, err := value.ESTree(p)
	if err != nil {
		return nil, err
	}
	if _, inClass := parent.(*ClassLiteral); inClass {
		if kind == "init" {
			kind = "method"
			if sm, ok := p.PropKey().(*SymbolMethod); ok && sm.Name == "constructor" && !p.IsStatic() {
				kind = "constructor"
			}
		}
		return estree.Node{
			"type":     "MethodDefinition",
			"computed": p.ComputedKey(),
			"kind":     kind,
			"static":   p.IsStatic(),
			"key":      key,
			"value":    val,
		}, nil
	}
	return estree.Node{
		"type":      "Property",
		"computed":  p.ComputedKey(),
		"kind":      kind,
		"method":    method,
		"shorthand": false,
		"key":       key,
		"value":     val,
	}, nil
}

func (n *KeyValue) ESTree(parent Node) (estree.Node, error) {
	var value Node
	if n.Value != nil {
		value = n.Value.Expr
	}
	return propESTree(n, parent, "init", false, value)
}

func (n *Getter) ESTree(parent Node) (estree.Node, error) {
	return propESTree(n, parent, "get", false, accessorValue(n.Value))
}

func (n *Setter) ESTree(parent Node) (estree.Node, error) {
	return propESTree(n, parent, "set", false, accessorValue(n.Value))
}

func (n *ConciseMethod) ESTree(parent Node) (estree.Node, error) {
	r, err := propESTree(n, parent, "init", true, accessorValue(n.Value))
	if err != nil {
		return nil, err
	}
	if val, ok := r["value"].(estree.Node); ok {
		val["async"] = n.Async
		val["generator"] = n.Generator
	}
	return r, nil
}
