package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banyudu/tsterser-sub002/ast"
	"github.com/banyudu/tsterser-sub002/token"
)

func binary(op token.Token, l, r *ast.Expression) *ast.Expression {
	return &ast.Expression{Expr: &ast.BinaryExpression{Operator: op, Left: l, Right: r}}
}

func unary(op token.Token, e *ast.Expression) *ast.Expression {
	return &ast.Expression{Expr: &ast.UnaryExpression{Operator: op, Operand: e}}
}

func member(obj *ast.Expression, name string) *ast.Expression {
	return &ast.Expression{Expr: &ast.MemberExpression{Object: obj, Property: name}}
}

func TestExpressionParens(t *testing.T) {
	tests := []struct {
		name     string
		input    ast.Expr
		expected string
	}{
		{"lower precedence left", binary(token.Multiply, binary(token.Plus, global("a"), global("b")), global("c")).Expr, "(a+b)*c"},
		{"higher precedence", binary(token.Plus, global("a"), binary(token.Multiply, global("b"), global("c"))).Expr, "a+b*c"},
		{"same precedence right", binary(token.Minus, global("a"), binary(token.Minus, global("b"), global("c"))).Expr, "a-(b-c)"},
		{"same precedence left", binary(token.Minus, binary(token.Minus, global("a"), global("b")), global("c")).Expr, "a-b-c"},
		{"unary exponent base", binary(token.Exponent, unary(token.Minus, global("a")), global("b")).Expr, "(-a)**b"},
		{"coalesce mixed", binary(token.Coalesce, global("a"), binary(token.LogicalOr, global("b"), global("c"))).Expr, "a??(b||c)"},
		{"number member", member(num(1), "x").Expr, "(1).x"},
		{"double minus", unary(token.Minus, unary(token.Minus, global("a"))).Expr, "- -a"},
		{"keyword operator", unary(token.Typeof, global("a")).Expr, "typeof a"},
		{"binary keyword", binary(token.In, str("a"), global("b")).Expr, `"a"in b`},
		{
			"sequence argument",
			&ast.CallExpression{Callee: global("f"), ArgumentList: ast.Expressions{
				{Expr: ast.Sequence(ident("a"), ident("b"))},
			}},
			"f((a,b))",
		},
		{
			"arrow callee",
			&ast.CallExpression{Callee: &ast.Expression{Expr: &ast.ArrowFunctionLiteral{
				Lambda: ast.Lambda{Body: ast.Stmts(ret(num(1)))},
			}}},
			"(()=>1)()",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, minified(tt.input))
		})
	}
}

func TestExpressionEffects(t *testing.T) {
	tests := []struct {
		name    string
		input   ast.Expr
		effects bool
		throws  bool
		dropped string
		pure    bool
	}{
		{name: "global", input: ident("x"), effects: true, throws: true, dropped: "x"},
		{name: "local", input: local("x").Expr},
		{name: "undefined", input: ident("undefined")},
		{name: "typeof global", input: unary(token.Typeof, global("x")).Expr},
		{name: "delete", input: unary(token.Delete, member(local("o"), "p")).Expr, effects: true, throws: true, dropped: "delete o.p"},
		{name: "in", input: binary(token.In, str("p"), local("o")).Expr, effects: true, throws: true, dropped: `"p"in o`},
		{name: "member", input: member(local("o"), "p").Expr, effects: true, throws: true, dropped: "o.p"},
		{name: "member pure getters", input: member(&ast.Expression{Expr: object()}, "p").Expr, pure: true},
		{name: "member maybe null", input: member(local("o"), "p").Expr, effects: true, throws: true, dropped: "o.p", pure: true},
		{name: "arithmetic", input: binary(token.Plus, local("a"), call("f")).Expr, effects: true, throws: true, dropped: "f()"},
		{name: "logical pure", input: binary(token.LogicalAnd, local("a"), num(1)).Expr},
		{name: "logical call", input: binary(token.LogicalAnd, local("a"), call("f")).Expr, effects: true, throws: true, dropped: "a&&f()"},
		{name: "array", input: &ast.ArrayLiteral{Value: ast.Expressions{*num(1), *call("f"), *local("a")}}, effects: true, throws: true, dropped: "f()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newFake()
			c.options["pure_getters"] = tt.pure
			assert.Equal(t, tt.effects, tt.input.HasSideEffects(c))
			assert.Equal(t, tt.throws, tt.input.MayThrow(c))
			if tt.dropped == "" {
				assert.Nil(t, tt.input.DropSideEffectFree(c, false))
			} else {
				assert.Equal(t, tt.dropped, minified(tt.input.DropSideEffectFree(c, false)))
			}
		})
	}
}

func TestSequence(t *testing.T) {
	a, b, c := ident("a"), ident("b"), ident("c")

	assert.Nil(t, ast.Sequence())
	assert.Nil(t, ast.Sequence(nil, nil))
	assert.Same(t, a, ast.Sequence(nil, a))

	seq, ok := ast.Sequence(a, ast.Sequence(b, c)).(*ast.SequenceExpression)
	require.True(t, ok)
	require.Len(t, seq.Sequence, 3)
	assert.Same(t, c, seq.Sequence[2].Expr)
}

func TestIsUndefined(t *testing.T) {
	assert.True(t, ast.IsUndefined(ident("undefined")))
	assert.True(t, ast.IsUndefined(unary(token.Void, num(0)).Expr))
	assert.False(t, ast.IsUndefined(unary(token.Void, num(1)).Expr))
	assert.False(t, ast.IsUndefined(local("undefined").Expr))
	assert.False(t, ast.IsUndefined(ident("x")))
}

func TestBodyScans(t *testing.T) {
	arrow := func(e *ast.Expression) *ast.Expression {
		return &ast.Expression{Expr: &ast.ArrowFunctionLiteral{Lambda: ast.Lambda{Body: ast.Stmts(ret(e))}}}
	}
	function := func(e *ast.Expression) *ast.Expression {
		return &ast.Expression{Expr: &ast.FunctionLiteral{Lambda: ast.Lambda{Body: ast.Stmts(ret(e))}}}
	}
	lambda := func(e *ast.Expression) *ast.Lambda {
		return &ast.Lambda{Body: ast.Stmts(ret(e))}
	}
	this := &ast.Expression{Expr: &ast.ThisExpression{}}

	assert.True(t, ast.UsesArguments(lambda(arrow(global("arguments")))))
	assert.False(t, ast.UsesArguments(lambda(function(global("arguments")))))
	assert.True(t, ast.ContainsThis(lambda(arrow(this))))
	assert.False(t, ast.ContainsThis(lambda(function(this))))
	assert.False(t, ast.ContainsThis(lambda(global("x"))))

	evalCall := &ast.Expression{Expr: &ast.CallExpression{Callee: global("eval")}}
	assert.True(t, ast.Pinned(lambda(function(evalCall))))
	localEval := &ast.Expression{Expr: &ast.CallExpression{Callee: local("eval")}}
	assert.False(t, ast.Pinned(lambda(localEval)))
}

func TestTransform(t *testing.T) {
	callExpr := call("f").Expr.(*ast.CallExpression)
	callExpr.ArgumentList = ast.Expressions{*num(1), *num(2)}
	p := &ast.Program{Body: ast.Stmts(&ast.ExpressionStatement{Expression: &ast.Expression{Expr: callExpr}})}

	var stack, parents []ast.Node
	ast.Transform(p, &ast.Transformer{
		Enter: func(n ast.Node) { stack = append(stack, n) },
		Leave: func(n ast.Node) { stack = stack[:len(stack)-1] },
		Expr: func(e ast.Expr) ast.Expr {
			n, ok := e.(*ast.NumberLiteral)
			if !ok {
				return nil
			}
			parents = append(parents, stack[len(stack)-1])
			return &ast.NumberLiteral{Value: n.Value * 10}
		},
	})

	assert.Empty(t, stack)
	assert.Equal(t, []ast.Node{callExpr, callExpr}, parents)
	assert.Equal(t, "f(10,20);", minified(p))
}

func TestPruneEmpty(t *testing.T) {
	fn := &ast.FunctionLiteral{Lambda: ast.Lambda{Body: ast.Stmts(&ast.EmptyStatement{}, ret(nil))}}
	p := &ast.Program{Body: ast.Stmts(
		&ast.EmptyStatement{},
		&ast.ExpressionStatement{Expression: &ast.Expression{Expr: fn}},
		&ast.EmptyStatement{},
	)}

	assert.Equal(t, 3, ast.PruneEmpty(p))
	assert.Len(t, p.Body, 1)
	assert.Len(t, fn.Body, 1)
	assert.Equal(t, 0, ast.PruneEmpty(p))
}
