package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banyudu/tsterser-sub002/ast"
	"github.com/banyudu/tsterser-sub002/output"
	"github.com/banyudu/tsterser-sub002/token"
)

func expr(e ast.Expr) *ast.Expression { return &ast.Expression{Expr: e} }

func returning(v float64) *ast.Accessor {
	return &ast.Accessor{Lambda: ast.Lambda{Body: ast.Stmts(
		&ast.ReturnStatement{Argument: expr(&ast.NumberLiteral{Value: v})},
	)}}
}

func classProgram() *ast.Program {
	class := &ast.ClassLiteral{Body: ast.Props(
		&ast.Getter{Key: &ast.SymbolMethod{Name: "foo"}, Value: returning(1), Static: true},
		&ast.ConciseMethod{Key: &ast.SymbolMethod{Name: "bar"}, Value: &ast.Accessor{}, Async: true, Generator: true},
	)}
	return &ast.Program{Body: ast.Stmts(&ast.VariableDeclaration{
		Kind: token.Var,
		List: []*ast.VariableDeclarator{{Target: &ast.Binding{Name: "C"}, Initializer: expr(class)}},
	})}
}

func objectProgram() *ast.Program {
	obj := &ast.ObjectLiteral{Value: ast.Props(
		&ast.Getter{Key: &ast.SymbolMethod{Name: "foo"}, Value: returning(1)},
	)}
	return &ast.Program{Body: ast.Stmts(&ast.ExpressionStatement{Expression: expr(obj)})}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    ast.Node
		expected string
	}{
		{
			name:     "class members",
			input:    classProgram(),
			expected: "var C = class {\n    static get foo() {\n        return 1;\n    }\n    async* bar() {}\n};",
		},
		{
			name:     "object statement",
			input:    objectProgram(),
			expected: "({\n    get foo() {\n        return 1;\n    }\n});",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestMinify(t *testing.T) {
	tests := []struct {
		name     string
		input    ast.Node
		expected string
	}{
		{
			name:     "class members",
			input:    classProgram(),
			expected: "var C=class{static get foo(){return 1}async*bar(){}};",
		},
		{
			name:     "object statement",
			input:    objectProgram(),
			expected: "({get foo(){return 1}});",
		},
		{
			name: "arrow property",
			input: &ast.ObjectLiteral{Value: ast.Props(&ast.KeyValue{
				Key: ast.KeyString("p"),
				Value: expr(&ast.ArrowFunctionLiteral{Lambda: ast.Lambda{Body: ast.Stmts(
					&ast.ReturnStatement{Argument: expr(&ast.Identifier{Name: "x"})},
				)}}),
			})},
			expected: "{p:()=>x}",
		},
		{
			name:     "nil",
			input:    nil,
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Minify(tt.input))
		})
	}
}

func TestGenerateMappings(t *testing.T) {
	p := &ast.Program{Body: ast.Stmts(&ast.ExpressionStatement{
		Expression: expr(&ast.Identifier{Idx: 2, Name: "foo"}),
	})}
	opts := output.DefaultOptions()
	opts.Source = []byte("a\nfoo")

	out, mappings := GenerateWithOptions(p, opts)
	assert.Equal(t, "foo;", out)
	require.Len(t, mappings, 1)
	assert.Equal(t, output.Mapping{
		GenLine: 1,
		GenCol:  0,
		SrcLine: 2,
		SrcCol:  0,
		Offset:  2,
		Name:    "foo",
	}, mappings[0])
}
