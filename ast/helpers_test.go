package ast_test

import (
	"fmt"

	"github.com/banyudu/tsterser-sub002/ast"
	"github.com/banyudu/tsterser-sub002/output"
)

type fakeCompressor struct {
	options  map[string]any
	parents  []ast.Node
	defs     map[ast.Id]*ast.Definition
	warnings []string
}

func newFake(parents ...ast.Node) *fakeCompressor {
	return &fakeCompressor{
		options: map[string]any{
			"arrows":         true,
			"computed_props": true,
			"side_effects":   true,
			"unused":         true,
			"toplevel":       false,
			"unsafe_methods": false,
			"pure_getters":   false,
			"ecma":           2015,
		},
		parents: parents,
		defs:    map[ast.Id]*ast.Definition{},
	}
}

func (f *fakeCompressor) Option(name string) any { return f.options[name] }

func (f *fakeCompressor) Parent(n int) ast.Node {
	if n < len(f.parents) {
		return f.parents[n]
	}
	return nil
}

func (f *fakeCompressor) Definition(id ast.Id) *ast.Definition { return f.defs[id] }

func (f *fakeCompressor) Warn(msg string, node ast.Node, keysAndValues ...any) {
	f.warnings = append(f.warnings, fmt.Sprint(append([]any{msg}, keysAndValues...)...))
}

func render(n ast.Node, opts output.Options) string {
	s := output.New(opts)
	ast.NewPrinter(s).PrintNode(n)
	s.Finish()
	return s.String()
}

func minified(n ast.Node) string { return render(n, output.DefaultOptions()) }

func ident(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func global(name string) *ast.Expression { return &ast.Expression{Expr: ident(name)} }

func local(name string) *ast.Expression {
	return &ast.Expression{Expr: &ast.Identifier{Name: name, ScopeContext: 2}}
}

func num(v float64) *ast.Expression { return &ast.Expression{Expr: &ast.NumberLiteral{Value: v}} }

func str(v string) *ast.Expression { return &ast.Expression{Expr: &ast.StringLiteral{Value: v}} }

func call(name string) *ast.Expression {
	return &ast.Expression{Expr: &ast.CallExpression{Callee: global(name)}}
}

func ret(e *ast.Expression) ast.Stmt { return &ast.ReturnStatement{Argument: e} }

func accessor(body ...ast.Stmt) *ast.Accessor {
	return &ast.Accessor{Lambda: ast.Lambda{Body: ast.Stmts(body...)}}
}

func method(name string) *ast.SymbolMethod { return &ast.SymbolMethod{Name: name} }

func computed(e *ast.Expression) *ast.ComputedKey { return &ast.ComputedKey{Expr: e} }

func object(props ...ast.Prop) *ast.ObjectLiteral {
	return &ast.ObjectLiteral{Value: ast.Props(props...)}
}

func class(props ...ast.Prop) *ast.ClassLiteral {
	return &ast.ClassLiteral{Body: ast.Props(props...)}
}
