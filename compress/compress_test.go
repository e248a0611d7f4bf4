package compress_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/banyudu/tsterser-sub002/ast"
	"github.com/banyudu/tsterser-sub002/compress"
	"github.com/banyudu/tsterser-sub002/generator"
	"github.com/banyudu/tsterser-sub002/token"
)

func expr(e ast.Expr) *ast.Expression { return &ast.Expression{Expr: e} }

func num(v float64) *ast.Expression { return expr(&ast.NumberLiteral{Value: v}) }

func call(name string) *ast.Expression {
	return expr(&ast.CallExpression{Callee: expr(&ast.Identifier{Name: name})})
}

// objectProgram builds var o={p(){return x},["a"]:1}.
func objectProgram() *ast.Program {
	obj := &ast.ObjectLiteral{Value: ast.Props(
		&ast.ConciseMethod{
			Key: &ast.SymbolMethod{Name: "p"},
			Value: &ast.Accessor{Lambda: ast.Lambda{Body: ast.Stmts(
				&ast.ReturnStatement{Argument: expr(&ast.Identifier{Name: "x"})},
			)}},
		},
		&ast.KeyValue{Key: &ast.ComputedKey{Expr: expr(&ast.StringLiteral{Value: "a"})}, Value: num(1)},
	)}
	return &ast.Program{Body: ast.Stmts(&ast.VariableDeclaration{
		Kind: token.Var,
		List: []*ast.VariableDeclarator{{Target: &ast.Binding{Name: "o"}, Initializer: expr(obj)}},
	})}
}

// functionProgram builds var g=function(){var a=f(),b=2;return b}.
func functionProgram() *ast.Program {
	fn := &ast.FunctionLiteral{Lambda: ast.Lambda{Body: ast.Stmts(
		&ast.VariableDeclaration{Kind: token.Var, Idx: 17, List: []*ast.VariableDeclarator{
			{Target: &ast.Binding{Idx: 21, Name: "a"}, Initializer: call("f")},
			{Target: &ast.Binding{Idx: 27, Name: "b"}, Initializer: num(2)},
		}},
		&ast.ReturnStatement{Argument: expr(&ast.Identifier{Name: "b"})},
	)}}
	return &ast.Program{Body: ast.Stmts(&ast.VariableDeclaration{
		Kind: token.Var,
		List: []*ast.VariableDeclarator{{Target: &ast.Binding{Name: "g"}, Initializer: expr(fn)}},
	})}
}

const functionSource = "var g=function(){var a=f(),b=2;return b};"

func TestParseOptions(t *testing.T) {
	opts, err := compress.ParseOptions("arrows=false, passes=2, unsafe_methods=/^on/i, toplevel")
	require.NoError(t, err)
	assert.Equal(t, false, opts["arrows"])
	assert.Equal(t, 2, opts["passes"])
	assert.Equal(t, true, opts["toplevel"])
	assert.Equal(t, true, opts["unused"])
	re, ok := opts["unsafe_methods"].(*regexp.Regexp)
	require.True(t, ok)
	assert.True(t, re.MatchString("ONCLICK"))
	assert.False(t, re.MatchString("click"))
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := compress.ParseOptions("")
	require.NoError(t, err)
	assert.Equal(t, compress.DefaultOptions(), opts)
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown", "nope=1", compress.ErrUnknownOption},
		{"int for bool", "arrows=2", compress.ErrOptionValue},
		{"bool for int", "passes=true", compress.ErrOptionValue},
		{"regexp for bool", "side_effects=/x/", compress.ErrOptionValue},
		{"bad flag", "unsafe_methods=/x/q", compress.ErrOptionValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compress.ParseOptions(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := compress.ParseOptions("arrows=")
	assert.Error(t, err)
}

func TestOptionNames(t *testing.T) {
	names := compress.OptionNames()
	assert.Len(t, names, 10)
	assert.Equal(t, "arrows", names[0])
	assert.Contains(t, names, "unsafe_methods")
}

func TestCompressObject(t *testing.T) {
	p := objectProgram()
	require.NoError(t, compress.New().Compress(context.Background(), p))
	assert.Equal(t, "var o={p:()=>x,a:1};", generator.Minify(p))
}

func TestCompressArrowsOff(t *testing.T) {
	opts := compress.DefaultOptions()
	require.NoError(t, opts.Set("arrows", false))
	p := objectProgram()
	require.NoError(t, compress.New(compress.WithOptions(opts)).Compress(context.Background(), p))
	assert.Equal(t, "var o={p(){return x},a:1};", generator.Minify(p))
}

func TestCompressDropsUnused(t *testing.T) {
	var logged []string
	logger := funcr.New(func(prefix, args string) {
		logged = append(logged, args)
	}, funcr.Options{})

	p := functionProgram()
	c := compress.New(compress.WithLogger(logger), compress.WithSource([]byte(functionSource)))
	require.NoError(t, c.Compress(context.Background(), p))

	assert.Equal(t, "var g=function(){var b=(f(),2);return b};", generator.Minify(p))
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "Dropping unused variable")
	assert.Contains(t, logged[0], `"name"="a"`)
	assert.Contains(t, logged[0], `"line"=1`)
}

func evalCall(name string) *ast.Expression {
	return expr(&ast.CallExpression{
		Callee:       expr(&ast.Identifier{Name: "eval"}),
		ArgumentList: ast.Expressions{{Expr: &ast.StringLiteral{Value: name}}},
	})
}

func TestCompressKeepsEvalScope(t *testing.T) {
	fn := &ast.FunctionLiteral{Lambda: ast.Lambda{Body: ast.Stmts(
		&ast.VariableDeclaration{Kind: token.Var, List: []*ast.VariableDeclarator{
			{Target: &ast.Binding{Name: "a"}, Initializer: num(1)},
		}},
		&ast.ReturnStatement{Argument: evalCall("a")},
	)}}
	p := &ast.Program{Body: ast.Stmts(&ast.VariableDeclaration{
		Kind: token.Var,
		List: []*ast.VariableDeclarator{{Target: &ast.Binding{Name: "g"}, Initializer: expr(fn)}},
	})}
	require.NoError(t, compress.New().Compress(context.Background(), p))
	assert.Equal(t, `var g=function(){var a=1;return eval("a")};`, generator.Minify(p))

	top := &ast.Program{Body: ast.Stmts(
		&ast.VariableDeclaration{Kind: token.Var, List: []*ast.VariableDeclarator{
			{Target: &ast.Binding{Name: "a"}, Initializer: num(1)},
		}},
		&ast.ExpressionStatement{Expression: evalCall("a")},
	)}
	opts, err := compress.ParseOptions("toplevel")
	require.NoError(t, err)
	require.NoError(t, compress.New(compress.WithOptions(opts)).Compress(context.Background(), top))
	assert.Equal(t, `var a=1;eval("a");`, generator.Minify(top))
}

func TestCompressArrowVoidBody(t *testing.T) {
	arrow := &ast.ArrowFunctionLiteral{Lambda: ast.Lambda{Body: ast.Stmts(
		&ast.ReturnStatement{Argument: expr(&ast.UnaryExpression{Operator: token.Void, Operand: num(0)})},
	)}}
	p := &ast.Program{Body: ast.Stmts(&ast.VariableDeclaration{
		Kind: token.Var,
		List: []*ast.VariableDeclarator{{Target: &ast.Binding{Name: "h"}, Initializer: expr(arrow)}},
	})}
	before := generator.Minify(p)
	require.NoError(t, compress.New().Compress(context.Background(), p))
	after := generator.Minify(p)
	assert.Equal(t, "var h=()=>void 0;", after)
	assert.LessOrEqual(t, len(after), len(before))
}

func TestCompressWithoutReduceVars(t *testing.T) {
	opts := compress.DefaultOptions()
	require.NoError(t, opts.Set("reduce_vars", false))
	p := functionProgram()
	require.NoError(t, compress.New(compress.WithOptions(opts)).Compress(context.Background(), p))
	assert.Equal(t, "var g=function(){var a=f(),b=2;return b};", generator.Minify(p))
}

func TestCompressTopLevel(t *testing.T) {
	p := &ast.Program{Body: ast.Stmts(
		&ast.VariableDeclaration{Kind: token.Let, List: []*ast.VariableDeclarator{
			{Target: &ast.Binding{Name: "a"}, Initializer: num(1)},
		}},
		&ast.ExpressionStatement{Expression: call("f")},
	)}
	require.NoError(t, compress.New().Compress(context.Background(), p))
	assert.Equal(t, "let a=1;f();", generator.Minify(p))

	opts, err := compress.ParseOptions("toplevel")
	require.NoError(t, err)
	require.NoError(t, compress.New(compress.WithOptions(opts)).Compress(context.Background(), p))
	assert.Equal(t, "f();", generator.Minify(p))
}

func TestCompressTelemetry(t *testing.T) {
	ctx := context.Background()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	opts, err := compress.ParseOptions("passes=3")
	require.NoError(t, err)
	c := compress.New(
		compress.WithOptions(opts),
		compress.WithTracerProvider(tp),
		compress.WithMeterProvider(mp),
	)
	require.NoError(t, c.Compress(ctx, functionProgram()))

	var names []string
	for _, s := range sr.Ended() {
		names = append(names, s.Name())
	}
	// The second sweep finds nothing left to do.
	assert.Equal(t, []string{"compress.sweep", "compress.sweep", "compress"}, names)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if data, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range data.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(2), sums["compress.passes"])
	assert.Equal(t, int64(1), sums["compress.rewrites"])
	assert.Equal(t, int64(1), sums["compress.warnings"])
}

func TestCompressInvalid(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	p := &ast.Program{Body: ast.Stmts(&ast.ExpressionStatement{Expression: expr(&ast.ObjectLiteral{Value: ast.Props(
		&ast.Getter{Key: &ast.SymbolMethod{Name: "g"}, Value: &ast.Accessor{}, Static: true},
	)})})}
	err := compress.New(compress.WithTracerProvider(tp)).Compress(context.Background(), p)
	assert.ErrorIs(t, err, ast.ErrInvariant)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "compress", spans[0].Name())
	assert.NotEmpty(t, spans[0].Events())
}

func TestCompressCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := functionProgram()
	err := compress.New().Compress(ctx, p)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "var g=function(){var a=f(),b=2;return b};", generator.Minify(p))
}

func TestCompressorOption(t *testing.T) {
	c := compress.New()
	assert.Equal(t, true, c.Option("arrows"))
	assert.Equal(t, 5, c.Option("ecma"))
	assert.Nil(t, c.Option("nope"))
}
