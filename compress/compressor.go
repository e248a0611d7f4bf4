package compress

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/tdewolff/parse/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/banyudu/tsterser-sub002/ast"
	"github.com/banyudu/tsterser-sub002/resolver"
)

// Compressor runs optimization sweeps over a program until nothing changes
// or the configured number of passes is spent.
type Compressor struct {
	options Options
	logger  logr.Logger
	source  []byte

	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	instruments    *instruments
}

type Option func(*Compressor)

// WithOptions replaces the option set.
func WithOptions(o Options) Option {
	return func(c *Compressor) { c.options = o }
}

func WithLogger(l logr.Logger) Option {
	return func(c *Compressor) { c.logger = l }
}

// WithWarnings logs warnings to stderr.
func WithWarnings() Option {
	return WithLogger(stdr.New(log.New(os.Stderr, "", log.LstdFlags)))
}

// WithSource supplies the text the program was parsed from, so that
// warnings can name a line and column.
func WithSource(src []byte) Option {
	return func(c *Compressor) { c.source = src }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Compressor) { c.tracerProvider = tp }
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Compressor) { c.meterProvider = mp }
}

func New(opts ...Option) *Compressor {
	c := &Compressor{
		options: DefaultOptions(),
		logger:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.instruments = newInstruments(c.tracerProvider, c.meterProvider)
	return c
}

// Option returns the value of a named option, or nil.
func (c *Compressor) Option(name string) any {
	return c.options[name]
}

// Compress optimizes p in place. The context is checked between passes; a
// pass that has started always runs to completion.
func (c *Compressor) Compress(ctx context.Context, p *ast.Program) error {
	passes := c.options.number("passes")
	if passes < 1 {
		passes = 1
	}
	ctx, span := c.instruments.tracer.Start(ctx, "compress",
		trace.WithAttributes(attribute.Int("compress.max_passes", passes)))
	defer span.End()

	if err := ast.Validate(p); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("compress: %w", err)
	}

	usage := resolver.NewUsage()
	for pass := 0; pass < passes; pass++ {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		if c.options.flag("reduce_vars") {
			resolver.ReduceVars(p, usage)
		}
		rewrites := c.sweep(ctx, p, usage, pass)
		if rewrites == 0 {
			break
		}
	}
	return nil
}

func (c *Compressor) sweep(ctx context.Context, p *ast.Program, usage *resolver.Usage, pass int) int {
	ctx, span := c.instruments.tracer.Start(ctx, "compress.sweep",
		trace.WithAttributes(attribute.Int("compress.pass", pass)))
	defer span.End()

	s := &sweep{Compressor: c, ctx: ctx, usage: usage}
	ast.Transform(p, &ast.Transformer{
		Enter: s.enter,
		Leave: s.leave,
		Expr: func(e ast.Expr) ast.Expr {
			if r := e.Optimize(s); s.commit(e, r) {
				return r
			}
			return nil
		},
		Stmt: func(st ast.Stmt) ast.Stmt {
			if r := st.Optimize(s); s.commit(st, r) {
				return r
			}
			return nil
		},
		Prop: func(pr ast.Prop) ast.Prop {
			if r := pr.Optimize(s); s.commit(pr, r) {
				return r
			}
			return nil
		},
	})
	if pruned := ast.PruneEmpty(p); pruned > 0 {
		s.rewrites += pruned
	}

	span.SetAttributes(attribute.Int("compress.rewrites", s.rewrites))
	c.instruments.passes.Add(ctx, 1)
	c.instruments.rewrites.Add(ctx, int64(s.rewrites))
	c.logger.V(1).Info("sweep done", "pass", pass, "rewrites", s.rewrites)
	return s.rewrites
}

// sweep is the view of the Compressor that nodes get while being optimized.
type sweep struct {
	*Compressor
	ctx   context.Context
	usage *resolver.Usage

	path     []ast.Node
	rewrites int
}

func (s *sweep) enter(n ast.Node) { s.path = append(s.path, n) }
func (s *sweep) leave(n ast.Node) { s.path = s.path[:len(s.path)-1] }

// Parent returns the n-th ancestor of the node being optimized. Hooks run
// after their node is left, so the top of the path is the parent.
func (s *sweep) Parent(n int) ast.Node {
	i := len(s.path) - 1 - n
	if i < 0 {
		return nil
	}
	return s.path[i]
}

func (s *sweep) Definition(id ast.Id) *ast.Definition {
	if !s.options.flag("reduce_vars") {
		return nil
	}
	return s.usage.Definition(id)
}

func (s *sweep) Warn(msg string, node ast.Node, keysAndValues ...any) {
	s.instruments.warnings.Add(s.ctx, 1)
	if node != nil && s.source != nil {
		offset := int(node.Idx0())
		if offset >= 0 && offset <= len(s.source) {
			line, col, excerpt := parse.Position(bytes.NewReader(s.source), offset)
			keysAndValues = append(keysAndValues, "line", line, "col", col, "context", strings.TrimSpace(excerpt))
		}
	}
	s.logger.Info(msg, keysAndValues...)
}

// commit reports whether r should replace orig: it must differ and may not
// grow the tree.
func (s *sweep) commit(orig, r ast.Node) bool {
	if r == nil || r == orig {
		return false
	}
	if ast.TreeSize(r) > ast.TreeSize(orig) {
		return false
	}
	s.rewrites++
	return true
}
