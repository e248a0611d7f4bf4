package resolver

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/banyudu/tsterser-sub002/ast"
	"github.com/banyudu/tsterser-sub002/token"
)

// Usage holds a Definition for every declared variable of a program.
type Usage struct {
	defs     map[ast.Id]*ast.Definition
	nextCtxt ast.ScopeContext
}

func NewUsage() *Usage {
	return &Usage{
		defs:     make(map[ast.Id]*ast.Definition),
		nextCtxt: ast.TopLevelMark + 1,
	}
}

// Definition returns the record of id, or nil for a variable that was never
// declared.
func (u *Usage) Definition(id ast.Id) *ast.Definition {
	return u.defs[id]
}

// Names lists the names of all declared variables, sorted.
func (u *Usage) Names() []string {
	seen := make(map[string]struct{}, len(u.defs))
	for id := range u.defs {
		seen[id.Name] = struct{}{}
	}
	names := maps.Keys(seen)
	slices.Sort(names)
	return names
}

// Len is the number of declared variables.
func (u *Usage) Len() int { return len(u.defs) }

// reset drops all counts and moves the next mark past every mark already
// present in p.
func (u *Usage) reset(p *ast.Program) {
	maps.Clear(u.defs)
	ast.Inspect(p, func(n, _ ast.Node) bool {
		var ctx ast.ScopeContext
		switch n := n.(type) {
		case *ast.FunctionLiteral:
			ctx = n.ScopeContext
		case *ast.ArrowFunctionLiteral:
			ctx = n.ScopeContext
		case *ast.Accessor:
			ctx = n.ScopeContext
		case *ast.Binding:
			ctx = n.ScopeContext
		}
		if ctx >= u.nextCtxt {
			u.nextCtxt = ctx + 1
		}
		return true
	})
}

func (u *Usage) nextContext() ast.ScopeContext {
	ctx := u.nextCtxt
	u.nextCtxt++
	return ctx
}

func (u *Usage) lookup(id ast.Id) *ast.Definition {
	def, ok := u.defs[id]
	if !ok {
		def = &ast.Definition{Id: id}
		u.defs[id] = def
	}
	return def
}

func (u *Usage) declare(b *ast.Binding) {
	def := u.lookup(b.ToId())
	def.Declarations++
	if def.Kind == token.Undetermined {
		def.Kind = b.Kind
	}
}

func (u *Usage) use(id ast.Id, t IdentType) {
	def := u.lookup(id)
	switch t {
	case IdentTypeRef:
		def.References++
	case IdentTypeAssign:
		def.Assignments++
	case IdentTypeUpdate:
		def.References++
		def.Assignments++
	case IdentTypeBinding:
		def.Declarations++
	}
}

// forget drops the records of the variables declared in scope ctx.
func (u *Usage) forget(ctx ast.ScopeContext) {
	maps.DeleteFunc(u.defs, func(id ast.Id, _ *ast.Definition) bool {
		return id.ScopeContext == ctx
	})
}
