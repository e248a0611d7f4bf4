package resolver

import (
	"fmt"

	"github.com/banyudu/tsterser-sub002/ast"
	"github.com/banyudu/tsterser-sub002/token"
)

type IdentType int

const (
	IdentTypeRef     IdentType = iota // Reference (read)
	IdentTypeBinding                  // Binding (declaration)
	IdentTypeAssign                   // Target of a plain assignment
	IdentTypeUpdate                   // Target of a compound assignment, read and written
)

// Walker binds every identifier to the scope declaring it and records how
// often each variable is declared, read and written. References with no
// declaration in scope keep ast.UnresolvedMark.
//
// The walker keeps the chain of enclosing expressions, statements and
// properties, which Parent exposes while a walk is running.
type Walker struct {
	ast.NoopVisitor

	current *Scope
	path    []ast.Node

	identType IdentType

	usage *Usage

	// Descend, when set, is asked before entering the body of a getter,
	// setter or method. Refusing still opens and closes the scope.
	Descend func(n ast.Node) bool
}

func NewWalker(u *Usage) *Walker {
	w := &Walker{identType: IdentTypeRef, usage: u}
	w.V = w
	return w
}

// Resolve resolves p and returns the usage it found.
func Resolve(p *ast.Program) *Usage {
	u := NewUsage()
	ReduceVars(p, u)
	return u
}

// ReduceVars recounts the usage of every variable of p into u, resolving
// identifiers that are not yet bound. Marks already assigned are kept, so
// running it again over a transformed tree is stable.
func ReduceVars(p *ast.Program, u *Usage) {
	u.reset(p)
	NewWalker(u).Walk(p)
}

// Walk visits n. The scope stack must be balanced afterwards.
func (w *Walker) Walk(n ast.Node) {
	w.enter(n)
	n.VisitWith(w)
	w.leave()
	if !w.Balanced() {
		panic(fmt.Sprintf("resolver: scope %d left open", w.current.ctx))
	}
}

func (w *Walker) enter(n ast.Node) { w.path = append(w.path, n) }
func (w *Walker) leave()           { w.path = w.path[:len(w.path)-1] }

// Parent returns the n-th ancestor of the node being visited, 0 being the
// immediate parent, or nil past the root. It panics outside a walk.
func (w *Walker) Parent(n int) ast.Node {
	if len(w.path) == 0 {
		panic("resolver: Parent called outside a walk")
	}
	i := len(w.path) - 2 - n
	if i < 0 {
		return nil
	}
	return w.path[i]
}

// Depth is the number of open scopes.
func (w *Walker) Depth() int {
	d := 0
	for s := w.current; s != nil; s = s.parent {
		d++
	}
	return d
}

// Balanced reports whether every pushed scope was popped.
func (w *Walker) Balanced() bool { return w.current == nil }

// PushScope opens the scope of n, a program, function, arrow, accessor or
// named class. A node resolved before keeps its mark; otherwise a fresh one
// is stored into it.
func (w *Walker) PushScope(n ast.Node) ast.ScopeContext {
	var slot *ast.ScopeContext
	switch n := n.(type) {
	case *ast.Program:
		n.ScopeContext = ast.TopLevelMark
		slot = &n.ScopeContext
	case *ast.FunctionLiteral:
		slot = &n.ScopeContext
	case *ast.ArrowFunctionLiteral:
		slot = &n.ScopeContext
	case *ast.Accessor:
		slot = &n.ScopeContext
	case *ast.ClassLiteral:
		if n.Name == nil {
			panic("resolver: anonymous class has no scope")
		}
		slot = &n.Name.ScopeContext
	default:
		panic(fmt.Sprintf("resolver: %T has no scope", n))
	}
	if *slot == ast.UnresolvedMark {
		*slot = w.usage.nextContext()
	}
	w.current = &Scope{
		parent:          w.current,
		declaredSymbols: make(map[string]token.Token),
		ctx:             *slot,
	}
	return *slot
}

func (w *Walker) PopScope() {
	if w.current == nil {
		panic("resolver: unbalanced scope")
	}
	w.current = w.current.parent
}

// ResetVariables forgets the counts of the variables of the current scope,
// so that walking the same subtree again does not count them twice.
func (w *Walker) ResetVariables() {
	w.usage.forget(w.current.ctx)
}

// modify declares b in the current scope.
func (w *Walker) modify(b *ast.Binding) {
	w.current.declaredSymbols[b.Name] = b.Kind
	if b.ScopeContext == ast.UnresolvedMark {
		b.ScopeContext = w.current.ctx
	}
}

// lookupContext returns the context of the innermost scope declaring sym.
func (w *Walker) lookupContext(sym string) ast.ScopeContext {
	for scope := w.current; scope != nil; scope = scope.parent {
		if _, exists := scope.declaredSymbols[sym]; exists {
			return scope.ctx
		}
	}
	return ast.UnresolvedMark
}

func (w *Walker) visitLambda(l *ast.Lambda) {
	oldIdentType := w.identType
	w.identType = IdentTypeBinding
	for _, p := range l.Params {
		p.VisitWith(w)
	}

	w.identType = IdentTypeRef
	// Prevent creating new scope.
	l.Body.VisitWith(w)
	w.identType = oldIdentType
}

func (w *Walker) VisitProgram(n *ast.Program) {
	w.PushScope(n)
	n.VisitChildrenWith(w)
	w.PopScope()
}

func (w *Walker) VisitStatement(n *ast.Statement) {
	w.enter(n.Stmt)
	n.VisitChildrenWith(w)
	w.leave()
}

func (w *Walker) VisitProperty(n *ast.Property) {
	w.enter(n.Prop)
	n.VisitChildrenWith(w)
	w.leave()
}

func (w *Walker) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	w.PushScope(n)
	// The name of a function expression is only visible inside it.
	if n.Name != nil {
		oldIdentType := w.identType
		w.identType = IdentTypeBinding
		n.Name.VisitWith(w)
		w.identType = oldIdentType
	}
	w.visitLambda(&n.Lambda)
	w.PopScope()
}

func (w *Walker) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	w.PushScope(n)
	w.visitLambda(&n.Lambda)
	w.PopScope()
}

// VisitAccessor always opens a fresh scope for the accessor, even when
// Descend keeps the walk out of it.
func (w *Walker) VisitAccessor(n *ast.Accessor) {
	w.enter(n)
	w.PushScope(n)
	w.ResetVariables()
	if w.Descend == nil || w.Descend(n) {
		w.visitLambda(&n.Lambda)
	}
	w.PopScope()
	w.leave()
}

func (w *Walker) VisitClassLiteral(n *ast.ClassLiteral) {
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(w)
	}
	if n.Name == nil {
		n.Body.VisitWith(w)
		return
	}
	// A class expression binds its name in a scope of its own.
	w.PushScope(n)
	oldIdentType := w.identType
	w.identType = IdentTypeBinding
	n.Name.VisitWith(w)
	w.identType = oldIdentType
	n.Body.VisitWith(w)
	w.PopScope()
}

func (w *Walker) VisitStatements(n *ast.Statements) {
	// Handle hoisting
	h := NewHoister(w)
	h.V = h
	n.VisitWith(h)

	// Resolve
	n.VisitChildrenWith(w)
}

func (w *Walker) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	for _, decl := range n.List {
		oldIdentType := w.identType
		w.identType = IdentTypeBinding
		if decl.Target != nil {
			decl.Target.VisitWith(w)
		}
		w.identType = oldIdentType

		if decl.Initializer != nil {
			decl.Initializer.VisitWith(w)
		}
	}
}

func (w *Walker) VisitAssignExpression(n *ast.AssignExpression) {
	if _, ok := n.Left.Expr.(*ast.Identifier); ok {
		oldIdentType := w.identType
		w.identType = IdentTypeAssign
		if n.Operator != token.Assign {
			w.identType = IdentTypeUpdate
		}
		n.Left.VisitWith(w)
		w.identType = oldIdentType
	} else {
		n.Left.VisitWith(w)
	}
	n.Right.VisitWith(w)
}

func (w *Walker) VisitExpression(expr *ast.Expression) {
	if expr == nil || expr.Expr == nil {
		return
	}
	w.enter(expr.Expr)
	defer w.leave()
	if _, ok := expr.Expr.(*ast.Identifier); ok {
		// The caller decides how a bare identifier is used.
		expr.VisitChildrenWith(w)
		return
	}

	oldIdentType := w.identType
	w.identType = IdentTypeRef
	expr.VisitChildrenWith(w)
	w.identType = oldIdentType
}

func (w *Walker) VisitBinding(n *ast.Binding) {
	if n == nil {
		return
	}
	w.modify(n)
	w.usage.declare(n)
}

func (w *Walker) VisitIdentifier(n *ast.Identifier) {
	if n == nil {
		return
	}
	if n.ScopeContext == ast.UnresolvedMark {
		mark := w.lookupContext(n.Name)
		if mark == ast.UnresolvedMark {
			return
		}
		n.ScopeContext = mark
	}
	w.usage.use(n.ToId(), w.identType)
}
