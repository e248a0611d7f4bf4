package resolver

import (
	"github.com/banyudu/tsterser-sub002/ast"
	"github.com/banyudu/tsterser-sub002/token"
)

// Hoister declares the variables of a statement list before the list is
// resolved, so that a reference may precede its declaration.
type Hoister struct {
	ast.NoopVisitor

	resolver *Walker
}

func NewHoister(resolver *Walker) *Hoister {
	return &Hoister{resolver: resolver}
}

func (h *Hoister) VisitStatements(n *ast.Statements) {
	for i := range *n {
		if decl, ok := (*n)[i].Stmt.(*ast.VariableDeclaration); ok {
			decl.VisitWith(h)
		}
	}
}

func (h *Hoister) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	for _, d := range n.List {
		if d.Target == nil {
			continue
		}
		if d.Target.Kind == token.Undetermined {
			d.Target.Kind = n.Kind
		}
		h.resolver.modify(d.Target)
	}
}

func (h *Hoister) VisitExpression(n *ast.Expression)                     {}
func (h *Hoister) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {}
func (h *Hoister) VisitFunctionLiteral(n *ast.FunctionLiteral)           {}
