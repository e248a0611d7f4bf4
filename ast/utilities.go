package ast

import "golang.org/x/exp/slices"

// RemoveVisitor is a visitor that can remove nodes from lists.
type RemoveVisitor struct {
	NoopVisitor
	remove bool
}

// Remove marks the current list element for removal.
//
// If you override a Visit method that has deletion logic:
//   - [RemoveVisitor.VisitStatements]
//   - [RemoveVisitor.VisitExpressions]
//   - [RemoveVisitor.VisitProperties]
//
// make sure to either call the base implementation or handle removal manually.
func (v *RemoveVisitor) Remove() {
	v.remove = true
}

func (v *RemoveVisitor) VisitStatements(n *Statements) {
	count := len(*n)
	for i := 0; i < count; {
		(*n)[i].VisitWith(v.V)
		if v.remove {
			v.remove = false
			*n = slices.Delete(*n, i, i+1)
			count--
		} else {
			i++
		}
	}
}

func (v *RemoveVisitor) VisitExpressions(n *Expressions) {
	count := len(*n)
	for i := 0; i < count; {
		(*n)[i].VisitWith(v.V)
		if v.remove {
			v.remove = false
			*n = slices.Delete(*n, i, i+1)
			count--
		} else {
			i++
		}
	}
}

func (v *RemoveVisitor) VisitProperties(n *Properties) {
	count := len(*n)
	for i := 0; i < count; {
		(*n)[i].VisitWith(v.V)
		if v.remove {
			v.remove = false
			*n = slices.Delete(*n, i, i+1)
			count--
		} else {
			i++
		}
	}
}

// PruneEmpty removes empty statements from every statement list below n and
// reports how many were removed.
func PruneEmpty(n Node) int {
	p := &emptyPruner{}
	p.V = p
	n.VisitWith(p)
	return p.removed
}

type emptyPruner struct {
	RemoveVisitor
	removed int
}

func (p *emptyPruner) VisitEmptyStatement(*EmptyStatement) {
	p.removed++
	p.Remove()
}
