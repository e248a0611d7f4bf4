package ast

// opaque reports whether n starts a new this/arguments binding.
func opaque(n Node) bool {
	switch n.(type) {
	case *FunctionLiteral, *Accessor:
		return true
	}
	return false
}

// scanBody runs f over the lambda's parameters and body. Nested functions
// other than arrows are skipped unless deep is set.
func scanBody(l *Lambda, deep bool, f func(Node) bool) bool {
	found := false
	visit := func(n, _ Node) bool {
		if found || (!deep && opaque(n)) {
			return false
		}
		if f(n) {
			found = true
			return false
		}
		return true
	}
	for _, p := range l.Params {
		Inspect(p, visit)
	}
	for i := range l.Body {
		Inspect(l.Body[i].Stmt, visit)
	}
	return found
}

// UsesArguments reports whether the lambda reads its own arguments object.
func UsesArguments(l *Lambda) bool {
	return scanBody(l, false, func(n Node) bool {
		id, ok := n.(*Identifier)
		return ok && id.Name == "arguments"
	})
}

// ContainsThis reports whether the lambda refers to its own this.
func ContainsThis(l *Lambda) bool {
	return scanBody(l, false, func(n Node) bool {
		_, ok := n.(*ThisExpression)
		return ok
	})
}

// Pinned reports whether the lambda's scope is reachable from a direct eval
// anywhere inside it, which forbids moving or renaming anything in it.
func Pinned(l *Lambda) bool {
	return scanBody(l, true, isDirectEval)
}

// ProgramPinned is Pinned for the top-level scope.
func ProgramPinned(p *Program) bool {
	return scanBody(&Lambda{Body: p.Body}, true, isDirectEval)
}

func isDirectEval(n Node) bool {
	call, ok := n.(*CallExpression)
	if !ok {
		return false
	}
	id, ok := call.Callee.Expr.(*Identifier)
	return ok && id.Name == "eval" && !id.Resolved()
}
