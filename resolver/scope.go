package resolver

import (
	"github.com/banyudu/tsterser-sub002/ast"
	"github.com/banyudu/tsterser-sub002/token"
)

type Scope struct {
	parent *Scope

	ctx ast.ScopeContext

	// declaredSymbols maps each name to the token that declared it.
	declaredSymbols map[string]token.Token
}
