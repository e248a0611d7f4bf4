package ast

import (
	"regexp"

	"github.com/banyudu/tsterser-sub002/token"
)

// Compressor is what a node sees of the optimizer while it is being
// optimized.
type Compressor interface {
	// Option returns the value of a named option, or nil when unset.
	Option(name string) any
	// Parent returns the n-th enclosing node; 0 is the immediate parent.
	Parent(n int) Node
	// Definition returns the usage record of a resolved variable, or nil.
	Definition(id Id) *Definition
	Warn(msg string, node Node, keysAndValues ...any)
}

// Definition records how a variable is used.
type Definition struct {
	Id   Id
	Kind token.Token

	References   int
	Assignments  int
	Declarations int
}

// TopLevel reports whether the variable lives in the program scope.
func (d *Definition) TopLevel() bool {
	return d.Id.ScopeContext == TopLevelMark
}

func optionBool(c Compressor, name string) bool {
	if c == nil {
		return false
	}
	b, _ := c.Option(name).(bool)
	return b
}

func optionInt(c Compressor, name string) int {
	if c == nil {
		return 0
	}
	i, _ := c.Option(name).(int)
	return i
}

func parent(c Compressor) Node {
	if c == nil {
		return nil
	}
	return c.Parent(0)
}

func (n *Identifier) Optimize(c Compressor) Expr     { return n }
func (n *StringLiteral) Optimize(c Compressor) Expr  { return n }
func (n *NumberLiteral) Optimize(c Compressor) Expr  { return n }
func (n *BooleanLiteral) Optimize(c Compressor) Expr { return n }
func (n *NullLiteral) Optimize(c Compressor) Expr    { return n }
func (n *ThisExpression) Optimize(c Compressor) Expr { return n }
func (n *ArrayLiteral) Optimize(c Compressor) Expr   { return n }
func (n *ObjectLiteral) Optimize(c Compressor) Expr  { return n }
func (n *ClassLiteral) Optimize(c Compressor) Expr   { return n }
func (n *FunctionLiteral) Optimize(c Compressor) Expr {
	return n
}
func (n *ArrowFunctionLiteral) Optimize(c Compressor) Expr {
	return n
}
func (n *Accessor) Optimize(c Compressor) Expr         { return n }
func (n *CallExpression) Optimize(c Compressor) Expr   { return n }
func (n *MemberExpression) Optimize(c Compressor) Expr { return n }
func (n *AssignExpression) Optimize(c Compressor) Expr { return n }
func (n *BinaryExpression) Optimize(c Compressor) Expr { return n }
func (n *UnaryExpression) Optimize(c Compressor) Expr  { return n }

// Optimize drops elements whose value is discarded and which have no
// effects.
func (n *SequenceExpression) Optimize(c Compressor) Expr {
	if !optionBool(c, "side_effects") {
		return n
	}
	last := len(n.Sequence) - 1
	list := make([]Expr, 0, len(n.Sequence))
	changed := false
	for i, e := range n.Sequence {
		if i == last {
			list = append(list, e.Expr)
			break
		}
		r := e.Expr.DropSideEffectFree(c, false)
		if r != e.Expr {
			changed = true
		}
		list = append(list, r)
	}
	if !changed {
		return n
	}
	return Sequence(list...)
}

func (n *EmptyStatement) Optimize(c Compressor) Stmt { return n }

// Optimize reduces the expression to what must still be evaluated.
func (n *ExpressionStatement) Optimize(c Compressor) Stmt {
	if !optionBool(c, "side_effects") {
		return n
	}
	r := n.Expression.Expr.DropSideEffectFree(c, true)
	switch r {
	case nil:
		return &EmptyStatement{Semicolon: n.Idx0()}
	case n.Expression.Expr:
		return n
	}
	return &ExpressionStatement{Expression: &Expression{r}}
}

// Optimize turns return void 0 into a bare return, except as the whole
// body of an arrow, where it prints braceless as ()=>void 0.
func (n *ReturnStatement) Optimize(c Compressor) Stmt {
	if a, ok := parent(c).(*ArrowFunctionLiteral); ok && len(a.Body) == 1 {
		return n
	}
	if n.Argument != nil && IsUndefined(n.Argument.Expr) {
		return &ReturnStatement{Return: n.Return}
	}
	return n
}

// Optimize drops declarators of variables that are never read or
// reassigned. Effects of a dropped initializer move into the next kept
// initializer, or become an expression statement when nothing is kept.
func (n *VariableDeclaration) Optimize(c Compressor) Stmt {
	if !optionBool(c, "unused") || scopePinned(c) {
		return n
	}
	drop := make([]bool, len(n.List))
	residue := make([]Expr, len(n.List))
	dropped := 0
	for i, d := range n.List {
		if !n.unused(c, d) {
			continue
		}
		drop[i] = true
		dropped++
		if d.Initializer != nil {
			residue[i] = d.Initializer.Expr.DropSideEffectFree(c, false)
		}
	}
	if dropped == 0 {
		return n
	}
	if dropped == len(n.List) {
		for _, d := range n.List {
			c.Warn("Dropping unused variable", d.Target, "name", d.Target.Name)
		}
		r := Sequence(residue...)
		if r == nil {
			return &EmptyStatement{Semicolon: n.Idx}
		}
		return &ExpressionStatement{Expression: &Expression{r}}
	}

	// Residue needs a later initializer to run in; keep the last dropped
	// declarator that has none.
	sink := false
	for i := len(n.List) - 1; i >= 0; i-- {
		if drop[i] {
			if residue[i] != nil && !sink {
				drop[i] = false
				residue[i] = nil
				sink = true
			}
			continue
		}
		if n.List[i].Initializer != nil {
			sink = true
		}
	}

	out := &VariableDeclaration{Idx: n.Idx, Kind: n.Kind}
	var pending []Expr
	for i, d := range n.List {
		if drop[i] {
			if residue[i] != nil {
				pending = append(pending, residue[i])
			}
			continue
		}
		if len(pending) > 0 && d.Initializer != nil {
			init := Sequence(append(pending, d.Initializer.Expr)...)
			d = &VariableDeclarator{Target: d.Target, Initializer: &Expression{init}}
			pending = nil
		}
		out.List = append(out.List, d)
	}
	if len(out.List) == len(n.List) {
		return n
	}
	for i, d := range n.List {
		if drop[i] {
			c.Warn("Dropping unused variable", d.Target, "name", d.Target.Name)
		}
	}
	return out
}

// scopePinned reports whether the scope holding the statement being
// optimized can be read by a direct eval.
func scopePinned(c Compressor) bool {
	if c == nil {
		return false
	}
	for i := 0; ; i++ {
		switch p := c.Parent(i).(type) {
		case nil:
			return false
		case *FunctionLiteral:
			return Pinned(&p.Lambda)
		case *ArrowFunctionLiteral:
			return Pinned(&p.Lambda)
		case *Accessor:
			return Pinned(&p.Lambda)
		case *Program:
			return ProgramPinned(p)
		}
	}
}

func (n *VariableDeclaration) unused(c Compressor, d *VariableDeclarator) bool {
	if d.Target == nil || c == nil {
		return false
	}
	def := c.Definition(d.Target.ToId())
	if def == nil || def.References > 0 || def.Assignments > 0 {
		return false
	}
	return !def.TopLevel() || optionBool(c, "toplevel")
}

// isProtoKey reports whether k is a bare __proto__ key.
func isProtoKey(k PropKey) bool {
	name, ok := KeyName(k)
	return ok && name == "__proto__"
}

// liftKey turns a computed key that is a string or number literal into a
// bare key.
func liftKey(c Compressor, key PropKey, quote byte, method bool) (PropKey, byte, bool) {
	if !optionBool(c, "computed_props") {
		return key, quote, false
	}
	ck, ok := key.(*ComputedKey)
	if !ok || ck.Expr == nil {
		return key, quote, false
	}
	var name string
	q := quote
	switch lit := ck.Expr.Expr.(type) {
	case *StringLiteral:
		name, q = lit.Value, lit.Quote
	case *NumberLiteral:
		name, q = KeyNumber(lit.Value).String(), 0
	default:
		return key, quote, false
	}
	if name == "__proto__" {
		return key, quote, false
	}
	if _, inClass := parent(c).(*ClassLiteral); inClass && name == "constructor" {
		return key, quote, false
	}
	if method {
		return &SymbolMethod{Idx: ck.Expr.Idx0(), Name: name}, q, true
	}
	return KeyString(name), q, true
}

func (n *KeyValue) Optimize(c Compressor) Prop {
	self := n
	if key, quote, ok := liftKey(c, n.Key, n.Quote, false); ok {
		self = &KeyValue{Idx: n.Idx, Key: key, Value: n.Value, Quote: quote}
	}
	if m := self.toMethod(c); m != nil {
		return m
	}
	return self
}

// toMethod rewrites key: function(){} into key(){}.
func (n *KeyValue) toMethod(c Compressor) *ConciseMethod {
	if optionInt(c, "ecma") < 2015 || n.Value == nil || isProtoKey(n.Key) {
		return nil
	}
	switch um := c.Option("unsafe_methods").(type) {
	case bool:
		if !um {
			return nil
		}
	case *regexp.Regexp:
		name, ok := KeyName(n.Key)
		if !ok || !um.MatchString(name) {
			return nil
		}
	default:
		return nil
	}

	var acc *Accessor
	m := &ConciseMethod{Idx: n.Idx, Quote: n.Quote}
	switch fn := n.Value.Expr.(type) {
	case *FunctionLiteral:
		if fn.Name != nil {
			return nil
		}
		acc = &Accessor{Start: fn.Function, End: fn.End, Lambda: fn.Lambda}
		m.Async, m.Generator = fn.Async, fn.Generator
	case *ArrowFunctionLiteral:
		if fn.IsBraceless() || ContainsThis(&fn.Lambda) || UsesArguments(&fn.Lambda) {
			return nil
		}
		acc = &Accessor{Start: fn.Start, End: fn.End, Lambda: fn.Lambda}
		m.Async = fn.Async
	default:
		return nil
	}
	m.Value = acc
	switch k := n.Key.(type) {
	case KeyString:
		m.Key = &SymbolMethod{Idx: n.Idx, Name: string(k)}
	case KeyNumber:
		m.Key = &SymbolMethod{Idx: n.Idx, Name: k.String()}
	default:
		m.Key = k
	}
	return m
}

func (n *Getter) Optimize(c Compressor) Prop {
	if key, quote, ok := liftKey(c, n.Key, n.Quote, true); ok {
		return &Getter{Idx: n.Idx, Key: key, Value: n.Value, Quote: quote, Static: n.Static}
	}
	return n
}

func (n *Setter) Optimize(c Compressor) Prop {
	if key, quote, ok := liftKey(c, n.Key, n.Quote, true); ok {
		return &Setter{Idx: n.Idx, Key: key, Value: n.Value, Quote: quote, Static: n.Static}
	}
	return n
}

func (n *ConciseMethod) Optimize(c Compressor) Prop {
	self := n
	if key, quote, ok := liftKey(c, n.Key, n.Quote, true); ok {
		cp := *n
		cp.Key, cp.Quote = key, quote
		self = &cp
	}
	if kv := self.toArrow(c); kv != nil {
		return kv
	}
	return self
}

// toArrow rewrites key(){return x} in an object literal into key:()=>x.
func (n *ConciseMethod) toArrow(c Compressor) *KeyValue {
	if !optionBool(c, "arrows") || n.Generator || n.Value == nil {
		return nil
	}
	if _, ok := parent(c).(*ObjectLiteral); !ok {
		return nil
	}
	// __proto__: v sets the prototype; the method defines an own property.
	if isProtoKey(n.Key) {
		return nil
	}
	l := &n.Value.Lambda
	if l.ReturnValue() == nil || UsesArguments(l) || ContainsThis(l) || Pinned(l) {
		return nil
	}
	arrow := &ArrowFunctionLiteral{
		Start:  n.Value.Start,
		End:    n.Value.End,
		Lambda: n.Value.Lambda,
		Async:  n.Async,
	}
	key := n.Key
	if sm, ok := key.(*SymbolMethod); ok {
		key = KeyString(sm.Name)
	}
	return &KeyValue{Idx: n.Idx, Key: key, Value: &Expression{arrow}, Quote: n.Quote}
}
