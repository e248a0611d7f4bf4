package ast

import "github.com/banyudu/tsterser-sub002/output"

// PropKey is the key of a property: KeyString, KeyNumber, *SymbolMethod or
// *ComputedKey.
type PropKey interface {
	_propKey()
}

type (
	// KeyString is a bare key written as a name or string.
	KeyString string
	// KeyNumber is a bare numeric key.
	KeyNumber float64

	// ComputedKey is a [expr] key.
	ComputedKey struct {
		LeftBracket Idx
		Expr        *Expression
	}
)

func (KeyString) _propKey()     {}
func (KeyNumber) _propKey()     {}
func (*SymbolMethod) _propKey() {}
func (*ComputedKey) _propKey()  {}

func (k KeyNumber) String() string { return output.FormatNumber(float64(k)) }

// KeyName returns the name a non-computed key stands for.
func KeyName(k PropKey) (string, bool) {
	switch k := k.(type) {
	case KeyString:
		return string(k), true
	case KeyNumber:
		return k.String(), true
	case *SymbolMethod:
		return k.Name, true
	}
	return "", false
}

type (
	// KeyValue is key: value in an object literal.
	KeyValue struct {
		Idx   Idx
		Key   PropKey
		Value *Expression
		Quote byte
	}

	Getter struct {
		Idx    Idx
		Key    PropKey
		Value  *Accessor
		Quote  byte
		Static bool
	}

	Setter struct {
		Idx    Idx
		Key    PropKey
		Value  *Accessor
		Quote  byte
		Static bool
	}

	// ConciseMethod is key(params){body} in an object or class literal.
	ConciseMethod struct {
		Idx    Idx
		Key    PropKey
		Value  *Accessor
		Quote  byte
		Static bool

		Async, Generator bool
	}
)

func (n *KeyValue) Idx0() Idx      { return n.Idx }
func (n *KeyValue) Idx1() Idx      { return n.Value.Idx1() }
func (n *Getter) Idx0() Idx        { return n.Idx }
func (n *Getter) Idx1() Idx        { return n.Value.Idx1() }
func (n *Setter) Idx0() Idx        { return n.Idx }
func (n *Setter) Idx1() Idx        { return n.Value.Idx1() }
func (n *ConciseMethod) Idx0() Idx { return n.Idx }
func (n *ConciseMethod) Idx1() Idx { return n.Value.Idx1() }

func (*KeyValue) _prop()      {}
func (*Getter) _prop()        {}
func (*Setter) _prop()        {}
func (*ConciseMethod) _prop() {}

func (n *KeyValue) PropKey() PropKey      { return n.Key }
func (n *Getter) PropKey() PropKey        { return n.Key }
func (n *Setter) PropKey() PropKey        { return n.Key }
func (n *ConciseMethod) PropKey() PropKey { return n.Key }

func (n *KeyValue) IsStatic() bool      { return false }
func (n *Getter) IsStatic() bool        { return n.Static }
func (n *Setter) IsStatic() bool        { return n.Static }
func (n *ConciseMethod) IsStatic() bool { return n.Static }

func (n *KeyValue) ComputedKey() bool {
	_, ok := n.Key.(*ComputedKey)
	return ok
}

func (n *Getter) ComputedKey() bool        { return methodKeyComputed(n.Key) }
func (n *Setter) ComputedKey() bool        { return methodKeyComputed(n.Key) }
func (n *ConciseMethod) ComputedKey() bool { return methodKeyComputed(n.Key) }

func methodKeyComputed(k PropKey) bool {
	_, ok := k.(*SymbolMethod)
	return !ok
}

// keyExpr returns the expression of a computed key, or nil.
func keyExpr(k PropKey) Expr {
	if ck, ok := k.(*ComputedKey); ok && ck.Expr != nil {
		return ck.Expr.Expr
	}
	return nil
}

// accessorValue adapts a possibly nil accessor to an Expr.
func accessorValue(a *Accessor) Expr {
	if a == nil {
		return nil
	}
	return a
}
