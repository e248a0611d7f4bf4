package ast

import (
	"errors"
	"fmt"
)

// ErrInvariant is returned by Validate for a malformed tree.
var ErrInvariant = errors.New("invalid tree")

// Validate checks the structural rules of properties: static members only
// in classes, classes hold no key/value pairs, keys have the shape their
// property kind allows, and accessors take the right number of parameters.
func Validate(root Node) error {
	var err error
	Inspect(root, func(n, parent Node) bool {
		if err != nil {
			return false
		}
		p, ok := n.(Prop)
		if !ok {
			return true
		}
		err = validateProp(p, parent)
		return err == nil
	})
	return err
}

func validateProp(p Prop, parent Node) error {
	_, inClass := parent.(*ClassLiteral)
	at := p.Idx0()
	if p.IsStatic() && !inClass {
		return fmt.Errorf("%w: static member outside a class at %d", ErrInvariant, at)
	}
	key := p.PropKey()
	if key == nil {
		return fmt.Errorf("%w: property without key at %d", ErrInvariant, at)
	}
	if ck, ok := key.(*ComputedKey); ok && ck.Expr == nil {
		return fmt.Errorf("%w: empty computed key at %d", ErrInvariant, at)
	}

	var acc *Accessor
	switch p := p.(type) {
	case *KeyValue:
		if inClass {
			return fmt.Errorf("%w: key/value pair in a class body at %d", ErrInvariant, at)
		}
		if _, ok := key.(*SymbolMethod); ok {
			return fmt.Errorf("%w: method symbol as key/value key at %d", ErrInvariant, at)
		}
		if p.Value == nil {
			return fmt.Errorf("%w: property without value at %d", ErrInvariant, at)
		}
		return nil
	case *Getter:
		acc = p.Value
		if acc != nil && len(acc.Params) != 0 {
			return fmt.Errorf("%w: getter with parameters at %d", ErrInvariant, at)
		}
	case *Setter:
		acc = p.Value
		if acc != nil && len(acc.Params) != 1 {
			return fmt.Errorf("%w: setter needs exactly one parameter at %d", ErrInvariant, at)
		}
	case *ConciseMethod:
		acc = p.Value
	}
	switch key.(type) {
	case KeyString, KeyNumber:
		return fmt.Errorf("%w: bare key on %T at %d, expected a method symbol", ErrInvariant, p, at)
	}
	if acc == nil {
		return fmt.Errorf("%w: %T without function at %d", ErrInvariant, p, at)
	}
	return nil
}
