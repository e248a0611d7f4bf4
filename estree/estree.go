// Package estree holds the ESTree (Mozilla AST) records produced when the
// tree is handed to outside tooling.
package estree

import "encoding/json"

// Node is one ESTree record. Keys follow the ESTree field names exactly.
type Node map[string]any

// Type returns the record's "type" field.
func (n Node) Type() string {
	t, _ := n["type"].(string)
	return t
}

// Identifier builds an Identifier record.
func Identifier(name string) Node {
	return Node{"type": "Identifier", "name": name}
}

// Literal builds a Literal record. value is a string, float64, bool or nil.
func Literal(value any) Node {
	return Node{"type": "Literal", "value": value}
}

// List converts a slice of records into the []any shape json and tooling expect.
func List(nodes []Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

// Nullable returns n, or an untyped nil for absent optional children.
func Nullable(n Node) any {
	if n == nil {
		return nil
	}
	return n
}

// Marshal encodes the record as JSON.
func Marshal(n Node) ([]byte, error) {
	return json.Marshal(n)
}
