package token

import (
	"strconv"
)

// Token is the set of operators and declaration keywords the node layer prints.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding power of a binary operator. Higher binds
// tighter; 0 means the token is not a binary operator.
func (t Token) Precedence() int {
	switch t {
	case Comma:
		return 1
	case Coalesce:
		return 2
	case LogicalOr:
		return 3
	case LogicalAnd:
		return 4
	case Or:
		return 5
	case ExclusiveOr:
		return 6
	case And:
		return 7
	case Equal, NotEqual, StrictEqual, StrictNotEqual:
		return 8
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf, In:
		return 9
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 10
	case Plus, Minus:
		return 11
	case Multiply, Slash, Remainder:
		return 12
	case Exponent:
		return 13
	}
	return 0
}

// IsAssign reports whether t is an assignment operator.
func (t Token) IsAssign() bool {
	return t >= Assign && t <= CoalesceAssign
}

// IsLogical reports whether t short-circuits its right operand.
func (t Token) IsLogical() bool {
	return t == LogicalAnd || t == LogicalOr || t == Coalesce
}

// IsKeyword reports whether the operator is spelled as a word and therefore
// needs separating whitespace when printed.
func (t Token) IsKeyword() bool {
	switch t {
	case In, InstanceOf, Typeof, Void, Delete, Var, Let, Const:
		return true
	}
	return false
}
