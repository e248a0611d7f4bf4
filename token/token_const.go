package token

const (
	Undetermined Token = iota

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	LogicalAnd // &&
	LogicalOr  // ||
	Coalesce   // ??

	Equal          // ==
	StrictEqual    // ===
	NotEqual       // !=
	StrictNotEqual // !==
	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=

	Assign          // =
	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	QuotientAssign  // /=
	RemainderAssign // %=
	CoalesceAssign  // ??=

	Not        // !
	BitwiseNot // ~
	Comma      // ,

	In
	InstanceOf
	Typeof
	Void
	Delete

	Var
	Let
	Const
)

var token2string = [...]string{
	Plus:               "+",
	Minus:              "-",
	Multiply:           "*",
	Exponent:           "**",
	Slash:              "/",
	Remainder:          "%",
	And:                "&",
	Or:                 "|",
	ExclusiveOr:        "^",
	ShiftLeft:          "<<",
	ShiftRight:         ">>",
	UnsignedShiftRight: ">>>",
	LogicalAnd:         "&&",
	LogicalOr:          "||",
	Coalesce:           "??",
	Equal:              "==",
	StrictEqual:        "===",
	NotEqual:           "!=",
	StrictNotEqual:     "!==",
	Less:               "<",
	Greater:            ">",
	LessOrEqual:        "<=",
	GreaterOrEqual:     ">=",
	Assign:             "=",
	AddAssign:          "+=",
	SubtractAssign:     "-=",
	MultiplyAssign:     "*=",
	QuotientAssign:     "/=",
	RemainderAssign:    "%=",
	CoalesceAssign:     "??=",
	Not:                "!",
	BitwiseNot:         "~",
	Comma:              ",",
	In:                 "in",
	InstanceOf:         "instanceof",
	Typeof:             "typeof",
	Void:               "void",
	Delete:             "delete",
	Var:                "var",
	Let:                "let",
	Const:              "const",
}
