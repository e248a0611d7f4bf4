package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Plus, "+"},
		{StrictNotEqual, "!=="},
		{Typeof, "typeof"},
		{Const, "const"},
		{Undetermined, "UNKNOWN"},
		{Token(999), "token(999)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tok.String())
	}
}

func TestPrecedence(t *testing.T) {
	assert.Greater(t, Multiply.Precedence(), Plus.Precedence())
	assert.Greater(t, LogicalAnd.Precedence(), LogicalOr.Precedence())
	assert.Equal(t, 0, Not.Precedence())
	assert.True(t, AddAssign.IsAssign())
	assert.False(t, Plus.IsAssign())
	assert.True(t, LogicalOr.IsLogical())
	assert.True(t, InstanceOf.IsKeyword())
}
