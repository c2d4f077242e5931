package monkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKindNames(t *testing.T) {
	assert.Equal(t, "INTEGER", KindInt.String())
	assert.Equal(t, "BOOLEAN", KindBool.String())
	assert.Equal(t, "RETURN_VALUE", KindReturn.String())
	assert.Equal(t, "KIND(99)", ValueKind(99).String())
}

func TestNewReturnDoesNotDoubleBox(t *testing.T) {
	inner := NewReturn(NewInt(3))
	outer := NewReturn(inner)
	assert.Equal(t, KindReturn, outer.Kind())
	assert.Equal(t, NewInt(3), outer.Unwrap())
	assert.Equal(t, NewInt(3), NewInt(3).Unwrap())
}

func TestValueEqual(t *testing.T) {
	fn := NewFunction(&Function{})
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"ints", NewInt(1), NewInt(1), true},
		{"different ints", NewInt(1), NewInt(2), false},
		{"kinds differ", NewInt(1), NewString("1"), false},
		{"nulls", NewNull(), NewNull(), true},
		{"nested arrays", NewArray([]Value{NewArray([]Value{NewInt(1)})}), NewArray([]Value{NewArray([]Value{NewInt(1)})}), true},
		{"array lengths", NewArray([]Value{NewInt(1)}), NewArray(nil), false},
		{"same function", fn, fn, true},
		{"distinct functions", fn, NewFunction(&Function{}), false},
		{"errors by message", NewError("boom %d", 1), NewError("boom 1"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestAccessorsOnWrongKindReturnZero(t *testing.T) {
	v := NewString("x")
	assert.Zero(t, v.Int())
	assert.False(t, v.Bool())
	assert.Nil(t, v.Array())
	assert.Nil(t, v.Function())
	assert.Nil(t, v.Builtin())
	assert.Empty(t, v.ErrorMessage())
	assert.Empty(t, NewInt(1).Str())
	assert.Nil(t, NewError("x").ErrorFrames())
}
