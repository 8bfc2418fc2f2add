package drax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeAlgebra(t *testing.T) {
	t.Run("ConstantPlusConstant", func(t *testing.T) {
		s := Constant(4).Add(Constant(8))
		assert.True(t, s.IsConstant())
		assert.Equal(t, 12, s.Bytes())
	})

	t.Run("DynamicContaminates", func(t *testing.T) {
		assert.False(t, Constant(4).Add(Dynamic(8)).IsConstant())
		assert.False(t, Dynamic(4).Add(Constant(8)).IsConstant())
		assert.False(t, Dynamic(4).Add(Dynamic(8)).IsConstant())
	})

	t.Run("AddBytesAlwaysDynamic", func(t *testing.T) {
		s := Constant(4).AddBytes(3)
		assert.False(t, s.IsConstant())
		assert.Equal(t, 7, s.Bytes())
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var s Size
		assert.True(t, s.IsConstant())
		assert.Zero(t, s.Bytes())
	})
}
