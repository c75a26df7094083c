package coproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtrVecGrowAndShrink(t *testing.T) {
	v := NewPtrVec()
	require.Equal(t, initPtrVecSz, v.Cap())

	for i := 0; i < 9; i++ {
		v.Push(i)
	}
	assert.Equal(t, 9, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 16)

	for v.Len() > 2 {
		v.SwapDelete(0)
		v.Trim(v.Len())
	}
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, initPtrVecSz, v.Cap(), "capacity must never shrink below initPtrVecSz")
}

func TestPtrVecSwapDeleteTail(t *testing.T) {
	v := NewPtrVec()
	v.Push("a")
	v.Push("b")
	v.Push("c")

	got := v.SwapDelete(2)
	assert.Nil(t, got)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, "a", v.At(0))
	assert.Equal(t, "b", v.At(1))
}

func TestPtrVecSwapDeleteMiddle(t *testing.T) {
	v := NewPtrVec()
	v.Push("a")
	v.Push("b")
	v.Push("c")

	got := v.SwapDelete(0)
	assert.Equal(t, "c", got)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, "c", v.At(0))
	assert.Equal(t, "b", v.At(1))
}

func TestPtrVecNoShrinkBelowMin(t *testing.T) {
	v := NewPtrVec()
	v.Push(1)
	v.Trim(v.Len())
	assert.Equal(t, initPtrVecSz, v.Cap())
}
