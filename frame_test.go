package coproc

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeInitialFrameLayout(t *testing.T) {
	stk := newStackSegment()
	proc := &Proc{}
	const mainCode = uintptr(0xdeadbeef)

	sp := synthesizeInitialFrame(stk, proc, mainCode)

	base := uintptr(unsafe.Pointer(&stk.Data[0]))
	// The aligned top of the frame sits (3+nCalleeSaves) words above
	// the returned sp; 7 words x 8 bytes leaves sp == 8 (mod 16), the
	// call-entry state a resumed proc expects (a call on a 16-aligned
	// stack pushes one 8-byte return address).
	alignedTop := sp + uintptr(3+nCalleeSaves)*wordSize
	require.Zero(t, alignedTop%16, "frame top must sit on the 16-byte boundary")
	require.EqualValues(t, 8, sp%16, "sp must land in call-entry alignment below the frame top")

	off := int(sp - base)
	readWord := func(o int) uint64 {
		return binary.NativeEndian.Uint64(stk.Data[o : o+wordSize])
	}

	// cs0..cs3 are the zeroed callee-saves, at offsets off, off+8, off+16, off+24
	for j := 0; j < nCalleeSaves; j++ {
		assert.Zero(t, readWord(off+j*wordSize), "callee-save slot %d must be zeroed", j)
	}

	activationOff := off + nCalleeSaves*wordSize
	assert.Equal(t, uint64(mainCode), readWord(activationOff), "activation PC")
	assert.Zero(t, readWord(activationOff+wordSize), "fake retpc spacer must be zero")
	assert.Zero(t, readWord(activationOff+2*wordSize), "fake out-pointer spacer must be zero")
	assert.Equal(t, uint64(uintptr(unsafe.Pointer(proc))), readWord(activationOff+3*wordSize), "proc self-pointer")
}

func TestSynthesizeInitialFrameLiveBytes(t *testing.T) {
	stk := newStackSegment()
	proc := &Proc{}
	sp := synthesizeInitialFrame(stk, proc, uintptr(0x1))
	base := uintptr(unsafe.Pointer(&stk.Data[0]))
	assert.Equal(t, len(stk.Data)-int(sp-base), stk.Live)
}
