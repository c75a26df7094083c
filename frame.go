package coproc

import (
	"encoding/binary"
	"unsafe"
)

// wordSize is the pointer-sized unit all upcall arguments and frame
// slots are measured in. This module targets 64-bit hosts, matching
// the uintptr_t-everywhere convention of the runtime this layout
// mirrors.
const wordSize = 8

// nCalleeSaves is the number of zeroed callee-save slots synthesized
// below the activation record. Platform specific; 4 matches the
// reference runtime's x86-64 layout.
const nCalleeSaves = 4

// synthesizeInitialFrame seeds the top of stk with the frame layout a
// c-to-proc trampoline expects to resume into. sp is first placed at
// the last word of stk's data region and aligned down to 16 bytes;
// from there, four words are written downward (proc pointer, a zero
// fake out-pointer, a zero fake return PC, and mainCode as the
// "activation" PC), followed by nCalleeSaves
// zeroed words. The final stack pointer lands on the last callee-save
// word, exactly (3+nCalleeSaves) words below the aligned top.
//
// This layout is a contract with the external trampoline and must be
// reproduced bit-for-bit. ParkingTrampoline (trampoline.go) does not
// itself consume these bytes; it is a swappable Go-native stand-in
// for an assembly trampoline that would.
func synthesizeInitialFrame(stk *StackSegment, proc *Proc, mainCode uintptr) uintptr {
	base := uintptr(unsafe.Pointer(&stk.Data[0]))
	tos := len(stk.Data) - wordSize
	sp := (base + uintptr(tos)) &^ 0xf

	cur := int(sp - base)
	write := func(v uint64) {
		binary.NativeEndian.PutUint64(stk.Data[cur:cur+wordSize], v)
		cur -= wordSize
	}
	write(uint64(uintptr(unsafe.Pointer(proc))))
	write(0)
	write(0)
	write(uint64(mainCode))
	for j := 0; j < nCalleeSaves; j++ {
		write(0)
	}

	finalOff := cur + wordSize
	stk.Live = len(stk.Data) - finalOff
	return base + uintptr(finalOff)
}
