package coproc

// initStkBytes is the default size of a newly allocated stack segment,
// matching the source's init_stk_bytes.
const initStkBytes = 65536

// StackSegment is a heap-owned chunk of a proc's execution stack plus
// bookkeeping metadata. Segments chain via Next/Prev so a future
// implementation can grow a stack across multiple segments; this
// module only ever allocates one segment per proc, segment chaining
// is reserved for the future.
type StackSegment struct {
	Prev, Next *StackSegment
	// DebugHandle stands in for the source's valgrind_id: an opaque
	// token a memory debugger could use to track this region. Left
	// unset by default.
	DebugHandle uint32
	Size        int
	Live        int
	Data        []byte
}

// newStackSegment allocates a zeroed segment of initStkBytes.
func newStackSegment() *StackSegment {
	return &StackSegment{
		Size: initStkBytes,
		Data: make([]byte, initStkBytes),
	}
}

// free walks the Next chain and drops each segment's backing storage.
// Go's GC reclaims the memory; this exists to mirror del_stk's walk and
// to give tests an observable point at which the chain is torn down.
func (s *StackSegment) free() {
	seg := s
	for seg != nil {
		nxt := seg.Next
		seg.Data = nil
		seg = nxt
	}
}
