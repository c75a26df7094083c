package coproc

// Port is the receive-side endpoint of a message channel, owned by
// exactly one proc at creation time. It holds the set of currently
// blocked writer channels targeting it.
type Port struct {
	LiveRefcnt int
	WeakRefcnt int
	Proc       *Proc
	Writers    *PtrVec
}

// newPort allocates a port owned by proc. Mirrors upcall_new_port.
func newPort(proc *Proc) *Port {
	return &Port{
		Proc:    proc,
		Writers: NewPtrVec(),
	}
}

// delPort asserts the port is unreferenced and destroys it. Any
// channel still queued as a blocked writer is failed with ErrDeadPort
// and woken back to Running rather than left to dangle.
func delPort(port *Port) {
	if port.LiveRefcnt != 0 {
		panic("coproc: del_port on port with nonzero live refcount")
	}
	for port.Writers.Len() > 0 {
		c := port.Writers.At(0).(*Chan)
		port.Writers.SwapDelete(0)
		port.Writers.Trim(port.Writers.Len())
		c.queued = false
		if c.Proc != nil && c.Proc.State == BlockedWriting {
			c.Proc.lastErr = ErrDeadPort
			transition(c.Proc, BlockedWriting, Running)
		}
	}
}
