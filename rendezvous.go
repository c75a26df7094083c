package coproc

// attemptRendezvous pairs a blocked writer with a blocked reader: it
// requires src to be BlockedWriting and dst to be BlockedReading,
// otherwise it fails without side effects. On success it copies the
// single payload word src.UpcallArgs[1] into the slot dst.UpcallArgs[0]
// names, and transitions both procs back to Running. Mirrors
// attempt_rendezvous.
func attemptRendezvous(src, dst *Proc) bool {
	if src.State != BlockedWriting || dst.State != BlockedReading {
		return false
	}
	sval := src.UpcallArgs[1]
	slot := dst.UpcallArgs[0].(*any)
	*slot = sval

	transition(src, BlockedWriting, Running)
	transition(dst, BlockedReading, Running)
	rtLogf("rendezvous successful, copying val %v to dst proc %p", sval, dst)
	return true
}

// send implements the send upcall: it rebinds chan to src as sender,
// and either completes immediately via rendezvous with the port's
// owner or queues chan on the port's writer vector. A send to a port
// with no owning proc is a dead send: logged and discarded, leaving
// src un-blocked in CallingC (the driver then resets it to Running).
// Mirrors upcall_send.
func send(src *Proc, c *Chan) {
	c.Proc = src
	if c.Port.Proc == nil {
		rtLogf("*** DEAD SEND *** (chan %p, port has no owner)", c)
		return
	}
	port := c.Port
	transition(src, CallingC, BlockedWriting)
	if !attemptRendezvous(src, port.Proc) && !c.queued {
		c.idx = port.Writers.Len()
		port.Writers.Push(c)
		c.queued = true
	}
}

// recv implements the recv upcall: only port's owner may call it. It
// blocks dst, then if the writer vector is non-empty, picks one
// writer uniformly at random and attempts rendezvous with it; on
// success that writer is removed from the vector. If the vector is
// empty, or the chosen rendezvous somehow fails, dst is left blocked.
// Mirrors upcall_recv.
func recv(dst *Proc, port *Port) {
	if port.Proc != dst {
		panic("coproc: recv called by a proc that does not own the port")
	}
	transition(dst, CallingC, BlockedReading)
	if port.Writers.Len() == 0 {
		return
	}
	i := int(dst.RT.rng.Uint64() % uint64(port.Writers.Len()))
	schan := port.Writers.At(i).(*Chan)
	if schan.idx != i {
		panic("coproc: writer vector index mismatch")
	}
	src := schan.Proc
	if attemptRendezvous(src, dst) {
		chanVecSwapDelete(port.Writers, schan)
		port.Writers.Trim(port.Writers.Len())
		schan.queued = false
	}
}
