package coproc

// handleUpcall decodes proc.UpcallCode and performs the requested
// host-side action. It is only ever called when proc.State ==
// CallingC. After dispatch, UpcallCode is cleared to OpLogUint32 (the
// zero value), mirroring the source's "zero the immediates code slot"
// step; callers must never read UpcallCode again until the next
// CallingC return sets it anew.
//
// Every single-pointer opcode (new_port, new_chan, del_port, del_chan,
// malloc, free, send's chan argument) uses UpcallArgs[0] consistently.
// A prior runtime this dispatcher's contract is modeled on read
// del_chan's argument from args[1] instead of args[0] while new_chan
// wrote its result to args[0], an asymmetry flagged there as a likely
// bug. This module standardizes on args[0] everywhere instead; see
// DESIGN.md.
func handleUpcall(proc *Proc) {
	args := &proc.UpcallArgs
	rtLogf("proc %p calling upcall #%d", proc, proc.UpcallCode)

	proc.CurrTicks++

	switch proc.UpcallCode {
	case OpLogUint32:
		upcallLogUint32(args[0].(uint32))
	case OpLogStr:
		upcallLogStr(args[0].(string))
	case OpSpawn:
		out := args[0].(*any)
		*out = spawnProc(proc.RT, args[1].(*Prog))
	case OpSched:
		addProcToStateVec(args[0].(*Proc))
	case OpCheckExpr:
		upcallCheckExpr(proc, args[0].(bool))
	case OpMalloc:
		out := args[0].(*any)
		*out = upcallMalloc(proc, args[1].(int))
	case OpFree:
		upcallFree(proc, args[0].([]byte))
	case OpNewPort:
		out := args[0].(*any)
		*out = newPort(proc)
	case OpDelPort:
		delPort(args[0].(*Port))
	case OpNewChan:
		out := args[0].(*any)
		*out = newChan(proc, args[1].(*Port))
	case OpDelChan:
		delChan(args[0].(*Chan))
	case OpSend:
		send(proc, args[0].(*Chan))
	case OpRecv:
		recv(proc, args[1].(*Port))
	}

	proc.UpcallCode = OpLogUint32
}

func upcallLogUint32(i uint32) {
	rtLogf("log_uint32(0x%x)", i)
}

func upcallLogStr(s string) {
	rtLogf("log_str(%q)", s)
}

// spawnProc allocates a new proc for prog, registered into no vector
// yet. The caller (handleUpcall's OpSpawn case) hands the pointer back
// to proc code via the out-slot, and proc code is expected to register
// it with the OpSched upcall when ready to run it. Mirrors spawn_proc.
func spawnProc(rt *Runtime, prog *Prog) *Proc {
	return newProc(rt, prog)
}

// upcallCheckExpr forces proc to Exiting when cond is false, recording
// ErrCheckFailed for diagnostics. Mirrors upcall_check_expr.
func upcallCheckExpr(proc *Proc, cond bool) {
	if !cond {
		rtLogf("*** CHECK FAILED ***")
		proc.lastErr = ErrCheckFailed
		proc.State = Exiting
	}
}

// upcallMalloc allocates nbytes, charges them to proc's curr_mem
// counter (tracked but never enforced against a budget), and returns
// them. A negative nbytes panics with allocFailure, which Run's
// recover in driver.go turns into ExitAllocFailed; a genuine Go
// out-of-memory condition is a fatal runtime error and is not
// intercepted.
func upcallMalloc(proc *Proc, nbytes int) []byte {
	if nbytes < 0 {
		panic(allocFailure{requested: nbytes})
	}
	p := make([]byte, nbytes)
	proc.CurrMem += uintptr(nbytes)
	rtLogf("malloc(%d) = %p", nbytes, p)
	return p
}

func upcallFree(proc *Proc, p []byte) {
	if n := uintptr(len(p)); n <= proc.CurrMem {
		proc.CurrMem -= n
	}
	rtLogf("free(%p)", p)
}
