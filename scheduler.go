package coproc

// addProcToStateVec writes proc.idx and pushes it onto the vector for
// its current State. Mirrors add_proc_to_state_vec.
func addProcToStateVec(proc *Proc) {
	v := proc.RT.vecFor(proc.State)
	proc.idx = v.Len()
	v.Push(proc)
}

// procVecSwapDelete swap-deletes proc out of v and fixes up the idx of
// whatever proc was swapped into its old slot. Mirrors proc_vec_swapdel.
func procVecSwapDelete(v *PtrVec, proc *Proc) {
	if v.At(proc.idx).(*Proc) != proc {
		panic("coproc: scheduler vector corrupted: v.data[proc.idx] != proc")
	}
	moved := v.SwapDelete(proc.idx)
	if moved != nil {
		moved.(*Proc).idx = proc.idx
	}
}

// removeProcFromStateVec pulls proc out of its current vector and
// applies the shrink policy. Mirrors remove_proc_from_state_vec.
func removeProcFromStateVec(proc *Proc) {
	v := proc.RT.vecFor(proc.State)
	procVecSwapDelete(v, proc)
	v.Trim(proc.RT.nLiveProcs())
}

// transition asserts proc is currently in state src, moves it to the
// vector for dst, and updates its State field. Mirrors
// proc_state_transition.
func transition(proc *Proc, src, dst ProcState) {
	if proc.State != src {
		panic("coproc: transition precondition violated: proc not in expected state")
	}
	removeProcFromStateVec(proc)
	proc.State = dst
	addProcToStateVec(proc)
}

// sched returns a uniformly random runnable proc. If no proc is
// runnable but some are blocked, this is a deadlock and the caller
// must terminate the program (see Run). Mirrors sched,
// minus the process-terminating side effect, which the driver owns.
func sched(rt *Runtime) (*Proc, bool) {
	if rt.runningProcs.Len() > 0 {
		i := int(rt.rng.Uint64() % uint64(rt.runningProcs.Len()))
		return rt.runningProcs.At(i).(*Proc), true
	}
	return nil, false
}
