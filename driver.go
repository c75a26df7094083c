package coproc

// Option configures a Run invocation.
type Option func(*runConfig)

type runConfig struct {
	seed       uint64
	trampoline Trampoline
}

// WithSeed deterministically seeds the scheduler's PRNG. Omit for a
// fresh, unpredictable seed on every Run.
func WithSeed(seed uint64) Option {
	return func(c *runConfig) { c.seed = seed }
}

// WithTrampoline overrides the default ParkingTrampoline. Provide this
// to exercise the core against a different c-to-proc glue
// implementation.
func WithTrampoline(t Trampoline) Option {
	return func(c *runConfig) { c.trampoline = t }
}

// Run instantiates a runtime, spawns the root proc from prog, and
// drives the event loop until no procs remain or a fatal condition
// (allocation failure, deadlock) forces early termination. It returns
// an exit code: ExitClean, ExitDeadlock, or ExitAllocFailed, mirroring
// rust_start's contract.
func Run(prog *Prog, opts ...Option) (code int) {
	cfg := runConfig{trampoline: NewParkingTrampoline()}
	for _, o := range opts {
		o(&cfg)
	}

	rtLogf("control is in coproc runtime")
	rt := NewRuntime(cfg.seed)
	defer rt.Close()

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(allocFailure); ok {
				rtLogf("allocation failed, exiting: %v", r)
				code = ExitAllocFailed
				return
			}
			panic(r)
		}
	}()

	root := newProc(rt, prog)
	addProcToStateVec(root)

	proc, ok := sched(rt)
	if !ok {
		rtLogf("finished main loop")
		return ExitClean
	}

	for {
		proc.State = Running
		cfg.trampoline.Resume(proc)

		switch proc.State {
		case Running:
			// proc yielded control voluntarily without an upcall or
			// exit; nothing to do, it stays runnable.
		case CallingC:
			handleUpcall(proc)
			if proc.State == CallingC {
				proc.State = Running
			}
		case Exiting:
			// fall through to the Exiting handling below in the same
			// iteration: a check_expr failure can land here straight
			// out of handleUpcall, and must not wait for another
			// sched() pass, which would first stomp State back to
			// Running.
		case BlockedReading, BlockedWriting:
			panic("coproc: trampoline returned directly into a blocked state")
		}

		if proc.State == Exiting {
			rtLogf("proc %p exiting", proc)
			// A check_expr failure marks the proc Exiting while its
			// goroutine sits parked mid-yield; wake it once so it can
			// observe this and unwind, instead of staying parked
			// forever.
			killIfParked(proc)
			exitProc(proc)
		}

		if rt.nLiveProcs() == 0 {
			break
		}
		proc, ok = sched(rt)
		if !ok {
			rtLogf("no schedulable processes")
			return ExitDeadlock
		}
	}

	rtLogf("finished main loop")
	return ExitClean
}

// exitProc removes proc from the scheduler and frees it. Mirrors
// exit_proc.
func exitProc(proc *Proc) {
	v := proc.RT.vecFor(proc.State)
	procVecSwapDelete(v, proc)
	delProc(proc)
	v.Trim(proc.RT.nLiveProcs())
}
