package coproc

import "runtime"

// Trampoline is the c-to-proc glue: a host-supplied capability with
// one function and one contract. Resume restores a proc's saved
// execution point, runs it until it next yields, and returns with
// proc.State updated to whatever it yielded as. The runtime core
// (driver.go) only ever depends on this interface, never on
// ParkingTrampoline directly, so an architecture-specific assembly
// trampoline could be substituted without touching scheduler or
// dispatcher code.
type Trampoline interface {
	Resume(proc *Proc)
}

// procRunner holds the pair of handoff parkers backing one proc's
// goroutine. Exactly one of {toProc, toDriver} is ever parked at a
// time, so the two goroutines strictly alternate: the single-threaded
// cooperative semantics this runtime requires, implemented with real
// goroutines standing in for stack segments.
type procRunner struct {
	toProc   *handoffParker
	toDriver *handoffParker
}

// ParkingTrampoline implements Trampoline with one dedicated goroutine
// per proc. Park/Ready with an internal wakeup gate guards against the
// thundering-herd problem of readying a goroutine that hasn't parked
// yet.
type ParkingTrampoline struct{}

// NewParkingTrampoline returns a ready-to-use trampoline. It carries
// no state of its own; all per-proc bookkeeping lives on the Proc
// itself (its runner field), since resumption state is proc-owned,
// not runtime-owned.
func NewParkingTrampoline() *ParkingTrampoline {
	return &ParkingTrampoline{}
}

// Resume restores proc and runs it until its next yield. On the first
// call for a given proc it spawns the backing goroutine; on every
// subsequent call it readies the already-parked goroutine. Either way
// it blocks until that goroutine parks again (having yielded via
// Proc.yield or having exited), matching the contract that Resume
// "returns with proc.state updated."
func (t *ParkingTrampoline) Resume(proc *Proc) {
	if proc.runner == nil {
		proc.runner = &procRunner{
			toProc:   newHandoffParker(),
			toDriver: newHandoffParker(),
		}
		go t.run(proc)
	} else {
		proc.runner.toProc.Ready()
	}
	proc.runner.toDriver.Park()
}

// run is the body of a proc's dedicated goroutine: it invokes Main
// with the contracted calling convention, then, whether Main returned
// normally or the proc called Exit (which unwinds via runtime.Goexit),
// marks the proc Exiting and readies the driver one final time.
func (t *ParkingTrampoline) run(proc *Proc) {
	defer func() {
		if proc.State != Exiting {
			proc.State = Exiting
		}
		proc.exited = true
		proc.runner.toDriver.Ready()
	}()
	proc.Prog.Main(nil, proc)
}

// yield hands control back to the driver and parks until the driver
// resumes this proc again. Called by Upcall after recording the
// pending opcode and arguments.
//
// A dispatcher-side upcall (check_expr failing) or a driver-side kill
// (killIfParked) can mark this proc Exiting while its goroutine sits
// parked here, without that goroutine ever choosing to exit itself.
// Whoever wakes it readies this goroutine one last time purely so it
// can observe Exiting and unwind via runtime.Goexit, since Go gives no
// way to reclaim a parked goroutine from outside it.
func (p *Proc) yield() {
	p.runner.toDriver.Ready()
	p.runner.toProc.Park()
	if p.State == Exiting {
		runtime.Goexit()
	}
}

// killIfParked forces proc's parked goroutine, if it has one and
// hasn't already finished, to unwind via runtime.Goexit instead of
// leaking forever blocked in yield. Used both when the driver reaps a
// proc the dispatcher just marked Exiting, and when a runtime is torn
// down with procs still registered (Close, or an early return from
// Run) so no goroutine is left parked with nothing left to wake it.
func killIfParked(proc *Proc) {
	if proc.runner == nil || proc.exited {
		return
	}
	proc.State = Exiting
	proc.runner.toProc.Ready()
	proc.runner.toDriver.Park()
}

// Upcall is the proc-code-facing half of the upcall protocol: it
// records code and args into the proc record exactly as compiled proc
// code would via its shared argument slot, marks the proc CallingC,
// and yields. It returns once the dispatcher has processed the
// upcall and the driver has resumed this proc, at which point any
// out-slot pointer passed in args has been populated.
func (p *Proc) Upcall(code UpcallCode, args ...any) {
	for i := range p.UpcallArgs {
		p.UpcallArgs[i] = nil
	}
	copy(p.UpcallArgs[:], args)
	p.UpcallCode = code
	p.State = CallingC
	p.yield()
}

// Exit marks the proc Exiting and immediately unwinds its goroutine
// stack via runtime.Goexit, running deferred cleanup on the way out:
// the Go-native analogue of a compiled proc simply never returning
// from its main_code activation.
func (p *Proc) Exit() {
	p.State = Exiting
	runtime.Goexit()
}
