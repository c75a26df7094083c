package coproc

import "reflect"

// ProcState is one of the five states a Proc may occupy. Which
// scheduler vector currently holds the proc is determined entirely by
// this field; see (*Runtime).vecFor.
type ProcState int

const (
	Running ProcState = iota
	CallingC
	Exiting
	BlockedReading
	BlockedWriting
)

func (s ProcState) String() string {
	switch s {
	case Running:
		return "running"
	case CallingC:
		return "calling_c"
	case Exiting:
		return "exiting"
	case BlockedReading:
		return "blocked_reading"
	case BlockedWriting:
		return "blocked_writing"
	default:
		return "unknown"
	}
}

// UpcallCode is the fixed vocabulary of host-mediated operations a
// proc can request via Proc.UpcallCode/UpcallArgs. Zero is reserved as
// "no pending upcall", matching the source's use of 0 both as a valid
// opcode (log_uint32) and as the cleared-slot sentinel; this module
// disambiguates by only ever reading UpcallCode when State == CallingC.
type UpcallCode int

const (
	OpLogUint32 UpcallCode = iota
	OpLogStr
	OpSpawn
	OpSched
	OpCheckExpr
	OpMalloc
	OpFree
	OpNewPort
	OpDelPort
	OpNewChan
	OpDelChan
	OpSend
	OpRecv
)

// maxUpcallArgs mirrors PROC_MAX_UPCALL_ARGS.
const maxUpcallArgs = 8

// Proc is the control block for one lightweight, cooperatively
// scheduled process.
type Proc struct {
	RT   *Runtime
	Stk  *StackSegment
	Prog *Prog

	SavedSP uintptr
	State   ProcState
	idx     int
	refcnt  int

	UpcallCode UpcallCode
	UpcallArgs [maxUpcallArgs]any

	MemBudget  uintptr
	CurrMem    uintptr
	TickBudget uintptr
	CurrTicks  uintptr

	// lastErr records the most recent of this proc's named failure
	// modes: a dead-port failure delivered to a writer that was queued
	// when its port was destroyed, or a failed check_expr. Cleared by
	// LastError.
	lastErr error

	// exited signals the owning goroutine (see trampoline.go) has
	// finished running Prog.Main and the proc may be reaped.
	exited bool

	// runner holds ParkingTrampoline's per-proc handoff state. nil
	// until the proc's first Resume call.
	runner *procRunner
}

// newProc allocates a proc record bound to rt, synthesizes its stack
// and initial frame, and leaves it in state Running. Refcount starts
// at zero. Mirrors new_proc.
func newProc(rt *Runtime, prog *Prog) *Proc {
	p := &Proc{
		RT:   rt,
		Prog: prog,
	}
	p.Stk = newStackSegment()
	mainCode := codePointer(prog.Main)
	p.SavedSP = synthesizeInitialFrame(p.Stk, p, mainCode)
	p.State = Running
	return p
}

// delProc asserts the proc is unreferenced and frees its stack chain.
// Mirrors del_proc.
func delProc(p *Proc) {
	if p.refcnt != 0 {
		panic("coproc: del_proc on proc with nonzero refcount")
	}
	p.Stk.free()
}

// LastError returns and clears the failure recorded for this proc, if
// any: ErrDeadPort after being unblocked from BlockedWriting by
// DelPort, or ErrCheckFailed after a failed check_expr. Nil in every
// other circumstance.
func (p *Proc) LastError() error {
	err := p.lastErr
	p.lastErr = nil
	return err
}

// codePointer extracts a comparable, loggable code address for a Go
// function value, used only to populate the initial frame's
// "activation PC" slots realistically. Never dereferenced.
func codePointer(f ProgFunc) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}
