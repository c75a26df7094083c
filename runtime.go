package coproc

import "math/rand/v2"

// Runtime owns the two proc vectors and the PRNG backing the
// scheduler's random-fair selection. There is no process-wide
// singleton: every Run call (and every test) constructs its own
// Runtime.
type Runtime struct {
	runningProcs *PtrVec // procs in {Running, CallingC, Exiting}
	blockedProcs *PtrVec // procs in {BlockedReading, BlockedWriting}
	rng          *rand.Rand
}

// NewRuntime constructs an empty runtime. seed deterministically seeds
// the scheduler's PRNG; pass 0 to seed from a fresh, unpredictable
// source each call.
func NewRuntime(seed uint64) *Runtime {
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
	return &Runtime{
		runningProcs: NewPtrVec(),
		blockedProcs: NewPtrVec(),
		rng:          rand.New(src),
	}
}

// vecFor returns the scheduler vector that state belongs in, mirroring
// get_state_vec.
func (rt *Runtime) vecFor(state ProcState) *PtrVec {
	switch state {
	case Running, CallingC, Exiting:
		return rt.runningProcs
	case BlockedReading, BlockedWriting:
		return rt.blockedProcs
	default:
		panic("coproc: unreachable proc state")
	}
}

// nLiveProcs mirrors n_live_procs.
func (rt *Runtime) nLiveProcs() int {
	return rt.runningProcs.Len() + rt.blockedProcs.Len()
}

// delAllProcs frees every proc remaining in v without running the
// scheduler's state-transition bookkeeping; used only when tearing
// down the whole runtime. Procs whose goroutine is still parked (a
// deadlock exit leaves every blocked proc parked mid-yield) are woken
// one last time to unwind before their record is freed.
func delAllProcs(v *PtrVec) {
	for v.Len() > 0 {
		p := v.At(v.Len() - 1).(*Proc)
		v.SwapDelete(v.Len() - 1)
		killIfParked(p)
		delProc(p)
	}
}

// Close destroys every remaining proc and frees the runtime's vectors.
// Mirrors del_rt; safe to call on a runtime whose loop already drained
// naturally (both vectors empty).
func (rt *Runtime) Close() {
	delAllProcs(rt.runningProcs)
	delAllProcs(rt.blockedProcs)
}
