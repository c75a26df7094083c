package coproc

import "sync"

// handoffParker is a single-slot parking primitive: one goroutine
// parks (blocks) until another readies it. Unlike a plain channel
// send/receive pair, Ready is idempotent with respect to a Park that
// hasn't happened yet: a Ready that arrives first is remembered, so
// the eventual Park returns immediately instead of deadlocking. This
// is a semaphore-counting handoff (Park waits under a held lock;
// Ready sets a flag and signals) that avoids the thundering-herd
// problem of waking goroutines that haven't gone to sleep yet,
// specialized to a strict single-waiter handoff since ParkingTrampoline
// only ever has one goroutine parked on a given handoffParker at a
// time.
type handoffParker struct {
	mu    sync.Mutex
	ready bool
	cond  *sync.Cond
}

func newHandoffParker() *handoffParker {
	p := &handoffParker{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Park blocks until a matching Ready call, consuming it.
func (p *handoffParker) Park() {
	p.mu.Lock()
	for !p.ready {
		p.cond.Wait()
	}
	p.ready = false
	p.mu.Unlock()
}

// Ready wakes the parked goroutine, or arms the parker so the next
// Park returns immediately if no one is waiting yet.
func (p *handoffParker) Ready() {
	p.mu.Lock()
	p.ready = true
	p.cond.Signal()
	p.mu.Unlock()
}
