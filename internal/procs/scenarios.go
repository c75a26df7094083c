// Package procs implements six canonical end-to-end runtime scenarios
// as coproc.Prog values, driven by the default ParkingTrampoline.
// cmd/coprocd exposes them by name; the integration tests in
// driver_test.go run them directly.
package procs

import "github.com/alphadose/coproc"

// RootOnlyHello is scenario 1: a prog whose main logs a string then
// exits. Expected: one log_str line, clean exit.
func RootOnlyHello() *coproc.Prog {
	return &coproc.Prog{
		Main: func(_ any, self *coproc.Proc) {
			self.LogStr("hi")
			self.Exit()
		},
	}
}

// SpawnAndExit is scenario 2: root spawns a child, both log and exit.
func SpawnAndExit() *coproc.Prog {
	child := &coproc.Prog{
		Main: func(_ any, self *coproc.Proc) {
			self.LogStr("child")
			self.Exit()
		},
	}
	return &coproc.Prog{
		Main: func(_ any, self *coproc.Proc) {
			c := self.Spawn(child)
			self.Sched(c)
			self.LogStr("parent")
			self.Exit()
		},
	}
}

// Rendezvous is scenario 3: parent creates a port, spawns a child
// holding a channel on it; the child sends a fixed value which the
// parent receives. result, once the prog finishes, holds the value
// the parent observed.
func Rendezvous(result *uint64) *coproc.Prog {
	const payload uint64 = 0xDEADBEEF

	// The child needs the parent's port before it first runs; a
	// buffered Go channel carries the pointer across, filled before
	// the child is ever scheduled. Host-side test wiring only.
	port := make(chan *coproc.Port, 1)

	child := &coproc.Prog{
		Main: func(_ any, self *coproc.Proc) {
			p := <-port
			c := self.NewChan(p)
			self.Send(c, payload)
			self.DelChan(c)
			self.Exit()
		},
	}

	return &coproc.Prog{
		Main: func(_ any, self *coproc.Proc) {
			p := self.NewPort()
			port <- p
			c := self.Spawn(child)
			self.Sched(c)

			v := self.Recv(p)
			*result = v.(uint64)
			self.DelPort(p)
			self.Exit()
		},
	}
}

// PendingWriters is scenario 4: two children each send a different
// value to the same port; the parent receives twice. results receives
// both observed values in whatever order the random-fair pairing
// produces.
func PendingWriters(results *[]uint64) *coproc.Prog {
	port := make(chan *coproc.Port, 2)

	makeChild := func(value uint64) *coproc.Prog {
		return &coproc.Prog{
			Main: func(_ any, self *coproc.Proc) {
				p := <-port
				c := self.NewChan(p)
				self.Send(c, value)
				self.DelChan(c)
				self.Exit()
			},
		}
	}

	return &coproc.Prog{
		Main: func(_ any, self *coproc.Proc) {
			p := self.NewPort()
			port <- p
			port <- p
			c1 := self.Spawn(makeChild(1))
			c2 := self.Spawn(makeChild(2))
			self.Sched(c1)
			self.Sched(c2)

			for i := 0; i < 2; i++ {
				v := self.Recv(p)
				*results = append(*results, v.(uint64))
			}
			self.DelPort(p)
			self.Exit()
		},
	}
}

// FailedCheckExpr is scenario 5: a child calls Check(false); the
// parent continues afterward.
func FailedCheckExpr(parentContinued *bool) *coproc.Prog {
	child := &coproc.Prog{
		Main: func(_ any, self *coproc.Proc) {
			self.Check(false)
			self.LogStr("should not print")
		},
	}
	return &coproc.Prog{
		Main: func(_ any, self *coproc.Proc) {
			c := self.Spawn(child)
			self.Sched(c)
			self.LogStr("parent before child check")
			*parentContinued = true
			self.Exit()
		},
	}
}

// DeadlockRecvWithNoSenders is scenario 6: a single proc recvs on a
// port with no senders and never gets rescheduled: the whole runtime
// deadlocks.
func DeadlockRecvWithNoSenders() *coproc.Prog {
	return &coproc.Prog{
		Main: func(_ any, self *coproc.Proc) {
			p := self.NewPort()
			self.Recv(p)
			self.LogStr("unreachable")
			self.Exit()
		},
	}
}
