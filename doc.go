// Package coproc implements the core of a cooperative, user-space
// process runtime: lightweight "procs" multiplexed onto a single
// driving goroutine, an upcall dispatcher translating a fixed opcode
// vocabulary into host actions, and a rendezvous messaging engine
// pairing blocked writers with blocked readers over ports and chans.
//
// A minimal program spawns a root Prog and runs it to completion:
//
//	code := coproc.Run(&coproc.Prog{
//	    Main: func(_ any, self *coproc.Proc) {
//	        self.LogStr("hi")
//	        self.Exit()
//	    },
//	})
package coproc
