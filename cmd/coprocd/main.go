// Command coprocd drives one of the runtime's canonical sample progs
// to completion and reports its exit code, for manual exercise of the
// scheduler, dispatcher, and rendezvous engine without writing Go.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/alphadose/coproc"
	"github.com/alphadose/coproc/internal/procs"
)

var scenarios = map[string]func() *coproc.Prog{
	"hello": procs.RootOnlyHello,
	"spawn": procs.SpawnAndExit,
	"rendezvous": func() *coproc.Prog {
		var result uint64
		return procs.Rendezvous(&result)
	},
	"pending-writers": func() *coproc.Prog {
		var results []uint64
		return procs.PendingWriters(&results)
	},
	"failed-check": func() *coproc.Prog {
		var continued bool
		return procs.FailedCheckExpr(&continued)
	},
	"deadlock": procs.DeadlockRecvWithNoSenders,
}

func main() {
	var (
		scenario = flag.StringP("scenario", "s", "hello", "scenario to run: hello, spawn, rendezvous, pending-writers, failed-check, deadlock")
		seed     = flag.Uint64P("seed", "n", 0, "scheduler PRNG seed (0 = random)")
		verbose  = flag.BoolP("verbose", "v", false, "enable debug-level runtime logging")
	)
	flag.Parse()

	if *verbose {
		l := logrus.New()
		l.SetLevel(logrus.DebugLevel)
		coproc.SetLogger(l)
	}

	build, ok := scenarios[*scenario]
	if !ok {
		fmt.Fprintf(os.Stderr, "coprocd: unknown scenario %q\n", *scenario)
		os.Exit(2)
	}

	code := coproc.Run(build(), coproc.WithSeed(*seed))
	fmt.Printf("coprocd: scenario %q exited %d\n", *scenario, code)
	os.Exit(code)
}
