package coproc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alphadose/coproc"
	"github.com/alphadose/coproc/internal/procs"
)

func TestRunRootOnlyHelloExitsClean(t *testing.T) {
	code := coproc.Run(procs.RootOnlyHello(), coproc.WithSeed(1))
	assert.Equal(t, coproc.ExitClean, code)
}

func TestRunSpawnAndExitExitsClean(t *testing.T) {
	code := coproc.Run(procs.SpawnAndExit(), coproc.WithSeed(1))
	assert.Equal(t, coproc.ExitClean, code)
}

func TestRunRendezvousDeliversPayload(t *testing.T) {
	var result uint64
	code := coproc.Run(procs.Rendezvous(&result), coproc.WithSeed(1))
	assert.Equal(t, coproc.ExitClean, code)
	assert.Equal(t, uint64(0xDEADBEEF), result)
}

func TestRunPendingWritersBothDelivered(t *testing.T) {
	var results []uint64
	code := coproc.Run(procs.PendingWriters(&results), coproc.WithSeed(2))
	assert.Equal(t, coproc.ExitClean, code)
	assert.ElementsMatch(t, []uint64{1, 2}, results)
}

func TestRunFailedCheckExprKillsChildNotParent(t *testing.T) {
	var parentContinued bool
	code := coproc.Run(procs.FailedCheckExpr(&parentContinued), coproc.WithSeed(1))
	assert.Equal(t, coproc.ExitClean, code)
	assert.True(t, parentContinued)
}

func TestRunDeadlockRecvWithNoSenders(t *testing.T) {
	code := coproc.Run(procs.DeadlockRecvWithNoSenders(), coproc.WithSeed(1))
	assert.Equal(t, coproc.ExitDeadlock, code)
}

func TestRunIsDeterministicUnderFixedSeed(t *testing.T) {
	var firstResults, secondResults []uint64
	coproc.Run(procs.PendingWriters(&firstResults), coproc.WithSeed(99))
	coproc.Run(procs.PendingWriters(&secondResults), coproc.WithSeed(99))
	assert.Equal(t, firstResults, secondResults)
}
