package coproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelPortFailsQueuedWriters(t *testing.T) {
	rt := NewRuntime(1)
	owner := newProc(rt, testProg())
	addProcToStateVec(owner)
	port := newPort(owner)

	writer := newProc(rt, testProg())
	addProcToStateVec(writer)
	c := newChan(writer, port)
	transition(writer, Running, CallingC)
	writer.UpcallArgs[1] = uint64(9)
	send(writer, c)
	require.Equal(t, BlockedWriting, writer.State)
	require.True(t, c.queued)

	port.LiveRefcnt = 0
	delPort(port)

	assert.Equal(t, Running, writer.State)
	assert.False(t, c.queued)
	assert.ErrorIs(t, writer.LastError(), ErrDeadPort)
}

func TestDelPortWithNonzeroRefcountPanics(t *testing.T) {
	rt := NewRuntime(1)
	owner := newProc(rt, testProg())
	addProcToStateVec(owner)
	port := newPort(owner)
	port.LiveRefcnt = 1

	assert.Panics(t, func() { delPort(port) })
}

func TestDelChanRemovesFromWriterVector(t *testing.T) {
	rt := NewRuntime(1)
	owner := newProc(rt, testProg())
	addProcToStateVec(owner)
	port := newPort(owner)

	w1 := newProc(rt, testProg())
	addProcToStateVec(w1)
	c1 := newChan(w1, port)
	transition(w1, Running, CallingC)
	w1.UpcallArgs[1] = uint64(1)
	send(w1, c1)

	w2 := newProc(rt, testProg())
	addProcToStateVec(w2)
	c2 := newChan(w2, port)
	transition(w2, Running, CallingC)
	w2.UpcallArgs[1] = uint64(2)
	send(w2, c2)

	require.Equal(t, 2, port.Writers.Len())
	delChan(c1)
	assert.Equal(t, 1, port.Writers.Len())
	assert.Same(t, c2, port.Writers.At(0))
	assert.Equal(t, 0, c2.idx)
}
