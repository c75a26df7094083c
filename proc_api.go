package coproc

// This file is the proc-code-facing convenience API: thin wrappers
// over Proc.Upcall matching each opcode's argument convention. A real
// compiled front-end would emit the equivalent upcall sequences
// directly; these wrappers exist so the sample progs in procs/ and
// this module's own tests can drive the dispatcher without
// hand-rolling UpcallArgs slots at every call site.

// LogUint32 issues the log_uint32 upcall.
func (p *Proc) LogUint32(v uint32) {
	p.Upcall(OpLogUint32, v)
}

// LogStr issues the log_str upcall.
func (p *Proc) LogStr(s string) {
	p.Upcall(OpLogStr, s)
}

// Spawn issues the spawn upcall, allocating (but not scheduling) a new
// proc for prog.
func (p *Proc) Spawn(prog *Prog) *Proc {
	var out any
	p.Upcall(OpSpawn, &out, prog)
	return out.(*Proc)
}

// Sched issues the sched upcall, registering an externally-constructed
// proc (typically the result of Spawn) into the runnable vector.
func (p *Proc) Sched(child *Proc) {
	p.Upcall(OpSched, child)
}

// Check issues the check_expr upcall; a false cond forces this proc
// to Exiting on its return from the dispatcher.
func (p *Proc) Check(cond bool) {
	p.Upcall(OpCheckExpr, cond)
}

// Malloc issues the malloc upcall and returns the allocated bytes.
func (p *Proc) Malloc(n int) []byte {
	var out any
	p.Upcall(OpMalloc, &out, n)
	return out.([]byte)
}

// Free issues the free upcall.
func (p *Proc) Free(b []byte) {
	p.Upcall(OpFree, b)
}

// NewPort issues the new_port upcall, creating a port owned by p.
func (p *Proc) NewPort() *Port {
	var out any
	p.Upcall(OpNewPort, &out)
	return out.(*Port)
}

// DelPort issues the del_port upcall.
func (p *Proc) DelPort(port *Port) {
	p.Upcall(OpDelPort, port)
}

// NewChan issues the new_chan upcall, creating a channel bound to
// port.
func (p *Proc) NewChan(port *Port) *Chan {
	var out any
	p.Upcall(OpNewChan, &out, port)
	return out.(*Chan)
}

// DelChan issues the del_chan upcall.
func (p *Proc) DelChan(c *Chan) {
	p.Upcall(OpDelChan, c)
}

// Send issues the send upcall, transferring a single word to c's port.
func (p *Proc) Send(c *Chan, value any) {
	p.Upcall(OpSend, c, value)
}

// Recv issues the recv upcall, blocking until a writer rendezvouses
// with this proc's port, and returns the transferred word.
func (p *Proc) Recv(port *Port) any {
	var out any
	p.Upcall(OpRecv, &out, port)
	return out
}
