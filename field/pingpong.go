// Package field implements the double-buffered scalar grids and
// density accumulators of spec §3/§4.2.
package field

// PingPong holds two equally-sized buffers for one scalar field and
// tracks which is "current". A kernel reads Current() and writes
// Next(); Swap flips the roles once the kernel has finished (spec §4.2
// "swap(field)"). This is the one piece of plumbing that makes the
// stencil kernels race-free without locks: Current is never mutated
// while Next is being written (spec §4.2 "Guarantee").
type PingPong struct {
	buf [2][]float32
	cur int
}

// NewPingPong allocates a ping-pong pair of `size` float32 cells each.
func NewPingPong(size int) *PingPong {
	return &PingPong{buf: [2][]float32{make([]float32, size), make([]float32, size)}}
}

// Current returns the buffer kernels should read.
func (p *PingPong) Current() []float32 { return p.buf[p.cur] }

// Next returns the buffer kernels should write.
func (p *PingPong) Next() []float32 { return p.buf[1-p.cur] }

// Swap flips current/next.
func (p *PingPong) Swap() { p.cur = 1 - p.cur }

// Fill sets both buffers to the same constant value (used at
// initialize/reset, spec §4.2 "clone to both ping-pong copies").
func (p *PingPong) Fill(v float32) {
	for i := range p.buf[0] {
		p.buf[0][i] = v
		p.buf[1][i] = v
	}
}

// FillFrom copies src into both buffers.
func (p *PingPong) FillFrom(src []float32) {
	copy(p.buf[0], src)
	copy(p.buf[1], src)
}
