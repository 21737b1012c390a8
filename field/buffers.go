package field

import "math/rand"

// Buffers owns every scalar grid named in spec §3: the ping-ponged
// fields (R, O, M, H, Z), the single-buffered derived/slow fields (C,
// B, B_long, Z_rock) and the integer density grids (Dp, Dp2).
type Buffers struct {
	W, H int
	G    int // W*H

	R *PingPong
	O *PingPong
	M *PingPong
	H_ *PingPong // named H_ to avoid colliding with the grid height field H
	Z *PingPong

	C     []float32
	B     []float32
	BLong []float32
	ZRock []float32

	Dp  []uint32
	Dp2 []uint32
}

// NewBuffers allocates every grid for a W x H simulation.
func NewBuffers(w, h int) *Buffers {
	g := w * h
	return &Buffers{
		W: w, H: h, G: g,
		R: NewPingPong(g), O: NewPingPong(g), M: NewPingPong(g), H_: NewPingPong(g), Z: NewPingPong(g),
		C: make([]float32, g), B: make([]float32, g), BLong: make([]float32, g), ZRock: make([]float32, g),
		Dp: make([]uint32, g), Dp2: make([]uint32, g),
	}
}

// Initialize fills the grids per spec §4.2: O <- o0, H <- h0, M <- base
// + small uniform jitter clamped >= 0, everything else (R, C, B,
// B_long, Z) <- 0; Z_rock is left untouched. Z is later overwritten by
// GenerateBedrock, which must run after Initialize so the bedrock seed
// is the last writer of Z and Z >= Z_rock holds once both have run.
func (b *Buffers) Initialize(o0, h0, mBase float32, rng *rand.Rand) {
	b.R.Fill(0)
	b.O.Fill(o0)
	b.H_.Fill(h0)
	b.Z.Fill(0)

	for i := 0; i < b.G; i++ {
		jitter := (rng.Float32()*2 - 1) * 0.00025
		m := mBase + jitter
		if m < 0 {
			m = 0
		}
		b.M.Current()[i] = m
		b.M.Next()[i] = m
		b.C[i] = 0
		b.B[i] = 0
		b.BLong[i] = 0
	}
	for i := range b.Dp {
		b.Dp[i] = 0
	}
	for i := range b.Dp2 {
		b.Dp2[i] = 0
	}
}

// Idx converts a (x, y) cell coordinate into a flat grid index (spec
// §3 "i = y*W + x").
func (b *Buffers) Idx(x, y int) int { return y*b.W + x }

// ClampXY clamps a cell coordinate into [0, W-1] x [0, H-1] (spec §4.10
// step 3 boundary policy).
func (b *Buffers) ClampXY(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= b.W {
		x = b.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= b.H {
		y = b.H - 1
	}
	return x, y
}

// ClearDensity zero-fills a density grid (spec §4.9 "Clear").
func ClearDensity(d []uint32) {
	for i := range d {
		d[i] = 0
	}
}
