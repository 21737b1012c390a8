package field

// At samples buf at a clamped cell coordinate. Out-of-range coordinates
// clamp to the nearest edge cell, which is exactly "use the center
// value in place of the missing neighbour" (spec §4.3 boundary policy)
// whenever the caller is asking for the neighbour just past an edge:
// at x=0 the missing left neighbour (-1, y) clamps to (0, y), the
// center cell itself.
func (b *Buffers) At(buf []float32, x, y int) float32 {
	cx, cy := b.ClampXY(x, y)
	return buf[b.Idx(cx, cy)]
}

// AtU32 is At for the integer density grids.
func (b *Buffers) AtU32(buf []uint32, x, y int) uint32 {
	cx, cy := b.ClampXY(x, y)
	return buf[b.Idx(cx, cy)]
}

// Laplacian computes the 4-neighbour discrete Laplacian at (x, y) with
// zero-flux (Neumann) boundaries (spec §4.3 step 2).
func (b *Buffers) Laplacian(buf []float32, x, y int) float32 {
	center := b.At(buf, x, y)
	l := b.At(buf, x-1, y)
	r := b.At(buf, x+1, y)
	u := b.At(buf, x, y-1)
	d := b.At(buf, x, y+1)
	return l + r + u + d - 4*center
}

// Gradient computes the central-difference gradient at (x, y), same
// zero-flux boundary policy as Laplacian.
func (b *Buffers) Gradient(buf []float32, x, y int) (dx, dy float32) {
	dx = (b.At(buf, x+1, y) - b.At(buf, x-1, y)) * 0.5
	dy = (b.At(buf, x, y+1) - b.At(buf, x, y-1)) * 0.5
	return
}

// GradientU32 is Gradient over an integer density grid, returned as
// float32 (spec §4.10 step 4, "gradient by central differences").
func (b *Buffers) GradientU32(buf []uint32, x, y int) (dx, dy float32) {
	dx = (float32(b.AtU32(buf, x+1, y)) - float32(b.AtU32(buf, x-1, y))) * 0.5
	dy = (float32(b.AtU32(buf, x, y+1)) - float32(b.AtU32(buf, x, y-1))) * 0.5
	return
}
