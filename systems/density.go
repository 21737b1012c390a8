package systems

import (
	"sync/atomic"

	"github.com/keias1108/hyd-u/agent"
	"github.com/keias1108/hyd-u/field"
)

// ClearDp zeroes the Dp density grid.
func ClearDp(b *field.Buffers) {
	field.ClearDensity(b.Dp)
}

// ClearDp2 zeroes the Dp2 density grid.
func ClearDp2(b *field.Buffers) {
	field.ClearDensity(b.Dp2)
}

// ScatterDp counts active slots of pool into Dp. Scatter is specified
// as a concurrent operation with no ordering guarantee across slots
// (spec §4.9, §5); atomic.AddUint32 keeps the per-cell sum correct
// regardless of how the slot range is eventually partitioned across
// goroutines, even though the current scheduler drives it from one.
func ScatterDp(b *field.Buffers, pool *agent.Pool) {
	scatter(b, b.Dp, pool.Cur)
}

// ScatterDp2 counts active slots of pool into Dp2.
func ScatterDp2(b *field.Buffers, pool *agent.Pool) {
	scatter(b, b.Dp2, pool.Cur)
}

func scatter(b *field.Buffers, dest []uint32, slots []agent.Record) {
	for i := range slots {
		r := &slots[i]
		if r.State != agent.StateActive {
			continue
		}
		xi, yi := b.ClampXY(int(r.X), int(r.Y))
		idx := b.Idx(xi, yi)
		atomic.AddUint32(&dest[idx], 1)
	}
}
