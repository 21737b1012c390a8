package agent

import "math/rand"

// Pool is a fixed-capacity, double-buffered array of agent slots for
// one species (spec §3 "Agent record" + "Lifecycle").
//
// Cur is read by the species' update kernel; Next is written by it.
// Scheduler.Swap flips the roles once the kernel has finished, the
// same ping-pong discipline as the scalar fields (spec §4.12 design
// notes).
type Pool struct {
	Cur, Next []Record
	Kind      Kind

	// Invalid counts NaN positions self-healed during the most recent
	// update kernel run. Out-of-grid positions are reflected and clamped
	// by the kernels, not counted here (spec §4.13 P_invalid/P2_invalid
	// come from telemetry's own scan).
	Invalid int
}

// NewPool allocates a pool with the given fixed capacity.
func NewPool(kind Kind, capacity int) *Pool {
	return &Pool{
		Cur:  make([]Record, capacity),
		Next: make([]Record, capacity),
		Kind: kind,
	}
}

// Capacity returns the pool's fixed slot count.
func (p *Pool) Capacity() int { return len(p.Cur) }

// Reset reinitializes the pool to `count` active agents at random
// uniform positions with zero velocity, energy 1.0 and a random
// heading (spec §3 "Created"), using a seeded RNG so the distribution
// is reproducible for a fixed seed (spec §5 "Reset semantics").
func (p *Pool) Reset(count int, w, h int, rng *rand.Rand) {
	if count > len(p.Cur) {
		count = len(p.Cur)
	}
	for i := range p.Cur {
		if i < count {
			p.Cur[i] = Record{
				X:      rng.Float32() * float32(w-1),
				Y:      rng.Float32() * float32(h-1),
				VX:     0,
				VY:     0,
				Energy: 1.0,
				Type:   p.Kind,
				State:  StateActive,
				Age:    rng.Float32() * 6.2831853,
			}
		} else {
			p.Cur[i] = Record{Type: p.Kind, State: StateFree}
		}
		p.Next[i] = p.Cur[i]
	}
	p.Invalid = 0
}

// ClearNext zero-clears the entire next buffer. The predator kernel
// calls this defensively before writing; it is not required for
// correctness (every slot of Next ends up written by the kernel's main
// pass or its deferred reproduction pass either way), but it keeps a
// shrunk pool (e.g. after a pCount/p2Count reinit drops capacity in
// use) from ever exposing a stale record from an earlier step.
func (p *Pool) ClearNext() {
	for i := range p.Next {
		p.Next[i] = Record{Type: p.Kind, State: StateFree}
	}
}

// Swap exchanges Cur and Next (spec §4.2 "swap(field)", applied here to
// the agent pools per the scheduler's per-step pipeline).
func (p *Pool) Swap() {
	p.Cur, p.Next = p.Next, p.Cur
}

// CountActive returns the number of active slots in Cur.
func (p *Pool) CountActive() int {
	n := 0
	for i := range p.Cur {
		if p.Cur[i].State == StateActive {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the current buffer's records (spec §6
// "snapshot(sim, kind)").
func (p *Pool) Snapshot() []Record {
	out := make([]Record, len(p.Cur))
	copy(out, p.Cur)
	return out
}

// FindFreeSlot searches `input` (the pre-update buffer, per the design
// notes' resolved open question: "always search the input buffer for a
// free slot") for a free slot starting at `start`, probing up to
// `tries` candidates at stride 1237 (spec §4.10.12 step 12).
func FindFreeSlot(input []Record, start int, tries int) (int, bool) {
	n := len(input)
	if n == 0 {
		return 0, false
	}
	idx := start % n
	for k := 0; k < tries; k++ {
		if input[idx].State == StateFree {
			return idx, true
		}
		idx = (idx + 1237) % n
	}
	return 0, false
}
