package systems

import (
	"math"
	"testing"

	"github.com/keias1108/hyd-u/agent"
	"github.com/keias1108/hyd-u/config"
	"github.com/keias1108/hyd-u/field"
)

func TestStepPredatorsReflectsAtLeftBoundary(t *testing.T) {
	b := field.NewBuffers(16, 16)
	p := config.Default()
	p.Terrain.Enabled = false
	pool := agent.NewPool(agent.KindPredator, 4)
	pool.Cur[0] = agent.Record{
		X: -1, Y: float32(b.H) / 2,
		VX: -5, VY: 0,
		Energy: 1, Type: agent.KindPredator, State: agent.StateActive,
	}

	StepPredators(b, pool, p, 0)

	r := pool.Next[0]
	if r.X < 0 || r.X > float32(b.W-1) {
		t.Fatalf("reflected agent X = %v, out of grid bounds", r.X)
	}
	if r.VX < 0 {
		t.Errorf("reflected agent VX = %v, want non-negative after bouncing off the left wall", r.VX)
	}
}

func TestStepPredatorsNaNSelfHealsAndCountsInvalid(t *testing.T) {
	b := field.NewBuffers(8, 8)
	p := config.Default()
	pool := agent.NewPool(agent.KindPredator, 2)
	pool.Cur[0] = agent.Record{X: float32(math.NaN()), Y: 1, Energy: 1, Type: agent.KindPredator, State: agent.StateActive}

	StepPredators(b, pool, p, 0)

	if pool.Invalid != 1 {
		t.Fatalf("Invalid = %d, want 1 after a NaN position self-heals", pool.Invalid)
	}
	if pool.Next[0].State != agent.StateFree {
		t.Fatalf("NaN agent should be freed, got state %v", pool.Next[0].State)
	}
}

func TestStepPredatorsEnergyDeathDoesNotCountAsInvalid(t *testing.T) {
	b := field.NewBuffers(8, 8)
	p := config.Default()
	p.P2.EnergyDecayRate = 1000
	p.P2.MinEnergy = 0.5
	pool := agent.NewPool(agent.KindPredator, 2)
	pool.Cur[0] = agent.Record{X: 1, Y: 1, Energy: 0.6, Type: agent.KindPredator, State: agent.StateActive}

	StepPredators(b, pool, p, 0)

	if pool.Invalid != 0 {
		t.Fatalf("Invalid = %d, want 0 for an ordinary energy-threshold death", pool.Invalid)
	}
	if pool.Next[0].State != agent.StateFree {
		t.Fatal("expected agent to die from energy exhaustion")
	}
}

// Mirrors the prey regression test: a reproduction child written into a
// free slot past its parent's index must not be clobbered by that
// slot's own (free) pass later in the loop.
func TestStepPredatorsReproductionChildSurvivesLaterFreeSlot(t *testing.T) {
	b := field.NewBuffers(16, 16)
	p := config.Default()
	p.Terrain.Enabled = false
	p.P2.ReproduceEnabled = true
	p.P2.ReproduceThreshold = 0.1
	p.P2.EnergyDecayRate = 0
	p.P2.EatEnabled = false

	pool := agent.NewPool(agent.KindPredator, 64)
	pool.Cur[0] = agent.Record{X: 8, Y: 8, Energy: 5, Type: agent.KindPredator, State: agent.StateActive}

	StepPredators(b, pool, p, 0)

	childCount := 0
	for i := 1; i < len(pool.Next); i++ {
		if pool.Next[i].State == agent.StateActive {
			childCount++
		}
	}
	if childCount == 0 {
		t.Fatal("expected a reproduction child in some free slot after the parent, found none")
	}
}
