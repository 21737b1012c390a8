package telemetry

import (
	"testing"

	"github.com/keias1108/hyd-u/config"
	"github.com/keias1108/hyd-u/sim"
)

func smallBundle() *config.Bundle {
	b := config.Default()
	b.Grid.W = 12
	b.Grid.H = 12
	b.Grid.MaxParticles = 20
	b.Grid.MaxPredators = 10
	b.P.Count = 6
	b.P2.Count = 3
	return b
}

func TestComputeCountsActiveAgents(t *testing.T) {
	s, err := sim.Init(smallBundle(), 1)
	if err != nil {
		t.Fatalf("sim.Init failed: %v", err)
	}
	stats := Compute(s)
	if stats.PAlive != 6 {
		t.Fatalf("PAlive = %d, want 6", stats.PAlive)
	}
	if stats.P2Alive != 3 {
		t.Fatalf("P2Alive = %d, want 3", stats.P2Alive)
	}
	if stats.PInvalid != 0 || stats.P2Invalid != 0 {
		t.Fatalf("expected no invalid agents right after Init, got P=%d P2=%d", stats.PInvalid, stats.P2Invalid)
	}
}

func TestComputeAveragesOverFullGrid(t *testing.T) {
	s, err := sim.Init(smallBundle(), 1)
	if err != nil {
		t.Fatalf("sim.Init failed: %v", err)
	}
	stats := Compute(s)
	want := float64(float32(s.Params.O.O0))
	if diff := stats.OAvg - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("OAvg = %v, want ~%v (uniform initial O)", stats.OAvg, want)
	}
}
