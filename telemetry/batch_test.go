package telemetry

import (
	"testing"

	"github.com/keias1108/hyd-u/sim"
)

func TestBatchDriverRunsRequestedSteps(t *testing.T) {
	s, err := sim.Init(smallBundle(), 1)
	if err != nil {
		t.Fatalf("sim.Init failed: %v", err)
	}
	driver := NewBatchDriver(s, 5)

	result := driver.Run(23)
	if result.Completed != 23 {
		t.Fatalf("Completed = %d, want 23", result.Completed)
	}
	if result.Cancelled {
		t.Fatal("expected an uncancelled run to complete")
	}
	if len(result.Samples) != 4 {
		t.Fatalf("len(Samples) = %d, want 4 (sampled every 5 of 23 steps)", len(result.Samples))
	}
}

func TestBatchDriverCancelStopsEarly(t *testing.T) {
	s, err := sim.Init(smallBundle(), 1)
	if err != nil {
		t.Fatalf("sim.Init failed: %v", err)
	}
	driver := NewBatchDriver(s, 0)
	driver.Cancel()

	result := driver.Run(100000)
	if !result.Cancelled {
		t.Fatal("expected Run to observe the pre-set cancel flag and stop")
	}
	if result.Completed >= 100000 {
		t.Fatalf("Completed = %d, want less than the full request after cancellation", result.Completed)
	}
}

func TestBatchDriverZeroSampleEveryDisablesSampling(t *testing.T) {
	s, err := sim.Init(smallBundle(), 1)
	if err != nil {
		t.Fatalf("sim.Init failed: %v", err)
	}
	driver := NewBatchDriver(s, 0)
	result := driver.Run(10)
	if len(result.Samples) != 0 {
		t.Fatalf("len(Samples) = %d, want 0 with sampling disabled", len(result.Samples))
	}
}
