package telemetry

import (
	"sync/atomic"
	"time"

	"github.com/keias1108/hyd-u/sim"
)

// yieldInterval and yieldChunk bound how long BatchDriver.Run can go
// without checking the cancellation flag (spec §4.13 "yields to its
// host every <=8ms or after each chunk of 512 sub-steps").
const (
	yieldInterval = 8 * time.Millisecond
	yieldChunk    = 512
)

// BatchResult is the report a batch run hands back (spec §4.13
// "reports (completed, elapsed, final_stats)").
type BatchResult struct {
	Completed   int
	Cancelled   bool
	Elapsed     time.Duration
	FinalStats  FieldStats
	Samples     []FieldStats
}

// BatchDriver steps a Sim N times, sampling stats every sampleEvery
// steps and checking a cooperative cancellation flag at bounded
// intervals so the host stays responsive (spec §5 "Cancellation and
// timeouts").
type BatchDriver struct {
	Sim         *sim.Sim
	SampleEvery int

	cancelRequested atomic.Bool
}

// NewBatchDriver creates a driver over sim, sampling stats every
// sampleEvery sub-steps (sampleEvery <= 0 disables sampling, only the
// final stats are reported).
func NewBatchDriver(s *sim.Sim, sampleEvery int) *BatchDriver {
	return &BatchDriver{Sim: s, SampleEvery: sampleEvery}
}

// Cancel requests the in-flight Run to stop at the next check point.
// Safe to call from another goroutine.
func (d *BatchDriver) Cancel() {
	d.cancelRequested.Store(true)
}

// Run steps the simulation n times. Each step is atomic at its
// boundary (spec §5 "Reset semantics" / "Cancellation"), so on
// cancellation the last-committed step leaves every invariant holding.
func (d *BatchDriver) Run(n int) BatchResult {
	start := time.Now()
	result := BatchResult{}

	lastYield := time.Now()
	sinceYield := 0

	for i := 0; i < n; i++ {
		d.Sim.Step()
		result.Completed++

		if d.SampleEvery > 0 && result.Completed%d.SampleEvery == 0 {
			result.Samples = append(result.Samples, Compute(d.Sim))
		}

		sinceYield++
		if sinceYield >= yieldChunk || time.Since(lastYield) >= yieldInterval {
			sinceYield = 0
			lastYield = time.Now()
			if d.cancelRequested.Load() {
				result.Cancelled = true
				break
			}
		}
	}

	result.Elapsed = time.Since(start)
	result.FinalStats = Compute(d.Sim)
	return result
}
