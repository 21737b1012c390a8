package sim

import (
	"sort"
	"time"
)

// PipelineOrder lists the fixed kernel phases scheduler.Step dispatches
// each sub-step, in dispatch order. The teacher's game.PerfStats had no
// equivalent: its systems ran in whatever order the frame's input state
// demanded, so it only ever reported cost-sorted names. Here the
// pipeline order is itself fixed data (spec §4.12), so PerfStats can
// report a phase breakdown that matches the schedule instead of only
// the slowest-first view.
var PipelineOrder = []string{
	"R", "O", "C", "H_produce", "H_diffuse", "M",
	"density_p", "predators", "density_p2", "prey", "terrain",
}

// PerfStats tracks execution time for each pipeline phase over a
// rolling window of recent sub-steps, the same windowed design as the
// teacher's game.PerfStats (game/perf.go).
type PerfStats struct {
	samples    map[string][]time.Duration
	maxSamples int
}

// NewPerfStats creates an empty tracker. maxSamples caps at 120 recent
// sub-steps, long enough to smooth out a GC pause or a one-off slow
// reproduction-heavy step without staying stale for multiple seconds.
func NewPerfStats() *PerfStats {
	return &PerfStats{
		samples:    make(map[string][]time.Duration),
		maxSamples: 120,
	}
}

// Record adds a duration sample for the named phase.
func (p *PerfStats) Record(name string, d time.Duration) {
	p.samples[name] = append(p.samples[name], d)
	if len(p.samples[name]) > p.maxSamples {
		p.samples[name] = p.samples[name][1:]
	}
}

// Avg returns the rolling average duration for the named phase.
func (p *PerfStats) Avg(name string) time.Duration {
	s := p.samples[name]
	if len(s) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total / time.Duration(len(s))
}

// Total returns the sum of every phase's average duration: the
// expected wall-clock cost of one sub-step.
func (p *PerfStats) Total() time.Duration {
	var total time.Duration
	for name := range p.samples {
		total += p.Avg(name)
	}
	return total
}

// SortedNames returns recorded phase names ordered by descending
// average cost, for finding the current bottleneck.
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.samples))
	for name := range p.samples {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return p.Avg(names[i]) > p.Avg(names[j])
	})
	return names
}

// OrderedNames returns PipelineOrder filtered to the phases that have
// at least one recorded sample, for reporting the breakdown the way
// the scheduler actually runs it rather than by cost.
func (p *PerfStats) OrderedNames() []string {
	out := make([]string, 0, len(PipelineOrder))
	for _, name := range PipelineOrder {
		if len(p.samples[name]) > 0 {
			out = append(out, name)
		}
	}
	return out
}

// RealtimeRatio compares the rolling average sub-step cost against dt,
// the amount of simulated time one sub-step advances
// (config.Bundle.Sim.DeltaTime). A ratio above 1 means the kernels take
// longer to compute than the simulated clock they're advancing, so a
// driver stepping at SpeedMultiplier sub-steps per host frame can't
// keep up in real time.
func (p *PerfStats) RealtimeRatio(dt time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	return float64(p.Total()) / float64(dt)
}
