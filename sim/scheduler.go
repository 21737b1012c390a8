package sim

import (
	"time"

	"github.com/keias1108/hyd-u/systems"
)

// Step runs one full sub-step of the §4.12 pipeline: it advances
// currentTime, then dispatches every kernel in the fixed order the
// ping-pong swaps and density clears require. Per-phase timings are
// recorded into s.Perf for the same kind of breakdown the teacher's
// perf stats give per behaviour subsystem.
func (s *Sim) Step() {
	s.Params.Sim.CurrentTime += s.Params.Sim.DeltaTime
	quantisedTime := uint32(s.Params.Sim.CurrentTime * 60)

	phase := func(name string, fn func()) {
		start := time.Now()
		fn()
		s.Perf.Record(name, time.Since(start))
	}

	g := s.Grid
	p := s.Params

	phase("R", func() { systems.StepR(g, p); g.R.Swap() })
	phase("O", func() { systems.StepO(g, p); g.O.Swap() })
	phase("C", func() { systems.StepC(g) })
	phase("H_produce", func() { systems.StepHProduce(g, p); g.H_.Swap() })
	phase("H_diffuse", func() { systems.StepHDiffuse(g, p); g.H_.Swap() })
	phase("M", func() { systems.StepM(g, p); g.M.Swap() })

	phase("density_p", func() {
		systems.ClearDp(g)
		systems.ScatterDp(g, s.Prey)
	})

	phase("predators", func() {
		s.Pred.ClearNext()
		systems.StepPredators(g, s.Pred, p, quantisedTime)
		s.Pred.Swap()
	})

	phase("density_p2", func() {
		systems.ClearDp2(g)
		systems.ScatterDp2(g, s.Pred)
	})

	phase("prey", func() {
		systems.StepPrey(g, s.Prey, p, quantisedTime)
		s.Prey.Swap()
	})

	phase("terrain", func() { systems.StepTerrain(g, p); g.Z.Swap() })
}

// RunSubSteps advances the simulation by speedMultiplier sub-steps, the
// unit of work one host-visible "frame" performs (spec §4.12 closing
// paragraph).
func (s *Sim) RunSubSteps() {
	n := s.Params.Sim.SpeedMultiplier
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		s.Step()
	}
}
