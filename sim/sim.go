// Package sim exposes the public simulation handle described in spec
// §6: init, reset, per-field parameter mutation, stepping and
// read-only snapshots. A Sim owns its own Bundle (config "Ownership"),
// its grid buffers and its two agent pools.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/keias1108/hyd-u/agent"
	"github.com/keias1108/hyd-u/config"
	"github.com/keias1108/hyd-u/field"
)

// Sim is one simulation instance: parameters, grid buffers, agent
// pools and the RNG used for (re)initialisation.
type Sim struct {
	Params *config.Bundle
	Grid   *field.Buffers
	Prey   *agent.Pool
	Pred   *agent.Pool

	seed int64
	rng  *rand.Rand

	Perf *PerfStats
}

// Init allocates buffers and pools and seeds the initial state (spec
// §6 "init(params) -> Sim"). Grid dimensions and pool capacities must
// be positive or this is a fatal InitialisationFailure (spec §7).
func Init(params *config.Bundle, seed int64) (*Sim, error) {
	if params.Grid.W <= 0 || params.Grid.H <= 0 {
		return nil, fmt.Errorf("sim: grid dimensions must be positive, got %dx%d", params.Grid.W, params.Grid.H)
	}
	if params.Grid.MaxParticles <= 0 || params.Grid.MaxPredators <= 0 {
		return nil, fmt.Errorf("sim: agent capacities must be positive, got P=%d P2=%d", params.Grid.MaxParticles, params.Grid.MaxPredators)
	}

	s := &Sim{
		Params: params,
		seed:   seed,
		Perf:   NewPerfStats(),
	}
	s.allocate()
	s.Reset()
	return s, nil
}

func (s *Sim) allocate() {
	g := s.Params.Grid
	s.Grid = field.NewBuffers(g.W, g.H)
	s.Prey = agent.NewPool(agent.KindPrey, g.MaxParticles)
	s.Pred = agent.NewPool(agent.KindPredator, g.MaxPredators)
}

// Reset reinitialises the simulation to step 0 with the current
// parameters, producing the same initial distribution for a fixed
// seed (spec §5 "Reset semantics").
func (s *Sim) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
	p := s.Params

	s.Grid.Initialize(float32(p.O.O0), float32(p.Heat.H0), float32(p.Biomass.KBase), s.rng)
	field.GenerateBedrock(s.Grid, s.seed, 0, 3.0, p.Grid.FlatBedrock)

	s.Prey.Reset(p.P.Count, s.Grid.W, s.Grid.H, s.rng)
	s.Pred.Reset(p.P2.Count, s.Grid.W, s.Grid.H, s.rng)

	s.Params.Sim.CurrentTime = 0
}

// SetParam clamps and stores a named parameter, returning the
// reinitialisation signal ("O", "H", "P", "P2" or "") the caller
// should act on (spec §6 "set_param").
func (s *Sim) SetParam(name string, value float64) string {
	signal := s.Params.Set(name, value)
	switch signal {
	case "O":
		s.Grid.O.Fill(float32(s.Params.O.O0))
	case "H":
		s.Grid.H_.Fill(float32(s.Params.Heat.H0))
	case "P":
		s.Prey.Reset(s.Params.P.Count, s.Grid.W, s.Grid.H, s.rng)
	case "P2":
		s.Pred.Reset(s.Params.P2.Count, s.Grid.W, s.Grid.H, s.rng)
	}
	return signal
}

// Snapshot copies out a named field or agent buffer for read-only
// inspection (spec §6 "snapshot(sim, kind)"). kind is one of "R", "O",
// "C", "H", "M", "B", "B_long", "Z", "Z_rock", "Dp", "Dp2", "P", "P2".
func (s *Sim) Snapshot(kind string) (any, error) {
	g := s.Grid
	switch kind {
	case "R":
		return cloneF32(g.R.Current()), nil
	case "O":
		return cloneF32(g.O.Current()), nil
	case "C":
		return cloneF32(g.C), nil
	case "H":
		return cloneF32(g.H_.Current()), nil
	case "M":
		return cloneF32(g.M.Current()), nil
	case "B":
		return cloneF32(g.B), nil
	case "B_long":
		return cloneF32(g.BLong), nil
	case "Z":
		return cloneF32(g.Z.Current()), nil
	case "Z_rock":
		return cloneF32(g.ZRock), nil
	case "Dp":
		return cloneU32(g.Dp), nil
	case "Dp2":
		return cloneU32(g.Dp2), nil
	case "P":
		return s.Prey.Snapshot(), nil
	case "P2":
		return s.Pred.Snapshot(), nil
	default:
		return nil, fmt.Errorf("sim: unknown snapshot kind %q", kind)
	}
}

func cloneF32(src []float32) []float32 {
	out := make([]float32, len(src))
	copy(out, src)
	return out
}

func cloneU32(src []uint32) []uint32 {
	out := make([]uint32, len(src))
	copy(out, src)
	return out
}
