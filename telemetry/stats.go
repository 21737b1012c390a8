// Package telemetry computes field/agent statistics and drives batch
// runs of a sim.Sim (spec §4.13).
package telemetry

import (
	"log/slog"
	"math"

	"github.com/keias1108/hyd-u/agent"
	"github.com/keias1108/hyd-u/sim"
)

// FieldStats is the §4.13 statistics snapshot: field sums/averages and
// agent alive/invalid counts.
type FieldStats struct {
	RTotal   float64 `csv:"r_total"`
	OAvg     float64 `csv:"o_avg"`
	HAvg     float64 `csv:"h_avg"`
	MTotal   float64 `csv:"m_total"`
	BTotal   float64 `csv:"b_total"`
	PAlive   int     `csv:"p_alive"`
	P2Alive  int     `csv:"p2_alive"`
	PInvalid int     `csv:"p_invalid"`
	P2Invalid int    `csv:"p2_invalid"`
}

// Compute reduces the current state of s into a FieldStats snapshot,
// reading each scalar field once and scanning both agent pools for
// invalid positions the update kernels did not already self-heal this
// step (spec §4.13 "Implementation").
func Compute(s *sim.Sim) FieldStats {
	g := s.Grid
	var rTotal, oSum, hSum, mTotal, bTotal float64

	rCur := g.R.Current()
	oCur := g.O.Current()
	hCur := g.H_.Current()
	mCur := g.M.Current()

	for i := 0; i < g.G; i++ {
		rTotal += float64(rCur[i])
		oSum += float64(oCur[i])
		hSum += float64(hCur[i])
		mTotal += float64(mCur[i])
		bTotal += float64(g.B[i])
	}

	stats := FieldStats{
		RTotal: rTotal,
		OAvg:   oSum / float64(g.G),
		HAvg:   hSum / float64(g.G),
		MTotal: mTotal,
		BTotal: bTotal,
	}

	stats.PAlive, stats.PInvalid = countPool(s.Prey, g.W, g.H)
	stats.P2Alive, stats.P2Invalid = countPool(s.Pred, g.W, g.H)
	return stats
}

func countPool(pool *agent.Pool, w, h int) (alive, invalid int) {
	for i := range pool.Cur {
		r := &pool.Cur[i]
		if r.State != agent.StateActive {
			continue
		}
		if math.IsNaN(float64(r.X)) || math.IsNaN(float64(r.Y)) ||
			r.X < 0 || r.X >= float32(w) || r.Y < 0 || r.Y >= float32(h) {
			invalid++
			continue
		}
		alive++
	}
	return alive, invalid
}

// LogStats logs a FieldStats snapshot using slog, the same
// key-value shape as the teacher's WindowStats.LogStats
// (telemetry/stats.go in the original game package).
func (s FieldStats) LogStats(step int) {
	slog.Info("field_stats",
		"step", step,
		"r_total", s.RTotal,
		"o_avg", s.OAvg,
		"h_avg", s.HAvg,
		"m_total", s.MTotal,
		"b_total", s.BTotal,
		"p_alive", s.PAlive,
		"p2_alive", s.P2Alive,
		"p_invalid", s.PInvalid,
		"p2_invalid", s.P2Invalid,
	)
}
