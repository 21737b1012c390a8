package systems

import (
	"github.com/keias1108/hyd-u/config"
	"github.com/keias1108/hyd-u/field"
	"github.com/keias1108/hyd-u/rngx"
)

// StepO advances O (oxidant): relaxation toward background, diffusion,
// optional terrain-driven advection, and consumption by the R·O
// reaction. The restore term is gated by relaxationRate as well as
// restoreRate, so relaxationRate = 0 turns relaxation off outright
// (spec §8 invariant 5) rather than just scaling it. The reaction flux
// also updates B in place — B is only ever written by this kernel, the
// M kernel and the prey-eating kernel, at disjoint steps of the
// pipeline (spec §4.4, §5).
func StepO(b *field.Buffers, p *config.Bundle) {
	cur := b.O.Current()
	next := b.O.Next()
	rCur := b.R.Current()
	mCur := b.M.Current()
	dt := float32(p.Sim.DeltaTime)

	o0 := float32(p.O.O0)
	relaxationRate := float32(p.O.RelaxationRate)
	restoreRate := float32(p.O.RestoreRate)
	diffusionRate := float32(p.O.DiffusionRate)
	reactionRate := float32(p.Reaction.Rate)
	bDecay := float32(p.Biomass.BDecayRate)

	terrainFlow := p.Terrain.Enabled && p.Terrain.FlowStrength > 0
	flowStrength := float32(p.Terrain.FlowStrength)

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			i := b.Idx(x, y)
			oVal := cur[i]

			lap := b.Laplacian(cur, x, y)

			var advection float32
			if terrainFlow {
				zdx, zdy := b.Gradient(b.Z.Current(), x, y)
				vx, vy := -flowStrength*zdx, -flowStrength*zdy
				dodx, dody := b.Gradient(cur, x, y)
				advection = -(vx*dodx + vy*dody) * dt
			}

			fRaw := reactionRate * rCur[i] * oVal
			fMax := oVal / dt
			if dt <= 0 {
				fMax = 0
			}
			f := fRaw
			if f > fMax {
				f = fMax
			}
			g := rngx.Clamp01(mCur[i])
			fFix := g * f
			fWaste := (1 - g) * f
			_ = fWaste // used by StepH/Terrain which recompute it identically

			restore := relaxationRate * restoreRate * (o0 - oVal) * dt
			diffusion := diffusionRate * lap * dt
			consumption := f * dt

			next[i] = rngx.Clamp01(oVal + restore + diffusion + advection - consumption)

			bVal := b.B[i]
			bVal = bVal + fFix*dt - bVal*bDecay*dt
			b.B[i] = rngx.Clamp(bVal, 0, 10)
		}
	}
}

// ReactionFlux recomputes the §4.4 step-3 split at (x, y) from the
// *current* R, O, M buffers. StepH and StepTerrain both need F_waste
// and call this rather than threading it through as extra state,
// matching spec §4.6's note that waste production is a read of R/O/M,
// not a value carried over from StepO.
func ReactionFlux(b *field.Buffers, p *config.Bundle, x, y int) (fFix, fWaste float32) {
	dt := float32(p.Sim.DeltaTime)
	i := b.Idx(x, y)
	oVal := b.O.Current()[i]
	rVal := b.R.Current()[i]
	mVal := b.M.Current()[i]

	reactionRate := float32(p.Reaction.Rate)
	fRaw := reactionRate * rVal * oVal
	fMax := float32(0)
	if dt > 0 {
		fMax = oVal / dt
	}
	f := fRaw
	if f > fMax {
		f = fMax
	}
	g := rngx.Clamp01(mVal)
	return g * f, (1 - g) * f
}
