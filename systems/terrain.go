package systems

import (
	"math"

	"github.com/keias1108/hyd-u/config"
	"github.com/keias1108/hyd-u/field"
)

// StepTerrain advances the Z (terrain height) field: deposition from
// reaction waste and biomass, erosion driven by the |∇R| flow proxy and
// bounded by the bedrock floor, smoothing diffusion, and optional thermal erosion
// (talus relaxation). When terrain is disabled the field is copied
// through unchanged (spec §4.8).
func StepTerrain(b *field.Buffers, p *config.Bundle) {
	cur := b.Z.Current()
	next := b.Z.Next()

	if !p.Terrain.Enabled {
		copy(next, cur)
		return
	}

	dt := float32(p.Sim.DeltaTime)
	h0 := float32(p.Terrain.H0)
	if h0 < 1e-6 {
		h0 = 1e-6
	}

	depositionRate := float32(p.Terrain.DepositionRate)
	bioDepositionRate := float32(p.Terrain.BioDepositionRate)
	erosionRate := float32(p.Terrain.ErosionRate)
	heightErosionAlpha := float32(p.Terrain.HeightErosionAlpha)
	diffusionRate := float32(p.Terrain.DiffusionRate)
	thermalOn := p.Terrain.ThermalErosionOn
	talusSlope := float32(p.Terrain.TalusSlope)
	thermalRate := float32(p.Terrain.ThermalRate)

	rCur := b.R.Current()

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			i := b.Idx(x, y)
			zVal := cur[i]
			zRock := b.ZRock[i]

			zdx, zdy := b.Gradient(cur, x, y)
			slope := float32(math.Hypot(float64(zdx), float64(zdy)))
			lapZ := b.Laplacian(cur, x, y)

			rdx, rdy := b.Gradient(rCur, x, y)
			flowProxy := float32(math.Hypot(float64(rdx), float64(rdy)))

			_, fWaste := ReactionFlux(b, p, x, y)
			bLong := b.BLong[i]
			if bLong < 0 {
				bLong = 0
			}
			deposit := depositionRate*fWaste*dt + bioDepositionRate*bLong*dt

			heightBoost := float32(1) + heightErosionAlpha*(1-float32(math.Exp(-float64(maxF32(zVal, 0))/float64(h0))))
			sediment := maxF32(zVal-zRock, 0)
			sedimentFactor := clampFloat(sediment/h0, 0, 1)
			erosion := erosionRate * flowProxy * heightBoost * sedimentFactor * dt

			smoothing := diffusionRate * lapZ * dt

			var thermal float32
			if thermalOn {
				thermal = thermalRate * maxF32(slope-talusSlope, 0) * lapZ * dt
			}

			v := zVal + deposit - erosion + smoothing + thermal
			if v < zRock {
				v = zRock
			}
			if v > 1000 {
				v = 1000
			}
			next[i] = v
		}
	}
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
