package systems

import (
	"math"

	"github.com/keias1108/hyd-u/config"
	"github.com/keias1108/hyd-u/field"
	"github.com/keias1108/hyd-u/rngx"
)

// StepR advances the R (reducing substance) field by one sub-step:
// radial source injection, 4-neighbour diffusion, optional fluid and
// terrain advection, and linear decay (spec §4.3).
func StepR(b *field.Buffers, p *config.Bundle) {
	cur := b.R.Current()
	next := b.R.Next()
	dt := float32(p.Sim.DeltaTime)

	cx := float32(p.R.CenterX)
	cy := float32(p.R.CenterY)
	decayRadius := float32(p.R.DecayRadius)
	maxStrength := float32(p.R.MaxStrength)
	falloffPower := float64(p.R.FalloffPower)
	diffusionRate := float32(p.R.DiffusionRate)
	decayRate := float32(p.R.DecayRate)

	var advVX, advVY float32
	if p.R.AdvectionOn {
		angle := float64(p.Sim.CurrentTime) * 0.5
		rvx, rvy := float32(p.R.AdvectionVX), float32(p.R.AdvectionVY)
		s, c := float32(math.Sin(angle)), float32(math.Cos(angle))
		advVX = rvx*c - rvy*s
		advVY = rvx*s + rvy*c
	}

	terrainFlow := p.Terrain.Enabled && p.Terrain.FlowStrength > 0
	flowStrength := float32(p.Terrain.FlowStrength)

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			i := b.Idx(x, y)
			center := cur[i]

			d := rngx.Hypot(float32(x)-cx, float32(y)-cy)
			n := d / decayRadius
			falloff := 1 - rngx.Smoothstep(0, 1, n)
			source := maxStrength * float32(math.Pow(float64(falloff), falloffPower))

			lap := b.Laplacian(cur, x, y)

			var advection float32
			if p.R.AdvectionOn {
				drdx, drdy := b.Gradient(cur, x, y)
				advection += -(advVX*drdx + advVY*drdy) * dt
			}
			if terrainFlow {
				zdx, zdy := b.Gradient(b.Z.Current(), x, y)
				vx, vy := -flowStrength*zdx, -flowStrength*zdy
				drdx, drdy := b.Gradient(cur, x, y)
				advection += -(vx*drdx + vy*drdy) * dt
			}

			decay := center * decayRate * dt
			v := center + source*dt + diffusionRate*lap*dt + advection - decay
			next[i] = rngx.Clamp01(v)
		}
	}
}
