package systems

import (
	"github.com/keias1108/hyd-u/config"
	"github.com/keias1108/hyd-u/field"
	"github.com/keias1108/hyd-u/rngx"
)

// StepHProduce runs the nonlinear production half of the H kernel:
// waste heat from the R·O reaction, minus linear decay (spec §4.6
// "Update step"). Diffusion is handled separately by StepHDiffuse so
// the scheduler can swap between the two passes, decoupling the
// nonlinear production term from the linear smoothing term for
// stability tuning (spec §4.6 rationale).
func StepHProduce(b *field.Buffers, p *config.Bundle) {
	cur := b.H_.Current()
	next := b.H_.Next()
	dt := float32(p.Sim.DeltaTime)
	decayRate := float32(p.Heat.DecayRate)

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			i := b.Idx(x, y)
			_, fWaste := ReactionFlux(b, p, x, y)
			v := cur[i] + fWaste*dt - cur[i]*decayRate*dt
			next[i] = rngx.Clamp(v, 0, 10)
		}
	}
}

// StepHDiffuse applies pure diffusion to H, reading the buffer left
// current by the scheduler's swap after StepHProduce (spec §4.6
// "Diffuse step").
func StepHDiffuse(b *field.Buffers, p *config.Bundle) {
	cur := b.H_.Current()
	next := b.H_.Next()
	dt := float32(p.Sim.DeltaTime)
	diffusionRate := float32(p.Heat.DiffusionRate)

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			i := b.Idx(x, y)
			lap := b.Laplacian(cur, x, y)
			v := cur[i] + diffusionRate*lap*dt
			next[i] = rngx.Clamp(v, 0, 10)
		}
	}
}
