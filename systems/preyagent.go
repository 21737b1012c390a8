package systems

import (
	"math"

	"github.com/keias1108/hyd-u/agent"
	"github.com/keias1108/hyd-u/config"
	"github.com/keias1108/hyd-u/field"
	"github.com/keias1108/hyd-u/rngx"
)

// StepPrey advances the P pool by one sub-step. Same shape as
// StepPredators but driven by the ∇B food gradient, with hunger-scaled
// exploration, in-place B consumption and predator-pressure damage from
// Dp2 (spec §4.11).
func StepPrey(b *field.Buffers, pool *agent.Pool, p *config.Bundle, quantisedTime uint32) {
	dt := float32(p.Sim.DeltaTime)
	params := p.P

	biasStrength := float32(params.BiasStrength)
	friction := float32(params.Friction)
	noiseStrength := float32(params.NoiseStrength)
	speed := float32(params.Speed)
	energyDecay := float32(params.EnergyDecayRate)
	eatAmount := float32(params.EatAmount)
	energyFromEat := float32(params.EnergyFromEat)
	minEnergy := float32(params.MinEnergy)
	maxEnergy := float32(params.MaxEnergy)
	reproduceThreshold := float32(params.ReproduceThreshold)
	spawnRadius := float32(params.ReproduceSpawnRadius)
	predationStrength := float32(p.P2.PredationStrength)

	terrainDrift := p.Terrain.Enabled && p.Terrain.ParticleDriftStrength > 0
	driftStrength := float32(p.Terrain.ParticleDriftStrength)
	h0 := float32(p.Terrain.H0)
	if h0 < 1e-6 {
		h0 = 1e-6
	}

	n := pool.Capacity()
	pool.Invalid = 0

	// Children are collected here rather than written into pool.Next as
	// they are born: a child's slot can be an index this loop has not
	// reached yet, and that slot's own free-agent branch would
	// overwrite it later in the same pass (spec §4.10.12 step 12 /
	// §4.11, design notes "Reproduction race"). Applying them after the
	// main pass makes every child write final.
	type spawn struct {
		slot   int
		record agent.Record
	}
	var spawns []spawn

	for i := 0; i < n; i++ {
		r := pool.Cur[i]
		if r.State != agent.StateActive {
			pool.Next[i] = r
			continue
		}

		if math.IsNaN(float64(r.X)) || math.IsNaN(float64(r.Y)) {
			r.State = agent.StateFree
			pool.Invalid++
			pool.Next[i] = r
			continue
		}

		xi, yi := b.ClampXY(int(r.X), int(r.Y))

		bdx, bdy := b.Gradient(b.B, xi, yi)
		gradStrength := rngx.Length(bdx, bdy)
		hasFood := gradStrength > 0.002

		r0, r1, r2 := rngx.Draw3(i, quantisedTime)

		noiseAngle := r2 * 2 * math.Pi
		noiseX := noiseStrength * float32(math.Cos(noiseAngle))
		noiseY := noiseStrength * float32(math.Sin(noiseAngle))

		hungerFactor := rngx.Clamp01(1 - r.Energy)
		turnProb := 0.02 + hungerFactor*0.08

		var desiredX, desiredY float32
		if hasFood {
			ndx, ndy := rngx.Normalize(bdx, bdy)
			mix := 1 - rngx.Clamp01(gradStrength*0.5)
			dirX := biasStrength*ndx + noiseX*mix
			dirY := biasStrength*ndy + noiseY*mix
			dirX, dirY = rngx.Normalize(dirX, dirY)
			desiredX, desiredY = dirX*speed, dirY*speed
		} else {
			if r1 < turnProb {
				r.Age = normalizeHeading(r.Age + (r1*2-1)*float32(math.Pi))
			}
			dirX, dirY := float32(math.Cos(float64(r.Age))), float32(math.Sin(float64(r.Age)))
			hungerNoise := 0.5 * hungerFactor
			desiredX = dirX*speed + hungerNoise*noiseX*speed
			desiredY = dirY*speed + hungerNoise*noiseY*speed
		}

		if terrainDrift {
			zdx, zdy := b.Gradient(b.Z.Current(), xi, yi)
			desiredX += -driftStrength * zdx / h0
			desiredY += -driftStrength * zdy / h0
		}

		damp := rngx.Clamp01(1 - friction*dt)
		r.VX = damp*r.VX + (1-damp)*desiredX
		r.VY = damp*r.VY + (1-damp)*desiredY
		if speedMag := rngx.Length(r.VX, r.VY); speedMag > 2*speed && speedMag > 0 {
			scale := (2 * speed) / speedMag
			r.VX *= scale
			r.VY *= scale
		}

		r.X += r.VX * dt
		r.Y += r.VY * dt

		reflected := false
		if r.X < 0 {
			r.X = -r.X
			r.VX = -r.VX
			reflected = true
		} else if r.X > float32(b.W-1) {
			r.X = 2*float32(b.W-1) - r.X
			r.VX = -r.VX
			reflected = true
		}
		if r.Y < 0 {
			r.Y = -r.Y
			r.VY = -r.VY
			reflected = true
		} else if r.Y > float32(b.H-1) {
			r.Y = 2*float32(b.H-1) - r.Y
			r.VY = -r.VY
			reflected = true
		}
		if reflected {
			r.VX *= 0.7
			r.VY *= 0.7
			r.Age = float32(math.Atan2(float64(r.VY), float64(r.VX)))
		}
		r.X = rngx.Clamp(r.X, 0, float32(b.W-1))
		r.Y = rngx.Clamp(r.Y, 0, float32(b.H-1))

		r.Energy -= energyDecay * dt
		cellIdx := b.Idx(xi, yi)
		if params.EatEnabled {
			consume := eatAmount * dt
			if consume > b.B[cellIdx] {
				consume = b.B[cellIdx]
			}
			b.B[cellIdx] -= consume
			r.Energy += consume * energyFromEat
		}
		r.Energy -= predationStrength * dt * float32(b.Dp2[cellIdx])

		if params.ReproduceEnabled && r.Energy >= reproduceThreshold && r.State == agent.StateActive {
			start := int(r0 * float32(n))
			if slot, ok := agent.FindFreeSlot(pool.Cur, start, 8); ok {
				r.Energy *= 0.5
				angle := r1 * 2 * math.Pi
				radius := spawnRadius * (0.5 + r2*0.5)
				child := agent.Record{
					X:      r.X + radius*float32(math.Cos(angle)),
					Y:      r.Y + radius*float32(math.Sin(angle)),
					VX:     r.VX*0.5 + (rngx.Uniform(rngx.Seed(i, quantisedTime, 3))*2-1)*0.3*speed,
					VY:     r.VY*0.5 + (rngx.Uniform(rngx.Seed(i, quantisedTime, 4))*2-1)*0.3*speed,
					Energy: r.Energy,
					Type:   agent.KindPrey,
					State:  agent.StateActive,
					Age:    float32(angle),
				}
				child.X = rngx.Clamp(child.X, 0, float32(b.W-1))
				child.Y = rngx.Clamp(child.Y, 0, float32(b.H-1))
				spawns = append(spawns, spawn{slot: slot, record: child})
			}
		}

		if r.Energy > maxEnergy {
			r.Energy = maxEnergy
		}
		if r.Energy < minEnergy {
			r.State = agent.StateFree
		}

		pool.Next[i] = r
	}

	for _, sp := range spawns {
		pool.Next[sp.slot] = sp.record
	}
}
