package systems

import (
	"github.com/keias1108/hyd-u/config"
	"github.com/keias1108/hyd-u/field"
	"github.com/keias1108/hyd-u/rngx"
)

// StepM advances M (microbe density) with logistic growth against a
// carrying capacity driven by the slow B_long average, consumes B in
// place, and advances the B_long moving average (spec §4.7).
func StepM(b *field.Buffers, p *config.Bundle) {
	cur := b.M.Current()
	next := b.M.Next()
	dt := float32(p.Sim.DeltaTime)

	kBase := float32(p.Biomass.KBase)
	kAlpha := float32(p.Biomass.KAlpha)
	growRate := float32(p.Biomass.GrowRate)
	deathRate := float32(p.Biomass.DeathRate)
	yield := float32(p.Biomass.Yield)
	longRate := float32(p.Biomass.LongRate)

	for i := 0; i < b.G; i++ {
		mVal := cur[i]
		bVal := b.B[i]
		bLong := b.BLong[i]

		k := kBase + kAlpha*bLong
		if k < 0.001 {
			k = 0.001
		}

		growth := growRate * bVal * (1 - mVal/k)
		death := deathRate * mVal
		dM := (growth - death) * dt

		consume := dM
		if consume < 0 {
			consume = 0
		}
		consume *= yield
		if consume > bVal {
			consume = bVal
		}
		bNew := rngx.Clamp(bVal-consume, 0, 10)

		bLongNew := rngx.Clamp(bLong+longRate*(bNew-bLong)*dt, 0, 10)

		b.B[i] = bNew
		b.BLong[i] = bLongNew
		next[i] = rngx.Clamp(mVal+dM, 0, 10)
	}
}
