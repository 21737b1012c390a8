package systems

import (
	"testing"

	"github.com/keias1108/hyd-u/config"
	"github.com/keias1108/hyd-u/field"
)

func TestReactionFluxSplitsIntoFixAndWaste(t *testing.T) {
	b := field.NewBuffers(4, 4)
	p := config.Default()
	b.R.Current()[0] = 0.5
	b.O.Current()[0] = 0.5
	b.M.Current()[0] = 0.3

	fFix, fWaste := ReactionFlux(b, p, 0, 0)

	reactionRate := float32(p.Reaction.Rate)
	dt := float32(p.Sim.DeltaTime)
	fRaw := reactionRate * 0.5 * 0.5
	fMax := float32(0.5) / dt
	want := fRaw
	if want > fMax {
		want = fMax
	}
	wantFix := 0.3 * want
	wantWaste := 0.7 * want

	if abs32(fFix-wantFix) > 1e-5 {
		t.Errorf("fFix = %v, want %v", fFix, wantFix)
	}
	if abs32(fWaste-wantWaste) > 1e-5 {
		t.Errorf("fWaste = %v, want %v", fWaste, wantWaste)
	}
	if abs32((fFix+fWaste)-want) > 1e-5 {
		t.Errorf("fFix+fWaste = %v, want total flux %v", fFix+fWaste, want)
	}
}

func TestStepOZeroReactionConservesNoMassToB(t *testing.T) {
	b := field.NewBuffers(4, 4)
	p := config.Default()
	p.Reaction.Rate = 0
	p.O.RestoreRate = 0
	p.O.DiffusionRate = 0
	p.Terrain.Enabled = false
	b.R.Current()[0] = 1.0
	b.O.Current()[0] = 0.5

	StepO(b, p)

	if got := b.O.Next()[0]; got != 0.5 {
		t.Fatalf("O.Next()[0] = %v, want unchanged 0.5 with reaction/restore/diffusion off", got)
	}
	if got := b.B[0]; got != 0 {
		t.Fatalf("B[0] = %v, want 0 with no reaction", got)
	}
}

func TestStepOZeroRelaxationRateDisablesRestoreRegardlessOfRestoreRate(t *testing.T) {
	b := field.NewBuffers(4, 4)
	p := config.Default()
	p.Reaction.Rate = 0
	p.R.MaxStrength = 0
	p.O.RelaxationRate = 0
	p.O.DiffusionRate = 0
	p.Terrain.Enabled = false
	// RestoreRate is left at its nonzero default: spec invariant 5 only
	// zeroes oRelaxationRate, and expects that alone to stop relaxation.
	for i := range b.O.Current() {
		b.O.Current()[i] = 0.2
	}

	StepO(b, p)

	for i, v := range b.O.Next() {
		if v != 0.2 {
			t.Fatalf("O.Next()[%d] = %v, want unchanged 0.2 with relaxationRate=0", i, v)
		}
	}
}

func TestStepOStaysInUnitRange(t *testing.T) {
	b := field.NewBuffers(12, 12)
	p := config.Default()
	for i := range b.R.Current() {
		b.R.Current()[i] = 0.9
	}
	StepO(b, p)
	for i, v := range b.O.Next() {
		if v < 0 || v > 1 {
			t.Fatalf("O.Next()[%d] = %v, out of [0,1]", i, v)
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
