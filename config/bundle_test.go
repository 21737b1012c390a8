package config

import "testing"

func TestDefaultProducesClampedBundle(t *testing.T) {
	b := Default()
	if b.Grid.W <= 0 || b.Grid.H <= 0 {
		t.Fatalf("default grid dimensions invalid: %+v", b.Grid)
	}
	if b.O.O0 < 0 || b.O.O0 > 1 {
		t.Fatalf("default o0 = %v, out of [0,1]", b.O.O0)
	}
}

func TestSetClampsOutOfRangeRatherThanFailing(t *testing.T) {
	b := Default()
	b.Set("mGrowRate", 1e9)
	if b.Biomass.GrowRate != 100 {
		t.Fatalf("Set should have clamped mGrowRate to 100, got %v", b.Biomass.GrowRate)
	}

	b.Set("mGrowRate", -5)
	if b.Biomass.GrowRate != 0 {
		t.Fatalf("Set should have clamped mGrowRate to 0, got %v", b.Biomass.GrowRate)
	}
}

func TestSetIgnoresUnknownParam(t *testing.T) {
	b := Default()
	before := b.ToMap()
	b.Set("thisParamDoesNotExist", 42)
	after := b.ToMap()
	if len(before) != len(after) {
		t.Fatalf("Set with an unknown name should not add/remove entries: before=%d after=%d", len(before), len(after))
	}
}

func TestSetReturnsReinitSignals(t *testing.T) {
	b := Default()
	if got := b.Set("o0", 0.5); got != "O" {
		t.Errorf("Set(o0,...) reinit = %q, want \"O\"", got)
	}
	if got := b.Set("h0", 0.5); got != "H" {
		t.Errorf("Set(h0,...) reinit = %q, want \"H\"", got)
	}
	if got := b.Set("pCount", 10); got != "P" {
		t.Errorf("Set(pCount,...) reinit = %q, want \"P\"", got)
	}
	if got := b.Set("p2Count", 10); got != "P2" {
		t.Errorf("Set(p2Count,...) reinit = %q, want \"P2\"", got)
	}
	if got := b.Set("mGrowRate", 0.5); got != "" {
		t.Errorf("Set(mGrowRate,...) reinit = %q, want \"\"", got)
	}
}

func TestCountsClampToGridCapacity(t *testing.T) {
	b := Default()
	b.Grid.MaxParticles = 50
	b.Set("pCount", 1000)
	if b.P.Count != 50 {
		t.Fatalf("pCount = %d, want clamped to MaxParticles 50", b.P.Count)
	}
}

func TestToMapFromMapRoundTrip(t *testing.T) {
	b := Default()
	b.Set("mGrowRate", 0.42)
	m := b.ToMap()

	c := Default()
	c.FromMap(m)
	if c.Biomass.GrowRate != b.Biomass.GrowRate {
		t.Fatalf("FromMap(ToMap()) lost mGrowRate: got %v, want %v", c.Biomass.GrowRate, b.Biomass.GrowRate)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := Default()
	c := b.Clone()
	c.Biomass.GrowRate = 999
	if b.Biomass.GrowRate == 999 {
		t.Fatal("Clone should not alias the original bundle")
	}
}

func TestLoadEmptyPathEqualsDefault(t *testing.T) {
	b, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if b.Grid.W != Default().Grid.W {
		t.Fatalf("Load(\"\") grid width = %d, want %d", b.Grid.W, Default().Grid.W)
	}
}
