// Package main searches the simulation's parameter bundle with CMA-ES
// for a combination that sustains a predator-prey equilibrium.
package main

import "github.com/keias1108/hyd-u/config"

// ParamSpec names one bundle field CMA-ES is allowed to move, with the
// bounds it must stay within.
type ParamSpec struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
}

// ParamVector is the ordered set of parameters under search.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector returns the standard search space: the knobs that
// most directly shape the predator-prey equilibrium (reproduction
// thresholds, predation pressure, eating rates) rather than the full
// bundle.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "pReproduceThreshold", Min: 0.5, Max: 3.0, Default: 1.2},
			{Name: "p2ReproduceThreshold", Min: 0.5, Max: 3.0, Default: 1.5},
			{Name: "pEnergyDecayRate", Min: 0.01, Max: 0.3, Default: 0.05},
			{Name: "p2EnergyDecayRate", Min: 0.01, Max: 0.3, Default: 0.08},
			{Name: "pEnergyFromEat", Min: 0.1, Max: 5.0, Default: 1.0},
			{Name: "p2EnergyFromEat", Min: 0.1, Max: 5.0, Default: 1.0},
			{Name: "p2PredationStrength", Min: 0.0, Max: 2.0, Default: 0.3},
			{Name: "mGrowRate", Min: 0.01, Max: 2.0, Default: 0.5},
			{Name: "bDecayRate", Min: 0.0, Max: 1.0, Default: 0.1},
		},
	}
}

// Dim returns the number of searched parameters.
func (pv *ParamVector) Dim() int { return len(pv.Specs) }

// DefaultVector returns the search space's default starting point.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		v[i] = s.Default
	}
	return v
}

// Normalize maps raw values into [0,1] for CMA-ES's isotropic step size.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		out[i] = (raw[i] - s.Min) / (s.Max - s.Min)
	}
	return out
}

// Denormalize inverts Normalize.
func (pv *ParamVector) Denormalize(norm []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		out[i] = s.Min + norm[i]*(s.Max-s.Min)
	}
	return out
}

// Clamp bounds every value to its spec's range.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		val := v[i]
		if val < s.Min {
			val = s.Min
		}
		if val > s.Max {
			val = s.Max
		}
		out[i] = val
	}
	return out
}

// ApplyToBundle writes clamped values into b via the ordinary
// clamp-on-set path (config.Bundle.Set), the same permissive path a
// live caller would use (spec §4.1 "Set semantics").
func (pv *ParamVector) ApplyToBundle(b *config.Bundle, values []float64) {
	clamped := pv.Clamp(values)
	for i, s := range pv.Specs {
		b.Set(s.Name, clamped[i])
	}
}
