package config

import "log/slog"

// paramRange describes a named, clampable scalar in the bundle.
type paramRange struct {
	ptr      *float64
	lo, hi   float64
}

// registry builds the name -> range table used by Set/ToMap/FromMap.
// Rebuilt per call since it holds pointers into this *Bundle.
func (b *Bundle) registry() map[string]paramRange {
	return map[string]paramRange{
		"rCenterX":                   {&b.R.CenterX, 0, 1e6},
		"rCenterY":                   {&b.R.CenterY, 0, 1e6},
		"rMaxStrength":               {&b.R.MaxStrength, 0, 10},
		"rDecayRadius":               {&b.R.DecayRadius, 0.01, 1e6},
		"rFalloffPower":              {&b.R.FalloffPower, 0.01, 16},
		"rDiffusionRate":             {&b.R.DiffusionRate, 0, 10},
		"rDecayRate":                 {&b.R.DecayRate, 0, 10},
		"rAdvectionVX":               {&b.R.AdvectionVX, -100, 100},
		"rAdvectionVY":               {&b.R.AdvectionVY, -100, 100},
		"o0":                         {&b.O.O0, 0, 1},
		"oRelaxationRate":            {&b.O.RelaxationRate, 0, 100},
		"oDiffusionRate":             {&b.O.DiffusionRate, 0, 10},
		"restoreRate":                {&b.O.RestoreRate, 0, 100},
		"reactionRate":               {&b.Reaction.Rate, 0, 100},
		"h0":                         {&b.Heat.H0, 0, 10},
		"hDecayRate":                 {&b.Heat.DecayRate, 0, 100},
		"hDiffusionRate":             {&b.Heat.DiffusionRate, 0, 10},
		"mGrowRate":                  {&b.Biomass.GrowRate, 0, 100},
		"mDeathRate":                 {&b.Biomass.DeathRate, 0, 100},
		"bDecayRate":                 {&b.Biomass.BDecayRate, 0, 100},
		"kBase":                      {&b.Biomass.KBase, 0, 10},
		"kAlpha":                     {&b.Biomass.KAlpha, 0, 10},
		"bLongRate":                  {&b.Biomass.LongRate, 0, 100},
		"mYield":                     {&b.Biomass.Yield, 0, 10},
		"deltaTime":                  {&b.Sim.DeltaTime, 0, 10},
		"currentTime":                {&b.Sim.CurrentTime, 0, 1e12},
		"terrainH0":                  {&b.Terrain.H0, 1e-6, 1000},
		"terrainDepositionRate":      {&b.Terrain.DepositionRate, 0, 100},
		"terrainBioDepositionRate":   {&b.Terrain.BioDepositionRate, 0, 100},
		"terrainErosionRate":         {&b.Terrain.ErosionRate, 0, 100},
		"terrainHeightErosionAlpha":  {&b.Terrain.HeightErosionAlpha, 0, 100},
		"terrainDiffusionRate":       {&b.Terrain.DiffusionRate, 0, 10},
		"terrainTalusSlope":          {&b.Terrain.TalusSlope, 0, 1000},
		"terrainThermalRate":         {&b.Terrain.ThermalRate, 0, 100},
		"terrainFlowStrength":        {&b.Terrain.FlowStrength, 0, 100},
		"terrainParticleDriftStrength": {&b.Terrain.ParticleDriftStrength, 0, 100},
		"pBiasStrength":              {&b.P.BiasStrength, 0, 100},
		"pFriction":                  {&b.P.Friction, 0, 100},
		"pNoiseStrength":             {&b.P.NoiseStrength, 0, 100},
		"pSpeed":                     {&b.P.Speed, 0, 1000},
		"pEatAmount":                 {&b.P.EatAmount, 0, 100},
		"pEnergyDecayRate":           {&b.P.EnergyDecayRate, 0, 100},
		"pEnergyFromEat":             {&b.P.EnergyFromEat, 0, 100},
		"pMinEnergy":                 {&b.P.MinEnergy, 0, 1000},
		"pMaxEnergy":                 {&b.P.MaxEnergy, 0, 1000},
		"pReproduceThreshold":        {&b.P.ReproduceThreshold, 0, 1000},
		"pReproduceSpawnRadius":      {&b.P.ReproduceSpawnRadius, 0, 1000},
		"p2BiasStrength":             {&b.P2.BiasStrength, 0, 100},
		"p2Friction":                 {&b.P2.Friction, 0, 100},
		"p2NoiseStrength":            {&b.P2.NoiseStrength, 0, 100},
		"p2Speed":                    {&b.P2.Speed, 0, 1000},
		"p2EatAmount":                {&b.P2.EatAmount, 0, 100},
		"p2EnergyDecayRate":          {&b.P2.EnergyDecayRate, 0, 100},
		"p2EnergyFromEat":            {&b.P2.EnergyFromEat, 0, 100},
		"p2MinEnergy":                {&b.P2.MinEnergy, 0, 1000},
		"p2MaxEnergy":                {&b.P2.MaxEnergy, 0, 1000},
		"p2ReproduceThreshold":       {&b.P2.ReproduceThreshold, 0, 1000},
		"p2ReproduceSpawnRadius":     {&b.P2.ReproduceSpawnRadius, 0, 1000},
		"p2PredationStrength":        {&b.P2.PredationStrength, 0, 1000},
	}
}

// boolParams maps a name to the bool field it controls, for the
// {0,1}-valued switches spec §4.1 lists alongside the float ranges
// (rAdvectionEnabled, terrainEnabled, ...).
func (b *Bundle) boolParams() map[string]*bool {
	return map[string]*bool{
		"rAdvectionEnabled":            &b.R.AdvectionOn,
		"terrainEnabled":               &b.Terrain.Enabled,
		"terrainThermalErosionEnabled": &b.Terrain.ThermalErosionOn,
		"pEatEnabled":                  &b.P.EatEnabled,
		"pReproduceEnabled":            &b.P.ReproduceEnabled,
		"p2EatEnabled":                 &b.P2.EatEnabled,
		"p2ReproduceEnabled":           &b.P2.ReproduceEnabled,
	}
}

// Clamp forces every ranged field back into its declared bounds. Called
// after Default/Load; Set clamps only the one value it writes and does
// not call Clamp.
func (b *Bundle) Clamp() {
	for _, r := range b.registry() {
		if *r.ptr < r.lo {
			*r.ptr = r.lo
		} else if *r.ptr > r.hi {
			*r.ptr = r.hi
		}
	}
	if b.Biomass.KBase+b.Biomass.KAlpha < 0.001 {
		b.Biomass.KBase = 0.001
	}
}

// Set applies a named parameter change, clamping into range
// (ParamOutOfRange, spec §7 — not a failure) or logging and ignoring an
// unknown name (UnknownParam, spec §7 — permissive).
//
// Returns the name of the field/pool the owning Sim must reinitialize
// after this change ("" when none), per spec §6: o0 -> "O", h0 -> "H",
// pCount -> "P", p2Count -> "P2".
func (b *Bundle) Set(name string, value float64) (reinit string) {
	if r, ok := b.registry()[name]; ok {
		*r.ptr = value
		if value < r.lo {
			*r.ptr = r.lo
		} else if value > r.hi {
			*r.ptr = r.hi
		}
		return reinitFor(name)
	}
	if bp, ok := b.boolParams()[name]; ok {
		*bp = value > 0.5
		return ""
	}
	switch name {
	case "speedMultiplier":
		n := int(value)
		if n < 1 {
			n = 1
		}
		b.Sim.SpeedMultiplier = n
		return ""
	case "pCount":
		n := int(value)
		if n < 0 {
			n = 0
		}
		if n > b.Grid.MaxParticles {
			n = b.Grid.MaxParticles
		}
		b.P.Count = n
		return "P"
	case "p2Count":
		n := int(value)
		if n < 0 {
			n = 0
		}
		if n > b.Grid.MaxPredators {
			n = b.Grid.MaxPredators
		}
		b.P2.Count = n
		return "P2"
	}
	slog.Warn("config: ignoring unknown parameter", "name", name, "value", value)
	return ""
}

func reinitFor(name string) string {
	switch name {
	case "o0":
		return "O"
	case "h0":
		return "H"
	}
	return ""
}

// ToMap flattens the bundle into the {name: f64} persistence form of
// spec §6.
func (b *Bundle) ToMap() map[string]float64 {
	out := make(map[string]float64, 64)
	for name, r := range b.registry() {
		out[name] = *r.ptr
	}
	for name, bp := range b.boolParams() {
		if *bp {
			out[name] = 1
		} else {
			out[name] = 0
		}
	}
	out["speedMultiplier"] = float64(b.Sim.SpeedMultiplier)
	out["pCount"] = float64(b.P.Count)
	out["p2Count"] = float64(b.P2.Count)
	return out
}

// FromMap applies a persisted {name: f64} bundle on top of the current
// values. Unknown keys are ignored (spec §6/§7).
func (b *Bundle) FromMap(m map[string]float64) {
	for name, value := range m {
		b.Set(name, value)
	}
}
