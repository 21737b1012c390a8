// Package config holds the simulation's parameter bundle.
//
// Unlike the common singleton-config pattern, a Bundle is owned by a
// single *sim.Sim instance (spec §3 "Ownership"): callers get a fresh
// copy from Default or Load and hand it to sim.Init. There is no
// process-wide Cfg().
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// RSourceParams controls the R (reducing substance) source, diffusion,
// advection and decay.
type RSourceParams struct {
	CenterX        float64 `yaml:"center_x"`
	CenterY        float64 `yaml:"center_y"`
	MaxStrength    float64 `yaml:"max_strength"`
	DecayRadius    float64 `yaml:"decay_radius"`
	FalloffPower   float64 `yaml:"falloff_power"`
	DiffusionRate  float64 `yaml:"diffusion_rate"`
	DecayRate      float64 `yaml:"decay_rate"`
	AdvectionOn    bool    `yaml:"advection_enabled"`
	AdvectionVX    float64 `yaml:"advection_vx"`
	AdvectionVY    float64 `yaml:"advection_vy"`
}

// OxidantParams controls O relaxation and diffusion.
type OxidantParams struct {
	O0             float64 `yaml:"o0"`
	RelaxationRate float64 `yaml:"relaxation_rate"`
	DiffusionRate  float64 `yaml:"diffusion_rate"`
	RestoreRate    float64 `yaml:"restore_rate"`
}

// HeatParams controls H production decay and diffusion.
type HeatParams struct {
	H0            float64 `yaml:"h0"`
	DecayRate     float64 `yaml:"decay_rate"`
	DiffusionRate float64 `yaml:"diffusion_rate"`
}

// BiomassParams controls M logistic growth and the B/B_long feed pools.
type BiomassParams struct {
	GrowRate    float64 `yaml:"grow_rate"`
	DeathRate   float64 `yaml:"death_rate"`
	BDecayRate  float64 `yaml:"b_decay_rate"`
	KBase       float64 `yaml:"k_base"`
	KAlpha      float64 `yaml:"k_alpha"`
	LongRate    float64 `yaml:"long_rate"`
	Yield       float64 `yaml:"yield"`
}

// TerrainParams controls Z deposition, erosion, diffusion and talus.
type TerrainParams struct {
	Enabled                bool    `yaml:"enabled"`
	H0                     float64 `yaml:"h0"`
	DepositionRate         float64 `yaml:"deposition_rate"`
	BioDepositionRate      float64 `yaml:"bio_deposition_rate"`
	ErosionRate            float64 `yaml:"erosion_rate"`
	HeightErosionAlpha     float64 `yaml:"height_erosion_alpha"`
	DiffusionRate          float64 `yaml:"diffusion_rate"`
	ThermalErosionOn       bool    `yaml:"thermal_erosion_enabled"`
	TalusSlope             float64 `yaml:"talus_slope"`
	ThermalRate            float64 `yaml:"thermal_rate"`
	FlowStrength           float64 `yaml:"flow_strength"`
	ParticleDriftStrength  float64 `yaml:"particle_drift_strength"`
}

// AgentParams controls one agent species (prey or predator). Not every
// field is meaningful for both: PredationStrength only applies to the
// predator population (§4.1 "plus p2PredationStrength").
type AgentParams struct {
	Count                int     `yaml:"count"`
	BiasStrength         float64 `yaml:"bias_strength"`
	Friction             float64 `yaml:"friction"`
	NoiseStrength        float64 `yaml:"noise_strength"`
	Speed                float64 `yaml:"speed"`
	EatEnabled           bool    `yaml:"eat_enabled"`
	EatAmount            float64 `yaml:"eat_amount"`
	EnergyDecayRate      float64 `yaml:"energy_decay_rate"`
	EnergyFromEat        float64 `yaml:"energy_from_eat"`
	MinEnergy            float64 `yaml:"min_energy"`
	MaxEnergy            float64 `yaml:"max_energy"`
	ReproduceEnabled     bool    `yaml:"reproduce_enabled"`
	ReproduceThreshold   float64 `yaml:"reproduce_threshold"`
	ReproduceSpawnRadius float64 `yaml:"reproduce_spawn_radius"`
	PredationStrength    float64 `yaml:"predation_strength"`
}

// SimParams controls global time stepping.
type SimParams struct {
	DeltaTime       float64 `yaml:"delta_time"`
	CurrentTime     float64 `yaml:"current_time"`
	SpeedMultiplier int     `yaml:"speed_multiplier"`
}

// GridParams are fixed for the lifetime of a Sim (spec §4.1 "Grid: W, H
// (fixed during run)").
type GridParams struct {
	W            int  `yaml:"w"`
	H            int  `yaml:"h"`
	MaxParticles int  `yaml:"max_particles"`
	MaxPredators int  `yaml:"max_predators"`
	// FlatBedrock, when true, initializes Z_rock to a flat floor instead
	// of the procedural base (see field.GenerateBedrock). Spec §4.2 is
	// silent on Z_rock's initial shape beyond "static"; this flag lets
	// callers opt into the degenerate flat case needed by scenario 6 in
	// spec §8 (a single vertical spike on an otherwise flat floor).
	FlatBedrock bool `yaml:"flat_bedrock"`
}

// Bundle is the full immutable-per-step parameter set (spec §4.1).
type Bundle struct {
	Grid     GridParams    `yaml:"grid"`
	R        RSourceParams `yaml:"r"`
	O        OxidantParams `yaml:"o"`
	Reaction struct {
		Rate float64 `yaml:"rate"`
	} `yaml:"reaction"`
	Heat    HeatParams    `yaml:"heat"`
	Biomass BiomassParams `yaml:"biomass"`
	Sim     SimParams     `yaml:"sim"`
	Terrain TerrainParams `yaml:"terrain"`
	P       AgentParams   `yaml:"p"`
	P2      AgentParams   `yaml:"p2"`
}

// Default returns a fresh Bundle populated from the embedded defaults.
func Default() *Bundle {
	b := &Bundle{}
	if err := yaml.Unmarshal(defaultsYAML, b); err != nil {
		panic(fmt.Sprintf("config: embedded defaults.yaml is invalid: %v", err))
	}
	b.Clamp()
	return b
}

// Load reads a YAML override file on top of the embedded defaults. An
// empty path is equivalent to Default().
func Load(path string) (*Bundle, error) {
	b := Default()
	if path == "" {
		return b, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	b.Clamp()
	return b, nil
}

// Save writes the bundle to path as YAML.
func (b *Bundle) Save(path string) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("config: marshalling bundle: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Clone returns a deep copy (Bundle has no pointer/slice fields, so a
// value copy suffices).
func (b *Bundle) Clone() *Bundle {
	c := *b
	return &c
}
