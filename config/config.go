// Package config provides configuration loading and access for the scenes.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene configuration parameters.
type Config struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Pendulum PendulumConfig `yaml:"pendulum"`
	Flow     FlowConfig     `yaml:"flow"`
	Manifold ManifoldConfig `yaml:"manifold"`
	Stars    StarsConfig    `yaml:"stars"`
	Grid     GridConfig     `yaml:"grid"`
	Theme    ThemeConfig    `yaml:"theme"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	TargetFPS       int     `yaml:"target_fps"`
	PixelDensityCap float64 `yaml:"pixel_density_cap"` // Surface scale multiplier is clamped to this
}

// PendulumConfig holds double-pendulum scene parameters.
type PendulumConfig struct {
	Gravity        float64  `yaml:"gravity"`
	Damping        float64  `yaml:"damping"` // Per-step multiplicative velocity damping, (0,1]
	RodLength1     float64  `yaml:"rod_length_1"`
	RodLength2     float64  `yaml:"rod_length_2"`
	Mass1          float64  `yaml:"mass_1"`
	Mass2          float64  `yaml:"mass_2"`
	TrailLength    int      `yaml:"trail_length"`    // Ring buffer capacity for the second bob
	TrailDecay     float64  `yaml:"trail_decay"`     // Opacity multiplier per frame
	RevealInterval float64  `yaml:"reveal_interval"` // Seconds between reveal label swaps
	RevealDuration float64  `yaml:"reveal_duration"` // Seconds a label stays visible
	RevealLabels   []string `yaml:"reveal_labels"`
}

// FlowConfig holds flow-field scene parameters.
type FlowConfig struct {
	EntityCount       int     `yaml:"entity_count"`
	FieldScale        float64 `yaml:"field_scale"` // Spatial noise frequency
	TimeScale         float64 `yaml:"time_scale"`  // Noise animation speed
	Speed             float64 `yaml:"speed"`       // Pixels per frame along the sampled angle
	MinAge            int     `yaml:"min_age"`     // Frames before a particle may expire
	MaxAge            int     `yaml:"max_age"`
	InfluenceRadius   float64 `yaml:"influence_radius"`
	InfluenceStrength float64 `yaml:"influence_strength"` // Pointer steering blend weight, [0,1]
}

// ManifoldConfig holds manifold particle-field parameters.
type ManifoldConfig struct {
	EntityCount   int     `yaml:"entity_count"`
	Depth         float64 `yaml:"depth"`          // Z extent of the particle volume
	DriftSpeed    float64 `yaml:"drift_speed"`    // Per-particle velocity magnitude
	WobbleAmp     float64 `yaml:"wobble_amp"`     // Shared sinusoidal vertical wobble amplitude
	WobbleStride  float64 `yaml:"wobble_stride"`  // Phase offset per particle index
	ForceRadius   float64 `yaml:"force_radius"`   // Pointer influence radius
	ForceStrength float64 `yaml:"force_strength"` // 1/distance force scale
	LineCount     int     `yaml:"line_count"`     // Geodesic overlay curves
	LineSamples   int     `yaml:"line_samples"`   // Polyline samples per curve
	BendRadius    float64 `yaml:"bend_radius"`    // Pointer bend radius for geodesics
	BendStrength  float64 `yaml:"bend_strength"`
}

// StarsConfig holds star-field parameters.
type StarsConfig struct {
	EntityCount   int     `yaml:"entity_count"`
	Radius        float64 `yaml:"radius"`         // Sphere radius as a fraction of the larger bound
	RotationSpeed float64 `yaml:"rotation_speed"` // Radians per frame, very small
	TwinkleMin    float64 `yaml:"twinkle_min"`    // Lower bound of per-star twinkle speed
	TwinkleMax    float64 `yaml:"twinkle_max"`
}

// GridConfig holds cursor-grid overlay parameters.
type GridConfig struct {
	Spacing            float64 `yaml:"spacing"`             // Distance between grid lines
	SampleStep         float64 `yaml:"sample_step"`         // Polyline sample distance along a line
	IntensityIncrement float64 `yaml:"intensity_increment"` // Per-frame ratchet step toward 1
	BendRadius         float64 `yaml:"bend_radius"`
	BendStrength       float64 `yaml:"bend_strength"` // Max displacement at zero distance
}

// ThemeConfig holds theming settings.
type ThemeConfig struct {
	Palette string `yaml:"palette"` // Initial palette name
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32          float32 // Screen.Width as float32
	ScreenH32          float32 // Screen.Height as float32
	GridRampFrames     int     // Frames for grid intensity to reach 1
	PendulumTrailDecay float32 // Pendulum.TrailDecay as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.PendulumTrailDecay = float32(c.Pendulum.TrailDecay)

	if c.Grid.IntensityIncrement > 0 {
		c.Derived.GridRampFrames = int(1.0/c.Grid.IntensityIncrement + 0.5)
	}

	// Surfaces above 2x pixel density cost memory for no visible gain
	// on the targeted displays.
	if c.Screen.PixelDensityCap <= 0 || c.Screen.PixelDensityCap > 2 {
		c.Screen.PixelDensityCap = 2
	}

	// Damping outside (0,1] would inject energy every step
	if c.Pendulum.Damping <= 0 || c.Pendulum.Damping > 1 {
		c.Pendulum.Damping = 1
	}

	if len(c.Pendulum.RevealLabels) == 0 {
		c.Pendulum.RevealLabels = []string{"chaos", "order", "motion"}
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
