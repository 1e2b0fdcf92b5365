// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

// Config contains all gameplay tuning. Every field has a default loaded from
// the embedded YAML; a user config only needs to override what it changes.
type Config struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	World      WorldConfig      `yaml:"world"`
	Camera     CameraConfig     `yaml:"camera"`
	Intro      IntroConfig      `yaml:"intro"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// PhysicsConfig defines the player's motion parameters.
// Units are world units and seconds; the simulation converts per tick.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`             // Downward acceleration magnitude at score 0
	JumpVelocity      float64 `yaml:"jump_velocity"`       // Upward velocity set on every landing
	DoubleJumpVelocity float64 `yaml:"double_jump_velocity"` // Upward velocity set on a double jump
	MoveSpeed         float64 `yaml:"move_speed"`          // Horizontal speed while input is held
	Friction          float64 `yaml:"friction"`            // Per-tick horizontal velocity decay without input
	PlayerRadius      float64 `yaml:"player_radius"`       // Collision radius of the player
}

// WorldConfig defines platform generation and recycling parameters.
type WorldConfig struct {
	Lookahead      int     `yaml:"lookahead"`       // Target count of live platforms ahead of the player
	PruneMargin    float64 `yaml:"prune_margin"`    // Distance below the player at which platforms are removed
	FalloutY       float64 `yaml:"fallout_y"`       // World-offset-adjusted height that ends the run
	FollowRate     float64 `yaml:"follow_rate"`     // Per-tick low-pass rate of the world offset toward -player.y
	SegmentStride  float64 `yaml:"segment_stride"`  // Center-to-center distance between segments of a platform
	StartSegments  int     `yaml:"start_segments"`  // Segment count of the canonical starting platform
	MovementRange  float64 `yaml:"movement_range"`  // Half-amplitude of moving platforms
	SegmentGravity float64 `yaml:"segment_gravity"` // Downward acceleration of fall-away segments
	EdgeMargin     float64 `yaml:"edge_margin"`     // Clearance kept between platforms and the view edge
}

// CameraConfig defines the fixed gameplay camera used to derive horizontal
// view bounds for spawning and wrapping.
type CameraConfig struct {
	FOVDegrees float64 `yaml:"fov_degrees"`
	Aspect     float64 `yaml:"aspect"`
	Distance   float64 `yaml:"distance"`
	IntroTime  float64 `yaml:"intro_time"` // Duration of the intro-to-gameplay vantage blend, seconds
}

// IntroConfig defines the one-shot intro free-fall played when a run begins.
type IntroConfig struct {
	Delay       float64 `yaml:"delay"`        // Freeze time before the fall starts, seconds
	Duration    float64 `yaml:"duration"`     // Time-boxed end of the intro fall, seconds
	StartHeight float64 `yaml:"start_height"` // World y the player falls from
}

// EffectsConfig defines the cosmetic effect state machines.
type EffectsConfig struct {
	GlitchDuration  float64 `yaml:"glitch_duration"`  // Decay window of the glitch envelope, seconds
	TrickChance     float64 `yaml:"trick_chance"`     // Probability of a spin trick per landing
	SpinSpeed       float64 `yaml:"spin_speed"`       // Spin progress advance per tick
	ExplosionCount  int     `yaml:"explosion_count"`  // Particles per landing burst
	ExplosionLife   float64 `yaml:"explosion_life"`   // Max particle life, seconds
	ExplosionDrag   float64 `yaml:"explosion_drag"`   // Per-tick velocity multiplier per axis
	ExplosionGravity float64 `yaml:"explosion_gravity"` // Downward acceleration on burst particles
	FieldCount      int     `yaml:"field_count"`      // Ambient background particle count
}

// AudioConfig defines the synthesized audio engine parameters.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
	MusicFadeIn  float64 `yaml:"music_fade_in"`  // Background track fade-in, seconds
	MusicFadeOut float64 `yaml:"music_fade_out"` // Background track fade-out, seconds
}

// DifficultyConfig maps the raw score onto the difficulty curves.
// The curves themselves are fixed piecewise-linear bands in the simulation;
// presets only rescale the score fed into them.
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled"`
	ScoreScale float64 `yaml:"score_scale"` // Multiplier applied to score before curve lookup
	ScoreBias  int     `yaml:"score_bias"`  // Constant added to score before curve lookup
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the difficulty mapping based on a named preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.ScoreScale = 0.7
		cfg.Difficulty.ScoreBias = 0
	case DifficultyNormal:
		cfg.Difficulty.ScoreScale = 1.0
		cfg.Difficulty.ScoreBias = 0
	case DifficultyHard:
		cfg.Difficulty.ScoreScale = 1.4
		cfg.Difficulty.ScoreBias = 25
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
