package config

import (
	_ "embed"
)

//go:embed defaults/cubefall.yaml
var defaultYAML []byte

// Default returns the default configuration. Values mirror the embedded
// defaults/cubefall.yaml and serve as the fallback if the embed cannot be
// parsed.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:            22.0,
			JumpVelocity:       9.0,
			DoubleJumpVelocity: 7.5,
			MoveSpeed:          6.0,
			Friction:           0.85,
			PlayerRadius:       0.4,
		},
		World: WorldConfig{
			Lookahead:      15,
			PruneMargin:    15.0,
			FalloutY:       -10.0,
			FollowRate:     0.08,
			SegmentStride:  1.2,
			StartSegments:  4,
			MovementRange:  1.5,
			SegmentGravity: 14.0,
			EdgeMargin:     0.5,
		},
		Camera: CameraConfig{
			FOVDegrees: 60.0,
			Aspect:     1.6,
			Distance:   9.0,
			IntroTime:  0.6,
		},
		Intro: IntroConfig{
			Delay:       0.2,
			Duration:    1.6,
			StartHeight: 8.0,
		},
		Effects: EffectsConfig{
			GlitchDuration:   0.35,
			TrickChance:      0.2,
			SpinSpeed:        0.035,
			ExplosionCount:   12,
			ExplosionLife:    0.8,
			ExplosionDrag:    0.98,
			ExplosionGravity: 9.0,
			FieldCount:       64,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.8,
			MusicFadeIn:  1.2,
			MusicFadeOut: 0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			ScoreScale: 1.0,
			ScoreBias:  0,
		},
	}
}
