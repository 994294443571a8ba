package config

import (
	_ "embed"
)

//go:embed defaults/demo.yaml
var defaultDemoYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultScenario returns the reference scenario: a 64x64 box moved right by
// 16 units per step, ten times, against one tile at x=128.
func DefaultScenario() Scenario {
	return Scenario{
		Name:     "demo",
		Mover:    RectConfig{X: 0, Y: 0, W: 64, H: 64},
		Velocity: Velocity{X: 16, Y: 0},
		Steps:    10,
		Tiles: []RectConfig{
			{X: 128, Y: 0, W: 64, H: 64},
		},
	}
}

// DefaultPlatformerConfig returns the hardcoded platformer configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Unit: 16,
		Physics: PlatformerPhysics{
			Gravity:       2,
			JumpImpulse:   22,
			MaxFallSpeed:  14,
			RunSpeed:      3,
			MoveHoldTicks: 8,
		},
		Player: PlatformerPlayer{
			Width:  12,
			Height: 16,
		},
		Scoring: PlatformerScoring{
			ParTicks: 3600,
		},
		Level: PlatformerLevel{
			Name: "flat",
			Rows: []string{
				"##########",
				"#........#",
				"#.@....E.#",
				"##########",
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "demo":
		return defaultDemoYAML
	case "platformer":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
