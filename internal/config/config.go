// Package config provides YAML-based scenario and game configuration for
// tilephys.
package config

import "github.com/vovakirdan/tilephys/internal/core"

// RectConfig is a rectangle as written in YAML.
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Rect converts to the core value type.
func (r RectConfig) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// Velocity is a per-step displacement in world units.
type Velocity struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Scenario describes a scripted run: one mover pushed with a constant
// velocity through a fixed tile set for a number of steps.
type Scenario struct {
	Name     string       `yaml:"name"`
	Mover    RectConfig   `yaml:"mover"`
	Velocity Velocity     `yaml:"velocity"`
	Steps    int          `yaml:"steps"`
	Tiles    []RectConfig `yaml:"tiles"`
}

// TileRects returns the scenario tiles in file order.
func (s Scenario) TileRects() []core.Rect {
	rects := make([]core.Rect, len(s.Tiles))
	for i, t := range s.Tiles {
		rects[i] = t.Rect()
	}
	return rects
}

// PlatformerConfig contains all configuration for the platformer game.
type PlatformerConfig struct {
	Unit    int               `yaml:"unit"` // World units per screen cell
	Physics PlatformerPhysics `yaml:"physics"`
	Player  PlatformerPlayer  `yaml:"player"`
	Scoring PlatformerScoring `yaml:"scoring"`
	Level   PlatformerLevel   `yaml:"level"`
}

// PlatformerPhysics defines movement tuning, all in world units per tick.
type PlatformerPhysics struct {
	Gravity       int `yaml:"gravity"`
	JumpImpulse   int `yaml:"jump_impulse"`
	MaxFallSpeed  int `yaml:"max_fall_speed"`
	RunSpeed      int `yaml:"run_speed"`
	MoveHoldTicks int `yaml:"move_hold_ticks"` // Ticks a single key press keeps the player running
}

// PlatformerPlayer defines the player box in world units.
type PlatformerPlayer struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlatformerScoring defines how a finished run is scored.
type PlatformerScoring struct {
	ParTicks int `yaml:"par_ticks"`
}

// PlatformerLevel is an ASCII tile map.
type PlatformerLevel struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}
