package config

import "fmt"

// ValidationError contains details about a rejected configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the scenario can be run.
func (s Scenario) Validate() error {
	if s.Steps <= 0 {
		return ValidationError{Code: "INVALID_STEPS", Message: fmt.Sprintf("steps must be positive, got %d", s.Steps)}
	}
	if err := validateSize("mover", s.Mover); err != nil {
		return err
	}
	for i, t := range s.Tiles {
		if err := validateSize(fmt.Sprintf("tile %d", i), t); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks platformer tuning and the presence of a level.
func (c PlatformerConfig) Validate() error {
	if c.Unit <= 0 {
		return ValidationError{Code: "INVALID_UNIT", Message: fmt.Sprintf("unit must be positive, got %d", c.Unit)}
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("player size must be positive, got %dx%d", c.Player.Width, c.Player.Height),
		}
	}
	if c.Player.Width > c.Unit || c.Player.Height > c.Unit {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("player %dx%d does not fit in a %d unit tile", c.Player.Width, c.Player.Height, c.Unit),
		}
	}
	if c.Physics.Gravity < 0 || c.Physics.RunSpeed < 0 || c.Physics.JumpImpulse < 0 {
		return ValidationError{Code: "INVALID_PHYSICS", Message: "gravity, run_speed and jump_impulse must not be negative"}
	}
	// A fall faster than one tile per tick can step over a floor entirely.
	if c.Physics.MaxFallSpeed <= 0 || c.Physics.MaxFallSpeed >= c.Unit {
		return ValidationError{
			Code:    "INVALID_PHYSICS",
			Message: fmt.Sprintf("max_fall_speed must be in 1..%d, got %d", c.Unit-1, c.Physics.MaxFallSpeed),
		}
	}
	if len(c.Level.Rows) == 0 {
		return ValidationError{Code: "EMPTY_LEVEL", Message: "level has no rows"}
	}
	return nil
}

func validateSize(what string, r RectConfig) error {
	if r.W < 0 || r.H < 0 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("%s has negative size %dx%d", what, r.W, r.H),
		}
	}
	return nil
}
