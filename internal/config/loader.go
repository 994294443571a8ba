package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadScenario loads a scenario and validates it.
// Search order: customPath -> ~/.tilephys/configs/demo.yaml -> ./configs/demo.yaml -> embedded default
func LoadScenario(customPath string) (Scenario, error) {
	var sc Scenario
	if err := load(customPath, "demo", &sc); err != nil {
		return sc, err
	}
	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("invalid scenario: %w", err)
	}
	return sc, nil
}

// LoadPlatformer loads platformer configuration and validates it.
// Search order: customPath -> ~/.tilephys/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	var cfg PlatformerConfig
	if err := load(customPath, "platformer", &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid platformer config: %w", err)
	}
	return cfg, nil
}

// ParseScenario decodes a scenario from YAML bytes.
func ParseScenario(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("invalid scenario: %w", err)
	}
	return sc, nil
}

// load fills out from the first source that exists and parses.
// A custom path that fails to read or parse is an error; the fallbacks are not.
func load(customPath, name string, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	filename := name + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML(name), out); err != nil {
		return fallback(name, out)
	}
	return nil
}

// fallback writes the hardcoded default for name into out.
func fallback(name string, out any) error {
	switch v := out.(type) {
	case *Scenario:
		*v = DefaultScenario()
	case *PlatformerConfig:
		*v = DefaultPlatformerConfig()
	default:
		return fmt.Errorf("no default config for %s", name)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilephys", "configs", filename)
}
