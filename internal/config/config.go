// Package config provides YAML-based configuration loading for blockfall.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Limits on the playfield size.
const (
	MaxFieldWidth  = 40
	MaxFieldHeight = 60
	MinFieldHeight = 4

	// minFieldWidth fits the widest spawn orientation (the I piece).
	minFieldWidth = 4
)

// BlockfallConfig contains all configuration for the game.
type BlockfallConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Timing   TimingConfig   `yaml:"timing"`
	Controls ControlsConfig `yaml:"controls"`
}

// FieldConfig defines the playfield dimensions in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines gravity timing.
type TimingConfig struct {
	FallIntervalMs int `yaml:"fall_interval_ms"`
}

// ControlsConfig lists the Bubble Tea key names bound to each action.
type ControlsConfig struct {
	MoveLeft  []string `yaml:"move_left"`
	MoveRight []string `yaml:"move_right"`
	SoftDrop  []string `yaml:"soft_drop"`
	Rotate    []string `yaml:"rotate"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
	Quit      []string `yaml:"quit"`
}

// bindings returns the controls keyed by name, in display order.
func (c ControlsConfig) bindings() []struct {
	name string
	keys []string
} {
	return []struct {
		name string
		keys []string
	}{
		{"move_left", c.MoveLeft},
		{"move_right", c.MoveRight},
		{"soft_drop", c.SoftDrop},
		{"rotate", c.Rotate},
		{"pause", c.Pause},
		{"restart", c.Restart},
		{"quit", c.Quit},
	}
}

// FillDefaults replaces zero-valued settings with the built-in defaults.
func (c *BlockfallConfig) FillDefaults() {
	def := DefaultBlockfallConfig()

	if c.Field.Width == 0 {
		c.Field.Width = def.Field.Width
	}
	if c.Field.Height == 0 {
		c.Field.Height = def.Field.Height
	}
	if c.Timing.FallIntervalMs == 0 {
		c.Timing.FallIntervalMs = def.Timing.FallIntervalMs
	}

	fill := func(dst *[]string, src []string) {
		if len(*dst) == 0 {
			*dst = append([]string(nil), src...)
		}
	}
	fill(&c.Controls.MoveLeft, def.Controls.MoveLeft)
	fill(&c.Controls.MoveRight, def.Controls.MoveRight)
	fill(&c.Controls.SoftDrop, def.Controls.SoftDrop)
	fill(&c.Controls.Rotate, def.Controls.Rotate)
	fill(&c.Controls.Pause, def.Controls.Pause)
	fill(&c.Controls.Restart, def.Controls.Restart)
	fill(&c.Controls.Quit, def.Controls.Quit)
}

// Validate checks that the configuration describes a playable game.
func (c BlockfallConfig) Validate() error {
	if c.Field.Width < minFieldWidth || c.Field.Width > MaxFieldWidth {
		return fmt.Errorf("%w: field.width %d outside [%d, %d]",
			ErrInvalidConfig, c.Field.Width, minFieldWidth, MaxFieldWidth)
	}
	if c.Field.Height < MinFieldHeight || c.Field.Height > MaxFieldHeight {
		return fmt.Errorf("%w: field.height %d outside [%d, %d]",
			ErrInvalidConfig, c.Field.Height, MinFieldHeight, MaxFieldHeight)
	}
	if c.Timing.FallIntervalMs <= 0 {
		return fmt.Errorf("%w: timing.fall_interval_ms must be positive, got %d",
			ErrInvalidConfig, c.Timing.FallIntervalMs)
	}

	seen := make(map[string]string)
	for _, b := range c.Controls.bindings() {
		if len(b.keys) == 0 {
			return fmt.Errorf("%w: controls.%s has no keys", ErrInvalidConfig, b.name)
		}
		for _, k := range b.keys {
			if k == "" {
				return fmt.Errorf("%w: controls.%s contains an empty key", ErrInvalidConfig, b.name)
			}
			if prev, dup := seen[k]; dup && prev != b.name {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidConfig, k, prev, b.name)
			}
			seen[k] = b.name
		}
	}
	return nil
}
