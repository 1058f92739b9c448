package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration: a 10x20 field
// with a 500 ms fall interval and arrow/WASD/vim controls.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			FallIntervalMs: 500,
		},
		Controls: ControlsConfig{
			MoveLeft:  []string{"left", "a", "h"},
			MoveRight: []string{"right", "d", "l"},
			SoftDrop:  []string{"down", "s", "j"},
			Rotate:    []string{"up", "w", "k"},
			Pause:     []string{"p"},
			Restart:   []string{"r"},
			Quit:      []string{"q", "ctrl+c"},
		},
	}
}
