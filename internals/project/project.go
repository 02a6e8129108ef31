// Package project assembles everything the scaffolder knows about a new plugin project.
package project

import (
	"github.com/dvub/npcli/internals/config"
	"github.com/dvub/npcli/internals/export"
	"github.com/dvub/npcli/internals/prompt"
)

// Config is the complete configuration of a new project. It is not modified
// after Collect returns.
type Config struct {
	Identity config.ProjectIdentity
	Midi     config.MidiConfig
	Exports  export.Selection
}

// Standalone reports whether a standalone executable is exported
func (c *Config) Standalone() bool {
	return c.Exports.Has(export.Standalone)
}

// Collect asks for (or, in defaults mode, fills in) the whole project config
func Collect(p prompt.Prompter, mode config.Mode, d config.Defaults, name string) (*Config, error) {
	id, midi, err := config.Collect(p, mode, d, name)
	if err != nil {
		return nil, err
	}

	exports, err := export.Select(p, mode, d, id)
	if err != nil {
		return nil, err
	}

	return &Config{
		Identity: id,
		Midi:     midi,
		Exports:  exports,
	}, nil
}
