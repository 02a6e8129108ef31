// Package export decides which plugin formats a project exports and collects
// the settings each format needs.
package export

import (
	"github.com/dvub/npcli/internals/category"
)

// Variant is a plugin export format
type Variant int

const (
	Vst3 Variant = iota
	Clap
	Standalone
)

// Variants lists every variant in collection order
var Variants = []Variant{Vst3, Clap, Standalone}

func (v Variant) String() string {
	switch v {
	case Vst3:
		return "VST3"
	case Clap:
		return "CLAP"
	case Standalone:
		return "Standalone"
	default:
		return "unknown"
	}
}

// Config is the settings of one variant
type Config interface {
	Variant() Variant
	isConfig()
}

// Vst3Config configures the VST3 export
type Vst3Config struct {
	// ID is the 16 byte VST3 class id
	ID            string
	Subcategories category.List
}

// ClapConfig configures the CLAP export
type ClapConfig struct {
	ID          string
	Description string
	Features    category.List
}

// StandaloneConfig configures the standalone executable
type StandaloneConfig struct {
	PluginName  string
	ProjectName string
}

func (Vst3Config) Variant() Variant       { return Vst3 }
func (ClapConfig) Variant() Variant       { return Clap }
func (StandaloneConfig) Variant() Variant { return Standalone }

func (Vst3Config) isConfig()       {}
func (ClapConfig) isConfig()       {}
func (StandaloneConfig) isConfig() {}

// Selection is the set of exported variants, each with its config.
// The zero value is an empty selection.
type Selection struct {
	configs map[Variant]Config
}

// NewSelection returns a selection of the given configs.
// A later config replaces an earlier one of the same variant.
func NewSelection(configs ...Config) Selection {
	s := Selection{configs: make(map[Variant]Config, len(configs))}
	for _, c := range configs {
		s.configs[c.Variant()] = c
	}
	return s
}

// Has reports whether v is exported
func (s Selection) Has(v Variant) bool {
	_, ok := s.configs[v]
	return ok
}

// Len returns the number of exported variants
func (s Selection) Len() int {
	return len(s.configs)
}

// Variants returns the exported variants in collection order
func (s Selection) Variants() []Variant {
	var vs []Variant
	for _, v := range Variants {
		if s.Has(v) {
			vs = append(vs, v)
		}
	}
	return vs
}

// Vst3 returns the VST3 config if VST3 is exported
func (s Selection) Vst3() (Vst3Config, bool) {
	c, ok := s.configs[Vst3].(Vst3Config)
	return c, ok
}

// Clap returns the CLAP config if CLAP is exported
func (s Selection) Clap() (ClapConfig, bool) {
	c, ok := s.configs[Clap].(ClapConfig)
	return c, ok
}

// Standalone returns the standalone config if a standalone executable is exported
func (s Selection) Standalone() (StandaloneConfig, bool) {
	c, ok := s.configs[Standalone].(StandaloneConfig)
	return c, ok
}
