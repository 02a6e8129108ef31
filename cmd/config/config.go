package config

import (
	"sort"

	"github.com/dvub/npcli/internals/config"
	"github.com/spf13/cobra"
)

const (
	configKindString = iota
	configKindBool
)

type configEntry struct {
	kind int
	help string
}

var entries = map[string]configEntry{
	"noninteractive":          {configKindBool, "never ask questions, like --defaults"},
	"verbose":                 {configKindBool, "show the output of cargo while it runs"},
	"cargo":                   {configKindString, "cargo executable to use"},
	config.KeyPluginName:      {configKindString, "default plugin name"},
	config.KeyVendor:          {configKindString, "default author"},
	config.KeyURL:             {configKindString, "default URL"},
	config.KeyEmail:           {configKindString, "default email"},
	config.KeyVst3ID:          {configKindString, "default VST3 class id, exactly 16 characters"},
	config.KeyClapID:          {configKindString, "default CLAP id"},
	config.KeyClapDescription: {configKindString, "default CLAP description"},
}

// keys returns all config keys sorted
func keys() []string {
	list := make([]string, 0, len(entries))
	for k := range entries {
		list = append(list, k)
	}
	sort.Strings(list)
	return list
}

var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}
