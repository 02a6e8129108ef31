package export

import (
	"github.com/dvub/npcli/internals/category"
	"github.com/dvub/npcli/internals/config"
	"github.com/dvub/npcli/internals/merrors"
	"github.com/dvub/npcli/internals/prompt"
)

var variantOptions = []prompt.Option{
	{Label: "VST3", Value: Vst3.String()},
	{Label: "CLAP", Value: Clap.String(), Hint: "See https://cleveraudio.org/ for more info"},
	{Label: "Standalone", Value: Standalone.String(), Hint: "Creates a standalone application that can run outside of a DAW/VST host"},
}

// Select returns the exported variants and their configs.
// In defaults mode this is VST3 only, with the default id and subcategory.
func Select(p prompt.Prompter, mode config.Mode, d config.Defaults, id config.ProjectIdentity) (Selection, error) {
	if mode == config.ModeDefaults {
		return NewSelection(Vst3Config{
			ID:            d.Vst3ID,
			Subcategories: category.New(category.Vst3Namespace, d.Vst3Category),
		}), nil
	}

	chosen, err := p.MultiSelect(prompt.MultiSelect{
		Label:    "Export types?",
		Options:  variantOptions,
		Initial:  []string{Vst3.String()},
		Required: true,
	})
	if err != nil {
		return Selection{}, err
	}
	if len(chosen) == 0 {
		return Selection{}, merrors.New(merrors.Selection, "select at least one export type")
	}

	wanted := make(map[Variant]bool, len(chosen))
	for _, c := range chosen {
		v, ok := parseVariant(c)
		if !ok {
			return Selection{}, merrors.Newf(merrors.Selection, "unknown export type %q", c)
		}
		wanted[v] = true
	}

	var configs []Config
	for _, v := range Variants {
		if !wanted[v] {
			continue
		}
		c, err := collect(p, v, d, id)
		if err != nil {
			return Selection{}, err
		}
		configs = append(configs, c)
	}

	return NewSelection(configs...), nil
}

func collect(p prompt.Prompter, v Variant, d config.Defaults, id config.ProjectIdentity) (Config, error) {
	switch v {
	case Vst3:
		return collectVst3(p, d)
	case Clap:
		return collectClap(p, d)
	default:
		return StandaloneConfig{PluginName: id.PluginName, ProjectName: id.ProjectName}, nil
	}
}

func collectVst3(p prompt.Prompter, d config.Defaults) (Config, error) {
	vstID, err := prompt.Ask(p, prompt.Input{
		Label:   "VST ID?",
		Default: d.Vst3ID,
	}, config.ValidateVst3ID)
	if err != nil {
		return nil, err
	}

	subcategories, err := category.Build(p, category.Vst3Spec)
	if err != nil {
		return nil, err
	}

	return Vst3Config{ID: vstID, Subcategories: subcategories}, nil
}

func collectClap(p prompt.Prompter, d config.Defaults) (Config, error) {
	clapID, err := prompt.Ask(p, prompt.Input{Label: "CLAP ID?", Default: d.ClapID}, nil)
	if err != nil {
		return nil, err
	}

	description, err := prompt.Ask(p, prompt.Input{Label: "CLAP description?", Default: d.ClapDescription}, nil)
	if err != nil {
		return nil, err
	}

	features, err := category.Build(p, category.ClapSpec)
	if err != nil {
		return nil, err
	}

	return ClapConfig{ID: clapID, Description: description, Features: features}, nil
}

func parseVariant(s string) (Variant, bool) {
	for _, v := range Variants {
		if v.String() == s {
			return v, true
		}
	}
	return 0, false
}
