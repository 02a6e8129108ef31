// Package config collects the identity and MIDI settings of a new plugin project.
package config

import (
	"regexp"
	"unicode"

	"github.com/dvub/npcli/internals/merrors"
	"github.com/dvub/npcli/internals/prompt"
)

// Mode selects how values are collected
type Mode int

const (
	// ModeInteractive asks the user for every value
	ModeInteractive Mode = iota
	// ModeDefaults never prompts and uses the defaults
	ModeDefaults
)

// MidiConfig is the MIDI capability tier of the generated plugin.
// The values are the nih-plug `MidiConfig` variants.
type MidiConfig string

const (
	// MidiNone receives no MIDI events
	MidiNone MidiConfig = "None"
	// MidiBasic receives note events, pressure and expression
	MidiBasic MidiConfig = "Basic"
	// MidiFull receives MIDI CCs and pitch bend as well
	MidiFull MidiConfig = "MidiCCs"
)

// ProjectIdentity names the project and the plugin
type ProjectIdentity struct {
	// ProjectName is the directory and crate name
	ProjectName string
	// PluginName is the display name of the plugin
	PluginName string
	Vendor     string
	URL        string
	Email      string
}

var projectName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateProjectName accepts names that work as a directory and as a cargo package name
func ValidateProjectName(s string) error {
	switch {
	case s == "":
		return merrors.New(merrors.Validation, "project name is required")
	case !projectName.MatchString(s):
		return merrors.New(merrors.Validation, "project name must start with a letter and may only contain letters, digits, - and _")
	}
	return nil
}

// ValidateVst3ID accepts VST3 class ids of exactly 16 ASCII characters.
// The id ends up in a rust byte string, which can not hold anything else.
func ValidateVst3ID(s string) error {
	if len(s) != 16 {
		return merrors.Newf(merrors.Validation, "VST3 ID must be exactly 16 characters. (got %d)", len(s))
	}
	for _, r := range s {
		if r > unicode.MaxASCII {
			return merrors.Newf(merrors.Validation, "VST3 ID may only contain ASCII characters. (got %q)", r)
		}
	}
	return nil
}

var midiOptions = []prompt.Option{
	{Label: "None", Value: string(MidiNone), Hint: "The plugin will not receive MIDI events."},
	{Label: "Basic", Value: string(MidiBasic), Hint: "The plugin receives note on/off/choke events, pressure, and possibly standardized expression types."},
	{Label: "Full", Value: string(MidiFull), Hint: "The plugin receives full MIDI CCs as well as pitch bend information."},
}

// Collect returns the project identity and MIDI tier.
// name is the project name given on the command line and may be empty in
// interactive mode, in which case it is asked for.
func Collect(p prompt.Prompter, mode Mode, d Defaults, name string) (ProjectIdentity, MidiConfig, error) {
	if mode == ModeDefaults {
		if err := ValidateProjectName(name); err != nil {
			return ProjectIdentity{}, "", err
		}
		return ProjectIdentity{
			ProjectName: name,
			PluginName:  d.PluginName,
			Vendor:      d.Vendor,
			URL:         d.URL,
			Email:       d.Email,
		}, d.Midi, nil
	}

	id := ProjectIdentity{ProjectName: name}
	var err error

	if id.ProjectName == "" {
		id.ProjectName, err = prompt.Ask(p, prompt.Input{
			Label:       "What's your project named? (NOT the actual plugin name)",
			Placeholder: d.ProjectPlaceholder,
		}, ValidateProjectName)
		if err != nil {
			return ProjectIdentity{}, "", err
		}
	} else if err := ValidateProjectName(id.ProjectName); err != nil {
		return ProjectIdentity{}, "", err
	}

	fields := []struct {
		label  string
		def    string
		target *string
	}{
		{"What's your plugin named?", d.PluginName, &id.PluginName},
		{"Author?", d.Vendor, &id.Vendor},
		{"URL?", d.URL, &id.URL},
		{"Email?", d.Email, &id.Email},
	}
	for _, f := range fields {
		*f.target, err = prompt.Ask(p, prompt.Input{Label: f.label, Default: f.def}, nil)
		if err != nil {
			return ProjectIdentity{}, "", err
		}
	}

	midi, err := p.Select(prompt.Select{
		Label:   "MIDI Config?",
		Options: midiOptions,
		Initial: string(d.Midi),
	})
	if err != nil {
		return ProjectIdentity{}, "", err
	}

	return id, MidiConfig(midi), nil
}
