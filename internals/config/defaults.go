package config

import (
	"github.com/spf13/viper"
)

// Defaults holds every placeholder value the scaffolder falls back to.
// It is built once per invocation and passed to the collectors.
type Defaults struct {
	// ProjectPlaceholder is shown as an example project name. Project names have no default
	ProjectPlaceholder string
	PluginName         string
	Vendor             string
	URL                string
	Email              string
	Midi               MidiConfig
	Vst3ID             string
	// Vst3Category is the primary VST3 subcategory used in defaults mode
	Vst3Category    string
	ClapID          string
	ClapDescription string
}

// Builtin returns the defaults used when nothing is configured
func Builtin() Defaults {
	return Defaults{
		ProjectPlaceholder: "gain",
		PluginName:         "Gain",
		Vendor:             "NIH-Plug",
		URL:                "https://github.com/robbert-vdh/nih-plug",
		Email:              "info@example.com",
		Midi:               MidiNone,
		Vst3ID:             "Exactly16Chars!!",
		Vst3Category:       "Fx",
		ClapID:             "com.moist-plugins-gmbh.gain",
		ClapDescription:    "A smoothed gain parameter example plugin",
	}
}

// config keys that override the builtin defaults
const (
	KeyPluginName      = "defaults.pluginname"
	KeyVendor          = "defaults.vendor"
	KeyURL             = "defaults.url"
	KeyEmail           = "defaults.email"
	KeyVst3ID          = "defaults.vst3id"
	KeyClapID          = "defaults.clapid"
	KeyClapDescription = "defaults.clapdescription"
)

// DefaultsFrom overlays the builtin defaults with the values set in v.
// Overrides are validated like user input.
func DefaultsFrom(v *viper.Viper) (Defaults, error) {
	d := Builtin()

	overrides := []struct {
		key      string
		target   *string
		validate func(string) error
	}{
		{KeyPluginName, &d.PluginName, nil},
		{KeyVendor, &d.Vendor, nil},
		{KeyURL, &d.URL, nil},
		{KeyEmail, &d.Email, nil},
		{KeyVst3ID, &d.Vst3ID, ValidateVst3ID},
		{KeyClapID, &d.ClapID, nil},
		{KeyClapDescription, &d.ClapDescription, nil},
	}

	for _, o := range overrides {
		val := v.GetString(o.key)
		if val == "" {
			continue
		}
		if o.validate != nil {
			if err := o.validate(val); err != nil {
				return Defaults{}, &keyError{key: o.key, err: err}
			}
		}
		*o.target = val
	}

	return d, nil
}

type keyError struct {
	key string
	err error
}

func (e *keyError) Error() string {
	return "config " + e.key + ": " + e.err.Error()
}

func (e *keyError) Unwrap() error {
	return e.err
}
