// Package category builds the namespaced category lists used for VST3
// subcategories and CLAP features.
package category

import (
	"strings"

	"github.com/dvub/npcli/internals/prompt"
)

const (
	// Vst3Namespace prefixes VST3 subcategories
	Vst3Namespace = "Vst3SubCategory"
	// ClapNamespace prefixes CLAP features
	ClapNamespace = "ClapFeature"
)

// List is an ordered list of category tags. The first tag is the primary category
type List struct {
	Namespace string
	Tags      []string
}

// Qualified returns every tag prefixed with the namespace
func (l List) Qualified() []string {
	items := make([]string, len(l.Tags))
	for i, tag := range l.Tags {
		items[i] = l.Namespace + "::" + tag
	}
	return items
}

// String renders the list like "Vst3SubCategory::Fx, Vst3SubCategory::Delay"
func (l List) String() string {
	return strings.Join(l.Qualified(), ", ")
}

// New returns a list with primary first, followed by the secondary tags in order.
// Tags are not deduplicated.
func New(namespace string, primary string, secondary ...string) List {
	tags := make([]string, 0, len(secondary)+1)
	tags = append(tags, primary)
	tags = append(tags, secondary...)
	return List{Namespace: namespace, Tags: tags}
}

// Format is New(...).String()
func Format(namespace string, primary string, secondary ...string) string {
	return New(namespace, primary, secondary...).String()
}

// Spec describes the two questions that make up a category list
type Spec struct {
	PrimaryLabel   string
	Primary        []string
	SecondaryLabel string
	Secondary      []string
	Namespace      string
}

// Build asks for one primary and any number of secondary categories.
// A cancelled prompt aborts without returning a partial list.
func Build(p prompt.Prompter, s Spec) (List, error) {
	primary, err := p.Select(prompt.Select{
		Label:   s.PrimaryLabel,
		Options: prompt.Options(s.Primary...),
	})
	if err != nil {
		return List{}, err
	}

	secondary, err := p.MultiSelect(prompt.MultiSelect{
		Label:   s.SecondaryLabel,
		Options: prompt.Options(s.Secondary...),
	})
	if err != nil {
		return List{}, err
	}

	return New(s.Namespace, primary, secondary...), nil
}

// Vst3Spec holds the VST3 subcategories nih-plug knows about
var Vst3Spec = Spec{
	PrimaryLabel:   "Main VST Subcategory?",
	Primary:        []string{"Fx", "Instrument", "Spatial"},
	SecondaryLabel: "Other VST Subcategories?",
	Secondary: []string{
		"Analyzer",
		"Delay",
		"Distortion",
		"Drum",
		"Dynamics",
		"Eq",
		"External",
		"Filter",
		"Generator",
		"Mastering",
		"Modulation",
		"Network",
		"Piano",
		"PitchShift",
		"Restoration",
		"Reverb",
		"Sampler",
		"Synth",
		"Tools",
		"UpDownmix",
	},
	Namespace: Vst3Namespace,
}

// ClapSpec holds the CLAP features nih-plug knows about
var ClapSpec = Spec{
	PrimaryLabel:   "Main CLAP Feature?",
	Primary:        []string{"Instrument", "AudioEffect", "NoteDetector", "NoteEffect"},
	SecondaryLabel: "Other CLAP Features?",
	Secondary: []string{
		"Analyzer",
		"Synthesizer",
		"Sampler",
		"Drum",
		"DrumMachine",
		"Filter",
		"Phaser",
		"Equalizer",
		"Deesser",
		"PhaseVocoder",
		"Granular",
		"FrequencyShifter",
		"PitchShifter",
		"Distortion",
		"TransientShaper",
		"Compressor",
		"Expander",
		"Gate",
		"Limiter",
		"Flanger",
		"Chorus",
		"Delay",
		"Reverb",
		"Tremolo",
		"Glitch",
		"Utility",
		"PitchCorrection",
		"Restoration",
		"MultiEffects",
		"Mixing",
		"Mastering",
		"Mono",
		"Stereo",
		"Surround",
		"Ambisonic",
	},
	Namespace: ClapNamespace,
}
