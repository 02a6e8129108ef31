package category

import (
	"testing"

	"github.com/dvub/npcli/internals/merrors"
	"github.com/dvub/npcli/internals/prompt/prompttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		primary   string
		secondary []string
		want      string
	}{
		{
			name:      "primary and secondaries",
			namespace: Vst3Namespace,
			primary:   "Fx",
			secondary: []string{"Delay", "Reverb"},
			want:      "Vst3SubCategory::Fx, Vst3SubCategory::Delay, Vst3SubCategory::Reverb",
		},
		{
			name:      "primary only",
			namespace: ClapNamespace,
			primary:   "AudioEffect",
			want:      "ClapFeature::AudioEffect",
		},
		{
			name:      "secondary order is kept",
			namespace: "Ns",
			primary:   "A",
			secondary: []string{"C", "B"},
			want:      "Ns::A, Ns::C, Ns::B",
		},
		{
			name:      "duplicates are kept",
			namespace: "Ns",
			primary:   "A",
			secondary: []string{"A"},
			want:      "Ns::A, Ns::A",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.namespace, tt.primary, tt.secondary...))
		})
	}
}

func TestBuild(t *testing.T) {
	p := prompttest.New().
		Choose(Vst3Spec.PrimaryLabel, "Fx").
		Choose(Vst3Spec.SecondaryLabel, "Delay", "Reverb")

	list, err := Build(p, Vst3Spec)
	require.NoError(t, err)
	assert.Equal(t, "Vst3SubCategory::Fx, Vst3SubCategory::Delay, Vst3SubCategory::Reverb", list.String())
	assert.Equal(t, []string{Vst3Spec.PrimaryLabel, Vst3Spec.SecondaryLabel}, p.Asked)
}

func TestBuild_KeepsReportedOrder(t *testing.T) {
	p := prompttest.New().
		Choose(Vst3Spec.PrimaryLabel, "Fx").
		Choose(Vst3Spec.SecondaryLabel, "Reverb", "Delay")

	list, err := Build(p, Vst3Spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fx", "Reverb", "Delay"}, list.Tags)
}

func TestBuild_NoSecondary(t *testing.T) {
	p := prompttest.New().
		Choose(ClapSpec.PrimaryLabel, "Instrument").
		Choose(ClapSpec.SecondaryLabel)

	list, err := Build(p, ClapSpec)
	require.NoError(t, err)
	assert.Equal(t, "ClapFeature::Instrument", list.String())
}

func TestBuild_Cancelled(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"primary", Vst3Spec.PrimaryLabel},
		{"secondary", Vst3Spec.SecondaryLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := prompttest.New().Cancel(tt.label)

			list, err := Build(p, Vst3Spec)
			require.Error(t, err)
			assert.True(t, merrors.Is(err, merrors.UserInput))
			assert.Empty(t, list.Tags)
		})
	}
}

func TestSpecsDoNotOverlap(t *testing.T) {
	for _, spec := range []Spec{Vst3Spec, ClapSpec} {
		seen := map[string]bool{}
		for _, tag := range spec.Primary {
			seen[tag] = true
		}
		for _, tag := range spec.Secondary {
			assert.False(t, seen[tag], "%s: %s is offered as primary and secondary", spec.Namespace, tag)
		}
	}
}
