package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAtDash(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		dash     int
		packages []string
		extra    []string
	}{
		{"no dash", []string{"gain", "reverb"}, -1, []string{"gain", "reverb"}, nil},
		{"with args", []string{"gain", "--release", "--target", "x"}, 1, []string{"gain"}, []string{"--release", "--target", "x"}},
		{"only args", []string{"--release"}, 0, []string{}, []string{"--release"}},
		{"dash at end", []string{"gain"}, 1, []string{"gain"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packages, extra := splitAtDash(tt.args, tt.dash)
			assert.Equal(t, tt.packages, packages)
			assert.Equal(t, tt.extra, extra)
		})
	}
}

func TestRootCommands(t *testing.T) {
	for _, name := range []string{"create", "new", "bundle", "bundle-universal", "config"} {
		cmd, _, err := rootCmd.Find([]string{name})
		assert.NoError(t, err, name)
		assert.NotNil(t, cmd, name)
	}
}
