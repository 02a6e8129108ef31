package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dvub/npcli/internals/merrors"
	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"YES", true, false},
		{"0", false, false},
		{"off", false, false},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBool(tt.in)
			if tt.wantErr {
				assert.True(t, merrors.Is(err, merrors.Validation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newSetRunner(t *testing.T) (*setRunner, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "npcli", "config.toml")
	return &setRunner{
		v:    viper.New(),
		file: func() (string, error) { return path, nil },
	}, path
}

func TestSet(t *testing.T) {
	gchalk.SetLevel(gchalk.LevelNone)
	runner, path := newSetRunner(t)
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, runner.RunE(cmd, []string{"defaults.Vendor", "Moist Plugins"}))
	require.NoError(t, runner.RunE(cmd, []string{"noninteractive", "yes"}))

	assert.Contains(t, out.String(), "defaults.vendor: (unset) → Moist Plugins")

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "Moist Plugins")
	assert.Contains(t, string(written), "noninteractive = true")
}

func TestSet_Rejected(t *testing.T) {
	runner, path := newSetRunner(t)
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runner.RunE(cmd, []string{"defaults.vst3id", "too short"})
	assert.True(t, merrors.Is(err, merrors.Validation))
	assert.Contains(t, err.Error(), "defaults.vst3id")
	assert.Nil(t, runner.v.Get("defaults.vst3id"))
	assert.NoFileExists(t, path)

	err = runner.RunE(cmd, []string{"nope", "1"})
	assert.True(t, merrors.Is(err, merrors.UserInput))
}

func TestGetAndList(t *testing.T) {
	gchalk.SetLevel(gchalk.LevelNone)
	v := viper.New()
	v.Set("cargo", "/opt/cargo")

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, (&getRunner{v: v}).RunE(cmd, []string{"cargo"}))
	assert.Contains(t, out.String(), "cargo: /opt/cargo")

	out.Reset()
	require.NoError(t, (&listRunner{v: v}).RunE(cmd, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(entries))
	assert.True(t, strings.HasPrefix(lines[0], "cargo: /opt/cargo"))
}
