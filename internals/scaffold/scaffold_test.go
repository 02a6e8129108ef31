package scaffold

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dvub/npcli/internals/category"
	"github.com/dvub/npcli/internals/cmdlog"
	"github.com/dvub/npcli/internals/config"
	"github.com/dvub/npcli/internals/merrors"
	"github.com/dvub/npcli/internals/project"
	"github.com/dvub/npcli/internals/prompt/prompttest"
	"github.com/dvub/npcli/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const skeletonManifest = `[package]
name = "%s"
version = "0.1.0"
edition = "2021"

[dependencies]
`

// fakeToolchain creates a `cargo new --lib` skeleton and records every call
type fakeToolchain struct {
	calls  []string
	failOn string
	// manifest replaces skeletonManifest when set
	manifest string
}

func (f *fakeToolchain) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.HasPrefix(call, f.failOn) {
		return merrors.New(merrors.ExternalProcess, "`cargo "+call+"` failed")
	}
	return nil
}

func (f *fakeToolchain) New(ctx context.Context, dir string, name string) error {
	if err := f.record("new " + name); err != nil {
		return err
	}
	root := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		return err
	}
	cargo := strings.Replace(skeletonManifest, "%s", name, 1)
	if f.manifest != "" {
		cargo = f.manifest
	}
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte(cargo), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, "src", "lib.rs"), []byte("pub fn add() {}\n"), 0o644)
}

func (f *fakeToolchain) Build(ctx context.Context, dir string, packages []string, args []string) error {
	return f.record(strings.TrimSpace("build " + strings.Join(packages, ",") + " " + strings.Join(args, " ")))
}

func (f *fakeToolchain) Bundle(ctx context.Context, dir string, pkg string, args []string) error {
	return f.record(strings.TrimSpace("bundle " + pkg + " " + strings.Join(args, " ")))
}

func (f *fakeToolchain) BundleUniversal(ctx context.Context, dir string, pkg string, args []string) error {
	return f.record(strings.TrimSpace("bundle-universal " + pkg + " " + strings.Join(args, " ")))
}

func newCreator(t *testing.T, tc *fakeToolchain) (*Creator, *bytes.Buffer) {
	t.Helper()
	cmdlog.DisableColor()
	var log bytes.Buffer
	return &Creator{Toolchain: tc, Logger: cmdlog.NewWithWriter(&log), Dir: t.TempDir()}, &log
}

func readFile(t *testing.T, path ...string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(path...))
	require.NoError(t, err)
	return string(content)
}

func TestCreate_Defaults(t *testing.T) {
	tc := &fakeToolchain{}
	c, log := newCreator(t, tc)

	cfg, err := project.Collect(nil, config.ModeDefaults, config.Builtin(), "gain")
	require.NoError(t, err)

	res, err := c.Create(context.Background(), cfg, Options{SkipBuild: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(c.Dir, "gain"), res.Root)
	assert.Equal(t, []string{"Cargo.toml", filepath.Join("src", "lib.rs")}, res.Files)
	assert.False(t, res.Built)
	assert.Equal(t, []string{"new gain"}, tc.calls)

	m, err := manifest.Read(filepath.Join(res.Root, "Cargo.toml"))
	require.NoError(t, err)
	dep, ok := m.Dependency(manifest.DependencyName)
	require.True(t, ok)
	assert.Equal(t, manifest.DependencyGit, dep.Git)
	assert.Equal(t, []string{"assert_process_allocs"}, dep.Features)
	assert.Equal(t, []string{"cdylib"}, m.CrateTypes())
	assert.Equal(t, "gain", m.Name())

	lib := readFile(t, res.Root, "src", "lib.rs")
	assert.Contains(t, lib, `"Gain"`)
	assert.Contains(t, lib, `"NIH-Plug"`)
	assert.NotContains(t, lib, "ClapPlugin")
	assert.Equal(t, 1, strings.Count(lib, "Vst3SubCategory::"))
	assert.NotContains(t, lib, "pub fn add")

	assert.NoFileExists(t, filepath.Join(res.Root, "src", "main.rs"))
	assert.Contains(t, log.String(), "[1 / 3]")
	assert.Contains(t, log.String(), "[3 / 3]")
	assert.Contains(t, log.String(), "Generating sources")
}

func TestCreate_InteractiveClapStandalone(t *testing.T) {
	tc := &fakeToolchain{}
	c, _ := newCreator(t, tc)

	p := prompttest.New().
		Answer("What's your project named? (NOT the actual plugin name)", "big-reverb").
		Answer("What's your plugin named?", "Big Reverb").
		Choose("MIDI Config?", string(config.MidiBasic)).
		Choose("Export types?", "VST3", "CLAP", "Standalone").
		Answer("VST ID?", "BigReverbPlugin!").
		Choose(category.Vst3Spec.PrimaryLabel, "Fx").
		Choose(category.Vst3Spec.SecondaryLabel, "Reverb").
		Answer("CLAP ID?", "com.example.big-reverb").
		Answer("CLAP description?", "A big reverb").
		Choose(category.ClapSpec.PrimaryLabel, "AudioEffect").
		Choose(category.ClapSpec.SecondaryLabel, "Reverb", "Stereo")

	cfg, err := project.Collect(p, config.ModeInteractive, config.Builtin(), "")
	require.NoError(t, err)

	res, err := c.Create(context.Background(), cfg, Options{BuildArgs: DefaultBuildArgs})
	require.NoError(t, err)
	assert.True(t, res.Built)
	assert.Equal(t, []string{
		"new big-reverb",
		"build big-reverb --release",
		"bundle big-reverb --release",
	}, tc.calls)

	m, err := manifest.Read(filepath.Join(res.Root, "Cargo.toml"))
	require.NoError(t, err)
	dep, _ := m.Dependency(manifest.DependencyName)
	assert.Equal(t, []string{"assert_process_allocs", "standalone"}, dep.Features)
	assert.Equal(t, []string{"cdylib", "lib"}, m.CrateTypes())

	lib := readFile(t, res.Root, "src", "lib.rs")
	assert.Contains(t, lib, "&[ClapFeature::AudioEffect, ClapFeature::Reverb, ClapFeature::Stereo]")
	assert.Contains(t, lib, "MidiConfig::Basic;")
	assert.Contains(t, lib, `*b"BigReverbPlugin!"`)

	// CLAP is rendered before VST3, both after the shared plugin impl
	plugin := strings.Index(lib, "impl Plugin for BigReverb")
	clap := strings.Index(lib, "impl ClapPlugin for BigReverb")
	vst3 := strings.Index(lib, "impl Vst3Plugin for BigReverb")
	require.True(t, plugin >= 0 && clap >= 0 && vst3 >= 0)
	assert.Less(t, plugin, clap)
	assert.Less(t, clap, vst3)
	assert.Less(t, strings.Index(lib, "nih_export_clap!"), strings.Index(lib, "nih_export_vst3!"))

	entry := readFile(t, res.Root, "src", "main.rs")
	assert.Contains(t, entry, "use big_reverb::BigReverb;")
	assert.Contains(t, res.Files, filepath.Join("src", "main.rs"))
}

func TestCreate_ManifestWarnings(t *testing.T) {
	tc := &fakeToolchain{manifest: "[package]\nname = \"gain\"\nrust-version = \"latest\"\n\n[dependencies]\n"}
	c, log := newCreator(t, tc)

	cfg, err := project.Collect(nil, config.ModeDefaults, config.Builtin(), "gain")
	require.NoError(t, err)

	_, err = c.Create(context.Background(), cfg, Options{SkipBuild: true})
	require.NoError(t, err)
	assert.Contains(t, log.String(), "Cargo.toml: "+manifest.ErrInvalidRustVersion.Error())

	m, err := manifest.Read(filepath.Join(c.Dir, "gain", "Cargo.toml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cdylib"}, m.CrateTypes())
}

func TestCreate_ExistingDirectory(t *testing.T) {
	tc := &fakeToolchain{}
	c, _ := newCreator(t, tc)
	require.NoError(t, os.Mkdir(filepath.Join(c.Dir, "gain"), 0o755))

	cfg, err := project.Collect(nil, config.ModeDefaults, config.Builtin(), "gain")
	require.NoError(t, err)

	_, err = c.Create(context.Background(), cfg, Options{})
	assert.True(t, merrors.Is(err, merrors.Generation))
	assert.Empty(t, tc.calls)
}

func TestCreate_FailureAbortsWithoutRollback(t *testing.T) {
	tests := []struct {
		name   string
		failOn string
		calls  []string
	}{
		{"build fails", "build", []string{"new gain", "build gain --release"}},
		{"bundle fails", "bundle", []string{"new gain", "build gain --release", "bundle gain --release"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := &fakeToolchain{failOn: tt.failOn}
			c, _ := newCreator(t, tc)

			cfg, err := project.Collect(nil, config.ModeDefaults, config.Builtin(), "gain")
			require.NoError(t, err)

			_, err = c.Create(context.Background(), cfg, Options{BuildArgs: DefaultBuildArgs})
			assert.True(t, merrors.Is(err, merrors.ExternalProcess))
			assert.Equal(t, tt.calls, tc.calls)

			// generated files stay on disk
			assert.FileExists(t, filepath.Join(c.Dir, "gain", "Cargo.toml"))
			assert.Contains(t, readFile(t, c.Dir, "gain", "src", "lib.rs"), "nih_export_vst3!")
		})
	}
}

func TestCreate_NewFails(t *testing.T) {
	tc := &fakeToolchain{failOn: "new"}
	c, _ := newCreator(t, tc)

	cfg, err := project.Collect(nil, config.ModeDefaults, config.Builtin(), "gain")
	require.NoError(t, err)

	_, err = c.Create(context.Background(), cfg, Options{})
	assert.True(t, merrors.Is(err, merrors.ExternalProcess))
	assert.NoDirExists(t, filepath.Join(c.Dir, "gain"))
}

func TestCompile(t *testing.T) {
	tc := &fakeToolchain{}
	c, _ := newCreator(t, tc)

	require.NoError(t, c.Compile(context.Background(), c.Dir, []string{"gain", "reverb"}, []string{"--release"}))
	assert.Equal(t, []string{
		"build gain,reverb --release",
		"bundle gain --release",
		"bundle reverb --release",
	}, tc.calls)

	tc.calls = nil
	require.NoError(t, c.CompileUniversal(context.Background(), c.Dir, "gain", nil))
	assert.Equal(t, []string{"bundle-universal gain"}, tc.calls)
}

func TestCompile_BuildFails(t *testing.T) {
	tc := &fakeToolchain{failOn: "build"}
	c, _ := newCreator(t, tc)

	err := c.Compile(context.Background(), c.Dir, []string{"gain"}, nil)
	assert.Error(t, err)
	assert.Equal(t, []string{"build gain"}, tc.calls)
}
