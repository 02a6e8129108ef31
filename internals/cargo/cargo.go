// Package cargo runs the cargo commands needed to create, build and bundle
// nih-plug projects. Commands are always started with an argument list,
// never through a shell.
package cargo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/dvub/npcli/internals/cmdlog"
	"github.com/dvub/npcli/internals/merrors"
	"github.com/dvub/npcli/internals/utils"
	"github.com/dvub/npcli/pkg/logparser"
	"github.com/mattn/go-isatty"
)

// DefaultBinary is the cargo executable used when none is configured
const DefaultBinary = "cargo"

// MinVersion is the oldest cargo nih-plug is known to build with
var MinVersion = semver.MustParse("1.70.0")

// tailLines is how many lines of captured output are kept in errors
const tailLines = 15

// Toolchain runs cargo
type Toolchain struct {
	// Binary is the cargo executable, DefaultBinary if empty
	Binary string
	// Verbose streams cargo's output to Logger while it runs
	Verbose bool
	// Spin shows a spinner while cargo runs
	Spin bool
	// Logger receives progress and streamed output
	Logger *cmdlog.Logger
	// Env is added to the environment of every command
	Env []string
}

// New returns a Toolchain using binary. A spinner is shown if stdout is a terminal.
func New(binary string, logger *cmdlog.Logger) *Toolchain {
	return &Toolchain{
		Binary: binary,
		Spin:   isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		Logger: logger,
	}
}

// NewArgs returns the arguments for creating a library crate called name
func NewArgs(name string) []string {
	return []string{"new", "--lib", name, "--vcs", "git"}
}

// BuildArgs returns the arguments for building packages
func BuildArgs(packages []string, extra []string) []string {
	args := []string{"build"}
	for _, pkg := range packages {
		args = append(args, "-p", pkg)
	}
	return append(args, extra...)
}

// BundleArgs returns the arguments for bundling a single package
func BundleArgs(pkg string, extra []string) []string {
	return append([]string{"nih-plug", "bundle", pkg}, extra...)
}

// BundleUniversalArgs returns the arguments for a macOS universal bundle
func BundleUniversalArgs(pkg string, extra []string) []string {
	return append([]string{"nih-plug", "bundle-universal", pkg}, extra...)
}

// New creates the crate skeleton `name` inside dir
func (t *Toolchain) New(ctx context.Context, dir string, name string) error {
	_, err := t.run(ctx, dir, "Creating crate "+name, NewArgs(name))
	return err
}

// Build compiles packages inside the workspace at dir
func (t *Toolchain) Build(ctx context.Context, dir string, packages []string, args []string) error {
	_, err := t.run(ctx, dir, "Building "+strings.Join(packages, ", "), BuildArgs(packages, args))
	return err
}

// Bundle packages pkg as a plugin bundle using cargo-nih-plug
func (t *Toolchain) Bundle(ctx context.Context, dir string, pkg string, args []string) error {
	_, err := t.run(ctx, dir, "Bundling "+pkg, BundleArgs(pkg, args))
	return err
}

// BundleUniversal packages pkg as a universal macOS bundle using cargo-nih-plug
func (t *Toolchain) BundleUniversal(ctx context.Context, dir string, pkg string, args []string) error {
	_, err := t.run(ctx, dir, "Bundling "+pkg+" (universal)", BundleUniversalArgs(pkg, args))
	return err
}

// Version returns the version reported by `cargo --version`
func (t *Toolchain) Version(ctx context.Context) (*semver.Version, error) {
	out, err := t.run(ctx, "", "", []string{"--version"})
	if err != nil {
		return nil, err
	}
	return ParseVersion(out)
}

// CheckVersion makes sure cargo can be run at all and warns about old versions
func (t *Toolchain) CheckVersion(ctx context.Context) (*semver.Version, error) {
	v, err := t.Version(ctx)
	if err != nil {
		return nil, err
	}
	if v.LessThan(MinVersion) && t.Logger != nil {
		t.Logger.Warn(fmt.Sprintf(
			"cargo %s is older than %s, building nih-plug might fail. Run `rustup update`",
			utils.PrettyVersion(v, MinVersion),
			MinVersion,
		))
	}
	return v, nil
}

var versionMatch = regexp.MustCompile(`cargo (\d+\.\d+\.\d+\S*)`)

// ParseVersion parses the output of `cargo --version` like "cargo 1.75.0 (1d8b05cdd 2023-11-20)"
func ParseVersion(out string) (*semver.Version, error) {
	m := versionMatch.FindStringSubmatch(out)
	if m == nil {
		return nil, merrors.Newf(merrors.ExternalProcess, "unexpected cargo version output %q", strings.TrimSpace(out))
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, merrors.Wrap(merrors.ExternalProcess, err, "unexpected cargo version")
	}
	return v, nil
}

func (t *Toolchain) binary() string {
	if t.Binary == "" {
		return DefaultBinary
	}
	return t.Binary
}

// run executes cargo with args in dir and returns the combined output
func (t *Toolchain) run(ctx context.Context, dir string, msg string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, t.binary(), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), t.Env...)

	var captured bytes.Buffer
	var out io.Writer = &captured
	if t.Verbose && t.Logger != nil {
		out = io.MultiWriter(&captured, t.Logger.Writer())
	}
	cmd.Stdout = out
	cmd.Stderr = out

	var spin *maybeSpinner
	if msg != "" {
		spin = newMaybeSpinner(t.Spin && !t.Verbose, msg)
		spin.Start()
	}
	err := cmd.Run()
	if spin != nil {
		spin.Stop()
	}

	if err != nil {
		return captured.String(), &merrors.Error{
			Kind: merrors.ExternalProcess,
			Msg:  fmt.Sprintf("`%s %s` failed", t.binary(), strings.Join(args, " ")),
			Err:  processError(ctx, err, captured.String()),
		}
	}
	return captured.String(), nil
}

// processError adds the compiler errors, or the last lines of output, to err
func processError(ctx context.Context, err error, output string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if diagnostics := logparser.Errors(output); len(diagnostics) > 0 {
		lines := make([]string, len(diagnostics))
		for i, d := range diagnostics {
			lines[i] = d.String()
		}
		return fmt.Errorf("%w\n%s", err, strings.Join(lines, "\n"))
	}
	tail := Tail(output, tailLines)
	if tail == "" {
		return err
	}
	return fmt.Errorf("%w\n%s", err, tail)
}

// Tail returns the last n non-empty lines of s
func Tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\r\n "), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
