// Package scaffold creates nih-plug projects on disk and drives cargo to build them.
package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dvub/npcli/internals/cmdlog"
	"github.com/dvub/npcli/internals/merrors"
	"github.com/dvub/npcli/internals/project"
	"github.com/dvub/npcli/internals/render"
	"github.com/dvub/npcli/internals/utils"
	"github.com/dvub/npcli/pkg/manifest"
)

// DefaultBuildArgs are passed to cargo for the first build of a new project
var DefaultBuildArgs = []string{"--release"}

// Toolchain runs the external commands. *cargo.Toolchain implements it.
type Toolchain interface {
	New(ctx context.Context, dir string, name string) error
	Build(ctx context.Context, dir string, packages []string, args []string) error
	Bundle(ctx context.Context, dir string, pkg string, args []string) error
	BundleUniversal(ctx context.Context, dir string, pkg string, args []string) error
}

// Creator creates projects inside Dir
type Creator struct {
	Toolchain Toolchain
	Logger    *cmdlog.Logger
	Dir       string
}

// Options change how a project is created
type Options struct {
	// SkipBuild stops after the sources are generated
	SkipBuild bool
	// BuildArgs are passed to cargo build and cargo nih-plug bundle
	BuildArgs []string
}

// Result describes a created project
type Result struct {
	// Root is the project directory
	Root string
	// Files are the files written or modified, relative to Root
	Files []string
	// Built is true if the project was built and bundled
	Built bool
}

type generatedFile struct {
	path    string
	content string
}

// Create creates the project described by cfg. Steps run in order and the
// first failure aborts the rest. Nothing is cleaned up after a failure.
func (c *Creator) Create(ctx context.Context, cfg *project.Config, opts Options) (*Result, error) {
	name := cfg.Identity.ProjectName
	root := filepath.Join(c.Dir, name)
	res := &Result{Root: root}

	exists, err := utils.Exists(root)
	if err != nil {
		return nil, merrors.Wrap(merrors.Generation, err, "could not check project directory")
	}
	if exists {
		return nil, merrors.Newf(merrors.Generation, "%s already exists", root)
	}

	steps := 3
	if !opts.SkipBuild {
		steps += 2
	}
	task := c.logger().NewTask(steps)

	task.Step("📦", "Creating crate "+name)
	if err := c.Toolchain.New(ctx, c.Dir, name); err != nil {
		return nil, err
	}

	task.Step("🔧", "Adding nih-plug to Cargo.toml")
	warnings, err := manifest.Mutate(filepath.Join(root, "Cargo.toml"), cfg.Standalone())
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		c.logger().Warn("Cargo.toml: " + w.Error())
	}
	res.Files = append(res.Files, "Cargo.toml")

	task.Step("📝", "Generating sources")
	out, err := render.Render(cfg)
	if err != nil {
		return nil, merrors.Wrap(merrors.Generation, err, "could not render sources")
	}
	files := []generatedFile{{filepath.Join("src", "lib.rs"), out.Lib}}
	if out.HasMain() {
		files = append(files, generatedFile{filepath.Join("src", "main.rs"), out.Main})
	}
	for _, f := range files {
		full := filepath.Join(root, f.path)
		if err := utils.WriteFileAtomic(full, []byte(f.content), 0o644); err != nil {
			return nil, merrors.Wrap(merrors.Generation, err, "could not write "+f.path)
		}
		task.Log(fmt.Sprintf("wrote %s (%s)", f.path, utils.HumanFileSize(full)))
		res.Files = append(res.Files, f.path)
	}

	if opts.SkipBuild {
		return res, nil
	}

	task.Step("🔨", "Building "+name)
	if err := c.Toolchain.Build(ctx, root, []string{name}, opts.BuildArgs); err != nil {
		return nil, err
	}

	task.Step("🎁", "Bundling "+name)
	if err := c.Toolchain.Bundle(ctx, root, name, opts.BuildArgs); err != nil {
		return nil, err
	}
	res.Built = true

	return res, nil
}

// Compile builds all packages in the workspace at dir and bundles each of them
func (c *Creator) Compile(ctx context.Context, dir string, packages []string, args []string) error {
	task := c.logger().NewTask(1 + len(packages))

	task.Step("🔨", fmt.Sprintf("Building %d package(s)", len(packages)))
	if err := c.Toolchain.Build(ctx, dir, packages, args); err != nil {
		return err
	}

	for _, pkg := range packages {
		task.Step("🎁", "Bundling "+pkg)
		if err := c.Toolchain.Bundle(ctx, dir, pkg, args); err != nil {
			return err
		}
	}
	return nil
}

// CompileUniversal bundles pkg as a universal macOS binary
func (c *Creator) CompileUniversal(ctx context.Context, dir string, pkg string, args []string) error {
	task := c.logger().NewTask(1)
	task.Step("🎁", "Bundling "+pkg+" (universal)")
	return c.Toolchain.BundleUniversal(ctx, dir, pkg, args)
}

func (c *Creator) logger() *cmdlog.Logger {
	if c.Logger == nil {
		return cmdlog.New()
	}
	return c.Logger
}
