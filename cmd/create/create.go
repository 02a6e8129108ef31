package create

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dvub/npcli/internals/cargo"
	"github.com/dvub/npcli/internals/commands"
	"github.com/dvub/npcli/internals/config"
	"github.com/dvub/npcli/internals/globals"
	"github.com/dvub/npcli/internals/merrors"
	"github.com/dvub/npcli/internals/project"
	"github.com/dvub/npcli/internals/prompt"
	"github.com/dvub/npcli/internals/scaffold"
	"github.com/dvub/npcli/pkg/manifest"
	"github.com/jwalton/gchalk"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = globals.Logger

func New() *cobra.Command {
	runner := &createRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "create [name]",
		Aliases: []string{"new"},
		Short:   "Creates a new NIH-plug project in the current directory",
		Args:    cobra.MaximumNArgs(1),
		Example: `
  npcli create
  npcli create gain --defaults --skip-build`,
	}, runner)

	cmd.Flags().StringVar(&runner.name, "name", "", "Name of the project directory and crate")
	cmd.Flags().BoolVarP(&runner.defaults, "defaults", "d", false, "Choose defaults for all questions. Requires a name (same as the noninteractive config)")
	cmd.Flags().BoolVarP(&runner.skipBuild, "skip-build", "s", false, "Do not build and bundle the new project")

	return cmd.Command
}

type createRunner struct {
	name      string
	defaults  bool
	skipBuild bool
}

func (c *createRunner) RunE(cmd *cobra.Command, args []string) error {
	name := projectName(c.name, args)
	mode := resolveMode(c.defaults, viper.GetBool("noninteractive"))

	if mode == config.ModeDefaults && name == "" {
		return &commands.CliError{
			Text:        "a project name is required when using defaults",
			Suggestions: []string{"npcli create gain --defaults"},
		}
	}

	if mode == config.ModeInteractive && !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return &commands.CliError{
			Text:        "can not ask questions, stdin is not a terminal",
			Suggestions: []string{"Use --defaults to skip all questions"},
		}
	}

	defaults, err := config.DefaultsFrom(viper.GetViper())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	tc := cargo.New(viper.GetString("cargo"), logger)
	tc.Verbose = viper.GetBool("verbose")
	if _, err := tc.CheckVersion(ctx); err != nil {
		return err
	}

	if mode == config.ModeInteractive {
		logger.Headline("create-nih-plug-project")
	}

	cfg, err := project.Collect(prompt.NewTerminal(), mode, defaults, name)
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return merrors.Wrap(merrors.Generation, err, "could not get the working directory")
	}

	creator := &scaffold.Creator{Toolchain: tc, Logger: logger, Dir: wd}
	res, err := creator.Create(ctx, cfg, scaffold.Options{
		SkipBuild: c.skipBuild,
		BuildArgs: scaffold.DefaultBuildArgs,
	})
	if err != nil {
		return err
	}

	summary(res, cfg, wd)
	return nil
}

// projectName prefers the --name flag over the positional argument
func projectName(flag string, args []string) string {
	if flag != "" {
		return flag
	}
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func resolveMode(defaultsFlag bool, nonInteractive bool) config.Mode {
	if defaultsFlag || nonInteractive {
		return config.ModeDefaults
	}
	return config.ModeInteractive
}

func summary(res *scaffold.Result, cfg *project.Config, wd string) {
	logger.Info("")
	rel, err := filepath.Rel(wd, res.Root)
	if err != nil {
		rel = res.Root
	}
	logger.Success(fmt.Sprintf("Created %s in ./%s", cfg.Identity.PluginName, rel))

	exports := ""
	for i, v := range cfg.Exports.Variants() {
		if i > 0 {
			exports += ", "
		}
		exports += v.String()
	}
	logger.Info("Exports: " + gchalk.Bold(exports))

	if m, err := manifest.Read(filepath.Join(res.Root, "Cargo.toml")); err == nil {
		logger.Info(fmt.Sprintf("Crate types: %v", m.CrateTypes()))
	}
	for _, f := range res.Files {
		logger.Log("  " + f)
	}

	logger.Info("")
	logger.Info("Next steps:")
	logger.Info("  cd " + rel)
	if !res.Built {
		logger.Info(fmt.Sprintf("  npcli bundle %s -- --release", cfg.Identity.ProjectName))
	} else {
		logger.Info("  your bundles are in target/bundled")
	}
}
