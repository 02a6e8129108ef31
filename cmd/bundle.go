package cmd

import (
	"os"

	"github.com/dvub/npcli/internals/autocomplete"
	"github.com/dvub/npcli/internals/cargo"
	"github.com/dvub/npcli/internals/commands"
	"github.com/dvub/npcli/internals/merrors"
	"github.com/dvub/npcli/internals/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newBundleCmd() *cobra.Command {
	cmd := commands.New(&cobra.Command{
		Use:   "bundle <packages...> [-- cargo args...]",
		Short: "Builds and bundles plugins in the current cargo workspace",
		Args:  cobra.MinimumNArgs(1),
		Example: `
  npcli bundle gain
  npcli bundle gain reverb -- --release`,
		ValidArgsFunction: completePackages,
	}, &bundleRunner{})
	return cmd.Command
}

func newBundleUniversalCmd() *cobra.Command {
	cmd := commands.New(&cobra.Command{
		Use:   "bundle-universal <package> [-- cargo args...]",
		Short: "Bundles a plugin as a universal binary for x86_64 and AArch64 macOS",
		Args:  cobra.MinimumNArgs(1),
		Example: `
  npcli bundle-universal gain -- --release`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return completePackages(cmd, args, toComplete)
		},
	}, &bundleRunner{universal: true})
	return cmd.Command
}

func completePackages(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	completer := autocomplete.AutoCompleter{Dir: wd}
	return completer.Complete(args, toComplete)
}

type bundleRunner struct {
	universal bool
}

func (b *bundleRunner) RunE(cmd *cobra.Command, args []string) error {
	packages, extra := splitAtDash(args, cmd.ArgsLenAtDash())
	if len(packages) == 0 {
		return merrors.New(merrors.UserInput, "no package given")
	}
	if b.universal && len(packages) != 1 {
		return merrors.Newf(merrors.UserInput, "bundle-universal takes exactly one package, got %d", len(packages))
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	tc := cargo.New(viper.GetString("cargo"), logger)
	tc.Verbose = viper.GetBool("verbose")
	creator := &scaffold.Creator{Toolchain: tc, Logger: logger, Dir: wd}

	if b.universal {
		err = creator.CompileUniversal(cmd.Context(), wd, packages[0], extra)
	} else {
		err = creator.Compile(cmd.Context(), wd, packages, extra)
	}
	if err != nil {
		return err
	}

	logger.Success("Bundles are in target/bundled")
	return nil
}

// splitAtDash splits args into packages and the arguments passed through to cargo.
// dash is cobra's ArgsLenAtDash, -1 if there was no "--".
func splitAtDash(args []string, dash int) (packages []string, extra []string) {
	if dash < 0 || dash > len(args) {
		return args, nil
	}
	return args[:dash], args[dash:]
}
