package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"

	"github.com/dvub/npcli/cmd/config"
	"github.com/dvub/npcli/cmd/create"
	"github.com/dvub/npcli/internals/cmdlog"
	"github.com/dvub/npcli/internals/commands"
	"github.com/dvub/npcli/internals/globals"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set by main
	Version = "dev"
	// Commit is set by main
	Commit = ""
)

var logger = globals.Logger

var disableColors bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "npcli",
	Short: "Create and build NIH-plug audio plugins",
	Long:  "Scaffolds NIH-plug plugin projects and drives cargo to build and bundle them",

	Example: `
  npcli create
  npcli create gain --defaults
  npcli bundle gain -- --release`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Ctrl-C cancels the context, which stops a running cargo process.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.Version = Version
	if Commit != "" {
		rootCmd.Version += " (" + Commit + ")"
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		commands.Report(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&disableColors, "no-color", "", false, "disable color output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "show the output of cargo while it runs")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(create.New())
	rootCmd.AddCommand(newBundleCmd())
	rootCmd.AddCommand(newBundleUniversalCmd())
	rootCmd.AddCommand(config.SubCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		cmdlog.DisableColor()
		commands.DisableEmoji()
	}

	viper.SetEnvPrefix(globals.AppName)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	configFile, err := globals.ConfigFile()
	if err != nil {
		logger.Warn("could not find the user config directory: " + err.Error())
		return
	}
	viper.SetConfigFile(configFile)
	viper.SetConfigType("toml")

	// the config file is optional
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Warn("could not read " + configFile + ": " + err.Error())
		}
	}
}
