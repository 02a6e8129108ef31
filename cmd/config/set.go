package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dvub/npcli/internals/commands"
	"github.com/dvub/npcli/internals/config"
	"github.com/dvub/npcli/internals/globals"
	"github.com/dvub/npcli/internals/merrors"
	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Sets a global config value",
		Args:  cobra.ExactArgs(2),
	}, &setRunner{v: viper.GetViper(), file: globals.ConfigFile})

	SubCmd.AddCommand(cmd.Command)
}

type setRunner struct {
	v    *viper.Viper
	file func() (string, error)
}

func (i *setRunner) RunE(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	value := args[1]

	entry, ok := entries[key]
	if !ok {
		return merrors.Newf(merrors.UserInput, "config key %q does not exist", key)
	}

	var newValue interface{}
	switch entry.kind {
	case configKindBool:
		val, err := parseBool(value)
		if err != nil {
			return err
		}
		newValue = val
	case configKindString:
		newValue = value
	default:
		return fmt.Errorf("what? uncovered config values type")
	}

	previousValue := i.v.Get(key)
	i.v.Set(key, newValue)

	// reject values the scaffolder would refuse later
	if _, err := config.DefaultsFrom(i.v); err != nil {
		i.v.Set(key, previousValue)
		return err
	}

	fmt.Fprintf(
		cmd.OutOrStdout(),
		"Changing config entry:\n  %s: %s → %v\n",
		key,
		gchalk.Strikethrough(display(previousValue)),
		gchalk.Bold(fmt.Sprintf("%v", newValue)),
	)

	path, err := i.file()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return i.v.WriteConfigAs(path)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, merrors.New(merrors.Validation, "invalid boolean value. Use \"true\" or \"false\"")
	}
}
