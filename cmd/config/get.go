package config

import (
	"fmt"
	"strings"

	"github.com/dvub/npcli/internals/commands"
	"github.com/dvub/npcli/internals/merrors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get <key>",
		Short: "Gets a global config value",
		Args:  cobra.ExactArgs(1),
	}, &getRunner{v: viper.GetViper()})

	SubCmd.AddCommand(cmd.Command)
}

type getRunner struct {
	v *viper.Viper
}

func (i *getRunner) RunE(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])

	if _, ok := entries[key]; !ok {
		return merrors.Newf(merrors.UserInput, "config key %q does not exist", key)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Printing config entry:")
	fmt.Fprintf(out, "  %s: %s\n", key, display(i.v.Get(key)))

	return nil
}

func display(v interface{}) string {
	if v == nil {
		return "(unset)"
	}
	return fmt.Sprintf("%v", v)
}
