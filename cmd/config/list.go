package config

import (
	"fmt"

	"github.com/dvub/npcli/internals/commands"
	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "list",
		Short: "Lists all global config values",
		Args:  cobra.NoArgs,
	}, &listRunner{v: viper.GetViper()})

	SubCmd.AddCommand(cmd.Command)
}

type listRunner struct {
	v *viper.Viper
}

func (l *listRunner) RunE(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, key := range keys() {
		fmt.Fprintf(out, "%s: %s %s\n", key, display(l.v.Get(key)), gchalk.Gray("# "+entries[key].help))
	}
	return nil
}
