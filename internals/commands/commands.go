package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dvub/npcli/internals/merrors"
	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
)

type Command struct {
	*cobra.Command
	runner Runner
}

type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// exit is replaced in tests
var exit = os.Exit

func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.Run = func(cmd *cobra.Command, args []string) {
		err := run.RunE(cmd, args)
		if err != nil {
			Report(cmd.OutOrStdout(), err)
			exit(1)
		}
	}

	return build
}

// Report prints err for the user. Aborted prompts only print a short note.
func Report(w io.Writer, err error) {
	if errors.Is(err, merrors.ErrCancelled) {
		fmt.Fprintln(w, gchalk.Gray("Aborting"))
		return
	}
	fmt.Fprintln(w, FromError(err).RichError()+"\n")
}
