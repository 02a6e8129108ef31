package commands

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/dvub/npcli/internals/merrors"
)

// CliError is an error that might get displayed to the user
type CliError struct {
	Text        string
	Code        string
	Suggestions []string
	Help        string
}

func (e *CliError) Error() string {
	return e.Text
}

func (e *CliError) RichError() string {
	rendered := ErrorBox(e.Text, e.Help)
	if len(e.Suggestions) != 0 {
		suggestionText := "Suggestion:\n"
		if len(e.Suggestions) > 1 {
			suggestionText = "Suggestions:\n"
		}
		suggestionText = Emoji("📎 ") + suggestionText
		for _, s := range e.Suggestions {
			suggestionText += " ⦁ " + s + "\n"
		}
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, styleHelpBox.Render(suggestionText))
	}
	return rendered
}

// FromError turns err into a CliError with help text matching its kind.
// A CliError anywhere in the chain is returned as is.
func FromError(err error) *CliError {
	var cliErr *CliError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	kind, _ := merrors.KindOf(err)
	ce := &CliError{Text: err.Error(), Code: string(kind)}

	switch kind {
	case merrors.Validation:
		ce.Help = "A value was rejected."
		ce.Suggestions = []string{"Check your defaults with `npcli config list`"}
	case merrors.Selection:
		ce.Help = "At least one export type has to be selected."
	case merrors.Manifest:
		ce.Help = "The Cargo.toml of the new crate could not be updated."
		ce.Suggestions = []string{"Make sure the generated Cargo.toml contains a [dependencies] table"}
	case merrors.Generation:
		ce.Help = "The project files could not be written."
		ce.Suggestions = []string{"Pick a different project name or remove the existing directory"}
	case merrors.ExternalProcess:
		ce.Help = "A cargo command failed. Its output is shown above."
		ce.Suggestions = []string{
			"Make sure Rust is installed: https://rustup.rs",
			"Install the bundler with `cargo install --git https://github.com/robbert-vdh/nih-plug.git cargo-nih-plug`",
			"Skip the build with `--skip-build` and build manually",
		}
	}
	return ce
}
