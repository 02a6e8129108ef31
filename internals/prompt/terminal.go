package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/dvub/npcli/internals/merrors"
	"github.com/jwalton/gchalk"
	"github.com/manifoldco/promptui"
)

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "▸ {{ .Label | cyan }}",
	Inactive: "  {{ .Label }}",
	Selected: "✔ {{ .Label | faint }}",
	Details:  "{{ if .Hint }}{{ .Hint | faint }}{{ end }}",
}

// Terminal asks questions on the terminal. Text input and single selects use
// promptui, multi selects use a huh form since promptui has none.
type Terminal struct {
	// Stdin and Stdout default to the process' standard streams
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewTerminal returns a Prompter using the standard streams
func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) out() io.Writer {
	if t.Stdout == nil {
		return os.Stdout
	}
	return t.Stdout
}

// Input implements Prompter
func (t *Terminal) Input(q Input) (string, error) {
	label := q.Label
	if q.Default == "" && q.Placeholder != "" {
		label = fmt.Sprintf("%s (e.g. %s)", q.Label, q.Placeholder)
	}

	p := &promptui.Prompt{
		Label:   label,
		Default: q.Default,
		Stdin:   t.Stdin,
		Stdout:  t.Stdout,
	}
	res, err := p.Run()
	if err != nil {
		return "", fromPromptui(err)
	}
	return res, nil
}

// Select implements Prompter
func (t *Terminal) Select(q Select) (string, error) {
	if len(q.Options) == 0 {
		return "", merrors.Newf(merrors.UserInput, "%s: nothing to choose from", q.Label)
	}
	cursor := 0
	for i, o := range q.Options {
		if o.Value == q.Initial {
			cursor = i
		}
	}

	s := &promptui.Select{
		Label:     q.Label,
		Items:     q.Options,
		CursorPos: cursor,
		Size:      10,
		Templates: selectTemplates,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	}
	i, _, err := s.Run()
	if err != nil {
		return "", fromPromptui(err)
	}
	return q.Options[i].Value, nil
}

// MultiSelect implements Prompter
func (t *Terminal) MultiSelect(q MultiSelect) ([]string, error) {
	selected := append([]string(nil), q.Initial...)

	opts := make([]huh.Option[string], len(q.Options))
	for i, o := range q.Options {
		key := o.Label
		if o.Hint != "" {
			key = o.Label + " - " + o.Hint
		}
		opts[i] = huh.NewOption(key, o.Value).Selected(contains(q.Initial, o.Value))
	}

	field := huh.NewMultiSelect[string]().
		Title(q.Label).
		Options(opts...).
		Value(&selected)
	if q.Required {
		field = field.Validate(func(v []string) error {
			if len(v) == 0 {
				return errors.New("select at least one option")
			}
			return nil
		})
	}

	form := huh.NewForm(huh.NewGroup(field)).WithOutput(t.out())
	if t.Stdin != nil {
		form = form.WithInput(t.Stdin)
	}
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, merrors.Cancelled()
		}
		return nil, merrors.Wrap(merrors.UserInput, err, q.Label)
	}

	return selected, nil
}

// Reject implements Prompter
func (t *Terminal) Reject(err error) {
	fmt.Fprintln(t.out(), gchalk.Red("✗ "+err.Error()))
}

func fromPromptui(err error) error {
	switch {
	case errors.Is(err, promptui.ErrInterrupt),
		errors.Is(err, promptui.ErrEOF),
		errors.Is(err, promptui.ErrAbort):
		return merrors.Cancelled()
	default:
		return merrors.Wrap(merrors.UserInput, err, "reading answer")
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
