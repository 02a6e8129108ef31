// Package prompt defines how the scaffolder asks questions.
//
// Collectors only talk to a Prompter. The Terminal implementation renders the
// questions, prompttest.Scripted answers them in tests.
package prompt

import (
	"fmt"

	"github.com/dvub/npcli/internals/merrors"
)

// Option is a single choice of a Select or MultiSelect
type Option struct {
	Label string
	Value string
	// Hint is an optional description shown next to the option
	Hint string
}

// Options turns plain values into options that use the value as label
func Options(values ...string) []Option {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Label: v, Value: v}
	}
	return opts
}

// Input asks for free text
type Input struct {
	Label string
	// Placeholder is shown as an example when there is no default
	Placeholder string
	// Default is used when the answer is empty
	Default string
}

// Select asks for exactly one of Options
type Select struct {
	Label   string
	Options []Option
	// Initial is the value the cursor starts on
	Initial string
}

// MultiSelect asks for any number of Options
type MultiSelect struct {
	Label   string
	Options []Option
	// Initial values are pre-checked
	Initial []string
	// Required rejects an empty selection
	Required bool
}

// Prompter asks the user questions. Every method blocks until the user answered.
// A cancelled prompt returns a merrors.UserInput error wrapping merrors.ErrCancelled.
type Prompter interface {
	// Input returns the raw answer, which may be empty
	Input(q Input) (string, error)
	// Select returns the Value of the chosen option
	Select(q Select) (string, error)
	// MultiSelect returns the Values of the chosen options in the order the
	// implementation reports them. Callers must not rely on it being the
	// order the user picked them in.
	MultiSelect(q MultiSelect) ([]string, error)
	// Reject tells the user why their last answer was not accepted
	Reject(err error)
}

// Validator checks a candidate answer. Returning a merrors.Validation error
// makes Ask repeat the question; any other error aborts.
type Validator func(answer string) error

// Ask asks q until validate accepts the answer or the user cancels.
// An empty answer is replaced by q.Default before it is validated.
func Ask(p Prompter, q Input, validate Validator) (string, error) {
	for {
		answer, err := p.Input(q)
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = q.Default
		}
		if validate == nil {
			return answer, nil
		}

		err = validate(answer)
		if err == nil {
			return answer, nil
		}
		if !merrors.Is(err, merrors.Validation) {
			return "", err
		}
		p.Reject(err)
	}
}

// ChoiceError is returned by Select or MultiSelect implementations when an
// answer is not one of the offered options
func ChoiceError(label string, value string) error {
	return merrors.Wrap(merrors.UserInput, fmt.Errorf("%q is not an option", value), label)
}
