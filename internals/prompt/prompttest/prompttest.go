// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"fmt"

	"github.com/dvub/npcli/internals/merrors"
	"github.com/dvub/npcli/internals/prompt"
)

// maxAsks guards tests against endless re-prompting
const maxAsks = 50

type answer struct {
	text    string
	choices []string
	cancel  bool
}

// Scripted answers questions by label. Questions without a queued answer are
// answered like a user pressing enter: inputs are empty, selects keep their
// initial value.
type Scripted struct {
	answers map[string][]answer
	counts  map[string]int

	// Asked records every question label in order
	Asked []string
	// Rejected records every error passed to Reject
	Rejected []error
}

// New returns an empty script
func New() *Scripted {
	return &Scripted{
		answers: make(map[string][]answer),
		counts:  make(map[string]int),
	}
}

// Answer queues text answers for the input with the given label
func (s *Scripted) Answer(label string, texts ...string) *Scripted {
	for _, t := range texts {
		s.answers[label] = append(s.answers[label], answer{text: t})
	}
	return s
}

// Choose queues a selection for the select or multi select with the given label
func (s *Scripted) Choose(label string, choices ...string) *Scripted {
	s.answers[label] = append(s.answers[label], answer{choices: choices})
	return s
}

// Cancel makes the question with the given label abort
func (s *Scripted) Cancel(label string) *Scripted {
	s.answers[label] = append(s.answers[label], answer{cancel: true})
	return s
}

func (s *Scripted) next(label string) (answer, bool, error) {
	s.Asked = append(s.Asked, label)
	s.counts[label]++
	if s.counts[label] > maxAsks {
		return answer{}, false, fmt.Errorf("question %q asked more than %d times", label, maxAsks)
	}

	queue := s.answers[label]
	if len(queue) == 0 {
		return answer{}, false, nil
	}
	s.answers[label] = queue[1:]
	if queue[0].cancel {
		return answer{}, false, merrors.Cancelled()
	}
	return queue[0], true, nil
}

// Input implements prompt.Prompter
func (s *Scripted) Input(q prompt.Input) (string, error) {
	a, ok, err := s.next(q.Label)
	if err != nil || !ok {
		return "", err
	}
	return a.text, nil
}

// Select implements prompt.Prompter
func (s *Scripted) Select(q prompt.Select) (string, error) {
	a, ok, err := s.next(q.Label)
	if err != nil {
		return "", err
	}
	if !ok || len(a.choices) == 0 {
		if q.Initial != "" {
			return q.Initial, nil
		}
		if len(q.Options) == 0 {
			return "", prompt.ChoiceError(q.Label, "")
		}
		return q.Options[0].Value, nil
	}
	if !hasOption(q.Options, a.choices[0]) {
		return "", prompt.ChoiceError(q.Label, a.choices[0])
	}
	return a.choices[0], nil
}

// MultiSelect implements prompt.Prompter
func (s *Scripted) MultiSelect(q prompt.MultiSelect) ([]string, error) {
	a, ok, err := s.next(q.Label)
	if err != nil {
		return nil, err
	}
	if !ok {
		return append([]string(nil), q.Initial...), nil
	}
	for _, c := range a.choices {
		if !hasOption(q.Options, c) {
			return nil, prompt.ChoiceError(q.Label, c)
		}
	}
	return append([]string(nil), a.choices...), nil
}

// Reject implements prompt.Prompter
func (s *Scripted) Reject(err error) {
	s.Rejected = append(s.Rejected, err)
}

// Count returns how often the question with the given label was asked
func (s *Scripted) Count(label string) int {
	return s.counts[label]
}

func hasOption(opts []prompt.Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}
