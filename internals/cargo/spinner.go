package cargo

import (
	"time"

	"github.com/briandowns/spinner"
)

// maybeSpinner is a spinner that stays silent when spinning is disabled
type maybeSpinner struct {
	spin    bool
	spinner *spinner.Spinner
}

func newMaybeSpinner(spin bool, msg string) *maybeSpinner {
	s := &maybeSpinner{
		spin:    spin,
		spinner: spinner.New(spinner.CharSets[9], 300*time.Millisecond),
	}
	s.spinner.Prefix = " "
	s.spinner.Suffix = " " + msg
	return s
}

// Start might start the spinner
func (s *maybeSpinner) Start() {
	if s.spin {
		s.spinner.Start()
	}
}

// Stop will stop the spinner
func (s *maybeSpinner) Stop() {
	if s.spin {
		s.spinner.Stop()
	}
}
