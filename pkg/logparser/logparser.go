// Package logparser picks the diagnostics out of cargo and rustc output.
package logparser

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// LogLine is a parsed log line
type LogLine struct {
	Level string
	// Code is the rustc error code like "E0425", if any
	Code    string
	Message string
	Garbage bool
}

func (l LogLine) String() string {
	if l.Garbage {
		return l.Message
	}
	if l.Code != "" {
		return fmt.Sprintf("%s[%s]: %s", l.Level, l.Code, l.Message)
	}
	return fmt.Sprintf("%s: %s", l.Level, l.Message)
}

var diagnosticLine = regexp.MustCompile(`^(error|warning)(?:\[(E\d+)\])?: (.+)$`)

// ParseLine parses a string into a `LogLine`
func ParseLine(input string) *LogLine {
	found := diagnosticLine.FindStringSubmatch(strings.TrimRight(input, "\r"))
	if len(found) == 0 {
		return &LogLine{Garbage: true, Message: input}
	}

	return &LogLine{
		Level:   found[1],
		Code:    found[2],
		Message: found[3],
	}
}

// Errors returns every error diagnostic in output, in order
func Errors(output string) []LogLine {
	var errs []LogLine
	for _, line := range strings.Split(output, "\n") {
		parsed := ParseLine(line)
		if !parsed.Garbage && parsed.Level == LevelError {
			errs = append(errs, *parsed)
		}
	}
	return errs
}
