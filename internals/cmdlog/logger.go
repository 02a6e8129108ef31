package cmdlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jwalton/gchalk"
)

// Logger loggs pretty stuff to the console
type Logger struct {
	Out       io.Writer
	emojis    bool
	indention int
}

// helper for indention
func (l *Logger) println(a string) {
	fmt.Fprintln(l.Out, strings.Repeat(" ", l.indention)+a)
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e + " "
	}
	return ""
}

// Headline prints a bold cyan line
func (l *Logger) Headline(s string) {
	fmt.Fprintln(l.Out, gchalk.Bold(gchalk.Cyan(s)))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Log prints a dimmed line
func (l *Logger) Log(s string) {
	l.println(gchalk.Gray(s))
}

// Success prints a green line
func (l *Logger) Success(s string) {
	l.println(l.sprintEmoji("✔") + gchalk.Green(s))
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	l.println(l.sprintEmoji("⚠️ ") + gchalk.Bold(gchalk.Yellow(s)))
}

// Error prints an error line, it does not exit
func (l *Logger) Error(s string) {
	l.println(l.sprintEmoji("💣") + gchalk.Bold(gchalk.Red("Error: ")) + gchalk.Bold(s))
}

// Writer returns a writer that indents every line written to it like Info does
func (l *Logger) Writer() io.Writer {
	return &lineWriter{l: l}
}

// NewTask returns a new Task logger
func (l *Logger) NewTask(end int) *Task {
	logger := *l
	logger.indention = 2
	return &Task{Logger: &logger, end: end}
}

// New returns a new Logger writing to stdout
func New() *Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter returns a new Logger writing to w
func NewWithWriter(w io.Writer) *Logger {
	emojis := runtime.GOOS != "windows"

	// disable emojis for CI
	if os.Getenv("CI") != "" {
		emojis = false
	}
	return &Logger{Out: w, emojis: emojis}
}

// DisableColor turns off all colored output
func DisableColor() {
	gchalk.SetLevel(gchalk.LevelNone)
}

// Task logs but with progress
type Task struct {
	*Logger
	current int
	end     int
}

// Step prints progress
func (l *Task) Step(e string, s string) {
	l.current++
	text := gchalk.Cyan(fmt.Sprintf(
		"[%d / %d] %s%s",
		l.current,
		l.end,
		l.sprintEmoji(e),
		s,
	))

	// we don't use l.println here, because step headlines should have no indentation
	fmt.Fprintln(l.Out, text)
}

// Current returns the number of steps printed so far
func (l *Task) Current() int {
	return l.current
}

type lineWriter struct {
	l   *Logger
	buf []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := strings.IndexByte(string(w.buf), '\n')
		if i < 0 {
			break
		}
		w.l.println(strings.TrimRight(string(w.buf[:i]), "\r"))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}
