package cmdlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func quietLogger(buf *bytes.Buffer) *Logger {
	DisableColor()
	return &Logger{Out: buf}
}

func TestTask_Step(t *testing.T) {
	var buf bytes.Buffer
	task := quietLogger(&buf).NewTask(3)

	task.Step("📦", "Creating crate")
	task.Info("detail")
	task.Step("🔧", "Patching Cargo.toml")

	assert.Equal(t, "[1 / 3] Creating crate\n  detail\n[2 / 3] Patching Cargo.toml\n", buf.String())
	assert.Equal(t, 2, task.Current())
}

func TestLogger_Lines(t *testing.T) {
	var buf bytes.Buffer
	l := quietLogger(&buf)

	l.Headline("create-nih-plug-project")
	l.Warn("old cargo")
	l.Error("boom")

	assert.Equal(t, "create-nih-plug-project\nold cargo\nError: boom\n", buf.String())
}

func TestLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	l := quietLogger(&buf)
	l.indention = 2

	w := l.Writer()
	w.Write([]byte("Compiling gain\r\nFinis"))
	w.Write([]byte("hed\n"))

	assert.Equal(t, "  Compiling gain\n  Finished\n", buf.String())
}
