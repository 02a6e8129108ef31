package commands

import (
	"os"
	"runtime"
)

// EmojiEnabled is false when the terminal (probably) can not render emojis
// or when they were turned off with DisableEmoji
var EmojiEnabled = emojiTerminal()

// cmd.exe and powershell set SESSIONNAME, windows terminal does not
func emojiTerminal() bool {
	return runtime.GOOS != "windows" || os.Getenv("SESSIONNAME") == ""
}

// DisableEmoji strips emojis from error boxes
func DisableEmoji() {
	EmojiEnabled = false
}

// Emoji returns e if emojis are enabled, and "" otherwise
func Emoji(e string) string {
	if !EmojiEnabled {
		return ""
	}
	return e
}
