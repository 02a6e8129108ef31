package utils

import (
	"os"

	"github.com/dustin/go-humanize"
)

// HumanFileSize returns the size of the file at path in a human readable format
// like "12 kB". Files that can not be read are reported as "?".
func HumanFileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "?"
	}
	return humanize.Bytes(uint64(info.Size()))
}
