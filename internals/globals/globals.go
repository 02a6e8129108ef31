package globals

import (
	"os"
	"path/filepath"

	"github.com/dvub/npcli/internals/cmdlog"
)

// AppName is used for the config directory and env prefix
const AppName = "npcli"

var (
	Logger = cmdlog.New()
)

// ConfigDir returns the directory the global config lives in
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// ConfigFile returns the path of the global config file
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
