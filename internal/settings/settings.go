// Package settings persists the external editor command template.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	dirMode  = 0o755
	fileMode = 0o644

	// EnvConfig overrides the default settings file location.
	EnvConfig = "FENCEDIT_CONFIG"
)

// Settings holds user configuration values.
type Settings struct {
	// Command is the editor command template: program followed by its
	// arguments. The file path is appended when the editor is launched.
	Command []string `yaml:"command"`
	// Attach runs the editor in the caller's terminal instead of detached.
	Attach bool `yaml:"attach"`
}

// DefaultCommand opens vi inside a new terminal window.
func DefaultCommand() []string {
	return []string{"alacritty", "-e", "sh", "-c", "vi"}
}

// Default returns Settings with the default command.
func Default() *Settings {
	return &Settings{Command: DefaultCommand()}
}

// Path returns the settings file location: $FENCEDIT_CONFIG when set,
// otherwise fencedit/settings.yaml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); len(p) != 0 {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "fencedit", "settings.yaml"), nil
}

// Load reads settings from path. A missing file yields the defaults, and so
// does an empty command in an existing file.
func Load(path string) (*Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}

		return nil, err
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if len(s.Command) == 0 {
		s.Command = DefaultCommand()
	}

	return s, nil
}

// Save writes settings to path, creating the parent directory if needed.
func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return err
	}

	return os.WriteFile(path, data, fileMode)
}

// ErrEmptyCommand is returned by [ParseCommand] for an empty list.
var ErrEmptyCommand = errors.New("command must name a program")

// ParseCommand decodes a command template given as a JSON list of strings,
// e.g. ["code", "--wait"].
func ParseCommand(text string) ([]string, error) {
	var cmd []string

	if err := json.Unmarshal([]byte(text), &cmd); err != nil {
		return nil, fmt.Errorf("invalid command %q: %w", text, err)
	}

	if len(cmd) == 0 || len(cmd[0]) == 0 {
		return nil, ErrEmptyCommand
	}

	return cmd, nil
}

// FormatCommand encodes a command template the way [ParseCommand] reads it.
func FormatCommand(cmd []string) string {
	data, _ := json.Marshal(cmd) //nolint:errchkjson

	return string(data)
}
