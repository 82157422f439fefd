package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for lexhour, stored in
// ~/.lexhour/config.json. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	// DataDir is the directory holding the CSV datasets (clients,
	// matters, time entries, client credentials).
	DataDir string `json:"data_dir"`
	// ExportDir is where on-demand CSV exports are written.
	ExportDir string `json:"export_dir"`
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON
// parsing, allowing human-readable documentation inside the file.
const configTemplate = `// lexhour configuration – ~/.lexhour/config.json
//
// All settings are optional; the built-in defaults shown below work out
// of the box. Edit this file to customise lexhour behaviour.
{
  // Directory holding the CSV datasets (clients, matters, time entries,
  // client portal credentials). Defaults to ~/.lexhour/data.
  "data_dir": "",

  // Directory where report and portal exports are written.
  // Defaults to the current working directory.
  "export_dir": "."
}
`

// BaseDir returns the root lexhour directory (~/.lexhour).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".lexhour"), nil
}

func configFilePath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.json"), nil
}

// defaultConfig returns a Config pre-filled with built-in defaults.
// DataDir stays empty here; Load resolves it against the home directory.
func defaultConfig() Config {
	return Config{ExportDir: "."}
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled; inline comments
// are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.lexhour/config.json, creating it with annotated defaults
// on first run. Zero-value fields are filled with built-in defaults so
// callers always get a usable Config.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		cleaned := stripLineComments(data)
		if err := json.Unmarshal(cleaned, &cfg); err != nil {
			return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	if cfg.DataDir == "" {
		base, err := BaseDir()
		if err != nil {
			return cfg, err
		}
		cfg.DataDir = filepath.Join(base, "data")
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
