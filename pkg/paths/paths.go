package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/wordstorm/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for wordstorm
	EnvConfigDir = "WORDSTORM_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for wordstorm
	EnvStateDir = "WORDSTORM_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for wordstorm-specific files
	AppDirName = "wordstorm"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "wordstorm.toml"

	// LogFileName is the name of the log file
	LogFileName = "wordstorm.log"

	// StdoutPath selects standard output instead of a file
	StdoutPath = "-"
)

// Paths provides centralized path management for wordstorm
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	LogFilePath() string
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance, respecting the environment overrides.
func New() Paths {
	p := &paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.xdgConfig = ExpandHome(dir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.xdgState = ExpandHome(dir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// ConfigDir returns the XDG config directory for wordstorm
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for wordstorm
func (p *paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the default user configuration file location
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// IsStdout reports whether path selects standard output.
func IsStdout(path string) bool {
	return path == StdoutPath
}

// ResolveOutput expands ~ and makes the output path absolute. The stdout
// marker is returned unchanged.
func ResolveOutput(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "output path is empty")
	}
	if IsStdout(path) {
		return path, nil
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", path)
	}
	return abs, nil
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
