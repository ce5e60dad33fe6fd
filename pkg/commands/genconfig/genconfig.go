package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/wordstorm/pkg/config"
	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/arthur-debert/wordstorm/pkg/logging"
	"github.com/arthur-debert/wordstorm/pkg/paths"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Config, when set, is rendered in Format instead of the commented
	// defaults file.
	Config *config.Config
	Format string
	Write  bool
	// Path is where Write puts the file; defaults to the user config file.
	Path  string
	Paths paths.Paths
	// Force overwrites an existing file.
	Force bool
}

// GenConfigResult holds the rendered configuration and what was written
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
	FilesSkipped  []string
}

// GenConfig outputs or writes a configuration file
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.GetDefaultsContent()
	if opts.Config != nil {
		data, err := config.Marshal(opts.Config, opts.Format)
		if err != nil {
			return nil, err
		}
		content = string(data)
	}

	result := &GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	// If not writing, just return the content
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	targetPath := opts.Path
	if targetPath == "" {
		p := opts.Paths
		if p == nil {
			p = paths.New()
		}
		targetPath = p.ConfigFilePath()
	}
	targetPath = paths.ExpandHome(targetPath)
	logger.Info().Str("path", targetPath).Bool("force", opts.Force).Msg("Writing config file")

	if _, err := os.Stat(targetPath); err == nil && !opts.Force {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		result.FilesSkipped = append(result.FilesSkipped, targetPath)
		return result, nil
	}

	dir := filepath.Dir(targetPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}

	if err := os.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath).
			WithDetail("path", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
