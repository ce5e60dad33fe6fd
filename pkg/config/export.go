package config

import (
	"strings"

	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Marshal renders cfg in the given format. The output loads back through
// Load unchanged.
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatTOML, "":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as TOML")
		}
		return data, nil
	case FormatYAML, "yml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as YAML")
		}
		return data, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want toml or yaml)", format)
	}
}
