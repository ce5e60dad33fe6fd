package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/arthur-debert/wordstorm/pkg/logging"
	"github.com/arthur-debert/wordstorm/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: WORDSTORM_SUFFIXES__YEAR_TO=2035.
const EnvPrefix = "WORDSTORM_"

// LoadOptions selects the sources layered over the embedded defaults.
type LoadOptions struct {
	// File is an explicit config file; it must exist. When empty the
	// user config under the XDG config home is used if present.
	File string
	// Paths resolves the default user config location.
	Paths paths.Paths
	// Overrides are flat dotted keys applied last, typically from flags.
	Overrides map[string]interface{}
	// SkipEnv ignores WORDSTORM_* variables.
	SkipEnv bool
}

// Load builds the configuration: embedded defaults, then the user file,
// then the environment, then overrides.
func Load(opts LoadOptions) (*Config, error) {
	k, err := NewKoanf(opts)
	if err != nil {
		return nil, err
	}
	return unmarshal(k)
}

// NewKoanf layers every source into a koanf instance without decoding it.
func NewKoanf(opts LoadOptions) (*koanf.Koanf, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config
	path, explicit := opts.File, opts.File != ""
	if !explicit && opts.Paths != nil {
		path = opts.Paths.ConfigFilePath()
	}
	if path != "" {
		path = paths.ExpandHome(path)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded config file")
		} else if explicit {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
				WithDetail("path", path)
		}
	}

	// 3. Load env vars
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Load overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	return k, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parserFor picks the koanf parser from the file extension; TOML unless
// the file is YAML.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps WORDSTORM_SUFFIXES__YEAR_TO to suffixes.year_to. Leet table
// keys keep their case, so WORDSTORM_LEET__A and WORDSTORM_LEET__a set
// different letters. Variables that configure paths rather than the run
// are skipped.
func envKey(s string) string {
	switch s {
	case paths.EnvConfigDir, paths.EnvStateDir:
		return ""
	}
	parts := strings.Split(strings.TrimPrefix(s, EnvPrefix), "__")
	for i, part := range parts {
		if i == len(parts)-1 && i > 0 && parts[0] == "leet" {
			break
		}
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
