package config

import (
	"github.com/arthur-debert/wordstorm/pkg/mutators"
	"github.com/arthur-debert/wordstorm/pkg/variants"
)

// Config is the effective configuration of a run.
type Config struct {
	Target     int64             `koanf:"target" toml:"target" yaml:"target" validate:"gt=0"`
	MinLength  int               `koanf:"min_length" toml:"min_length" yaml:"min_length" validate:"gt=0"`
	Output     string            `koanf:"output" toml:"output" yaml:"output" validate:"required"`
	Seed       uint64            `koanf:"seed" toml:"seed" yaml:"seed"`
	Vocabulary []string          `koanf:"vocabulary" toml:"vocabulary" yaml:"vocabulary" validate:"min=1,dive,required"`
	Symbols    string            `koanf:"symbols" toml:"symbols" yaml:"symbols"`
	Suffixes   Suffixes          `koanf:"suffixes" toml:"suffixes" yaml:"suffixes"`
	Leet       map[string]string `koanf:"leet" toml:"leet" yaml:"leet" validate:"dive,keys,singlechar,endkeys,singlechar"`
	Weak       Weak              `koanf:"weak" toml:"weak" yaml:"weak"`
}

// Suffixes configures the numeric and special suffix sets.
type Suffixes struct {
	// Numeric, when set, replaces the counter and year ranges.
	Numeric     []string `koanf:"numeric" toml:"numeric,omitempty" yaml:"numeric,omitempty" validate:"dive,required"`
	CounterFrom int      `koanf:"counter_from" toml:"counter_from" yaml:"counter_from" validate:"gte=0"`
	CounterTo   int      `koanf:"counter_to" toml:"counter_to" yaml:"counter_to" validate:"gte=0"`
	YearFrom    int      `koanf:"year_from" toml:"year_from" yaml:"year_from" validate:"gte=0"`
	YearTo      int      `koanf:"year_to" toml:"year_to" yaml:"year_to" validate:"gte=0"`
	Special     []string `koanf:"special" toml:"special" yaml:"special" validate:"dive,required"`
}

// Weak configures the weak-password pass.
type Weak struct {
	Bases []string `koanf:"bases" toml:"bases" yaml:"bases" validate:"dive,required"`
	Roots []string `koanf:"roots" toml:"roots" yaml:"roots" validate:"dive,required"`
}

// NumericSuffixes returns the explicit list when configured, otherwise the
// counter range followed by the year range.
func (s Suffixes) NumericSuffixes() []string {
	if len(s.Numeric) > 0 {
		return append([]string(nil), s.Numeric...)
	}
	out := variants.NumericRange(s.CounterFrom, s.CounterTo)
	return append(out, variants.NumericRange(s.YearFrom, s.YearTo)...)
}

// Rules converts the configuration into the static sets of a run.
func (c *Config) Rules() (*variants.Rules, error) {
	subs, err := mutators.ParseSubstitutions(c.Leet)
	if err != nil {
		return nil, err
	}

	return &variants.Rules{
		Vocabulary:      append([]string(nil), c.Vocabulary...),
		Symbols:         []rune(c.Symbols),
		NumericSuffixes: c.Suffixes.NumericSuffixes(),
		SpecialSuffixes: append([]string(nil), c.Suffixes.Special...),
		Substitutions:   subs,
		WeakBases:       append([]string(nil), c.Weak.Bases...),
		WeakRoots:       append([]string(nil), c.Weak.Roots...),
	}, nil
}
