package config

import (
	stderrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// configValidate is the validator instance for Config, with the
// singlechar rule registered.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("singlechar", validateSingleChar)
}

func validateSingleChar(fl validator.FieldLevel) bool {
	return utf8.RuneCountInString(fl.Field().String()) == 1
}

// Validate checks field constraints and the cross-field rules.
func Validate(cfg *Config) error {
	if err := configValidate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return errors.New(errors.ErrConfigValid, "invalid configuration: "+strings.Join(msgs, "; ")).
				WithDetail("fields", len(fieldErrs))
		}
		return errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}

	s := cfg.Suffixes
	if len(s.Numeric) == 0 {
		if s.CounterTo < s.CounterFrom {
			return errors.Newf(errors.ErrConfigValid, "suffixes.counter_to (%d) is below counter_from (%d)", s.CounterTo, s.CounterFrom)
		}
		if s.YearTo < s.YearFrom {
			return errors.Newf(errors.ErrConfigValid, "suffixes.year_to (%d) is below year_from (%d)", s.YearTo, s.YearFrom)
		}
	}

	return nil
}
