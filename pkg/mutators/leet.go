package mutators

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/wordstorm/pkg/errors"
)

// Substitutions maps a letter to its leet-speak replacement.
type Substitutions map[rune]rune

// ParseSubstitutions converts a string keyed table, as read from
// configuration, into Substitutions. Keys and values must be single runes.
func ParseSubstitutions(table map[string]string) (Substitutions, error) {
	subs := make(Substitutions, len(table))

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := table[k]
		if utf8.RuneCountInString(k) != 1 {
			return nil, errors.Newf(errors.ErrConfigValid, "leet key %q must be a single character", k)
		}
		if utf8.RuneCountInString(v) != 1 {
			return nil, errors.Newf(errors.ErrConfigValid, "leet value %q for %q must be a single character", v, k)
		}
		from, _ := utf8.DecodeRuneInString(k)
		to, _ := utf8.DecodeRuneInString(v)
		subs[from] = to
	}
	return subs, nil
}

// Strings returns the table in the string keyed form used by configuration.
func (s Substitutions) Strings() map[string]string {
	out := make(map[string]string, len(s))
	for k, v := range s {
		out[string(k)] = string(v)
	}
	return out
}

// Leet replaces every rune found in subs. Replacement runes are not looked
// up again.
func Leet(text string, subs Substitutions) string {
	return strings.Map(func(r rune) rune {
		if to, ok := subs[r]; ok {
			return to
		}
		return r
	}, text)
}
