package variants

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/arthur-debert/wordstorm/pkg/mutators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() *Rules {
	return &Rules{
		Vocabulary:      []string{"Nepal", "School", "Kathmandu"},
		Symbols:         []rune("!@"),
		NumericSuffixes: []string{"1", "2", "2021"},
		SpecialSuffixes: []string{"2023", "Nepal"},
		Substitutions: mutators.Substitutions{
			'a': '@', 'A': '@', 'o': '0', 'O': '0', 'e': '3', 'E': '3',
		},
		WeakBases: []string{"School", "Nepal"},
		WeakRoots: []string{"password", "12345678"},
	}
}

func testGenerator(rules *Rules) *Generator {
	mut := mutators.New(rand.New(rand.NewPCG(7, 11)), rules.Symbols)
	return New(rules, mut)
}

func TestNumeric(t *testing.T) {
	rules := testRules()
	g := testGenerator(rules)

	got := slices.Collect(g.Numeric("Nepal"))
	require.Len(t, got, len(rules.NumericSuffixes)*NumericFormsPerSuffix)

	t.Run("first_item_is_plain_concatenation", func(t *testing.T) {
		assert.Equal(t, "Nepal1", got[0])
	})

	t.Run("per_suffix_form_order", func(t *testing.T) {
		for i, suffix := range rules.NumericSuffixes {
			group := got[i*NumericFormsPerSuffix : (i+1)*NumericFormsPerSuffix]
			base := "Nepal" + suffix

			assert.Equal(t, base, group[0])
			assert.Equal(t, strings.ToLower(base), group[1])
			assert.Equal(t, strings.ToUpper(base), group[2])
			assert.Equal(t, mutators.Leet(base, rules.Substitutions), group[3])
			assert.True(t, strings.EqualFold(base, group[4]), "case mix %q", group[4])

			assert.Equal(t, utf8.RuneCountInString(base)+1, utf8.RuneCountInString(group[5]))
			assert.Equal(t, utf8.RuneCountInString(base)+1, utf8.RuneCountInString(group[6]))
			assert.True(t, strings.EqualFold(base, stripSymbols(group[6], rules.Symbols)),
				"symbol insert of case mix %q", group[6])
		}
	})
}

func TestSymbol(t *testing.T) {
	g := testGenerator(testRules())

	got := slices.Collect(g.Symbol("Nepal"))
	assert.Equal(t, []string{
		"Nepal!", "!Nepal", "Ne!pal",
		"Nepal@", "@Nepal", "Ne@pal",
	}, got)

	t.Run("even_length_midpoint", func(t *testing.T) {
		got := slices.Collect(g.Symbol("School"))
		assert.Equal(t, "Sch!ool", got[2])
	})

	t.Run("midpoint_counts_runes", func(t *testing.T) {
		got := slices.Collect(g.Symbol("Pokhará"))
		assert.Equal(t, "Pok!hará", got[2])
	})

	t.Run("single_rune_word", func(t *testing.T) {
		got := slices.Collect(g.Symbol("A"))
		assert.Equal(t, []string{"A!", "!A", "!A", "A@", "@A", "@A"}, got)
	})
}

func TestSpecialYear(t *testing.T) {
	g := testGenerator(testRules())

	got := slices.Collect(g.SpecialYear("School"))
	assert.Equal(t, []string{
		"School!2023", "School2023!",
		"School!Nepal", "SchoolNepal!",
		"School@2023", "School2023@",
		"School@Nepal", "SchoolNepal@",
	}, got)
}

func TestPairCombos(t *testing.T) {
	t.Run("ordered_pairs_without_self", func(t *testing.T) {
		g := testGenerator(testRules())
		got := slices.Collect(g.PairCombos())

		assert.Equal(t, []string{
			"NepalSchool", "NepalKathmandu",
			"SchoolNepal", "SchoolKathmandu",
			"KathmanduNepal", "KathmanduSchool",
		}, got)
	})

	t.Run("v_times_v_minus_one", func(t *testing.T) {
		rules := testRules()
		rules.Vocabulary = []string{"A", "B", "C", "D", "E"}
		got := slices.Collect(testGenerator(rules).PairCombos())
		assert.Len(t, got, 5*4)
		for _, combo := range got {
			assert.NotEqual(t, combo[:1], combo[1:], "self pair %q", combo)
		}
	})

	t.Run("duplicate_entries_are_skipped_against_each_other", func(t *testing.T) {
		rules := testRules()
		rules.Vocabulary = []string{"A", "A", "B"}
		got := slices.Collect(testGenerator(rules).PairCombos())
		assert.Equal(t, []string{"AB", "AB", "BA", "BA"}, got)
	})
}

func TestPaired(t *testing.T) {
	rules := testRules()
	g := testGenerator(rules)

	got := slices.Collect(g.Paired())
	v := len(rules.Vocabulary)
	perCombo := 4 + 2*len(rules.NumericSuffixes)
	require.Len(t, got, v*(v-1)*perCombo)

	first := got[:perCombo]
	assert.Equal(t, "NepalSchool", first[0])
	assert.Equal(t, len("NepalSchool")+1, len(first[1]))
	assert.True(t, strings.EqualFold("NepalSchool", first[2]))
	assert.Equal(t, "N3p@lSch00l", first[3])
	assert.Equal(t, "NepalSchool1", first[4])
	assert.Equal(t, len("NepalSchool1")+1, len(first[5]))
	assert.Equal(t, "NepalSchool2", first[6])
	assert.Equal(t, "NepalSchool2021", first[8])

	assert.Equal(t, "NepalKathmandu", got[perCombo])
}

func TestCommonWeak(t *testing.T) {
	g := testGenerator(testRules())

	got := slices.Collect(g.CommonWeak())
	require.Len(t, got, 2*2*3)

	assert.Equal(t, "Schoolpassword", got[0])
	assert.Equal(t, "passwordSchool", got[1])
	assert.Equal(t, "Schoolpassword", stripSymbols(got[2], []rune("!@")))
	assert.Equal(t, "School12345678", got[3])
	assert.Equal(t, "Nepalpassword", got[6])
}

func TestEarlyStop(t *testing.T) {
	g := testGenerator(testRules())

	var got []string
	for candidate := range g.Paired() {
		got = append(got, candidate)
		if len(got) == 3 {
			break
		}
	}
	assert.Len(t, got, 3)
}

func TestRerunDrawsFreshRandomness(t *testing.T) {
	rules := testRules()
	rules.Vocabulary = []string{"LearningCenter", "ModernSchool"}
	g := testGenerator(rules)

	first := slices.Collect(g.Paired())
	second := slices.Collect(g.Paired())

	require.Equal(t, len(first), len(second))
	assert.Equal(t, first[0], second[0])
	assert.NotEqual(t, first, second)
}

func TestNumericRange(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, NumericRange(1, 3))
	assert.Equal(t, []string{"1990"}, NumericRange(1990, 1990))
	assert.Empty(t, NumericRange(5, 4))
	assert.Len(t, NumericRange(1, 999), 999)
}

func stripSymbols(s string, symbols []rune) string {
	return strings.Map(func(r rune) rune {
		if slices.Contains(symbols, r) {
			return -1
		}
		return r
	}, s)
}
