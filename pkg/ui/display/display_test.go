package display

import (
	"testing"
	"time"

	"github.com/arthur-debert/wordstorm/pkg/commands/generate"
	"github.com/arthur-debert/wordstorm/pkg/commands/stats"
	"github.com/arthur-debert/wordstorm/pkg/sequencer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowValue(t *testing.T, s Summary, label string) Row {
	t.Helper()
	for _, r := range s.Rows {
		if r.Label == label {
			return r
		}
	}
	require.Failf(t, "row not found", "label %q", label)
	return Row{}
}

func TestGenerateSummary(t *testing.T) {
	t.Run("complete run", func(t *testing.T) {
		s := GenerateSummary(&generate.GenerateResult{
			Output:   "/tmp/list.txt",
			Seed:     42,
			Accepted: 1_500_000,
			Written:  1_500_000,
			Bytes:    15_000_000,
			Phase:    sequencer.PhasePaired,
			Duration: 1500 * time.Millisecond,
		})

		assert.Equal(t, "Successfully generated 1,500,000 passwords → /tmp/list.txt", s.Headline)
		assert.Equal(t, KindSuccess, s.Kind)
		assert.Equal(t, "15 MB", rowValue(t, s, "Size").Value)
		assert.Equal(t, "42", rowValue(t, s, "Seed").Value)
		assert.Equal(t, "paired", rowValue(t, s, "Last phase").Value)
		assert.Equal(t, "1.5s", rowValue(t, s, "Elapsed").Value)
		assert.Len(t, s.Rows, 6)
	})

	t.Run("stdout and exhausted", func(t *testing.T) {
		s := GenerateSummary(&generate.GenerateResult{Output: "-", Accepted: 36, Written: 36, Exhausted: true})

		assert.Contains(t, s.Headline, "→ stdout")
		assert.Equal(t, KindWarning, rowValue(t, s, "Note").Kind)
	})

	t.Run("failed write", func(t *testing.T) {
		s := GenerateSummary(&generate.GenerateResult{Output: "out.txt", Accepted: 1200, Written: 1000})

		assert.Equal(t, "Generated 1,000 of 1,200 passwords → out.txt", s.Headline)
		assert.Equal(t, KindWarning, s.Kind)
	})
}

func TestStatsSummary(t *testing.T) {
	result := &stats.StatsResult{
		Words:    2,
		Estimate: sequencer.Estimate{Single: 24, Paired: 12, Weak: 3},
		Target:   20_000_000,
	}

	s := StatsSummary(result)
	assert.Equal(t, "39 candidates before length filtering", s.Headline)
	assert.Equal(t, "12", rowValue(t, s, "Paired candidates").Value)
	assert.Equal(t, "20,000,000", rowValue(t, s, "Target").Value)
	assert.Equal(t, KindWarning, rowValue(t, s, "Target reached in").Kind)

	result.ReachPhase = sequencer.PhaseSingle
	s = StatsSummary(result)
	assert.Equal(t, "single phase", rowValue(t, s, "Target reached in").Value)
}
