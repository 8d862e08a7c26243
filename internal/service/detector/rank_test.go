package detector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/exception"
)

func rankFixture(id string, sev exception.Severity, tags []exception.ImpactTag, repetition int, createdAt time.Time) exception.Exception {
	return exception.Exception{
		ID:              id,
		Type:            exception.TypeBehaviorDeviation,
		Severity:        sev,
		ImpactTags:      tags,
		RepetitionCount: repetition,
		CreatedAt:       createdAt,
	}
}

func ids(exceptions []exception.Exception) []string {
	out := make([]string, len(exceptions))
	for i, ex := range exceptions {
		out[i] = ex.ID
	}
	return out
}

func TestRank_SeverityDescending(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	ranked := Rank([]exception.Exception{
		rankFixture("low", exception.SeverityLow, []exception.ImpactTag{exception.ImpactCompliance}, 0, now),
		rankFixture("high", exception.SeverityHigh, []exception.ImpactTag{exception.ImpactPattern}, 0, now),
		rankFixture("med", exception.SeverityMed, []exception.ImpactTag{exception.ImpactCompliance}, 0, now),
	})

	assert.Equal(t, []string{"high", "med", "low"}, ids(ranked))
}

func TestRank_ImpactTagTieBreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	ranked := Rank([]exception.Exception{
		rankFixture("pattern", exception.SeverityMed, []exception.ImpactTag{exception.ImpactPattern}, 0, now),
		rankFixture("compliance", exception.SeverityMed, []exception.ImpactTag{exception.ImpactCompliance}, 0, now),
		rankFixture("coverage", exception.SeverityMed, []exception.ImpactTag{exception.ImpactCoverage}, 0, now),
		rankFixture("cost", exception.SeverityMed, []exception.ImpactTag{exception.ImpactCost}, 0, now),
	})

	assert.Equal(t, []string{"compliance", "cost", "coverage", "pattern"}, ids(ranked))
}

func TestRank_BestTagWins(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	// Tag order inside the exception does not matter; the best (highest
	// priority) tag decides.
	ranked := Rank([]exception.Exception{
		rankFixture("cost-only", exception.SeverityMed, []exception.ImpactTag{exception.ImpactCost}, 0, now),
		rankFixture("pattern-compliance", exception.SeverityMed, []exception.ImpactTag{exception.ImpactPattern, exception.ImpactCompliance}, 0, now),
	})

	assert.Equal(t, []string{"pattern-compliance", "cost-only"}, ids(ranked))
}

func TestRank_UntaggedSortsLast(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	ranked := Rank([]exception.Exception{
		rankFixture("untagged", exception.SeverityMed, nil, 5, now),
		rankFixture("pattern", exception.SeverityMed, []exception.ImpactTag{exception.ImpactPattern}, 0, now),
	})

	assert.Equal(t, []string{"pattern", "untagged"}, ids(ranked))
}

func TestRank_RepetitionThenRecency(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	tags := []exception.ImpactTag{exception.ImpactCompliance}

	ranked := Rank([]exception.Exception{
		rankFixture("older", exception.SeverityMed, tags, 1, now.Add(-time.Minute)),
		rankFixture("repeat", exception.SeverityMed, tags, 3, now.Add(-2*time.Minute)),
		rankFixture("newer", exception.SeverityMed, tags, 1, now),
	})

	assert.Equal(t, []string{"repeat", "newer", "older"}, ids(ranked))
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	input := []exception.Exception{
		rankFixture("low", exception.SeverityLow, nil, 0, now),
		rankFixture("high", exception.SeverityHigh, nil, 0, now),
	}

	ranked := Rank(input)

	require.Equal(t, "low", input[0].ID)
	require.Equal(t, "high", ranked[0].ID)
}

func TestRank_Deterministic(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	tags := []exception.ImpactTag{exception.ImpactCost}

	// True ties under all four keys keep their input order (stable sort),
	// so repeated runs agree.
	input := []exception.Exception{
		rankFixture("a", exception.SeverityMed, tags, 1, now),
		rankFixture("b", exception.SeverityMed, tags, 1, now),
	}

	first := Rank(input)
	second := Rank(input)

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, []string{"a", "b"}, ids(first))
}
