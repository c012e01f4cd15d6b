package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

func mustRule(t *testing.T, text string, endDate time.Time) domain.RecurrenceRule {
	t.Helper()
	rule, err := domain.ParseRule(text)
	require.NoError(t, err)
	rule.EndDate = endDate
	return rule
}

func TestExpand_OneOccurrencePerWeek(t *testing.T) {
	rule := mustRule(t, "Every Wednesday, 10:00-11:00", at(2024, 12, 31, 0, 0))

	occurrences := Expand(rule, at(2024, 1, 15, 0, 0), at(2024, 1, 21, 0, 0))

	require.Len(t, occurrences, 1)
	assert.Equal(t, at(2024, 1, 17, 0, 0), occurrences[0].Date)
	assert.Equal(t, at(2024, 1, 17, 10, 0), occurrences[0].Start)
	assert.Equal(t, at(2024, 1, 17, 11, 0), occurrences[0].End)
}

func TestExpand_EndDateBeforeWindow(t *testing.T) {
	rule := mustRule(t, "Every Wednesday, 10:00-11:00", at(2024, 1, 10, 0, 0))

	occurrences := Expand(rule, at(2024, 1, 15, 0, 0), at(2024, 1, 21, 0, 0))

	assert.Empty(t, occurrences)
}

func TestExpand_WindowStartNormalizedToMonday(t *testing.T) {
	rule := mustRule(t, "Every Tuesday, 08:00-09:00", at(2024, 12, 31, 0, 0))

	// окно начинается в четверг, но вторник той же недели входит
	occurrences := Expand(rule, at(2024, 1, 18, 15, 0), at(2024, 1, 28, 0, 0))

	require.Len(t, occurrences, 2)
	assert.Equal(t, at(2024, 1, 16, 0, 0), occurrences[0].Date)
	assert.Equal(t, at(2024, 1, 23, 0, 0), occurrences[1].Date)
}

func TestExpand_EndDateInclusive(t *testing.T) {
	rule := mustRule(t, "Every Wednesday, 10:00-11:00", at(2024, 1, 17, 0, 0))

	occurrences := Expand(rule, at(2024, 1, 15, 0, 0), at(2024, 1, 31, 0, 0))

	require.Len(t, occurrences, 1)
	assert.Equal(t, at(2024, 1, 17, 0, 0), occurrences[0].Date)
}

func TestExpand_MidnightEnd(t *testing.T) {
	rule := mustRule(t, "Every Friday, 22:00-00:00", at(2024, 12, 31, 0, 0))

	occurrences := Expand(rule, at(2024, 1, 15, 0, 0), at(2024, 1, 21, 0, 0))

	require.Len(t, occurrences, 1)
	assert.Equal(t, at(2024, 1, 19, 22, 0), occurrences[0].Start)
	assert.Equal(t, at(2024, 1, 20, 0, 0), occurrences[0].End)
}

func TestExpand_OrderedAndFinite(t *testing.T) {
	rule := mustRule(t, "Every Monday, 07:00-08:00", at(2024, 3, 31, 0, 0))

	occurrences := Expand(rule, at(2024, 1, 1, 0, 0), at(2025, 1, 1, 0, 0))

	require.NotEmpty(t, occurrences)
	for i := 1; i < len(occurrences); i++ {
		assert.True(t, occurrences[i-1].Start.Before(occurrences[i].Start))
	}
	assert.False(t, occurrences[len(occurrences)-1].Date.After(at(2024, 3, 31, 0, 0)))
}
