package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 1, 15, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		aStart     time.Time
		aEnd       time.Time
		bStart     time.Time
		bEnd       time.Time
		overlapped bool
	}{
		{name: "partial overlap", aStart: at(10, 0), aEnd: at(11, 0), bStart: at(10, 30), bEnd: at(11, 30), overlapped: true},
		{name: "contained", aStart: at(10, 0), aEnd: at(12, 0), bStart: at(10, 30), bEnd: at(11, 0), overlapped: true},
		{name: "identical", aStart: at(10, 0), aEnd: at(11, 0), bStart: at(10, 0), bEnd: at(11, 0), overlapped: true},
		{name: "back to back after", aStart: at(10, 0), aEnd: at(11, 0), bStart: at(11, 0), bEnd: at(12, 0)},
		{name: "back to back before", aStart: at(10, 0), aEnd: at(11, 0), bStart: at(9, 0), bEnd: at(10, 0)},
		{name: "disjoint", aStart: at(8, 0), aEnd: at(9, 0), bStart: at(14, 0), bEnd: at(15, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlapped, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.overlapped, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestMondayOf(t *testing.T) {
	// 2024-01-17 среда
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), MondayOf(time.Date(2024, 1, 17, 13, 0, 0, 0, time.UTC)))
	// воскресенье относится к прошедшей неделе
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), MondayOf(time.Date(2024, 1, 21, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), MondayOf(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
}
