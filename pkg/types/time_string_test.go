package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "08:30"},
		{name: "midnight", input: "00:00"},
		{name: "no leading zero", input: "8:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	ts := TimeString("22:30")

	assert.Equal(t, 22*60+30, ts.Minutes())
	assert.Equal(t, 22, ts.Hour())
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.True(t, TimeString("00:00").IsMidnight())
	assert.False(t, ts.IsMidnight())
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	date := time.Date(2024, 1, 15, 17, 45, 0, 0, loc)

	got := TimeString("10:30").On(date)

	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, loc), got)
}
