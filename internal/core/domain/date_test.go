package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2024-07-01", "2024-07-01", 1},
		{"2024-07-01", "2024-07-10", 10},
		{"2024-02-28", "2024-03-01", 3},
		{"2024-12-31", "2025-01-01", 2},
	}
	for _, tt := range tests {
		got := InclusiveDays(MustParseDate(tt.start), MustParseDate(tt.end))
		assert.Equal(t, tt.want, got, "%s..%s", tt.start, tt.end)
	}
}

func TestOverlaps(t *testing.T) {
	d := MustParseDate
	assert.True(t, Overlaps(d("2024-07-01"), d("2024-07-10"), d("2024-07-10"), d("2024-07-20")), "shared boundary day")
	assert.True(t, Overlaps(d("2024-07-01"), d("2024-07-31"), d("2024-07-05"), d("2024-07-06")), "contained")
	assert.False(t, Overlaps(d("2024-07-01"), d("2024-07-10"), d("2024-07-11"), d("2024-07-20")), "adjacent")
	assert.False(t, Overlaps(d("2024-07-11"), d("2024-07-20"), d("2024-07-01"), d("2024-07-10")), "adjacent reversed")
}

func TestDateJSON(t *testing.T) {
	var v struct {
		Start Date `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-07-01"}`), &v))
	assert.Equal(t, NewDate(2024, 7, 1), v.Start)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-07-01"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"07/01/2024"}`), &v))
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange(MustParseDate("2024-07-01"), MustParseDate("2024-07-01")))
	assert.ErrorIs(t, ValidateRange(MustParseDate("2024-07-02"), MustParseDate("2024-07-01")), ErrInvalidState)
	assert.ErrorIs(t, ValidateRange(Date{}, MustParseDate("2024-07-01")), ErrValidation)
}
