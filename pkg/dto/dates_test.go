package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApiDateUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "plain date",
			input:    `"2024-03-05"`,
			expected: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "date with time",
			input:    `"2024-03-05T10:20:30"`,
			expected: time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "date with millis",
			input:    `"2024-03-05T10:20:30.123"`,
			expected: time.Date(2024, 3, 5, 10, 20, 30, 123000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d ApiDate
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.False(t, d.Fallback)
			assert.True(t, tt.expected.Equal(d.Time), "got %v", d.Time)
		})
	}
}

func TestApiDateUnmarshalFallback(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	defer func() { now = orig }()

	for _, input := range []string{`"not-a-date"`, `"05/03/2024"`, `12345`, `""`} {
		var d ApiDate
		require.NoError(t, json.Unmarshal([]byte(input), &d), "input %s", input)
		assert.True(t, d.Fallback, "input %s", input)
		assert.True(t, fixed.Equal(d.Time), "input %s", input)
	}
}

func TestApiDateMarshal(t *testing.T) {
	d := NewApiDate(time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(out))
}

func TestApiDateRoundTripInsideStruct(t *testing.T) {
	raw := `{"id":1,"name":"Laptop","price":1200,"purchaseDate":"2024-01-10","expirationDate":"2026-01-10T00:00:00","icon":"laptop","isExpired":false,"daysRemaining":300,"createdAt":"2024-01-10T08:30:00.500"}`
	var w WarrantyRead
	require.NoError(t, json.Unmarshal([]byte(raw), &w))
	assert.Equal(t, 2024, w.PurchaseDate.Year())
	assert.Equal(t, 2026, w.ExpirationDate.Year())
	assert.False(t, w.CreatedAt.Fallback)
}
