// File: /models/types_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnlyAcceptedLayouts(t *testing.T) {
	for _, input := range []string{"2025-10-03", "2025/10/03", "03/10/2025"} {
		d, err := ParseDateOnly(input)
		require.NoError(t, err, input)
		assert.Equal(t, "2025-10-03", d.String(), input)
	}

	_, err := ParseDateOnly("next friday")
	assert.Error(t, err)
}

func TestParseTimeOnlyAcceptedLayouts(t *testing.T) {
	for input, want := range map[string]string{
		"18:30":    "18:30:00",
		"18:30:15": "18:30:15",
		"6:30 PM":  "18:30:00",
	} {
		tm, err := ParseTimeOnly(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, tm.String(), input)
	}

	_, err := ParseTimeOnly("half past six")
	assert.Error(t, err)
}

func TestDateOnlyScanKeepsDatePart(t *testing.T) {
	var d DateOnly
	require.NoError(t, d.Scan("2025-10-03 00:00:00"))
	assert.Equal(t, "2025-10-03", d.String())

	require.NoError(t, d.Scan([]byte("2024-01-15")))
	assert.Equal(t, "2024-01-15", d.String())
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, NormalizeStatus("CONFIRMED"))
	assert.Equal(t, StatusPending, NormalizeStatus("archived"))
	assert.Equal(t, StatusPending, NormalizeStatus(""))
	assert.Equal(t, StatusCancelled, NormalizeStatus(" cancelled "))
}

func TestIsValidStatusIsStrict(t *testing.T) {
	for _, s := range EventStatuses {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus("Pending"), "the direct update path is case-sensitive")
	assert.False(t, IsValidStatus(""))
}
