package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"10", 10, false},
		{" 10.5 ", 10.5, false},
		{"1,250,000", 1250000, false},
		{"-5", -5, false},
		{"0", 0, false},
		{"", 0, true},
		{"-", 0, true},
		{"n/a", 0, true},
	}

	for _, tt := range tests {
		got, err := parseNumber(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"2020-01-02",
		"01/02/2020",
		"01-02-20",
		"02 Jan 2020",
		"Jan 02, 2020",
	} {
		got, err := parseDate(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseDateSerial(t *testing.T) {
	// 43831 is 2020-01-01 in the 1900 date system.
	got, err := parseDate("43831")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "not a date", "??"} {
		_, err := parseDate(input)
		assert.Error(t, err, "input %q", input)
		assert.Nil(t, coerceDate(input), "input %q", input)
	}
}

func TestIsGhostColumn(t *testing.T) {
	assert.True(t, isGhostColumn(""))
	assert.True(t, isGhostColumn("   "))
	assert.True(t, isGhostColumn("Unnamed: 7"))
	assert.False(t, isGhostColumn("Name"))
	assert.False(t, isGhostColumn("Issue Date"))
}

func TestGetColumnName(t *testing.T) {
	assert.Equal(t, "A", getColumnName(0))
	assert.Equal(t, "J", getColumnName(9))
	assert.Equal(t, "AA", getColumnName(26))
}
