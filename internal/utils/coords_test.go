package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDMS(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"north latitude", "52°31′12″N", 52.31},
		{"east longitude", "13°24′18″E", 13.24},
		{"west longitude", "0°7′39″W", -0.74},
		{"south latitude", "33°52′4″S", -33.52},
		{"no seconds segment", "9°7′E", 9.7},
		{"decimal degrees passthrough", "39.2278", 39.23},
		{"whitespace around value", "  41°23′N ", 41.23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDMS(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDMSErrors(t *testing.T) {
	for _, raw := range []string{"", "   ", "not-a-coordinate", "N"} {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, err := ParseDMS(raw)
			require.Error(t, err)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 52.31, Round2(52.3112))
	assert.Equal(t, -0.07, Round2(-0.0739))
	assert.Equal(t, 2.35, Round2(2.345001))
	assert.Equal(t, 0.0, Round2(0))
}

func TestParsePopulation(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"3,850,809", 3_850_809},
		{"3,850,809(", 3_850_809},
		{"8 799 800", 8_799_800},
		{"420927[", 420_927},
		{"1620343.", 1_620_343},
	}

	for _, tt := range tests {
		got, err := ParsePopulation(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePopulation("unknown")
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
