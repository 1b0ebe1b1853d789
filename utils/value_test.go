package utils

import (
	"capsim/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{" 1000 ", 1000},
		{"8.854e-12", 8.854e-12},
		{"-2.5", -2.5},
		{"10k", 10e3},
		{"1meg", 1e6},
		{"4.7u", 4.7e-6},
		{"4.7µ", 4.7e-6},
		{"100n", 100e-9},
		{"22p", 22e-12},
		{"1.5e2m", 0.15},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9*abs(tt.want)+1e-30)
		})
	}
}

func TestParseValueInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "10x", "NaN", "Inf", "1..2", "10M", "2.2M"} {
		_, err := ParseValue(in)
		require.ErrorIs(t, err, types.ErrInvalidParameter, "输入 %q", in)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
