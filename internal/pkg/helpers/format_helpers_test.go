package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "zero", value: 0, want: "R$ 0,00"},
		{name: "cents only", value: 0.5, want: "R$ 0,50"},
		{name: "no grouping", value: 987.65, want: "R$ 987,65"},
		{name: "thousands", value: 4821.37, want: "R$ 4.821,37"},
		{name: "millions", value: 1234567.89, want: "R$ 1.234.567,89"},
		{name: "rounds half up", value: 1999.995, want: "R$ 2.000,00"},
		{name: "negative", value: -1500.25, want: "-R$ 1.500,25"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FormatBRL(tc.value))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	require.Equal(t, "10.6%", FormatPercent(10.625))
	require.Equal(t, "0.0%", FormatPercent(0))
	require.Equal(t, "100.0%", FormatPercent(100))
}
