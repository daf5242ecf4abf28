package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		minorUnits int64
		want       string
	}{
		{14990, "R$ 149,90"},
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{100, "R$ 1,00"},
		{19980, "R$ 199,80"},
		{9990, "R$ 99,90"},
		{123456789, "R$ 1234567,89"},
		{-2550, "R$ -25,50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.minorUnits), "FormatPrice(%d)", tt.minorUnits)
	}
}
