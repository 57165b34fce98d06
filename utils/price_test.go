package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$1,234.56", 1234.56, true},
		{"€999", 999.0, true},
		{"$1180", 1180.0, true},
		{"£12.50", 12.5, true},
		{" $ 75 ", 75.0, true},
		{"250", 250.0, true},
		{"garbage", 0.0, false},
		{"", 0.0, false},
		{"$", 0.0, false},
		{"-5", 0.0, false},
	}

	for _, tc := range cases {
		got, ok := ParsePrice(tc.in)
		assert.Equal(t, tc.ok, ok, "ParsePrice(%q) ok", tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, "ParsePrice(%q)", tc.in)
	}
}
