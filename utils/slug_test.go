package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Laptop Ultrabook X1", "laptop-ultrabook-x1"},
		{"Auriculares Bluetooth Z2 (Actualizado de B)", "auriculares-bluetooth-z2-actualizado-de-b"},
		{"Café con Leche", "cafe-con-leche"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER---lower", "upper-lower"},
		{"ñandú über ÇA", "nandu-uber-ca"},
		{"100% cotton!", "100-cotton"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyCharset(t *testing.T) {
	inputs := []string{
		"Teclado Mecánico RGB", "€499 4K TV", "a\tb\nc", "ärger & FREUDE",
	}
	for _, in := range inputs {
		slug := Slugify(in)
		assert.False(t, strings.HasPrefix(slug, "-"), "leading hyphen in %q", slug)
		assert.False(t, strings.HasSuffix(slug, "-"), "trailing hyphen in %q", slug)
		assert.NotContains(t, slug, "--")
		for _, r := range slug {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, ok, "unexpected rune %q in slug %q", r, slug)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Monitor Curvo Pro", "Smartwatch Pro S", "Ütopía 2000", "-- odd -- input --",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}
