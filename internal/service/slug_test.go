package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation dropped", "Mi Empresa S.A.", "mi-empresa-sa"},
		{"accents and extra spaces", "  café   co  ", "cafe-co"},
		{"hyphen runs collapse", "Acme -- Widgets", "acme-widgets"},
		{"underscores", "data_works_ltd", "data-works-ltd"},
		{"digits kept", "Studio 54", "studio-54"},
		{"leading and trailing separators", "--Ñandú--", "nandu"},
		{"tabs and newlines", "north\twind\nco", "north-wind-co"},
		{"nothing usable", "¡¿!?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	assert.Equal(t, GenerateSlug("Mi Empresa S.A."), GenerateSlug("Mi Empresa S.A."))
}
