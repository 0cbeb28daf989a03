// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Luxury Apartment", "luxury-apartment"},
		{"special characters stripped", "2BR @ Zed Towers!", "2br-zed-towers"},
		{"whitespace runs collapse", "Garden   View \t Duplex", "garden-view-duplex"},
		{"hyphens kept and deduped", "Semi--Finished - Unit", "semi-finished-unit"},
		{"leading and trailing trimmed", "  ***Penthouse***  ", "penthouse"},
		{"already a slug", "palm-hills-october", "palm-hills-october"},
		{"empty", "", ""},
		{"only specials", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.input))
		})
	}
}
