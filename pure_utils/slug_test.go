package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Southside":                   "southside",
		"Starbucks @ Johnson Center":  "starbucks-johnson-center",
		"  Pilot   House  ":           "pilot-house",
		"Café Ô Château":              "cafe-o-chateau",
		"Jazzman's Café & Bakery":     "jazzmans-cafe-bakery",
		"Taco_Bell--Cantina":          "taco-bell-cantina",
		"":                            "",
		"Fenwick Library (2nd floor)": "fenwick-library-2nd-floor",
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, Slugify(input))
		})
	}
}
