package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSenior(t *testing.T) {
	tests := []struct {
		name     string
		compName string
		category string
		want     bool
	}{
		{"world championships", "World Aquatics Championships - Singapore 2025", "", true},
		{"junior worlds excluded", "Junior World Championships", "", false},
		{"case insensitive", "JUNIOR Open Water Cup", "", false},
		{"masters excluded", "World Masters Championships", "", false},
		{"youth excluded", "European Youth Festival", "", false},
		{"u20 excluded", "Mediterranean U20 Cup", "", false},
		{"age group excluded", "National Age Group Meet", "", false},
		{"keyword in category only", "Spring Open", "Age-Group", false},
		{"world cup leg", "Open Water World Cup - Leg 3", "", true},
		{"empty everything", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSenior(tt.compName, tt.category))
		})
	}
}
