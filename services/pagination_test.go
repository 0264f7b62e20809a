package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNext(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		skip     int64
		returned int
		want     bool
	}{
		{"first of two pages", 10, 0, 5, true},
		{"exact single page", 10, 0, 10, false},
		{"empty page past the end", 10, 10, 0, false},
		{"second page exhausts", 10, 5, 5, false},
		{"no items at all", 0, 0, 0, false},
		{"partial last page pending", 11, 0, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNext(tt.total, tt.skip, tt.returned))
		})
	}
}

func TestIsNextAggregate(t *testing.T) {
	assert.True(t, IsNextAggregate(10, 1, 5))
	assert.False(t, IsNextAggregate(10, 1, 10))
	assert.False(t, IsNextAggregate(10, 2, 5))
	// The quirk: a short last page combined with the page multiplier
	// claims more pages even when none remain.
	assert.True(t, IsNextAggregate(11, 2, 1))
}
