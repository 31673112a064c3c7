package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		perPage       int
		total         int
		expectedPages int
	}{
		{
			name:          "partial last page rounds up",
			page:          1,
			perPage:       100,
			total:         250,
			expectedPages: 3,
		},
		{
			name:          "exact multiple",
			page:          2,
			perPage:       100,
			total:         200,
			expectedPages: 2,
		},
		{
			name:          "single item",
			page:          1,
			perPage:       100,
			total:         1,
			expectedPages: 1,
		},
		{
			name:          "empty",
			page:          1,
			perPage:       100,
			total:         0,
			expectedPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.perPage, tt.total)

			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.expectedPages, p.TotalPages)
			assert.Equal(t, tt.total, p.TotalItems)
			assert.Equal(t, tt.perPage, p.ItemsPerPage)
		})
	}
}
