package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{"defaults", 0, 0, 0, 12},
		{"first page", 1, 10, 0, 10},
		{"second page", 2, 10, 10, 10},
		{"negative page", -3, 5, 0, 5},
		{"oversized page size", 1, 500, 0, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := Paginate(tt.page, tt.size)
			require.Equal(t, tt.offset, offset)
			require.Equal(t, tt.limit, limit)
		})
	}
}
