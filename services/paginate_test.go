package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		items     []int
		page      int
		wantLen   int
		wantFirst int
	}{
		{"first page", items, 1, 10, 0},
		{"middle page", items, 2, 10, 10},
		{"remainder page", items, 3, 5, 20},
		{"past the end", items, 4, 0, 0},
		{"far past the end", items, 1000, 0, 0},
		{"zero page", items, 0, 0, 0},
		{"negative page", items, -1, 0, 0},
		{"empty input", []int{}, 1, 0, 0},
		{"nil input", nil, 1, 0, 0},
		{"exact multiple", items[:20], 2, 10, 10},
		{"exact multiple overflow page", items[:20], 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.items, tt.page)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, got[0])
			}
		})
	}
}

func TestPaginate_HugePageDoesNotOverflow(t *testing.T) {
	assert.Empty(t, Paginate([]int{1, 2, 3}, int(^uint(0)>>1)))
}
