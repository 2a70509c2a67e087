package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		size      int
		wantFrom  int
		wantLimit int
	}{
		{name: "first page", page: 1, size: 10, wantFrom: 0, wantLimit: 10},
		{name: "third page", page: 3, size: 20, wantFrom: 40, wantLimit: 20},
		{name: "zero page clamps to first", page: 0, size: 10, wantFrom: 0, wantLimit: 10},
		{name: "negative page clamps to first", page: -5, size: 10, wantFrom: 0, wantLimit: 10},
		{name: "zero size falls back to default", page: 2, size: 0, wantFrom: DefaultPageSize, wantLimit: DefaultPageSize},
		{name: "oversized page size falls back to default", page: 1, size: 500, wantFrom: 0, wantLimit: DefaultPageSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			from, limit := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
