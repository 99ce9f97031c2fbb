package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination_Defaults(t *testing.T) {
	p := ParsePagination("", "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset())
}

func TestParsePagination_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		pageStr   string
		limitStr  string
		wantPage  int
		wantLimit int
	}{
		{"negative page", "-3", "10", 1, 10},
		{"zero limit", "2", "0", 2, 10},
		{"non-numeric", "abc", "xyz", 1, 10},
		{"limit above cap", "1", "1000", 1, 100},
		{"valid", "3", "25", 3, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(tt.pageStr, tt.limitStr)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	p := Pagination{Page: 3, Limit: 25}
	assert.Equal(t, 50, p.Offset())
}

func TestNewMeta_TotalPages(t *testing.T) {
	tests := []struct {
		total      int
		limit      int
		totalPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 25, 4},
	}
	for _, tt := range tests {
		meta := NewMeta(Pagination{Page: 1, Limit: tt.limit}, tt.total)
		assert.Equal(t, tt.totalPages, meta.TotalPages, "total=%d limit=%d", tt.total, tt.limit)
		assert.Equal(t, tt.total, meta.Total)
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus("APPROVED"))
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
}
