package repository

import (
	"testing"
	"time"

	"github.com/shenikar/safety_map/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildSignalFilter(t *testing.T) {
	since := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    models.SignalFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "since_only",
			filter:    models.SignalFilter{},
			wantWhere: "created_at >= $1",
			wantArgs:  []any{since},
		},
		{
			name:      "area",
			filter:    models.SignalFilter{Area: "Gulshan"},
			wantWhere: "created_at >= $1 AND area = $2",
			wantArgs:  []any{since, "Gulshan"},
		},
		{
			name: "box",
			filter: models.SignalFilter{Box: &models.BoundingBox{
				MinLat: 23.7, MaxLat: 23.706, MinLng: 90.4, MaxLng: 90.406,
			}},
			wantWhere: "created_at >= $1 AND lat BETWEEN $2 AND $3 AND lng BETWEEN $4 AND $5",
			wantArgs:  []any{since, 23.7, 23.706, 90.4, 90.406},
		},
		{
			name: "area_and_box",
			filter: models.SignalFilter{Area: "Mirpur", Box: &models.BoundingBox{
				MinLat: 1, MaxLat: 2, MinLng: 3, MaxLng: 4,
			}},
			wantWhere: "created_at >= $1 AND area = $2 AND lat BETWEEN $3 AND $4 AND lng BETWEEN $5 AND $6",
			wantArgs:  []any{since, "Mirpur", 1.0, 2.0, 3.0, 4.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildSignalFilter(tt.filter, since)

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
