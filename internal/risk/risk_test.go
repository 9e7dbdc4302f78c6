package risk

import (
	"math"
	"testing"

	"github.com/shenikar/safety_map/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestScore_Bounds(t *testing.T) {
	for reports := 0; reports <= 20; reports++ {
		for avg := 1.0; avg <= 5.0; avg += 0.25 {
			score, _ := Score(reports, avg)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, MaxScore)
		}
	}
}

func TestScore_Monotonic(t *testing.T) {
	for avg := 1.0; avg <= 5.0; avg += 0.5 {
		prev := -1
		for reports := 0; reports <= 15; reports++ {
			score, _ := Score(reports, avg)
			assert.GreaterOrEqual(t, score, prev, "reports=%d avg=%v", reports, avg)
			prev = score
		}
	}

	for reports := 0; reports <= 10; reports++ {
		prev := -1
		// оценка падает - риск не уменьшается
		for avg := 5.0; avg >= 1.0; avg -= 0.1 {
			score, _ := Score(reports, avg)
			assert.GreaterOrEqual(t, score, prev, "reports=%d avg=%v", reports, avg)
			prev = score
		}
	}
}

func TestLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, LevelLow},
		{39, LevelLow},
		{40, LevelModerate},
		{59, LevelModerate},
		{60, LevelHigh},
		{100, LevelHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.score), "score=%d", tt.score)
	}
}

func TestScore_KnownCases(t *testing.T) {
	tests := []struct {
		name      string
		reports   int
		avg       float64
		wantScore int
		wantLevel Level
	}{
		{"no data", 0, DefaultRating, 0, LevelLow},
		{"six reports", 6, 5, 60, LevelHigh},
		{"worst rating", 0, 1, 48, LevelModerate},
		{"capped", 12, 1, 100, LevelHigh},
		{"fractional rating", 1, 4.5, 16, LevelLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, level := Score(tt.reports, tt.avg)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantLevel, level)
		})
	}
}

func TestRoundRating(t *testing.T) {
	assert.InDelta(t, 3.67, RoundRating(11.0/3.0), 1e-9)
	assert.InDelta(t, 5.0, RoundRating(5), 1e-9)
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 1, ClampRating(0))
	assert.Equal(t, 1, ClampRating(-3))
	assert.Equal(t, 3, ClampRating(3))
	assert.Equal(t, 5, ClampRating(9))
}

func makeCoords(n int) []geom.Coord {
	coords := make([]geom.Coord, n)
	for i := range coords {
		coords[i] = geom.Coord{90.40 + float64(i)*0.0001, 23.75}
	}
	return coords
}

func TestSample_Stride(t *testing.T) {
	coords := makeCoords(500)

	assert.Equal(t, 10, SampleStride(len(coords)))

	sampled := Sample(coords)
	require.Len(t, sampled, 50)
	assert.Equal(t, coords[0], sampled[0])
	assert.Equal(t, coords[10], sampled[1])
	assert.Equal(t, coords[490], sampled[49])
}

func TestSample_ShortAndEmpty(t *testing.T) {
	assert.Nil(t, Sample(nil))

	coords := makeCoords(7)
	sampled := Sample(coords)
	assert.Equal(t, coords, sampled)

	single := makeCoords(1)
	assert.Len(t, Sample(single), 1)
}

func TestBoxAround(t *testing.T) {
	box := BoxAround(models.Coordinate{Lng: 90.4, Lat: 23.75})
	assert.InDelta(t, 23.747, box.MinLat, 1e-9)
	assert.InDelta(t, 23.753, box.MaxLat, 1e-9)
	assert.InDelta(t, 90.397, box.MinLng, 1e-9)
	assert.InDelta(t, 90.403, box.MaxLng, 1e-9)
}

func TestAggregate(t *testing.T) {
	score, level := Aggregate(nil)
	assert.Equal(t, 0, score)
	assert.Equal(t, LevelLow, level)

	score, level = Aggregate([]int{0, 0, 0})
	assert.Equal(t, 0, score)
	assert.Equal(t, LevelLow, level)

	score, level = Aggregate([]int{60, 61})
	assert.Equal(t, 61, score) // 60.5 округляется вверх
	assert.Equal(t, LevelHigh, level)
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(models.Coordinate{Lng: 90.4, Lat: 23.7}))
	assert.False(t, ValidCoordinate(models.Coordinate{Lng: math.NaN(), Lat: 23.7}))
	assert.False(t, ValidCoordinate(models.Coordinate{Lng: 90.4, Lat: math.Inf(1)}))
	assert.False(t, ValidCoordinate(models.Coordinate{Lng: 190, Lat: 23.7}))
	assert.False(t, ValidCoordinate(models.Coordinate{Lng: 90, Lat: -91}))
}
