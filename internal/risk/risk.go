// Package risk содержит чистые функции расчета риска, общие для оценки районов и маршрутов.
package risk

import (
	"math"
	"time"

	"github.com/shenikar/safety_map/internal/models"
	"github.com/twpayne/go-geom"
)

type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

const (
	// ReportWindow - окно учета отчетов об инцидентах
	ReportWindow = 7 * 24 * time.Hour
	// RatingWindow - окно учета оценок района
	RatingWindow = 30 * 24 * time.Hour

	// DefaultRating используется, когда в окне нет ни одной оценки
	DefaultRating = 5.0
	MinRating     = 1
	MaxRating     = 5

	MaxScore        = 100
	reportPenalty   = 10
	ratingPenalty   = 12
	highThreshold   = 60
	moderateThresh  = 40
	maxRouteSamples = 50

	// BoxHalfWidth - полуширина окна близости в градусах (~300 м)
	BoxHalfWidth = 0.003
)

// Score вычисляет риск 0..100 по числу недавних отчетов и средней оценке.
func Score(recentReports int, avgRating float64) (int, Level) {
	if recentReports < 0 {
		recentReports = 0
	}
	raw := float64(recentReports)*reportPenalty + (DefaultRating-avgRating)*ratingPenalty
	score := int(math.Round(raw))
	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	return score, LevelFor(score)
}

// LevelFor переводит значение риска в категорию
func LevelFor(score int) Level {
	switch {
	case score >= highThreshold:
		return LevelHigh
	case score >= moderateThresh:
		return LevelModerate
	default:
		return LevelLow
	}
}

// RoundRating округляет среднюю оценку до двух знаков для отображения
func RoundRating(avg float64) float64 {
	return math.Round(avg*100) / 100
}

// ClampRating приводит оценку к диапазону 1..5
func ClampRating(score int) int {
	return max(MinRating, min(MaxRating, score))
}

// SampleStride возвращает шаг выборки точек для геометрии длины n
func SampleStride(n int) int {
	return max(1, n/maxRouteSamples)
}

// Sample выбирает точки маршрута с фиксированным шагом, первая точка всегда включена.
func Sample(coords []geom.Coord) []geom.Coord {
	if len(coords) == 0 {
		return nil
	}
	stride := SampleStride(len(coords))
	sampled := make([]geom.Coord, 0, (len(coords)+stride-1)/stride)
	for i := 0; i < len(coords); i += stride {
		sampled = append(sampled, coords[i])
	}
	return sampled
}

// BoxAround строит окно близости вокруг точки
func BoxAround(c models.Coordinate) models.BoundingBox {
	return models.BoundingBox{
		MinLat: c.Lat - BoxHalfWidth,
		MaxLat: c.Lat + BoxHalfWidth,
		MinLng: c.Lng - BoxHalfWidth,
		MaxLng: c.Lng + BoxHalfWidth,
	}
}

// Aggregate усредняет риски выборочных точек маршрута. Пустой маршрут дает 0.
func Aggregate(scores []int) (int, Level) {
	if len(scores) == 0 {
		return 0, LevelFor(0)
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	score := int(math.Round(float64(total) / float64(len(scores))))
	return score, LevelFor(score)
}

// ValidCoordinate проверяет, что координаты конечны и лежат в допустимых пределах
func ValidCoordinate(c models.Coordinate) bool {
	for _, v := range []float64{c.Lat, c.Lng} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
