package models

import "time"

// Coordinate - точка в порядке GeoJSON (долгота, широта)
type Coordinate struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// BoundingBox - прямоугольник широт/долгот для выборки записей "рядом" с точкой
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// SignalFilter определяет, какие отчеты и оценки попадают в расчет риска:
// точное совпадение названия района либо попадание координат в Box.
type SignalFilter struct {
	Area string
	Box  *BoundingBox
}

// AreaRisk - результат расчета риска для района
type AreaRisk struct {
	Area          string  `json:"area"`
	RecentReports int     `json:"recentReports"`
	AvgRating     float64 `json:"avgRating"`
	Risk          int     `json:"risk"`
	Level         string  `json:"level"`
}

// AreaRiskSnapshot - сохраненный результат последнего расчета для района
type AreaRiskSnapshot struct {
	Area          string    `json:"area"`
	RecentReports int       `json:"recentReports"`
	AvgRating     float64   `json:"avgRating"`
	Risk          int       `json:"risk"`
	Level         string    `json:"level"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
