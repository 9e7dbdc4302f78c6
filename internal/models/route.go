package models

import "github.com/twpayne/go-geom"

// CandidateRoute - маршрут, полученный от провайдера маршрутизации
type CandidateRoute struct {
	Geometry *geom.LineString
	Distance float64
}

// RouteRequest - параметры запроса безопасного маршрута
type RouteRequest struct {
	From         Coordinate
	To           Coordinate
	Profile      string
	Alternatives bool
}

// SafeRoute - выбранный маршрут с наименьшим риском
type SafeRoute struct {
	Geometry  *geom.LineString
	Distance  float64
	RiskScore int
	RiskLevel string
}
