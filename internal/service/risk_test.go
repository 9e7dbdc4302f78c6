package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

// newTestRiskService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestRiskService(t *testing.T) (*riskService, *mocks.MockSignalRepository, *mocks.MockSnapshotRepository, *mocks.MockRouteProvider) {
	ctrl := gomock.NewController(t)
	signalsMock := mocks.NewMockSignalRepository(ctrl)
	snapshotsMock := mocks.NewMockSnapshotRepository(ctrl)
	routesMock := mocks.NewMockRouteProvider(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewRiskService(signalsMock, snapshotsMock, routesMock, logger, nil, 4).(*riskService)
	svc.now = func() time.Time { return fixedNow }
	return svc, signalsMock, snapshotsMock, routesMock
}

func expectAreaSignals(signalsMock *mocks.MockSignalRepository, area string, reports int, agg *models.RatingAggregate) {
	filter := models.SignalFilter{Area: area}
	signalsMock.EXPECT().
		CountReports(gomock.Any(), filter, fixedNow.Add(-7*24*time.Hour)).
		Return(reports, nil)
	signalsMock.EXPECT().
		AverageRating(gomock.Any(), filter, fixedNow.Add(-30*24*time.Hour)).
		Return(agg, nil)
}

func TestAreaRisk_NoData(t *testing.T) {
	// Подготовка
	svc, signalsMock, snapshotsMock, _ := newTestRiskService(t)
	ctx := context.Background()

	// Ожидания
	expectAreaSignals(signalsMock, "Gulshan", 0, &models.RatingAggregate{})
	snapshotsMock.EXPECT().
		UpsertSnapshot(gomock.Any(), &models.AreaRiskSnapshot{
			Area:      "Gulshan",
			AvgRating: 5,
			Risk:      0,
			Level:     "low",
			UpdatedAt: fixedNow,
		}).
		Return(nil).
		Times(1)

	// Действие
	result, err := svc.AreaRisk(ctx, "Gulshan")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, &models.AreaRisk{Area: "Gulshan", RecentReports: 0, AvgRating: 5, Risk: 0, Level: "low"}, result)
}

func TestAreaRisk_Levels(t *testing.T) {
	tests := []struct {
		name     string
		reports  int
		agg      *models.RatingAggregate
		expected models.AreaRisk
	}{
		{
			name:     "six_reports_high",
			reports:  6,
			agg:      &models.RatingAggregate{Average: 5, Count: 3},
			expected: models.AreaRisk{Area: "Mirpur", RecentReports: 6, AvgRating: 5, Risk: 60, Level: "high"},
		},
		{
			name:     "low_rating_moderate",
			reports:  0,
			agg:      &models.RatingAggregate{Average: 1, Count: 2},
			expected: models.AreaRisk{Area: "Mirpur", RecentReports: 0, AvgRating: 1, Risk: 48, Level: "moderate"},
		},
		{
			name:     "capped_at_100",
			reports:  25,
			agg:      &models.RatingAggregate{Average: 1.333333, Count: 3},
			expected: models.AreaRisk{Area: "Mirpur", RecentReports: 25, AvgRating: 1.33, Risk: 100, Level: "high"},
		},
		{
			name:     "nil_aggregate_defaults",
			reports:  3,
			agg:      nil,
			expected: models.AreaRisk{Area: "Mirpur", RecentReports: 3, AvgRating: 5, Risk: 30, Level: "low"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, signalsMock, snapshotsMock, _ := newTestRiskService(t)
			expectAreaSignals(signalsMock, "Mirpur", tt.reports, tt.agg)
			snapshotsMock.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)

			result, err := svc.AreaRisk(context.Background(), "Mirpur")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func TestAreaRisk_TrimsName(t *testing.T) {
	// Подготовка
	svc, signalsMock, snapshotsMock, _ := newTestRiskService(t)

	// Ожидания
	expectAreaSignals(signalsMock, "Dhanmondi", 1, &models.RatingAggregate{})
	snapshotsMock.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil)

	// Действие
	result, err := svc.AreaRisk(context.Background(), "  Dhanmondi \t")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Dhanmondi", result.Area)
}

func TestAreaRisk_EmptyArea(t *testing.T) {
	svc, signalsMock, snapshotsMock, _ := newTestRiskService(t)

	signalsMock.EXPECT().CountReports(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	snapshotsMock.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.AreaRisk(context.Background(), "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, result)
}

func TestAreaRisk_SnapshotFailureIgnored(t *testing.T) {
	// Подготовка
	svc, signalsMock, snapshotsMock, _ := newTestRiskService(t)

	// Ожидания
	expectAreaSignals(signalsMock, "Uttara", 2, &models.RatingAggregate{Average: 4, Count: 1})
	snapshotsMock.EXPECT().
		UpsertSnapshot(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset")).
		Times(1)

	// Действие
	result, err := svc.AreaRisk(context.Background(), "Uttara")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 32, result.Risk)
	assert.Equal(t, "low", result.Level)
}

func TestAreaRisk_StorageError(t *testing.T) {
	// Подготовка
	svc, signalsMock, snapshotsMock, _ := newTestRiskService(t)
	dbError := errors.New("db is down")

	// Ожидания
	signalsMock.EXPECT().CountReports(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, dbError)
	signalsMock.EXPECT().AverageRating(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	snapshotsMock.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := svc.AreaRisk(context.Background(), "Banani")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, dbError)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, result)
}

func TestAreaRisk_RepeatedQueriesIdentical(t *testing.T) {
	svc, signalsMock, snapshotsMock, _ := newTestRiskService(t)

	signalsMock.EXPECT().CountReports(gomock.Any(), gomock.Any(), gomock.Any()).Return(4, nil).Times(2)
	signalsMock.EXPECT().AverageRating(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RatingAggregate{Average: 2.5, Count: 4}, nil).Times(2)
	snapshotsMock.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := svc.AreaRisk(context.Background(), "Bashabo")
	require.NoError(t, err)
	second, err := svc.AreaRisk(context.Background(), "Bashabo")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 70, first.Risk)
}

func TestListSnapshots_DefaultLimit(t *testing.T) {
	svc, _, snapshotsMock, _ := newTestRiskService(t)
	expected := []*models.AreaRiskSnapshot{{Area: "Gulshan", Risk: 40, Level: "moderate"}}

	snapshotsMock.EXPECT().ListSnapshots(gomock.Any(), 50).Return(expected, nil)

	snapshots, err := svc.ListSnapshots(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, expected, snapshots)
}

// lineAt строит маршрут из точек на долготе lng
func lineAt(lng float64, points int) *geom.LineString {
	coords := make([]geom.Coord, points)
	for i := range coords {
		coords[i] = geom.Coord{lng, 23.70 + float64(i)*0.001}
	}
	return geom.NewLineString(geom.XY).MustSetCoords(coords)
}

// areaSignal - сигналы, которые мок возвращает для точек на заданной долготе
type areaSignal struct {
	reports int
	avg     float64
	count   int
}

// expectBoxSignals настраивает мок так, чтобы ответ зависел от долготы в фильтре
func expectBoxSignals(signalsMock *mocks.MockSignalRepository, byLng map[float64]areaSignal) {
	lookup := func(filter models.SignalFilter) areaSignal {
		for lng, sig := range byLng {
			if filter.Box != nil && filter.Box.MinLng <= lng && lng <= filter.Box.MaxLng {
				return sig
			}
		}
		return areaSignal{}
	}
	signalsMock.EXPECT().
		CountReports(gomock.Any(), gomock.Any(), fixedNow.Add(-7*24*time.Hour)).
		DoAndReturn(func(_ context.Context, filter models.SignalFilter, _ time.Time) (int, error) {
			return lookup(filter).reports, nil
		}).AnyTimes()
	signalsMock.EXPECT().
		AverageRating(gomock.Any(), gomock.Any(), fixedNow.Add(-30*24*time.Hour)).
		DoAndReturn(func(_ context.Context, filter models.SignalFilter, _ time.Time) (*models.RatingAggregate, error) {
			sig := lookup(filter)
			return &models.RatingAggregate{Average: sig.avg, Count: sig.count}, nil
		}).AnyTimes()
}

func validRouteRequest() models.RouteRequest {
	return models.RouteRequest{
		From: models.Coordinate{Lng: 90.4294, Lat: 23.7639},
		To:   models.Coordinate{Lng: 90.3760, Lat: 23.7465},
	}
}

func TestSafeRoute_SelectsLowestRisk(t *testing.T) {
	// Подготовка
	svc, signalsMock, _, routesMock := newTestRiskService(t)
	ctx := context.Background()
	candidates := []models.CandidateRoute{
		{Geometry: lineAt(90.1, 5), Distance: 1000},
		{Geometry: lineAt(90.2, 5), Distance: 1500},
		{Geometry: lineAt(90.3, 5), Distance: 1200},
	}

	// Ожидания
	routesMock.EXPECT().
		Routes(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.RouteRequest) ([]models.CandidateRoute, error) {
			assert.Equal(t, "driving", req.Profile)
			return candidates, nil
		}).
		Times(1)
	expectBoxSignals(signalsMock, map[float64]areaSignal{
		90.1: {reports: 6, avg: 4, count: 1},    // 72
		90.2: {reports: 0, avg: 3.75, count: 4}, // 15
		90.3: {reports: 4, avg: 5, count: 1},    // 40
	})

	// Действие
	result, err := svc.SafeRoute(ctx, validRouteRequest())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 15, result.RiskScore)
	assert.Equal(t, "low", result.RiskLevel)
	assert.Equal(t, 1500.0, result.Distance)
	assert.Same(t, candidates[1].Geometry, result.Geometry)
}

func TestSafeRoute_CleanRoute(t *testing.T) {
	svc, signalsMock, _, routesMock := newTestRiskService(t)
	route := models.CandidateRoute{Geometry: lineAt(90.1, 120), Distance: 800}

	routesMock.EXPECT().Routes(gomock.Any(), gomock.Any()).Return([]models.CandidateRoute{route}, nil)
	expectBoxSignals(signalsMock, nil)

	result, err := svc.SafeRoute(context.Background(), validRouteRequest())

	require.NoError(t, err)
	assert.Equal(t, 0, result.RiskScore)
	assert.Equal(t, "low", result.RiskLevel)
}

func TestSafeRoute_TieKeepsProviderOrder(t *testing.T) {
	svc, signalsMock, _, routesMock := newTestRiskService(t)
	candidates := []models.CandidateRoute{
		{Geometry: lineAt(90.1, 3), Distance: 1},
		{Geometry: lineAt(90.2, 3), Distance: 2},
	}

	routesMock.EXPECT().Routes(gomock.Any(), gomock.Any()).Return(candidates, nil)
	expectBoxSignals(signalsMock, map[float64]areaSignal{
		90.1: {reports: 2},
		90.2: {reports: 2},
	})

	result, err := svc.SafeRoute(context.Background(), validRouteRequest())

	require.NoError(t, err)
	assert.Equal(t, 20, result.RiskScore)
	assert.Equal(t, 1.0, result.Distance)
}

func TestSafeRoute_OnlyFirstThreeCandidates(t *testing.T) {
	svc, signalsMock, _, routesMock := newTestRiskService(t)
	candidates := []models.CandidateRoute{
		{Geometry: lineAt(90.1, 2), Distance: 1},
		{Geometry: lineAt(90.1, 2), Distance: 2},
		{Geometry: lineAt(90.1, 2), Distance: 3},
		{Geometry: lineAt(90.4, 2), Distance: 4},
	}

	routesMock.EXPECT().Routes(gomock.Any(), gomock.Any()).Return(candidates, nil)
	expectBoxSignals(signalsMock, map[float64]areaSignal{
		90.1: {reports: 6, avg: 4, count: 1},
	})

	result, err := svc.SafeRoute(context.Background(), validRouteRequest())

	require.NoError(t, err)
	assert.Equal(t, 72, result.RiskScore)
	assert.Equal(t, 1.0, result.Distance)
}

func TestSafeRoute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  models.RouteRequest
	}{
		{"latitude_out_of_range", models.RouteRequest{From: models.Coordinate{Lng: 90, Lat: 91}, To: models.Coordinate{Lng: 90, Lat: 23}}},
		{"longitude_out_of_range", models.RouteRequest{From: models.Coordinate{Lng: 90, Lat: 23}, To: models.Coordinate{Lng: 181, Lat: 23}}},
		{"unknown_profile", models.RouteRequest{From: models.Coordinate{Lng: 90, Lat: 23}, To: models.Coordinate{Lng: 90.1, Lat: 23}, Profile: "rocket"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, routesMock := newTestRiskService(t)
			routesMock.EXPECT().Routes(gomock.Any(), gomock.Any()).Times(0)

			result, err := svc.SafeRoute(context.Background(), tt.req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, result)
		})
	}
}

func TestSafeRoute_RoutingUnavailable(t *testing.T) {
	svc, signalsMock, _, routesMock := newTestRiskService(t)
	upstreamErr := errors.New("status 503")

	routesMock.EXPECT().Routes(gomock.Any(), gomock.Any()).Return(nil, upstreamErr)
	signalsMock.EXPECT().CountReports(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.SafeRoute(context.Background(), validRouteRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRoutingUnavailable)
	assert.ErrorIs(t, err, upstreamErr)
	assert.Nil(t, result)
}

func TestSafeRoute_NoRoute(t *testing.T) {
	svc, _, _, routesMock := newTestRiskService(t)

	routesMock.EXPECT().Routes(gomock.Any(), gomock.Any()).Return([]models.CandidateRoute{}, nil)

	result, err := svc.SafeRoute(context.Background(), validRouteRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRoute)
	assert.Nil(t, result)
}

func TestSafeRoute_StorageError(t *testing.T) {
	svc, signalsMock, _, routesMock := newTestRiskService(t)
	dbError := errors.New("too many connections")

	routesMock.EXPECT().Routes(gomock.Any(), gomock.Any()).
		Return([]models.CandidateRoute{{Geometry: lineAt(90.1, 10)}}, nil)
	signalsMock.EXPECT().CountReports(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, dbError).MinTimes(1)
	signalsMock.EXPECT().AverageRating(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	result, err := svc.SafeRoute(context.Background(), validRouteRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, dbError)
	assert.NotErrorIs(t, err, ErrRoutingUnavailable)
	assert.Nil(t, result)
}
