package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shenikar/safety_map/internal/metrics"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/shenikar/safety_map/internal/risk"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MaxCandidateRoutes - сколько маршрутов провайдера участвуют в выборе
const MaxCandidateRoutes = 3

var routeProfiles = map[string]bool{"driving": true, "foot": true, "bicycle": true}

// SignalRepository определяет контракт для чтения сигналов риска: отчетов и оценок
type SignalRepository interface {
	CountReports(ctx context.Context, filter models.SignalFilter, since time.Time) (int, error)
	AverageRating(ctx context.Context, filter models.SignalFilter, since time.Time) (*models.RatingAggregate, error)
}

// SnapshotRepository определяет контракт для сохраненных снимков риска районов
type SnapshotRepository interface {
	UpsertSnapshot(ctx context.Context, snapshot *models.AreaRiskSnapshot) error
	ListSnapshots(ctx context.Context, limit int) ([]*models.AreaRiskSnapshot, error)
}

// RouteProvider - внешний провайдер маршрутов
type RouteProvider interface {
	Routes(ctx context.Context, req models.RouteRequest) ([]models.CandidateRoute, error)
}

// RiskService определяет контракт расчета риска районов и маршрутов
type RiskService interface {
	AreaRisk(ctx context.Context, area string) (*models.AreaRisk, error)
	SafeRoute(ctx context.Context, req models.RouteRequest) (*models.SafeRoute, error)
	ListSnapshots(ctx context.Context, limit int) ([]*models.AreaRiskSnapshot, error)
}

type riskService struct {
	signals     SignalRepository
	snapshots   SnapshotRepository
	routes      RouteProvider
	logger      *logrus.Logger
	metrics     *metrics.Metrics
	concurrency int
	now         func() time.Time
}

func NewRiskService(signals SignalRepository, snapshots SnapshotRepository, routes RouteProvider, logger *logrus.Logger, m *metrics.Metrics, concurrency int) RiskService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &riskService{
		signals:     signals,
		snapshots:   snapshots,
		routes:      routes,
		logger:      logger,
		metrics:     m,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// AreaRisk считает риск района по отчетам за 7 дней и оценкам за 30 дней
func (s *riskService) AreaRisk(ctx context.Context, area string) (*models.AreaRisk, error) {
	area = strings.TrimSpace(area)
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "AreaRisk",
		"area":    area,
	})
	if area == "" {
		return nil, fmt.Errorf("service: area required: %w", ErrInvalidInput)
	}

	now := s.now()
	reports, avg, err := s.collectSignals(ctx, models.SignalFilter{Area: area}, now)
	if err != nil {
		log.WithError(err).Error("Failed to collect area signals")
		s.metrics.AreaQuery(metrics.StatusError)
		return nil, fmt.Errorf("service: could not compute area risk: %w", err)
	}

	score, level := risk.Score(reports, avg)
	result := &models.AreaRisk{
		Area:          area,
		RecentReports: reports,
		AvgRating:     risk.RoundRating(avg),
		Risk:          score,
		Level:         string(level),
	}

	s.saveSnapshot(ctx, log, result, now)
	s.metrics.AreaQuery(metrics.StatusSuccess)
	log.WithFields(logrus.Fields{"risk": score, "level": level}).Debug("Area risk computed")
	return result, nil
}

// saveSnapshot записывает снимок риска. Ошибка записи не влияет на результат расчета.
func (s *riskService) saveSnapshot(ctx context.Context, log *logrus.Entry, result *models.AreaRisk, now time.Time) {
	if s.snapshots == nil {
		return
	}
	snapshot := &models.AreaRiskSnapshot{
		Area:          result.Area,
		RecentReports: result.RecentReports,
		AvgRating:     result.AvgRating,
		Risk:          result.Risk,
		Level:         result.Level,
		UpdatedAt:     now,
	}
	if err := s.snapshots.UpsertSnapshot(ctx, snapshot); err != nil {
		log.WithError(err).Warn("Failed to store area risk snapshot")
	}
}

// ListSnapshots возвращает последние сохраненные снимки по убыванию риска
func (s *riskService) ListSnapshots(ctx context.Context, limit int) ([]*models.AreaRiskSnapshot, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	snapshots, err := s.snapshots.ListSnapshots(ctx, limit)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "risk",
			"method":  "ListSnapshots",
		}).WithError(err).Error("Failed to list risk snapshots")
		return nil, fmt.Errorf("service: could not list snapshots: %w", err)
	}
	return snapshots, nil
}

// collectSignals - общий для районов и маршрутов сбор сигналов по фильтру
func (s *riskService) collectSignals(ctx context.Context, filter models.SignalFilter, now time.Time) (int, float64, error) {
	reports, err := s.signals.CountReports(ctx, filter, now.Add(-risk.ReportWindow))
	if err != nil {
		return 0, 0, fmt.Errorf("count reports: %w", err)
	}

	agg, err := s.signals.AverageRating(ctx, filter, now.Add(-risk.RatingWindow))
	if err != nil {
		return 0, 0, fmt.Errorf("average rating: %w", err)
	}

	avg := risk.DefaultRating
	if agg != nil && agg.Count > 0 {
		avg = agg.Average
	}
	return reports, avg, nil
}

type scoredRoute struct {
	route   models.CandidateRoute
	score   int
	level   risk.Level
	samples int
}

// SafeRoute запрашивает маршруты у провайдера и выбирает маршрут с наименьшим риском
func (s *riskService) SafeRoute(ctx context.Context, req models.RouteRequest) (*models.SafeRoute, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "SafeRoute",
		"profile": req.Profile,
	})

	if !risk.ValidCoordinate(req.From) || !risk.ValidCoordinate(req.To) {
		s.metrics.RouteQuery("bad_request")
		return nil, fmt.Errorf("service: bad coordinates: %w", ErrInvalidInput)
	}
	if req.Profile == "" {
		req.Profile = "driving"
	}
	if !routeProfiles[req.Profile] {
		s.metrics.RouteQuery("bad_request")
		return nil, fmt.Errorf("service: unknown profile %q: %w", req.Profile, ErrInvalidInput)
	}

	candidates, err := s.routes.Routes(ctx, req)
	if err != nil {
		log.WithError(err).Warn("Routing provider request failed")
		s.metrics.RouteQuery("routing_error")
		return nil, fmt.Errorf("service: %w: %w", ErrRoutingUnavailable, err)
	}
	if len(candidates) == 0 {
		s.metrics.RouteQuery("no_route")
		return nil, fmt.Errorf("service: %w", ErrNoRoute)
	}
	if len(candidates) > MaxCandidateRoutes {
		candidates = candidates[:MaxCandidateRoutes]
	}

	scored, err := s.scoreRoutes(ctx, candidates)
	if err != nil {
		log.WithError(err).Error("Failed to score candidate routes")
		s.metrics.RouteQuery(metrics.StatusError)
		return nil, fmt.Errorf("service: could not score routes: %w", err)
	}

	best := selectSafest(scored)
	s.metrics.RouteQuery(metrics.StatusSuccess)
	s.metrics.RouteSelected(best.score, best.samples)
	log.WithFields(logrus.Fields{
		"candidates": len(scored),
		"risk_score": best.score,
	}).Info("Safe route selected")

	return &models.SafeRoute{
		Geometry:  best.route.Geometry,
		Distance:  best.route.Distance,
		RiskScore: best.score,
		RiskLevel: string(best.level),
	}, nil
}

// selectSafest выбирает маршрут с минимальным риском, при равенстве - первый по порядку
func selectSafest(scored []scoredRoute) scoredRoute {
	ordered := slices.Clone(scored)
	slices.SortStableFunc(ordered, func(a, b scoredRoute) int {
		return cmp.Compare(a.score, b.score)
	})
	return ordered[0]
}

// scoreRoutes считает риск всех кандидатов; запросы по точкам выполняются параллельно
// с ограничением s.concurrency.
func (s *riskService) scoreRoutes(ctx context.Context, candidates []models.CandidateRoute) ([]scoredRoute, error) {
	now := s.now()
	samples := make([][]models.Coordinate, len(candidates))
	scores := make([][]int, len(candidates))
	for i, c := range candidates {
		if c.Geometry == nil {
			continue
		}
		for _, coord := range risk.Sample(c.Geometry.Coords()) {
			samples[i] = append(samples[i], models.Coordinate{Lng: coord[0], Lat: coord[1]})
		}
		scores[i] = make([]int, len(samples[i]))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range samples {
		for j, point := range samples[i] {
			g.Go(func() error {
				score, err := s.scorePoint(gctx, point, now)
				if err != nil {
					return err
				}
				scores[i][j] = score
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scored := make([]scoredRoute, len(candidates))
	for i, c := range candidates {
		score, level := risk.Aggregate(scores[i])
		scored[i] = scoredRoute{route: c, score: score, level: level, samples: len(scores[i])}
	}
	return scored, nil
}

func (s *riskService) scorePoint(ctx context.Context, point models.Coordinate, now time.Time) (int, error) {
	box := risk.BoxAround(point)
	reports, avg, err := s.collectSignals(ctx, models.SignalFilter{Box: &box}, now)
	if err != nil {
		return 0, err
	}
	score, _ := risk.Score(reports, avg)
	return score, nil
}
