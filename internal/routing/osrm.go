// Package routing - клиент OSRM-совместимого провайдера маршрутов.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shenikar/safety_map/internal/config"
	"github.com/shenikar/safety_map/internal/metrics"
	"github.com/shenikar/safety_map/internal/models"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

var ErrUpstream = errors.New("routing upstream error")

const codeNoRoute = "NoRoute"

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Geometry json.RawMessage `json:"geometry"`
	Distance float64         `json:"distance"`
}

// Client запрашивает маршруты у провайдера. Ответы кешируются на короткое время.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	metrics    *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) *Client {
	c := &Client{
		baseURL: cfg.RoutingBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RoutingTimeout,
		},
		metrics: m,
	}
	if cfg.RoutingCacheTTL > 0 {
		c.cache = cache.New(cfg.RoutingCacheTTL, 2*cfg.RoutingCacheTTL)
	}
	return c
}

// Routes возвращает маршруты между req.From и req.To. Пустой список - маршрута нет.
func (c *Client) Routes(ctx context.Context, req models.RouteRequest) ([]models.CandidateRoute, error) {
	url := c.routeURL(req)
	if c.cache != nil {
		if cached, ok := c.cache.Get(url); ok {
			return cached.([]models.CandidateRoute), nil
		}
	}

	start := time.Now()
	routes, err := c.fetch(ctx, url)
	if err != nil {
		c.metrics.RoutingRequest(metrics.StatusError, time.Since(start))
		return nil, err
	}
	c.metrics.RoutingRequest(metrics.StatusSuccess, time.Since(start))

	if c.cache != nil {
		c.cache.SetDefault(url, routes)
	}
	return routes, nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]models.CandidateRoute, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create routing request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	var body osrmResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	// OSRM отвечает NoRoute с кодом 4xx, это не сбой провайдера
	if decodeErr == nil && body.Code == codeNoRoute {
		return []models.CandidateRoute{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", ErrUpstream, decodeErr)
	}

	routes := make([]models.CandidateRoute, 0, len(body.Routes))
	for i, r := range body.Routes {
		line, err := decodeLineString(r.Geometry)
		if err != nil {
			return nil, fmt.Errorf("%w: route %d: %w", ErrUpstream, i, err)
		}
		routes = append(routes, models.CandidateRoute{Geometry: line, Distance: r.Distance})
	}
	return routes, nil
}

func (c *Client) routeURL(req models.RouteRequest) string {
	url := fmt.Sprintf("%s/route/v1/%s/%s,%s;%s,%s?overview=full&geometries=geojson",
		c.baseURL, req.Profile,
		formatCoord(req.From.Lng), formatCoord(req.From.Lat),
		formatCoord(req.To.Lng), formatCoord(req.To.Lat),
	)
	if req.Alternatives {
		url += "&alternatives=true"
	}
	return url
}

func decodeLineString(raw json.RawMessage) (*geom.LineString, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errors.New("missing geometry")
	}
	var g geom.T
	if err := geojson.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}
	line, ok := g.(*geom.LineString)
	if !ok {
		return nil, fmt.Errorf("unexpected geometry type %T", g)
	}
	return line, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
