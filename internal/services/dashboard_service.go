package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/framlopez/uala-transactions-api/internal/models"
	"github.com/framlopez/uala-transactions-api/internal/upstream"
)

// dashboardService resolves the upstream document for the profile and
// summary endpoints. Both are straight pass-throughs: the upstream source
// precomputes the totals.
type dashboardService struct {
	source  upstream.SourceInterface
	metrics MetricsRecorderInterface
}

func NewDashboardService(source upstream.SourceInterface, metrics MetricsRecorderInterface) DashboardServiceInterface {
	return &dashboardService{source: source, metrics: metrics}
}

func (s *dashboardService) GetProfile(ctx context.Context) (*models.User, error) {
	dashboard, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return &dashboard.User, nil
}

func (s *dashboardService) GetSummary(ctx context.Context) (*models.Summary, error) {
	dashboard, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return &dashboard.Summary, nil
}

func (s *dashboardService) fetch(ctx context.Context) (*models.Dashboard, error) {
	start := time.Now()

	dashboard, err := s.source.FetchDashboard(ctx)
	s.metrics.RecordDuration("upstream.fetch", time.Since(start))
	if err != nil {
		s.metrics.IncrementCounter("upstream.fetch", map[string]string{"status": "error"})
		slog.Error("upstream dashboard fetch failed", "error", err)
		return nil, fmt.Errorf("failed to fetch dashboard: %w", err)
	}

	s.metrics.IncrementCounter("upstream.fetch", map[string]string{"status": "success"})
	return dashboard, nil
}
