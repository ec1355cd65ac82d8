package services

import (
	"context"
	"time"

	"github.com/framlopez/uala-transactions-api/internal/dto"
	"github.com/framlopez/uala-transactions-api/internal/models"
)

// ProfileServiceInterface serves the dashboard owner's profile.
type ProfileServiceInterface interface {
	GetProfile(ctx context.Context) (*models.User, error)
}

// SummaryServiceInterface serves the precomputed period totals.
type SummaryServiceInterface interface {
	GetSummary(ctx context.Context) (*models.Summary, error)
}

// DashboardServiceInterface bundles the two pass-through reads of the
// upstream document.
type DashboardServiceInterface interface {
	ProfileServiceInterface
	SummaryServiceInterface
}

// TransactionServiceInterface serves the filtered transaction listing.
type TransactionServiceInterface interface {
	List(ctx context.Context, filters models.TransactionFilters) (*dto.ListTransactionsResponse, error)
}

// ExportServiceInterface builds CSV exports for a date range.
type ExportServiceInterface interface {
	ExportCSV(ctx context.Context, from, to time.Time) (string, map[string]string, error)
}

// MetricsRecorderInterface abstracts the metrics backend so services can be
// tested without touching the global Prometheus registry.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordDuration(name string, duration time.Duration)
	RecordGauge(name string, value float64)
}
