package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/framlopez/uala-transactions-api/internal/config"
	"github.com/framlopez/uala-transactions-api/internal/export"
	"github.com/framlopez/uala-transactions-api/internal/models"
	"github.com/framlopez/uala-transactions-api/internal/upstream"
)

type exportService struct {
	source  upstream.SourceInterface
	cfg     config.ExportConfig
	metrics MetricsRecorderInterface
}

func NewExportService(source upstream.SourceInterface, cfg config.ExportConfig, metrics MetricsRecorderInterface) ExportServiceInterface {
	return &exportService{source: source, cfg: cfg, metrics: metrics}
}

// ExportCSV fetches the transaction history, keeps the records whose
// createdAt falls within [from, to] and renders them as a CSV document
// together with the download headers.
func (s *exportService) ExportCSV(ctx context.Context, from, to time.Time) (string, map[string]string, error) {
	start := time.Now()

	dashboard, err := s.source.FetchDashboard(ctx)
	if err != nil {
		s.metrics.IncrementCounter("export.generated", map[string]string{"status": "error"})
		slog.Error("failed to fetch transactions for export", "error", err)
		return "", nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	filters := models.TransactionFilters{
		DateFrom: &from,
		DateTo:   &to,
	}
	filtered := filters.Apply(dashboard.Transactions)

	document := export.Generate(filtered, export.Options{})
	headers := export.BuildHeaders(s.cfg.DefaultFilename, "")

	s.metrics.IncrementCounter("export.generated", map[string]string{"status": "success"})
	s.metrics.RecordDuration("export.generate", time.Since(start))
	s.metrics.RecordGauge("export.rows", float64(len(filtered)))

	slog.Info("csv export generated",
		"from", from.Format("2006-01-02"),
		"to", to.Format("2006-01-02"),
		"rows", len(filtered))

	return document, headers, nil
}
