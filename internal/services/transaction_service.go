package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/framlopez/uala-transactions-api/internal/dto"
	"github.com/framlopez/uala-transactions-api/internal/models"
	"github.com/framlopez/uala-transactions-api/internal/upstream"
)

type transactionService struct {
	source  upstream.SourceInterface
	metrics MetricsRecorderInterface
}

func NewTransactionService(source upstream.SourceInterface, metrics MetricsRecorderInterface) TransactionServiceInterface {
	return &transactionService{source: source, metrics: metrics}
}

// List fetches the full transaction history and applies the filter criteria
// in memory, preserving source order.
func (s *transactionService) List(ctx context.Context, filters models.TransactionFilters) (*dto.ListTransactionsResponse, error) {
	dashboard, err := s.source.FetchDashboard(ctx)
	if err != nil {
		s.metrics.IncrementCounter("transactions.list", map[string]string{"status": "error"})
		slog.Error("failed to fetch transactions for listing", "error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	filtered := filters.Apply(dashboard.Transactions)

	s.metrics.IncrementCounter("transactions.list", map[string]string{"status": "success"})
	s.metrics.RecordGauge("transactions.result_size", float64(len(filtered)))

	slog.Info("transactions listed",
		"total", len(dashboard.Transactions),
		"matched", len(filtered),
		"filters_active", filters.Active())

	return &dto.ListTransactionsResponse{
		Transactions: filtered,
		Metadata: dto.ListMetadata{
			Total:       len(dashboard.Transactions),
			Count:       len(filtered),
			GeneratedAt: time.Now().UTC(),
		},
	}, nil
}
