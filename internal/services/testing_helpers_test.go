package services

import (
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"github.com/framlopez/uala-transactions-api/internal/models"
)

// fakeMetrics is an in-memory MetricsRecorderInterface used by the service
// suites. The Prometheus recorder registers collectors globally, so tests
// record into plain maps instead.
type fakeMetrics struct {
	mu        sync.Mutex
	counters  map[string]int
	durations map[string]int
	gauges    map[string]float64
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		counters:  make(map[string]int),
		durations: make(map[string]int),
		gauges:    make(map[string]float64),
	}
}

func (f *fakeMetrics) IncrementCounter(name string, tags map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := name
	if status, ok := tags["status"]; ok {
		key = name + ":" + status
	}
	f.counters[key]++
}

func (f *fakeMetrics) RecordDuration(name string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.durations[name]++
}

func (f *fakeMetrics) RecordGauge(name string, value float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gauges[name] = value
}

func (f *fakeMetrics) counterValue(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counters[key]
}

func (f *fakeMetrics) gaugeValue(name string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gauges[name]
}

// dashboardFixture builds an upstream document with the given transactions
// and randomized but well-formed user data.
func dashboardFixture(transactions ...models.Transaction) *models.Dashboard {
	return &models.Dashboard{
		User: models.User{
			ID:        gofakeit.UUID(),
			Firstname: gofakeit.FirstName(),
			Lastname:  gofakeit.LastName(),
			Email:     gofakeit.Email(),
		},
		Summary: models.Summary{
			Daily:   models.PeriodTotal{TotalAmount: decimal.NewFromFloat(150.5)},
			Weekly:  models.PeriodTotal{TotalAmount: decimal.NewFromFloat(900)},
			Monthly: models.PeriodTotal{TotalAmount: decimal.NewFromFloat(4200.25)},
		},
		Transactions: transactions,
	}
}

func transactionFixture(id, createdAt string) models.Transaction {
	return models.Transaction{
		ID:            id,
		Amount:        decimal.NewFromFloat(gofakeit.Price(10, 5000)),
		Card:          models.CardVisa,
		Installments:  1,
		CreatedAt:     models.ParseDate(createdAt),
		UpdatedAt:     models.ParseDate(createdAt),
		PaymentMethod: models.PaymentMethodQR,
	}
}
