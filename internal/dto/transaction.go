package dto

import (
	"time"

	"github.com/framlopez/uala-transactions-api/internal/models"
)

// ListMetadata describes the result set of a transaction listing.
type ListMetadata struct {
	Total       int       `json:"total"`
	Count       int       `json:"count"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ListTransactionsResponse is the payload of GET /api/me/transactions.
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Metadata     ListMetadata         `json:"metadata"`
}
