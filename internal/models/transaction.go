package models

import (
	"github.com/shopspring/decimal"
)

const (
	CardVisa       = "visa"
	CardMastercard = "mastercard"
	CardAmex       = "amex"

	PaymentMethodLink   = "link"
	PaymentMethodQR     = "qr"
	PaymentMethodMPOS   = "mpos"
	PaymentMethodPOSPro = "pospro"
)

// Transaction represents one payment record as served by the upstream data
// source. Records are fetched fresh per request, held in request-scoped
// memory only and never mutated.
type Transaction struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Card          string          `json:"card"`
	Installments  int             `json:"installments"`
	CreatedAt     ParsedDate      `json:"createdAt"`
	UpdatedAt     ParsedDate      `json:"updatedAt"`
	PaymentMethod string          `json:"paymentMethod"`
}

// IsValidCard checks if the card brand is one of the supported values
func IsValidCard(card string) bool {
	switch card {
	case CardVisa, CardMastercard, CardAmex:
		return true
	default:
		return false
	}
}

// IsValidPaymentMethod checks if the payment method is one of the supported values
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodLink, PaymentMethodQR, PaymentMethodMPOS, PaymentMethodPOSPro:
		return true
	default:
		return false
	}
}
