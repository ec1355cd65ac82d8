package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/framlopez/uala-transactions-api/internal/errors"
	"github.com/framlopez/uala-transactions-api/internal/models"
	"github.com/framlopez/uala-transactions-api/internal/services"
)

// TransactionHandler handles the transaction listing endpoint
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions retrieves the filtered transaction history
//
// Method: GET /api/me/transactions
//
// Query parameters (all optional; a multi-value parameter accepts repeats
// and comma-separated lists, matching any of its values):
//   - paymentMethods: link | qr | mpos | pospro
//   - card: visa | mastercard | amex
//   - installments: positive integers
//   - amountMin, amountMax: inclusive decimal bounds
//   - dateFrom, dateTo: YYYY-MM-DD (dateTo covers the whole day) or RFC 3339 instants
//
// Success Response: 200 OK
//   - transactions: array of matching records, source order preserved
//   - metadata: { total, count, generatedAt }
//
// Error Responses:
//   - 400: Invalid filter parameter
//   - 500: Upstream fetch failure or internal error
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.TransactionInvalidFilter, errors.WithDetails(err.Error()))
	}

	response, err := h.transactionService.List(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// parseTransactionFilters parses and validates transaction filter parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	var filters models.TransactionFilters

	for _, method := range multiValueParam(c, "paymentMethods") {
		if !models.IsValidPaymentMethod(method) {
			return filters, fmt.Errorf("invalid paymentMethods value %q", method)
		}
		filters.PaymentMethods = append(filters.PaymentMethods, method)
	}

	for _, card := range multiValueParam(c, "card") {
		if !models.IsValidCard(card) {
			return filters, fmt.Errorf("invalid card value %q", card)
		}
		filters.Cards = append(filters.Cards, card)
	}

	for _, raw := range multiValueParam(c, "installments") {
		installments, err := strconv.Atoi(raw)
		if err != nil || installments < 1 {
			return filters, fmt.Errorf("invalid installments value %q", raw)
		}
		filters.Installments = append(filters.Installments, installments)
	}

	if minStr := c.QueryParam("amountMin"); minStr != "" {
		minAmount, err := decimal.NewFromString(minStr)
		if err != nil {
			return filters, fmt.Errorf("invalid amountMin format")
		}
		filters.MinAmount = &minAmount
	}

	if maxStr := c.QueryParam("amountMax"); maxStr != "" {
		maxAmount, err := decimal.NewFromString(maxStr)
		if err != nil {
			return filters, fmt.Errorf("invalid amountMax format")
		}
		filters.MaxAmount = &maxAmount
	}

	if fromStr := c.QueryParam("dateFrom"); fromStr != "" {
		from, _, err := parseRangeBound(fromStr)
		if err != nil {
			return filters, fmt.Errorf("invalid dateFrom format, use YYYY-MM-DD")
		}
		filters.DateFrom = &from
	}

	if toStr := c.QueryParam("dateTo"); toStr != "" {
		to, dayOnly, err := parseRangeBound(toStr)
		if err != nil {
			return filters, fmt.Errorf("invalid dateTo format, use YYYY-MM-DD")
		}
		if dayOnly {
			// A calendar-day upper bound covers the whole day, inclusive.
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filters.DateTo = &to
	}

	return filters, nil
}

// parseRangeBound accepts a calendar day or an exact instant. The second
// return value reports which of the two was given.
func parseRangeBound(value string) (time.Time, bool, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, fmt.Errorf("unparseable date %q", value)
}

// multiValueParam collects a query parameter that may be repeated or hold a
// comma-separated list.
func multiValueParam(c echo.Context, name string) []string {
	var values []string
	for _, raw := range c.QueryParams()[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}
