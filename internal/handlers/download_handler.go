package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/framlopez/uala-transactions-api/internal/errors"
	"github.com/framlopez/uala-transactions-api/internal/services"
	"github.com/framlopez/uala-transactions-api/internal/validation"
)

// DownloadHandler handles the CSV export endpoint
type DownloadHandler struct {
	exportService services.ExportServiceInterface
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(exportService services.ExportServiceInterface) *DownloadHandler {
	return &DownloadHandler{exportService: exportService}
}

// DownloadTransactions streams a CSV export of the requested date range
//
// Method: GET /api/me/transactions/download
//
// Query parameters (both required):
//   - dateFrom: YYYY-MM-DD
//   - dateTo: YYYY-MM-DD (covers the whole day, inclusive)
//
// Success Response: 200 OK
//   - text/csv body with attachment and cache-disabling headers
//
// Error Responses:
//   - 400: Missing parameter or date not matching YYYY-MM-DD
//   - 500: Upstream fetch failure or internal error
func (h *DownloadHandler) DownloadTransactions(c echo.Context) error {
	fromStr := c.QueryParam("dateFrom")
	toStr := c.QueryParam("dateTo")

	if fromStr == "" || toStr == "" {
		return SendError(c, errors.ValidationRequiredParam,
			errors.WithDetails("dateFrom and dateTo are required"))
	}

	if !validation.IsValidDateParam(fromStr) || !validation.IsValidDateParam(toStr) {
		return SendError(c, errors.ValidationInvalidDate,
			errors.WithDetails("dates must use the YYYY-MM-DD format"))
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}
	// Upper bound covers the whole day, inclusive.
	to = to.Add(24*time.Hour - time.Nanosecond)

	document, headers, err := h.exportService.ExportCSV(c.Request().Context(), from, to)
	if err != nil {
		return SendSystemError(c, err)
	}

	for name, value := range headers {
		c.Response().Header().Set(name, value)
	}

	return c.String(http.StatusOK, document)
}
