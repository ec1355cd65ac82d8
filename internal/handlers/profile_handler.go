package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/framlopez/uala-transactions-api/internal/services"
)

// ProfileHandler handles the dashboard owner endpoints
type ProfileHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(dashboardService services.DashboardServiceInterface) *ProfileHandler {
	return &ProfileHandler{dashboardService: dashboardService}
}

// GetProfile returns the dashboard owner's profile
//
// Method: GET /api/me
//
// Success Response: 200 OK
//   - id, firstname, lastname, email, avatarUrl
//
// Error Responses:
//   - 500: Upstream fetch failure or internal error
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.dashboardService.GetProfile(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// GetSummary returns the precomputed totals for the fixed periods
//
// Method: GET /api/me/summary
//
// Success Response: 200 OK
//   - daily:   { totalAmount }
//   - weekly:  { totalAmount }
//   - monthly: { totalAmount }
//
// Error Responses:
//   - 500: Upstream fetch failure or internal error
func (h *ProfileHandler) GetSummary(c echo.Context) error {
	summary, err := h.dashboardService.GetSummary(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
