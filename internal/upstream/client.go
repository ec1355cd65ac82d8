// Package upstream fetches the dashboard document from the remote static
// data source. Each call performs one outbound request; nothing is cached
// across requests.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/framlopez/uala-transactions-api/internal/config"
	"github.com/framlopez/uala-transactions-api/internal/models"
)

var (
	ErrFetchFailed = errors.New("upstream fetch failed")
	ErrBadPayload  = errors.New("upstream payload could not be decoded")
)

// SourceInterface provides the dashboard document for a single request.
type SourceInterface interface {
	FetchDashboard(ctx context.Context) (*models.Dashboard, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates an upstream client for the configured static source.
func NewClient(cfg config.UpstreamConfig) SourceInterface {
	return &client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *client) FetchDashboard(ctx context.Context) (*models.Dashboard, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("upstream request failed", "url", c.url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("upstream returned non-success status", "url", c.url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var dashboard models.Dashboard
	if err := json.NewDecoder(resp.Body).Decode(&dashboard); err != nil {
		slog.Error("upstream payload decode failed", "url", c.url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	return &dashboard, nil
}
