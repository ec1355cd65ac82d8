// Package downloader drives the CSV export endpoint the way the dashboard
// client does: validate the requested range, issue one GET with a hard
// deadline, verify the payload and materialize it as a local file. No
// retries; every failure surfaces as a single error with a user-facing
// message in the dashboard's language.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Timeout is the hard client-side deadline for one download.
const Timeout = 30 * time.Second

const dateLayout = "2006-01-02"

// Validation failures. The messages are the contract with the caller: they
// are shown verbatim as notifications.
var (
	ErrInvalidDates = errors.New("Fechas inválidas")
	ErrFutureDates  = errors.New("No se puede descargar transacciones de fechas futuras")
	ErrRangeOrder   = errors.New("La fecha de inicio no puede ser posterior a la fecha de fin")
)

// Response verification failures.
var (
	ErrNotCSV    = errors.New("El archivo descargado no es un CSV válido")
	ErrEmptyFile = errors.New("El archivo descargado está vacío")
	ErrTimeout   = errors.New("La descarga tardó demasiado. Intentá nuevamente")
	ErrDownload  = errors.New("No se pudo descargar el archivo")
)

// statusMessages maps non-success HTTP statuses to user-facing failures.
var statusMessages = map[int]string{
	http.StatusBadRequest:         "Formato de fecha inválido",
	http.StatusNotFound:           "No hay transacciones en el rango de fechas seleccionado",
	http.StatusServiceUnavailable: "Error de conexión con el servidor. Intentá nuevamente",
}

// Downloader requests CSV exports and saves them locally.
type Downloader struct {
	baseURL    string
	outDir     string
	httpClient *http.Client
	now        func() time.Time
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Downloader) {
		d.httpClient = client
	}
}

// WithOutputDir sets the directory the file is saved into.
func WithOutputDir(dir string) Option {
	return func(d *Downloader) {
		d.outDir = dir
	}
}

// withNow overrides the clock, for tests.
func withNow(now func() time.Time) Option {
	return func(d *Downloader) {
		d.now = now
	}
}

// New creates a Downloader against the given API base URL.
func New(baseURL string, opts ...Option) *Downloader {
	d := &Downloader{
		baseURL:    strings.TrimRight(baseURL, "/"),
		outDir:     ".",
		httpClient: &http.Client{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Download validates the [from, to] range, requests the export and writes
// it to "<outDir>/transactions_<from>_to_<to>.csv". It returns the path of
// the saved file.
func (d *Downloader) Download(ctx context.Context, from, to string) (string, error) {
	fromDate, err := time.Parse(dateLayout, from)
	if err != nil {
		return "", ErrInvalidDates
	}
	toDate, err := time.Parse(dateLayout, to)
	if err != nil {
		return "", ErrInvalidDates
	}

	if fromDate.After(d.now()) || toDate.After(d.now()) {
		return "", ErrFutureDates
	}

	if fromDate.After(toDate) {
		return "", ErrRangeOrder
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	body, err := d.request(ctx, fromDate.Format(dateLayout), toDate.Format(dateLayout))
	if err != nil {
		return "", err
	}

	path := filepath.Join(d.outDir, fmt.Sprintf("transactions_%s_to_%s.csv", from, to))
	if err := d.save(path, body); err != nil {
		return "", err
	}

	slog.Info("csv export saved", "path", path, "bytes", len(body))
	return path, nil
}

func (d *Downloader) request(ctx context.Context, from, to string) ([]byte, error) {
	query := url.Values{}
	query.Set("dateFrom", from)
	query.Set("dateTo", to)
	endpoint := d.baseURL + "/api/me/transactions/download?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, ErrDownload
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		slog.Error("download request failed", "endpoint", endpoint, "error", err)
		return nil, ErrDownload
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "text/csv") {
		return nil, ErrNotCSV
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		return nil, ErrDownload
	}

	if len(body) == 0 {
		return nil, ErrEmptyFile
	}

	return body, nil
}

func (d *Downloader) save(path string, body []byte) error {
	if err := os.WriteFile(path, body, 0o644); err != nil {
		// Leave no partial file behind.
		_ = os.Remove(path)
		slog.Error("failed to save csv export", "path", path, "error", err)
		return ErrDownload
	}
	return nil
}

func statusError(status int) error {
	if msg, ok := statusMessages[status]; ok {
		return errors.New(msg)
	}
	if status >= 500 {
		return errors.New("Error del servidor. Intentá más tarde")
	}
	return ErrDownload
}
