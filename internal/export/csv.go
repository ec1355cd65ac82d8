// Package export builds CSV documents and download headers for transaction
// history exports. All functions are pure and total: malformed upstream data
// (nil fields, unparseable dates) degrades to empty or placeholder cells,
// never to an error.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/framlopez/uala-transactions-api/internal/models"
)

const (
	// DefaultFilename is the filename stem used when no override is given.
	DefaultFilename = "transactions"

	// dateCellLayout renders timestamps the way the dashboard does:
	// numeric day/month/year plus hour and minute.
	dateCellLayout = "02/01/2006, 15:04"
)

// header is the fixed 7-column layout of every export.
var header = []string{"ID", "Amount", "Card", "Installments", "Payment Method", "Created At", "Updated At"}

// buenosAires is the locale of the dashboard. Falls back to a fixed UTC-3
// zone on hosts without tzdata.
var buenosAires = func() *time.Location {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}()

// Options configures CSV generation. The zero value applies the defaults.
type Options struct {
	// DateLocation overrides the location used to render date cells.
	DateLocation *time.Location
}

// EscapeField converts one value into a syntactically valid CSV field.
// nil (and typed nil pointers) become the empty string. Any other value is
// stringified; if the result contains a comma, a double quote or a line
// break the field is wrapped in double quotes and internal double quotes
// are doubled.
func EscapeField(value any) string {
	s, ok := stringify(value)
	if !ok {
		return ""
	}

	if strings.ContainsAny(s, ",\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// Generate builds a complete CSV document for the given transactions: the
// fixed header row followed by one row per record, every field passed
// through EscapeField. An empty input yields the header row alone, with no
// trailing newline.
func Generate(transactions []models.Transaction, opts Options) string {
	loc := opts.DateLocation
	if loc == nil {
		loc = buenosAires
	}

	var b strings.Builder
	writeRow(&b, header)

	for i := range transactions {
		t := &transactions[i]
		b.WriteByte('\n')
		writeRow(&b, []string{
			EscapeField(t.ID),
			EscapeField(t.Amount),
			EscapeField(t.Card),
			EscapeField(t.Installments),
			EscapeField(t.PaymentMethod),
			EscapeField(t.CreatedAt.Format(dateCellLayout, loc)),
			EscapeField(t.UpdatedAt.Format(dateCellLayout, loc)),
		})
	}

	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f)
	}
}

// BuildHeaders returns the HTTP response headers for a CSV download. The
// attachment filename is "<stem>_<YYYY-MM-DD>.csv" where the stem is
// customFilename when present, else filename, else DefaultFilename.
// customFilename always wins when both are supplied.
func BuildHeaders(filename, customFilename string) map[string]string {
	return buildHeadersAt(filename, customFilename, time.Now())
}

func buildHeadersAt(filename, customFilename string, now time.Time) map[string]string {
	stem := DefaultFilename
	if filename != "" {
		stem = filename
	}
	if customFilename != "" {
		stem = customFilename
	}

	return map[string]string{
		"Content-Type":        "text/csv; charset=utf-8",
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s_%s.csv", stem, now.Format("2006-01-02"))),
		"Cache-Control":       "no-cache, no-store, must-revalidate",
		"Pragma":              "no-cache",
		"Expires":             "0",
	}
}
