package export

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/framlopez/uala-transactions-api/internal/models"
)

type CSVExportTestSuite struct {
	suite.Suite
}

func TestCSVExportSuite(t *testing.T) {
	suite.Run(t, new(CSVExportTestSuite))
}

// Field codec tests

func (s *CSVExportTestSuite) TestEscapeField_NilValues() {
	s.Equal("", EscapeField(nil))

	var p *string
	s.Equal("", EscapeField(p))
}

func (s *CSVExportTestSuite) TestEscapeField_PlainValues() {
	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{"plain string", "hello", "hello"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 3, "3"},
		{"float", 100.5, "100.5"},
		{"decimal", decimal.NewFromFloat(1250.75), "1250.75"},
		{"empty string", "", ""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, EscapeField(tc.value))
		})
	}
}

func (s *CSVExportTestSuite) TestEscapeField_QuotesSpecialCharacters() {
	testCases := []struct {
		name     string
		value    string
		expected string
	}{
		{"comma", "a,b", `"a,b"`},
		{"double quote", `say "hi"`, `"say ""hi"""`},
		{"newline", "line1\nline2", "\"line1\nline2\""},
		{"carriage return", "line1\rline2", "\"line1\rline2\""},
		{"only quotes", `""`, `""""""`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			escaped := EscapeField(tc.value)
			s.Equal(tc.expected, escaped)
			s.True(strings.HasPrefix(escaped, `"`))
			s.True(strings.HasSuffix(escaped, `"`))
		})
	}
}

// Generator tests

func transactionFixture() models.Transaction {
	return models.Transaction{
		ID:            "tx-001",
		Amount:        decimal.NewFromFloat(1500.50),
		Card:          models.CardVisa,
		Installments:  3,
		CreatedAt:     models.NewParsedDate(time.Date(2024, 6, 14, 13, 30, 0, 0, time.UTC)),
		UpdatedAt:     models.NewParsedDate(time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)),
		PaymentMethod: models.PaymentMethodQR,
	}
}

func (s *CSVExportTestSuite) TestGenerate_EmptyInput() {
	document := Generate(nil, Options{})

	lines := strings.Split(document, "\n")
	s.Len(lines, 1)
	s.Equal("ID,Amount,Card,Installments,Payment Method,Created At,Updated At", lines[0])
}

func (s *CSVExportTestSuite) TestGenerate_SingleTransaction() {
	document := Generate([]models.Transaction{transactionFixture()}, Options{DateLocation: time.UTC})

	lines := strings.Split(document, "\n")
	s.Len(lines, 2)

	fields := strings.Split(lines[1], ",")
	s.Equal("tx-001", fields[0])
	s.Equal("1500.5", fields[1])
	s.Equal("visa", fields[2])
	s.Equal("3", fields[3])
	s.Equal("qr", fields[4])
	s.Equal(`"14/06/2024, 13:30"`, fields[5]+","+fields[6])
	s.Equal(`"15/06/2024, 08:00"`, fields[7]+","+fields[8])
}

func (s *CSVExportTestSuite) TestGenerate_DatesRenderedInBuenosAires() {
	t := transactionFixture()
	document := Generate([]models.Transaction{t}, Options{})

	// 13:30 UTC is 10:30 in Buenos Aires (UTC-3).
	s.Contains(document, "14/06/2024, 10:30")
}

func (s *CSVExportTestSuite) TestGenerate_InvalidDatesDoNotBreakExport() {
	t := transactionFixture()
	t.CreatedAt = models.ParseDate("not-a-date")
	t.UpdatedAt = models.InvalidDate()

	document := Generate([]models.Transaction{t}, Options{})

	lines := strings.Split(document, "\n")
	s.Len(lines, 2)
	s.Contains(lines[1], "Invalid Date")
}

func (s *CSVExportTestSuite) TestGenerate_PreservesOrder() {
	first := transactionFixture()
	second := transactionFixture()
	second.ID = "tx-002"

	document := Generate([]models.Transaction{first, second}, Options{})

	lines := strings.Split(document, "\n")
	s.Len(lines, 3)
	s.True(strings.HasPrefix(lines[1], "tx-001,"))
	s.True(strings.HasPrefix(lines[2], "tx-002,"))
}

// Header tests

func (s *CSVExportTestSuite) TestBuildHeaders_FilenamePrecedence() {
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		filename       string
		customFilename string
		expectedStem   string
	}{
		{"custom wins over filename", "a", "b", "b"},
		{"filename when no custom", "a", "", "a"},
		{"default when neither", "", "", "transactions"},
		{"custom alone", "", "b", "b"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			headers := buildHeadersAt(tc.filename, tc.customFilename, now)
			s.Equal(
				`attachment; filename="`+tc.expectedStem+`_2024-06-14.csv"`,
				headers["Content-Disposition"],
			)
		})
	}
}

func (s *CSVExportTestSuite) TestBuildHeaders_ContentTypeAndCaching() {
	headers := BuildHeaders("", "")

	s.Equal("text/csv; charset=utf-8", headers["Content-Type"])
	s.Equal("no-cache, no-store, must-revalidate", headers["Cache-Control"])
	s.Equal("no-cache", headers["Pragma"])
	s.Equal("0", headers["Expires"])
}
