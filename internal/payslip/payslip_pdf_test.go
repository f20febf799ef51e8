package payslip

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	pdf, err := Render(Payslip{
		Reference:   "PS-F-abc-12345678",
		Institution: Branding{Name: "St. Mary (Upper) School"},
		Employee:    EmployeeIdentity{ID: "e1", Name: "José"},
		PeriodLabel: "January 2025",
		Earnings:    []LineItem{{Label: "Basic salary", Amount: "10000.00"}},
		GrossPay:    "10000.00",
		NetPay:      "7500.00",
	})

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-1.4")))
	assert.True(t, bytes.HasSuffix(pdf, []byte("%%EOF")))
	assert.Contains(t, string(pdf), `St. Mary \(Upper\) School`)
	assert.Contains(t, string(pdf), "Jos?")
	assert.Contains(t, string(pdf), "PS-F-abc-12345678")
}

func TestPdfEscape(t *testing.T) {
	assert.Equal(t, `a\\b\(c\)`, pdfEscape(`a\b(c)`))
	assert.Equal(t, "tab?", pdfEscape("tab\t"))
}
