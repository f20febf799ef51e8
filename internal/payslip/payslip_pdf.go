package payslip

import (
	"bytes"
	"fmt"
	"strings"
)

// Render lays the payslip out as a single A4 page.
func Render(p Payslip) ([]byte, error) {
	lines := []string{
		p.Institution.Name,
	}
	if p.Institution.Address != "" {
		lines = append(lines, p.Institution.Address)
	}
	if p.Institution.RegistrationNumber != "" || p.Institution.TaxID != "" {
		lines = append(lines, fmt.Sprintf("Reg. No. %s   Tax ID %s", p.Institution.RegistrationNumber, p.Institution.TaxID))
	}

	lines = append(lines,
		"",
		"PAYSLIP - "+p.PeriodLabel,
		fmt.Sprintf("Employee: %s (%s)", p.Employee.Name, p.Employee.ID),
		"Department: "+p.Employee.Department,
		fmt.Sprintf("Period: %s to %s", p.PeriodStart, p.PeriodEnd),
	)
	if p.RunNumber != "" {
		lines = append(lines, "Run: "+p.RunNumber)
	}
	if p.DaysPaid != "" {
		lines = append(lines, "Days paid: "+p.DaysPaid)
	}

	lines = append(lines, "", "Earnings")
	for _, item := range p.Earnings {
		lines = append(lines, fmt.Sprintf("  %-40s %14s", item.Label, item.Amount))
	}
	lines = append(lines, "Deductions")
	for _, item := range p.Deductions {
		lines = append(lines, fmt.Sprintf("  %-40s %14s", item.Label, item.Amount))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("%-42s %14s", "Gross pay", p.GrossPay),
		fmt.Sprintf("%-42s %14s", "Total deductions", p.TotalDeductions),
		fmt.Sprintf("%-42s %14s", "Net pay", p.NetPay),
		"",
		fmt.Sprintf("Status: %s   Issued: %s", p.StatusLabel, p.IssuedAt),
		"Verification: "+p.Reference,
	)

	return buildSinglePagePDF(lines)
}

func buildSinglePagePDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

// pdfEscape also drops non-ASCII runes, which the standard Type1 fonts cannot show.
func pdfEscape(v string) string {
	var b strings.Builder
	for _, r := range v {
		switch {
		case r == '\\' || r == '(' || r == ')':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r > 0x7e:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
