package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// StubDocument carries the fields printed on a paycheck stub PDF. The caller
// maps domain records onto it so this package stays presentation-only.
type StubDocument struct {
	CompanyName   string
	WorkerName    string
	BatchNumber   string
	PayDate       string
	PeriodStart   string
	PeriodEnd     string
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	GrossPay      decimal.Decimal
	NetPay        decimal.Decimal
}

// RenderStub renders a single-page paycheck stub.
func RenderStub(doc StubDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, doc.CompanyName)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Paycheck Stub")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	writeRow(pdf, "Worker", doc.WorkerName)
	writeRow(pdf, "Batch", doc.BatchNumber)
	writeRow(pdf, "Pay date", doc.PayDate)
	writeRow(pdf, "Pay period", doc.PeriodStart+" to "+doc.PeriodEnd)
	pdf.Ln(4)

	writeRow(pdf, "Regular hours", doc.RegularHours.String())
	writeRow(pdf, "Overtime hours", doc.OvertimeHours.String())
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	writeRow(pdf, "Gross pay", doc.GrossPay.StringFixed(2))
	writeRow(pdf, "Net pay", doc.NetPay.StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render stub pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}
