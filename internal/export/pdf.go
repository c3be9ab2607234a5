package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hrms/internal/store"
)

// Summary is the material for the one-page dashboard report.
type Summary struct {
	GeneratedAt     time.Time
	TotalEmployees  int
	Headcount       []store.NameCount
	Pipeline        []store.NameCount
	AssetValues     store.Stats
	PendingLeave    int
	PendingExpenses int
}

// SummaryPDF renders the dashboard summary as a PDF document.
func SummaryPDF(sum Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "HR Dashboard Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", sum.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Employees: %d", sum.TotalEmployees))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Headcount by department")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, row := range sum.Headcount {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", row.Name, row.Count))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Recruiting pipeline")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, row := range sum.Pipeline {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", row.Name, row.Count))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Assets")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total value: %.2f", sum.AssetValues.Sum))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Average value: %.2f", sum.AssetValues.Avg))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Pending leave requests: %d", sum.PendingLeave))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pending expenses: %d", sum.PendingExpenses))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render summary pdf: %w", err)
	}
	return buf.Bytes(), nil
}
