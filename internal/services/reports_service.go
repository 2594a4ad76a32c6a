package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/domain"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/repositories"
)

type ReportsService struct {
	Stats repositories.StatsRepository
}

// TripsReport returns the profitability report rows.
func (s ReportsService) TripsReport() ([]domain.ReportRow, error) {
	return s.Stats.ReportTrips()
}

// TripsReportPDF renders the profitability report as a landscape PDF.
func (s ReportsService) TripsReportPDF() ([]byte, string, error) {
	rows, err := s.Stats.ReportTrips()
	if err != nil {
		return nil, "", err
	}
	return buildTripsReportPDF(rows)
}

func buildTripsReportPDF(rows []domain.ReportRow) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Trip Profitability Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Trip Profitability Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	headers := []string{"Trip", "Status", "Driver", "Unit", "Customer", "Miles", "Revenue", "Cost", "Profit", "Margin %"}
	widths := []float64{16, 26, 44, 20, 48, 18, 26, 26, 26, 22}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		margin := "-"
		if r.MarginPct != nil {
			margin = fmt.Sprintf("%.1f", *r.MarginPct)
		}
		cells := []string{
			fmt.Sprintf("%d", r.TripID),
			strOr(r.Status, "-"),
			strOr(r.DriverName, "-"),
			strOr(r.UnitNumber, "-"),
			strOr(r.CustomerName, "-"),
			milesOr(r.Miles),
			fmt.Sprintf("%.2f", r.Revenue),
			fmt.Sprintf("%.2f", r.TotalCost),
			fmt.Sprintf("%.2f", r.Profit),
			margin,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("trip-report_%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func strOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func milesOr(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
