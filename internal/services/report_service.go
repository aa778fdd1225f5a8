package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService renders the dashboard metrics as a downloadable PDF.
type ReportService struct {
	Dashboard *DashboardService
}

func NewReportService(dashboard *DashboardService) *ReportService {
	return &ReportService{Dashboard: dashboard}
}

// GenerateLeadsSummaryPDF collects every dashboard report and lays them out
// on a single page.
func (s *ReportService) GenerateLeadsSummaryPDF(ctx context.Context) ([]byte, error) {
	total, err := s.Dashboard.TotalCount(ctx)
	if err != nil {
		return nil, err
	}
	ratio, err := s.Dashboard.ConversionRatio(ctx)
	if err != nil {
		return nil, err
	}
	today, err := s.Dashboard.TodaysLeads(ctx)
	if err != nil {
		return nil, err
	}
	month, err := s.Dashboard.MonthLeads(ctx)
	if err != nil {
		return nil, err
	}
	required, err := s.Dashboard.TotalPaymentRequired(ctx)
	if err != nil {
		return nil, err
	}
	paid, err := s.Dashboard.TotalPaid(ctx)
	if err != nil {
		return nil, err
	}
	remaining, err := s.Dashboard.RemainingAmount(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Dashboard.LeadsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	bySource, err := s.Dashboard.LeadsBySource(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Lead Tracker - Dashboard Summary", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Pipeline overview
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Pipeline", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Total Leads: %d", total), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Conversion Ratio: %s%%", ratio), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Today: %d", today), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("This Month: %d", month), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Financials
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Financial Summary", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(63, 8, fmt.Sprintf("Required: %.2f", required), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Paid: %.2f", paid), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 8, fmt.Sprintf("Remaining: %.2f", remaining), "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	writeBreakdown(pdf, "Leads by Status", byStatus.Labels, byStatus.Counts)
	pdf.Ln(5)
	writeBreakdown(pdf, "Leads by Source", bySource.Labels, bySource.Counts)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBreakdown(pdf *gofpdf.Fpdf, title string, labels []string, counts []int64) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, title, "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(140, 7, "Value", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Count", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, label := range labels {
		if len(label) > 60 {
			label = label[:57] + "..."
		}
		pdf.CellFormat(140, 6, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%d", counts[i]), "1", 1, "C", false, 0, "")
	}
}
