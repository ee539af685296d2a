package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/facturadash/facturadash/internal/client/models"
)

// parseReportArgs reads optional key=value filters off a report command,
// e.g.
//
//	reports sales desde=2026-01-01 hasta=2026-06-30 por=mes
func parseReportArgs(args []string) models.ReportQuery {
	q := models.ReportQuery{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			continue
		}
		switch key {
		case "desde":
			q.DateFrom = value
		case "hasta":
			q.DateTo = value
		case "por":
			q.GroupBy = value
		case "limit":
			q.Limit, _ = strconv.Atoi(value)
		}
	}
	return q
}

// Reports runs one of the backend reports: sales, ocr, or activity.
func (a *App) Reports(ctx context.Context, args []string) error {
	query := parseReportArgs(args[1:])

	switch args[0] {
	case "dashboard":
		return a.dashboardReport(ctx, query)
	case "sales":
		return a.salesReport(ctx, query)
	case "ocr":
		return a.ocrReport(ctx, query)
	case "activity":
		return a.activityReport(ctx, query)
	default:
		printlnFn("Usage: reports <dashboard|sales|ocr|activity> [desde=YYYY-MM-DD] [hasta=YYYY-MM-DD] [por=dia|semana|mes]")
		return nil
	}
}

func (a *App) dashboardReport(ctx context.Context, q models.ReportQuery) error {
	report, err := a.api.DashboardReport(ctx, q)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	m := report.Metrics
	printfFn("Invoices: %d from %d emitters, %.2f total\n", m.TotalInvoices, m.UniqueEmitters, m.TotalAmount)
	for _, month := range report.InvoicesPerMonth {
		printfFn("  %-8s %6d %14.2f\n", month.Month, month.Count, month.TotalAmount)
	}
	if len(report.TopEmitters) > 0 {
		printlnFn("Top emitters:")
		for _, e := range report.TopEmitters {
			printfFn("  %-30s %6d %14.2f\n", truncate(e.Emitter, 30), e.Count, e.Amount)
		}
	}
	return nil
}

func (a *App) salesReport(ctx context.Context, q models.ReportQuery) error {
	report, err := a.api.SalesReport(ctx, q)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	s := report.Summary
	printfFn("Sales: %.2f from %d invoices (%.2f average)\n", s.TotalSales, s.TotalInvoices, s.AverageAmount)
	printfFn("  Subtotal %.2f  Discount %.2f  Tax %.2f\n", s.TotalSubtotal, s.TotalDiscount, s.TotalTax)

	for _, p := range report.Detail {
		printfFn("  %-10s %6d invoices %14.2f\n", p.Period, p.TotalInvoices, p.TotalSales)
	}
	return nil
}

func (a *App) ocrReport(ctx context.Context, q models.ReportQuery) error {
	report, err := a.api.OCRReport(ctx, q)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	s := report.Stats
	printfFn("Processed: %d invoices, %.1f%% success rate\n", s.TotalProcessed, s.SuccessRate)
	printfFn("Confidence: %.1f%% avg (%.1f%% – %.1f%%)\n", s.AvgConfidence, s.MinConfidence, s.MaxConfidence)
	printfFn("  high %d / medium %d / low %d, %d errors\n",
		s.HighConfidence, s.MediumConfidence, s.LowConfidence, s.ProcessingErrors)

	if len(report.ByProcessor) > 0 {
		printlnFn("By processor:")
		for _, p := range report.ByProcessor {
			printfFn("  %-20s %6d processed, %.1f%% confidence, %.1f%% success\n",
				p.ProcessedBy, p.TotalProcessed, p.AvgConfidence, p.SuccessRate)
		}
	}
	return nil
}

func (a *App) activityReport(ctx context.Context, q models.ReportQuery) error {
	report, err := a.api.EmitterActivityReport(ctx, q)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	for _, e := range report.Activity {
		printfFn("%-30s %6d invoices %12.2f (every %.1f days)\n",
			truncate(e.Name, 30), e.TotalInvoices, e.TotalAmount, e.BillingFrequency)
	}
	if len(report.NewEmitters) > 0 {
		printlnFn("New emitters this period:")
		for _, e := range report.NewEmitters {
			printfFn("  %-30s since %s (%d invoices)\n", truncate(e.Name, 30), e.FirstInvoice, e.PeriodInvoices)
		}
	}
	return nil
}

// Export asks the backend to materialize a report file and prints the
// download URL, e.g.
//
//	export ventas csv desde=2026-01-01
func (a *App) Export(ctx context.Context, args []string) error {
	format := models.ExportFormat(args[1])
	switch format {
	case models.ExportCSV, models.ExportExcel, models.ExportPDF:
	default:
		printlnFn("Invalid formato, expected one of: csv, excel, pdf")
		return nil
	}

	filters := map[string]string{}
	for _, arg := range args[2:] {
		if key, value, found := strings.Cut(arg, "="); found {
			filters[key] = value
		}
	}

	url, err := a.api.ExportReport(ctx, models.ExportRequest{
		Type:    args[0],
		Format:  format,
		Filters: filters,
	})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn("Download:", url)
	return nil
}
