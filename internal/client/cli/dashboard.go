package cli

import (
	"context"

	"github.com/facturadash/facturadash/internal/client/models"
)

// Dashboard shows the headline overview; "dashboard charts" and
// "dashboard data" show the chart series and the combined payload.
func (a *App) Dashboard(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "charts":
			return a.dashboardCharts(ctx)
		case "data":
			return a.dashboardData(ctx)
		default:
			printlnFn("Usage: dashboard [charts|data]")
			return nil
		}
	}

	ov, err := a.api.DashboardOverview(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printOverview(ov)
	return nil
}

func printOverview(ov *models.DashboardOverview) {
	printfFn("Invoices: %d total, %d this month\n", ov.TotalInvoices, ov.InvoicesThisMonth)
	printfFn("Amount:   %.2f total, %.2f this month, %.2f average\n",
		ov.TotalAmount, ov.AmountThisMonth, ov.AverageAmount)
	printfFn("States:   %d pending, %d processed, %d failed, %d in review\n",
		ov.PendingInvoices, ov.ProcessedInvoices, ov.FailedInvoices, ov.ReviewedInvoices)
	printfFn("OCR confidence: %.1f%%  Active emitters: %d\n", ov.AverageConfidence, ov.ActiveEmitters)
	if len(ov.Alerts) > 0 {
		printfFn("Alerts: %d\n", len(ov.Alerts))
	}
}

func printCharts(ch *models.DashboardCharts) {
	if len(ch.InvoicesPerMonth) > 0 {
		printlnFn("Invoices per month:")
		for _, m := range ch.InvoicesPerMonth {
			printfFn("  %-8s %6d %14.2f\n", m.Month, m.Count, m.TotalAmount)
		}
	}
	if len(ch.StatusDistribution) > 0 {
		printlnFn("Status distribution:")
		for _, s := range ch.StatusDistribution {
			printfFn("  %-10s %6d (%.1f%%)\n", s.Status, s.Count, s.Percentage)
		}
	}
	if len(ch.TopEmitters) > 0 {
		printlnFn("Top emitters:")
		for _, e := range ch.TopEmitters {
			printfFn("  %-30s %6d %14.2f\n", truncate(e.Emitter, 30), e.Count, e.Amount)
		}
	}
	if len(ch.OCRTrend) > 0 {
		printlnFn("OCR trend:")
		for _, p := range ch.OCRTrend {
			printfFn("  %-12s %6.1f%% (%d invoices)\n", p.Date, p.Confidence, p.Total)
		}
	}
}

func (a *App) dashboardCharts(ctx context.Context) error {
	ch, err := a.api.DashboardCharts(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printCharts(ch)
	return nil
}

func (a *App) dashboardData(ctx context.Context) error {
	data, err := a.api.DashboardData(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printOverview(&data.Overview)
	printCharts(&data.Charts)
	if data.Timestamp != "" {
		printfFn("As of %s\n", data.Timestamp)
	}
	return nil
}

// Metrics shows the aggregate metrics block.
func (a *App) Metrics(ctx context.Context) error {
	m, err := a.api.DashboardMetrics(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printfFn("Invoices:  %d from %d emitters\n", m.TotalInvoices, m.UniqueEmitters)
	printfFn("Amount:    %.2f total, %.2f average (%.2f – %.2f)\n",
		m.TotalAmount, m.AverageAmount, m.MinAmount, m.MaxAmount)
	printfFn("Tax:       %.2f\n", m.TotalTax)
	printfFn("OCR confidence: %.1f%%\n", m.AverageConfidence)
	return nil
}
