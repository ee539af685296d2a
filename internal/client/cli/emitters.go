package cli

import (
	"context"

	"github.com/facturadash/facturadash/internal/client/models"
)

// Emitters lists known invoice emitters; "emitters top" shows the ranking by
// billed amount instead.
func (a *App) Emitters(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "top" {
		return a.topEmitters(ctx)
	}

	page, err := a.api.Emitters(ctx, parseListArgs(args))
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printfFn("%-12s %-30s %8s %14s\n", "RUC", "NAME", "INVOICES", "TOTAL")
	for _, e := range page.Items {
		printfFn("%-12s %-30s %8d %14.2f\n", e.RUC, truncate(e.Name, 30), e.TotalInvoices, e.TotalAmount)
	}
	printPageFooter(page.Pagination)
	return nil
}

func (a *App) topEmitters(ctx context.Context) error {
	top, err := a.api.TopEmitters(ctx, "monto", 10)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	for i, e := range top {
		printfFn("%2d. %-30s %12.2f (%d invoices)\n", i+1, truncate(e.Name, 30), e.TotalAmount, e.TotalInvoices)
	}
	return nil
}

// Emitter shows one emitter's profile, monthly rollups, and most recent
// invoices.
func (a *App) Emitter(ctx context.Context, ruc string) error {
	detail, err := a.api.Emitter(ctx, ruc)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printfFn("%s (%s)\n", detail.Name, detail.RUC)
	printfFn("  Invoices: %d total, %d pending, %d failed\n",
		detail.TotalInvoices, detail.PendingInvoices, detail.FailedInvoices)
	printfFn("  Billed:   %.2f total, %.2f average\n", detail.TotalAmount, detail.AverageAmount)
	printfFn("  OCR confidence: %.1f%% avg (%.1f%% – %.1f%%)\n",
		detail.AverageConfidence, detail.MinConfidence, detail.MaxConfidence)

	if len(detail.MonthlyStats) > 0 {
		printlnFn("Monthly:")
		for _, m := range detail.MonthlyStats {
			printfFn("  %-8s %6d invoices %14.2f\n", m.Month, m.InvoiceCount, m.TotalAmount)
		}
	}
	if len(detail.TopProducts) > 0 {
		printlnFn("Top products:")
		for _, p := range detail.TopProducts {
			printfFn("  %-40s x%d\n", truncate(p.Description, 40), p.Frequency)
		}
	}

	recent, err := a.api.EmitterInvoices(ctx, ruc, models.ListQuery{Limit: 5, SortBy: "fecha_factura", SortOrder: models.SortDesc})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if len(recent.Items) > 0 {
		printlnFn("Recent invoices:")
		printInvoiceRows(recent.Items)
	}
	return nil
}
