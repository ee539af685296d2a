package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/facturadash/facturadash/internal/client/models"
	"github.com/facturadash/facturadash/internal/client/search"
)

// parseListArgs reads optional key=value filters off an invoice listing
// command, e.g.
//
//	invoices page=2 estado=pendiente desde=2026-01-01 emisor=20123456789
//
// Unknown keys are ignored.
func parseListArgs(args []string) models.ListQuery {
	q := models.ListQuery{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			continue
		}
		switch key {
		case "page":
			q.Page, _ = strconv.Atoi(value)
		case "limit":
			q.Limit, _ = strconv.Atoi(value)
		case "estado":
			q.Status = models.InvoiceStatus(value)
		case "desde":
			q.DateFrom = value
		case "hasta":
			q.DateTo = value
		case "emisor":
			q.EmitterRUC = value
		case "sort":
			q.SortBy = value
		case "order":
			q.SortOrder = models.SortOrder(strings.ToUpper(value))
		}
	}
	return q
}

// Invoices lists invoices, optionally filtered by key=value arguments.
func (a *App) Invoices(ctx context.Context, args []string) error {
	page, err := a.api.Invoices(ctx, parseListArgs(args))
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printInvoiceRows(page.Items)
	printPageFooter(page.Pagination)
	return nil
}

// Invoice shows one invoice with its line items and attached files.
func (a *App) Invoice(ctx context.Context, id string) error {
	invoiceID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Invalid invoice id:", id)
		return nil
	}

	detail, err := a.api.Invoice(ctx, invoiceID)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printfFn("Invoice %s (id %d)\n", detail.Number, detail.ID)
	printfFn("  Emitter:  %s (%s)\n", detail.EmitterName, detail.EmitterRUC)
	printfFn("  Date:     %s\n", detail.Date)
	printfFn("  Status:   %s\n", detail.Status)
	printfFn("  Subtotal: %.2f  Tax: %.2f  Total: %.2f\n", detail.Subtotal, detail.Tax, detail.Total)
	printfFn("  OCR confidence: %.1f%%\n", detail.OCRConfidence)

	if len(detail.Items) > 0 {
		printlnFn("Items:")
		for _, item := range detail.Items {
			printfFn("  %-30s %8.2f x %8.2f = %10.2f\n",
				truncate(item.Description, 30), item.Quantity, item.UnitPrice, item.Total)
		}
	}
	if len(detail.Files) > 0 {
		printlnFn("Files:")
		for _, f := range detail.Files {
			printfFn("  %s (%s, %d bytes)\n", f.Name, f.Type, f.SizeBytes)
		}
	}
	return nil
}

// SetStatus moves an invoice to a new processing state, with an optional
// comment.
func (a *App) SetStatus(ctx context.Context, args []string) error {
	invoiceID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Invalid invoice id:", args[0])
		return nil
	}

	status := models.InvoiceStatus(args[1])
	switch status {
	case models.StatusPending, models.StatusProcessed, models.StatusError, models.StatusReview:
	default:
		printlnFn("Invalid estado, expected one of: pendiente, procesado, error, revision")
		return nil
	}

	comment := strings.Join(args[2:], " ")

	change, err := a.api.UpdateInvoiceStatus(ctx, invoiceID, status, comment)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printfFn("Invoice %d: %s -> %s\n", invoiceID, change.PreviousStatus, change.NewStatus)
	return nil
}

// Search runs an advanced search. Filter tokens like estado:pendiente or
// emisor:20123456789 are extracted from the query; the rest is matched as
// free text.
func (a *App) Search(ctx context.Context, query string) error {
	parsed := search.Parse(query)

	page, err := a.api.SearchInvoices(ctx, parsed.Raw, parsed.Filters)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	if len(page.Items) == 0 {
		printlnFn("No invoices matched")
		return nil
	}
	printInvoiceRows(page.Items)
	printPageFooter(page.Pagination)
	return nil
}
