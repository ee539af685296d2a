package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/facturadash/facturadash/internal/client/api"
	"github.com/facturadash/facturadash/internal/client/models"
)

// printfFn is a test seam for formatted user-facing output.
var printfFn = fmt.Printf

// reportError turns a backend error into a readable line for the user and
// logs the detail.
func (a *App) reportError(ctx context.Context, err error) {
	var reqErr *api.RequestError
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		printlnFn("Session expired, please login again")
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Cannot reach the server, try again later")
	case errors.As(err, &reqErr) && reqErr.Message != "":
		printlnFn("Request failed:", reqErr.Message)
	default:
		printlnFn("Request failed:", err.Error())
	}
	a.logger.Warn(ctx, "command failed", "error", err.Error())
}

// truncate shortens s to max runes, not bytes, so accented names are never
// cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func printInvoiceRows(items []models.Invoice) {
	printfFn("%-6s %-16s %-24s %12s %-10s\n", "ID", "NUMBER", "EMITTER", "TOTAL", "STATUS")
	for _, inv := range items {
		printfFn("%-6d %-16s %-24s %12.2f %-10s\n",
			inv.ID, truncate(inv.Number, 16), truncate(inv.EmitterName, 24), inv.Total, inv.Status)
	}
}

func printPageFooter(p models.Pagination) {
	if p.TotalPages > 0 {
		printfFn("Page %d of %d (%d items)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
	}
}
