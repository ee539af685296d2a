package api

import (
	"context"

	"github.com/facturadash/facturadash/internal/client/models"
)

// TokenSource supplies the current plaintext bearer credential, or "" when
// no session exists. The session manager owns the credential; the client
// only reads it per request.
type TokenSource func(ctx context.Context) string

// Client is the backend API contract.
type Client interface {
	Close() error

	// Auth
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	Register(ctx context.Context, reg models.Registration) (string, *models.User, error)

	// Invoices
	Invoices(ctx context.Context, q models.ListQuery) (*models.Page[models.Invoice], error)
	Invoice(ctx context.Context, id int64) (*models.InvoiceDetail, error)
	UpdateInvoiceStatus(ctx context.Context, id int64, status models.InvoiceStatus, comment string) (*models.StatusChange, error)
	SearchInvoices(ctx context.Context, text string, filters map[string]string) (*models.Page[models.Invoice], error)
	Suggestions(ctx context.Context, text, kind string) (*models.Suggestions, error)

	// Emitters
	Emitters(ctx context.Context, q models.ListQuery) (*models.Page[models.Emitter], error)
	TopEmitters(ctx context.Context, metric string, limit int) ([]models.EmitterTop, error)
	Emitter(ctx context.Context, ruc string) (*models.EmitterDetail, error)
	EmitterInvoices(ctx context.Context, ruc string, q models.ListQuery) (*models.Page[models.Invoice], error)

	// Companies
	Companies(ctx context.Context, f models.CompanyFilter) (*models.Page[models.Company], error)
	Company(ctx context.Context, id int64) (*models.Company, error)
	CompanyByRUC(ctx context.Context, ruc string) (*models.Company, error)
	CreateCompany(ctx context.Context, c models.CompanyCreate) (*models.Company, error)
	UpdateCompany(ctx context.Context, id int64, u models.CompanyUpdate) (*models.Company, error)
	CompanyUsers(ctx context.Context, id int64, q models.ListQuery) (*models.Page[models.User], error)
	CompanyCount(ctx context.Context, active *bool) (int64, error)

	// Dashboard
	DashboardOverview(ctx context.Context) (*models.DashboardOverview, error)
	DashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error)
	DashboardCharts(ctx context.Context) (*models.DashboardCharts, error)
	DashboardData(ctx context.Context) (*models.DashboardData, error)

	// Reports
	DashboardReport(ctx context.Context, q models.ReportQuery) (*models.DashboardReport, error)
	SalesReport(ctx context.Context, q models.ReportQuery) (*models.SalesReport, error)
	OCRReport(ctx context.Context, q models.ReportQuery) (*models.OCRReport, error)
	EmitterActivityReport(ctx context.Context, q models.ReportQuery) (*models.EmitterActivityReport, error)
	ExportReport(ctx context.Context, req models.ExportRequest) (string, error)
}
