package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturadash/facturadash/internal/client/models"
	"github.com/facturadash/facturadash/internal/common"
	"github.com/facturadash/facturadash/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewDefault(slog.LevelError)
}

func staticToken(token string) TokenSource {
	return func(ctx context.Context) string { return token }
}

func newTestClient(t *testing.T, handler http.Handler, token string) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewHTTPClient(srv.URL, 5*time.Second, staticToken(token), testLogger())
	t.Cleanup(func() { _ = c.Close() })
	return c, srv
}

func TestHTTPClientLogin(t *testing.T) {
	var gotPath, gotAuth, gotRequestID string

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get(common.AuthorizationHeaderName)
		gotRequestID = r.Header.Get(common.RequestIDHeaderName)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"token": "tok-123",
				"user": {"id": 7, "nombre": "Ana", "apellido": "Lopez", "email": "ana@example.com", "rol": "usuario"}
			}
		}`))
	}), "")

	token, user, err := c.Login(context.Background(), "ana@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "/auth/login", gotPath)
	assert.Empty(t, gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "tok-123", token)
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Ana Lopez", user.FullName())
}

func TestHTTPClientSendsBearerToken(t *testing.T) {
	var gotAuth string

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthorizationHeaderName)
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": 1, "email": "a@b.c"}}`))
	}), "tok-abc")

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestHTTPClientUnauthorized(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success": false, "message": "Token inválido"}`))
	}), "stale")

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPClientUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, staticToken(""), testLogger())
	defer c.Close()

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClientRequestError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "server error with message",
			status:     http.StatusInternalServerError,
			body:       `{"success": false, "message": "algo salió mal"}`,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "algo salió mal",
		},
		{
			name:       "not found with error field",
			status:     http.StatusNotFound,
			body:       `{"success": false, "error": "Factura no encontrada"}`,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Factura no encontrada",
		},
		{
			name:       "ok status but success false",
			status:     http.StatusOK,
			body:       `{"success": false, "message": "estado no permitido"}`,
			wantStatus: http.StatusOK,
			wantMsg:    "estado no permitido",
		},
		{
			name:       "non-json body",
			status:     http.StatusBadGateway,
			body:       `upstream timeout`,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}), "tok")

			_, err := c.Invoice(context.Background(), 42)
			require.Error(t, err)

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.wantStatus, reqErr.Status)
			assert.Equal(t, tt.wantMsg, reqErr.Message)
		})
	}
}

func TestHTTPClientInvoicesPage(t *testing.T) {
	var gotQuery map[string]string

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"id": 1, "numero_factura": "F-001", "estado": "pendiente"},
				{"id": 2, "numero_factura": "F-002", "estado": "procesado"}
			],
			"pagination": {
				"currentPage": 2, "totalPages": 5, "totalItems": 90,
				"itemsPerPage": 20, "hasNextPage": true, "hasPrevPage": true
			}
		}`))
	}), "tok")

	page, err := c.Invoices(context.Background(), models.ListQuery{
		Page:       2,
		Limit:      20,
		SortBy:     "fecha_emision",
		SortOrder:  models.SortDesc,
		Status:     models.StatusPending,
		EmitterRUC: "20123456789",
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "F-001", page.Items[0].Number)
	assert.Equal(t, models.StatusProcessed, page.Items[1].Status)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, int64(90), page.Pagination.TotalItems)
	assert.True(t, page.Pagination.HasNextPage)

	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "20", gotQuery["limit"])
	assert.Equal(t, "fecha_emision", gotQuery["sortBy"])
	assert.Equal(t, "DESC", gotQuery["sortOrder"])
	assert.Equal(t, "pendiente", gotQuery["estado"])
	assert.Equal(t, "20123456789", gotQuery["emisor_ruc"])
}

func TestHTTPClientUpdateInvoiceStatus(t *testing.T) {
	var gotMethod, gotPath string

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {"estadoAnterior": "pendiente", "estadoNuevo": "revision"}
		}`))
	}), "tok")

	change, err := c.UpdateInvoiceStatus(context.Background(), 42, models.StatusReview, "montos ilegibles")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/facturas/42/estado", gotPath)
	assert.Equal(t, "pendiente", change.PreviousStatus)
	assert.Equal(t, "revision", change.NewStatus)
}

func TestHTTPClientSuggestions(t *testing.T) {
	var gotQuery map[string]string

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {"emisores": [{"emisor_nombre": "Acme"}], "facturas": [], "items": []}
		}`))
	}), "tok")

	sug, err := c.Suggestions(context.Background(), "acm", "emisor")
	require.NoError(t, err)

	assert.Equal(t, "acm", gotQuery["search"])
	assert.Equal(t, "emisor", gotQuery["tipo"])
	assert.Len(t, sug.Emitters, 1)
}

func TestHTTPClientCompanyCount(t *testing.T) {
	var gotQuery string

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"success": true, "data": {"total": 17}}`))
	}), "tok")

	active := true
	total, err := c.CompanyCount(context.Background(), &active)
	require.NoError(t, err)
	assert.Equal(t, int64(17), total)
	assert.Equal(t, "activo=true", gotQuery)
}

func TestHTTPClientExportReport(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reportes/export", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "data": {"download_url": "/exports/ventas-2026-08.csv"}}`))
	}), "tok")

	url, err := c.ExportReport(context.Background(), models.ExportRequest{
		Type:   "ventas",
		Format: models.ExportCSV,
	})
	require.NoError(t, err)
	assert.Equal(t, "/exports/ventas-2026-08.csv", url)
}
