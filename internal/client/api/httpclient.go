package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/facturadash/facturadash/internal/client/models"
	"github.com/facturadash/facturadash/internal/common"
	"github.com/facturadash/facturadash/internal/logging"
)

// maxResponseBytes caps how much of a response body is read. Backend list
// payloads are small; anything larger is a broken or hostile response.
const maxResponseBytes = 8 << 20

// HTTPClient is the HTTP/JSON implementation of Client.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	logger  logging.Logger
}

// NewHTTPClient builds a client for the backend at baseURL. tokens may
// return "" when no session exists; requests are then sent unauthenticated.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Message    string             `json:"message"`
	Error      string             `json:"error"`
	Pagination *models.Pagination `json:"pagination"`
}

func (e *envelope) failureMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do performs one request and maps the outcome: network failure to
// ErrUnavailable, 401 to ErrUnauthorized, any other non-success to
// *RequestError. On success the decoded envelope is returned.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if token := c.tokens(ctx); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "backend unreachable", "method", method, "path", path, "error", err.Error())
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %s", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	var env envelope
	if len(raw) > 0 {
		// a malformed body falls through to the status check below
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{Status: resp.StatusCode, Message: env.failureMessage()}
	}
	if !env.Success {
		return nil, &RequestError{Status: resp.StatusCode, Message: env.failureMessage()}
	}
	return &env, nil
}

// decodeData unmarshals an envelope's data block into T.
func decodeData[T any](env *envelope) (*T, error) {
	var v T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return nil, fmt.Errorf("decoding response data: %w", err)
		}
	}
	return &v, nil
}

// getPage fetches a list endpoint and assembles a Page from the envelope's
// data and pagination blocks.
func getPage[T any](ctx context.Context, c *HTTPClient, path string, query url.Values) (*models.Page[T], error) {
	env, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	var items []T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, fmt.Errorf("decoding response data: %w", err)
		}
	}

	page := &models.Page[T]{Items: items}
	if env.Pagination != nil {
		page.Pagination = *env.Pagination
	}
	return page, nil
}

func listQueryValues(q models.ListQuery) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", string(q.SortOrder))
	}
	if q.Status != "" {
		v.Set("estado", string(q.Status))
	}
	if q.DateFrom != "" {
		v.Set("fechaInicio", q.DateFrom)
	}
	if q.DateTo != "" {
		v.Set("fechaFin", q.DateTo)
	}
	if q.EmitterRUC != "" {
		v.Set("emisor_ruc", q.EmitterRUC)
	}
	if q.SubtotalMin > 0 {
		v.Set("subtotal_min", strconv.FormatFloat(q.SubtotalMin, 'f', -1, 64))
	}
	if q.SubtotalMax > 0 {
		v.Set("subtotal_max", strconv.FormatFloat(q.SubtotalMax, 'f', -1, 64))
	}
	if q.OCRMin > 0 {
		v.Set("confianza_ocr", strconv.FormatFloat(q.OCRMin, 'f', -1, 64))
	}
	return v
}

func reportQueryValues(q models.ReportQuery) url.Values {
	v := url.Values{}
	if q.DateFrom != "" {
		v.Set("fechaInicio", q.DateFrom)
	}
	if q.DateTo != "" {
		v.Set("fechaFin", q.DateTo)
	}
	if q.GroupBy != "" {
		v.Set("agruparPor", q.GroupBy)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// ---- auth ----

type authData struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	body := map[string]string{"email": email, "password": password}

	env, err := c.do(ctx, http.MethodPost, "/auth/login", nil, body)
	if err != nil {
		return "", nil, err
	}

	data, err := decodeData[authData](env)
	if err != nil {
		return "", nil, err
	}
	return data.Token, data.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	return err
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.User](env)
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (string, *models.User, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/register", nil, reg)
	if err != nil {
		return "", nil, err
	}

	data, err := decodeData[authData](env)
	if err != nil {
		return "", nil, err
	}
	return data.Token, data.User, nil
}

// ---- invoices ----

func (c *HTTPClient) Invoices(ctx context.Context, q models.ListQuery) (*models.Page[models.Invoice], error) {
	return getPage[models.Invoice](ctx, c, "/facturas", listQueryValues(q))
}

func (c *HTTPClient) Invoice(ctx context.Context, id int64) (*models.InvoiceDetail, error) {
	env, err := c.do(ctx, http.MethodGet, "/facturas/"+strconv.FormatInt(id, 10), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.InvoiceDetail](env)
}

func (c *HTTPClient) UpdateInvoiceStatus(ctx context.Context, id int64, status models.InvoiceStatus, comment string) (*models.StatusChange, error) {
	body := map[string]string{"estado": string(status)}
	if comment != "" {
		body["comentario"] = comment
	}

	env, err := c.do(ctx, http.MethodPut, "/facturas/"+strconv.FormatInt(id, 10)+"/estado", nil, body)
	if err != nil {
		return nil, err
	}
	return decodeData[models.StatusChange](env)
}

func (c *HTTPClient) SearchInvoices(ctx context.Context, text string, filters map[string]string) (*models.Page[models.Invoice], error) {
	v := url.Values{}
	v.Set("search", text)
	for k, val := range filters {
		v.Set(k, val)
	}
	return getPage[models.Invoice](ctx, c, "/facturas/search", v)
}

func (c *HTTPClient) Suggestions(ctx context.Context, text, kind string) (*models.Suggestions, error) {
	v := url.Values{}
	v.Set("search", text)
	if kind != "" {
		v.Set("tipo", kind)
	}

	env, err := c.do(ctx, http.MethodGet, "/facturas/suggestions", v, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.Suggestions](env)
}

// ---- emitters ----

func (c *HTTPClient) Emitters(ctx context.Context, q models.ListQuery) (*models.Page[models.Emitter], error) {
	return getPage[models.Emitter](ctx, c, "/emisores", listQueryValues(q))
}

func (c *HTTPClient) TopEmitters(ctx context.Context, metric string, limit int) ([]models.EmitterTop, error) {
	v := url.Values{}
	if metric != "" {
		v.Set("metric", metric)
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}

	env, err := c.do(ctx, http.MethodGet, "/emisores/top", v, nil)
	if err != nil {
		return nil, err
	}

	top, err := decodeData[[]models.EmitterTop](env)
	if err != nil {
		return nil, err
	}
	return *top, nil
}

func (c *HTTPClient) Emitter(ctx context.Context, ruc string) (*models.EmitterDetail, error) {
	env, err := c.do(ctx, http.MethodGet, "/emisores/"+url.PathEscape(ruc), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.EmitterDetail](env)
}

func (c *HTTPClient) EmitterInvoices(ctx context.Context, ruc string, q models.ListQuery) (*models.Page[models.Invoice], error) {
	return getPage[models.Invoice](ctx, c, "/emisores/"+url.PathEscape(ruc)+"/facturas", listQueryValues(q))
}

// ---- companies ----

func (c *HTTPClient) Companies(ctx context.Context, f models.CompanyFilter) (*models.Page[models.Company], error) {
	v := url.Values{}
	if f.Active != nil {
		v.Set("activo", strconv.FormatBool(*f.Active))
	}
	if f.Plan != "" {
		v.Set("plan", f.Plan)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		v.Set("offset", strconv.Itoa(f.Offset))
	}
	return getPage[models.Company](ctx, c, "/empresas", v)
}

func (c *HTTPClient) Company(ctx context.Context, id int64) (*models.Company, error) {
	env, err := c.do(ctx, http.MethodGet, "/empresas/"+strconv.FormatInt(id, 10), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.Company](env)
}

func (c *HTTPClient) CompanyByRUC(ctx context.Context, ruc string) (*models.Company, error) {
	env, err := c.do(ctx, http.MethodGet, "/empresas/ruc/"+url.PathEscape(ruc), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.Company](env)
}

func (c *HTTPClient) CreateCompany(ctx context.Context, payload models.CompanyCreate) (*models.Company, error) {
	env, err := c.do(ctx, http.MethodPost, "/empresas", nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeData[models.Company](env)
}

func (c *HTTPClient) UpdateCompany(ctx context.Context, id int64, payload models.CompanyUpdate) (*models.Company, error) {
	env, err := c.do(ctx, http.MethodPut, "/empresas/"+strconv.FormatInt(id, 10), nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeData[models.Company](env)
}

func (c *HTTPClient) CompanyUsers(ctx context.Context, id int64, q models.ListQuery) (*models.Page[models.User], error) {
	return getPage[models.User](ctx, c, "/empresas/"+strconv.FormatInt(id, 10)+"/usuarios", listQueryValues(q))
}

func (c *HTTPClient) CompanyCount(ctx context.Context, active *bool) (int64, error) {
	v := url.Values{}
	if active != nil {
		v.Set("activo", strconv.FormatBool(*active))
	}

	env, err := c.do(ctx, http.MethodGet, "/empresas/count", v, nil)
	if err != nil {
		return 0, err
	}

	type countData struct {
		Total int64 `json:"total"`
	}
	data, err := decodeData[countData](env)
	if err != nil {
		return 0, err
	}
	return data.Total, nil
}

// ---- dashboard ----

func (c *HTTPClient) DashboardOverview(ctx context.Context) (*models.DashboardOverview, error) {
	env, err := c.do(ctx, http.MethodGet, "/dashboard/overview", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.DashboardOverview](env)
}

func (c *HTTPClient) DashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error) {
	env, err := c.do(ctx, http.MethodGet, "/dashboard/metrics", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.DashboardMetrics](env)
}

func (c *HTTPClient) DashboardCharts(ctx context.Context) (*models.DashboardCharts, error) {
	env, err := c.do(ctx, http.MethodGet, "/dashboard/charts", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.DashboardCharts](env)
}

func (c *HTTPClient) DashboardData(ctx context.Context) (*models.DashboardData, error) {
	env, err := c.do(ctx, http.MethodGet, "/dashboard/data", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.DashboardData](env)
}

// ---- reports ----

func (c *HTTPClient) DashboardReport(ctx context.Context, q models.ReportQuery) (*models.DashboardReport, error) {
	env, err := c.do(ctx, http.MethodGet, "/reportes/dashboard", reportQueryValues(q), nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.DashboardReport](env)
}

func (c *HTTPClient) SalesReport(ctx context.Context, q models.ReportQuery) (*models.SalesReport, error) {
	env, err := c.do(ctx, http.MethodGet, "/reportes/ventas", reportQueryValues(q), nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.SalesReport](env)
}

func (c *HTTPClient) OCRReport(ctx context.Context, q models.ReportQuery) (*models.OCRReport, error) {
	env, err := c.do(ctx, http.MethodGet, "/reportes/ocr-performance", reportQueryValues(q), nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.OCRReport](env)
}

func (c *HTTPClient) EmitterActivityReport(ctx context.Context, q models.ReportQuery) (*models.EmitterActivityReport, error) {
	env, err := c.do(ctx, http.MethodGet, "/reportes/actividad-emisores", reportQueryValues(q), nil)
	if err != nil {
		return nil, err
	}
	return decodeData[models.EmitterActivityReport](env)
}

func (c *HTTPClient) ExportReport(ctx context.Context, req models.ExportRequest) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/reportes/export", nil, req)
	if err != nil {
		return "", err
	}

	type exportData struct {
		DownloadURL string `json:"download_url"`
	}
	data, err := decodeData[exportData](env)
	if err != nil {
		return "", err
	}
	return data.DownloadURL, nil
}
