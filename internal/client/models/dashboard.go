package models

import "encoding/json"

// DashboardOverview is the headline numbers block of the dashboard.
type DashboardOverview struct {
	TotalInvoices     int64             `json:"total_facturas"`
	InvoicesThisMonth int64             `json:"facturas_mes_actual"`
	TotalAmount       float64           `json:"total_monto"`
	AmountThisMonth   float64           `json:"monto_mes_actual"`
	AverageAmount     float64           `json:"promedio_factura"`
	PendingInvoices   int64             `json:"facturas_pendientes"`
	ProcessedInvoices int64             `json:"facturas_procesadas"`
	FailedInvoices    int64             `json:"facturas_error"`
	ReviewedInvoices  int64             `json:"facturas_revisadas"`
	AverageConfidence float64           `json:"confianza_ocr_promedio"`
	ActiveEmitters    int64             `json:"emisores_activos"`
	Alerts            []json.RawMessage `json:"alertas"`
}

// DashboardMetrics is the aggregate-metrics block of the dashboard.
type DashboardMetrics struct {
	TotalInvoices     int64   `json:"total_facturas"`
	TotalAmount       float64 `json:"monto_total"`
	AverageAmount     float64 `json:"promedio_factura"`
	MinAmount         float64 `json:"monto_minimo"`
	MaxAmount         float64 `json:"monto_maximo"`
	TotalTax          float64 `json:"total_itbms"`
	AverageConfidence float64 `json:"confianza_promedio"`
	UniqueEmitters    int64   `json:"emisores_unicos"`
}

// InvoicesPerMonth is one bucket of the monthly invoice series.
type InvoicesPerMonth struct {
	Month       string  `json:"mes"`
	Count       int64   `json:"cantidad"`
	TotalAmount float64 `json:"monto_total"`
}

// TopEmitterChart is one row of the top-emitters chart.
type TopEmitterChart struct {
	Emitter string  `json:"emisor"`
	RUC     string  `json:"ruc"`
	Count   int64   `json:"cantidad"`
	Amount  float64 `json:"monto"`
}

// StatusDistribution is one slice of the status breakdown chart.
type StatusDistribution struct {
	Status     string  `json:"estado"`
	Count      int64   `json:"cantidad"`
	Percentage float64 `json:"porcentaje"`
}

// WeekdayActivity is one bar of the weekly activity chart.
type WeekdayActivity struct {
	Day   string `json:"dia"`
	Count int64  `json:"cantidad"`
}

// OCRTrendPoint is one point of the OCR confidence trend.
type OCRTrendPoint struct {
	Date       string  `json:"fecha"`
	Confidence float64 `json:"confianza"`
	Total      int64   `json:"total"`
}

// DashboardCharts bundles all chart series for the dashboard.
type DashboardCharts struct {
	InvoicesPerMonth   []InvoicesPerMonth   `json:"facturas_por_mes"`
	TopEmitters        []TopEmitterChart    `json:"top_emisores"`
	StatusDistribution []StatusDistribution `json:"distribucion_estado"`
	WeekdayActivity    []WeekdayActivity    `json:"actividad_semanal"`
	OCRTrend           []OCRTrendPoint      `json:"tendencia_ocr"`
}

// DashboardData is the combined single-call dashboard payload.
type DashboardData struct {
	Overview  DashboardOverview `json:"overview"`
	Charts    DashboardCharts   `json:"charts"`
	Alerts    []json.RawMessage `json:"alertas"`
	Timestamp string            `json:"timestamp"`
}
