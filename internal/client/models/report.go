package models

// ReportQuery carries the common report filters as sent to the backend.
type ReportQuery struct {
	DateFrom string
	DateTo   string
	GroupBy  string
	Limit    int
}

// DashboardReport is the report-flavored dashboard rollup.
type DashboardReport struct {
	Metrics          DashboardMetrics   `json:"metricas"`
	InvoicesPerMonth []InvoicesPerMonth `json:"facturas_por_mes"`
	TopEmitters      []TopEmitterChart  `json:"top_emisores"`
}

// SalesSummary is the totals block of the sales report.
type SalesSummary struct {
	TotalInvoices int64   `json:"total_facturas"`
	TotalSubtotal float64 `json:"total_subtotal"`
	TotalDiscount float64 `json:"total_descuento"`
	TotalTax      float64 `json:"total_itbms"`
	TotalSales    float64 `json:"total_ventas"`
	AverageAmount float64 `json:"promedio_factura"`
}

// SalesPeriod is one aggregation bucket of the sales report.
type SalesPeriod struct {
	Period         string  `json:"periodo"`
	TotalInvoices  int64   `json:"total_facturas"`
	TotalSubtotal  float64 `json:"total_subtotal"`
	TotalDiscount  float64 `json:"total_descuento"`
	TotalTax       float64 `json:"total_itbms"`
	TotalSales     float64 `json:"total_ventas"`
	AverageAmount  float64 `json:"promedio_factura"`
	MinSale        float64 `json:"venta_minima"`
	MaxSale        float64 `json:"venta_maxima"`
	ActiveEmitters int64   `json:"emisores_activos"`
}

// SalesReport is the full sales report payload.
type SalesReport struct {
	Summary SalesSummary  `json:"resumen"`
	Detail  []SalesPeriod `json:"detalle"`
}

// OCRStats summarizes OCR processing quality.
type OCRStats struct {
	TotalProcessed   int64   `json:"total_procesadas"`
	AvgConfidence    float64 `json:"confianza_promedio"`
	MinConfidence    float64 `json:"confianza_minima"`
	MaxConfidence    float64 `json:"confianza_maxima"`
	HighConfidence   int64   `json:"alta_confianza"`
	MediumConfidence int64   `json:"media_confianza"`
	LowConfidence    int64   `json:"baja_confianza"`
	ProcessingErrors int64   `json:"errores_procesamiento"`
	SuccessRate      float64 `json:"tasa_exito"`
}

// OCRDailyTrend is one day of OCR processing volume and quality.
type OCRDailyTrend struct {
	Date           string  `json:"fecha"`
	TotalProcessed int64   `json:"total_procesadas"`
	AvgConfidence  float64 `json:"confianza_promedio"`
	HighConfidence int64   `json:"alta_confianza"`
	Errors         int64   `json:"errores"`
}

// OCRProcessor breaks OCR performance down by processing engine.
type OCRProcessor struct {
	ProcessedBy    string  `json:"procesado_por"`
	TotalProcessed int64   `json:"total_procesadas"`
	AvgConfidence  float64 `json:"confianza_promedio"`
	HighConfidence int64   `json:"alta_confianza"`
	Errors         int64   `json:"errores"`
	SuccessRate    float64 `json:"tasa_exito"`
}

// OCRReport is the OCR performance report payload.
type OCRReport struct {
	Stats        OCRStats        `json:"estadisticas"`
	DailyTrend   []OCRDailyTrend `json:"tendencia_diaria"`
	ByProcessor  []OCRProcessor  `json:"por_procesador"`
}

// EmitterActivity is one emitter's activity profile over the report period.
type EmitterActivity struct {
	RUC              string  `json:"emisor_ruc"`
	Name             string  `json:"emisor_nombre"`
	TotalInvoices    int64   `json:"total_facturas"`
	TotalAmount      float64 `json:"monto_total"`
	AverageAmount    float64 `json:"promedio_factura"`
	FirstInvoice     string  `json:"primera_factura"`
	LastInvoice      string  `json:"ultima_factura"`
	DaysActive       int64   `json:"dias_activo"`
	DaysWithInvoices int64   `json:"dias_con_facturas"`
	BillingFrequency float64 `json:"frecuencia_facturacion"`
	AvgConfidence    float64 `json:"confianza_promedio"`
	FailedInvoices   int64   `json:"facturas_error"`
}

// NewEmitter is an emitter first seen during the report period.
type NewEmitter struct {
	RUC            string `json:"emisor_ruc"`
	Name           string `json:"emisor_nombre"`
	FirstInvoice   string `json:"primera_factura"`
	PeriodInvoices int64  `json:"facturas_periodo"`
}

// EmitterActivityReport is the emitter-activity report payload.
type EmitterActivityReport struct {
	Activity    []EmitterActivity `json:"actividad_emisores"`
	NewEmitters []NewEmitter      `json:"emisores_nuevos"`
}

// ExportFormat enumerates the report export formats the backend accepts.
type ExportFormat string

const (
	ExportCSV   ExportFormat = "csv"
	ExportExcel ExportFormat = "excel"
	ExportPDF   ExportFormat = "pdf"
)

// ExportRequest asks the backend to materialize a report for download.
type ExportRequest struct {
	Type    string            `json:"tipo"`
	Format  ExportFormat      `json:"formato"`
	Filters map[string]string `json:"filtros"`
}
