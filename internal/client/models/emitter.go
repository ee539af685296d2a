package models

// Emitter aggregates per-emitter invoice statistics.
type Emitter struct {
	RUC               string  `json:"emisor_ruc"`
	Name              string  `json:"emisor_nombre"`
	Address           string  `json:"emisor_direccion"`
	Phone             string  `json:"emisor_telefono"`
	TotalInvoices     int64   `json:"total_facturas"`
	TotalAmount       float64 `json:"monto_total"`
	AverageAmount     float64 `json:"promedio_factura"`
	FirstInvoice      string  `json:"primera_factura"`
	LastInvoice       string  `json:"ultima_factura"`
	LastProcessedAt   string  `json:"ultimo_procesamiento"`
	PendingInvoices   int64   `json:"facturas_pendientes"`
	FailedInvoices    int64   `json:"facturas_error"`
	AverageConfidence float64 `json:"confianza_promedio"`
}

// EmitterDetail extends Emitter with processing breakdowns and rollups.
type EmitterDetail struct {
	Emitter

	ProcessedInvoices int64          `json:"facturas_procesadas"`
	ReviewedInvoices  int64          `json:"facturas_revisadas"`
	MinConfidence     float64        `json:"confianza_minima"`
	MaxConfidence     float64        `json:"confianza_maxima"`
	MonthlyStats      []MonthlyStats `json:"estadisticas_mensuales"`
	TopProducts       []TopProduct   `json:"top_productos"`
}

// MonthlyStats is a per-month invoice rollup for one emitter.
type MonthlyStats struct {
	Month         string  `json:"mes"`
	InvoiceCount  int64   `json:"cantidad_facturas"`
	TotalAmount   float64 `json:"monto_total"`
	AverageAmount float64 `json:"promedio_factura"`
}

// TopProduct is a frequently billed item for one emitter.
type TopProduct struct {
	Description   string  `json:"descripcion"`
	Frequency     int64   `json:"frecuencia"`
	TotalQuantity float64 `json:"cantidad_total"`
	AveragePrice  float64 `json:"precio_promedio"`
}

// EmitterTop is the compact row returned by the top-emitters ranking.
type EmitterTop struct {
	RUC           string  `json:"emisor_ruc"`
	Name          string  `json:"emisor_nombre"`
	TotalInvoices int64   `json:"total_facturas"`
	TotalAmount   float64 `json:"monto_total"`
	AverageAmount float64 `json:"promedio_factura"`
	LastInvoice   string  `json:"ultima_factura"`
}
