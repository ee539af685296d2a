package models

import "encoding/json"

// InvoiceStatus enumerates the backend's processing states for an invoice.
type InvoiceStatus string

const (
	StatusPending   InvoiceStatus = "pendiente"
	StatusProcessed InvoiceStatus = "procesado"
	StatusError     InvoiceStatus = "error"
	StatusReview    InvoiceStatus = "revision"
)

// Invoice is a single OCR-processed invoice row.
type Invoice struct {
	ID            int64         `json:"id"`
	Number        string        `json:"numero_factura"`
	EmitterName   string        `json:"emisor_nombre"`
	EmitterRUC    string        `json:"emisor_ruc"`
	ReceiverName  string        `json:"receptor_nombre,omitempty"`
	Date          string        `json:"fecha_factura"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"descuento"`
	Tax           float64       `json:"itbms"`
	Total         float64       `json:"total"`
	Status        InvoiceStatus `json:"estado"`
	OCRConfidence float64       `json:"confianza_ocr"`
	ProcessedBy   string        `json:"procesado_por,omitempty"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}

// InvoiceItem is a line item belonging to an invoice.
type InvoiceItem struct {
	ID          int64   `json:"id"`
	InvoiceID   int64   `json:"factura_id"`
	Code        string  `json:"codigo"`
	Description string  `json:"descripcion"`
	Quantity    float64 `json:"cantidad"`
	Unit        string  `json:"unidad"`
	UnitPrice   float64 `json:"precio_unitario"`
	Discount    float64 `json:"descuento_item"`
	Tax         float64 `json:"impuesto_item"`
	Total       float64 `json:"total_item"`
	CreatedAt   string  `json:"created_at"`
}

// InvoiceFile is a source document attached to an invoice.
type InvoiceFile struct {
	ID        int64  `json:"id"`
	InvoiceID int64  `json:"factura_id"`
	Name      string `json:"nombre_archivo"`
	Type      string `json:"tipo_archivo"`
	URL       string `json:"s3_url"`
	SizeBytes int64  `json:"tamaño_bytes"`
	CreatedAt string `json:"created_at"`
}

// InvoiceDetail extends Invoice with line items, attached files, and the
// raw OCR payloads kept for auditing.
type InvoiceDetail struct {
	Invoice

	EmailFrom       string          `json:"email_from,omitempty"`
	EmailSubject    string          `json:"email_subject,omitempty"`
	EmailDate       string          `json:"email_date,omitempty"`
	StorageKey      string          `json:"s3_key,omitempty"`
	EmitterAddress  string          `json:"emisor_direccion,omitempty"`
	EmitterPhone    string          `json:"emisor_telefono,omitempty"`
	ReceiverRUC     string          `json:"receptor_ruc,omitempty"`
	ReceiverAddress string          `json:"receptor_direccion,omitempty"`
	Items           []InvoiceItem   `json:"items"`
	Files           []InvoiceFile   `json:"archivos"`
	RawData         json.RawMessage `json:"raw_data,omitempty"`
	Logs            []InvoiceLog    `json:"logs,omitempty"`
}

// InvoiceLog is a processing event recorded against an invoice.
type InvoiceLog struct {
	ID        int64           `json:"id"`
	InvoiceID int64           `json:"factura_id"`
	EventType string          `json:"tipo_evento"`
	Message   string          `json:"mensaje"`
	Details   json.RawMessage `json:"detalles,omitempty"`
	CreatedAt string          `json:"created_at"`
}

// StatusChange is the backend's acknowledgement of an invoice status update.
type StatusChange struct {
	PreviousStatus string `json:"estadoAnterior"`
	NewStatus      string `json:"estadoNuevo"`
	Comment        string `json:"comentario"`
	UpdatedAt      string `json:"actualizado_en"`
}

// Suggestions groups typeahead matches returned for a partial search query.
type Suggestions struct {
	Emitters []json.RawMessage `json:"emisores"`
	Invoices []json.RawMessage `json:"facturas"`
	Items    []json.RawMessage `json:"items"`
}
