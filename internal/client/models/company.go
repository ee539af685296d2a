package models

// Company is a tenant whose inbound invoices the backend processes.
type Company struct {
	ID              int64   `json:"id"`
	Name            string  `json:"nombre"`
	RUC             string  `json:"ruc"`
	ProcessingEmail string  `json:"email_procesamiento"`
	Address         *string `json:"direccion,omitempty"`
	Phone           *string `json:"telefono,omitempty"`
	Active          bool    `json:"activo"`
	Plan            string  `json:"plan"`
	CreatedAt       string  `json:"created_at,omitempty"`
	UpdatedAt       string  `json:"updated_at,omitempty"`
}

// CompanyCreate is the payload for registering a new company.
type CompanyCreate struct {
	Name            string `json:"nombre"`
	RUC             string `json:"ruc"`
	ProcessingEmail string `json:"email_procesamiento"`
	Address         string `json:"direccion,omitempty"`
	Phone           string `json:"telefono,omitempty"`
	Plan            string `json:"plan,omitempty"`
}

// CompanyUpdate carries a partial update; nil fields are left unchanged.
type CompanyUpdate struct {
	Name            *string `json:"nombre,omitempty"`
	RUC             *string `json:"ruc,omitempty"`
	ProcessingEmail *string `json:"email_procesamiento,omitempty"`
	Address         *string `json:"direccion,omitempty"`
	Phone           *string `json:"telefono,omitempty"`
	Active          *bool   `json:"activo,omitempty"`
	Plan            *string `json:"plan,omitempty"`
}

// CompanyFilter narrows company listings.
type CompanyFilter struct {
	Active *bool
	Plan   string
	Search string
	Limit  int
	Offset int
}
