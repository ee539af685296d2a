// Package models defines client-side data models mirroring the backend's
// JSON contracts. Field tags follow the backend's wire names.
package models

// Role classifies a user's access level.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "usuario"
	RoleAuditor    Role = "auditor"
)

// User is the authenticated user's profile as reported by the backend.
// A locally cached copy may be stale; the backend record is authoritative.
type User struct {
	ID         int64  `json:"id"`
	CompanyID  *int64 `json:"empresa_id"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Email      string `json:"email"`
	Role       Role   `json:"rol"`
	Active     bool   `json:"activo,omitempty"`
	LastAccess string `json:"ultimo_acceso,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// FullName returns "FirstName LastName" for display.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Registration is the payload for creating a new account together with its
// company.
type Registration struct {
	FirstName      string `json:"nombre"`
	LastName       string `json:"apellido"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	CompanyName    string `json:"empresa_nombre"`
	CompanyRUC     string `json:"empresa_ruc"`
	CompanyAddress string `json:"empresa_direccion,omitempty"`
	CompanyPhone   string `json:"empresa_telefono,omitempty"`
}
