// Package common contains shared constants and small utilities used across
// facturadash components.
package common

const (
	// CredentialStorageKey is the local-store key holding the bearer
	// credential, either raw (as issued by the backend) or obfuscated.
	CredentialStorageKey = "auth_token"

	// IdentityStorageKey is the local-store key holding the cached user
	// profile as JSON.
	IdentityStorageKey = "user"

	// AuthorizationHeaderName carries the bearer credential on outbound
	// requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-Id"
)
