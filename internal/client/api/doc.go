// Package api contains the client-side contract for the invoice backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     authentication, invoices, emitters, companies, dashboard aggregates,
//     and reports.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that injects the
//     bearer credential from a TokenSource, tags every request with a
//     correlation id, and maps transport outcomes to sentinel errors.
//
// # Error Handling
//
// Callers match conditions with errors.Is / errors.As:
//
//   - ErrUnauthorized — the backend answered 401; the credential is
//     definitively invalid.
//   - ErrUnavailable — no usable response (network failure, timeout).
//   - *RequestError — the backend answered but reported failure; carries the
//     HTTP status and the backend's human-readable message.
//
// Only 401 is authoritative; every other failure is ambiguous and callers
// decide whether to keep optimistic local state.
package api
