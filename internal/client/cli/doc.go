// Package cli provides the interactive FacturaDash command-line client.
//
// It wires configuration, the local cache, the backend API client, and the
// session manager into an interactive REPL. Typical flow: reconcile the
// cached session on startup, then execute user commands against the backend.
//
// Key features:
//   - Login / Logout / Register / WhoAmI
//   - Browse invoices, change their status, advanced search
//   - Emitter and company directories
//   - Dashboard metrics and reports, with export
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
