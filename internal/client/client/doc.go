// Package client talks to the remote Papers API.
//
// # Overview
//
// The package provides:
//  1. The Client interface: subjects, papers, votes, uploads, feedback and
//     the admin endpoints.
//  2. HTTPClient, the net/http implementation. It tags each request with an
//     X-Request-ID, injects admin credentials on /admin calls, and maps HTTP
//     failures to sentinel errors.
//  3. Ledger bootstrap helpers (InitDatabase, RunMigrations) that open the
//     local SQLite file and apply the embedded goose migrations.
//
// # File URLs
//
// The API serves file URLs either absolute or relative to its own origin.
// HTTPClient resolves relative ones against the configured base URL so the
// rest of the program only ever sees absolute URLs; blank or unparsable
// values come back empty.
//
// # Error Handling
//
// Match with errors.Is: ErrUnavailable (transport failure or 502-504),
// ErrUnauthorized (401/403), ErrNotFound (404). Other statuses surface as
// *StatusError. Context cancellation is returned unchanged.
package client
