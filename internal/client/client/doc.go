// Package client contains the client-side plumbing below the services.
//
// # Overview
//
//  1. The Client interface: the remote news API (login/signup, user lookup,
//     story listing and mutation, favorites).
//  2. HTTPClient, the JSON-over-HTTP implementation. Every request gets an
//     X-Request-ID and is logged with its status and duration. There are no
//     retries.
//  3. InitDatabase / RunMigrations, which open the local SQLite database and
//     apply the embedded goose migrations.
//
// # Error Handling
//
// HTTP statuses and transport failures are mapped to sentinel errors matched
// with errors.Is: ErrBadRequest (400), ErrUnauthorized (401, 403),
// ErrNotFound (404), ErrConflict (409) and ErrUnavailable (5xx, network
// errors, timeouts).
package client
