// Package client contains the client-side building blocks of the recipe
// console.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface) for the recipe admin API:
//     login, catalog management, recipe mutations, activation codes.
//  2. An HTTP implementation (see HTTPClient). The bearer token travels in
//     the context (WithAccessToken) so one client value serves any session.
//     Every response status is checked explicitly; any non-2xx is an error.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database with embedded goose migrations.
//
// # Error Handling
//
// Status classes map to sentinels matched with errors.Is: ErrUnauthorized
// (401, 422), ErrForbidden (403), ErrNotFound (404) and ErrUnavailable for
// transport failures. Other statuses surface as *StatusError.
package client
