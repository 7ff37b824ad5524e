// Package client contains client-side building blocks for Reflecta.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract for the journaling backend (see the
//     Client interface): Signup, Login, SaveJournal, FetchJournals, Chat
//     and a Ping health check.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) built on resty.
//     Every request carries a fresh X-Request-ID. Response bodies are
//     decoded whatever the HTTP status is, because the backend reports
//     business failures as {"success": false} payloads.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations,
//     OpenStorage) for the durable session record.
//
// # Error Handling
//
// Transport failures are exposed as sentinel errors matched with errors.Is:
// ErrUnavailable (the backend could not be reached) and ErrMalformedResponse
// (the backend answered with something that is not the expected JSON).
// Business rejections are not errors at this layer; they are returned as
// response values with Success == false.
//
// No call is retried and no timeout is applied beyond the context and the
// underlying http.Client defaults.
package client
