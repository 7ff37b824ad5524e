// Package common contains constants and small helpers shared by the client
// layers.
package common

// SessionKey is the durable storage key holding the logged-in user id as a
// decimal string.
const SessionKey = "journal_user_id"

// RequestIDHeader carries a per-request id on every backend call so client
// logs can be matched with backend logs.
const RequestIDHeader = "X-Request-ID"

// DefaultBaseURL is the address of the journaling backend.
const DefaultBaseURL = "http://127.0.0.1:8000"
