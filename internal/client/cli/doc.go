// Package cli provides the interactive Reflecta command-line client.
//
// It wires configuration, durable session storage, the backend client and
// an interactive REPL. Typical flow: restore a persisted session or ask the
// user to sign up / log in, start the connectivity watcher and the clock,
// then serve journal commands until the user exits.
//
// Key features:
//   - Signup / Login / Logout with a persisted session
//   - Write and save journal entries, browse history
//   - Chat with the support assistant
//   - Insight cards derived from the entry count
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, StartClock and runREPL for details.
package cli
