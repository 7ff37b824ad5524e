// Package models defines client-side data models used by the Reflecta CLI:
// the logged-in identity, the auth form buffer, chat turns, notifications,
// the tab selector and the cosmetic insight values.
package models
