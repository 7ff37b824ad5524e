package models

import "strings"

// DefaultDisplayName is used when no first name is known, e.g. after a
// session was restored from durable storage.
const DefaultDisplayName = "Friend"

// Identity is the authenticated user. It gates every journal and chat
// operation.
type Identity struct {
	UserID      int64
	DisplayName string
}

// NewIdentity builds an Identity, substituting DefaultDisplayName for an
// empty name.
func NewIdentity(userID int64, displayName string) Identity {
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = DefaultDisplayName
	}
	return Identity{UserID: userID, DisplayName: name}
}
