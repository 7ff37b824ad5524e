package client

import (
	"context"
	"encoding/json"
)

// Client is the backend API used by the services.
type Client interface {
	Signup(ctx context.Context, email, password string) (*StatusResponse, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	SaveJournal(ctx context.Context, userID int64, message string) (*StatusResponse, error)
	FetchJournals(ctx context.Context, userID int64) (*JournalsResponse, error)
	Chat(ctx context.Context, userID int64, message string) (*ChatResponse, error)
	Ping(ctx context.Context) error
	Close() error
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageRequest struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

// StatusResponse is the {success, message?} envelope of signup and journal
// saves.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	UserID  int64  `json:"user_id"`
}

// JournalsResponse keeps entries raw: the caller decides whether the
// payload is a well-formed list.
type JournalsResponse struct {
	Success bool            `json:"success"`
	Entries json.RawMessage `json:"entries"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
