package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/reflecta/internal/client/client"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	SignupRet *client.StatusResponse
	SignupErr error

	LoginRet *client.LoginResponse
	LoginErr error

	SaveRet *client.StatusResponse
	SaveErr error

	FetchRet *client.JournalsResponse
	FetchErr error

	ChatRet *client.ChatResponse
	ChatErr error

	PingErr  error
	CloseErr error

	// argument capture
	LastEmail    string
	LastPassword string
	LastUserID   int64
	LastMessage  string
	Calls        []string
}

func (f *fakeClient) Signup(_ context.Context, email, password string) (*client.StatusResponse, error) {
	f.Calls = append(f.Calls, "signup")
	f.LastEmail, f.LastPassword = email, password
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*client.LoginResponse, error) {
	f.Calls = append(f.Calls, "login")
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) SaveJournal(_ context.Context, userID int64, message string) (*client.StatusResponse, error) {
	f.Calls = append(f.Calls, "journal")
	f.LastUserID, f.LastMessage = userID, message
	return f.SaveRet, f.SaveErr
}

func (f *fakeClient) FetchJournals(_ context.Context, userID int64) (*client.JournalsResponse, error) {
	f.Calls = append(f.Calls, "journals")
	f.LastUserID = userID
	return f.FetchRet, f.FetchErr
}

func (f *fakeClient) Chat(_ context.Context, userID int64, message string) (*client.ChatResponse, error) {
	f.Calls = append(f.Calls, "chat")
	f.LastUserID, f.LastMessage = userID, message
	return f.ChatRet, f.ChatErr
}

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }

func (f *fakeClient) Close() error { return f.CloseErr }

func journals(success bool, entries string) *client.JournalsResponse {
	return &client.JournalsResponse{Success: success, Entries: json.RawMessage(entries)}
}
