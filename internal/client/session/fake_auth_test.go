package session

import (
	"context"
)

// fakeAuth implements services.AuthService with an in-memory session slot.
type fakeAuth struct {
	RegisterErr error
	LoginRet    int64
	LoginErr    error
	RestoreErr  error
	ClearErr    error

	stored int64

	LastEmail    string
	LastPassword string
	Calls        []string
}

func (f *fakeAuth) Register(_ context.Context, email, password string) error {
	f.Calls = append(f.Calls, "register")
	f.LastEmail, f.LastPassword = email, password
	return f.RegisterErr
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (int64, error) {
	f.Calls = append(f.Calls, "login")
	f.LastEmail, f.LastPassword = email, password
	if f.LoginErr != nil {
		return 0, f.LoginErr
	}
	f.stored = f.LoginRet
	return f.LoginRet, nil
}

func (f *fakeAuth) RestoreSession(_ context.Context) (int64, bool, error) {
	f.Calls = append(f.Calls, "restore")
	if f.RestoreErr != nil {
		return 0, false, f.RestoreErr
	}
	return f.stored, f.stored > 0, nil
}

func (f *fakeAuth) ClearSession(_ context.Context) error {
	f.Calls = append(f.Calls, "clear")
	f.stored = 0
	return f.ClearErr
}

func (f *fakeAuth) Ping(_ context.Context) error  { return nil }
func (f *fakeAuth) Close(_ context.Context) error { return nil }
