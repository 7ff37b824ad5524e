// Package services contains application services for the Reflecta client.
// This file defines the authentication service: signup, login with durable
// session persistence, session restore and cleanup, and the liveness check.
package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/reflecta/internal/client/client"
	"github.com/dmitrijs2005/reflecta/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/reflecta/internal/common"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account; does not log in.
//   - Login: authenticate and persist the user id under common.SessionKey.
//   - RestoreSession: read the persisted user id without asking the backend.
//   - ClearSession: remove the persisted user id.
//   - Ping: check backend liveness.
//   - Close: release underlying client resources.
//
// Rejections are returned as *RejectedError; transport failures wrap
// ErrBackendUnreachable.
type AuthService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (int64, error)
	RestoreSession(ctx context.Context) (int64, bool, error)
	ClearSession(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client and a
// durable key/value repository.
type authService struct {
	client client.Client
	repo   metadata.Repository
}

// NewAuthService constructs an AuthService bound to the given API client and store.
func NewAuthService(client client.Client, repo metadata.Repository) AuthService {
	return &authService{client: client, repo: repo}
}

func (a *authService) Register(ctx context.Context, email, password string) error {
	res, err := a.client.Signup(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBackendUnreachable, err)
	}
	if !res.Success {
		return rejected(ErrSignupRejected, res.Message)
	}
	return nil
}

// Login authenticates against the backend and, on success, persists the
// returned user id so a later RestoreSession finds it.
func (a *authService) Login(ctx context.Context, email, password string) (int64, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBackendUnreachable, err)
	}
	if !res.Success {
		return 0, rejected(ErrInvalidCredentials, res.Message)
	}
	if res.UserID <= 0 {
		return 0, fmt.Errorf("%w: %w: user_id %d", ErrBackendUnreachable, client.ErrMalformedResponse, res.UserID)
	}

	if err := a.repo.Set(ctx, common.SessionKey, []byte(strconv.FormatInt(res.UserID, 10))); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}
	return res.UserID, nil
}

// RestoreSession returns the persisted user id. found is false when no
// session was stored. A stored value that is not a positive integer yields
// ErrCorruptSession.
func (a *authService) RestoreSession(ctx context.Context) (int64, bool, error) {
	raw, err := a.repo.Get(ctx, common.SessionKey)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}
	if raw == nil {
		return 0, false, nil
	}

	userID, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || userID <= 0 {
		return 0, false, fmt.Errorf("%w: %q", ErrCorruptSession, raw)
	}
	return userID, true, nil
}

func (a *authService) ClearSession(ctx context.Context) error {
	return a.repo.Delete(ctx, common.SessionKey)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
