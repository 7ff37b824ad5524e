// Package session holds who is logged in. The Store owns the auth form
// buffer, the login/signup mode, the inline form error and the current
// identity, and drives the signup, login, restore and logout transitions.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/reflecta/internal/client/models"
	"github.com/dmitrijs2005/reflecta/internal/client/services"
	"github.com/dmitrijs2005/reflecta/internal/logging"
)

type Store struct {
	auth     services.AuthService
	log      logging.Logger
	validate *validator.Validate

	mu       sync.Mutex
	mode     models.AuthMode
	form     models.AuthForm
	formErr  string
	identity *models.Identity
}

func NewStore(auth services.AuthService, log logging.Logger) *Store {
	return &Store{
		auth:     auth,
		log:      log,
		validate: validator.New(),
		mode:     models.AuthModeLogin,
	}
}

func (s *Store) Mode() models.AuthMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// ToggleMode switches between the login and signup forms and clears the
// inline error.
func (s *Store) ToggleMode() models.AuthMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == models.AuthModeSignup {
		s.mode = models.AuthModeLogin
	} else {
		s.mode = models.AuthModeSignup
	}
	s.formErr = ""
	return s.mode
}

// Edit sets one form field. Any edit clears the inline error.
func (s *Store) Edit(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.form.Set(field, value) {
		return fmt.Errorf("unknown form field %q", field)
	}
	s.formErr = ""
	return nil
}

func (s *Store) Form() models.AuthForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// FormError is the inline error shown under the form, empty if none.
func (s *Store) FormError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formErr
}

func (s *Store) Identity() (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

// SignUp validates the form and registers the account. Validation failures
// never reach the backend. On success the store switches to login mode and
// clears both password fields; the user is not logged in.
func (s *Store) SignUp(ctx context.Context) error {
	s.mu.Lock()
	form := s.form
	s.mu.Unlock()

	if err := s.validateForm(form, models.AuthModeSignup); err != nil {
		s.fail(err)
		return err
	}

	if err := s.auth.Register(ctx, form.Email, form.Password); err != nil {
		s.log.Warn(ctx, "signup failed", "email", form.Email, "error", err)
		s.fail(err)
		return err
	}

	s.log.Info(ctx, "signup successful", "email", form.Email)

	s.mu.Lock()
	s.mode = models.AuthModeLogin
	s.form.ClearPasswords()
	s.formErr = ""
	s.mu.Unlock()
	return nil
}

// LogIn authenticates with the form credentials. On success the identity
// is persisted by the auth service and becomes current.
func (s *Store) LogIn(ctx context.Context) (models.Identity, error) {
	s.mu.Lock()
	form := s.form
	s.mu.Unlock()

	if err := s.validateForm(form, models.AuthModeLogin); err != nil {
		s.fail(err)
		return models.Identity{}, err
	}

	userID, err := s.auth.Login(ctx, form.Email, form.Password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "email", form.Email, "error", err)
		s.fail(err)
		return models.Identity{}, err
	}

	id := models.NewIdentity(userID, form.FirstName)
	s.log.Info(ctx, "login successful", "user_id", id.UserID)

	s.mu.Lock()
	s.identity = &id
	s.form.ClearPasswords()
	s.formErr = ""
	s.mu.Unlock()
	return id, nil
}

// Restore adopts a previously persisted session. The backend is not asked
// whether the id is still valid. Storage problems are logged and treated
// as "not logged in".
func (s *Store) Restore(ctx context.Context) (models.Identity, bool) {
	userID, found, err := s.auth.RestoreSession(ctx)
	if err != nil {
		s.log.Warn(ctx, "session restore failed", "error", err)
		return models.Identity{}, false
	}
	if !found {
		return models.Identity{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := models.NewIdentity(userID, s.form.FirstName)
	s.identity = &id
	s.log.Info(ctx, "session restored", "user_id", id.UserID)
	return id, true
}

// LogOut forgets the identity everywhere and resets the form. It always
// succeeds; a storage failure is only logged.
func (s *Store) LogOut(ctx context.Context) {
	if err := s.auth.ClearSession(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted session", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	s.form = models.AuthForm{}
	s.formErr = ""
	s.mode = models.AuthModeLogin
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formErr = formMessage(err)
}

// validateForm checks the form for mode. A confirm-password mismatch wins
// over every other problem.
func (s *Store) validateForm(form models.AuthForm, mode models.AuthMode) error {
	var err error
	if mode == models.AuthModeSignup {
		err = s.validate.Struct(form)
	} else {
		err = s.validate.StructPartial(form, "Email", "Password")
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "eqfield" {
			return services.ErrPasswordMismatch
		}
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: %s", services.ErrInvalidForm, strings.Join(fields, ", "))
}

func formMessage(err error) string {
	var rej *services.RejectedError
	var msg string
	switch {
	case errors.As(err, &rej):
		msg = rej.Error()
	case errors.Is(err, services.ErrBackendUnreachable):
		msg = services.ErrBackendUnreachable.Error()
	case errors.Is(err, services.ErrSessionStorage):
		msg = services.ErrSessionStorage.Error()
	default:
		msg = err.Error()
	}
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
