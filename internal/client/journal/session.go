// Package journal holds the per-user journal session: the write draft,
// the entry list, the chat transcript and the active tab. Every journal
// and chat request for the logged in user goes through a Session.
package journal

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/reflecta/internal/client/models"
	"github.com/dmitrijs2005/reflecta/internal/client/notify"
	"github.com/dmitrijs2005/reflecta/internal/client/services"
	"github.com/dmitrijs2005/reflecta/internal/logging"
)

// User-facing notification texts.
const (
	MsgSaved           = "Journal saved successfully"
	MsgSaveRejected    = "Failed to save journal (backend rejected)"
	MsgSaveFailed      = "Failed to save journal (server error)"
	MsgNotLoggedIn     = "User not logged in properly."
	MsgIdentityMissing = "User ID missing. Please login again."
)

// LogoutFunc is called when the session finds itself without an identity.
type LogoutFunc func(ctx context.Context)

type Session struct {
	svc      services.JournalService
	notifier *notify.Notifier
	log      logging.Logger
	onLogout LogoutFunc

	// the lock is never held across a service call
	mu         sync.Mutex
	identity   *models.Identity
	tab        models.Tab
	draft      string
	chatInput  string
	entries    []string
	transcript []models.ChatMessage
}

// NewSession creates a session for identity. A nil identity is allowed so
// that GuardIdentity can report it.
func NewSession(identity *models.Identity, svc services.JournalService, notifier *notify.Notifier, log logging.Logger, onLogout LogoutFunc) *Session {
	s := &Session{
		svc:      svc,
		notifier: notifier,
		log:      log,
		onLogout: onLogout,
		tab:      models.TabWrite,
	}
	if identity != nil {
		id := *identity
		s.identity = &id
		s.log = log.With("user_id", id.UserID)
	}
	s.transcript = []models.ChatMessage{models.Greeting(s.displayName())}
	return s
}

func (s *Session) displayName() string {
	if s.identity == nil {
		return models.DefaultDisplayName
	}
	return s.identity.DisplayName
}

func (s *Session) currentIdentity() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Start checks the identity and fetches the history once.
func (s *Session) Start(ctx context.Context) bool {
	if !s.GuardIdentity(ctx) {
		return false
	}
	s.LoadHistory(ctx)
	return true
}

// GuardIdentity reports whether an identity is present. Without one it
// notifies the user and forces a logout.
func (s *Session) GuardIdentity(ctx context.Context) bool {
	if s.currentIdentity() != nil {
		return true
	}

	s.log.Warn(ctx, "journal session without identity, forcing logout")
	s.notifier.Error(MsgIdentityMissing)
	if s.onLogout != nil {
		s.onLogout(ctx)
	}
	return false
}

// LoadHistory replaces the entry list with the backend history. Rejected
// or malformed responses leave the list untouched.
func (s *Session) LoadHistory(ctx context.Context) {
	id := s.currentIdentity()
	if id == nil {
		return
	}

	entries, err := s.svc.History(ctx, id.UserID)
	switch {
	case err == nil:
		s.mu.Lock()
		s.entries = entries
		s.mu.Unlock()
		s.log.Debug(ctx, "journal history loaded", "count", len(entries))
	case errors.Is(err, services.ErrMalformedHistory):
		s.log.Debug(ctx, "journal history ignored", "error", err)
	default:
		s.log.Error(ctx, "failed to load journal history", "error", err)
	}
}

// SaveEntry saves the current draft.
func (s *Session) SaveEntry(ctx context.Context) error {
	return s.SaveText(ctx, s.Draft())
}

// SaveText saves text as a new entry. Whitespace-only text is ignored.
// On success the raw text is appended and the draft cleared.
func (s *Session) SaveText(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	id := s.currentIdentity()
	if id == nil {
		s.notifier.Error(MsgNotLoggedIn)
		return services.ErrNotAuthenticated
	}

	err := s.svc.Save(ctx, id.UserID, text)
	switch {
	case err == nil:
		s.mu.Lock()
		s.entries = append(s.entries, text)
		s.draft = ""
		s.mu.Unlock()
		s.notifier.Success(MsgSaved)
		return nil
	case errors.Is(err, services.ErrSaveRejected):
		s.log.Warn(ctx, "journal save rejected", "error", err)
		s.notifier.Error(MsgSaveRejected)
	default:
		s.log.Error(ctx, "journal save failed", "error", err)
		s.notifier.Error(MsgSaveFailed)
	}
	return err
}

// SendChatMessage appends the user message, asks for a reply and appends
// it. Any failure yields the fallback reply instead of an error.
func (s *Session) SendChatMessage(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	id := s.currentIdentity()
	if id == nil {
		s.notifier.Error(MsgNotLoggedIn)
		return services.ErrNotAuthenticated
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, models.ChatMessage{Sender: models.SenderUser, Text: trimmed})
	s.chatInput = ""
	s.mu.Unlock()

	reply, err := s.svc.Chat(ctx, id.UserID, text)
	if err != nil {
		s.log.Warn(ctx, "chat failed, using fallback reply", "error", err)
		reply = models.ChatFallbackReply
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, models.ChatMessage{Sender: models.SenderAssistant, Text: reply})
	s.mu.Unlock()
	return nil
}

// SendChatInput sends the buffered chat input.
func (s *Session) SendChatInput(ctx context.Context) error {
	return s.SendChatMessage(ctx, s.ChatInput())
}

// Reset drops all user data held by the session, including the identity.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	s.entries = nil
	s.draft = ""
	s.chatInput = ""
	s.transcript = nil
	s.tab = models.TabWrite
}

func (s *Session) Identity() (models.Identity, bool) {
	id := s.currentIdentity()
	if id == nil {
		return models.Identity{}, false
	}
	return *id, true
}

func (s *Session) Tab() models.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

func (s *Session) SetTab(tab models.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
}

func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = text
}

func (s *Session) ChatInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatInput
}

func (s *Session) SetChatInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatInput = text
}

// Entries returns a copy of the entry list in display order.
func (s *Session) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.entries...)
}

// Transcript returns a copy of the chat transcript.
func (s *Session) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.transcript...)
}

func (s *Session) Insights() models.Insights {
	s.mu.Lock()
	n := len(s.entries)
	s.mu.Unlock()
	return models.ComputeInsights(n)
}
