package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/reflecta/internal/client/client"
)

// JournalService performs the journal and chat round trips for one user id.
// It keeps no state; the caller owns entries and the transcript.
type JournalService interface {
	History(ctx context.Context, userID int64) ([]string, error)
	Save(ctx context.Context, userID int64, text string) error
	Chat(ctx context.Context, userID int64, text string) (string, error)
}

type journalService struct {
	client client.Client
}

func NewJournalService(client client.Client) JournalService {
	return &journalService{client: client}
}

// History fetches all entries of userID in backend order. A response that
// is not a successful list yields ErrMalformedHistory.
func (s *journalService) History(ctx context.Context, userID int64) ([]string, error) {
	res, err := s.client.FetchJournals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: success=false", ErrMalformedHistory)
	}

	entries, err := decodeEntries(res.Entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHistory, err)
	}
	return entries, nil
}

// decodeEntries accepts a JSON array. Entries are opaque: strings are kept
// as-is, any other element is kept as its raw JSON text.
func decodeEntries(raw json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, fmt.Errorf("entries is not a list")
	}

	entries := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			entries = append(entries, s)
			continue
		}
		entries = append(entries, string(item))
	}
	return entries, nil
}

func (s *journalService) Save(ctx context.Context, userID int64, text string) error {
	res, err := s.client.SaveJournal(ctx, userID, text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if !res.Success {
		return rejected(ErrSaveRejected, res.Message)
	}
	return nil
}

// Chat returns the assistant reply. An empty reply counts as a rejection.
func (s *journalService) Chat(ctx context.Context, userID int64, text string) (string, error) {
	res, err := s.client.Chat(ctx, userID, text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if res.Reply == "" {
		return "", ErrChatRejected
	}
	return res.Reply, nil
}
