package journal

import (
	"context"
	"sync"
)

// fakeJournal implements services.JournalService for session tests.
type fakeJournal struct {
	mu sync.Mutex

	HistoryRet []string
	HistoryErr error
	SaveErr    error
	ChatRet    string
	ChatErr    error

	// chatHook runs inside Chat, before it returns.
	chatHook func()

	LastUserID int64
	LastText   string
	Calls      []string
}

func (f *fakeJournal) record(call string, userID int64, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
	f.LastUserID, f.LastText = userID, text
}

func (f *fakeJournal) History(_ context.Context, userID int64) ([]string, error) {
	f.record("history", userID, "")
	if f.HistoryErr != nil {
		return nil, f.HistoryErr
	}
	return append([]string(nil), f.HistoryRet...), nil
}

func (f *fakeJournal) Save(_ context.Context, userID int64, text string) error {
	f.record("save", userID, text)
	return f.SaveErr
}

func (f *fakeJournal) Chat(_ context.Context, userID int64, text string) (string, error) {
	f.record("chat", userID, text)
	if f.chatHook != nil {
		f.chatHook()
	}
	return f.ChatRet, f.ChatErr
}
