package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/reflecta/internal/client/config"
	"github.com/dmitrijs2005/reflecta/internal/logging"
)

// fakeAuth implements services.AuthService.
type fakeAuth struct {
	registerErr error
	loginID     int64
	loginErr    error
	pingErr     error

	stored   int64
	closed   bool
	regEmail string
	regPass  string
	calls    []string
}

func (f *fakeAuth) Register(_ context.Context, email, password string) error {
	f.calls = append(f.calls, "register")
	f.regEmail, f.regPass = email, password
	return f.registerErr
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (int64, error) {
	f.calls = append(f.calls, "login")
	if f.loginErr != nil {
		return 0, f.loginErr
	}
	f.stored = f.loginID
	return f.loginID, nil
}

func (f *fakeAuth) RestoreSession(_ context.Context) (int64, bool, error) {
	return f.stored, f.stored > 0, nil
}

func (f *fakeAuth) ClearSession(_ context.Context) error {
	f.calls = append(f.calls, "clear")
	f.stored = 0
	return nil
}

func (f *fakeAuth) Ping(_ context.Context) error { return f.pingErr }

func (f *fakeAuth) Close(_ context.Context) error {
	f.closed = true
	return nil
}

// fakeJournal implements services.JournalService.
type fakeJournal struct {
	history []string
	saveErr error
	reply   string
	chatErr error

	saved []string
	chats []string
}

func (f *fakeJournal) History(_ context.Context, _ int64) ([]string, error) {
	return append([]string(nil), f.history...), nil
}

func (f *fakeJournal) Save(_ context.Context, _ int64, text string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, text)
	return nil
}

func (f *fakeJournal) Chat(_ context.Context, _ int64, text string) (string, error) {
	f.chats = append(f.chats, text)
	return f.reply, f.chatErr
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.StorageDriver = "memory"
	c.OnlineCheckInterval = 10 * time.Millisecond
	c.ClockInterval = 10 * time.Millisecond
	return c
}

func newTestApp(auth *fakeAuth, js *fakeJournal, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	a := newApp(testConfig(), logging.Discard(), auth, js, nil, bufio.NewReader(strings.NewReader(input)), &out)
	return a, &out
}

// stubInputs replaces the interactive prompts with queued answers.
func stubInputs(t *testing.T, texts []string, secrets []string) {
	t.Helper()
	origST, origGP, origML := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origGP, origML
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getMultiline = getSimpleText
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(secrets) == 0 {
			return nil, io.EOF
		}
		v := secrets[0]
		secrets = secrets[1:]
		return []byte(v), nil
	}
}

func silencePrompt(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}
