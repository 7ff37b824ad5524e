package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/reflecta/internal/client/client"
	"github.com/dmitrijs2005/reflecta/internal/client/config"
	"github.com/dmitrijs2005/reflecta/internal/client/journal"
	"github.com/dmitrijs2005/reflecta/internal/client/models"
	"github.com/dmitrijs2005/reflecta/internal/client/notify"
	"github.com/dmitrijs2005/reflecta/internal/client/services"
	"github.com/dmitrijs2005/reflecta/internal/client/session"
	"github.com/dmitrijs2005/reflecta/internal/filex"
	"github.com/dmitrijs2005/reflecta/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single connectivity check.
const pingTimeout = 3 * time.Second

type App struct {
	config     *config.Config
	log        logging.Logger
	authSvc    services.AuthService
	journalSvc services.JournalService
	store      *session.Store
	notifier   *notify.Notifier
	storage    io.Closer
	reader     *bufio.Reader
	out        io.Writer

	// journal is set while a user is logged in. Only the REPL goroutine
	// touches it.
	journal *journal.Session

	// mu guards the prompt status written by the background goroutines.
	mu    sync.Mutex
	Mode  Mode
	clock time.Time
}

// NewApp wires logging, storage and the backend client from c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	dataDir := ""
	if c.StorageDriver != client.StorageMemory {
		dataDir, err = filex.EnsureDir(c.DataDir)
		if err != nil {
			return nil, fmt.Errorf("error preparing data dir: %w", err)
		}
	}

	repo, closer, err := client.OpenStorage(ctx, c.StorageDriver, dataDir)
	if err != nil {
		log.Error(ctx, "error opening session storage", "driver", c.StorageDriver, "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.BaseURL, log)

	as := services.NewAuthService(apiClient, repo)
	js := services.NewJournalService(apiClient)

	log.Debug(ctx, "client initialised", "base_url", c.BaseURL, "storage", c.StorageDriver, "data_dir", dataDir)

	return newApp(c, log, as, js, closer, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, as services.AuthService, js services.JournalService,
	storage io.Closer, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		config:     c,
		log:        log,
		authSvc:    as,
		journalSvc: js,
		store:      session.NewStore(as, log),
		storage:    storage,
		reader:     reader,
		out:        out,
		clock:      time.Now(),
	}
	a.notifier = notify.New(c.NotificationTTL, a.printNotification)
	return a
}

// Run restores a persisted session, starts the background watchers and
// blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.close(ctx)

	fmt.Fprintln(a.out, "Welcome to Reflecta (type 'help' for commands)")

	if id, ok := a.store.Restore(ctx); ok {
		a.startJournal(ctx, id)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	go a.StartClock(ctx, a.config.ClockInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close(ctx context.Context) {
	if err := a.authSvc.Close(ctx); err != nil {
		a.log.Warn(ctx, "error closing backend client", "error", err)
	}
	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			a.log.Warn(ctx, "error closing session storage", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.journal != nil
}

// startJournal opens the journal session for id and loads its history.
func (a *App) startJournal(ctx context.Context, id models.Identity) {
	s := journal.NewSession(&id, a.journalSvc, a.notifier, a.log, a.forceLogout)
	a.journal = s
	if !s.Start(ctx) {
		return
	}
	fmt.Fprintf(a.out, "Welcome, %s! You have %d journal entries.\n", id.DisplayName, len(s.Entries()))
}

// forceLogout is handed to the journal session for when it loses its
// identity.
func (a *App) forceLogout(ctx context.Context) {
	a.endSession(ctx)
}

func (a *App) endSession(ctx context.Context) {
	a.store.LogOut(ctx)
	if a.journal != nil {
		a.journal.Reset()
		a.journal = nil
	}
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher pings the backend every interval and flips Mode
// between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authSvc.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartClock refreshes the prompt clock every interval until ctx is done.
func (a *App) StartClock(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			a.mu.Lock()
			a.clock = now
			a.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

// getStatus renders the prompt status: display name, connectivity, the
// clock and the notification while it is still visible.
func (a *App) getStatus() string {
	a.mu.Lock()
	mode, clock := a.Mode, a.clock
	a.mu.Unlock()

	s := ""
	if id, ok := a.store.Identity(); ok {
		s = id.DisplayName + " "
	}
	if mode != "" {
		s += string(mode) + " "
	}
	s += clock.Format("15:04")
	if n, ok := a.notifier.Current(); ok {
		s += " | " + n.Message
	}
	return fmt.Sprintf("(%s)", s)
}
