package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	ToggleMode(ctx context.Context) error
	Write(ctx context.Context) error
	Save(ctx context.Context) error
	History(ctx context.Context) error
	Chat(ctx context.Context, message string) error
	Insights(ctx context.Context) error
	Tab(ctx context.Context, name string) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: signup, login, mode, exit"
	helpLoggedIn  = "Available commands: write, save, history, chat [message], insights, tab <write|history|chat|insights>, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the Reflecta CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             show available commands
//	  - signup           create an account
//	  - login            authenticate
//	  - mode             switch between the login and signup forms
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - help             show available commands
//	  - write            write an entry and save it
//	  - save             retry saving the current draft
//	  - history          list saved entries
//	  - chat [message]   talk to the assistant
//	  - insights         show insight cards
//	  - tab <name>       switch tab
//	  - logout           log out
//	  - exit | quit      leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("reflecta %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, rest := parts[0], strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), parts[0]))

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "signup", "login", "mode":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use logout first.")
				continue
			}
			switch cmd {
			case "signup":
				_ = a.Signup(ctx)
			case "login":
				_ = a.Login(ctx)
			case "mode":
				_ = a.ToggleMode(ctx)
			}

		case "write", "save", "history", "chat", "insights", "tab", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
			switch cmd {
			case "write":
				_ = a.Write(ctx)
			case "save":
				_ = a.Save(ctx)
			case "history":
				_ = a.History(ctx)
			case "chat":
				_ = a.Chat(ctx, rest)
			case "insights":
				_ = a.Insights(ctx)
			case "tab":
				if rest == "" {
					printlnFn("Usage: tab <write|history|chat|insights>")
					continue
				}
				_ = a.Tab(ctx, rest)
			case "logout":
				_ = a.Logout(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if errors.Is(err, io.EOF) {
			return
		}
	}
}
