package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Signup(context.Context) error { f.calls = append(f.calls, "signup"); return nil }

func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}

func (f *fakeExec) ToggleMode(context.Context) error { f.calls = append(f.calls, "mode"); return nil }
func (f *fakeExec) Write(context.Context) error      { f.calls = append(f.calls, "write"); return nil }
func (f *fakeExec) Save(context.Context) error       { f.calls = append(f.calls, "save"); return nil }
func (f *fakeExec) History(context.Context) error    { f.calls = append(f.calls, "history"); return nil }
func (f *fakeExec) Insights(context.Context) error   { f.calls = append(f.calls, "insights"); return nil }

func (f *fakeExec) Chat(_ context.Context, message string) error {
	f.calls = append(f.calls, "chat")
	f.args = append(f.args, message)
	return nil
}

func (f *fakeExec) Tab(_ context.Context, name string) error {
	f.calls = append(f.calls, "tab")
	f.args = append(f.args, name)
	return nil
}

func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	printed := capturePrints(t)

	input := strings.Join([]string{
		"help",
		"write",
		"login",
		"help",
		"write",
		"save",
		"history",
		"chat   how are   you ",
		"insights",
		"tab chat",
		"signup",
		"foobar",
		"logout",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(status)" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"login", "write", "save", "history", "chat", "insights", "tab", "logout"}, exec.calls)
	assert.Equal(t, []string{"how are   you", "chat"}, exec.args)

	assert.Contains(t, *printed, helpLoggedOut)
	assert.Contains(t, *printed, helpLoggedIn)
	assert.Contains(t, *printed, "Please login first.")
	assert.Contains(t, *printed, "Already logged in. Use logout first.")
	assert.Contains(t, *printed, "Unknown command: foobar")
	assert.Contains(t, *printed, "reflecta (status) > ")
	assert.Equal(t, "Bye!", (*printed)[len(*printed)-1])
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	printed := capturePrints(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("tab\nquit\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *printed, "Usage: tab <write|history|chat|insights>")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("signup\nmode")))

	assert.Equal(t, []string{"signup", "mode"}, exec.calls)
}
