package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/reflecta/internal/client/models"
)

// Write reads a multi-line entry into the draft and saves it.
func (a *App) Write(ctx context.Context) error {
	a.journal.SetTab(models.TabWrite)

	text, err := getMultiline(a.reader, "How are you feeling today?", a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(a.out, "Nothing to save.")
		return nil
	}

	a.journal.SetDraft(text)
	return a.journal.SaveEntry(ctx)
}

// Save retries the current draft, e.g. after a failed save.
func (a *App) Save(ctx context.Context) error {
	if strings.TrimSpace(a.journal.Draft()) == "" {
		fmt.Fprintln(a.out, "Nothing to save.")
		return nil
	}
	return a.journal.SaveEntry(ctx)
}

func (a *App) History(_ context.Context) error {
	a.journal.SetTab(models.TabHistory)
	renderHistory(a.out, a.journal.Entries())
	return nil
}

// Chat sends message, or a prompted one when message is empty, and prints
// the transcript.
func (a *App) Chat(ctx context.Context, message string) error {
	a.journal.SetTab(models.TabChat)

	if message == "" {
		renderTranscript(a.out, a.journal.Transcript())
		text, err := getSimpleText(a.reader, "Your message", a.out)
		if err != nil {
			return err
		}
		message = text
	}

	a.journal.SetChatInput(message)
	if err := a.journal.SendChatInput(ctx); err != nil {
		return err
	}

	renderTranscript(a.out, a.journal.Transcript())
	return nil
}

func (a *App) Insights(_ context.Context) error {
	a.journal.SetTab(models.TabInsights)
	renderInsights(a.out, a.journal.Insights())
	return nil
}

// Tab switches to the named tab and shows its content.
func (a *App) Tab(ctx context.Context, name string) error {
	tab, err := models.ParseTab(name)
	if err != nil {
		_, _ = errorColor.Fprintln(a.out, err)
		return err
	}

	a.journal.SetTab(tab)
	switch tab {
	case models.TabHistory:
		renderHistory(a.out, a.journal.Entries())
	case models.TabChat:
		renderTranscript(a.out, a.journal.Transcript())
	case models.TabInsights:
		renderInsights(a.out, a.journal.Insights())
	default:
		renderDraft(a.out, a.journal.Draft())
	}
	return nil
}
