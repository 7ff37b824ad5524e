package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/dmitrijs2005/reflecta/internal/client/models"
)

var (
	successColor   = color.New(color.FgGreen)
	errorColor     = color.New(color.FgRed)
	titleColor     = color.New(color.Bold, color.Underline)
	faintColor     = color.New(color.Faint, color.Italic)
	assistantColor = color.New(color.FgCyan)
)

var weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// printNotification is the notifier sink.
func (a *App) printNotification(n models.Notification) {
	if n.Kind == models.NotificationError {
		_, _ = errorColor.Fprintln(a.out, n.Message)
		return
	}
	_, _ = successColor.Fprintln(a.out, n.Message)
}

func renderHistory(w io.Writer, entries []string) {
	_, _ = titleColor.Fprintln(w, "Your journal")
	if len(entries) == 0 {
		_, _ = faintColor.Fprintln(w, " no entries yet")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	tbl.AddRow("#", "ENTRY")
	for i, e := range entries {
		tbl.AddRow(i+1, e)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func renderTranscript(w io.Writer, messages []models.ChatMessage) {
	_, _ = titleColor.Fprintln(w, "Chat")
	for _, m := range messages {
		if m.Sender == models.SenderAssistant {
			_, _ = assistantColor.Fprintf(w, "assistant: %s\n", m.Text)
			continue
		}
		_, _ = fmt.Fprintf(w, "you: %s\n", m.Text)
	}
}

func renderInsights(w io.Writer, in models.Insights) {
	_, _ = titleColor.Fprintln(w, "Insights")

	tbl := uitable.New()
	tbl.AddRow("Healing progress", fmt.Sprintf("%d%%", in.HealingProgress))
	tbl.AddRow("Stress released", fmt.Sprintf("%d%%", in.StressReleased))
	tbl.AddRow("Streak", fmt.Sprintf("%d days", in.StreakDays))
	tbl.AddRow("Vibe", in.Vibe)
	_, _ = fmt.Fprintln(w, tbl)

	_, _ = titleColor.Fprintln(w, "Weekly activity")
	bars := uitable.New()
	for i, v := range in.Activity {
		bars.AddRow(weekdays[i], strings.Repeat("#", v/10), fmt.Sprintf("%d%%", v))
	}
	_, _ = fmt.Fprintln(w, bars)
}

func renderDraft(w io.Writer, draft string) {
	_, _ = titleColor.Fprintln(w, "Draft")
	if strings.TrimSpace(draft) == "" {
		_, _ = faintColor.Fprintln(w, " empty, type 'write' to start")
		return
	}
	_, _ = fmt.Fprintln(w, draft)
}
