package models

import "fmt"

// Tab is the journal view selector. Switching tabs has no side effects.
type Tab string

const (
	TabWrite    Tab = "write"
	TabHistory  Tab = "history"
	TabChat     Tab = "chat"
	TabInsights Tab = "insights"
)

// Tabs lists every tab in navigation order.
var Tabs = []Tab{TabWrite, TabHistory, TabChat, TabInsights}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", s)
}
