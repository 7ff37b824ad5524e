package models

import "fmt"

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatFallbackReply is appended in place of a reply when the chat call
// fails for any reason.
const ChatFallbackReply = "AI service unavailable. Try again later."

// ChatMessage is one turn of the transcript.
type ChatMessage struct {
	Sender Sender
	Text   string
}

// Greeting is the assistant turn every transcript starts with.
func Greeting(displayName string) ChatMessage {
	return ChatMessage{
		Sender: SenderAssistant,
		Text:   fmt.Sprintf("Hi %s, I'm here with you. What's on your mind today?", displayName),
	}
}
