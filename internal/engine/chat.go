package engine

import (
	"context"
	"strings"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/models"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/remote"
	"github.com/Gathaus/WellnesAiApp-sub000/internal/storage"
)

// SendMessage appends the user's message right away and requests a reply in
// the background. Replies land in completion order; a failed request is
// answered with FallbackReply. Blank text is ignored.
func (e *Engine) SendMessage(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	prompt := e.promptLocked(text)
	e.messages = append(e.messages, models.NewChatMessage(text, true, e.now()))
	e.persistLocked(storage.KeyMessages, e.messages)

	e.pending++
	started := e.goLocked(func(ctx context.Context) {
		reply, err := e.client.Complete(ctx, prompt)

		e.mu.Lock()
		defer e.mu.Unlock()
		if err != nil {
			reason, _ := remote.ReasonOf(err)
			e.logger.Warn("chat reply unavailable, using fallback", "reason", string(reason), "error", err)
			reply = FallbackReply
		}
		e.appendReplyLocked(reply)
	})
	if !started {
		e.appendReplyLocked(FallbackReply)
		return
	}
	e.publishLocked()
}

func (e *Engine) appendReplyLocked(reply string) {
	e.pending--
	e.messages = append(e.messages, models.NewChatMessage(reply, false, e.now()))
	e.persistLocked(storage.KeyMessages, e.messages)
	e.publishLocked()
}

// promptLocked builds the request for a new user message. The prior transcript,
// cut to the history window, is folded into the system message so only the
// system and user roles are sent.
func (e *Engine) promptLocked(text string) []remote.Message {
	history := e.messages
	if len(history) > e.historyWindow {
		history = history[len(history)-e.historyWindow:]
	}

	var system strings.Builder
	system.WriteString(e.persona)
	if e.user != nil && e.user.Name != "" {
		system.WriteString("\n\nThe user's name is ")
		system.WriteString(e.user.Name)
		system.WriteString(".")
	}
	if len(history) > 0 {
		system.WriteString("\n\nConversation so far:")
		for _, m := range history {
			if m.IsFromUser {
				system.WriteString("\nUser: ")
			} else {
				system.WriteString("\nAssistant: ")
			}
			system.WriteString(m.Content)
		}
	}

	return []remote.Message{
		{Role: "system", Content: system.String()},
		{Role: "user", Content: text},
	}
}
