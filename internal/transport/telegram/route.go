package telegram

import (
	"context"
	"fmt"

	"github.com/sandevgo/heraldbot/internal/core"
	tele "gopkg.in/telebot.v3"
)

// route is the core.Route for one Telegram update. Group chats map to a
// conversation id, private chats count as direct messages.
type route struct {
	sender *sender
	chat   *tele.Chat
	user   *tele.User
	direct bool
}

func newRoute(s *sender, chat *tele.Chat, user *tele.User) *route {
	return &route{sender: s, chat: chat, user: user}
}

func (r *route) Conversation() string {
	if r.direct || r.chat == nil || r.chat.Type == tele.ChatPrivate {
		return ""
	}
	return fmt.Sprintf("telegram-%d", r.chat.ID)
}

func (r *route) Send(ctx context.Context, text string) error {
	var to tele.Recipient = r.chat
	if r.direct && r.user != nil {
		to = r.user
	}
	return r.sender.sendMarkdown(ctx, to, text)
}

func (r *route) Direct() core.Route {
	clone := *r
	clone.direct = true
	return &clone
}
