package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/gevsen/Tg-bot/internal/ai"
	"github.com/gevsen/Tg-bot/internal/app/di"
	"github.com/gevsen/Tg-bot/internal/commands/base"
	"github.com/gevsen/Tg-bot/internal/logger"
	"github.com/gevsen/Tg-bot/internal/telegram"
)

const CommandName = "chat"

const typingRefreshInterval = 4 * time.Second

// Command relays free-form messages (text and/or a photo) to the model
// through the user's conversation.
type Command struct {
	*base.Command
}

func New(di *di.Container) *Command {
	return &Command{Command: base.NewCommand(di)}
}

func (c *Command) Name() string {
	return CommandName
}

func (c *Command) Execute(update telegram.Update) error {
	msg := update.Message
	if msg == nil {
		return nil
	}

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	req := ai.Request{Text: text}
	if len(msg.Photo) > 0 {
		// Variants are ordered smallest to largest.
		photo := msg.Photo[len(msg.Photo)-1]
		data, err := c.Tg.DownloadFile(photo.FileID)
		if err != nil {
			return fmt.Errorf("download photo: %w", err)
		}
		req.Image = &ai.Image{Data: data, MIMEType: "image/jpeg"}
	}
	if req.Empty() {
		return nil
	}

	s := c.Sessions.GetOrCreate(msg.From.ID)

	c.Logger.WithFields(logger.Fields{
		"user_id":   msg.From.ID,
		"has_image": req.Image != nil,
	}).Debug("Forwarding message to model")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.sendTyping(msg.Chat.ID)
	go c.keepTyping(ctx, msg.Chat.ID)

	response, err := s.Conversation.Send(ctx, req, s.Options())
	cancel()
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}

	if s.ThinkingVisible && response.HasReasoning() {
		reasoning := c.L("chat.reasoningPrefix", nil) + "\n" + response.Reasoning()
		if err := c.Reply(msg.Chat.ID, msg.MessageID, reasoning); err != nil {
			c.Logger.WithError(err).Error("Failed to send reasoning")
		}
	}

	if response.HasAnswer() {
		return c.Reply(msg.Chat.ID, msg.MessageID, response.Answer())
	}
	return nil
}

// keepTyping re-sends the typing indicator for as long as the backend
// call is outstanding. Telegram drops a chat action after a few seconds.
func (c *Command) keepTyping(ctx context.Context, chatID int64) {
	ticker := time.NewTicker(typingRefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sendTyping(chatID)
		}
	}
}

func (c *Command) sendTyping(chatID int64) {
	if err := c.Tg.SendChatAction(chatID, telegram.ActionTyping); err != nil {
		c.Logger.WithError(err).Debug("Failed to send chat action")
	}
}
