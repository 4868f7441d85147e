package base

import (
	"github.com/gevsen/Tg-bot/internal/app/di"
	"github.com/gevsen/Tg-bot/internal/config"
	"github.com/gevsen/Tg-bot/internal/logger"
	"github.com/gevsen/Tg-bot/internal/service"
	"github.com/gevsen/Tg-bot/internal/session"
	"github.com/gevsen/Tg-bot/internal/telegram"
)

type Command struct {
	Tg        telegram.Client
	Logger    logger.Logger
	Cfg       *config.Config
	Sessions  *session.Store
	Localizer *service.Localizer
}

func NewCommand(di *di.Container) *Command {
	return &Command{
		Tg:        di.BotClient,
		Logger:    di.Logger,
		Cfg:       di.Cfg,
		Sessions:  di.Sessions,
		Localizer: di.Localizer,
	}
}

func (c *Command) Aliases() []string {
	return []string{}
}

func (c *Command) L(messageID string, data map[string]any) string {
	return c.Localizer.Localize(messageID, data)
}

// Reply sends a plain text reply to the given message.
func (c *Command) Reply(chatID int64, replyTo int, text string) error {
	_, err := c.Tg.Send(telegram.NewMessage(chatID, text, replyTo))
	return err
}
