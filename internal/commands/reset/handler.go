package reset

import (
	"github.com/gevsen/Tg-bot/internal/app/di"
	"github.com/gevsen/Tg-bot/internal/commands/base"
	"github.com/gevsen/Tg-bot/internal/logger"
	"github.com/gevsen/Tg-bot/internal/telegram"
)

const CommandName = "reset"

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
	if update.Message == nil {
		return nil
	}

	userID := update.Message.From.ID
	c.Sessions.Reset(userID)

	c.Logger.WithFields(logger.Fields{
		"user_id": userID,
	}).Info("Session reset")

	return c.Reply(
		update.Message.Chat.ID,
		update.Message.MessageID,
		c.L("reset.success", nil),
	)
}
