package start

import (
	"github.com/gevsen/Tg-bot/internal/app/di"
	"github.com/gevsen/Tg-bot/internal/commands/base"
	"github.com/gevsen/Tg-bot/internal/telegram"
)

const CommandName = "start"

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

	// Make sure the user has a session from the very first contact.
	c.Sessions.GetOrCreate(update.Message.From.ID)

	return c.Reply(
		update.Message.Chat.ID,
		update.Message.MessageID,
		c.L("start.greeting", nil),
	)
}
