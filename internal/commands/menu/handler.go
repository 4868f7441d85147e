package menu

import (
	"github.com/gevsen/Tg-bot/internal/app/di"
	"github.com/gevsen/Tg-bot/internal/commands/base"
	"github.com/gevsen/Tg-bot/internal/keyboard"
	"github.com/gevsen/Tg-bot/internal/logger"
	"github.com/gevsen/Tg-bot/internal/session"
	"github.com/gevsen/Tg-bot/internal/telegram"
)

const CommandName = keyboard.CommandName

type Command struct {
	*base.Command
	renderer *keyboard.Renderer
}

func New(di *di.Container) *Command {
	return &Command{
		Command:  base.NewCommand(di),
		renderer: di.Keyboard,
	}
}

func (c *Command) Name() string {
	return CommandName
}

func (c *Command) Execute(update telegram.Update) error {
	msg := update.Message
	if msg == nil {
		return nil
	}

	s := c.Sessions.GetOrCreate(msg.From.ID)
	markup := c.renderer.Render(s)

	message := telegram.NewMessage(msg.Chat.ID, c.L("menu.title", nil), msg.MessageID)
	message.ReplyMarkup = &markup
	_, err := c.Tg.Send(message)
	return err
}

// HandleCallback applies one button press and refreshes the keyboard in
// place so the displayed values stay in sync with the session.
func (c *Command) HandleCallback(query *telegram.CallbackQuery, token string) error {
	if query.Message == nil {
		return nil
	}

	userID := query.From.ID
	s := c.Sessions.GetOrCreate(userID)

	switch token {
	case keyboard.TokenTempDec:
		s.AdjustTemperature(-session.AdjustStep)
	case keyboard.TokenTempInc:
		s.AdjustTemperature(session.AdjustStep)
	case keyboard.TokenTopPDec:
		s.AdjustTopP(-session.AdjustStep)
	case keyboard.TokenTopPInc:
		s.AdjustTopP(session.AdjustStep)
	case keyboard.TokenGrounding:
		s.ToggleGrounding()
	case keyboard.TokenThinking:
		s.ToggleThinking()
	case keyboard.TokenReset:
		s = c.Sessions.Reset(userID)
	default:
		c.Logger.WithFields(logger.Fields{
			"token": token,
		}).Warn("Unknown menu callback token")
		return nil
	}

	markup := c.renderer.Render(s)
	_, err := c.Tg.Request(telegram.NewEditMessageReplyMarkup(
		query.Message.Chat.ID,
		query.Message.MessageID,
		&markup,
	))
	return err
}
