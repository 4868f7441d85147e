package settings

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gevsen/Tg-bot/internal/app/di"
	"github.com/gevsen/Tg-bot/internal/commands"
	"github.com/gevsen/Tg-bot/internal/commands/base"
	"github.com/gevsen/Tg-bot/internal/logger"
	"github.com/gevsen/Tg-bot/internal/session"
	"github.com/gevsen/Tg-bot/internal/telegram"
)

// Command is one entry of the settings surface: /set_temp, /set_top_p,
// /set_budget, /grounding or /thinking. The apply func mutates the
// session and returns the localized confirmation text.
type Command struct {
	*base.Command
	name    string
	usageID string
	apply   func(s *session.Session, arg string) (string, error)
}

func (c *Command) Name() string {
	return c.name
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
	arg := commands.Arguments(text)

	s := c.Sessions.GetOrCreate(msg.From.ID)
	reply, err := c.apply(s, strings.TrimSpace(arg))
	if err != nil {
		var validationErr *session.ValidationError
		if errors.As(err, &validationErr) {
			c.Logger.WithFields(logger.Fields{
				"user_id": msg.From.ID,
				"param":   validationErr.Param,
				"value":   validationErr.Value,
			}).Debug("Rejected setting value")
			return c.Reply(msg.Chat.ID, msg.MessageID, c.L(c.usageID, nil))
		}
		return err
	}

	return c.Reply(msg.Chat.ID, msg.MessageID, reply)
}

func NewTemperature(di *di.Container) *Command {
	cmd := &Command{
		name:    "set_temp",
		usageID: "settings.temperature.usage",
	}
	cmd.Command = base.NewCommand(di)
	cmd.apply = func(s *session.Session, arg string) (string, error) {
		v, err := s.SetTemperature(arg)
		if err != nil {
			return "", err
		}
		return cmd.L("settings.temperature.success", map[string]any{
			"Value": formatFloat(v),
		}), nil
	}
	return cmd
}

func NewTopP(di *di.Container) *Command {
	cmd := &Command{
		name:    "set_top_p",
		usageID: "settings.topP.usage",
	}
	cmd.Command = base.NewCommand(di)
	cmd.apply = func(s *session.Session, arg string) (string, error) {
		v, err := s.SetTopP(arg)
		if err != nil {
			return "", err
		}
		return cmd.L("settings.topP.success", map[string]any{
			"Value": formatFloat(v),
		}), nil
	}
	return cmd
}

func NewBudget(di *di.Container) *Command {
	cmd := &Command{
		name:    "set_budget",
		usageID: "settings.budget.usage",
	}
	cmd.Command = base.NewCommand(di)
	cmd.apply = func(s *session.Session, arg string) (string, error) {
		v, err := s.SetThinkingBudget(arg)
		if err != nil {
			return "", err
		}
		return cmd.L("settings.budget.success", map[string]any{
			"Value": strconv.Itoa(v),
		}), nil
	}
	return cmd
}

func NewGrounding(di *di.Container) *Command {
	cmd := &Command{name: "grounding"}
	cmd.Command = base.NewCommand(di)
	cmd.apply = func(s *session.Session, _ string) (string, error) {
		if s.ToggleGrounding() {
			return cmd.L("settings.grounding.on", nil), nil
		}
		return cmd.L("settings.grounding.off", nil), nil
	}
	return cmd
}

func NewThinking(di *di.Container) *Command {
	cmd := &Command{name: "thinking"}
	cmd.Command = base.NewCommand(di)
	cmd.apply = func(s *session.Session, _ string) (string, error) {
		if s.ToggleThinking() {
			return cmd.L("settings.thinking.on", nil), nil
		}
		return cmd.L("settings.thinking.off", nil), nil
	}
	return cmd
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
