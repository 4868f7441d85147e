package keyboard

import (
	"fmt"

	"github.com/gevsen/Tg-bot/internal/service"
	"github.com/gevsen/Tg-bot/internal/session"
	"github.com/gevsen/Tg-bot/internal/telegram"
)

// CommandName doubles as the callback-data prefix, so button presses route
// back to the menu command ("menu <token>").
const CommandName = "menu"

// The seven fixed button tokens.
const (
	TokenTempDec   = "temp:dec"
	TokenTempInc   = "temp:inc"
	TokenTopPDec   = "top_p:dec"
	TokenTopPInc   = "top_p:inc"
	TokenGrounding = "grounding"
	TokenThinking  = "thinking"
	TokenReset     = "reset"
)

func CallbackData(token string) string {
	return CommandName + " " + token
}

// Renderer builds the settings keyboard from session state. Render is a
// pure function of the session: it is called both when the menu is opened
// and after every button press to refresh the displayed values.
type Renderer struct {
	localizer *service.Localizer
}

func NewRenderer(localizer *service.Localizer) *Renderer {
	return &Renderer{localizer: localizer}
}

func (r *Renderer) Render(s *session.Session) telegram.InlineKeyboardMarkup {
	temp := formatValue(s.Temperature)
	topP := formatValue(s.TopP)

	return telegram.NewInlineKeyboardMarkup(
		telegram.NewInlineKeyboardRow(
			r.button("menu.button.tempDec", map[string]any{"Value": temp}, TokenTempDec),
			r.button("menu.button.tempInc", map[string]any{"Value": temp}, TokenTempInc),
		),
		telegram.NewInlineKeyboardRow(
			r.button("menu.button.topPDec", map[string]any{"Value": topP}, TokenTopPDec),
			r.button("menu.button.topPInc", map[string]any{"Value": topP}, TokenTopPInc),
		),
		telegram.NewInlineKeyboardRow(
			r.button("menu.button.grounding", map[string]any{"State": onOff(s.GroundingEnabled)}, TokenGrounding),
			r.button("menu.button.thinking", map[string]any{"State": onOff(s.ThinkingVisible)}, TokenThinking),
			r.button("menu.button.reset", nil, TokenReset),
		),
	)
}

func (r *Renderer) button(messageID string, data map[string]any, token string) telegram.InlineKeyboardButton {
	return telegram.NewInlineKeyboardButtonData(
		r.localizer.Localize(messageID, data),
		CallbackData(token),
	)
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func onOff(enabled bool) string {
	if enabled {
		return "🟢"
	}
	return "⚪️"
}
