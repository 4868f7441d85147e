package commands

import (
	"strings"

	"github.com/gevsen/Tg-bot/internal/telegram"
)

type Command interface {
	Name() string
	Aliases() []string
	Execute(update telegram.Update) error
}

// Arguments extracts everything after the command token, so
// "/set_temp 0.9" yields "0.9" and a bare command yields "".
func Arguments(text string) string {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}
