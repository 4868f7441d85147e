package core

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"strings"

	"github.com/gevsen/Tg-bot/internal/commands"
	"github.com/gevsen/Tg-bot/internal/config"
	"github.com/gevsen/Tg-bot/internal/database"
	"github.com/gevsen/Tg-bot/internal/logger"
	"github.com/gevsen/Tg-bot/internal/telegram"
)

// CallbackHandler consumes inline keyboard presses whose callback data
// starts with the registered prefix ("<prefix> <token>").
type CallbackHandler interface {
	HandleCallback(query *telegram.CallbackQuery, token string) error
}

// Bot is the dispatch loop: it routes callback queries, commands and
// free-form messages, each handled in its own goroutine.
type Bot struct {
	commands  map[string]commands.Command
	callbacks map[string]CallbackHandler
	fallback  commands.Command
	logger    logger.Logger
	db        database.Database
	tg        telegram.Client
	cfg       *config.Config
}

func NewBot(
	tg telegram.Client,
	logger logger.Logger,
	db database.Database,
	cfg *config.Config,
) *Bot {
	return &Bot{
		commands:  make(map[string]commands.Command),
		callbacks: make(map[string]CallbackHandler),
		tg:        tg,
		logger:    logger,
		db:        db,
		cfg:       cfg,
	}
}

func (b *Bot) RegisterCommand(cmd commands.Command) {
	if cmd == nil || cmd.Name() == "" {
		b.logger.Error("Attempting to register invalid command")
		return
	}

	b.logger.WithFields(logger.Fields{
		"command": cmd.Name(),
	}).Debug("Registering command")

	b.commands[cmd.Name()] = cmd
}

func (b *Bot) RegisterCallbackHandler(prefix string, handler CallbackHandler) {
	b.callbacks[prefix] = handler
}

// RegisterFallback sets the handler for free-form messages that match no
// command.
func (b *Bot) RegisterFallback(cmd commands.Command) {
	b.fallback = cmd
}

func (b *Bot) Start(ctx context.Context) error {
	updates := b.tg.GetUpdatesChan(b.tg.NewUpdate(0, 60, 0))

	b.logger.Info("Bot started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update telegram.Update) {
	if query := update.CallbackQuery; query != nil {
		b.handleCallback(query)
		return
	}

	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	b.trackUser(msg.From.ID, msg.From.FirstName, msg.From.UserName)

	if !b.cfg.Telegram().IsAllowed(msg.From.ID, msg.Chat.ID) {
		b.logger.WithFields(logger.Fields{
			"user_id":  msg.From.ID,
			"username": msg.From.UserName,
			"chat_id":  msg.Chat.ID,
		}).Warn("Unauthorized access attempt")
		return
	}

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	if strings.HasPrefix(text, "/") {
		b.dispatchCommand(text, update)
		return
	}

	if b.fallback != nil && (text != "" || len(msg.Photo) > 0) {
		b.run(b.fallback, update)
	}
}

func (b *Bot) handleCallback(query *telegram.CallbackQuery) {
	params := strings.SplitN(query.Data, " ", 2)
	if handler, exists := b.callbacks[params[0]]; exists {
		token := ""
		if len(params) > 1 {
			token = params[1]
		}
		go func() {
			if err := handler.HandleCallback(query, token); err != nil {
				b.logger.WithError(err).Error("Failed to handle callback")
			}
		}()
	}

	if _, err := b.tg.Request(telegram.NewCallback(query.ID, "")); err != nil {
		b.logger.WithError(err).Error("Failed to answer callback query")
	}
}

func (b *Bot) dispatchCommand(text string, update telegram.Update) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return
	}

	cmdParts := strings.Split(strings.TrimPrefix(parts[0], "/"), "@")
	command := cmdParts[0]
	if len(cmdParts) > 1 && !strings.EqualFold(cmdParts[1], b.tg.Self().UserName) {
		return // addressed to another bot
	}

	var cmd commands.Command
	for name, c := range b.commands {
		if name == command || slices.Contains(c.Aliases(), command) {
			cmd = c
			break
		}
	}
	if cmd == nil {
		return
	}

	msg := update.Message
	b.logger.WithFields(logger.Fields{
		"command":  command,
		"user_id":  msg.From.ID,
		"username": msg.From.UserName,
	}).Info("Handling command")

	b.run(cmd, update)
}

func (b *Bot) run(cmd commands.Command, update telegram.Update) {
	go func() {
		if err := cmd.Execute(update); err != nil {
			// Backend failures are logged only; the user gets no reply.
			b.logger.WithError(err).WithFields(logger.Fields{
				"command": cmd.Name(),
			}).Error("Failed to handle update")
		}
	}()
}

func (b *Bot) trackUser(userID int64, firstName, username string) {
	user := database.User{
		ID:        userID,
		FirstName: firstName,
		Username:  username,
	}

	storedUser, err := b.db.GetUser(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			b.logger.WithFields(logger.Fields{
				"user_id":  userID,
				"username": username,
			}).Info("Store new user")
			if err := b.db.SaveUser(user); err != nil {
				b.logger.WithError(err).Error("Error save new user")
			}
		} else {
			b.logger.WithError(err).Error("Error get user by id")
		}
		return
	}

	if !user.Equal(*storedUser) {
		if err := b.db.SaveUser(user); err != nil {
			b.logger.WithError(err).Error("Error update user")
		}
	}
}
