package telegram

import (
	tgbotapi "github.com/OvyFlash/telegram-bot-api"
)

type ParseMode = string

const (
	ModeMarkdown = "Markdown"
)

type (
	Update        = tgbotapi.Update
	CallbackQuery = tgbotapi.CallbackQuery
	PhotoSize     = tgbotapi.PhotoSize

	InlineKeyboardMarkup = tgbotapi.InlineKeyboardMarkup
	InlineKeyboardButton = tgbotapi.InlineKeyboardButton
)

func NewInlineKeyboardMarkup(rows ...[]InlineKeyboardButton) InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func NewInlineKeyboardRow(buttons ...InlineKeyboardButton) []InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(buttons...)
}

func NewInlineKeyboardButtonData(text, data string) InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

type Message struct {
	MessageID int
	Chat      Chat
	Text      string
	From      User
}

type User struct {
	ID        int64
	FirstName string
	UserName  string
}

type Chat struct {
	ID   int64
	Type string
}

type MessageConfig interface {
	ToChattable() tgbotapi.Chattable
}

type TextMessage struct {
	ChatID              int64
	Text                string
	ReplyTo             int
	ReplyMarkup         *InlineKeyboardMarkup
	LinkPreviewDisabled bool
	ParseMode           ParseMode
}

func NewMessage(chatID int64, text string, replyTo int) TextMessage {
	return TextMessage{
		ChatID:  chatID,
		Text:    text,
		ReplyTo: replyTo,
	}
}

func (m TextMessage) ToChattable() tgbotapi.Chattable {
	msg := tgbotapi.NewMessage(m.ChatID, m.Text)
	msg.ReplyParameters.MessageID = m.ReplyTo
	msg.ParseMode = m.ParseMode
	if m.ReplyMarkup != nil {
		msg.ReplyMarkup = m.ReplyMarkup
	}
	msg.LinkPreviewOptions.IsDisabled = m.LinkPreviewDisabled
	return msg
}

type CallbackConfig struct {
	CallbackQueryID string
	Text            string
	ShowAlert       bool
}

func NewCallback(id, text string) CallbackConfig {
	return CallbackConfig{
		CallbackQueryID: id,
		Text:            text,
	}
}

func (c CallbackConfig) ToChattable() tgbotapi.Chattable {
	config := tgbotapi.NewCallback(c.CallbackQueryID, c.Text)
	config.ShowAlert = c.ShowAlert
	return config
}

type EditMessageReplyMarkupConfig struct {
	ChatID      int64
	MessageID   int
	ReplyMarkup *InlineKeyboardMarkup
}

func NewEditMessageReplyMarkup(chatID int64, messageID int, replyMarkup *InlineKeyboardMarkup) EditMessageReplyMarkupConfig {
	return EditMessageReplyMarkupConfig{
		ChatID:      chatID,
		MessageID:   messageID,
		ReplyMarkup: replyMarkup,
	}
}

func (c EditMessageReplyMarkupConfig) ToChattable() tgbotapi.Chattable {
	return tgbotapi.NewEditMessageReplyMarkup(c.ChatID, c.MessageID, *c.ReplyMarkup)
}

type UpdateConfig struct {
	Offset  int
	Limit   int
	Timeout int
}

type ChatAction string

const (
	ActionTyping      ChatAction = "typing"
	ActionUploadPhoto ChatAction = "upload_photo"
)

type Client interface {
	Send(msg MessageConfig) (*Message, error)
	Request(msg MessageConfig) (*tgbotapi.APIResponse, error)
	SendChatAction(chatID int64, action ChatAction) error
	DownloadFile(fileID string) ([]byte, error)
	GetUpdatesChan(config UpdateConfig) <-chan tgbotapi.Update
	NewUpdate(offset, timeout, limit int) UpdateConfig
	Self() User
}
