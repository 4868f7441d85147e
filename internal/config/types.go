package config

import "slices"

type TelegramConfig struct {
	Token        string  `koanf:"token"`
	AllowedUsers []int64 `koanf:"allowed_users"`
	AllowedChats []int64 `koanf:"allowed_chats"`
}

// IsAllowed reports whether an update from this user in this chat should be
// handled. Empty allow lists permit everyone.
func (c TelegramConfig) IsAllowed(userID int64, chatID int64) bool {
	if len(c.AllowedUsers) == 0 && len(c.AllowedChats) == 0 {
		return true
	}
	return c.IsUserAllowed(userID) || c.IsChatAllowed(chatID)
}

func (c TelegramConfig) IsUserAllowed(userID int64) bool {
	if len(c.AllowedUsers) == 0 {
		return false
	}
	return slices.Contains(c.AllowedUsers, userID)
}

func (c TelegramConfig) IsChatAllowed(chatID int64) bool {
	if len(c.AllowedChats) == 0 {
		return false
	}
	return slices.Contains(c.AllowedChats, chatID)
}

type GeminiConfig struct {
	APIKey string `koanf:"api_key"`
	Model  string `koanf:"model"`
}

type LoggingConfig struct {
	Level       string `koanf:"level"`
	WriteInFile bool   `koanf:"write_in_file"`
	FilePath    string `koanf:"file_path"`
}

type HTTPConfig struct {
	Proxy   string   `koanf:"proxy"`
	NoProxy []string `koanf:"no_proxy"`
}

type GlobalConfig struct {
	InterfaceLanguage string `koanf:"interface_language"`
}
