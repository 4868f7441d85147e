package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDatabaseDSNMergesDefaultParams(t *testing.T) {
	cfg := NewFromMap(map[string]any{
		DATABASE_DSN: "bot.db?_busy_timeout=5000",
	})

	assert.Equal(
		t,
		"bot.db?_busy_timeout=5000&_cache=shared&_journal=WAL&_synchronous=NORMAL",
		cfg.GetDatabaseDSN(),
	)
}

func TestGetDatabaseDSNWithoutParams(t *testing.T) {
	cfg := NewFromMap(map[string]any{
		DATABASE_DSN: "bot.db",
	})

	assert.Equal(
		t,
		"bot.db?_busy_timeout=10000&_cache=shared&_journal=WAL&_synchronous=NORMAL",
		cfg.GetDatabaseDSN(),
	)
}

func TestIsAllowed(t *testing.T) {
	tests := []struct {
		name    string
		cfg     TelegramConfig
		userID  int64
		chatID  int64
		allowed bool
	}{
		{
			name:    "empty lists allow everyone",
			cfg:     TelegramConfig{},
			userID:  1,
			chatID:  2,
			allowed: true,
		},
		{
			name:    "listed user",
			cfg:     TelegramConfig{AllowedUsers: []int64{1}},
			userID:  1,
			chatID:  2,
			allowed: true,
		},
		{
			name:    "unlisted user",
			cfg:     TelegramConfig{AllowedUsers: []int64{1}},
			userID:  3,
			chatID:  2,
			allowed: false,
		},
		{
			name:    "listed chat admits any user",
			cfg:     TelegramConfig{AllowedChats: []int64{2}},
			userID:  3,
			chatID:  2,
			allowed: true,
		},
		{
			name:    "either list is enough",
			cfg:     TelegramConfig{AllowedUsers: []int64{1}, AllowedChats: []int64{2}},
			userID:  1,
			chatID:  99,
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.cfg.IsAllowed(tt.userID, tt.chatID))
		})
	}
}
