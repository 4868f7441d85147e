package core

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gevsen/Tg-bot/internal/config"
	"github.com/gevsen/Tg-bot/internal/database"
	"github.com/gevsen/Tg-bot/internal/logger"
	"github.com/gevsen/Tg-bot/internal/telegram"
)

type fakeCommand struct {
	name     string
	aliases  []string
	executed chan telegram.Update
}

func newFakeCommand(name string, aliases ...string) *fakeCommand {
	return &fakeCommand{
		name:     name,
		aliases:  aliases,
		executed: make(chan telegram.Update, 8),
	}
}

func (c *fakeCommand) Name() string      { return c.name }
func (c *fakeCommand) Aliases() []string { return c.aliases }

func (c *fakeCommand) Execute(update telegram.Update) error {
	c.executed <- update
	return nil
}

func (c *fakeCommand) wasExecuted(t *testing.T) telegram.Update {
	t.Helper()
	select {
	case update := <-c.executed:
		return update
	case <-time.After(time.Second):
		t.Fatal("command was not executed")
		return telegram.Update{}
	}
}

func (c *fakeCommand) wasNotExecuted(t *testing.T) {
	t.Helper()
	select {
	case <-c.executed:
		t.Fatal("command was executed unexpectedly")
	case <-time.After(50 * time.Millisecond):
	}
}

type fakeCallbackHandler struct {
	tokens chan string
}

func (h *fakeCallbackHandler) HandleCallback(query *telegram.CallbackQuery, token string) error {
	h.tokens <- token
	return nil
}

type fakeDB struct {
	mu    sync.Mutex
	users map[int64]database.User
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[int64]database.User)}
}

func (d *fakeDB) GetUser(id int64) (*database.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	user, ok := d.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &user, nil
}

func (d *fakeDB) SaveUser(user database.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[user.ID] = user
	return nil
}

func (d *fakeDB) Close() error { return nil }

func newTestBot(cfgValues map[string]any) (*Bot, *telegram.TestClient, *fakeDB, *logger.TestLogger) {
	tg := telegram.NewTestClient()
	db := newFakeDB()
	log := logger.NewTestLogger()
	bot := NewBot(tg, log, db, config.NewFromMap(cfgValues))
	return bot, tg, db, log
}

func messageUpdate(userID, chatID int64, text string) telegram.Update {
	return telegram.Update{
		Message: &tgbotapi.Message{
			MessageID: 10,
			From:      &tgbotapi.User{ID: userID, FirstName: "Alice", UserName: "alice"},
			Chat:      tgbotapi.Chat{ID: chatID},
			Text:      text,
		},
	}
}

func TestDispatchesCommandByName(t *testing.T) {
	bot, _, _, _ := newTestBot(nil)
	cmd := newFakeCommand("ping")
	bot.RegisterCommand(cmd)

	bot.handleUpdate(messageUpdate(7, 100, "/ping"))

	update := cmd.wasExecuted(t)
	assert.Equal(t, "/ping", update.Message.Text)
}

func TestDispatchesCommandByAlias(t *testing.T) {
	bot, _, _, _ := newTestBot(nil)
	cmd := newFakeCommand("ping", "p")
	bot.RegisterCommand(cmd)

	bot.handleUpdate(messageUpdate(7, 100, "/p"))

	cmd.wasExecuted(t)
}

func TestIgnoresCommandAddressedToAnotherBot(t *testing.T) {
	bot, _, _, _ := newTestBot(nil)
	cmd := newFakeCommand("ping")
	bot.RegisterCommand(cmd)

	bot.handleUpdate(messageUpdate(7, 100, "/ping@other_bot"))
	cmd.wasNotExecuted(t)

	// Self() of the test client reports test_bot.
	bot.handleUpdate(messageUpdate(7, 100, "/ping@test_bot"))
	cmd.wasExecuted(t)
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	bot, _, _, _ := newTestBot(nil)
	cmd := newFakeCommand("ping")
	bot.RegisterCommand(cmd)
	fallback := newFakeCommand("chat")
	bot.RegisterFallback(fallback)

	bot.handleUpdate(messageUpdate(7, 100, "/pong"))

	cmd.wasNotExecuted(t)
	fallback.wasNotExecuted(t)
}

func TestFreeFormMessageGoesToFallback(t *testing.T) {
	bot, _, _, _ := newTestBot(nil)
	fallback := newFakeCommand("chat")
	bot.RegisterFallback(fallback)

	bot.handleUpdate(messageUpdate(7, 100, "hello there"))

	update := fallback.wasExecuted(t)
	assert.Equal(t, "hello there", update.Message.Text)
}

func TestPhotoWithoutTextGoesToFallback(t *testing.T) {
	bot, _, _, _ := newTestBot(nil)
	fallback := newFakeCommand("chat")
	bot.RegisterFallback(fallback)

	update := messageUpdate(7, 100, "")
	update.Message.Photo = []tgbotapi.PhotoSize{{FileID: "photo"}}
	bot.handleUpdate(update)

	fallback.wasExecuted(t)
}

func TestUnauthorizedUserIsDropped(t *testing.T) {
	bot, _, _, log := newTestBot(map[string]any{
		"telegram.allowed_users": []int64{99},
	})
	fallback := newFakeCommand("chat")
	bot.RegisterFallback(fallback)

	bot.handleUpdate(messageUpdate(7, 100, "hello"))

	fallback.wasNotExecuted(t)
	assert.True(t, log.HasEntry("warn", "Unauthorized access attempt"))
}

func TestCallbackIsRoutedByPrefix(t *testing.T) {
	bot, tg, _, _ := newTestBot(nil)
	handler := &fakeCallbackHandler{tokens: make(chan string, 1)}
	bot.RegisterCallbackHandler("menu", handler)

	bot.handleUpdate(telegram.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			From: &tgbotapi.User{ID: 7},
			Data: "menu temp:inc",
			Message: &tgbotapi.Message{
				MessageID: 42,
				Chat:      tgbotapi.Chat{ID: 100},
			},
		},
	})

	select {
	case token := <-handler.tokens:
		assert.Equal(t, "temp:inc", token)
	case <-time.After(time.Second):
		t.Fatal("callback handler was not invoked")
	}

	// The query is answered even when a handler runs.
	requested := tg.Requested()
	require.Len(t, requested, 1)
	answer := requested[0].(telegram.CallbackConfig)
	assert.Equal(t, "cb-1", answer.CallbackQueryID)
}

func TestNewUsersAreStored(t *testing.T) {
	bot, _, db, _ := newTestBot(nil)
	fallback := newFakeCommand("chat")
	bot.RegisterFallback(fallback)

	bot.handleUpdate(messageUpdate(7, 100, "hello"))
	fallback.wasExecuted(t)

	stored, err := db.GetUser(7)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Username)
	assert.Equal(t, "Alice", stored.FirstName)
}

func TestChangedUsernameIsUpdated(t *testing.T) {
	bot, _, db, _ := newTestBot(nil)
	require.NoError(t, db.SaveUser(database.User{ID: 7, FirstName: "Alice", Username: "old_name"}))

	bot.handleUpdate(messageUpdate(7, 100, "hello"))

	stored, err := db.GetUser(7)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Username)
}
