package telegram

import (
	"sync"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
)

// TestClient records outbound traffic so tests can assert on it.
type TestClient struct {
	mu        sync.Mutex
	sent      []MessageConfig
	requested []MessageConfig
	actions   []ChatAction

	FileData map[string][]byte
	SendErr  error

	nextMessageID int
}

func NewTestClient() *TestClient {
	return &TestClient{
		FileData: make(map[string][]byte),
	}
}

func (c *TestClient) Send(msg MessageConfig) (*Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SendErr != nil {
		return nil, c.SendErr
	}
	c.sent = append(c.sent, msg)
	c.nextMessageID++
	return &Message{MessageID: c.nextMessageID}, nil
}

func (c *TestClient) Request(msg MessageConfig) (*tgbotapi.APIResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requested = append(c.requested, msg)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (c *TestClient) SendChatAction(chatID int64, action ChatAction) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.actions = append(c.actions, action)
	return nil
}

func (c *TestClient) DownloadFile(fileID string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.FileData[fileID], nil
}

func (c *TestClient) GetUpdatesChan(config UpdateConfig) <-chan tgbotapi.Update {
	ch := make(chan tgbotapi.Update)
	close(ch)
	return ch
}

func (c *TestClient) NewUpdate(offset, timeout, limit int) UpdateConfig {
	return UpdateConfig{Offset: offset, Limit: limit, Timeout: timeout}
}

func (c *TestClient) Self() User {
	return User{ID: 1, UserName: "test_bot"}
}

func (c *TestClient) SentMessages() []MessageConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]MessageConfig{}, c.sent...)
}

func (c *TestClient) Requested() []MessageConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]MessageConfig{}, c.requested...)
}

func (c *TestClient) Actions() []ChatAction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ChatAction{}, c.actions...)
}

func (c *TestClient) LastText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.sent) - 1; i >= 0; i-- {
		if text, ok := c.sent[i].(TextMessage); ok {
			return text.Text
		}
	}
	return ""
}
