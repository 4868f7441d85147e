package session

import (
	"sync"

	"github.com/gevsen/Tg-bot/internal/ai"
)

const (
	DefaultTemperature    = 0.3
	DefaultTopP           = 0.9
	DefaultThinkingBudget = 4096

	MinTemperature = 0.0
	MaxTemperature = 2.0
	MinTopP        = 0.0
	MaxTopP        = 1.0
	MinBudget      = 0
	MaxBudget      = 24576

	// AdjustStep is the increment applied by the menu's +/- buttons.
	AdjustStep = 0.1
)

// Session holds one user's generation settings and their conversation
// with the model. The conversation is owned exclusively by the session.
type Session struct {
	Conversation     ai.Conversation
	Temperature      float64
	TopP             float64
	ThinkingBudget   int
	GroundingEnabled bool
	ThinkingVisible  bool
}

func New(conversation ai.Conversation) *Session {
	return &Session{
		Conversation:     conversation,
		Temperature:      DefaultTemperature,
		TopP:             DefaultTopP,
		ThinkingBudget:   DefaultThinkingBudget,
		GroundingEnabled: false,
		ThinkingVisible:  true,
	}
}

// Options maps the session's settings into a per-turn generation config.
func (s *Session) Options() ai.GenerationOptions {
	return ai.GenerationOptions{
		Temperature:     s.Temperature,
		TopP:            s.TopP,
		ThinkingBudget:  s.ThinkingBudget,
		IncludeThoughts: s.ThinkingVisible,
		Grounding:       s.GroundingEnabled,
	}
}

// Store maps user IDs to sessions for the lifetime of the process.
// Sessions are never evicted and are lost on restart.
type Store struct {
	mu              sync.Mutex
	sessions        map[int64]*Session
	newConversation func() ai.Conversation
}

func NewStore(newConversation func() ai.Conversation) *Store {
	return &Store{
		sessions:        make(map[int64]*Session),
		newConversation: newConversation,
	}
}

func (s *Store) GetOrCreate(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[userID]; ok {
		return session
	}
	session := New(s.newConversation())
	s.sessions[userID] = session
	return session
}

// Reset discards the user's session entirely: defaults for every setting
// and a freshly opened conversation.
func (s *Store) Reset(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := New(s.newConversation())
	s.sessions[userID] = session
	return session
}
