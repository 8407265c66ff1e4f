package sessions

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single entry in a session transcript.
type Turn struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Session owns the ordered transcript for one conversation. Transcripts
// live for the process lifetime; there is no eviction or size bound.
type Session struct {
	id        string
	mu        sync.Mutex
	turns     []Turn
	createdAt time.Time
	updatedAt time.Time
}

func newSession(id string) *Session {
	now := time.Now()
	return &Session{
		id:        id,
		createdAt: now,
		updatedAt: now,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Append records a single turn at the end of the transcript.
func (s *Session) Append(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(role, content)
}

func (s *Session) appendLocked(role, content string) {
	s.turns = append(s.turns, Turn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	s.updatedAt = time.Now()
}

// Turns returns a copy of the transcript in chronological order.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := make([]Turn, len(s.turns))
	copy(turns, s.turns)
	return turns
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Exchange runs gen against the transcript so far and, on success, appends
// the question and the generated answer as a user/assistant turn pair. The
// session lock is held for the whole call, so concurrent exchanges on the
// same session serialize in arrival order and each one observes all prior
// turns.
func (s *Session) Exchange(question string, gen func(history []Turn) (string, error)) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	answer, err := gen(s.turns)
	if err != nil {
		return "", err
	}

	s.appendLocked(RoleUser, question)
	s.appendLocked(RoleAssistant, answer)
	return answer, nil
}

// History renders the transcript for prompt embedding.
func (s *Session) History() string {
	return FormatHistory(s.Turns())
}

// FormatHistory renders turns as "User:"/"Assistant:" lines.
func FormatHistory(turns []Turn) string {
	var b strings.Builder
	for _, turn := range turns {
		switch turn.Role {
		case RoleUser:
			b.WriteString(fmt.Sprintf("User: %s\n", turn.Content))
		case RoleAssistant:
			b.WriteString(fmt.Sprintf("Assistant: %s\n", turn.Content))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Store is the process-wide session map. The map itself is guarded by an
// RWMutex; per-transcript ordering is the session's own concern.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// GetMemory returns the session for the given key, creating an empty one on
// first reference. Both callers of the same key get the same handle, so an
// append through one is visible through the other.
func (s *Store) GetMemory(sessionID string) *Session {
	s.mu.RLock()
	session, exists := s.sessions[sessionID]
	s.mu.RUnlock()
	if exists {
		return session
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if session, exists = s.sessions[sessionID]; exists {
		return session
	}
	session = newSession(sessionID)
	s.sessions[sessionID] = session
	return session
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sessions returns the identifiers of all live sessions.
func (s *Store) Sessions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}
