// Package registry persists the list of saved conversations as a single JSON
// document. The whole document is read and rewritten on every mutation; there
// is no locking, so concurrent writers race with last-writer-wins semantics.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Status is the lifecycle state of a saved conversation.
type Status string

const (
	StatusActive  Status = "active"
	StatusDone    Status = "done"
	StatusRemoved Status = "removed"
)

// Conversation is one saved session in the registry.
type Conversation struct {
	ID          int        `json:"id"`
	SessionID   string     `json:"sessionId"`
	Project     string     `json:"project"`
	Description string     `json:"description"`
	FirstPrompt string     `json:"firstPrompt,omitempty"`
	SavedAt     time.Time  `json:"savedAt"`
	Status      Status     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Registry is the persisted document: an ordered list of conversations.
type Registry struct {
	Conversations []Conversation `json:"conversations"`
}

// NextID returns one greater than the current maximum conversation ID,
// or 1 for an empty registry.
func (r *Registry) NextID() int {
	max := 0
	for _, c := range r.Conversations {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

// FindByID returns the conversation with the given ID, or nil.
func (r *Registry) FindByID(id int) *Conversation {
	for i := range r.Conversations {
		if r.Conversations[i].ID == id {
			return &r.Conversations[i]
		}
	}
	return nil
}

// FindBySessionID returns the conversation for a session ID, or nil.
// Session IDs are unique in the registry: re-saving reactivates in place.
func (r *Registry) FindBySessionID(sessionID string) *Conversation {
	for i := range r.Conversations {
		if r.Conversations[i].SessionID == sessionID {
			return &r.Conversations[i]
		}
	}
	return nil
}

// ByStatus returns conversations with the given status, in registry order.
func (r *Registry) ByStatus(status Status) []Conversation {
	var out []Conversation
	for _, c := range r.Conversations {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// Store reads and writes the registry file.
type Store struct {
	path string
}

// NewStore creates a store for the given registry file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the registry file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the registry document. A missing file yields an empty registry;
// a malformed file is a parse error.
func (s *Store) Load() (*Registry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &Registry{Conversations: []Conversation{}}, nil
	} else if err != nil {
		return nil, err
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", s.path, err)
	}
	if reg.Conversations == nil {
		reg.Conversations = []Conversation{}
	}
	return &reg, nil
}

// Save overwrites the registry file with the full document, pretty-printed,
// creating parent directories as needed.
func (s *Store) Save(reg *Registry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// SaveResult reports what Save did for a session.
type SaveResult struct {
	Conversation *Conversation
	Reactivated  bool
	AlreadySaved bool
}

// SaveConversation creates a new entry for a session, or reactivates the
// existing one if it was marked done/removed. If the session is already
// saved and active, nothing is mutated and AlreadySaved is set.
// firstPrompt is recorded on new entries and used as the description when
// none is given.
func (s *Store) SaveConversation(sessionID, project, description, firstPrompt string) (SaveResult, error) {
	reg, err := s.Load()
	if err != nil {
		return SaveResult{}, err
	}

	if existing := reg.FindBySessionID(sessionID); existing != nil {
		if existing.Status == StatusActive {
			return SaveResult{Conversation: existing, AlreadySaved: true}, nil
		}
		existing.Status = StatusActive
		existing.SavedAt = time.Now()
		existing.CompletedAt = nil
		if description != "" {
			existing.Description = description
		}
		if err := s.Save(reg); err != nil {
			return SaveResult{}, err
		}
		return SaveResult{Conversation: existing, Reactivated: true}, nil
	}

	if description == "" {
		description = firstPrompt
	}
	if description == "" {
		description = "No description"
	}

	conv := Conversation{
		ID:          reg.NextID(),
		SessionID:   sessionID,
		Project:     project,
		Description: description,
		FirstPrompt: firstPrompt,
		SavedAt:     time.Now(),
		Status:      StatusActive,
	}
	reg.Conversations = append(reg.Conversations, conv)
	if err := s.Save(reg); err != nil {
		return SaveResult{}, err
	}
	return SaveResult{Conversation: &reg.Conversations[len(reg.Conversations)-1]}, nil
}

// ErrNotFound is returned by status transitions for unknown IDs.
type ErrNotFound struct {
	ID int
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("no conversation found with ID #%d", e.ID)
}

// MarkDone transitions a conversation to done and records the completion
// time. The registry is left unchanged for unknown IDs.
func (s *Store) MarkDone(id int) (*Conversation, error) {
	return s.transition(id, StatusDone, true)
}

// MarkRemoved transitions a conversation to removed.
// The registry is left unchanged for unknown IDs.
func (s *Store) MarkRemoved(id int) (*Conversation, error) {
	return s.transition(id, StatusRemoved, false)
}

func (s *Store) transition(id int, status Status, recordCompletion bool) (*Conversation, error) {
	reg, err := s.Load()
	if err != nil {
		return nil, err
	}

	conv := reg.FindByID(id)
	if conv == nil {
		return nil, ErrNotFound{ID: id}
	}

	conv.Status = status
	if recordCompletion {
		now := time.Now()
		conv.CompletedAt = &now
	}
	if err := s.Save(reg); err != nil {
		return nil, err
	}
	return conv, nil
}
