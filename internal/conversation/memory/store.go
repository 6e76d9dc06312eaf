package memory

import (
	"context"

	"art-historian/internal/conversation"
	"art-historian/internal/model"
)

func (s *implStore) GetOrCreate(ctx context.Context, id string, lang model.Language) (conversation.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.cache.Get(id)
	if !ok {
		conv = s.create(id, lang)
		return snapshot(conv), nil
	}

	conv.Language = lang
	return snapshot(conv), nil
}

// AppendTurns re-creates the entry when size or TTL eviction removed it
// while the caller was generating.
func (s *implStore) AppendTurns(ctx context.Context, id string, lang model.Language, turns ...conversation.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.cache.Get(id)
	if !ok {
		conv = s.create(id, lang)
	}

	conv.History = append(conv.History, turns...)
	conv.UpdatedAt = s.now()

	// Re-adding restarts the entry's TTL.
	s.cache.Add(id, conv)
	return nil
}

func (s *implStore) RecentHistory(ctx context.Context, id string, limit int) ([]conversation.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.cache.Get(id)
	if !ok {
		return nil, conversation.ErrConversationNotFound
	}

	history := conv.History
	if limit >= 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	out := make([]conversation.Turn, len(history))
	copy(out, history)
	return out, nil
}

func (s *implStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cache.Remove(id) {
		return conversation.ErrConversationNotFound
	}
	return nil
}

func (s *implStore) Len() int {
	return s.cache.Len()
}

// create must be called with s.mu held.
func (s *implStore) create(id string, lang model.Language) *conversation.Conversation {
	now := s.now()
	conv := &conversation.Conversation{
		ID:        id,
		Language:  lang,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.cache.Add(id, conv)
	return conv
}

func snapshot(c *conversation.Conversation) conversation.Conversation {
	out := *c
	out.History = make([]conversation.Turn, len(c.History))
	copy(out.History, c.History)
	return out
}
