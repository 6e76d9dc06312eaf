package usecase

import (
	"context"
	"errors"
	"fmt"

	"art-historian/internal/chat"
	"art-historian/internal/conversation"
	"art-historian/internal/formatter"
	"art-historian/internal/model"
	"art-historian/pkg/llmprovider"
)

// Chat answers one user turn. The whole read, generate, append sequence runs
// under the conversation's lock so concurrent calls for one id never lose turns.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	lang := input.Language
	if !lang.IsSupported() {
		lang = model.DefaultLanguage
	}

	if input.ConversationID == "" {
		input.ConversationID = uc.newID()
	}
	id := input.ConversationID

	unlock := uc.locks.Lock(id)
	defer unlock()

	if _, err := uc.store.GetOrCreate(ctx, id, lang); err != nil {
		uc.l.Errorf(ctx, "%s: GetOrCreate: %v", LogPrefixChat, err)
		return chat.ChatOutput{}, err
	}

	history, err := uc.store.RecentHistory(ctx, id, uc.cfg.HistoryWindow)
	if err != nil {
		uc.l.Errorf(ctx, "%s: RecentHistory: %v", LogPrefixChat, err)
		return chat.ChatOutput{}, err
	}

	req := uc.buildRequest(ctx, lang, history, input)

	genCtx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(genCtx, req)
	if err != nil {
		uc.l.Errorf(ctx, "%s: GenerateContent: %v", LogPrefixChat, err)
		return chat.ChatOutput{}, classifyGenerationError(err)
	}

	text := resp.Text()
	if text == "" {
		uc.l.Warnf(ctx, "%s: empty generation for conversation %s", LogPrefixChat, id)
		return chat.ChatOutput{}, chat.ErrGenerationEmpty
	}

	formatted := formatter.Format(text, lang)

	if err := uc.store.AppendTurns(ctx, id, lang,
		conversation.Turn{Role: conversation.RoleUser, Content: input.Message},
		conversation.Turn{Role: conversation.RoleAssistant, Content: formatted},
	); err != nil {
		uc.l.Errorf(ctx, "%s: AppendTurns: %v", LogPrefixChat, err)
		return chat.ChatOutput{}, err
	}

	return chat.ChatOutput{
		Response:       formatted,
		ConversationID: id,
		Language:       lang,
	}, nil
}

// Reset removes a conversation and its history.
func (uc *implUseCase) Reset(ctx context.Context, conversationID string) error {
	unlock := uc.locks.Lock(conversationID)
	defer unlock()

	err := uc.store.Delete(ctx, conversationID)
	if err != nil && !errors.Is(err, conversation.ErrConversationNotFound) {
		uc.l.Errorf(ctx, "%s: Delete: %v", LogPrefixReset, err)
		return err
	}
	return nil
}

func classifyGenerationError(err error) error {
	if errors.Is(err, llmprovider.ErrProviderTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", chat.ErrGenerationTimeout, err)
	}
	return fmt.Errorf("%w: %w", chat.ErrGenerationFailed, err)
}
