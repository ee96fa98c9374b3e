package usecase

import (
	"context"

	"ai-health-platform/internal/chat"
	repo "ai-health-platform/internal/chat/repository"
	"ai-health-platform/internal/intent"
	"ai-health-platform/internal/model"
	"ai-health-platform/pkg/llmprovider"
)

// Chat answers an authenticated user. The last persisted turns feed both the
// intent classifier and the prompt context, and both sides of the exchange
// are stored afterwards.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	rows, err := uc.repo.ListMessages(ctx, repo.ListMessagesOptions{
		UserID:     sc.UserID,
		Limit:      historyWindow,
		Descending: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat ListMessages: %v", err)
		return chat.ChatOutput{}, err
	}
	turns := turnsFromMessages(rows)

	result := intent.Classify(input.Message, turns)

	resp, err := uc.generate(ctx, result.Intent, turns, input.Message)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat GenerateContent: %v", err)
		return chat.ChatOutput{}, err
	}

	if _, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		UserID:  sc.UserID,
		Role:    "user",
		Content: input.Message,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Chat CreateMessage user: %v", err)
		return chat.ChatOutput{}, err
	}

	assistantOpt := repo.CreateMessageOptions{
		UserID:    sc.UserID,
		Role:      "assistant",
		Content:   resp.Content.Text,
		ModelUsed: &resp.ModelName,
	}
	if resp.Usage != nil {
		tokens := resp.Usage.TotalTokens
		assistantOpt.TokensUsed = &tokens
	}
	if _, err := uc.repo.CreateMessage(ctx, assistantOpt); err != nil {
		uc.l.Errorf(ctx, "uc.Chat CreateMessage assistant: %v", err)
		return chat.ChatOutput{}, err
	}

	return chat.ChatOutput{
		Reply:      resp.Content.Text,
		Intent:     result.Intent,
		Confidence: result.Confidence,
		Provider:   resp.ProviderName,
		Model:      resp.ModelName,
	}, nil
}

// PublicChat answers an anonymous session from the in-memory window. The
// reply never fails: LLM errors degrade to an intent-aware canned response.
func (uc *implUseCase) PublicChat(ctx context.Context, sessionID string, input chat.ChatInput) chat.ChatOutput {
	turns := uc.memory.Turns(sessionID)
	result := intent.Classify(input.Message, turns)

	output := chat.ChatOutput{
		Intent:     result.Intent,
		Confidence: result.Confidence,
	}

	resp, err := uc.generate(ctx, result.Intent, turns, input.Message)
	if err != nil {
		uc.l.Warnf(ctx, "uc.PublicChat GenerateContent: %v", err)
		output.Reply = intent.FallbackReply(result.Intent)
		output.Fallback = true
	} else {
		output.Reply = resp.Content.Text
		output.Provider = resp.ProviderName
		output.Model = resp.ModelName
	}

	uc.memory.Append(sessionID,
		intent.Turn{Role: "user", Content: input.Message},
		intent.Turn{Role: "assistant", Content: output.Reply},
	)
	return output
}

// History returns the caller's full conversation, oldest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) ([]chat.Message, error) {
	messages, err := uc.repo.ListMessages(ctx, repo.ListMessagesOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListMessages: %v", err)
		return nil, err
	}
	return messages, nil
}

func (uc *implUseCase) generate(ctx context.Context, in intent.Intent, turns []intent.Turn, message string) (*llmprovider.Response, error) {
	systemPrompt := intent.BuildContextualPrompt(in, turns)

	messages := make([]llmprovider.Message, 0, len(turns)+1)
	for _, t := range turns {
		messages = append(messages, llmprovider.Message{Role: t.Role, Text: t.Content})
	}
	messages = append(messages, llmprovider.Message{Role: "user", Text: message})

	return uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: systemPrompt},
		Messages:          messages,
		Temperature:       chatTemperature,
		MaxTokens:         chatMaxTokens,
	})
}

// turnsFromMessages converts newest-first rows into oldest-first turns.
func turnsFromMessages(rows []chat.Message) []intent.Turn {
	turns := make([]intent.Turn, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		turns = append(turns, intent.Turn{Role: rows[i].Role, Content: rows[i].Content})
	}
	return turns
}
