package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type groqImpl struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// newGroqImpl creates a new Groq implementation
func newGroqImpl(cfg Config) *groqImpl {
	return &groqImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request to the Groq API
func (g *groqImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := g.transformRequest(req)
	groqResp, err := g.callAPI(ctx, groqReq)
	if err != nil {
		return nil, err
	}
	return g.transformResponse(groqResp)
}

// Model returns the model being used
func (g *groqImpl) Model() string {
	return g.model
}

// callAPI sends a request to the Groq chat completions endpoint
func (g *groqImpl) callAPI(ctx context.Context, req groqRequest) (*groqResponse, error) {
	url := fmt.Sprintf("%s/chat/completions", g.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("groq: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("groq: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("groq: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("groq: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result groqResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("groq: failed to decode response: %w", err)
	}

	return &result, nil
}

// transformRequest converts the normalized request to the wire format
func (g *groqImpl) transformRequest(req *Request) groqRequest {
	var messages []groqMessage

	if req.SystemInstruction != nil {
		messages = append(messages, groqMessage{
			Role:    "system",
			Content: req.SystemInstruction.Text,
		})
	}

	for _, msg := range req.Messages {
		messages = append(messages, groqMessage{
			Role:    msg.Role,
			Content: msg.Text,
		})
	}

	return groqRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
}

// transformResponse converts the wire response to the normalized format
func (g *groqImpl) transformResponse(resp *groqResponse) (*Response, error) {
	if len(resp.Choices) == 0 {
		return nil, errors.New("groq: empty response, no choices returned")
	}

	choice := resp.Choices[0]
	return &Response{
		Content: Message{
			Role: choice.Message.Role,
			Text: choice.Message.Content,
		},
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
