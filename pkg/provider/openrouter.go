package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OpenRouter is a Provider backed by an OpenRouter-compatible
// chat-completions API.
type OpenRouter struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewOpenRouter builds a provider against baseURL. httpTimeout is the
// transport ceiling; per-call deadlines come from the context.
func NewOpenRouter(baseURL, apiKey string, httpTimeout time.Duration) *OpenRouter {
	return &OpenRouter{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// Invoke sends one chat-completion request. The context must carry a
// deadline; failures come back as *CallError.
func (p *OpenRouter) Invoke(ctx context.Context, req Request) (*Completion, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, ErrNoDeadline
	}

	body, err := json.Marshal(chatRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, NewCallError(KindInvalidRequest, req.Model, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, NewCallError(KindInvalidRequest, req.Model, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, NewCallError(ClassifyErr(err), req.Model, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, NewCallError(KindTransient, req.Model, err)
	}

	if resp.StatusCode != http.StatusOK {
		kind := ClassifyStatus(resp.StatusCode)
		ce := &CallError{
			Kind:   kind,
			Model:  req.Model,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("upstream status %d: %s", resp.StatusCode, truncate(data, 256)),
		}
		return nil, ce
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, NewCallError(KindTransient, req.Model, fmt.Errorf("malformed response: %w", err))
	}
	if parsed.Error != nil {
		return nil, NewCallError(KindTransient, req.Model, fmt.Errorf("upstream error: %s", parsed.Error.Message))
	}
	if len(parsed.Choices) == 0 {
		return nil, NewCallError(KindTransient, req.Model, fmt.Errorf("empty choices"))
	}

	choice := parsed.Choices[0]
	return &Completion{
		Text:         choice.Message.Content,
		InputTokens:  parsed.Usage.PromptTokens,
		OutputTokens: parsed.Usage.CompletionTokens,
		Latency:      time.Since(start),
		FinishReason: choice.FinishReason,
	}, nil
}

func truncate(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	return string(data[:n]) + "..."
}
