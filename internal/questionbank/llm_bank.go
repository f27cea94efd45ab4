package questionbank

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edforge/readypath/internal/llm"
)

// LLMBank implements Bank using the LLM provider.
type LLMBank struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMBank with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMBank {
	return &LLMBank{provider: provider, config: cfg}
}

// questionOutput is one raw LLM question before validation.
type questionOutput struct {
	Text        string   `json:"text"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	CellCode    string   `json:"cell_code"`
	Difficulty  int      `json:"difficulty"`
}

// setOutput is the raw LLM response envelope.
type setOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate produces a validated question set for the given input.
func (b *LLMBank) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	if input.Count <= 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", input.Count)
	}
	if b.config.MaxQuestions > 0 && input.Count > b.config.MaxQuestions {
		return nil, fmt.Errorf("question count %d exceeds the maximum of %d", input.Count, b.config.MaxQuestions)
	}

	ctx = llm.WithPurpose(ctx, "readiness-check")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   b.config.MaxTokens,
		Temperature: b.config.Temperature,
	}

	resp, err := b.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw setOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Questions) != input.Count {
		return nil, &ValidationError{
			Validator: "count",
			Message:   fmt.Sprintf("expected %d questions, got %d", input.Count, len(raw.Questions)),
			Retryable: true,
		}
	}

	questions := make([]Question, 0, len(raw.Questions))
	for _, rq := range raw.Questions {
		q := Question{
			Text:        rq.Text,
			Choices:     rq.Choices,
			Answer:      rq.Answer,
			Explanation: rq.Explanation,
			CellCode:    rq.CellCode,
			Difficulty:  rq.Difficulty,
		}

		// Run validators in order.
		for _, v := range b.config.Validators {
			if verr := v.Validate(&q, input); verr != nil {
				return nil, verr
			}
		}
		questions = append(questions, q)
	}

	return questions, nil
}
