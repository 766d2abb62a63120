package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/planora/planora/modules/projects/domain/workitem"
)

const systemPrompt = `You are a project planning assistant. Given a project description,
produce a work breakdown structure as a JSON array. Each element has:
"content" (string, required), "parent_ref" (integer, the 1-based position of the
parent element in this same array, or 0 for a top-level item), "order" (integer,
sibling rank starting at 0) and optionally "deadline" (RFC 3339 timestamp).
List every parent before its children. Respond with the JSON array only.`

// OpenAIGenerator produces candidate work breakdowns through the OpenAI chat
// completions API. The engine treats its output as untrusted input: only
// structural well-formedness is checked downstream.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, projectName, prompt string) ([]workitem.CandidateItem, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Project: %s\n\n%s", projectName, prompt)},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty completion response")
	}

	var candidates []workitem.CandidateItem
	raw := stripCodeFence(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &candidates); err != nil {
		return nil, fmt.Errorf("openai: decoding candidate list: %w", err)
	}
	return candidates, nil
}

// stripCodeFence tolerates models wrapping the JSON array in a markdown code
// block despite the instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
