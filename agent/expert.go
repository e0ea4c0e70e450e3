package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Expert represents a chat with a business expert.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	chat        *genai.Chat
}

// Start opens the expert's chat session against the given client.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content, nil
}

// NewPlanner creates the financial planning expert. The rendered forecast
// reports are embedded in its system instruction, so the expert reasons on
// the same figures the user sees, and nothing else.
func NewPlanner(reports ...string) *Expert {
	instruction := `
	You are a personal financial planner. The user maintains a plan of cash
	accounts, recurring and planned items, investments, receivables and debts,
	and asks you questions about the projections computed from it.

	Below are the rendered forecast reports, exactly as the user sees them.
	Answer from these figures only. If a question needs data that is not in
	the reports, say so, do not invent numbers.

	All projections are simple deterministic arithmetic, amounts in different
	currencies are never converted. Remind the user of that when it matters.
	`
	if len(reports) > 0 {
		instruction += "\n\n# Reports\n\n" + strings.Join(reports, "\n\n")
	}

	return &Expert{
		Name: "Planner",
		Description: `The financial planner. It knows the user's plan and the
		projections computed from it, and answers questions about them.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}
