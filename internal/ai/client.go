// Package ai wraps the external chat-completion API used for diet-plan
// generation and coach chat replies. It is the only component that leaves the
// process boundary besides the database.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fitflow/fitness-app/internal/domain"
)

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4o"
	defaultTimeout = 30 * time.Second
)

// Error kinds the HTTP layer distinguishes. A transport or non-2xx failure is
// ErrUpstream; a completion that arrives but does not parse into the mandated
// shape is ErrMalformedCompletion.
var (
	ErrUpstream            = errors.New("completion request to upstream AI failed")
	ErrMalformedCompletion = errors.New("upstream AI returned a malformed completion")
)

const coachSystemPrompt = "You are FitBot AI, a helpful fitness coach and nutritionist. " +
	"Provide friendly, motivational, and accurate advice about fitness, nutrition, and mental health. " +
	"Keep responses concise but informative. Use emojis appropriately to make the conversation engaging."

const nutritionistSystemPrompt = "You are a professional nutritionist. " +
	"Create personalized meal plans based on user goals and restrictions. Respond with valid JSON only."

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// DietPlanContent is the JSON shape the diet prompt mandates from the model.
type DietPlanContent struct {
	DailyCalories int              `json:"dailyCalories"`
	ProteinGoal   int              `json:"proteinGoal"`
	CarbGoal      int              `json:"carbGoal"`
	FatGoal       int              `json:"fatGoal"`
	Meals         []domain.MealDay `json:"meals"`
}

// DietPlanRequest carries the profile attributes the prompt is built from.
type DietPlanRequest struct {
	Age         int
	Weight      float64
	FitnessGoal string
	Allergies   string
}

// GenerateDietPlan asks the model for a 7-day meal plan in constrained JSON
// mode and parses the completion into DietPlanContent.
func (c *Client) GenerateDietPlan(ctx context.Context, req DietPlanRequest) (*DietPlanContent, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a personalized weekly meal plan for a %d-year-old person weighing %gkg with a fitness goal of %s.",
		req.Age, req.Weight, req.FitnessGoal)
	if req.Allergies != "" {
		fmt.Fprintf(&sb, " They have the following allergies/restrictions: %s.", req.Allergies)
	}
	sb.WriteString(`

Provide a JSON response with the following structure:
{
  "dailyCalories": number,
  "proteinGoal": number,
  "carbGoal": number,
  "fatGoal": number,
  "meals": [
    {
      "day": "Monday",
      "breakfast": "meal description",
      "lunch": "meal description",
      "dinner": "meal description",
      "snacks": ["snack1", "snack2"]
    }
  ]
}
Include all 7 days of the week in "meals".`)

	content, err := c.complete(ctx, nutritionistSystemPrompt, sb.String(), true)
	if err != nil {
		return nil, err
	}

	var plan DietPlanContent
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}
	return &plan, nil
}

// ChatReply sends a user message with the coach persona and returns the raw
// text reply.
func (c *Client) ChatReply(ctx context.Context, message string) (string, error) {
	content, err := c.complete(ctx, coachSystemPrompt, message, false)
	if err != nil {
		return "", err
	}
	if content == "" {
		content = "I'm sorry, I couldn't process that. Please try again."
	}
	return content, nil
}

// --- wire types for the chat-completions endpoint ---

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete performs one chat-completion round trip. jsonMode constrains the
// model output to a JSON object.
func (c *Client) complete(ctx context.Context, system, user string, jsonMode bool) (string, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return "", fmt.Errorf("%w: missing API key", ErrUpstream)
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	reqBody := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	if jsonMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal completion payload: %w", err)
	}

	url := baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrMalformedCompletion)
	}
	return parsed.Choices[0].Message.Content, nil
}
