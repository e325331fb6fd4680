package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// completionServer returns an httptest server that answers every request with
// the given completion content.
func completionServer(t *testing.T, content string, check func(r *http.Request, body map[string]interface{})) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if check != nil {
			check(r, body)
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestGenerateDietPlanParsesCompletion(t *testing.T) {
	t.Parallel()

	planJSON := `{
  "dailyCalories": 2200,
  "proteinGoal": 150,
  "carbGoal": 220,
  "fatGoal": 70,
  "meals": [
    {"day": "Monday", "breakfast": "Oatmeal", "lunch": "Chicken salad", "dinner": "Salmon", "snacks": ["Apple", "Almonds"]}
  ]
}`
	ts := completionServer(t, planJSON, func(r *http.Request, body map[string]interface{}) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if _, ok := body["response_format"]; !ok {
			t.Errorf("diet generation should request JSON mode")
		}
	})
	defer ts.Close()

	c := &Client{APIKey: "test-key", BaseURL: ts.URL, HTTPClient: ts.Client()}
	plan, err := c.GenerateDietPlan(context.Background(), DietPlanRequest{
		Age: 30, Weight: 80, FitnessGoal: "muscle_gain", Allergies: "peanuts",
	})
	if err != nil {
		t.Fatalf("generate diet plan: %v", err)
	}
	if plan.DailyCalories != 2200 || plan.ProteinGoal != 150 {
		t.Fatalf("unexpected macros: %+v", plan)
	}
	if len(plan.Meals) != 1 || plan.Meals[0].Day != "Monday" || len(plan.Meals[0].Snacks) != 2 {
		t.Fatalf("unexpected meals: %+v", plan.Meals)
	}
}

func TestGenerateDietPlanRejectsMalformedCompletion(t *testing.T) {
	t.Parallel()

	ts := completionServer(t, "sorry, I can only answer fitness questions", nil)
	defer ts.Close()

	c := &Client{APIKey: "test-key", BaseURL: ts.URL, HTTPClient: ts.Client()}
	_, err := c.GenerateDietPlan(context.Background(), DietPlanRequest{Age: 30, Weight: 80, FitnessGoal: "maintenance"})
	if !errors.Is(err, ErrMalformedCompletion) {
		t.Fatalf("expected ErrMalformedCompletion, got %v", err)
	}
}

func TestChatReply(t *testing.T) {
	t.Parallel()

	ts := completionServer(t, "Great job! 💪", func(r *http.Request, body map[string]interface{}) {
		if _, ok := body["response_format"]; ok {
			t.Errorf("chat should not request JSON mode")
		}
	})
	defer ts.Close()

	c := &Client{APIKey: "test-key", BaseURL: ts.URL, HTTPClient: ts.Client()}
	reply, err := c.ChatReply(context.Background(), "How do I stay motivated?")
	if err != nil {
		t.Fatalf("chat reply: %v", err)
	}
	if reply != "Great job! 💪" {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestChatReplyFallsBackOnEmptyContent(t *testing.T) {
	t.Parallel()

	ts := completionServer(t, "", nil)
	defer ts.Close()

	c := &Client{APIKey: "test-key", BaseURL: ts.URL, HTTPClient: ts.Client()}
	reply, err := c.ChatReply(context.Background(), "hello")
	if err != nil {
		t.Fatalf("chat reply: %v", err)
	}
	if reply == "" {
		t.Fatalf("expected fallback reply for empty completion")
	}
}

func TestUpstreamErrors(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := &Client{APIKey: "test-key", BaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, err := c.ChatReply(context.Background(), "hi"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream for non-2xx, got %v", err)
	}

	missingKey := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, err := missingKey.ChatReply(context.Background(), "hi"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream for missing API key, got %v", err)
	}
}
