// Package assistant proxies free-text queries and safety recommendations
// through the OpenAI chat API, degrading to static recommendations when the
// model is not configured or misbehaves.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jonboulle/clockwork"
	openai "github.com/sashabaranov/go-openai"

	"go-suraksha/datasets"
	"go-suraksha/types"
)

// ErrUnavailable is returned by Query when no model credential is
// configured. Recommendations never returns it; that path falls back.
var ErrUnavailable = errors.New("ai service is not available")

// completionClient is the slice of the OpenAI client the assistant uses.
// *openai.Client satisfies it; tests substitute a fake.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Assistant struct {
	client completionClient
	loader *datasets.Loader
	clock  clockwork.Clock
}

// New builds an assistant. A nil client disables the model: Query fails
// with ErrUnavailable and Recommendations serves the static fallback.
func New(client *openai.Client, loader *datasets.Loader, clock clockwork.Clock) *Assistant {
	a := &Assistant{loader: loader, clock: clock}
	if client != nil {
		a.client = client
	}
	return a
}

// Enabled reports whether a model client is configured.
func (a *Assistant) Enabled() bool {
	return a.client != nil
}

const defaultContext = "disaster management and safety"

// Query sends a user query to the model with situational framing. The
// underlying model error is logged, never returned to the caller.
func (a *Assistant) Query(ctx context.Context, query, queryContext string) (*types.AIQueryResponse, error) {
	if a.client == nil {
		return nil, ErrUnavailable
	}

	if queryContext == "" {
		queryContext = defaultContext
	}
	prompt := fmt.Sprintf(`You are Suraksha Setu AI Assistant, an expert in disaster management, environmental safety, and emergency response in India.

Context: %s

User Query: %s

Provide a helpful, accurate, and actionable response. Keep it concise but informative. If it's about an emergency, prioritize safety instructions.`, queryContext, query)

	text, err := a.complete(ctx, prompt)
	if err != nil {
		log.Printf("AI assistant error: %v", err)
		return nil, errors.New("error processing AI request")
	}

	return &types.AIQueryResponse{
		Query:     query,
		Response:  text,
		Timestamp: a.clock.Now().UTC(),
	}, nil
}

// Recommendations produces 3-5 safety recommendations from current
// conditions. Every failure mode falls back to a static list; the caller
// always gets recommendations and never an error.
func (a *Assistant) Recommendations(ctx context.Context) []types.Recommendation {
	if a.client == nil {
		return disabledRecommendations()
	}

	weather, err := a.loader.LoadObject(datasets.Weather)
	if err != nil {
		log.Printf("AI recommendations error: %v", err)
		return fallbackRecommendations()
	}
	aqi, err := a.loader.LoadObject(datasets.AQI)
	if err != nil {
		log.Printf("AI recommendations error: %v", err)
		return fallbackRecommendations()
	}
	alerts, err := a.loader.LoadList(datasets.Alerts)
	if err != nil {
		log.Printf("AI recommendations error: %v", err)
		return fallbackRecommendations()
	}

	current := datasets.Section(weather, "current")
	aqiCurrent := datasets.Section(aqi, "current")

	prompt := fmt.Sprintf(`Based on the following current conditions, provide 3-5 actionable safety recommendations for citizens:

Weather: Temperature %v°C, %v, Rain probability %v%%
AQI: %v (%v)
Active Alerts: %d alerts including severity levels

Provide recommendations as a JSON array with format: {"type": "category", "message": "recommendation text", "priority": "high/medium/low"}`,
		current["temperature"], current["condition"], current["rain_probability"],
		aqiCurrent["aqi"], aqiCurrent["category"], len(alerts))

	text, err := a.complete(ctx, prompt)
	if err != nil {
		log.Printf("AI recommendations error: %v", err)
		return fallbackRecommendations()
	}

	recs, ok := ExtractJSONArray(text)
	if !ok {
		log.Printf("AI recommendations: no JSON array in model output, using fallback")
		return modelFallbackRecommendations()
	}
	return recs
}

func (a *Assistant) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are Suraksha Setu AI Assistant for disaster management and citizen safety.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   500,
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// disabledRecommendations is served when no model credential is configured.
func disabledRecommendations() []types.Recommendation {
	return []types.Recommendation{
		{Type: "weather", Message: "Carry an umbrella, 80% chance of rain at 4 PM.", Priority: "medium"},
		{Type: "aqi", Message: "Avoid Sector 5 due to high AQI levels.", Priority: "high"},
		{Type: "safety", Message: "Check emergency kit batteries.", Priority: "low"},
	}
}

// modelFallbackRecommendations is served when the model answered but no
// JSON array could be recovered from its output.
func modelFallbackRecommendations() []types.Recommendation {
	return []types.Recommendation{
		{Type: "weather", Message: "Carry an umbrella, high chance of rain expected.", Priority: "medium"},
		{Type: "cyclone", Message: "Cyclone approaching coast. Follow evacuation orders.", Priority: "high"},
		{Type: "aqi", Message: "Air quality moderate. Sensitive groups should limit outdoor activities.", Priority: "medium"},
	}
}

// fallbackRecommendations is served when the model call or a dataset load
// fails outright.
func fallbackRecommendations() []types.Recommendation {
	return []types.Recommendation{
		{Type: "weather", Message: "Monitor weather updates regularly.", Priority: "medium"},
		{Type: "safety", Message: "Keep emergency contacts handy.", Priority: "high"},
	}
}
