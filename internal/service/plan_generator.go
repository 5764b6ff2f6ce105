package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/suri-ai/suri-backend/config"
	"github.com/suri-ai/suri-backend/internal/model"
)

// PlanGenerator produces a weekly learning plan for a user. latestInput may be
// nil when the student has not submitted goals yet.
type PlanGenerator interface {
	Generate(ctx context.Context, userID string, latestInput *model.StudentInput) (*model.Plan, error)
}

// NewPlanGenerator selects the Gemini-backed generator when an API key is
// configured and falls back to the static placeholder otherwise. Both sit
// behind the same interface so callers never know which one they got.
func NewPlanGenerator(cfg *config.Config) (PlanGenerator, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set, using static plan generator")
		return NewStaticPlanGenerator(), nil
	}
	return NewGeminiPlanGenerator(cfg)
}

// --- Static generator ---

type staticPlanGenerator struct{}

func NewStaticPlanGenerator() PlanGenerator {
	return staticPlanGenerator{}
}

// Generate returns the fixed placeholder plan. It ignores the student's input
// entirely; every call produces a fresh copy for a new document.
func (staticPlanGenerator) Generate(_ context.Context, userID string, _ *model.StudentInput) (*model.Plan, error) {
	return staticPlan(userID), nil
}

func staticPlan(userID string) *model.Plan {
	return &model.Plan{
		UserID: userID,
		Week:   1,
		Theme:  "Mock: Introduction & Basic Greetings (Firestore)",
		Goals: []string{
			"Learn mock greetings via Firestore",
			"Introduce yourself (mock, Firestore)",
		},
		Activities: []model.PlanActivity{
			{Type: "Lesson", Title: "Mock Video (FS)", Duration: "15 mins"},
			{Type: "Practice", Title: "Mock Flashcards (FS)", Duration: "10 mins"},
		},
		FocusAreas: []string{"Mock Pronunciation (FS)", "Mock Vocabulary (FS)"},
	}
}

// --- Gemini generator ---

type geminiPlanGenerator struct {
	client *genai.GenerativeModel
}

func NewGeminiPlanGenerator(cfg *config.Config) (PlanGenerator, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	model.ResponseMIMEType = "application/json"
	return &geminiPlanGenerator{client: model}, nil
}

// generatedPlan is the JSON shape the model is asked to produce.
type generatedPlan struct {
	Theme      string   `json:"theme"`
	Goals      []string `json:"goals"`
	Activities []struct {
		Type     string `json:"type"`
		Title    string `json:"title"`
		Duration string `json:"duration"`
	} `json:"activities"`
	FocusAreas []string `json:"focusAreas"`
}

func (g *geminiPlanGenerator) Generate(ctx context.Context, userID string, latestInput *model.StudentInput) (*model.Plan, error) {
	var prompt strings.Builder
	prompt.WriteString("You are a language-learning coach. Create a one-week learning plan for a student.\n")
	if latestInput != nil {
		prompt.WriteString(fmt.Sprintf("The student's goals: %s.\n", strings.Join(latestInput.Goals, "; ")))
		if latestInput.Struggles != "" {
			prompt.WriteString(fmt.Sprintf("The student struggles with: %s.\n", latestInput.Struggles))
		}
	} else {
		prompt.WriteString("The student has not submitted goals yet; produce a sensible beginner plan.\n")
	}
	prompt.WriteString(`Respond with a single JSON object of the form:
{"theme": string, "goals": [string], "activities": [{"type": string, "title": string, "duration": string}], "focusAreas": [string]}
Use 2-4 goals, 2-5 activities and 2-4 focus areas.`)

	resp, err := g.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Gemini plan generation failed, falling back to static plan")
		return staticPlan(userID), nil
	}

	text := responseText(resp)
	if text == "" {
		log.Warn().Str("userID", userID).Msg("Gemini returned no text content, falling back to static plan")
		return staticPlan(userID), nil
	}

	var generated generatedPlan
	if err := json.Unmarshal([]byte(text), &generated); err != nil {
		log.Warn().Err(err).Str("raw", text).Msg("Could not parse Gemini plan JSON, falling back to static plan")
		return staticPlan(userID), nil
	}

	plan := &model.Plan{
		UserID:     userID,
		Week:       1,
		Theme:      generated.Theme,
		Goals:      generated.Goals,
		FocusAreas: generated.FocusAreas,
	}
	for _, a := range generated.Activities {
		plan.Activities = append(plan.Activities, model.PlanActivity{Type: a.Type, Title: a.Title, Duration: a.Duration})
	}
	return plan, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
