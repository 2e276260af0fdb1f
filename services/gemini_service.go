package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Generative Language API for narrative summaries.
type GeminiClient struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

var geminiClient *GeminiClient

// InitGeminiService wires the package-level client from GOOGLE_AI_API_KEY.
// The dashboard runs fine without it; the insights endpoint reports the
// collaborator as unavailable.
func InitGeminiService() {
	apiKey := os.Getenv("GOOGLE_AI_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  GOOGLE_AI_API_KEY not set, executive summaries disabled")
		return
	}
	geminiClient = NewGeminiClient(defaultGeminiBaseURL, apiKey, os.Getenv("GOOGLE_AI_MODEL"))
	log.Println("✅ Gemini service initialized")
}

// GetGeminiClient returns the shared client, nil when summaries are disabled.
func GetGeminiClient() *GeminiClient {
	return geminiClient
}

// NewGeminiClient builds a client against an explicit endpoint; tests point
// it at a local server.
func NewGeminiClient(baseURL, apiKey, model string) *GeminiClient {
	if model == "" {
		model = "gemini-pro"
	}
	return &GeminiClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

const summaryPrompt = `Eres un analista de datos experto. Analiza los siguientes datos de ventas de ConsultBI y proporciona un resumen ejecutivo profesional en español.

Incluye:
1. Resumen de rendimiento (2-3 párrafos)
2. 3 insights clave más importantes
3. Estado de salud del negocio (escala 0-10 con justificación breve)

Responde únicamente con JSON válido con esta forma:
{
  "summary": "string",
  "insights": ["string", "string", "string"],
  "health": { "score": number, "justification": "string" }
}`

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateExecutiveSummary sends the metrics digest to the model and decodes
// the structured reply. An unparseable reply degrades to raw text per the
// collaborator contract; only transport failures return an error.
func (g *GeminiClient) GenerateExecutiveSummary(ctx context.Context, digest models.InsightsDigest) (models.ExecutiveSummary, error) {
	digestJSON, err := json.MarshalIndent(digest, "", "  ")
	if err != nil {
		return models.ExecutiveSummary{}, fmt.Errorf("failed to marshal digest: %w", err)
	}

	fullPrompt := summaryPrompt + "\n\nDatos: " + string(digestJSON)
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: fullPrompt}}}},
	})
	if err != nil {
		return models.ExecutiveSummary{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return models.ExecutiveSummary{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return models.ExecutiveSummary{}, fmt.Errorf("failed to call gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ExecutiveSummary{}, fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[gemini] api returned status %d: %s", resp.StatusCode, string(body))
		return models.ExecutiveSummary{}, fmt.Errorf("gemini api error: status %d", resp.StatusCode)
	}

	var decoded geminiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return models.ExecutiveSummary{}, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return models.ExecutiveSummary{}, fmt.Errorf("gemini returned no candidates")
	}

	return ParseExecutiveSummary(decoded.Candidates[0].Content.Parts[0].Text), nil
}

// ParseExecutiveSummary decodes the model's text into the structured summary,
// stripping markdown code fences first. Anything unparseable degrades to the
// raw text in Summary with empty insights and a zero health score.
func ParseExecutiveSummary(raw string) models.ExecutiveSummary {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var summary models.ExecutiveSummary
	if err := json.Unmarshal([]byte(cleaned), &summary); err != nil {
		return models.ExecutiveSummary{
			Summary:  raw,
			Insights: []string{},
			Health:   models.HealthStatus{Score: 0, Justification: ""},
		}
	}
	if summary.Insights == nil {
		summary.Insights = []string{}
	}
	return summary
}
