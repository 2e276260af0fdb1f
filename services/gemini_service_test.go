package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
)

func TestParseExecutiveSummary_StructuredReply(t *testing.T) {
	raw := "```json\n{\"summary\":\"Buen trimestre.\",\"insights\":[\"a\",\"b\",\"c\"],\"health\":{\"score\":8,\"justification\":\"crecimiento sostenido\"}}\n```"

	got := ParseExecutiveSummary(raw)

	if got.Summary != "Buen trimestre." {
		t.Errorf("unexpected summary %q", got.Summary)
	}
	if len(got.Insights) != 3 {
		t.Errorf("expected 3 insights, got %v", got.Insights)
	}
	if got.Health.Score != 8 || got.Health.Justification != "crecimiento sostenido" {
		t.Errorf("unexpected health %+v", got.Health)
	}
}

func TestParseExecutiveSummary_DegradesOnFreeText(t *testing.T) {
	raw := "Lo siento, no puedo generar el análisis en este momento."

	got := ParseExecutiveSummary(raw)

	if got.Summary != raw {
		t.Errorf("degraded reply must carry the raw text, got %q", got.Summary)
	}
	if len(got.Insights) != 0 {
		t.Errorf("degraded reply must have empty insights, got %v", got.Insights)
	}
	if got.Health.Score != 0 {
		t.Errorf("degraded reply must score 0, got %d", got.Health.Score)
	}
}

func TestGenerateExecutiveSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected api key in query, got %q", r.URL.Query().Get("key"))
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Fatalf("unexpected request shape: %+v", req)
		}

		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"{\"summary\":\"ok\",\"insights\":[],\"health\":{\"score\":6,\"justification\":\"estable\"}}"}]}}]}`)
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key", "")
	got, err := client.GenerateExecutiveSummary(context.Background(), models.InsightsDigest{TotalOrders: 10})
	if err != nil {
		t.Fatalf("GenerateExecutiveSummary failed: %v", err)
	}

	if got.Summary != "ok" || got.Health.Score != 6 {
		t.Errorf("unexpected summary %+v", got)
	}
}

func TestGenerateExecutiveSummary_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key", "")
	if _, err := client.GenerateExecutiveSummary(context.Background(), models.InsightsDigest{}); err == nil {
		t.Fatal("expected an error on non-200 status")
	}
}
