package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
	"github.com/google/uuid"
)

// vipThreshold is the order count at which a customer counts as VIP.
const vipThreshold = 3

// AlertPayload is the notification body POSTed to the configured webhook.
type AlertPayload struct {
	EventID     string `json:"event_id"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Data        any    `json:"data"`
	Timestamp   string `json:"timestamp"`
}

// DetectVIPAlerts compares the recurrent-customer lists of two consecutive
// snapshots and returns one alert per customer that newly reached the VIP
// threshold.
func DetectVIPAlerts(previous, current []models.RecurrentCustomer) []AlertPayload {
	prevVIPs := make(map[string]struct{})
	for _, r := range previous {
		if r.OrderCount >= vipThreshold {
			prevVIPs[r.CustomerID] = struct{}{}
		}
	}

	var alerts []AlertPayload
	for _, r := range current {
		if r.OrderCount < vipThreshold {
			continue
		}
		if _, known := prevVIPs[r.CustomerID]; known {
			continue
		}
		name := r.CustomerID
		if r.Client != nil && r.Client.FullName != "" {
			name = r.Client.FullName
		}
		alerts = append(alerts, AlertPayload{
			EventID:     uuid.NewString(),
			Type:        "alerta",
			Category:    "cliente_vip",
			Title:       "Nuevo Cliente VIP Detectado",
			Description: fmt.Sprintf("El cliente %s ha alcanzado %d descargas", name, r.OrderCount),
			Data:        r,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		})
	}
	return alerts
}

// SendWebhookNotification POSTs an alert to WEBHOOK_URL. Returns false and
// stays silent when no webhook is configured; delivery failures are logged
// and never propagate.
func SendWebhookNotification(ctx context.Context, payload AlertPayload) bool {
	webhookURL := os.Getenv("WEBHOOK_URL")
	if webhookURL == "" {
		return false
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[webhook] failed to marshal payload: %v", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		log.Printf("[webhook] failed to create request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[webhook] failed to send notification: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[webhook] endpoint returned status %d", resp.StatusCode)
		return false
	}

	log.Printf("[webhook] alert %s delivered category=%s", payload.EventID, payload.Category)
	return true
}
