package services

import (
	"context"
	"fmt"
	"log"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/airtable"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/analytics"
	snapshot_cache "github.com/ConsultBI/Dashboard-ConsultBI-Ventas/cache"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
)

var airtableClient *airtable.Client

// InitSnapshotService wires the Airtable client used by every snapshot read.
func InitSnapshotService(client *airtable.Client) {
	airtableClient = client
}

// GetSnapshot returns the current data snapshot, serving from the TTL cache
// when fresh and refetching from Airtable otherwise. The bool reports a
// cache hit.
func GetSnapshot(ctx context.Context) (*models.DashboardData, bool, error) {
	if snap, ok := snapshot_cache.Get(); ok {
		return snap, true, nil
	}

	if airtableClient == nil {
		return nil, false, fmt.Errorf("snapshot service not initialized")
	}

	snap, err := airtableClient.FetchSnapshot(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	snapshot_cache.Set(snap)
	log.Printf("[snapshot] refreshed orders=%d products=%d clients=%d", len(snap.Orders), len(snap.Products), len(snap.Clients))
	return snap, false, nil
}

// RefreshSnapshot forces a refetch, compares recurrence against the previous
// snapshot, and fires VIP webhook alerts for customers that newly crossed
// the threshold. Alert delivery is best-effort and never fails the refresh.
func RefreshSnapshot(ctx context.Context) (*models.DashboardData, error) {
	if airtableClient == nil {
		return nil, fmt.Errorf("snapshot service not initialized")
	}

	prev, hadPrev := snapshot_cache.Previous()

	snap, err := airtableClient.FetchSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh snapshot: %w", err)
	}
	snapshot_cache.Set(snap)
	log.Printf("[snapshot] forced refresh orders=%d products=%d clients=%d", len(snap.Orders), len(snap.Products), len(snap.Clients))

	if hadPrev {
		prevRecurrent := analytics.RecurrentCustomers(prev.Orders, prev.Clients)
		currRecurrent := analytics.RecurrentCustomers(snap.Orders, snap.Clients)
		for _, alert := range DetectVIPAlerts(prevRecurrent, currRecurrent) {
			SendWebhookNotification(ctx, alert)
		}
	}

	return snap, nil
}
