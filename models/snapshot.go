package models

import "time"

// DashboardData is one immutable snapshot of the three record collections.
// Aggregators never mutate a snapshot; they return new derived collections.
type DashboardData struct {
	Orders     []Order   `json:"orders"`
	Products   []Product `json:"products"`
	Clients    []Client  `json:"clients"`
	LastUpdate time.Time `json:"last_update"`
}

// SnapshotMeta travels in the response envelope so the UI can show when the
// underlying data was pulled from Airtable.
type SnapshotMeta struct {
	LastUpdate time.Time `json:"last_update"`
	FromCache  bool      `json:"from_cache"`
	Orders     int       `json:"orders"`
	Products   int       `json:"products"`
	Clients    int       `json:"clients"`
}

// Meta builds the envelope metadata for a snapshot.
func (d *DashboardData) Meta(fromCache bool) *SnapshotMeta {
	return &SnapshotMeta{
		LastUpdate: d.LastUpdate,
		FromCache:  fromCache,
		Orders:     len(d.Orders),
		Products:   len(d.Products),
		Clients:    len(d.Clients),
	}
}
