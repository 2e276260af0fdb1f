package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func ordersPage(offset string, records ...map[string]any) string {
	page := map[string]any{"records": records}
	if offset != "" {
		page["offset"] = offset
	}
	out, _ := json.Marshal(page)
	return string(out)
}

func TestListOrders_MapsFieldsWithDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", got)
		}
		if !strings.Contains(r.URL.Path, "/appTestBase/Pedidos") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, ordersPage("",
			map[string]any{
				"id": "rec1",
				"fields": map[string]any{
					"ID Pedido":               "PED-001",
					"Estado":                  "completed",
					"Fecha":                   "2024-06-10T09:00:00Z",
					"ID Cliente":              "CLI-001",
					"Total":                   49.9,
					"Pedido Gratuito (SI/NO)": "NO",
					"Newsletter (SI/NO)":      "SI",
					"Tipo Dispositivo":        "Desktop",
					"Páginas Sesión":          7.0,
					"Productos":               []any{"recA", "recB"},
				},
			},
			map[string]any{
				"id":     "rec2",
				"fields": map[string]any{"ID Pedido": "PED-002"}, // everything else absent
			},
		))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "test-key", "appTestBase")
	orders, err := client.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("ListOrders failed: %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	o := orders[0]
	if o.ID != "rec1" || o.OrderNumber != "PED-001" || o.CustomerID != "CLI-001" {
		t.Errorf("unexpected identity mapping: %+v", o)
	}
	if o.Total != 49.9 || o.SessionPages != 7 {
		t.Errorf("unexpected numeric mapping: %+v", o)
	}
	if len(o.ProductIDs) != 2 || o.ProductIDs[0] != "recA" {
		t.Errorf("unexpected linked records: %v", o.ProductIDs)
	}

	t.Run("missing_cells_default_to_zero_values", func(t *testing.T) {
		o := orders[1]
		if o.Total != 0 || o.Origin != "" || o.ProductIDs != nil || o.SessionPages != 0 {
			t.Errorf("expected zero-value defaults, got %+v", o)
		}
	})
}

func TestList_Pagination(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("offset") == "" {
			fmt.Fprint(w, ordersPage("page2", map[string]any{"id": "rec1", "fields": map[string]any{}}))
			return
		}
		if got := r.URL.Query().Get("offset"); got != "page2" {
			t.Errorf("expected offset page2, got %q", got)
		}
		fmt.Fprint(w, ordersPage("", map[string]any{"id": "rec2", "fields": map[string]any{}}))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "test-key", "appTestBase")
	orders, err := client.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("ListOrders failed: %v", err)
	}

	if requests != 2 {
		t.Errorf("expected 2 page requests, got %d", requests)
	}
	if len(orders) != 2 || orders[0].ID != "rec1" || orders[1].ID != "rec2" {
		t.Errorf("expected concatenated pages, got %+v", orders)
	}
}

func TestList_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"type":"AUTHENTICATION_REQUIRED"}}`)
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "bad-key", "appTestBase")
	if _, err := client.ListOrders(context.Background()); err == nil {
		t.Fatal("expected a terminal error on non-200 status")
	}
}

func TestFetchSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "Pedidos"):
			fmt.Fprint(w, ordersPage("", map[string]any{"id": "o1", "fields": map[string]any{"ID Pedido": "PED-001"}}))
		case strings.Contains(r.URL.Path, "Productos"):
			fmt.Fprint(w, ordersPage("", map[string]any{"id": "p1", "fields": map[string]any{"Nombre Producto": "Plantilla CRM"}}))
		case strings.Contains(r.URL.Path, "Clientes"):
			fmt.Fprint(w, ordersPage("", map[string]any{"id": "c1", "fields": map[string]any{"País": "España"}}))
		default:
			t.Errorf("unexpected table path %q", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "test-key", "appTestBase")
	snap, err := client.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("FetchSnapshot failed: %v", err)
	}

	if len(snap.Orders) != 1 || len(snap.Products) != 1 || len(snap.Clients) != 1 {
		t.Errorf("unexpected snapshot sizes: %d/%d/%d", len(snap.Orders), len(snap.Products), len(snap.Clients))
	}
	if snap.Clients[0].Country != "España" {
		t.Errorf("accented column names must map, got %+v", snap.Clients[0])
	}
	if snap.LastUpdate.IsZero() {
		t.Error("snapshot must carry its fetch timestamp")
	}
}
