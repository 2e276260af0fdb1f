// Package airtable fetches the three record collections from the hosted
// base over its REST API. It surfaces success-with-data or a terminal error
// only; retry policy is the caller's concern, the aggregation core never
// retries.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
)

const (
	defaultBaseURL = "https://api.airtable.com/v0"
	pageSize       = 100

	TableOrders   = "Pedidos"
	TableProducts = "Productos"
	TableClients  = "Clientes"
)

// Client talks to one Airtable base.
type Client struct {
	baseURL string
	apiKey  string
	baseID  string
	http    *http.Client
}

// NewClient builds a client from AIRTABLE_API_KEY and AIRTABLE_BASE_ID.
func NewClient() (*Client, error) {
	apiKey := os.Getenv("AIRTABLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("AIRTABLE_API_KEY environment variable not set")
	}
	baseID := os.Getenv("AIRTABLE_BASE_ID")
	if baseID == "" {
		return nil, fmt.Errorf("AIRTABLE_BASE_ID environment variable not set")
	}
	return NewClientWith(defaultBaseURL, apiKey, baseID), nil
}

// NewClientWith builds a client against an explicit endpoint; tests point it
// at a local server.
func NewClientWith(baseURL, apiKey, baseID string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		baseID:  baseID,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// record is one raw Airtable row. Fields stay dynamic because the base's
// column names carry spaces, accents, and parentheses.
type record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type listResponse struct {
	Records []record `json:"records"`
	Offset  string   `json:"offset"`
}

// list pages through a table until Airtable stops returning an offset.
func (c *Client) list(ctx context.Context, table string) ([]record, error) {
	var all []record
	offset := ""
	for {
		endpoint := fmt.Sprintf("%s/%s/%s?pageSize=%d", c.baseURL, c.baseID, url.PathEscape(table), pageSize)
		if offset != "" {
			endpoint += "&offset=" + url.QueryEscape(offset)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", table, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s response: %w", table, err)
		}
		if resp.StatusCode != http.StatusOK {
			log.Printf("[airtable] %s returned status %d: %s", table, resp.StatusCode, string(body))
			return nil, fmt.Errorf("airtable error for %s: status %d", table, resp.StatusCode)
		}

		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("failed to decode %s response: %w", table, err)
		}
		all = append(all, page.Records...)

		if page.Offset == "" {
			return all, nil
		}
		offset = page.Offset
	}
}

// ListOrders fetches and maps the Pedidos table.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	records, err := c.list(ctx, TableOrders)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(records))
	for _, r := range records {
		f := r.Fields
		orders = append(orders, models.Order{
			ID:            r.ID,
			OrderNumber:   str(f, "ID Pedido"),
			OrderKey:      str(f, "Clave Pedido"),
			Status:        models.OrderStatus(str(f, "Estado")),
			Date:          str(f, "Fecha"),
			CustomerID:    str(f, "ID Cliente"),
			Total:         num(f, "Total"),
			Discount:      num(f, "Descuento"),
			Tax:           num(f, "Impuestos"),
			Currency:      str(f, "Moneda"),
			PaymentMethod: str(f, "Método de Pago"),
			FreeOrder:     models.YesNo(str(f, "Pedido Gratuito (SI/NO)")),
			Newsletter:    models.YesNo(str(f, "Newsletter (SI/NO)")),
			Origin:        str(f, "Origen"),
			DeviceType:    str(f, "Tipo Dispositivo"),
			SessionPages:  int(num(f, "Páginas Sesión")),
			ProductIDs:    strList(f, "Productos"),
		})
	}
	return orders, nil
}

// ListProducts fetches and maps the Productos table.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	records, err := c.list(ctx, TableProducts)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(records))
	for _, r := range records {
		f := r.Fields
		products = append(products, models.Product{
			ID:          r.ID,
			ItemID:      str(f, "ID Elemento"),
			OrderNumber: str(f, "ID Pedido"),
			ProductName: str(f, "Nombre Producto"),
			Version:     str(f, `Versión (ej: "Español, Gratuita")`),
			ProductID:   str(f, "ID Producto"),
			VariantID:   str(f, "ID Variación"),
		})
	}
	return products, nil
}

// ListClients fetches and maps the Clientes table.
func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	records, err := c.list(ctx, TableClients)
	if err != nil {
		return nil, err
	}

	clients := make([]models.Client, 0, len(records))
	for _, r := range records {
		f := r.Fields
		clients = append(clients, models.Client{
			ID:          r.ID,
			CustomerID:  str(f, "ID Cliente"),
			OrderNumber: str(f, "ID Pedido"),
			FullName:    str(f, "Nombre y Apellidos"),
			Company:     str(f, "Empresa"),
			Phone:       str(f, "Teléfono"),
			Email:       str(f, "Email"),
			Country:     str(f, "País"),
			City:        str(f, "Ciudad"),
			PostalCode:  str(f, "Código Postal"),
		})
	}
	return clients, nil
}

// FetchSnapshot pulls the three collections as one composite snapshot
// stamped with the fetch time.
func (c *Client) FetchSnapshot(ctx context.Context) (*models.DashboardData, error) {
	orders, err := c.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	products, err := c.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := c.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardData{
		Orders:     orders,
		Products:   products,
		Clients:    clients,
		LastUpdate: time.Now().UTC(),
	}, nil
}

// CreateRecords inserts rows into a table in Airtable's 10-record batches.
// Used by the seeder; the dashboard itself never writes.
func (c *Client) CreateRecords(ctx context.Context, table string, fields []map[string]any) error {
	const batchSize = 10
	for start := 0; start < len(fields); start += batchSize {
		end := start + batchSize
		if end > len(fields) {
			end = len(fields)
		}

		type createRecord struct {
			Fields map[string]any `json:"fields"`
		}
		payload := struct {
			Records []createRecord `json:"records"`
		}{}
		for _, f := range fields[start:end] {
			payload.Records = append(payload.Records, createRecord{Fields: f})
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s batch: %w", table, err)
		}

		endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			log.Printf("[airtable] insert into %s returned status %d: %s", table, resp.StatusCode, string(respBody))
			return fmt.Errorf("airtable error for %s: status %d", table, resp.StatusCode)
		}
	}
	return nil
}

// field accessors with the zero-value defaults of the source system: a
// missing cell is an empty string, 0, or an empty list, never a fault

func str(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func num(fields map[string]any, key string) float64 {
	if v, ok := fields[key].(float64); ok {
		return v
	}
	return 0
}

func strList(fields map[string]any, key string) []string {
	raw, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
