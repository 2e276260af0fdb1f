package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/airtable"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the Airtable base with demo orders, products and clients
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("CONSULTBI DASHBOARD - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	client, err := airtable.NewClient()
	if err != nil {
		log.Fatalf("Failed to initialize Airtable client: %v", err)
	}
	log.Println("✓ Airtable client ready")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	orders, products, clients := demoDataset()

	if err := client.CreateRecords(ctx, airtable.TableOrders, orders); err != nil {
		log.Fatalf("Failed to seed %s: %v", airtable.TableOrders, err)
	}
	log.Printf("✓ Seeded %d rows into %s", len(orders), airtable.TableOrders)

	if err := client.CreateRecords(ctx, airtable.TableProducts, products); err != nil {
		log.Fatalf("Failed to seed %s: %v", airtable.TableProducts, err)
	}
	log.Printf("✓ Seeded %d rows into %s", len(products), airtable.TableProducts)

	if err := client.CreateRecords(ctx, airtable.TableClients, clients); err != nil {
		log.Fatalf("Failed to seed %s: %v", airtable.TableClients, err)
	}
	log.Printf("✓ Seeded %d rows into %s", len(clients), airtable.TableClients)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Data Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the dashboard server: go run main.go")
	fmt.Println("2. Fetch the snapshot at GET /api/v1/dashboard/data")
	fmt.Println("3. Explore the analytics endpoints under /api/v1/dashboard")
	fmt.Println()
}

// demoDataset builds a small but realistic base: a handful of customers
// across several countries, a repeat buyer, free and paid downloads, and
// orders spread over the last six months so every date filter has data.
func demoDataset() (orders, products, clients []map[string]any) {
	now := time.Now().UTC()

	type seedOrder struct {
		customer  string
		daysAgo   int
		total     float64
		free      string
		newsItems string
		origin    string
		device    string
		pages     float64
		items     []string
		version   string
		country   string
		city      string
		name      string
		email     string
	}

	seeds := []seedOrder{
		{"CLI-001", 3, 49.90, "NO", "SI", "Google", "desktop", 6, []string{"Plantilla Finanzas"}, "Español, Avanzada", "España", "Madrid", "Lucía Fernández", "lucia@example.com"},
		{"CLI-001", 40, 0, "SI", "SI", "Newsletter", "mobile", 3, []string{"Plantilla CRM"}, "Español, Gratuita", "España", "Madrid", "Lucía Fernández", "lucia@example.com"},
		{"CLI-001", 95, 29.90, "NO", "SI", "Google", "desktop", 8, []string{"Plantilla Inventario"}, "Español, Avanzada", "España", "Madrid", "Lucía Fernández", "lucia@example.com"},
		{"CLI-002", 10, 0, "SI", "NO", "Instagram", "mobile", 2, []string{"Plantilla CRM"}, "Español, Gratuita", "México", "CDMX", "Diego Ramírez", "diego@example.com"},
		{"CLI-003", 25, 79.90, "NO", "SI", "Google", "desktop", 11, []string{"Plantilla Finanzas", "Plantilla Inventario"}, "Español, Avanzada", "Argentina", "Buenos Aires", "Valentina Sosa", "valen@example.com"},
		{"CLI-004", 70, 49.90, "NO", "NO", "", "desktop", 5, []string{"Plantilla Finanzas"}, "Español, Avanzada", "Colombia", "Bogotá", "Andrés Pardo", "andres@example.com"},
		{"CLI-005", 130, 0, "SI", "SI", "Newsletter", "mobile", 4, []string{"Plantilla CRM", "Plantilla Finanzas"}, "Español, Gratuita", "Chile", "Santiago", "Camila Rojas", "camila@example.com"},
		{"CLI-006", 160, 29.90, "NO", "NO", "Directo", "desktop", 7, []string{"Plantilla Inventario"}, "Español, Avanzada", "España", "Valencia", "Marc Vidal", "marc@example.com"},
	}

	seenClients := map[string]bool{}
	for i, s := range seeds {
		orderNumber := fmt.Sprintf("PED-%04d", 1000+i)
		date := now.AddDate(0, 0, -s.daysAgo).Format(time.RFC3339)

		orders = append(orders, map[string]any{
			"ID Pedido":               orderNumber,
			"Clave Pedido":            uuid.NewString(),
			"Estado":                  "completado",
			"Fecha":                   date,
			"ID Cliente":              s.customer,
			"Total":                   s.total,
			"Descuento":               0,
			"Impuestos":               s.total * 0.21,
			"Moneda":                  "EUR",
			"Método de Pago":          "stripe",
			"Pedido Gratuito (SI/NO)": s.free,
			"Newsletter (SI/NO)":      s.newsItems,
			"Origen":                  s.origin,
			"Tipo Dispositivo":        s.device,
			"Páginas Sesión":          s.pages,
		})

		for j, item := range s.items {
			products = append(products, map[string]any{
				"ID Elemento":     fmt.Sprintf("%s-%d", orderNumber, j+1),
				"ID Pedido":       orderNumber,
				"Nombre Producto": item,
				"ID Producto":     uuid.NewString(),
				"ID Variación":    uuid.NewString(),
				`Versión (ej: "Español, Gratuita")`: s.version,
			})
		}

		if !seenClients[s.customer] {
			seenClients[s.customer] = true
			clients = append(clients, map[string]any{
				"ID Cliente":         s.customer,
				"ID Pedido":          orderNumber,
				"Nombre y Apellidos": s.name,
				"Email":              s.email,
				"País":               s.country,
				"Ciudad":             s.city,
			})
		}
	}
	return orders, products, clients
}
