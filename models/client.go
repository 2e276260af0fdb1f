package models

// Client is one customer record from the Clientes table. CustomerID is the
// join key used by all of that customer's orders; a client row is sourced
// from a specific order context, hence the order reference.
type Client struct {
	ID          string `json:"id"`           // Airtable record id
	CustomerID  string `json:"customer_id"`  // "ID Cliente"
	OrderNumber string `json:"order_number"` // "ID Pedido" the row was sourced from
	FullName    string `json:"full_name"`
	Company     string `json:"company"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Country     string `json:"country"` // empty → bucketed as "Desconocido"
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
}
