package models

// Product is one line item from the Productos table. Multiple rows can
// reference the same order (multi-item orders) and the same (name, version)
// pair can repeat across orders (re-downloads of the same SKU).
type Product struct {
	ID          string `json:"id"`           // Airtable record id
	ItemID      string `json:"item_id"`      // "ID Elemento"
	OrderNumber string `json:"order_number"` // "ID Pedido", owning order
	ProductName string `json:"product_name"`
	Version     string `json:"version"` // e.g. "Español, Gratuita"
	ProductID   string `json:"product_id"`
	VariantID   string `json:"variant_id"`
}
