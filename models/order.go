package models

// OrderStatus is the lifecycle state of an order as stored in Airtable.
type OrderStatus string

const (
	OrderCompleted  OrderStatus = "completed"
	OrderProcessing OrderStatus = "processing"
	OrderPending    OrderStatus = "pending"
	OrderCancelled  OrderStatus = "cancelled"
	OrderFailed     OrderStatus = "failed"
)

// YesNo mirrors the SI/NO single-select columns of the base.
type YesNo string

const (
	Yes YesNo = "SI"
	No  YesNo = "NO"
)

// Order represents one purchase/download event from the Pedidos table.
// Date is kept as the raw Airtable string; date-sensitive aggregations parse
// it per record and skip orders whose date does not parse.
type Order struct {
	ID            string      `json:"id"`           // Airtable record id
	OrderNumber   string      `json:"order_number"` // "ID Pedido", join key for product rows
	OrderKey      string      `json:"order_key"`    // "Clave Pedido"
	Status        OrderStatus `json:"status"`
	Date          string      `json:"date"`
	CustomerID    string      `json:"customer_id"` // "ID Cliente", may not resolve to a Client
	Total         float64     `json:"total"`
	Discount      float64     `json:"discount"`
	Tax           float64     `json:"tax"`
	Currency      string      `json:"currency"`
	PaymentMethod string      `json:"payment_method"`
	FreeOrder     YesNo       `json:"free_order"`
	Newsletter    YesNo       `json:"newsletter"`
	Origin        string      `json:"origin"` // empty → bucketed as "Directo"
	DeviceType    string      `json:"device_type"`
	SessionPages  int         `json:"session_pages"`
	ProductIDs    []string    `json:"product_ids"` // linked Productos record ids
}
