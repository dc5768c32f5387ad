package models

// Order lifecycle. Delivered is terminal, transitions only move forward.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

type Producer struct {
	ID       string `gorm:"primaryKey"       json:"id"`
	Name     string `gorm:"not null"         json:"name"`
	Bio      string `gorm:"not null"         json:"bio"`
	Location string `gorm:"not null"         json:"location"`
	Image    string `gorm:"not null"         json:"image"`
	Featured bool   `gorm:"index"            json:"featured"`
}

type Product struct {
	ID          string   `gorm:"primaryKey"               json:"id"`
	Name        string   `gorm:"not null"                 json:"name"`
	Description string   `gorm:"not null"                 json:"description"`
	Price       float64  `gorm:"not null;check:price>=0"  json:"price"`
	Images      []string `gorm:"serializer:json"          json:"images"`
	Category    string   `gorm:"index;not null"           json:"category"`
	ProducerID  string   `gorm:"index;not null"           json:"producer_id"`
	Stock       int      `gorm:"not null;check:stock>=0"  json:"stock"`
	Unit        string   `gorm:"not null"                 json:"unit"`
	Featured    bool     `gorm:"index"                    json:"featured"`
}

type Order struct {
	ID           string      `gorm:"primaryKey"         json:"id"`
	ProducerID   string      `gorm:"index;not null"     json:"producer_id"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total        float64     `gorm:"not null"           json:"total"`
	Status       string      `gorm:"index;not null"     json:"status"`
	CustomerName string      `gorm:"not null"           json:"customer_name"`
	Date         string      `gorm:"not null"           json:"date"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"                 json:"-"`
	OrderID   string  `gorm:"index;not null"             json:"-"`
	ProductID string  `gorm:"not null"                   json:"product_id"`
	Quantity  int     `gorm:"default:1;check:quantity>0" json:"quantity"`
	Price     float64 `gorm:"not null"                   json:"price"`
}

// CartItem rows are scoped to a browsing session and kept in insertion
// order via the autoincrement key.
type CartItem struct {
	ID        uint   `gorm:"primaryKey"                               json:"-"`
	SessionID string `gorm:"uniqueIndex:idx_session_product;not null" json:"-"`
	ProductID string `gorm:"uniqueIndex:idx_session_product;not null" json:"product_id"`
	Quantity  int    `gorm:"not null;check:quantity>0"                json:"quantity"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
