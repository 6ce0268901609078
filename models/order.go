package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order lifecycle statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber        string     `json:"order_number" gorm:"type:varchar(32);uniqueIndex;not null"`
	UserID             *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	CustomerName       string     `json:"customer_name" gorm:"type:varchar(255);not null"`
	CustomerEmail      string     `json:"customer_email" gorm:"type:varchar(255);not null;index"`
	CustomerPhone      string     `json:"customer_phone" gorm:"type:varchar(50)"`
	ShippingAddress    string     `json:"shipping_address" gorm:"type:text;not null"`
	ShippingCity       string     `json:"shipping_city" gorm:"type:varchar(100);not null"`
	ShippingPostalCode string     `json:"shipping_postal_code" gorm:"type:varchar(20)"`
	Notes              string     `json:"notes" gorm:"type:text"`
	Subtotal           float64    `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	Discount           float64    `json:"discount" gorm:"type:numeric(12,2);default:0"`
	Total              float64    `json:"total" gorm:"type:numeric(12,2);not null"`
	Currency           string     `json:"currency" gorm:"type:varchar(3);default:'EUR'"`
	PromoCode          *string    `json:"promo_code,omitempty" gorm:"type:varchar(50)"`
	Status             string     `json:"status" gorm:"type:varchar(20);default:'pending';check:status IN ('pending', 'confirmed', 'shipped', 'delivered', 'cancelled');index"`
	CreatedAt          time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// OrderItem snapshots the cart line at checkout time: localized name kept
// whole, resolved name frozen for invoices/emails.
type OrderItem struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID     `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID     `json:"product_id" gorm:"type:uuid;not null"`
	ProductName LocalizedText `json:"product_name" gorm:"type:jsonb;not null;default:'{}'"`
	Quantity    int           `json:"quantity" gorm:"not null;check:quantity >= 1"`
	Price       float64       `json:"price" gorm:"type:numeric(12,2);not null"`
	Subtotal    float64       `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	ImageURL    *string       `json:"image_url,omitempty" gorm:"type:text"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type OrderItemInput struct {
	ProductID   string        `json:"product_id" binding:"required"`
	ProductName LocalizedText `json:"product_name"`
	Quantity    int           `json:"quantity" binding:"required,min=1"`
	Price       float64       `json:"price"`
	ImageURL    *string       `json:"image_url,omitempty"`
}

type CreateOrderRequest struct {
	CustomerName       string           `json:"customer_name" binding:"required"`
	CustomerEmail      string           `json:"customer_email" binding:"required,email"`
	CustomerPhone      string           `json:"customer_phone" binding:"required"`
	ShippingAddress    string           `json:"shipping_address" binding:"required"`
	ShippingCity       string           `json:"shipping_city" binding:"required"`
	ShippingPostalCode string           `json:"shipping_postal_code"`
	Notes              string           `json:"notes"`
	PromoCode          string           `json:"promo_code"`
	Items              []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled"`
}

type OrderStatsResponse struct {
	TotalOrders     int     `json:"total_orders"`
	PendingOrders   int     `json:"pending_orders"`
	ConfirmedOrders int     `json:"confirmed_orders"`
	ShippedOrders   int     `json:"shipped_orders"`
	DeliveredOrders int     `json:"delivered_orders"`
	CancelledOrders int     `json:"cancelled_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}

// ComputeOrderTotals sums line subtotals (price × quantity). A price of 0
// is legal; an empty slice totals 0.
func ComputeOrderTotals(items []OrderItem) (subtotal float64, count int) {
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
		count += it.Quantity
	}
	return subtotal, count
}
