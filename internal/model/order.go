package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses understood by the admin panel.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// IsValidStatus reports whether status belongs to the order status vocabulary.
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order represents a customer order header.
type Order struct {
	ID            int64           `json:"id" db:"id"`
	OrderNumber   string          `json:"order_number" db:"order_number"`
	CustomerName  string          `json:"customer_name" db:"customer_name"`
	CustomerPhone string          `json:"customer_phone" db:"customer_phone"`
	CustomerEmail string          `json:"customer_email" db:"customer_email"`
	TotalAmount   decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status        string          `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"-" db:"updated_at"`
	Items         []OrderItem     `json:"items"`
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	ID           int64           `json:"-" db:"id"`
	OrderID      int64           `json:"-" db:"order_id"`
	ProductName  string          `json:"product_name" db:"product_name"`
	ProductVIN   string          `json:"product_vin" db:"product_vin"`
	ProductModel string          `json:"product_model" db:"product_model"`
	Price        decimal.Decimal `json:"price" db:"price"`
	Quantity     int             `json:"quantity" db:"quantity"`
}

// OrderRequest represents the cart payload submitted at checkout.
type OrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"required"`
	CustomerPhone string             `json:"customer_phone" validate:"required"`
	CustomerEmail string             `json:"customer_email"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
}

// OrderItemRequest is a single cart line. Fields are pointers so a missing
// key can be told apart from a zero value.
type OrderItemRequest struct {
	ProductName  *string          `json:"product_name" validate:"required,min=1"`
	ProductVIN   *string          `json:"product_vin" validate:"required,min=1"`
	ProductModel *string          `json:"product_model" validate:"required,min=1"`
	Price        *decimal.Decimal `json:"price" validate:"required"`
	Quantity     *int             `json:"quantity" validate:"required,gt=0"`
}

// OrderResponse is returned after a successful checkout.
type OrderResponse struct {
	Success     bool   `json:"success"`
	OrderNumber string `json:"order_number"`
	OrderID     int64  `json:"order_id"`
}

// OrderListResponse wraps the admin order listing.
type OrderListResponse struct {
	Orders []Order `json:"orders"`
}

// StatusUpdateRequest is the admin payload for changing an order's status.
type StatusUpdateRequest struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// StatusUpdateResponse acknowledges a status change.
type StatusUpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
