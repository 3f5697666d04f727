package db

import (
	"encoding/json"
	"time"
)

type ServiceType string

const (
	ServiceTypeDineIn   ServiceType = "dine-in"
	ServiceTypePickup   ServiceType = "pickup"
	ServiceTypeDelivery ServiceType = "delivery"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMethodGcash        PaymentMethod = "gcash"
	PaymentMethodMaya         PaymentMethod = "maya"
	PaymentMethodBankTransfer PaymentMethod = "bank-transfer"
)

type Order struct {
	ID                  string        `json:"id"`
	OrderNumber         string        `json:"order_number"`
	CustomerName        string        `json:"customer_name"`
	ContactNumber       string        `json:"contact_number"`
	ServiceType         ServiceType   `json:"service_type"`
	Address             *string       `json:"address"`
	Landmark            *string       `json:"landmark"`
	PickupTime          *string       `json:"pickup_time"`
	PartySize           *int64        `json:"party_size"`
	DineInTime          *string       `json:"dine_in_time"`
	PaymentMethod       PaymentMethod `json:"payment_method"`
	ReferenceNumber     *string       `json:"reference_number"`
	Status              OrderStatus   `json:"status"`
	Total               float64       `json:"total"`
	Notes               *string       `json:"notes"`
	CustomerIP          string        `json:"customer_ip"`
	DeliveryFee         *float64      `json:"delivery_fee"`
	LalamoveQuotationID *string       `json:"lalamove_quotation_id"`
	LalamoveOrderID     *string       `json:"lalamove_order_id"`
	LalamoveStatus      *string       `json:"lalamove_status"`
	LalamoveTrackingURL *string       `json:"lalamove_tracking_url"`
	BranchID            *string       `json:"branch_id"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	CompletedAt         *time.Time    `json:"completed_at"`
}

type OrderItem struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"order_id"`
	MenuItemID        *string         `json:"menu_item_id"`
	MenuItemName      string          `json:"menu_item_name"`
	Quantity          int64           `json:"quantity"`
	UnitPrice         float64         `json:"unit_price"`
	TotalPrice        float64         `json:"total_price"`
	SelectedVariation json.RawMessage `json:"selected_variation"`
	SelectedAddOns    json.RawMessage `json:"selected_add_ons"`
	CreatedAt         time.Time       `json:"created_at"`
}

type MenuItem struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Slug              string          `json:"slug"`
	Description       string          `json:"description"`
	BasePrice         float64         `json:"base_price"`
	Category          string          `json:"category"`
	ImageURL          *string         `json:"image_url"`
	Popular           bool            `json:"popular"`
	Available         bool            `json:"available"`
	Variations        json.RawMessage `json:"variations"`
	AddOns            json.RawMessage `json:"add_ons"`
	DiscountPrice     *float64        `json:"discount_price"`
	DiscountStartDate *time.Time      `json:"discount_start_date"`
	DiscountEndDate   *time.Time      `json:"discount_end_date"`
	DiscountActive    bool            `json:"discount_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type Branch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsMain    bool      `json:"is_main"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SiteSetting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Type        string    `json:"type"`
	Description *string   `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderStats is the dashboard summary row.
type OrderStats struct {
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	TodayOrders     int64   `json:"today_orders"`
	TodayRevenue    float64 `json:"today_revenue"`
	CompletedOrders int64   `json:"completed_orders"`
	CancelledOrders int64   `json:"cancelled_orders"`
}
