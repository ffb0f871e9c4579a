package http

import "time"

// Request bodies.

type ItemRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	CustomerID    string        `json:"customer_id"`
	Address       string        `json:"address"`
	Pincode       string        `json:"pincode"`
	PaymentMethod string        `json:"payment_method"`
	Items         []ItemRequest `json:"items"`
}

type TransitionStatusRequest struct {
	Status  string `json:"status"`
	ActorID string `json:"actor_id"`
	Role    string `json:"role"`
}

type RecordFulfillmentRequest struct {
	PickerID string        `json:"picker_id"`
	Reason   string        `json:"reason"`
	Items    []ItemRequest `json:"items"`
}

type ConfirmPaymentRequest struct {
	ActorID string `json:"actor_id"`
}

type CreateTripRequest struct {
	OrderIDs  []string `json:"order_ids"`
	PartnerID string   `json:"partner_id"`
	ActorID   string   `json:"actor_id"`
}

type CloseTripRequest struct {
	PartnerID  string `json:"partner_id"`
	ReturnCode string `json:"return_code"`
}

type SetShiftRequest struct {
	ShiftOn bool `json:"shift_on"`
}

type ProductRequest struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	UnitLabel     string `json:"unit_label"`
	Price         int64  `json:"price"`
	AvailableQty  int    `json:"available_qty"`
	NewlyLaunched bool   `json:"newly_launched"`
	// Active only applies to edits; new products are always active.
	Active  bool   `json:"active"`
	ActorID string `json:"actor_id"`
}

// Response bodies.

type IDResponse struct {
	ID string `json:"id"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ActiveOrderResponse struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	Address          string `json:"address"`
	Pincode          string `json:"pincode"`
	RouteKey         string `json:"route_key"`
	PaymentConfirmed bool   `json:"payment_confirmed"`
	Notes            string `json:"notes,omitempty"`
}

type DashboardResponse struct {
	OrdersByStatus map[string]int `json:"orders_by_status"`
	ActiveTrips    int            `json:"active_trips"`
}

type PackedOrderResponse struct {
	ID       string `json:"id"`
	RouteKey string `json:"route_key"`
	Address  string `json:"address"`
	Pincode  string `json:"pincode"`
}

type PartnerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CatalogItemResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	UnitLabel     string `json:"unit_label"`
	Price         int64  `json:"price"`
	AvailableQty  int    `json:"available_qty"`
	NewlyLaunched bool   `json:"newly_launched"`
	OutOfStock    bool   `json:"out_of_stock"`
}

type AuditLogResponse struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}
