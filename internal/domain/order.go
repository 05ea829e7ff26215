package domain

import "time"

// Order status values as the order desk reports them.
const (
	OrderFinalized = "FINALIZED"
	OrderCanceled  = "CANCELED"
	OrderExpired   = "EXPIRED"
)

// Payment status values. Providers append their own paid variants
// (e.g. PAID_STRIPE), so these are defaults, not a closed set.
const (
	PaymentNone    = "NO_PAYMENT"
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentRefund  = "REFUND"
)

// OrderStatusOrDefault falls back to FINALIZED for an empty status.
func OrderStatusOrDefault(s string) string {
	if s == "" {
		return OrderFinalized
	}
	return s
}

// PaymentStatusOrDefault falls back to NO_PAYMENT for an empty status.
// Non-empty provider-specific variants pass through untouched.
func PaymentStatusOrDefault(s string) string {
	if s == "" {
		return PaymentNone
	}
	return s
}

// OrderItem is one purchased line.
type OrderItem struct {
	ProductName string `json:"productName"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

// TrackingUpdate is one step of the delivery timeline. Date is the
// human-readable form, Timestamp the machine one; both come from the
// source as-is.
type TrackingUpdate struct {
	Status    string `json:"status"`
	Date      string `json:"date"`
	Timestamp string `json:"timestamp"`
	Icon      string `json:"icon"`
}

// Order is one purchase/ticket. ID is a process-local surrogate assigned
// at first cache insertion; OrderNumber and AirtableID come from the
// source and are unique within the store.
type Order struct {
	ID              int              `json:"id"`
	OrderNumber     string           `json:"orderNumber"`
	AirtableID      string           `json:"airtableId"`
	RecipientName   string           `json:"recipientName"`
	PhoneNumber     string           `json:"phoneNumber"`
	Email           string           `json:"email"`
	TotalPrice      string           `json:"totalPrice"`
	Items           []OrderItem      `json:"items"`
	OrderStatus     string           `json:"orderStatus"`
	PaymentStatus   string           `json:"paymentStatus"`
	ReceiptLink     string           `json:"receiptLink,omitempty"`
	Remark          string           `json:"remark,omitempty"`
	TrackingUpdates []TrackingUpdate `json:"trackingUpdates,omitempty"`
}

// RecentOrder is one view event in the recently-viewed list.
type RecentOrder struct {
	ID          int       `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	ViewedAt    time.Time `json:"viewedAt"`
}

// User is kept for the storage interface; no HTTP route exposes it.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
