package airtable

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avolkov/order-status/internal/domain"
)

// Upstream field names. The two lookup fields (order number, phone number)
// come from configuration instead, so the same code works against bases
// that name them differently.
const (
	fieldRecipientName   = "RecipientName"
	fieldEmail           = "Email"
	fieldTotalPrice      = "TotalPrice"
	fieldItems           = "Items"
	fieldOrderStatus     = "OrderStatus"
	fieldPaymentStatus   = "PaymentStatus"
	fieldReceiptLink     = "ReceiptLink"
	fieldRemark          = "Remark"
	fieldTrackingUpdates = "TrackingUpdates"
)

// Defaults for optional upstream fields. Kept in one place on purpose:
//
//	RecipientName, Email, ReceiptLink, Remark -> ""
//	TotalPrice        -> "0"
//	OrderStatus       -> FINALIZED
//	PaymentStatus     -> NO_PAYMENT
//	Items             -> one synthetic line ("Order", qty 1, price = order total)
//	TrackingUpdates   -> one "Order Received" entry, icon "package"
//	item Total        -> Quantity x Price
const (
	defaultTrackingStatus = "Order Received"
	defaultTrackingIcon   = "package"
	defaultItemName       = "Order"
)

type rawItem struct {
	ProductName string `json:"ProductName"`
	SKU         string `json:"SKU"`
	Quantity    int    `json:"Quantity"`
	Price       string `json:"Price"`
	Total       string `json:"Total"`
}

type rawTracking struct {
	Status    string `json:"Status"`
	Date      string `json:"Date"`
	Timestamp string `json:"Timestamp"`
	Icon      string `json:"Icon"`
}

// normalize maps one upstream record into a domain.Order, collecting every
// field problem instead of stopping at the first one. The surrogate ID is
// left zero; assigning it is the store's job.
func (c *Client) normalize(rec record) (*domain.Order, error) {
	problems := map[string]string{}

	orderNumber := stringField(rec.Fields, c.cfg.OrderNumberField, true, problems)
	phoneNumber := stringField(rec.Fields, c.cfg.PhoneNumberField, true, problems)
	name := stringField(rec.Fields, fieldRecipientName, false, problems)
	email := stringField(rec.Fields, fieldEmail, false, problems)
	total := stringField(rec.Fields, fieldTotalPrice, false, problems)
	orderStatus := stringField(rec.Fields, fieldOrderStatus, false, problems)
	paymentStatus := stringField(rec.Fields, fieldPaymentStatus, false, problems)
	receiptLink := stringField(rec.Fields, fieldReceiptLink, false, problems)
	remark := stringField(rec.Fields, fieldRemark, false, problems)
	items := itemsField(rec.Fields, problems)
	tracking := trackingField(rec.Fields, problems)

	if rec.ID == "" {
		problems["id"] = "missing record id"
	}
	if len(problems) > 0 {
		return nil, &SchemaError{RecordID: rec.ID, Problems: problems}
	}

	order := &domain.Order{
		OrderNumber:     orderNumber,
		AirtableID:      rec.ID,
		RecipientName:   name,
		PhoneNumber:     phoneNumber,
		Email:           email,
		TotalPrice:      moneyOrZero(total),
		Items:           items,
		OrderStatus:     orderStatus,
		PaymentStatus:   paymentStatus,
		ReceiptLink:     receiptLink,
		Remark:          remark,
		TrackingUpdates: tracking,
	}
	order.OrderStatus = domain.OrderStatusOrDefault(order.OrderStatus)
	order.PaymentStatus = domain.PaymentStatusOrDefault(order.PaymentStatus)
	if len(order.Items) == 0 {
		order.Items = []domain.OrderItem{{
			ProductName: defaultItemName,
			Quantity:    1,
			Price:       order.TotalPrice,
			Total:       order.TotalPrice,
		}}
	}
	if len(order.TrackingUpdates) == 0 {
		order.TrackingUpdates = []domain.TrackingUpdate{{
			Status: defaultTrackingStatus,
			Icon:   defaultTrackingIcon,
		}}
	}
	return order, nil
}

func stringField(fields map[string]json.RawMessage, name string, required bool, problems map[string]string) string {
	raw, ok := fields[name]
	if !ok {
		if required {
			problems[name] = "missing"
		}
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		problems[name] = "expected a string"
		return ""
	}
	if required && strings.TrimSpace(s) == "" {
		problems[name] = "must not be empty"
	}
	return s
}

func itemsField(fields map[string]json.RawMessage, problems map[string]string) []domain.OrderItem {
	raw, ok := fields[fieldItems]
	if !ok {
		return nil
	}
	var parsed []rawItem
	if err := json.Unmarshal(raw, &parsed); err != nil {
		problems[fieldItems] = "expected a list of line items"
		return nil
	}
	items := make([]domain.OrderItem, 0, len(parsed))
	for _, it := range parsed {
		price := moneyOrZero(it.Price)
		items = append(items, domain.OrderItem{
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Quantity:    it.Quantity,
			Price:       price,
			Total:       lineTotal(price, it.Quantity, it.Total),
		})
	}
	return items
}

func trackingField(fields map[string]json.RawMessage, problems map[string]string) []domain.TrackingUpdate {
	raw, ok := fields[fieldTrackingUpdates]
	if !ok {
		return nil
	}
	var parsed []rawTracking
	if err := json.Unmarshal(raw, &parsed); err != nil {
		problems[fieldTrackingUpdates] = "expected a list of tracking updates"
		return nil
	}
	updates := make([]domain.TrackingUpdate, 0, len(parsed))
	for _, u := range parsed {
		updates = append(updates, domain.TrackingUpdate{
			Status:    u.Status,
			Date:      u.Date,
			Timestamp: u.Timestamp,
			Icon:      u.Icon,
		})
	}
	return updates
}

// moneyOrZero canonicalizes a price string; anything unparsable becomes "0".
func moneyOrZero(s string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "0"
	}
	return d.String()
}

// lineTotal prefers the source's own total and falls back to qty x price.
func lineTotal(price string, qty int, total string) string {
	if d, err := decimal.NewFromString(strings.TrimSpace(total)); err == nil {
		return d.String()
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return "0"
	}
	return p.Mul(decimal.NewFromInt(int64(qty))).String()
}
