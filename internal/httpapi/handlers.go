package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avolkov/order-status/internal/domain"
	"github.com/avolkov/order-status/internal/observability"
)

// urlParam decodes a path parameter. Phone numbers carry a leading "+",
// which arrives percent-encoded.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := urlParam(r, "orderNumber")
	if orderNumber == "" {
		writeError(w, http.StatusBadRequest, "Order number is required", nil)
		return
	}

	t0 := time.Now()
	order, err := s.store.GetByOrderNumber(r.Context(), orderNumber)
	observability.AppendServerTiming(w, "lookup", msSince(t0), "")
	if err != nil {
		s.writeLookupError(w, err, "order_number", orderNumber)
		return
	}

	s.store.AddRecentOrder(order.OrderNumber, time.Now())
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) getOrdersByPhone(w http.ResponseWriter, r *http.Request) {
	phoneNumber := urlParam(r, "phoneNumber")
	if phoneNumber == "" {
		writeError(w, http.StatusBadRequest, "Phone number is required", nil)
		return
	}

	t0 := time.Now()
	orders, err := s.store.GetAllByPhoneNumber(r.Context(), phoneNumber)
	observability.AppendServerTiming(w, "lookup", msSince(t0), "")
	if err != nil {
		s.writeLookupError(w, err, "phone_number", phoneNumber)
		return
	}
	if len(orders) == 0 {
		writeError(w, http.StatusNotFound, "No orders found for this phone number", nil)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) getOrderByPhoneAndNumber(w http.ResponseWriter, r *http.Request) {
	phoneNumber := urlParam(r, "phoneNumber")
	orderNumber := urlParam(r, "orderNumber")

	orders, err := s.store.GetAllByPhoneNumber(r.Context(), phoneNumber)
	if err != nil {
		s.writeLookupError(w, err, "phone_number", phoneNumber)
		return
	}

	for _, order := range orders {
		if order.OrderNumber == orderNumber {
			s.store.AddRecentOrder(order.OrderNumber, time.Now())
			writeJSON(w, http.StatusOK, order)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Order not found", nil)
}

func (s *Server) listRecentOrders(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit parameter",
				map[string]string{"limit": "must be a positive integer"})
			return
		}
		limit = n
	}

	writeJSON(w, http.StatusOK, s.store.ListRecentOrders(limit))
}

type addRecentOrderRequest struct {
	OrderNumber string    `json:"orderNumber"`
	ViewedAt    time.Time `json:"viewedAt"`
}

func (req addRecentOrderRequest) validate() *domain.ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(req.OrderNumber) == "" {
		fields["orderNumber"] = "is required"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Message: "Invalid recent order data", Fields: fields}
	}
	return nil
}

func (s *Server) addRecentOrder(w http.ResponseWriter, r *http.Request) {
	var req addRecentOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		s.logger.Warn("bad recent-order payload", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid recent order data",
			map[string]string{"body": "malformed json"})
		return
	}
	if verr := req.validate(); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Message, verr.Fields)
		return
	}

	viewedAt := req.ViewedAt
	if viewedAt.IsZero() {
		viewedAt = time.Now()
	}

	entry := s.store.AddRecentOrder(req.OrderNumber, viewedAt)
	writeJSON(w, http.StatusCreated, entry)
}

// writeLookupError maps store errors onto the API contract: not-found is a
// 404, everything else is a 500 with a generic message. The real error only
// goes to the log.
func (s *Server) writeLookupError(w http.ResponseWriter, err error, keyName, key string) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Order not found", nil)
		return
	}
	s.logger.Error("lookup failed",
		zap.String(keyName, key),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "Failed to fetch order information", nil)
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
