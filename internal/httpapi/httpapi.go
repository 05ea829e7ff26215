package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/avolkov/order-status/internal/domain"
	"github.com/avolkov/order-status/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/store_mock_test.go -package=httpapi

// OrderStore is what the handlers need from the order store.
type OrderStore interface {
	GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	GetAllByPhoneNumber(ctx context.Context, phoneNumber string) ([]*domain.Order, error)
	AddRecentOrder(orderNumber string, viewedAt time.Time) domain.RecentOrder
	ListRecentOrders(limit int) []domain.RecentOrder
}

type Server struct {
	store   OrderStore
	logger  *zap.Logger
	metrics observability.Metrics
	router  chi.Router
}

func New(store OrderStore, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		store:   store,
		logger:  logger,
		metrics: metrics,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(
		chimw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		ServerTiming(s.metrics),
	)

	s.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/orders/{orderNumber}", s.getOrder)
		r.Get("/orders/phone/{phoneNumber}", s.getOrdersByPhone)
		r.Get("/orders/phone/{phoneNumber}/{orderNumber}", s.getOrderByPhoneAndNumber)
		r.Get("/recent-orders", s.listRecentOrders)
		r.Post("/recent-orders", s.addRecentOrder)
	})
}

func (s *Server) Handler() http.Handler { return s.router }

type errorBody struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, details map[string]string) {
	writeJSON(w, status, errorBody{Message: message, Details: details})
}
