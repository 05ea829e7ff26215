package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/avolkov/order-status/internal/domain"
	"github.com/avolkov/order-status/internal/observability"
)

//go:generate mockgen -source internal/store/store.go -destination=internal/store/source_mock_test.go -package=store

// source is the remote order origin the store falls through to on a miss.
type source interface {
	FetchByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	FetchAllByPhoneNumber(ctx context.Context, phoneNumber string) ([]*domain.Order, error)
}

const (
	SourceCache  = "cache"
	SourceRemote = "remote"

	// DefaultRecentLimit is how many recent views a list call returns when
	// the caller does not say.
	DefaultRecentLimit = 5

	defaultRecentCap = 10
)

type Options struct {
	// TrustCachedPhone keeps the original behavior: any cached record for a
	// phone number short-circuits the remote call. Turn it off to refetch
	// on every phone lookup.
	TrustCachedPhone bool

	// RecentCap bounds the recently-viewed list.
	RecentCap int
}

// Store is the single source of truth for orders during the process
// lifetime. Records are never evicted; surrogate ids are assigned exactly
// once per order number.
type Store struct {
	source  source
	logger  *zap.Logger
	metrics observability.Metrics

	trustCachedPhone bool

	mu           sync.RWMutex
	orders       map[int]*domain.Order
	byNumber     map[string]int
	byAirtableID map[string]int
	byPhone      map[string][]int
	nextOrderID  int

	recent       *lru.Cache[string, domain.RecentOrder]
	recentCap    int
	nextRecentID int

	users      map[string]domain.User
	nextUserID int

	flight singleflight.Group
}

func New(src source, opts Options, logger *zap.Logger, metrics observability.Metrics) (*Store, error) {
	if opts.RecentCap <= 0 {
		opts.RecentCap = defaultRecentCap
	}
	// One slot of headroom: the list trims itself after every insert, by
	// viewedAt, so the LRU's own recency-based eviction must never fire.
	recent, err := lru.New[string, domain.RecentOrder](opts.RecentCap + 1)
	if err != nil {
		return nil, err
	}
	return &Store{
		source:           src,
		logger:           logger,
		metrics:          metrics,
		trustCachedPhone: opts.TrustCachedPhone,
		recentCap:        opts.RecentCap,
		orders:           make(map[int]*domain.Order),
		byNumber:         make(map[string]int),
		byAirtableID:     make(map[string]int),
		byPhone:          make(map[string][]int),
		nextOrderID:      1,
		recent:           recent,
		nextRecentID:     1,
		users:            make(map[string]domain.User),
		nextUserID:       1,
	}, nil
}

// GetByOrderNumber checks the in-memory index first and falls through to
// the remote source on a miss. Concurrent misses for the same number share
// one fetch.
func (s *Store) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	t0 := time.Now()
	if order, ok := s.cachedByNumber(orderNumber); ok {
		s.metrics.IncCacheHit()
		s.metrics.ObserveLookup(SourceCache, msSince(t0))
		return order, nil
	}
	s.metrics.IncCacheMiss()

	v, err, _ := s.flight.Do("order:"+orderNumber, func() (any, error) {
		// Another request may have finished the same fetch while this one
		// queued up behind it.
		if order, ok := s.cachedByNumber(orderNumber); ok {
			return order, nil
		}

		tFetch := time.Now()
		fetched, err := s.source.FetchByOrderNumber(ctx, orderNumber)
		s.metrics.ObserveFetch(msSince(tFetch), err == nil)
		if err != nil {
			return nil, err
		}
		return s.insert(fetched), nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("order fetch failed",
			zap.String("order_number", orderNumber),
			zap.Error(err),
		)
		return nil, err
	}

	order := v.(*domain.Order)
	s.metrics.ObserveLookup(SourceRemote, msSince(t0))
	s.logger.Info("order fetched from source",
		zap.String("order_number", order.OrderNumber),
		zap.Int("id", order.ID),
	)
	return order, nil
}

// GetAllByPhoneNumber returns every order for the phone number. With
// TrustCachedPhone set, the presence of any cached record for the number
// skips the remote call entirely.
func (s *Store) GetAllByPhoneNumber(ctx context.Context, phoneNumber string) ([]*domain.Order, error) {
	t0 := time.Now()
	if s.trustCachedPhone {
		if cached := s.cachedByPhone(phoneNumber); len(cached) > 0 {
			s.metrics.IncCacheHit()
			s.metrics.ObserveLookup(SourceCache, msSince(t0))
			return cached, nil
		}
	}
	s.metrics.IncCacheMiss()

	v, err, _ := s.flight.Do("phone:"+phoneNumber, func() (any, error) {
		tFetch := time.Now()
		fetched, err := s.source.FetchAllByPhoneNumber(ctx, phoneNumber)
		s.metrics.ObserveFetch(msSince(tFetch), err == nil)
		if err != nil {
			return nil, err
		}

		orders := make([]*domain.Order, 0, len(fetched))
		for _, o := range fetched {
			orders = append(orders, s.insert(o))
		}
		return orders, nil
	})
	if err != nil {
		s.logger.Error("phone lookup failed",
			zap.String("phone_number", phoneNumber),
			zap.Error(err),
		)
		return nil, err
	}

	orders := v.([]*domain.Order)
	s.metrics.ObserveLookup(SourceRemote, msSince(t0))
	s.logger.Info("orders fetched from source",
		zap.String("phone_number", phoneNumber),
		zap.Int("count", len(orders)),
	)
	return orders, nil
}

// GetOrder looks up a cached order by surrogate id. It never goes remote.
func (s *Store) GetOrder(id int) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

// OrderPatch carries the mutable order fields for UpdateOrder. Lookup keys
// (order number, airtable id, phone number) are immutable once cached.
type OrderPatch struct {
	RecipientName   *string
	Email           *string
	TotalPrice      *string
	Items           *[]domain.OrderItem
	OrderStatus     *string
	PaymentStatus   *string
	ReceiptLink     *string
	Remark          *string
	TrackingUpdates *[]domain.TrackingUpdate
}

// UpdateOrder applies a partial update by surrogate id. Declared by the
// storage contract; no HTTP route uses it today.
func (s *Store) UpdateOrder(id int, patch OrderPatch) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if patch.RecipientName != nil {
		order.RecipientName = *patch.RecipientName
	}
	if patch.Email != nil {
		order.Email = *patch.Email
	}
	if patch.TotalPrice != nil {
		order.TotalPrice = *patch.TotalPrice
	}
	if patch.Items != nil {
		order.Items = *patch.Items
	}
	if patch.OrderStatus != nil {
		order.OrderStatus = *patch.OrderStatus
	}
	if patch.PaymentStatus != nil {
		order.PaymentStatus = *patch.PaymentStatus
	}
	if patch.ReceiptLink != nil {
		order.ReceiptLink = *patch.ReceiptLink
	}
	if patch.Remark != nil {
		order.Remark = *patch.Remark
	}
	if patch.TrackingUpdates != nil {
		order.TrackingUpdates = *patch.TrackingUpdates
	}

	cp := *order
	return &cp, nil
}

// AddRecentOrder records a view event. A repeat view of the same order
// replaces its entry; once the list is over cap, the entry with the oldest
// viewedAt is dropped.
func (s *Store) AddRecentOrder(orderNumber string, viewedAt time.Time) domain.RecentOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.RecentOrder{
		ID:          s.nextRecentID,
		OrderNumber: orderNumber,
		ViewedAt:    viewedAt,
	}
	s.nextRecentID++

	s.recent.Add(orderNumber, entry)
	if s.recent.Len() > s.recentCap {
		s.evictOldestViewed()
	}
	return entry
}

// evictOldestViewed drops the entry with the minimum viewedAt. The LRU's
// own recency order cannot stand in for it: POST bodies carry
// client-supplied timestamps, so insertion order and viewedAt order can
// disagree. Callers hold s.mu.
func (s *Store) evictOldestViewed() {
	keys := s.recent.Keys()
	oldestKey := keys[0]
	oldest, _ := s.recent.Peek(oldestKey)
	for _, key := range keys[1:] {
		e, _ := s.recent.Peek(key)
		if e.ViewedAt.Before(oldest.ViewedAt) {
			oldestKey = key
			oldest = e
		}
	}
	s.recent.Remove(oldestKey)
}

// ListRecentOrders returns up to limit view events, most recent first.
func (s *Store) ListRecentOrders(limit int) []domain.RecentOrder {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	entries := s.recent.Values()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ViewedAt.After(entries[j].ViewedAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// insert assigns a surrogate id exactly once per order. A fetch that lost
// a race gets the winner's record back instead of a duplicate id.
func (s *Store) insert(o *domain.Order) *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byNumber[o.OrderNumber]; ok {
		cp := *s.orders[id]
		return &cp
	}
	if id, ok := s.byAirtableID[o.AirtableID]; ok {
		cp := *s.orders[id]
		return &cp
	}

	stored := *o
	stored.ID = s.nextOrderID
	s.nextOrderID++

	s.orders[stored.ID] = &stored
	s.byNumber[stored.OrderNumber] = stored.ID
	if stored.AirtableID != "" {
		s.byAirtableID[stored.AirtableID] = stored.ID
	}
	if stored.PhoneNumber != "" {
		s.byPhone[stored.PhoneNumber] = append(s.byPhone[stored.PhoneNumber], stored.ID)
	}

	cp := stored
	return &cp
}

func (s *Store) cachedByNumber(orderNumber string) (*domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byNumber[orderNumber]
	if !ok {
		return nil, false
	}
	cp := *s.orders[id]
	return &cp, true
}

func (s *Store) cachedByPhone(phoneNumber string) []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byPhone[phoneNumber]
	orders := make([]*domain.Order, 0, len(ids))
	for _, id := range ids {
		cp := *s.orders[id]
		orders = append(orders, &cp)
	}
	return orders
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
