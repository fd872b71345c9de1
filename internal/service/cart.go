package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/vitrine-store/vitrine/internal/domain"
	"github.com/vitrine-store/vitrine/internal/snapshot"
)

// cartService holds the cart in memory and writes a full snapshot through the
// store on every mutation. A snapshot write failure is logged and the
// in-memory state kept; the cart must never become unusable because
// persistence hiccuped.
type cartService struct {
	mu     sync.Mutex
	items  []domain.CartItem
	store  snapshot.Store
	logger *slog.Logger
}

// NewCartService creates a CartService backed by the given snapshot store.
// Any previously persisted snapshot is restored; a corrupt snapshot is
// discarded with a log entry and the cart starts empty.
func NewCartService(ctx context.Context, store snapshot.Store, logger *slog.Logger) domain.CartService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &cartService{
		store:  store,
		logger: logger,
	}
	s.restore(ctx)
	return s
}

// restore loads the persisted snapshot into memory.
func (s *cartService) restore(ctx context.Context) {
	data, err := s.store.Load(ctx)
	if err != nil {
		if err != snapshot.ErrNotFound {
			s.logger.Warn("failed to load cart snapshot, starting empty", "error", err)
		}
		return
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Error("discarding corrupt cart snapshot", "error", err)
		return
	}

	s.items = items
	s.logger.Info("cart restored from snapshot", "lines", len(items))
}

// persist serializes the current lines and writes them through the store.
// Must be called with the mutex held.
func (s *cartService) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error("failed to serialize cart snapshot", "error", err)
		return
	}

	if err := s.store.Save(ctx, data); err != nil {
		s.logger.Error("failed to persist cart snapshot", "error", err)
	}
}

// AddItem accumulates delta onto an existing line or creates a new one.
// A resulting quantity <= 0 removes the line.
func (s *cartService) AddItem(ctx context.Context, product domain.Product, delta int64) domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(product.Code)
	if idx >= 0 {
		s.items[idx].Quantity += delta
		if s.items[idx].Quantity <= 0 {
			s.items = append(s.items[:idx], s.items[idx+1:]...)
		}
	} else if delta > 0 {
		s.items = append(s.items, domain.CartItem{Product: product, Quantity: delta})
	}

	s.persist(ctx)
	return s.summaryLocked()
}

// UpdateQuantity sets a line's quantity to exactly quantity; <= 0 removes it.
// An absent line is left absent.
func (s *cartService) UpdateQuantity(ctx context.Context, code int64, quantity int64) domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(code)
	if quantity <= 0 {
		if idx >= 0 {
			s.items = append(s.items[:idx], s.items[idx+1:]...)
		}
	} else if idx >= 0 {
		s.items[idx].Quantity = quantity
	}

	s.persist(ctx)
	return s.summaryLocked()
}

// RemoveItem removes the line for code. No-op if absent.
func (s *cartService) RemoveItem(ctx context.Context, code int64) domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(code); idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}

	s.persist(ctx)
	return s.summaryLocked()
}

// Clear empties the cart unconditionally.
func (s *cartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the current line items.
func (s *cartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalCents sums effective unit price times quantity over all lines.
func (s *cartService) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalLocked()
}

// Summary returns the cart with item count and total.
func (s *cartService) Summary() domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.summaryLocked()
}

// indexOf returns the line index for code, or -1. Must be called with the
// mutex held.
func (s *cartService) indexOf(code int64) int {
	for i, item := range s.items {
		if item.Code == code {
			return i
		}
	}
	return -1
}

func (s *cartService) totalLocked() int64 {
	var total int64
	for _, item := range s.items {
		total += item.LineTotalCents()
	}
	return total
}

func (s *cartService) summaryLocked() domain.CartSummary {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)

	var count int64
	for _, item := range items {
		count += item.Quantity
	}

	return domain.CartSummary{
		Items:      items,
		ItemCount:  count,
		TotalCents: s.totalLocked(),
	}
}
