// internal/storage/memory/memory.go
package memory

import (
	"cardhawk/internal/domain"
	"cardhawk/internal/wallet"
	"context"
	"fmt"
	"sync"
)

// Store keeps preferences in process memory. Used for local runs and tests.
type Store struct {
	mu          sync.Mutex
	wallets     map[int64]*wallet.Wallet
	pointValues map[int64]domain.PointValues
	rotating    map[int64]domain.RotatingSpend
	quick       map[int64][]domain.QuickCategory
}

func New() *Store {
	return &Store{
		wallets:     make(map[int64]*wallet.Wallet),
		pointValues: make(map[int64]domain.PointValues),
		rotating:    make(map[int64]domain.RotatingSpend),
		quick:       make(map[int64][]domain.QuickCategory),
	}
}

func (s *Store) GetWallet(_ context.Context, userID int64) ([]string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[userID]
	if !ok {
		return nil, false, nil
	}
	return w.IDs(), true, nil
}

func (s *Store) AddCard(_ context.Context, userID int64, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walletFor(userID).Add(cardID)
	return nil
}

func (s *Store) RemoveCard(_ context.Context, userID int64, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walletFor(userID).Remove(cardID)
	return nil
}

func (s *Store) ReplaceWallet(_ context.Context, userID int64, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[userID] = wallet.New(ids...)
	return nil
}

func (s *Store) walletFor(userID int64) *wallet.Wallet {
	w, ok := s.wallets[userID]
	if !ok {
		w = wallet.New()
		s.wallets[userID] = w
	}
	return w
}

func (s *Store) GetPointValues(_ context.Context, userID int64) (domain.PointValues, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(domain.PointValues, len(s.pointValues[userID]))
	for k, v := range s.pointValues[userID] {
		out[k] = v
	}
	return out, nil
}

func (s *Store) SetPointValue(_ context.Context, userID int64, cardID string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("point value must be positive, got %v", value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pointValues[userID] == nil {
		s.pointValues[userID] = make(domain.PointValues)
	}
	s.pointValues[userID][cardID] = value
	return nil
}

func (s *Store) DeletePointValue(_ context.Context, userID int64, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pointValues[userID], cardID)
	return nil
}

func (s *Store) GetRotatingSpend(_ context.Context, userID int64) (domain.RotatingSpend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(domain.RotatingSpend, len(s.rotating[userID]))
	for k, v := range s.rotating[userID] {
		out[k] = v
	}
	return out, nil
}

func (s *Store) SetRotatingSpend(_ context.Context, userID int64, cardID, quarter string, amount float64) error {
	if amount < 0 {
		amount = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rotating[userID] == nil {
		s.rotating[userID] = make(domain.RotatingSpend)
	}
	s.rotating[userID][domain.SpendKey(cardID, quarter)] = amount
	return nil
}

func (s *Store) GetQuickCategories(_ context.Context, userID int64) ([]domain.QuickCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.QuickCategory(nil), s.quick[userID]...), nil
}

func (s *Store) SetQuickCategories(_ context.Context, userID int64, categories []domain.QuickCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quick[userID] = append([]domain.QuickCategory(nil), categories...)
	return nil
}
