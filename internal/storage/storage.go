// internal/storage/storage.go
package storage

import (
	"cardhawk/internal/domain"
	"context"
)

// WalletStorage keeps the set of active cards per user.
type WalletStorage interface {
	// GetWallet returns active card ids; found is false when the user never saved a wallet.
	GetWallet(ctx context.Context, userID int64) (ids []string, found bool, err error)
	AddCard(ctx context.Context, userID int64, cardID string) error
	RemoveCard(ctx context.Context, userID int64, cardID string) error
	// ReplaceWallet atomically makes ids the user's whole wallet.
	ReplaceWallet(ctx context.Context, userID int64, ids []string) error
}

type PointValueStorage interface {
	GetPointValues(ctx context.Context, userID int64) (domain.PointValues, error)
	SetPointValue(ctx context.Context, userID int64, cardID string, value float64) error
	DeletePointValue(ctx context.Context, userID int64, cardID string) error
}

type RotatingStorage interface {
	GetRotatingSpend(ctx context.Context, userID int64) (domain.RotatingSpend, error)
	SetRotatingSpend(ctx context.Context, userID int64, cardID, quarter string, amount float64) error
}

type QuickCategoryStorage interface {
	GetQuickCategories(ctx context.Context, userID int64) ([]domain.QuickCategory, error)
	SetQuickCategories(ctx context.Context, userID int64, categories []domain.QuickCategory) error
}

// PreferenceStorage is everything the advisor needs from persistence.
type PreferenceStorage interface {
	WalletStorage
	PointValueStorage
	RotatingStorage
	QuickCategoryStorage
}
