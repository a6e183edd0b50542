// internal/service/wallet.go
package service

import (
	"cardhawk/internal/catalog"
	"cardhawk/internal/domain"
	"cardhawk/internal/wallet"
	"context"
	"fmt"
	"log/slog"
	"math"
)

// AddCard puts a catalog card into the user's wallet and returns the new wallet.
func (a *Advisor) AddCard(ctx context.Context, userID int64, cardID string) ([]string, error) {
	return a.mutateWallet(ctx, userID, cardID, func(w *wallet.Wallet) { w.Add(cardID) })
}

func (a *Advisor) RemoveCard(ctx context.Context, userID int64, cardID string) ([]string, error) {
	return a.mutateWallet(ctx, userID, cardID, func(w *wallet.Wallet) { w.Remove(cardID) })
}

// ToggleCard flips membership of cardID.
func (a *Advisor) ToggleCard(ctx context.Context, userID int64, cardID string) ([]string, error) {
	return a.mutateWallet(ctx, userID, cardID, func(w *wallet.Wallet) { w.Toggle(cardID) })
}

// mutateWallet applies op to the current wallet and persists the difference. A user
// without a saved wallet first gets the default wallet written, so the change applies
// to what they were shown.
func (a *Advisor) mutateWallet(ctx context.Context, userID int64, cardID string, op func(*wallet.Wallet)) ([]string, error) {
	if userID == 0 {
		return nil, ErrAnonymous
	}
	if !a.catalog.Contains(cardID) {
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownCard, cardID)
	}

	ids, found, err := a.store.GetWallet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load wallet: %w", err)
	}
	if !found {
		ids = append([]string(nil), catalog.DefaultWalletIDs...)
		if err := a.store.ReplaceWallet(ctx, userID, ids); err != nil {
			return nil, fmt.Errorf("seed wallet: %w", err)
		}
	}

	w := wallet.New(ids...)
	op(w)
	if w.Contains(cardID) {
		err = a.store.AddCard(ctx, userID, cardID)
	} else {
		err = a.store.RemoveCard(ctx, userID, cardID)
	}
	if err != nil {
		return nil, fmt.Errorf("save wallet: %w", err)
	}

	slog.Info("Wallet updated", "user_id", userID, "card_id", cardID, "active", w.Contains(cardID))
	return w.IDs(), nil
}

func (a *Advisor) SetPointValue(ctx context.Context, userID int64, cardID string, value float64) error {
	if userID == 0 {
		return ErrAnonymous
	}
	if !a.catalog.Contains(cardID) {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownCard, cardID)
	}
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: got %v", ErrPointValue, value)
	}
	if err := a.store.SetPointValue(ctx, userID, cardID, value); err != nil {
		return fmt.Errorf("save point value: %w", err)
	}
	slog.Info("Custom point value set", "user_id", userID, "card_id", cardID, "value", value)
	return nil
}

// ResetPointValue drops the override so the catalog default applies again.
func (a *Advisor) ResetPointValue(ctx context.Context, userID int64, cardID string) error {
	if userID == 0 {
		return ErrAnonymous
	}
	if err := a.store.DeletePointValue(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete point value: %w", err)
	}
	return nil
}

func (a *Advisor) SetQuickCategories(ctx context.Context, userID int64, categories []domain.QuickCategory) error {
	if userID == 0 {
		return ErrAnonymous
	}
	for i := range categories {
		if categories[i].Name == "" {
			categories[i].Name = domain.CategoryName(categories[i].Category)
		}
	}
	if err := a.store.SetQuickCategories(ctx, userID, categories); err != nil {
		return fmt.Errorf("save quick categories: %w", err)
	}
	return nil
}
