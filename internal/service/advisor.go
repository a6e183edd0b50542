// internal/service/advisor.go
package service

import (
	"cardhawk/internal/acceptance"
	"cardhawk/internal/annual"
	"cardhawk/internal/catalog"
	"cardhawk/internal/domain"
	"cardhawk/internal/merchant"
	"cardhawk/internal/recommend"
	"cardhawk/internal/rotating"
	"cardhawk/internal/storage"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

var (
	ErrAnonymous   = errors.New("sign in to change saved preferences")
	ErrNotRotating = errors.New("card has no rotating categories")
	ErrPointValue  = errors.New("point value must be a positive number")
)

// Advisor loads a user's preference snapshot and runs the pure engines over it.
type Advisor struct {
	catalog  *catalog.Catalog
	store    storage.PreferenceStorage
	schedule rotating.Schedule
	now      func() time.Time
}

func NewAdvisor(cat *catalog.Catalog, store storage.PreferenceStorage, schedule rotating.Schedule) *Advisor {
	return &Advisor{
		catalog:  cat,
		store:    store,
		schedule: schedule,
		now:      time.Now,
	}
}

func (a *Advisor) Catalog() *catalog.Catalog {
	return a.catalog
}

// Preferences returns the snapshot for userID. Anonymous users (0) and users who
// never saved a wallet get the default wallet.
func (a *Advisor) Preferences(ctx context.Context, userID int64) (domain.Preferences, error) {
	prefs := domain.Preferences{
		UserID:          userID,
		WalletIDs:       append([]string(nil), catalog.DefaultWalletIDs...),
		PointValues:     domain.PointValues{},
		RotatingSpend:   domain.RotatingSpend{},
		QuickCategories: append([]domain.QuickCategory(nil), domain.DefaultQuickCategories...),
	}
	if userID == 0 {
		return prefs, nil
	}

	ids, found, err := a.store.GetWallet(ctx, userID)
	if err != nil {
		return prefs, fmt.Errorf("load wallet: %w", err)
	}
	if found {
		prefs.WalletIDs = a.knownIDs(userID, ids)
	}

	if prefs.PointValues, err = a.store.GetPointValues(ctx, userID); err != nil {
		return prefs, fmt.Errorf("load point values: %w", err)
	}
	if prefs.RotatingSpend, err = a.store.GetRotatingSpend(ctx, userID); err != nil {
		return prefs, fmt.Errorf("load rotating spend: %w", err)
	}

	quick, err := a.store.GetQuickCategories(ctx, userID)
	if err != nil {
		return prefs, fmt.Errorf("load quick categories: %w", err)
	}
	if len(quick) > 0 {
		prefs.QuickCategories = quick
	}
	return prefs, nil
}

// knownIDs drops stored ids the catalog no longer has, so scoring never sees them.
func (a *Advisor) knownIDs(userID int64, ids []string) []string {
	known := make([]string, 0, len(ids))
	for _, id := range ids {
		if !a.catalog.Contains(id) {
			slog.Warn("Dropping unknown card from wallet", "user_id", userID, "card_id", id)
			continue
		}
		known = append(known, id)
	}
	return known
}

// WalletCards resolves the wallet to catalog cards, in catalog order.
func (a *Advisor) WalletCards(ctx context.Context, userID int64) ([]domain.Card, domain.Preferences, error) {
	prefs, err := a.Preferences(ctx, userID)
	if err != nil {
		return nil, prefs, err
	}
	cards, err := a.catalog.Resolve(prefs.WalletIDs)
	if err != nil {
		return nil, prefs, err
	}
	return cards, prefs, nil
}

type RecommendResult struct {
	Category        string                  `json:"category"`
	CategoryName    string                  `json:"category_name"`
	Amount          float64                 `json:"amount"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

func (a *Advisor) Recommend(ctx context.Context, userID int64, category string, amount float64) (RecommendResult, error) {
	cards, prefs, err := a.WalletCards(ctx, userID)
	if err != nil {
		return RecommendResult{}, err
	}
	return RecommendResult{
		Category:        category,
		CategoryName:    domain.CategoryName(category),
		Amount:          amount,
		Recommendations: recommend.Calculate(cards, category, amount, prefs.PointValues),
	}, nil
}

type MerchantResult struct {
	RecommendResult
	Merchant string        `json:"merchant"`
	Note     string        `json:"note,omitempty"`
	Rejected []domain.Card `json:"rejected,omitempty"`
}

// RecommendAtMerchant ranks only the wallet cards the merchant accepts. The category
// comes from the merchant directory unless category is given.
func (a *Advisor) RecommendAtMerchant(ctx context.Context, userID int64, merchantName, category string, amount float64) (MerchantResult, error) {
	cards, prefs, err := a.WalletCards(ctx, userID)
	if err != nil {
		return MerchantResult{}, err
	}
	if category == "" {
		category = merchant.CategoryFor(merchantName)
	}
	accepted := acceptance.FilterAcceptedCards(cards, merchantName)
	return MerchantResult{
		RecommendResult: RecommendResult{
			Category:        category,
			CategoryName:    domain.CategoryName(category),
			Amount:          amount,
			Recommendations: recommend.Calculate(accepted, category, amount, prefs.PointValues),
		},
		Merchant: merchantName,
		Note:     acceptance.Note(merchantName),
		Rejected: acceptance.RejectedCards(cards, merchantName),
	}, nil
}

type MerchantMatch struct {
	Merchant merchant.Merchant      `json:"merchant"`
	Best     *domain.Recommendation `json:"best,omitempty"`
}

// SearchMerchants finds merchants and attaches the best wallet card per $100 spent.
func (a *Advisor) SearchMerchants(ctx context.Context, userID int64, query string) ([]MerchantMatch, error) {
	found := merchant.Search(query)
	if len(found) == 0 {
		return []MerchantMatch{}, nil
	}
	cards, prefs, err := a.WalletCards(ctx, userID)
	if err != nil {
		return nil, err
	}
	matches := make([]MerchantMatch, 0, len(found))
	for _, m := range found {
		match := MerchantMatch{Merchant: m}
		accepted := acceptance.FilterAcceptedCards(cards, m.Name)
		if best, ok := recommend.Best(recommend.Calculate(accepted, m.Category, 100, prefs.PointValues)); ok {
			match.Best = &best
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func (a *Advisor) Compare(cardIDs []string, categories []string) (recommend.Comparison, error) {
	cards, err := a.catalog.Resolve(cardIDs)
	if err != nil {
		return recommend.Comparison{}, err
	}
	return recommend.Compare(cards, categories)
}

func (a *Advisor) AnnualValue(ctx context.Context, userID int64, profile domain.SpendingProfile, filter annual.Filter, key annual.SortKey) (annual.Report, error) {
	cards, prefs, err := a.WalletCards(ctx, userID)
	if err != nil {
		return annual.Report{}, err
	}
	return annual.BuildReport(cards, profile, prefs.PointValues, filter, key), nil
}

// Rotating reports current-quarter progress and the upcoming quarter at date.
// A zero date means now.
func (a *Advisor) Rotating(ctx context.Context, userID int64, date time.Time) ([]rotating.CardOverview, error) {
	prefs, err := a.Preferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = a.now()
	}
	return a.schedule.Overview(prefs.RotatingSpend, date), nil
}

// UpdateRotatingSpend records spend for a quarter; an empty quarter means the current one.
func (a *Advisor) UpdateRotatingSpend(ctx context.Context, userID int64, cardID, quarter string, amount float64) error {
	if userID == 0 {
		return ErrAnonymous
	}
	if !a.schedule.Has(cardID) {
		return fmt.Errorf("%w: %q", ErrNotRotating, cardID)
	}
	if quarter == "" {
		quarter = rotating.CurrentQuarterKey(a.now())
	}
	if _, _, err := rotating.ParseQuarterKey(quarter); err != nil {
		return err
	}
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	if err := a.store.SetRotatingSpend(ctx, userID, cardID, quarter, amount); err != nil {
		return fmt.Errorf("save rotating spend: %w", err)
	}
	slog.Info("Rotating spend updated", "user_id", userID, "card_id", cardID, "quarter", quarter, "amount", amount)
	return nil
}
