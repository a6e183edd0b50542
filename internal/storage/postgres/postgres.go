// internal/storage/postgres/postgres.go
package postgres

import (
	"cardhawk/internal/domain"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

// === WalletStorage ===

func (s *Storage) GetWallet(ctx context.Context, userID int64) ([]string, bool, error) {
	rows, err := s.db.Query(ctx, `
		SELECT card_id, is_active
		FROM user_cards
		WHERE user_id = $1
		ORDER BY created_at, card_id
	`, userID)
	if err != nil {
		return nil, false, fmt.Errorf("query wallet: %w", err)
	}
	defer rows.Close()

	found := false
	ids := []string{}
	for rows.Next() {
		var cardID string
		var active bool
		if err := rows.Scan(&cardID, &active); err != nil {
			return nil, false, fmt.Errorf("scan wallet card: %w", err)
		}
		found = true
		if active {
			ids = append(ids, cardID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("rows error: %w", err)
	}
	return ids, found, nil
}

func (s *Storage) AddCard(ctx context.Context, userID int64, cardID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO user_cards (user_id, card_id, is_active)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (user_id, card_id) DO UPDATE SET is_active = TRUE
	`, userID, cardID)
	if err != nil {
		return fmt.Errorf("add card %q: %w", cardID, err)
	}
	slog.Debug("Card added to wallet", "user_id", userID, "card_id", cardID)
	return nil
}

// RemoveCard deactivates the row so the user still counts as having a saved wallet.
func (s *Storage) RemoveCard(ctx context.Context, userID int64, cardID string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE user_cards SET is_active = FALSE
		WHERE user_id = $1 AND card_id = $2
	`, userID, cardID)
	if err != nil {
		return fmt.Errorf("remove card %q: %w", cardID, err)
	}
	slog.Debug("Card removed from wallet", "user_id", userID, "card_id", cardID)
	return nil
}

func (s *Storage) ReplaceWallet(ctx context.Context, userID int64, ids []string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "UPDATE user_cards SET is_active = FALSE WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("clear wallet: %w", err)
	}

	for _, cardID := range ids {
		_, err = tx.Exec(ctx, `
			INSERT INTO user_cards (user_id, card_id, is_active)
			VALUES ($1, $2, TRUE)
			ON CONFLICT (user_id, card_id) DO UPDATE SET is_active = TRUE
		`, userID, cardID)
		if err != nil {
			return fmt.Errorf("insert card %q: %w", cardID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	slog.Debug("ReplaceWallet completed", "user_id", userID, "cards", len(ids))
	return nil
}

// === PointValueStorage ===

func (s *Storage) GetPointValues(ctx context.Context, userID int64) (domain.PointValues, error) {
	rows, err := s.db.Query(ctx, `
		SELECT card_id, point_value::float8
		FROM custom_point_values
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query point values: %w", err)
	}
	defer rows.Close()

	values := make(domain.PointValues)
	for rows.Next() {
		var cardID string
		var value float64
		if err := rows.Scan(&cardID, &value); err != nil {
			return nil, fmt.Errorf("scan point value: %w", err)
		}
		values[cardID] = value
	}
	return values, rows.Err()
}

func (s *Storage) SetPointValue(ctx context.Context, userID int64, cardID string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("point value must be positive, got %v", value)
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO custom_point_values (user_id, card_id, point_value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, card_id)
		DO UPDATE SET point_value = EXCLUDED.point_value, updated_at = NOW()
	`, userID, cardID, value)
	if err != nil {
		return fmt.Errorf("upsert point value: %w", err)
	}
	return nil
}

func (s *Storage) DeletePointValue(ctx context.Context, userID int64, cardID string) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM custom_point_values WHERE user_id = $1 AND card_id = $2
	`, userID, cardID)
	if err != nil {
		return fmt.Errorf("delete point value: %w", err)
	}
	return nil
}

// === RotatingStorage ===

func (s *Storage) GetRotatingSpend(ctx context.Context, userID int64) (domain.RotatingSpend, error) {
	rows, err := s.db.Query(ctx, `
		SELECT card_id, quarter, amount::float8
		FROM rotating_spending
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query rotating spending: %w", err)
	}
	defer rows.Close()

	spend := make(domain.RotatingSpend)
	for rows.Next() {
		var cardID, quarter string
		var amount float64
		if err := rows.Scan(&cardID, &quarter, &amount); err != nil {
			return nil, fmt.Errorf("scan rotating spending: %w", err)
		}
		spend[domain.SpendKey(cardID, quarter)] = amount
	}
	return spend, rows.Err()
}

func (s *Storage) SetRotatingSpend(ctx context.Context, userID int64, cardID, quarter string, amount float64) error {
	if amount < 0 {
		amount = 0
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO rotating_spending (user_id, card_id, quarter, amount, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, card_id, quarter)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
	`, userID, cardID, quarter, amount)
	if err != nil {
		return fmt.Errorf("upsert rotating spending: %w", err)
	}
	return nil
}

// === QuickCategoryStorage ===

func (s *Storage) GetQuickCategories(ctx context.Context, userID int64) ([]domain.QuickCategory, error) {
	var categories []domain.QuickCategory
	err := s.db.QueryRow(ctx, `
		SELECT categories FROM quick_categories WHERE user_id = $1
	`, userID).Scan(&categories)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find quick categories: %w", err)
	}
	return categories, nil
}

func (s *Storage) SetQuickCategories(ctx context.Context, userID int64, categories []domain.QuickCategory) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO quick_categories (user_id, categories, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET categories = EXCLUDED.categories, updated_at = NOW()
	`, userID, categories)
	if err != nil {
		return fmt.Errorf("upsert quick categories: %w", err)
	}
	return nil
}
