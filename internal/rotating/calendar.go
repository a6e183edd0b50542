// internal/rotating/calendar.go
package rotating

import (
	"cardhawk/internal/domain"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidQuarterKey = errors.New("invalid quarter key")

// CurrentQuarterKey returns the "Q{n}-{year}" key for t's calendar quarter.
func CurrentQuarterKey(t time.Time) string {
	q := (int(t.Month())-1)/3 + 1
	return QuarterKey(q, t.Year())
}

func QuarterKey(quarter, year int) string {
	return fmt.Sprintf("Q%d-%d", quarter, year)
}

// ParseQuarterKey splits "Q3-2025" into (3, 2025).
func ParseQuarterKey(key string) (quarter, year int, err error) {
	q, y, ok := strings.Cut(key, "-")
	if !ok || len(q) != 2 || q[0] != 'Q' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidQuarterKey, key)
	}
	quarter, err = strconv.Atoi(q[1:])
	if err != nil || quarter < 1 || quarter > 4 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidQuarterKey, key)
	}
	year, err = strconv.Atoi(y)
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidQuarterKey, key)
	}
	return quarter, year, nil
}

// NextQuarterKey rolls Q4 over into Q1 of the following year.
func NextQuarterKey(key string) (string, error) {
	quarter, year, err := ParseQuarterKey(key)
	if err != nil {
		return "", err
	}
	if quarter == 4 {
		return QuarterKey(1, year+1), nil
	}
	return QuarterKey(quarter+1, year), nil
}

// Progress reports spending statistics for one (card, quarter).
//
// The cap is not enforced: once Spent exceeds Cap, Remaining and RemainingRewards go
// negative and rewards keep accruing linearly. Callers must present this honestly.
type Progress struct {
	Spent            float64 `json:"spent"`
	Cap              float64 `json:"cap"`
	Remaining        float64 `json:"remaining"`
	Percentage       float64 `json:"percentage"`
	EarnedRewards    float64 `json:"earned_rewards"`
	MaxRewards       float64 `json:"max_rewards"`
	RemainingRewards float64 `json:"remaining_rewards"`
	NeedsActivation  bool    `json:"needs_activation"`
}

// ComputeProgress derives Progress from the quarter entry and the amount spent so far.
// Negative spend is clamped to zero.
func ComputeProgress(entry domain.QuarterEntry, spent float64) Progress {
	if spent < 0 {
		spent = 0
	}
	p := Progress{
		Spent:            spent,
		Cap:              entry.Cap,
		Remaining:        entry.Cap - spent,
		EarnedRewards:    spent * entry.Rate / 100,
		MaxRewards:       entry.Cap * entry.Rate / 100,
		RemainingRewards: (entry.Cap - spent) * entry.Rate / 100,
		NeedsActivation:  spent == 0,
	}
	if entry.Cap > 0 {
		p.Percentage = spent / entry.Cap * 100
	}
	return p
}
