// internal/rotating/schedule.go
package rotating

import (
	"cardhawk/internal/domain"
	"time"
)

// CardSchedule is the static quarterly calendar of one rotating-category card.
type CardSchedule struct {
	CardID   string                         `json:"card_id"`
	Name     string                         `json:"name"`
	Quarters map[string]domain.QuarterEntry `json:"quarters"`
}

// Schedule lists the rotating cards in display order. Never mutated at runtime.
type Schedule []CardSchedule

// QuarterCategoryFor returns the card's entry for quarterKey, if scheduled.
func (s Schedule) QuarterCategoryFor(cardID, quarterKey string) (domain.QuarterEntry, bool) {
	for _, cs := range s {
		if cs.CardID == cardID {
			entry, ok := cs.Quarters[quarterKey]
			return entry, ok
		}
	}
	return domain.QuarterEntry{}, false
}

func (s Schedule) Has(cardID string) bool {
	for _, cs := range s {
		if cs.CardID == cardID {
			return true
		}
	}
	return false
}

// CardOverview is what the rotating page shows for one card.
type CardOverview struct {
	CardID   string               `json:"card_id"`
	Name     string               `json:"name"`
	Quarter  string               `json:"quarter"`
	Current  *domain.QuarterEntry `json:"current,omitempty"`
	Progress *Progress            `json:"progress,omitempty"`
	Next     *domain.QuarterEntry `json:"next,omitempty"`
}

// Overview resolves current and next quarter for every scheduled card at now.
// Cards with no entry for a quarter leave that field nil.
func (s Schedule) Overview(spend domain.RotatingSpend, now time.Time) []CardOverview {
	current := CurrentQuarterKey(now)
	next, _ := NextQuarterKey(current)

	out := make([]CardOverview, 0, len(s))
	for _, cs := range s {
		ov := CardOverview{CardID: cs.CardID, Name: cs.Name, Quarter: current}
		if entry, ok := cs.Quarters[current]; ok {
			p := ComputeProgress(entry, spend.Spent(cs.CardID, current))
			ov.Current = &entry
			ov.Progress = &p
		}
		if entry, ok := cs.Quarters[next]; ok {
			ov.Next = &entry
		}
		out = append(out, ov)
	}
	return out
}

func quarter(label, category, key, start, end string) domain.QuarterEntry {
	return domain.QuarterEntry{
		Quarter:     label,
		Category:    category,
		CategoryKey: key,
		Rate:        5.0,
		Cap:         1500,
		StartDate:   start,
		EndDate:     end,
	}
}

// DefaultSchedule is the hand-curated 2025 calendar.
var DefaultSchedule = Schedule{
	{
		CardID: "discover-it-cash-back",
		Name:   "Discover it Cash Back",
		Quarters: map[string]domain.QuarterEntry{
			"Q1-2025": quarter("Q1 2025", "Gas Stations & EV Charging", domain.CategoryGas, "2025-01-01", "2025-03-31"),
			"Q2-2025": quarter("Q2 2025", "Amazon.com & Wholesale Clubs", domain.CategoryOther, "2025-04-01", "2025-06-30"),
			"Q3-2025": quarter("Q3 2025", "Restaurants", domain.CategoryDining, "2025-07-01", "2025-09-30"),
			"Q4-2025": quarter("Q4 2025", "Walmart & PayPal", domain.CategoryOther, "2025-10-01", "2025-12-31"),
		},
	},
	{
		CardID: "chase-freedom-flex",
		Name:   "Chase Freedom Flex",
		Quarters: map[string]domain.QuarterEntry{
			"Q1-2025": quarter("Q1 2025", "Grocery Stores", domain.CategoryGrocery, "2025-01-01", "2025-03-31"),
			"Q2-2025": quarter("Q2 2025", "Gas Stations", domain.CategoryGas, "2025-04-01", "2025-06-30"),
			"Q3-2025": quarter("Q3 2025", "Amazon.com", domain.CategoryOther, "2025-07-01", "2025-09-30"),
			"Q4-2025": quarter("Q4 2025", "Walmart & Streaming", domain.CategoryOther, "2025-10-01", "2025-12-31"),
		},
	},
}
