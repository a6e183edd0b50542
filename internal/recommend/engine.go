// internal/recommend/engine.go
package recommend

import (
	"cardhawk/internal/domain"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var ErrTooFewCards = errors.New("at least two cards are needed to compare")

// Calculate scores every card for spending amount in category and ranks them by
// dollar value, highest first. Equal values keep the input order.
func Calculate(cards []domain.Card, category string, amount float64, pointValues domain.PointValues) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(cards))
	for _, card := range cards {
		rate, matched := card.ResolveRate(category)
		pointsEarned := amount * rate
		pointValue := pointValues.For(card)

		recs = append(recs, domain.Recommendation{
			Card:         card,
			EarningRate:  rate,
			PointsEarned: pointsEarned,
			DollarValue:  pointsEarned * pointValue / 100,
			PointValue:   pointValue,
			Explanation:  explain(rate, matched),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].DollarValue > recs[j].DollarValue
	})
	for i := range recs {
		recs[i].Rank = i + 1
		recs[i].IsWinner = i == 0
	}
	return recs
}

func explain(rate float64, matched *domain.EarningRate) string {
	if matched != nil {
		return matched.Description
	}
	return fmt.Sprintf("Base earning rate of %sx points", strconv.FormatFloat(rate, 'f', -1, 64))
}

// Best returns the winner, or false when there were no cards.
func Best(recs []domain.Recommendation) (domain.Recommendation, bool) {
	if len(recs) == 0 {
		return domain.Recommendation{}, false
	}
	return recs[0], true
}

// ComparisonRow holds each card's explicit rate for one category. Cards without an
// explicit entry show 0; Winners marks the maximum rate when it is positive.
type ComparisonRow struct {
	Category string    `json:"category"`
	Name     string    `json:"name"`
	Rates    []float64 `json:"rates"`
	Winners  []bool    `json:"winners"`
}

type Comparison struct {
	Cards []domain.Card   `json:"cards"`
	Rows  []ComparisonRow `json:"rows"`
}

// Compare builds a side-by-side table of explicit earning rates.
func Compare(cards []domain.Card, categories []string) (Comparison, error) {
	if len(cards) < 2 {
		return Comparison{}, ErrTooFewCards
	}
	if len(categories) == 0 {
		categories = domain.CoreCategories
	}

	cmp := Comparison{Cards: cards, Rows: make([]ComparisonRow, 0, len(categories))}
	for _, category := range categories {
		row := ComparisonRow{
			Category: category,
			Name:     domain.CategoryName(category),
			Rates:    make([]float64, len(cards)),
			Winners:  make([]bool, len(cards)),
		}
		maxRate := 0.0
		for i, card := range cards {
			if er := card.ExplicitRate(category); er != nil {
				row.Rates[i] = er.Rate
			}
			if row.Rates[i] > maxRate {
				maxRate = row.Rates[i]
			}
		}
		for i := range cards {
			row.Winners[i] = maxRate > 0 && row.Rates[i] == maxRate
		}
		cmp.Rows = append(cmp.Rows, row)
	}
	return cmp, nil
}
