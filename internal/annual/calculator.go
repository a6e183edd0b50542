// internal/annual/calculator.go
package annual

import (
	"cardhawk/internal/domain"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// Calculate projects a year of rewards for every card from monthly spend per category.
// Results come back ordered by net value, highest first.
func Calculate(cards []domain.Card, profile domain.SpendingProfile, pointValues domain.PointValues) []domain.AnnualValue {
	categories := sortedCategories(profile)

	results := make([]domain.AnnualValue, 0, len(cards))
	for _, card := range cards {
		pointValue := pointValues.For(card)
		total := 0.0
		for _, category := range categories {
			annualSpend := profile[category] * monthsPerYear
			rate, _ := card.ResolveRate(category)
			total += annualSpend * rate * pointValue / 100
		}
		results = append(results, domain.AnnualValue{
			Card:         card,
			TotalRewards: total,
			NetValue:     total - card.AnnualFee,
			AnnualFee:    card.AnnualFee,
		})
	}
	Sort(results, SortNetValue)
	return results
}

// sortedCategories fixes the summation order so repeated calls are bit-identical.
func sortedCategories(profile domain.SpendingProfile) []string {
	keys := make([]string, 0, len(profile))
	for k := range profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Partition splits results into cards that pay for themselves and those that do not.
func Partition(results []domain.AnnualValue) (worthwhile, notWorth []domain.AnnualValue) {
	for _, r := range results {
		if r.NetValue > 0 {
			worthwhile = append(worthwhile, r)
		} else {
			notWorth = append(notWorth, r)
		}
	}
	return worthwhile, notWorth
}

type FeeBand string

const (
	FeeBandAll      FeeBand = ""
	FeeBandNone     FeeBand = "none"
	FeeBandUnder100 FeeBand = "under100"
	FeeBandUnder300 FeeBand = "under300"
	FeeBandPremium  FeeBand = "premium"
)

func (b FeeBand) Contains(fee float64) bool {
	switch b {
	case FeeBandNone:
		return fee == 0
	case FeeBandUnder100:
		return fee > 0 && fee < 100
	case FeeBandUnder300:
		return fee >= 100 && fee < 300
	case FeeBandPremium:
		return fee >= 300
	default:
		return true
	}
}

func ParseFeeBand(s string) (FeeBand, error) {
	switch b := FeeBand(strings.ToLower(strings.TrimSpace(s))); b {
	case FeeBandAll, "all":
		return FeeBandAll, nil
	case FeeBandNone, FeeBandUnder100, FeeBandUnder300, FeeBandPremium:
		return b, nil
	default:
		return "", fmt.Errorf("unknown fee band %q", s)
	}
}

// Filter narrows results; zero fields match everything.
type Filter struct {
	Issuer  string
	FeeBand FeeBand
	Network domain.Network
}

func (f Filter) Apply(results []domain.AnnualValue) []domain.AnnualValue {
	out := make([]domain.AnnualValue, 0, len(results))
	for _, r := range results {
		if f.Issuer != "" && r.Card.Issuer != f.Issuer {
			continue
		}
		if f.Network != "" && r.Card.Network != f.Network {
			continue
		}
		if !f.FeeBand.Contains(r.AnnualFee) {
			continue
		}
		out = append(out, r)
	}
	return out
}

type SortKey string

const (
	SortNetValue SortKey = "net"
	SortRewards  SortKey = "rewards"
	SortFee      SortKey = "fee"
	SortName     SortKey = "name"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortNetValue, nil
	case SortNetValue, SortRewards, SortFee, SortName:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// Sort orders results in place, stably: net value and rewards descending,
// fee ascending, name by display name.
func Sort(results []domain.AnnualValue, key SortKey) {
	var less func(a, b domain.AnnualValue) bool
	switch key {
	case SortRewards:
		less = func(a, b domain.AnnualValue) bool { return a.TotalRewards > b.TotalRewards }
	case SortFee:
		less = func(a, b domain.AnnualValue) bool { return a.AnnualFee < b.AnnualFee }
	case SortName:
		less = func(a, b domain.AnnualValue) bool {
			return strings.ToLower(a.Card.DisplayName) < strings.ToLower(b.Card.DisplayName)
		}
	default:
		less = func(a, b domain.AnnualValue) bool { return a.NetValue > b.NetValue }
	}
	sort.SliceStable(results, func(i, j int) bool { return less(results[i], results[j]) })
}

// Summary describes the spending profile the projection was made for.
type Summary struct {
	MonthlySpend decimal.Decimal            `json:"monthly_spend"`
	AnnualSpend  decimal.Decimal            `json:"annual_spend"`
	ByCategory   map[string]decimal.Decimal `json:"annual_by_category"`
}

// Summarize totals the profile, rounded to cents. Zero categories are omitted.
func Summarize(profile domain.SpendingProfile) Summary {
	s := Summary{ByCategory: make(map[string]decimal.Decimal)}
	months := decimal.NewFromInt(monthsPerYear)
	for _, category := range sortedCategories(profile) {
		monthly := profile[category]
		if monthly <= 0 {
			continue
		}
		m := decimal.NewFromFloat(monthly)
		s.MonthlySpend = s.MonthlySpend.Add(m)
		s.ByCategory[category] = m.Mul(months).Round(2)
	}
	s.MonthlySpend = s.MonthlySpend.Round(2)
	s.AnnualSpend = s.MonthlySpend.Mul(months).Round(2)
	return s
}

// Report bundles a full calculation as the calculator page presents it.
type Report struct {
	Summary    Summary              `json:"summary"`
	Worthwhile []domain.AnnualValue `json:"worthwhile"`
	NotWorth   []domain.AnnualValue `json:"not_worth_it"`
}

// BuildReport runs Calculate, then Filter and Sort, then Partition.
func BuildReport(cards []domain.Card, profile domain.SpendingProfile, pointValues domain.PointValues, filter Filter, key SortKey) Report {
	results := filter.Apply(Calculate(cards, profile, pointValues))
	Sort(results, key)
	worthwhile, notWorth := Partition(results)
	if worthwhile == nil {
		worthwhile = []domain.AnnualValue{}
	}
	if notWorth == nil {
		notWorth = []domain.AnnualValue{}
	}
	return Report{
		Summary:    Summarize(profile),
		Worthwhile: worthwhile,
		NotWorth:   notWorth,
	}
}
