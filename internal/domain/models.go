// internal/domain/models.go
package domain

// Network is the payment network of a card. Closed set.
type Network string

const (
	NetworkVisa       Network = "Visa"
	NetworkMastercard Network = "Mastercard"
	NetworkAmex       Network = "American Express"
	NetworkDiscover   Network = "Discover"
)

var Networks = []Network{NetworkVisa, NetworkMastercard, NetworkAmex, NetworkDiscover}

func (n Network) IsValid() bool {
	for _, known := range Networks {
		if n == known {
			return true
		}
	}
	return false
}

const (
	CategoryDining     = "dining"
	CategoryGrocery    = "grocery"
	CategoryFlights    = "flights"
	CategoryHotels     = "hotels"
	CategoryGas        = "gas"
	CategoryStreaming  = "streaming"
	CategoryDrugstores = "drugstores"
	CategoryTravel     = "travel"
	CategoryRotating   = "rotating"
	CategoryOther      = "other"
)

// BaseEarningRate applies when a card has neither an exact entry nor an "other" entry.
const BaseEarningRate = 1.0

// CoreCategories are the categories offered by the calculator and comparison views.
var CoreCategories = []string{
	CategoryDining,
	CategoryGrocery,
	CategoryFlights,
	CategoryHotels,
	CategoryGas,
	CategoryOther,
}

var categoryNames = map[string]string{
	CategoryDining:     "Dining",
	CategoryGrocery:    "Grocery",
	CategoryFlights:    "Flights",
	CategoryHotels:     "Hotels",
	CategoryGas:        "Gas",
	CategoryStreaming:  "Streaming",
	CategoryDrugstores: "Drugstores",
	CategoryTravel:     "Travel",
	CategoryOther:      "Everything Else",
}

// CategoryName returns the display name of a category key.
func CategoryName(category string) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return categoryNames[CategoryOther]
}

type EarningRate struct {
	Category    string  `json:"category" validate:"required,notblank"`
	Rate        float64 `json:"rate" validate:"gte=0"`
	Description string  `json:"description"`
}

type Perk struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Bonus struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Value       string `json:"value,omitempty"`
}

// Card is a catalog entry. Cards differ only in field values, never in behavior.
type Card struct {
	ID           string        `json:"id" validate:"required,notblank"`
	Issuer       string        `json:"issuer" validate:"required"`
	Name         string        `json:"name"`
	DisplayName  string        `json:"display_name" validate:"required"`
	Network      Network       `json:"network" validate:"required,network"`
	AnnualFee    float64       `json:"annual_fee" validate:"gte=0"`
	EarningRates []EarningRate `json:"earning_rates" validate:"dive"`
	Perks        []Perk        `json:"perks,omitempty"`
	Bonuses      []Bonus       `json:"bonuses,omitempty"`
	PointValue   float64       `json:"point_value" validate:"gt=0"`
	PointsName   string        `json:"points_name"`
}

// ResolveRate walks the fallback chain: exact category, then "other", then BaseEarningRate.
// The returned entry is nil when the base rate was used.
func (c Card) ResolveRate(category string) (float64, *EarningRate) {
	for _, lookup := range []string{category, CategoryOther} {
		if er := c.ExplicitRate(lookup); er != nil {
			return er.Rate, er
		}
	}
	return BaseEarningRate, nil
}

// ExplicitRate returns the card's own entry for category, without fallback.
func (c Card) ExplicitRate(category string) *EarningRate {
	for i := range c.EarningRates {
		if c.EarningRates[i].Category == category {
			return &c.EarningRates[i]
		}
	}
	return nil
}

// PointValues maps card id to a custom cents-per-point override.
type PointValues map[string]float64

// For returns the override for the card, or the card's catalog default.
func (pv PointValues) For(card Card) float64 {
	if v, ok := pv[card.ID]; ok && v > 0 {
		return v
	}
	return card.PointValue
}

// SpendingProfile maps category key to monthly spend in dollars.
type SpendingProfile map[string]float64

// RotatingSpend maps SpendKey(cardID, quarter) to dollars spent so far.
type RotatingSpend map[string]float64

func SpendKey(cardID, quarterKey string) string {
	return cardID + "|" + quarterKey
}

func (rs RotatingSpend) Spent(cardID, quarterKey string) float64 {
	return rs[SpendKey(cardID, quarterKey)]
}

// QuickCategory is a category pinned for one-tap recommendations.
type QuickCategory struct {
	Category string `json:"category" validate:"required,category"`
	Name     string `json:"name"`
}

var DefaultQuickCategories = []QuickCategory{
	{Category: CategoryDining, Name: "Dining"},
	{Category: CategoryFlights, Name: "Flights"},
	{Category: CategoryGrocery, Name: "Grocery"},
}

// Preferences is the per-user snapshot every engine call receives explicitly.
type Preferences struct {
	UserID          int64           `json:"-"`
	WalletIDs       []string        `json:"wallet"`
	PointValues     PointValues     `json:"custom_point_values"`
	RotatingSpend   RotatingSpend   `json:"-"`
	QuickCategories []QuickCategory `json:"quick_categories"`
}

// Recommendation is the scored result for one card.
type Recommendation struct {
	Card         Card    `json:"card"`
	EarningRate  float64 `json:"earning_rate"`
	PointsEarned float64 `json:"points_earned"`
	DollarValue  float64 `json:"dollar_value"`
	PointValue   float64 `json:"point_value"`
	Rank         int     `json:"rank"`
	IsWinner     bool    `json:"is_winner"`
	Explanation  string  `json:"explanation"`
}

type AnnualValue struct {
	Card         Card    `json:"card"`
	TotalRewards float64 `json:"total_rewards"`
	NetValue     float64 `json:"net_value"`
	AnnualFee    float64 `json:"annual_fee"`
}

// QuarterEntry is a card's bonus category for one quarter.
type QuarterEntry struct {
	Quarter     string  `json:"quarter"`
	Category    string  `json:"category"`
	CategoryKey string  `json:"category_key"`
	Rate        float64 `json:"rate"`
	Cap         float64 `json:"cap"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
}
