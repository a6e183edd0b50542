// internal/acceptance/acceptance.go
package acceptance

import (
	"cardhawk/internal/domain"
	"slices"
	"strings"
)

// Rule restricts which networks a merchant takes. Either list may be empty.
type Rule struct {
	Name             string
	AcceptedNetworks []domain.Network
	ExcludedNetworks []domain.Network
	Note             string
}

// rules is keyed by merchantKey of the merchant name.
var rules = map[string]Rule{
	"costco": {
		Name:             "Costco",
		AcceptedNetworks: []domain.Network{domain.NetworkVisa},
		ExcludedNetworks: []domain.Network{domain.NetworkAmex, domain.NetworkMastercard, domain.NetworkDiscover},
		Note:             "Costco only accepts Visa credit cards (except Costco Anywhere Visa which works everywhere)",
	},
	"sams club": {
		Name:             "Sam's Club",
		AcceptedNetworks: []domain.Network{domain.NetworkVisa, domain.NetworkMastercard, domain.NetworkDiscover},
		ExcludedNetworks: []domain.Network{domain.NetworkAmex},
		Note:             "Sam's Club does not accept American Express",
	},
	"trader joes": {
		Name:             "Trader Joe's",
		AcceptedNetworks: []domain.Network{domain.NetworkVisa, domain.NetworkMastercard, domain.NetworkDiscover, domain.NetworkAmex},
		Note:             "Accepts all major networks",
	},
}

// merchantKey folds case, spacing and apostrophes so "Sam's Club", "sams club" and
// "SAM’S  CLUB" all find the same rule.
func merchantKey(name string) string {
	name = strings.NewReplacer("'", "", "’", "").Replace(strings.ToLower(name))
	return strings.Join(strings.Fields(name), " ")
}

func lookup(merchantName string) (Rule, bool) {
	r, ok := rules[merchantKey(merchantName)]
	return r, ok
}

// IsAccepted reports whether a card on network works at the merchant.
// Deny-list wins, then the allow-list decides; unknown merchants accept everything.
func IsAccepted(network domain.Network, merchantName string) bool {
	r, ok := lookup(merchantName)
	if !ok {
		return true
	}
	if slices.Contains(r.ExcludedNetworks, network) {
		return false
	}
	if len(r.AcceptedNetworks) > 0 {
		return slices.Contains(r.AcceptedNetworks, network)
	}
	return true
}

// FilterAcceptedCards keeps the cards accepted at the merchant, in input order.
func FilterAcceptedCards(cards []domain.Card, merchantName string) []domain.Card {
	accepted := make([]domain.Card, 0, len(cards))
	for _, card := range cards {
		if IsAccepted(card.Network, merchantName) {
			accepted = append(accepted, card)
		}
	}
	return accepted
}

// RejectedCards is the complement of FilterAcceptedCards, used for warnings.
func RejectedCards(cards []domain.Card, merchantName string) []domain.Card {
	var rejected []domain.Card
	for _, card := range cards {
		if !IsAccepted(card.Network, merchantName) {
			rejected = append(rejected, card)
		}
	}
	return rejected
}

// Note returns the merchant's acceptance note, or "" when none is known.
func Note(merchantName string) string {
	r, _ := lookup(merchantName)
	return r.Note
}
