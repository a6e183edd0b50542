// internal/merchant/merchant.go
package merchant

import (
	"cardhawk/internal/domain"
	"strings"
)

type Merchant struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Codes    string `json:"codes"`
}

// MinQueryLen and MaxResults bound Search.
const (
	MinQueryLen = 2
	MaxResults  = 10
)

var directory = []Merchant{
	{Name: "Starbucks", Category: domain.CategoryDining, Type: "Coffee Shop", Codes: "Dining/Restaurants"},
	{Name: "Chipotle", Category: domain.CategoryDining, Type: "Fast Casual", Codes: "Dining/Restaurants"},
	{Name: "McDonalds", Category: domain.CategoryDining, Type: "Fast Food", Codes: "Dining/Restaurants"},
	{Name: "Whole Foods", Category: domain.CategoryGrocery, Type: "Supermarket", Codes: "Grocery Stores"},
	{Name: "Trader Joes", Category: domain.CategoryGrocery, Type: "Supermarket", Codes: "Grocery Stores"},
	{Name: "Safeway", Category: domain.CategoryGrocery, Type: "Supermarket", Codes: "Grocery Stores"},
	{Name: "Kroger", Category: domain.CategoryGrocery, Type: "Supermarket", Codes: "Grocery Stores"},
	{Name: "Costco", Category: domain.CategoryOther, Type: "Warehouse Club", Codes: "Wholesale/Warehouse (NOT Grocery!)"},
	{Name: "Sams Club", Category: domain.CategoryOther, Type: "Warehouse Club", Codes: "Wholesale/Warehouse"},
	{Name: "Target", Category: domain.CategoryOther, Type: "General Merchandise", Codes: "Superstores"},
	{Name: "Walmart", Category: domain.CategoryOther, Type: "General Merchandise", Codes: "Superstores"},
	{Name: "Amazon", Category: domain.CategoryOther, Type: "Online Retail", Codes: "Digital/Online Shopping"},
	{Name: "United Airlines", Category: domain.CategoryFlights, Type: "Airline", Codes: "Airlines/Air Travel"},
	{Name: "Delta Air Lines", Category: domain.CategoryFlights, Type: "Airline", Codes: "Airlines/Air Travel"},
	{Name: "American Airlines", Category: domain.CategoryFlights, Type: "Airline", Codes: "Airlines/Air Travel"},
	{Name: "Southwest Airlines", Category: domain.CategoryFlights, Type: "Airline", Codes: "Airlines/Air Travel"},
	{Name: "Marriott", Category: domain.CategoryHotels, Type: "Hotel Chain", Codes: "Lodging/Hotels"},
	{Name: "Hilton", Category: domain.CategoryHotels, Type: "Hotel Chain", Codes: "Lodging/Hotels"},
	{Name: "Hyatt", Category: domain.CategoryHotels, Type: "Hotel Chain", Codes: "Lodging/Hotels"},
	{Name: "Shell", Category: domain.CategoryGas, Type: "Gas Station", Codes: "Service Stations/Gas"},
	{Name: "Chevron", Category: domain.CategoryGas, Type: "Gas Station", Codes: "Service Stations/Gas"},
	{Name: "BP", Category: domain.CategoryGas, Type: "Gas Station", Codes: "Service Stations/Gas"},
	{Name: "Exxon", Category: domain.CategoryGas, Type: "Gas Station", Codes: "Service Stations/Gas"},
	{Name: "Uber", Category: domain.CategoryOther, Type: "Rideshare", Codes: "Transportation/Taxi Services"},
	{Name: "Lyft", Category: domain.CategoryOther, Type: "Rideshare", Codes: "Transportation/Taxi Services"},
	{Name: "DoorDash", Category: domain.CategoryDining, Type: "Food Delivery", Codes: "Dining/Food Delivery"},
	{Name: "Uber Eats", Category: domain.CategoryDining, Type: "Food Delivery", Codes: "Dining/Food Delivery"},
	{Name: "Grubhub", Category: domain.CategoryDining, Type: "Food Delivery", Codes: "Dining/Food Delivery"},
	{Name: "Netflix", Category: domain.CategoryOther, Type: "Streaming", Codes: "Digital Entertainment/Streaming"},
	{Name: "Spotify", Category: domain.CategoryOther, Type: "Streaming", Codes: "Digital Entertainment/Streaming"},
	{Name: "Apple", Category: domain.CategoryOther, Type: "Technology/Retail", Codes: "Electronics/Computers"},
	{Name: "Best Buy", Category: domain.CategoryOther, Type: "Electronics", Codes: "Electronics/Computers"},
	{Name: "Home Depot", Category: domain.CategoryOther, Type: "Home Improvement", Codes: "Hardware/Home Improvement"},
	{Name: "Lowes", Category: domain.CategoryOther, Type: "Home Improvement", Codes: "Hardware/Home Improvement"},
	{Name: "CVS", Category: domain.CategoryOther, Type: "Pharmacy", Codes: "Drug Stores/Pharmacies"},
	{Name: "Walgreens", Category: domain.CategoryOther, Type: "Pharmacy", Codes: "Drug Stores/Pharmacies"},
}

// Search matches query against merchant name and type, case-insensitively.
// Queries shorter than MinQueryLen return nothing.
func Search(query string) []Merchant {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < MinQueryLen {
		return nil
	}
	var found []Merchant
	for _, m := range directory {
		if strings.Contains(strings.ToLower(m.Name), q) || strings.Contains(strings.ToLower(m.Type), q) {
			found = append(found, m)
			if len(found) == MaxResults {
				break
			}
		}
	}
	return found
}

// Lookup finds a merchant by exact name, ignoring case.
func Lookup(name string) (Merchant, bool) {
	for _, m := range directory {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, true
		}
	}
	return Merchant{}, false
}

// CategoryFor returns the spend category of a merchant; unknown merchants are "other".
func CategoryFor(name string) string {
	if m, ok := Lookup(name); ok {
		return m.Category
	}
	return domain.CategoryOther
}
