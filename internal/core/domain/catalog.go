package domain

// Room categories recognised by the catalog import.
const (
	CategorySingleStandard       = "single_standard"
	CategorySingleEconomy        = "single_economy"
	CategoryDoubleStandardTwin   = "double_standard_twin"
	CategoryDoubleEconomyTwin    = "double_economy_twin"
	CategoryTripleBudget         = "triple_budget"
	CategoryBusiness             = "business"
	CategoryTwoRoomDoubleStd     = "two_room_double_standard"
	CategoryStudio               = "studio"
	CategorySuite                = "suite"
)

// DefaultNightlyPrice is charged for rooms whose category is not recognised.
const DefaultNightlyPrice = 1000

var categoryPrices = map[string]float64{
	CategorySingleStandard:     1000,
	CategorySingleEconomy:      800,
	CategoryDoubleStandardTwin: 1500,
	CategoryDoubleEconomyTwin:  1200,
	CategoryTripleBudget:       1800,
	CategoryBusiness:           2000,
	CategoryTwoRoomDoubleStd:   2200,
	CategoryStudio:             2500,
	CategorySuite:              3000,
}

// PriceForCategory maps a catalog category to its nightly price.
func PriceForCategory(category string) float64 {
	if price, ok := categoryPrices[category]; ok {
		return price
	}
	return DefaultNightlyPrice
}
