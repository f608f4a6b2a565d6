package domain

import "testing"

func TestPriceForCategory(t *testing.T) {
	cases := map[string]float64{
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
	for category, want := range cases {
		if got := PriceForCategory(category); got != want {
			t.Errorf("%s: got %v, want %v", category, got, want)
		}
	}
}

func TestPriceForCategory_Default(t *testing.T) {
	if got := PriceForCategory("presidential_penthouse"); got != DefaultNightlyPrice {
		t.Fatalf("unknown category: got %v, want %v", got, DefaultNightlyPrice)
	}
	if got := PriceForCategory(""); got != DefaultNightlyPrice {
		t.Fatalf("empty category: got %v, want %v", got, DefaultNightlyPrice)
	}
}
