package service

import (
	"github.com/shopspring/decimal"

	"rental-budget/domain"
)

const (
	DefaultAmortizationWindow = 5
	SurchargedBedroomCount    = 2 // only an exact match pays the bedroom surcharge
	StudioIncludedSpots       = 2 // spots covered by the studio parking fee
)

var (
	DefaultContractFee     = decimal.NewFromInt(2000)
	NoChildrenDiscountRate = decimal.RequireFromString("0.05")
)

// RateCard holds the fixed prices of one property category.
type RateCard struct {
	Kind               domain.PropertyKind `json:"kind"`
	BasePrice          decimal.Decimal     `json:"base_price"`
	BedroomSurcharge   decimal.Decimal     `json:"bedroom_surcharge"`
	ParkingSurcharge   decimal.Decimal     `json:"parking_surcharge"`
	ExtraSpotSurcharge decimal.Decimal     `json:"extra_spot_surcharge"`
	DiscountRate       decimal.Decimal     `json:"discount_rate"`
}

var (
	apartmentRates = RateCard{
		Kind:             domain.KindApartment,
		BasePrice:        decimal.NewFromInt(700),
		BedroomSurcharge: decimal.NewFromInt(200),
		ParkingSurcharge: decimal.NewFromInt(300),
		DiscountRate:     NoChildrenDiscountRate,
	}
	houseRates = RateCard{
		Kind:             domain.KindHouse,
		BasePrice:        decimal.NewFromInt(900),
		BedroomSurcharge: decimal.NewFromInt(250),
		ParkingSurcharge: decimal.NewFromInt(300),
	}
	studioRates = RateCard{
		Kind:               domain.KindStudio,
		BasePrice:          decimal.NewFromInt(1200),
		ParkingSurcharge:   decimal.NewFromInt(250),
		ExtraSpotSurcharge: decimal.NewFromInt(60),
	}
)

// RateCards lists the rate card of every category in a stable order.
func RateCards() []RateCard {
	return []RateCard{apartmentRates, houseRates, studioRates}
}
