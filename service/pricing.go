package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"rental-budget/domain"
)

// roundToCents rounds a money value to 2 decimals.
func roundToCents(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// ComputeMonthlyRent derives the monthly rent of a property from its rate card.
//
// Studio.ParkingSpots must already be non-negative; the input layer clamps it.
func ComputeMonthlyRent(category domain.PropertyCategory) (domain.PricingResult, error) {
	switch c := category.(type) {
	case domain.Apartment:
		return priceApartment(c), nil
	case domain.House:
		return priceHouse(c), nil
	case domain.Studio:
		return priceStudio(c), nil
	case nil:
		return domain.PricingResult{}, &InvalidInputError{Field: "category", Reason: "no category selected"}
	default:
		return domain.PricingResult{}, &InvalidInputError{
			Field:  "category",
			Reason: fmt.Sprintf("unsupported category %T", category),
		}
	}
}

func priceApartment(a domain.Apartment) domain.PricingResult {
	surcharge := bedroomSurcharge(a.Bedrooms, apartmentRates).
		Add(parkingSurcharge(a.HasParking, apartmentRates))

	discount := decimal.Zero
	if a.NoChildren {
		// applied to the subtotal, not to the base price alone
		subtotal := apartmentRates.BasePrice.Add(surcharge)
		discount = roundToCents(subtotal.Mul(apartmentRates.DiscountRate))
	}

	return newPricingResult(domain.KindApartment, apartmentRates.BasePrice, surcharge, discount)
}

func priceHouse(h domain.House) domain.PricingResult {
	surcharge := bedroomSurcharge(h.Bedrooms, houseRates).
		Add(parkingSurcharge(h.HasParking, houseRates))

	return newPricingResult(domain.KindHouse, houseRates.BasePrice, surcharge, decimal.Zero)
}

func priceStudio(s domain.Studio) domain.PricingResult {
	surcharge := decimal.Zero
	if s.HasParking() {
		surcharge = studioRates.ParkingSurcharge
		if extra := s.ParkingSpots - StudioIncludedSpots; extra > 0 {
			surcharge = surcharge.Add(studioRates.ExtraSpotSurcharge.Mul(decimal.NewFromInt(int64(extra))))
		}
	}

	return newPricingResult(domain.KindStudio, studioRates.BasePrice, surcharge, decimal.Zero)
}

func bedroomSurcharge(bedrooms int, rates RateCard) decimal.Decimal {
	if bedrooms == SurchargedBedroomCount {
		return rates.BedroomSurcharge
	}
	return decimal.Zero
}

func parkingSurcharge(hasParking bool, rates RateCard) decimal.Decimal {
	if hasParking {
		return rates.ParkingSurcharge
	}
	return decimal.Zero
}

func newPricingResult(kind domain.PropertyKind, base, surcharge, discount decimal.Decimal) domain.PricingResult {
	return domain.PricingResult{
		Kind:        kind,
		BasePrice:   base,
		Surcharge:   surcharge,
		Discount:    discount,
		MonthlyRent: roundToCents(base.Add(surcharge).Sub(discount)),
	}
}
