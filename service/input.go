package service

import (
	"fmt"
	"strings"

	"rental-budget/domain"
)

// BuildCategory turns the collected form values into a property category.
// Options that belong to another category are ignored and a negative
// number of studio parking spots is clamped to zero.
func BuildCategory(req domain.BudgetRequest) (domain.PropertyCategory, error) {
	kind := domain.PropertyKind(strings.ToLower(strings.TrimSpace(req.Category)))

	switch kind {
	case "":
		return nil, &InvalidInputError{Field: "category", Reason: "no category selected"}
	case domain.KindApartment:
		bedrooms, err := normalizeBedrooms(req.Bedrooms)
		if err != nil {
			return nil, err
		}
		return domain.Apartment{
			Bedrooms:   bedrooms,
			HasParking: req.Parking,
			NoChildren: req.NoChildren,
		}, nil
	case domain.KindHouse:
		bedrooms, err := normalizeBedrooms(req.Bedrooms)
		if err != nil {
			return nil, err
		}
		return domain.House{Bedrooms: bedrooms, HasParking: req.Parking}, nil
	case domain.KindStudio:
		return domain.Studio{ParkingSpots: max(0, req.ParkingSpots)}, nil
	default:
		return nil, &InvalidInputError{
			Field:  "category",
			Reason: fmt.Sprintf("unknown category %q", req.Category),
		}
	}
}

// normalizeBedrooms defaults an omitted count to 1.
func normalizeBedrooms(bedrooms int) (int, error) {
	switch bedrooms {
	case 0:
		return 1, nil
	case 1, 2:
		return bedrooms, nil
	default:
		return 0, &InvalidInputError{Field: "bedrooms", Reason: "must be 1 or 2"}
	}
}
