package domain

// PropertyKind identifies one of the three rentable categories.
type PropertyKind string

const (
	KindApartment PropertyKind = "apartment"
	KindHouse     PropertyKind = "house"
	KindStudio    PropertyKind = "studio"
)

// PropertyCategory is a closed set: Apartment, House and Studio are the
// only implementations.
type PropertyCategory interface {
	Kind() PropertyKind
	isPropertyCategory()
}

type Apartment struct {
	Bedrooms   int
	HasParking bool
	NoChildren bool
}

type House struct {
	Bedrooms   int
	HasParking bool
}

// Studio callers must pass a non-negative ParkingSpots.
type Studio struct {
	ParkingSpots int
}

func (Apartment) Kind() PropertyKind { return KindApartment }
func (House) Kind() PropertyKind     { return KindHouse }
func (Studio) Kind() PropertyKind    { return KindStudio }

func (Apartment) isPropertyCategory() {}
func (House) isPropertyCategory()     {}
func (Studio) isPropertyCategory()    {}

// HasParking is true as soon as one spot is rented.
func (s Studio) HasParking() bool {
	return s.ParkingSpots > 0
}
