// README: Pricing service computes fares from the tier catalog.
package pricing

import (
	"context"
	"math"

	"skytaxi/internal/types"
)

// cruiseSpeedKmh is the average speed used for travel time estimates.
const cruiseSpeedKmh = 100.0

// Fare returns round(base + distance * rate). Rounding is half away from zero.
// A negative distance is not a valid input and yields 0.
func Fare(t Tier, distanceKm float64) int64 {
	if distanceKm < 0 {
		return 0
	}
	return int64(math.Round(t.BasePrice + distanceKm*t.PricePerKm))
}

// EstimatedMinutes returns the rounded flight time at cruise speed.
func EstimatedMinutes(distanceKm float64) int {
	if distanceKm <= 0 {
		return 0
	}
	return int(math.Round(distanceKm / cruiseSpeedKmh * 60))
}

type Service struct {
	catalog  *Catalog
	currency string
}

func NewService(catalog *Catalog, currency string) *Service {
	if currency == "" {
		currency = types.DefaultCurrency
	}
	return &Service{catalog: catalog, currency: currency}
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

func (s *Service) Currency() string {
	return s.currency
}

func (s *Service) Money(amount int64) types.Money {
	return types.Money{Amount: amount, Currency: s.currency}
}

func (s *Service) Estimate(ctx context.Context, distanceKm float64, tierID string) (types.Money, error) {
	t, err := s.catalog.Get(tierID)
	if err != nil {
		return types.Money{}, err
	}
	return s.Money(Fare(t, distanceKm)), nil
}

// Quote prices the distance for every tier, in catalog order.
func (s *Service) Quote(ctx context.Context, distanceKm float64) []Quote {
	tiers := s.catalog.All()
	quotes := make([]Quote, 0, len(tiers))
	for _, t := range tiers {
		quotes = append(quotes, Quote{Tier: t, Fare: s.Money(Fare(t, distanceKm))})
	}
	return quotes
}
