// README: Service tier definitions and quote results.
package pricing

import "skytaxi/internal/types"

// Tier is a named service level with its own base price and per-km rate.
type Tier struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	PricePerKm  float64 `json:"price_per_km"`
	Capacity    int     `json:"capacity"`
}

type Quote struct {
	Tier Tier        `json:"tier"`
	Fare types.Money `json:"fare"`
}

// DefaultTiers is the built-in catalog served when no database catalog is configured.
func DefaultTiers() []Tier {
	return []Tier{
		{
			ID:          "standard",
			Name:        "Standard",
			Description: "Comfortable and efficient",
			BasePrice:   150,
			PricePerKm:  25,
			Capacity:    2,
		},
		{
			ID:          "premium",
			Name:        "Premium",
			Description: "Extra comfort and speed",
			BasePrice:   250,
			PricePerKm:  35,
			Capacity:    3,
		},
		{
			ID:          "luxury",
			Name:        "Luxury",
			Description: "First-class aerial experience",
			BasePrice:   500,
			PricePerKm:  50,
			Capacity:    4,
		},
	}
}
