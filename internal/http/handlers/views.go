// README: JSON views returned to the booking front-end.
package handlers

import (
	"time"

	"skytaxi/internal/modules/booking"
	"skytaxi/internal/modules/pricing"
	"skytaxi/internal/types"
)

type bookingView struct {
	ID           types.ID          `json:"id"`
	Step         booking.Step      `json:"step"`
	Pickup       *types.Point      `json:"pickup"`
	Destination  *types.Point      `json:"destination"`
	Tier         *pricing.Tier     `json:"tier"`
	DistanceKm   *float64          `json:"distance_km"`
	Fare         *types.Money      `json:"fare"`
	Confirmation *confirmationView `json:"confirmation,omitempty"`
	Version      int               `json:"version"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type confirmationView struct {
	Reference        string       `json:"reference"`
	Pickup           types.Point  `json:"pickup"`
	Destination      types.Point  `json:"destination"`
	Tier             pricing.Tier `json:"tier"`
	DistanceKm       float64      `json:"distance_km"`
	Fare             types.Money  `json:"fare"`
	EstimatedMinutes int          `json:"estimated_minutes"`
	ConfirmedAt      time.Time    `json:"confirmed_at"`
}

// newBookingView leaves derived values null until they are defined.
func newBookingView(s *booking.Session, money func(int64) types.Money) bookingView {
	b := s.Booking
	v := bookingView{
		ID:          s.ID,
		Step:        b.Step,
		Pickup:      b.Pickup,
		Destination: b.Destination,
		Tier:        b.Tier,
		Version:     s.Version,
		UpdatedAt:   s.UpdatedAt,
	}
	if b.HasDistance() {
		d := b.DistanceKm
		v.DistanceKm = &d
	}
	if b.HasFare() {
		m := money(b.Fare)
		v.Fare = &m
	}
	if s.Confirmation != nil {
		cv := newConfirmationView(s.Confirmation)
		v.Confirmation = &cv
	}
	return v
}

func newConfirmationView(c *booking.Confirmation) confirmationView {
	return confirmationView{
		Reference:        c.Reference,
		Pickup:           c.Snapshot.Pickup,
		Destination:      c.Snapshot.Destination,
		Tier:             c.Snapshot.Tier,
		DistanceKm:       c.Snapshot.DistanceKm,
		Fare:             c.Fare,
		EstimatedMinutes: c.EstimatedMinutes,
		ConfirmedAt:      c.ConfirmedAt,
	}
}
