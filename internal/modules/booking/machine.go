// README: Pure booking transitions; each returns a new Booking value.
package booking

import (
	"skytaxi/internal/modules/geo"
	"skytaxi/internal/modules/pricing"
	"skytaxi/internal/types"
)

// New returns an empty booking waiting for a pickup point.
func New() Booking {
	return Booking{Step: StepAwaitingPickup}
}

func (b Booking) HasDistance() bool {
	return b.Pickup != nil && b.Destination != nil
}

func (b Booking) HasFare() bool {
	return b.Tier != nil && b.HasDistance()
}

func (b Booking) SelectPickup(p types.Point) (Booking, error) {
	if !CanTransition(b.Step, StepAwaitingDestination) {
		return b, ErrInvalidState
	}
	next := b
	next.Pickup = &p
	next.Step = StepAwaitingDestination
	return next, nil
}

func (b Booking) SelectDestination(p types.Point) (Booking, error) {
	if !CanTransition(b.Step, StepAwaitingTier) || b.Pickup == nil {
		return b, ErrInvalidState
	}
	next := b
	next.Destination = &p
	next.DistanceKm = geo.DistanceKm(*next.Pickup, p)
	next.Step = StepAwaitingTier
	return next, nil
}

// SelectTier may be called again while awaiting confirmation; the fare is
// recomputed from the cached distance.
func (b Booking) SelectTier(t pricing.Tier) (Booking, error) {
	if !CanTransition(b.Step, StepAwaitingConfirmation) || !b.HasDistance() {
		return b, ErrInvalidState
	}
	next := b
	next.Tier = &t
	next.Fare = pricing.Fare(t, next.DistanceKm)
	next.Step = StepAwaitingConfirmation
	return next, nil
}

func (b Booking) Confirm() (Booking, Snapshot, error) {
	if !CanTransition(b.Step, StepConfirmed) || !b.HasFare() {
		return b, Snapshot{}, ErrInvalidState
	}
	next := b
	next.Step = StepConfirmed
	return next, next.snapshot(), nil
}

func (b Booking) Reset() Booking {
	return New()
}

func (b Booking) snapshot() Snapshot {
	return Snapshot{
		Pickup:      *b.Pickup,
		Destination: *b.Destination,
		Tier:        *b.Tier,
		DistanceKm:  b.DistanceKm,
		Fare:        b.Fare,
	}
}
