// README: Booking aggregate, workflow steps and the allowed step transitions.
package booking

import (
	"errors"
	"time"

	"skytaxi/internal/modules/pricing"
	"skytaxi/internal/types"
)

type Step string

const (
	StepAwaitingPickup       Step = "awaiting_pickup"
	StepAwaitingDestination  Step = "awaiting_destination"
	StepAwaitingTier         Step = "awaiting_tier"
	StepAwaitingConfirmation Step = "awaiting_confirmation"
	StepConfirmed            Step = "confirmed"
)

var (
	ErrInvalidState = errors.New("invalid state transition")
	ErrNotFound     = errors.New("booking session not found")
	ErrConflict     = errors.New("booking session conflict")
	ErrBadRequest   = errors.New("bad request")
)

// Booking is a value: transitions never modify the receiver.
// DistanceKm is meaningful only when HasDistance, Fare only when HasFare;
// otherwise both are zero.
type Booking struct {
	Step        Step          `json:"step"`
	Pickup      *types.Point  `json:"pickup,omitempty"`
	Destination *types.Point  `json:"destination,omitempty"`
	Tier        *pricing.Tier `json:"tier,omitempty"`
	DistanceKm  float64       `json:"distance_km"`
	Fare        int64         `json:"fare"`
}

// Snapshot is the read-only view of a complete booking.
type Snapshot struct {
	Pickup      types.Point  `json:"pickup"`
	Destination types.Point  `json:"destination"`
	Tier        pricing.Tier `json:"tier"`
	DistanceKm  float64      `json:"distance_km"`
	Fare        int64        `json:"fare"`
}

type Confirmation struct {
	Reference        string      `json:"reference"`
	Snapshot         Snapshot    `json:"booking"`
	Fare             types.Money `json:"fare"`
	EstimatedMinutes int         `json:"estimated_minutes"`
	ConfirmedAt      time.Time   `json:"confirmed_at"`
}

// Session holds one client's in-progress booking.
type Session struct {
	ID           types.ID      `json:"id"`
	Booking      Booking       `json:"booking"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
	Version      int           `json:"version"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// AllowedTransitions represents the booking workflow as code. Reset is
// allowed from every step and is listed explicitly.
var AllowedTransitions = map[Step][]Step{
	StepAwaitingPickup:       {StepAwaitingDestination, StepAwaitingPickup},
	StepAwaitingDestination:  {StepAwaitingTier, StepAwaitingPickup},
	StepAwaitingTier:         {StepAwaitingConfirmation, StepAwaitingPickup},
	StepAwaitingConfirmation: {StepAwaitingConfirmation, StepConfirmed, StepAwaitingPickup},
	StepConfirmed:            {StepAwaitingPickup},
}

func CanTransition(from, to Step) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
