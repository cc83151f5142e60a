// README: Booking service applies workflow transitions to stored sessions.
package booking

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"skytaxi/internal/events"
	"skytaxi/internal/modules/pricing"
	"skytaxi/internal/types"
)

type Service struct {
	store     SessionStore
	pricing   *pricing.Service
	publisher events.Publisher
	now       func() time.Time
	newID     func() string
}

func NewService(store SessionStore, pricingSvc *pricing.Service, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NewLogPublisher(nil)
	}
	return &Service{
		store:     store,
		pricing:   pricingSvc,
		publisher: publisher,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Start opens a new session holding an empty booking.
func (s *Service) Start(ctx context.Context) (*Session, error) {
	now := s.now()
	sess := &Session{
		ID:        types.ID(s.newID()),
		Booking:   New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Session, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) SelectPickup(ctx context.Context, id types.ID, p types.Point) (*Session, error) {
	if !p.Valid() {
		return nil, ErrBadRequest
	}
	return s.apply(ctx, id, func(sess *Session) error {
		next, err := sess.Booking.SelectPickup(p)
		if err != nil {
			return err
		}
		sess.Booking = next
		return nil
	})
}

func (s *Service) SelectDestination(ctx context.Context, id types.ID, p types.Point) (*Session, error) {
	if !p.Valid() {
		return nil, ErrBadRequest
	}
	return s.apply(ctx, id, func(sess *Session) error {
		next, err := sess.Booking.SelectDestination(p)
		if err != nil {
			return err
		}
		sess.Booking = next
		return nil
	})
}

func (s *Service) SelectTier(ctx context.Context, id types.ID, tierID string) (*Session, error) {
	tier, err := s.pricing.Catalog().Get(tierID)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, id, func(sess *Session) error {
		next, err := sess.Booking.SelectTier(tier)
		if err != nil {
			return err
		}
		sess.Booking = next
		return nil
	})
}

// Confirm moves the booking to its terminal step and announces it. A failed
// publish is logged; the confirmation stands.
func (s *Service) Confirm(ctx context.Context, id types.ID) (*Confirmation, error) {
	sess, err := s.apply(ctx, id, func(sess *Session) error {
		next, snap, err := sess.Booking.Confirm()
		if err != nil {
			return err
		}
		sess.Booking = next
		sess.Confirmation = &Confirmation{
			Reference:        s.newID(),
			Snapshot:         snap,
			Fare:             s.pricing.Money(snap.Fare),
			EstimatedMinutes: pricing.EstimatedMinutes(snap.DistanceKm),
			ConfirmedAt:      s.now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c := sess.Confirmation
	err = s.publisher.Publish(ctx, events.Event{
		Type:       events.TypeBookingConfirmed,
		Key:        c.Reference,
		OccurredAt: c.ConfirmedAt,
		Payload: events.BookingConfirmed{
			Reference:        c.Reference,
			SessionID:        sess.ID,
			Pickup:           c.Snapshot.Pickup,
			Destination:      c.Snapshot.Destination,
			TierID:           c.Snapshot.Tier.ID,
			DistanceKm:       c.Snapshot.DistanceKm,
			Fare:             c.Fare,
			EstimatedMinutes: c.EstimatedMinutes,
		},
	})
	if err != nil {
		log.Printf("booking confirmed but event not published: session=%s ref=%s err=%v", sess.ID, c.Reference, err)
	}
	return c, nil
}

// Reset clears the session back to an empty booking ("book another flight").
func (s *Service) Reset(ctx context.Context, id types.ID) (*Session, error) {
	return s.apply(ctx, id, func(sess *Session) error {
		sess.Booking = sess.Booking.Reset()
		sess.Confirmation = nil
		return nil
	})
}

// End discards the session.
func (s *Service) End(ctx context.Context, id types.ID) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) apply(ctx context.Context, id types.ID, fn func(*Session) error) (*Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	version := sess.Version
	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.UpdatedAt = s.now()
	if err := s.store.Save(ctx, sess, version); err != nil {
		return nil, err
	}
	return sess, nil
}
