package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"skytaxi/internal/types"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

// exerciseStore runs the contract every SessionStore must satisfy.
func exerciseStore(t *testing.T, store SessionStore) {
	t.Helper()
	ctx := context.Background()

	sess := &Session{ID: "s1", Booking: New()}
	if err := store.Create(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Create(ctx, &Session{ID: "s1"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate create: expected ErrConflict, got %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	next, err := got.Booking.SelectPickup(mgRoad)
	if err != nil {
		t.Fatalf("pickup: %v", err)
	}
	got.Booking = next
	if err := store.Save(ctx, got, 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got.Version != 1 {
		t.Fatalf("version after save = %d, want 1", got.Version)
	}

	// Stale writer loses.
	stale := &Session{ID: "s1", Booking: New()}
	if err := store.Save(ctx, stale, 0); !errors.Is(err, ErrConflict) {
		t.Fatalf("stale save: expected ErrConflict, got %v", err)
	}

	reloaded, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Version != 1 || reloaded.Booking.Step != StepAwaitingDestination {
		t.Fatalf("unexpected reloaded session: %+v", reloaded)
	}
	if reloaded.Booking.Pickup == nil || *reloaded.Booking.Pickup != mgRoad {
		t.Fatalf("pickup not persisted: %+v", reloaded.Booking.Pickup)
	}

	if err := store.Save(ctx, &Session{ID: "nope"}, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("save unknown: expected ErrNotFound, got %v", err)
	}
	if _, err := store.Get(ctx, types.ID("nope")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get unknown: expected ErrNotFound, got %v", err)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete: expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Hour))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	if err := store.Create(ctx, &Session{ID: "s1", Booking: New()}); err != nil {
		t.Fatalf("create: %v", err)
	}
	now = now.Add(59 * time.Second)
	if _, err := store.Get(ctx, "s1"); err != nil {
		t.Fatalf("get before expiry: %v", err)
	}
	now = now.Add(time.Second)
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after expiry: expected ErrNotFound, got %v", err)
	}
}

func TestRedisStore(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	exerciseStore(t, store)
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	if err := store.Create(ctx, &Session{ID: "s1", Booking: New()}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if ttl := mr.TTL(sessionKey("s1")); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after expiry: expected ErrNotFound, got %v", err)
	}
}

func TestServiceWithRedisStore(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	svc := newTestService(t, &recordingPublisher{})
	svc.store = store
	ctx := context.Background()

	id := mustStart(t, svc)
	if _, err := svc.SelectPickup(ctx, id, mgRoad); err != nil {
		t.Fatalf("pickup: %v", err)
	}
	if _, err := svc.SelectDestination(ctx, id, koramangala); err != nil {
		t.Fatalf("destination: %v", err)
	}
	sess, err := svc.SelectTier(ctx, id, "standard")
	if err != nil {
		t.Fatalf("tier: %v", err)
	}
	if sess.Booking.Tier == nil || sess.Booking.Tier.Name != "Standard" || sess.Booking.Fare != 265 {
		t.Fatalf("unexpected booking: %+v", sess.Booking)
	}
	if _, err := svc.Confirm(ctx, id); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	assertStep(t, svc, id, StepConfirmed)
}
