// README: Entry point; loads config, wires the catalog, session store and event publisher, starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"skytaxi/internal/config"
	"skytaxi/internal/events"
	httptransport "skytaxi/internal/http"
	"skytaxi/internal/infra"
	"skytaxi/internal/modules/booking"
	"skytaxi/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatalf("tier catalog: %v", err)
	}
	pricingSvc := pricing.NewService(catalog, cfg.Currency)
	log.Printf("tier catalog loaded tiers=%d currency=%s", catalog.Len(), pricingSvc.Currency())

	var store booking.SessionStore
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal(err)
		}
		defer redisClient.Close()
		store = booking.NewRedisStore(redisClient, cfg.Session.TTL)
		log.Printf("session store=redis addr=%s ttl=%s", cfg.Redis.Addr, cfg.Session.TTL)
	} else {
		store = booking.NewMemoryStore(cfg.Session.TTL)
		log.Printf("session store=memory ttl=%s", cfg.Session.TTL)
	}

	var publisher events.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Printf("event publisher=kafka brokers=%v topic=%s", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		publisher = events.NewLogPublisher(nil)
		log.Printf("event publisher=log")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Printf("close publisher: %v", err)
		}
	}()

	bookingSvc := booking.NewService(store, pricingSvc, publisher)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Booking: bookingSvc,
		Pricing: pricingSvc,
		Map:     cfg.Map,
	})

	server := httptransport.NewServer(cfg.HTTP.Addr, router, cfg.HTTP.ShutdownTimeout)
	if err := server.Run(ctx); err != nil {
		log.Fatal(err)
	}
}

// loadCatalog builds the immutable tier catalog once at start-up.
func loadCatalog(ctx context.Context, cfg config.Config) (*pricing.Catalog, error) {
	if !cfg.DB.TiersFromDB {
		return pricing.NewCatalog(pricing.DefaultTiers())
	}
	pool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	store := pricing.NewStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	if cfg.DB.SeedDefaults {
		if err := store.SeedDefaults(ctx, pricing.DefaultTiers()); err != nil {
			return nil, err
		}
	}
	return store.LoadCatalog(ctx)
}
