// README: Config loader with env defaults for HTTP, DB, Redis, Kafka and booking sessions.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SKYTAXI"

type SessionConfig struct {
	TTL time.Duration
}

type MapConfig struct {
	CenterLat float64
	CenterLng float64
	Zoom      int
}

type Config struct {
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
	}
	DB struct {
		DSN          string
		TiersFromDB  bool
		SeedDefaults bool
	}
	Redis struct {
		Addr string
	}
	Kafka struct {
		Brokers []string
		Topic   string
	}
	Session  SessionConfig
	Map      MapConfig
	Currency string
}

// Load reads an optional .env file and then SKYTAXI_* environment variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("db.dsn", "")
	v.SetDefault("tiers_from_db", false)
	v.SetDefault("seed_tiers", true)
	v.SetDefault("redis.addr", "")
	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.topic", "booking.confirmed")
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("map.center_lat", 12.9716)
	v.SetDefault("map.center_lng", 77.5946)
	v.SetDefault("map.zoom", 12)
	v.SetDefault("currency", "INR")
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.HTTP.ShutdownTimeout = v.GetDuration("http.shutdown_timeout")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.DB.TiersFromDB = v.GetBool("tiers_from_db")
	cfg.DB.SeedDefaults = v.GetBool("seed_tiers")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Kafka.Brokers = splitList(v.GetString("kafka.brokers"))
	cfg.Kafka.Topic = v.GetString("kafka.topic")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Map.CenterLat = v.GetFloat64("map.center_lat")
	cfg.Map.CenterLng = v.GetFloat64("map.center_lng")
	cfg.Map.Zoom = v.GetInt("map.zoom")
	cfg.Currency = strings.ToUpper(v.GetString("currency"))

	if cfg.DB.TiersFromDB && cfg.DB.DSN == "" {
		return cfg, fmt.Errorf("config: %s_TIERS_FROM_DB requires %s_DB_DSN", envPrefix, envPrefix)
	}
	if cfg.Session.TTL <= 0 {
		return cfg, fmt.Errorf("config: %s_SESSION_TTL must be positive, got %s", envPrefix, cfg.Session.TTL)
	}
	if cfg.Kafka.Topic == "" {
		return cfg, fmt.Errorf("config: %s_KAFKA_TOPIC must not be empty", envPrefix)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
