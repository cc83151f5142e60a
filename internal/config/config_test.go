package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(newViper())
	if err != nil {
		t.Fatalf("FromViper: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("Session.TTL = %v", cfg.Session.TTL)
	}
	if cfg.Kafka.Topic != "booking.confirmed" || len(cfg.Kafka.Brokers) != 0 {
		t.Errorf("Kafka = %+v", cfg.Kafka)
	}
	if cfg.Map.CenterLat != 12.9716 || cfg.Map.CenterLng != 77.5946 || cfg.Map.Zoom != 12 {
		t.Errorf("Map = %+v", cfg.Map)
	}
	if cfg.Currency != "INR" || cfg.DB.TiersFromDB || cfg.Redis.Addr != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestFromViper_Env(t *testing.T) {
	t.Setenv("SKYTAXI_HTTP_ADDR", ":9090")
	t.Setenv("SKYTAXI_REDIS_ADDR", "localhost:6379")
	t.Setenv("SKYTAXI_KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("SKYTAXI_SESSION_TTL", "5m")
	t.Setenv("SKYTAXI_DB_DSN", "postgres://localhost/skytaxi")
	t.Setenv("SKYTAXI_TIERS_FROM_DB", "true")
	t.Setenv("SKYTAXI_CURRENCY", "usd")

	cfg, err := FromViper(newViper())
	if err != nil {
		t.Fatalf("FromViper: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" || cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("unexpected addrs: %+v", cfg)
	}
	if want := []string{"k1:9092", "k2:9092"}; !reflect.DeepEqual(cfg.Kafka.Brokers, want) {
		t.Errorf("Kafka.Brokers = %v, want %v", cfg.Kafka.Brokers, want)
	}
	if cfg.Session.TTL != 5*time.Minute {
		t.Errorf("Session.TTL = %v", cfg.Session.TTL)
	}
	if !cfg.DB.TiersFromDB || cfg.DB.DSN == "" {
		t.Errorf("DB = %+v", cfg.DB)
	}
	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q", cfg.Currency)
	}
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "tiers from db without dsn",
			env:  map[string]string{"SKYTAXI_TIERS_FROM_DB": "true"},
			want: "TIERS_FROM_DB",
		},
		{
			name: "zero session ttl",
			env:  map[string]string{"SKYTAXI_SESSION_TTL": "0s"},
			want: "SESSION_TTL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromViper(newViper())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}
