package infra

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestNewRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	addr := mr.Addr()

	client, err := NewRedis(context.Background(), addr)
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	_ = client.Close()

	mr.Close()
	if _, err := NewRedis(context.Background(), addr); err == nil {
		t.Fatal("expected error for unreachable redis")
	}
}
