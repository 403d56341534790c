package cache

import (
	"context"
	"testing"
)

func TestConnectAcceptsBothAddressForms(t *testing.T) {
	t.Parallel()

	client, err := Connect(context.Background(), "localhost:6379")
	if err != nil {
		t.Fatalf("connect host:port: %v", err)
	}
	if got := client.Options().Addr; got != "localhost:6379" {
		t.Fatalf("addr = %q, want localhost:6379", got)
	}

	client, err = Connect(context.Background(), "redis://localhost:6380/2")
	if err != nil {
		t.Fatalf("connect url: %v", err)
	}
	if got := client.Options().Addr; got != "localhost:6380" {
		t.Fatalf("addr = %q, want localhost:6380", got)
	}
	if got := client.Options().DB; got != 2 {
		t.Fatalf("db = %d, want 2", got)
	}
}

func TestConnectRejectsBadInput(t *testing.T) {
	t.Parallel()

	if _, err := Connect(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty address")
	}
	if _, err := Connect(context.Background(), "http://localhost:6379"); err == nil {
		t.Fatal("expected error for non-redis scheme")
	}
}
