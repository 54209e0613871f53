package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	rd "github.com/redis/go-redis/v9"

	domainErrors "github.com/polkiloo/procurebot/internal/domain/errors"
)

type fakeClient struct {
	value   int64
	seeded  map[string]int64
	incrErr error
	setErr  error
}

func (f *fakeClient) Incr(_ context.Context, key string) *rd.IntCmd {
	if f.incrErr != nil {
		return rd.NewIntResult(0, f.incrErr)
	}
	f.value++
	return rd.NewIntResult(f.value, nil)
}

func (f *fakeClient) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *rd.BoolCmd {
	if f.setErr != nil {
		return rd.NewBoolResult(false, f.setErr)
	}
	if f.seeded == nil {
		f.seeded = map[string]int64{}
	}
	if _, exists := f.seeded[key]; exists {
		return rd.NewBoolResult(false, nil)
	}
	n, _ := value.(int)
	f.seeded[key] = int64(n)
	f.value = int64(n)
	return rd.NewBoolResult(true, nil)
}

func (f *fakeClient) Ping(context.Context) *rd.StatusCmd {
	return rd.NewStatusResult("PONG", nil)
}

func TestNextIsStrictlyIncreasing(t *testing.T) {
	c := &Counter{rdb: &fakeClient{}, key: "k"}

	for want := 1; want <= 5; want++ {
		got, err := c.Next(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
}

func TestSeedContinuesFromExistingLedger(t *testing.T) {
	fake := &fakeClient{}
	c := &Counter{rdb: fake, key: "k"}

	if err := c.Seed(context.Background(), 41); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.Next(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42 after seeding with 41, got %d", got)
	}

	// A second seed must not reset an existing counter.
	if err := c.Seed(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err = c.Next(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 43 {
		t.Fatalf("expected 43 after re-seed attempt, got %d", got)
	}
}

func TestNextUnavailable(t *testing.T) {
	c := &Counter{rdb: &fakeClient{incrErr: errors.New("conn refused")}, key: "k"}

	if _, err := c.Next(context.Background()); !errors.Is(err, domainErrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestSeedError(t *testing.T) {
	c := &Counter{rdb: &fakeClient{setErr: errors.New("conn refused")}, key: "k"}

	if err := c.Seed(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
}
