package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunOrder(t *testing.T) {
	got, err := Run(context.Background(), 50, 8, func(_ context.Context, i int) (int, error) {
		// later jobs finish first
		time.Sleep(time.Duration(50-i) * 50 * time.Microsecond)
		return i * i, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 50 {
		t.Fatalf("len = %d, want 50", len(got))
	}
	for i, v := range got {
		if v != i*i {
			t.Fatalf("got[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestRunLimit(t *testing.T) {
	var inflight, peak atomic.Int32
	_, err := Run(context.Background(), 40, 3, func(_ context.Context, i int) (struct{}, error) {
		n := inflight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inflight.Add(-1)
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if p := peak.Load(); p > 3 {
		t.Errorf("peak concurrency %d exceeds limit 3", p)
	}
}

func TestRunFirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32

	got, err := Run(context.Background(), 1000, 2, func(ctx context.Context, i int) (int, error) {
		calls.Add(1)
		if i == 3 {
			return 0, boom
		}
		return i, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if got != nil {
		t.Errorf("partial results returned: %d", len(got))
	}
	if calls.Load() == 1000 {
		t.Error("error did not stop remaining jobs")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, 10, 2, func(context.Context, int) (int, error) { return 1, nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRunEdgeCounts(t *testing.T) {
	got, err := Run(context.Background(), 0, 4, func(context.Context, int) (int, error) { return 1, nil })
	if err != nil || len(got) != 0 {
		t.Errorf("n=0: got %v, %v", got, err)
	}

	if _, err := Run(context.Background(), -1, 4, func(context.Context, int) (int, error) { return 1, nil }); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("n=-1: err = %v", err)
	}

	got, err = Run(context.Background(), 3, 0, func(_ context.Context, i int) (int, error) { return i, nil })
	if err != nil || len(got) != 3 {
		t.Errorf("workers=0: got %v, %v", got, err)
	}
}
