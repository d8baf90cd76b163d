package paging

import (
	"context"
	"errors"
	"testing"
)

func pagesOf(all []int, size int) FetchFunc[int] {
	return func(_ context.Context, offset int) ([]int, int, error) {
		if offset >= len(all) {
			return nil, len(all), nil
		}
		end := min(offset+size, len(all))
		return all[offset:end], len(all), nil
	}
}

func TestCollectSinglePage(t *testing.T) {
	t.Parallel()

	got, total, err := Collect(context.Background(), 0, pagesOf([]int{1, 2, 3}, 10))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(got) != 3 || total != 3 {
		t.Fatalf("Collect() = %v, %d", got, total)
	}
}

func TestCollectMultiplePagesKeepsOrder(t *testing.T) {
	t.Parallel()

	var offsets []int
	all := []int{0, 1, 2, 3, 4, 5, 6}
	fetch := func(ctx context.Context, offset int) ([]int, int, error) {
		offsets = append(offsets, offset)
		return pagesOf(all, 3)(ctx, offset)
	}
	got, total, err := Collect(context.Background(), 0, fetch)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if total != 7 || len(got) != 7 {
		t.Fatalf("Collect() = %v, %d", got, total)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d", i, v)
		}
	}
	if len(offsets) != 3 || offsets[1] != 3 || offsets[2] != 6 {
		t.Fatalf("offsets = %v, want [0 3 6]", offsets)
	}
}

func TestCollectStopsOnEmptyPage(t *testing.T) {
	t.Parallel()

	calls := 0
	fetch := func(_ context.Context, offset int) ([]int, int, error) {
		calls++
		if offset > 0 {
			return nil, 50, nil
		}
		return []int{1}, 50, nil
	}
	got, total, err := Collect(context.Background(), 0, fetch)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if calls != 2 || len(got) != 1 || total != 50 {
		t.Fatalf("calls = %d got = %v total = %d", calls, got, total)
	}
}

func TestCollectMaxPagesReportsTruncation(t *testing.T) {
	t.Parallel()

	all := make([]int, 100)
	got, total, err := Collect(context.Background(), 2, pagesOf(all, 10))
	if !errors.Is(err, ErrPageLimit) {
		t.Fatalf("Collect() error = %v, want ErrPageLimit", err)
	}
	if len(got) != 20 || total != 100 {
		t.Fatalf("len(got) = %d total = %d, want 20 and 100", len(got), total)
	}
}

func TestCollectDefaultLimitReportsTruncation(t *testing.T) {
	t.Parallel()

	calls := 0
	fetch := func(context.Context, int) ([]int, int, error) {
		calls++
		return make([]int, 50), 6000, nil
	}
	got, total, err := Collect(context.Background(), 0, fetch)
	if !errors.Is(err, ErrPageLimit) {
		t.Fatalf("Collect() error = %v, want ErrPageLimit", err)
	}
	if calls != DefaultMaxPages || len(got) != 5000 || total != 6000 {
		t.Fatalf("calls = %d len(got) = %d total = %d", calls, len(got), total)
	}
}

func TestCollectLastPageAtLimitIsComplete(t *testing.T) {
	t.Parallel()

	got, total, err := Collect(context.Background(), 2, pagesOf(make([]int, 20), 10))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(got) != 20 || total != 20 {
		t.Fatalf("len(got) = %d total = %d, want 20", len(got), total)
	}
}

func TestCollectReturnsFetchError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, _, err := Collect(context.Background(), 0, func(context.Context, int) ([]int, int, error) {
		return nil, 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Collect() error = %v, want boom", err)
	}
}

func TestCollectHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Collect(ctx, 0, pagesOf([]int{1}, 1)); !errors.Is(err, context.Canceled) {
		t.Fatalf("Collect() error = %v, want context.Canceled", err)
	}
}
