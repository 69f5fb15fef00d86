package refresh

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/goleak"

	"github.com/reachx/reach-site/pkg/legal"
	"github.com/reachx/reach-site/pkg/storage"
)

// stubRefresher records refresh calls and fails for the slugs in failing
type stubRefresher struct {
	mu      sync.Mutex
	calls   map[legal.Slug]int
	failing map[legal.Slug]bool
}

func newStubRefresher(failing ...legal.Slug) *stubRefresher {
	s := &stubRefresher{
		calls:   make(map[legal.Slug]int),
		failing: make(map[legal.Slug]bool),
	}
	for _, slug := range failing {
		s.failing[slug] = true
	}
	return s
}

func (s *stubRefresher) Refresh(ctx context.Context, slug legal.Slug) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[slug]++
	if s.failing[slug] {
		return errors.New("upstream down")
	}
	return nil
}

func (s *stubRefresher) Slugs() []legal.Slug {
	return legal.Slugs
}

func (s *stubRefresher) count(slug legal.Slug) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[slug]
}

func TestNewWorker(t *testing.T) {
	worker := NewWorker(&WorkerConfig{Interval: time.Minute}, newStubRefresher())

	if worker == nil {
		t.Fatal("Expected worker to be created")
	}
	if worker.config.Interval != time.Minute {
		t.Errorf("Expected interval 1m, got %v", worker.config.Interval)
	}
}

// runWorker runs the worker in the background and returns a func that
// cancels it and waits for Run to return
func runWorker(t *testing.T, worker *Worker) (stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- worker.Run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-errc:
			if err != nil {
				t.Errorf("Expected nil error on cancel, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after cancel")
		}
	}
}

func TestWorkerRunRefreshesUntilCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	stub := newStubRefresher()
	worker := NewWorker(&WorkerConfig{Interval: 10 * time.Millisecond}, stub)

	stop := runWorker(t, worker)
	time.Sleep(50 * time.Millisecond)
	stop()

	if stub.count(legal.Privacy) < 2 {
		t.Errorf("Expected repeated refreshes, got %d", stub.count(legal.Privacy))
	}
}

func TestWorkerRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	stub := newStubRefresher()
	worker := NewWorker(&WorkerConfig{Interval: time.Hour}, stub)

	stop := runWorker(t, worker)
	stop()

	if stub.count(legal.Terms) != 1 {
		t.Errorf("Expected one immediate refresh, got %d", stub.count(legal.Terms))
	}
}

func TestWorkerRunTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	stub := newStubRefresher()
	worker := NewWorker(&WorkerConfig{Interval: time.Hour}, stub)

	runWorker(t, worker)()
	runWorker(t, worker)()

	if stub.count(legal.Privacy) != 2 {
		t.Errorf("Expected one refresh per run, got %d", stub.count(legal.Privacy))
	}
}

func TestRefreshAllCountsFailures(t *testing.T) {
	stub := newStubRefresher(legal.Terms)
	worker := NewWorker(&WorkerConfig{Interval: time.Hour}, stub)

	refreshed, failed := worker.refreshAll(context.Background())

	if refreshed != 1 || failed != 1 {
		t.Errorf("Expected 1 refreshed and 1 failed, got %d and %d", refreshed, failed)
	}
	if stub.count(legal.Privacy) != 1 || stub.count(legal.Terms) != 1 {
		t.Error("Expected every document to be attempted once")
	}
}

func TestRefreshAllPopulatesCache(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	store, err := storage.NewRedisStore(mr.Addr(), "", 0)
	if err != nil {
		t.Fatalf("Failed to create Redis store: %v", err)
	}
	defer store.Close()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/terms.md" {
			http.Error(w, "gone", http.StatusBadGateway)
			return
		}
		w.Write([]byte("# Warm Privacy"))
	}))
	defer upstream.Close()

	fetcher := legal.NewFetcher(legal.FetcherConfig{
		URLs: map[legal.Slug]string{
			legal.Privacy: upstream.URL + "/privacy.md",
			legal.Terms:   upstream.URL + "/terms.md",
		},
		Timeout:  time.Second,
		Cache:    store,
		CacheTTL: time.Minute,
	})

	worker := NewWorker(&WorkerConfig{Interval: time.Hour, Timeout: 5 * time.Second}, fetcher)
	refreshed, failed := worker.refreshAll(context.Background())
	if refreshed != 1 || failed != 1 {
		t.Fatalf("Expected 1 refreshed and 1 failed, got %d and %d", refreshed, failed)
	}

	ctx := context.Background()
	privacy, err := store.GetDocument(ctx, string(legal.Privacy))
	if err != nil || privacy == nil {
		t.Fatalf("Expected privacy document in cache, got %v (err=%v)", privacy, err)
	}
	if privacy.Markdown != "# Warm Privacy" {
		t.Errorf("Expected refreshed markdown, got %q", privacy.Markdown)
	}

	terms, err := store.GetDocument(ctx, string(legal.Terms))
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if terms != nil {
		t.Error("Failed refresh must not populate the cache")
	}
}
