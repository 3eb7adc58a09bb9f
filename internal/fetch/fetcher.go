// Package fetch provides a client-side cache of a remote JSON collection
// with explicit data/loading/error state.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// StatusError reports a non-2xx response from the collection endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %d", e.Code)
}

// State is a point-in-time snapshot of a fetch cycle. Data keeps its
// previous value while a refetch is in flight and after a failed fetch.
type State[T any] struct {
	Data    []T
	Loading bool
	Err     error
}

// Fetcher retrieves a JSON array from a locator URL, refetching whenever the
// locator changes. Each trigger bumps a generation counter and only the
// response for the current generation may commit its result; late responses
// for superseded requests are discarded.
type Fetcher[T any] struct {
	client *http.Client
	logger *zap.Logger

	mu      sync.Mutex
	url     string
	gen     uint64
	data    []T
	loading bool
	err     error
	waiters []chan struct{}
}

func New[T any](client *http.Client, logger *zap.Logger) *Fetcher[T] {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher[T]{client: client, logger: logger}
}

// SetURL points the fetcher at a locator, starting an asynchronous fetch if
// it differs from the current one. The first call always fetches.
func (f *Fetcher[T]) SetURL(ctx context.Context, url string) {
	f.mu.Lock()
	if f.gen > 0 && url == f.url {
		f.mu.Unlock()
		return
	}
	f.url = url
	gen := f.begin()
	f.mu.Unlock()

	go f.fetch(ctx, gen, url)
}

// Refresh refetches the current locator. No-op before the first SetURL.
func (f *Fetcher[T]) Refresh(ctx context.Context) {
	f.mu.Lock()
	if f.url == "" {
		f.mu.Unlock()
		return
	}
	url := f.url
	gen := f.begin()
	f.mu.Unlock()

	go f.fetch(ctx, gen, url)
}

// begin starts a new request generation. Previous data stays visible until
// the new request resolves. Caller must hold f.mu.
func (f *Fetcher[T]) begin() uint64 {
	f.gen++
	f.loading = true
	f.err = nil
	return f.gen
}

func (f *Fetcher[T]) fetch(ctx context.Context, gen uint64, url string) {
	var payload []T
	err := f.get(ctx, url, &payload)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen {
		f.logger.Debug("discarding superseded response",
			zap.String("url", url),
			zap.Uint64("generation", gen),
		)
		return
	}

	if err != nil {
		f.err = err
	} else {
		f.data = payload
		f.err = nil
	}
	f.loading = false
	f.notify()
}

func (f *Fetcher[T]) get(ctx context.Context, url string, payload *[]T) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode}
	}
	return json.NewDecoder(resp.Body).Decode(payload)
}

// State returns the current snapshot.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State[T]{Data: f.data, Loading: f.loading, Err: f.err}
}

// Wait blocks until no fetch is in flight or ctx is done.
func (f *Fetcher[T]) Wait(ctx context.Context) error {
	for {
		f.mu.Lock()
		if !f.loading {
			f.mu.Unlock()
			return nil
		}
		ch := make(chan struct{})
		f.waiters = append(f.waiters, ch)
		f.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// notify wakes all Wait callers. Caller must hold f.mu.
func (f *Fetcher[T]) notify() {
	for _, ch := range f.waiters {
		close(ch)
	}
	f.waiters = nil
}
