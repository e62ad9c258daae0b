package tester

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"proxytester/internal/shared/logger"
	"proxytester/tester/model"
)

// streamBuffer bounds the outcome channel so a slow consumer applies
// backpressure to delivery instead of the channel growing with the proxy
// count. Producers block on a full buffer, they never drop outcomes.
const streamBuffer = 100

// Options carries the run configuration. URL, Workers and Timeout are
// required; New rejects an absent field with a *ConfigError. Format defaults
// to FormatHostPortUserPass.
type Options struct {
	URL     string
	Workers int
	Timeout time.Duration
	Format  model.Format
}

// DefaultOptions returns the historical defaults: five workers, a five
// second timeout and https://google.com as the probe target.
func DefaultOptions() Options {
	return Options{
		URL:     "https://google.com",
		Workers: 5,
		Timeout: 5 * time.Second,
		Format:  model.FormatHostPortUserPass,
	}
}

// Tester 是测试活动的总控制器。It owns the loaded proxy set and runs one
// probe per proxy under a bounded concurrency gate.
type Tester struct {
	url     string
	workers int
	timeout time.Duration
	format  model.Format

	proxies []model.ProxyRecord
}

// New validates opts and builds an idle Tester. A missing option is a
// programmer error and must surface here, before any proxy is loaded, not
// mid-run.
func New(opts Options) (*Tester, error) {
	if opts.URL == "" {
		return nil, &ConfigError{Field: "url"}
	}
	if opts.Workers <= 0 {
		return nil, &ConfigError{Field: "workers"}
	}
	if opts.Timeout <= 0 {
		return nil, &ConfigError{Field: "timeout"}
	}
	return &Tester{
		url:     opts.URL,
		workers: opts.Workers,
		timeout: opts.Timeout,
		format:  opts.Format,
	}, nil
}

// Load appends records to the working set. It may be called any number of
// times before Run; calling it once a run has started is not supported.
func (t *Tester) Load(records ...model.ProxyRecord) {
	t.proxies = append(t.proxies, records...)
}

// Count returns the number of loaded proxies.
func (t *Tester) Count() int {
	return len(t.proxies)
}

// IsEmpty reports whether no proxies have been loaded.
func (t *Tester) IsEmpty() bool {
	return len(t.proxies) == 0
}

// URL returns the target the proxies will be tested against.
func (t *Tester) URL() string {
	return t.url
}

// Workers returns the concurrency limit.
func (t *Tester) Workers() int {
	return t.workers
}

// Timeout returns the per-probe timeout.
func (t *Tester) Timeout() time.Duration {
	return t.timeout
}

// Outcome pairs one proxy with its probe result. Err is nil on success, in
// which case Duration holds the measured round-trip time.
type Outcome struct {
	Proxy    model.ProxyRecord
	Duration time.Duration
	Err      error
}

// OK reports whether the probe completed a round trip through the proxy.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Run starts the campaign and returns immediately with the live result
// stream. Outcomes arrive in completion order, not load order. The stream is
// closed exactly once, after every unit has either delivered its outcome or
// been abandoned by cancellation of ctx. Cancelled units release their gate
// permit and exit without pushing an outcome.
func (t *Tester) Run(ctx context.Context) <-chan Outcome {
	l := logger.WithComponent("Tester/Engine")
	runID := uuid.NewString()

	results := make(chan Outcome, streamBuffer)
	gate := make(chan struct{}, t.workers)

	l.Info().
		Str("run_id", runID).
		Int("proxies", len(t.proxies)).
		Int("workers", t.workers).
		Dur("timeout", t.timeout).
		Str("url", t.url).
		Msg("Starting test campaign...")

	var wg sync.WaitGroup
	for _, rec := range t.proxies {
		wg.Add(1)

		go func(rec model.ProxyRecord) {
			defer wg.Done()

			// Acquire one gate permit. This is the sole backpressure point
			// bounding parallelism to the worker count.
			select {
			case gate <- struct{}{}:
			case <-ctx.Done():
				return
			}

			out := func() Outcome {
				// Release on every exit path so a failed or timed-out probe
				// can never leak a permit.
				defer func() { <-gate }()
				return t.probe(ctx, rec)
			}()

			select {
			case results <- out:
			case <-ctx.Done():
			}
		}(rec)
	}

	go func() {
		wg.Wait()
		close(results)
		l.Info().Str("run_id", runID).Msg("Campaign finished, stream closed.")
	}()

	return results
}
