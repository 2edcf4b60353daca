package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about source fetches,
// cache behavior, and classified intents. It is intentionally simple so it
// can be swapped for a real backend later.
type Recorder struct {
	mu          sync.Mutex
	sources     map[string]*sourceStats
	cacheHits   map[string]int
	staleServes map[string]int
	intents     map[string]int
	httpCounts  map[string]int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources:     make(map[string]*sourceStats),
		cacheHits:   make(map[string]int),
		staleServes: make(map[string]int),
		intents:     make(map[string]int),
		httpCounts:  make(map[string]int),
		otel:        otel,
	}
}

// RecordSourceAttempt increments fetch counters for a sport and stores the
// last observed latency.
func (r *Recorder) RecordSourceAttempt(sport string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.sources[sport]
	if !ok {
		stats = &sourceStats{}
		r.sources[sport] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceAttempt(sport, duration, err)
	}
}

// RecordCacheHit tracks a read served from a fresh cache entry.
func (r *Recorder) RecordCacheHit(sport string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.cacheHits[sport]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCacheHit(sport)
	}
}

// RecordStaleServe tracks a read that fell back to an expired entry after
// retries were exhausted.
func (r *Recorder) RecordStaleServe(sport string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.staleServes[sport]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordStaleServe(sport)
	}
}

// RecordIntent tracks which classifier category answered a message.
func (r *Recorder) RecordIntent(category string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.intents[category]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordIntent(category)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.httpCounts[method+" "+path]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// HTTPRequests returns how many requests were recorded for a method/path pair.
func (r *Recorder) HTTPRequests(method, path string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.httpCounts[method+" "+path]
}

// SourceCalls returns the total fetch attempts recorded for a sport.
func (r *Recorder) SourceCalls(sport string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.sources[sport]; ok {
		return stats.calls
	}
	return 0
}

// SourceErrors returns the total failed fetch attempts recorded for a sport.
func (r *Recorder) SourceErrors(sport string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.sources[sport]; ok {
		return stats.errors
	}
	return 0
}

// LastCallLatency returns the last recorded fetch latency for a sport.
func (r *Recorder) LastCallLatency(sport string) time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.sources[sport]; ok {
		return stats.lastCallLatency
	}
	return 0
}

// CacheHits returns fresh-entry reads recorded for a sport.
func (r *Recorder) CacheHits(sport string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheHits[sport]
}

// StaleServes returns stale fallbacks recorded for a sport.
func (r *Recorder) StaleServes(sport string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.staleServes[sport]
}

// IntentCount returns how many replies the given category produced.
func (r *Recorder) IntentCount(category string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.intents[category]
}
