package metrics

import (
	"sync"
	"sync/atomic"

	"sillah/internal/risk"
)

// MetricKey is a strongly typed metric identifier.
type MetricKey string

const (
	// Advisories
	AdvisoriesTotal   MetricKey = "advisories_total"
	RiskNoneTotal     MetricKey = "risk_none_total"
	RiskModerateTotal MetricKey = "risk_moderate_total"
	RiskHighTotal     MetricKey = "risk_high_total"

	// Booking
	ClinicLookupsTotal      MetricKey = "clinic_lookups_total"
	AppointmentsBookedTotal MetricKey = "appointments_booked_total"

	// Alerts attached to advisories or served on their own
	AlertsGeneratedTotal MetricKey = "alerts_generated_total"

	// Requests rejected at construction time
	ValidationFailuresTotal MetricKey = "validation_failures_total"
)

// LevelKey returns the counter for advisories that ended at level.
func LevelKey(level risk.Level) MetricKey {
	switch level {
	case risk.HighRisk:
		return RiskHighTotal
	case risk.ModerateRisk:
		return RiskModerateTotal
	default:
		return RiskNoneTotal
	}
}

// Registry stores all metrics.
type Registry struct {
	mu       sync.RWMutex
	counters map[MetricKey]*int64
}

// NewRegistry creates a metrics registry.
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[MetricKey]*int64),
	}
}

// Inc increments a metric by 1.
func (r *Registry) Inc(key MetricKey) {
	r.Add(key, 1)
}

// Add increments a metric by delta.
func (r *Registry) Add(key MetricKey, delta int64) {
	r.mu.RLock()
	ptr, ok := r.counters[key]
	r.mu.RUnlock()

	if ok {
		atomic.AddInt64(ptr, delta)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// another writer may have created it meanwhile
	if ptr, ok = r.counters[key]; ok {
		atomic.AddInt64(ptr, delta)
		return
	}

	var val int64
	r.counters[key] = &val
	atomic.AddInt64(&val, delta)
}

// Get returns the current value of key, zero if never set.
func (r *Registry) Get(key MetricKey) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ptr, ok := r.counters[key]; ok {
		return atomic.LoadInt64(ptr)
	}
	return 0
}

// Snapshot copies every counter. Mutating the result does not touch the registry.
func (r *Registry) Snapshot() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int64, len(r.counters))
	for key, ptr := range r.counters {
		out[string(key)] = atomic.LoadInt64(ptr)
	}
	return out
}
