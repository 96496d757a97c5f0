package ice

import (
	log "github.com/sirupsen/logrus"

	"github.com/twitter/goice/common/stats"
)

// Option configures a Registry built by New.
type Option func(*Registry)

// WithModules merges others, in order, after the root module's Init.
// Later modules win over earlier ones and over the root on conflicting keys.
func WithModules(others ...Module) Option {
	return func(r *Registry) {
		r.pending = append(r.pending, others...)
	}
}

// WithStats makes the Registry report into stat, scoped under "ice".
func WithStats(stat stats.StatsReceiver) Option {
	return func(r *Registry) {
		if stat != nil {
			r.stat = stat.Scope("ice")
		}
	}
}

// WithLogger replaces the logrus standard logger.
func WithLogger(l log.FieldLogger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}
