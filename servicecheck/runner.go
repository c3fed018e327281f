package servicecheck

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/servicecheck/logging"
)

const (
	// OutcomeSuccess is the outcome label value for a passing check.
	OutcomeSuccess = "success"

	// OutcomeFailure is the outcome label value for a failing check.
	OutcomeFailure = "failure"
)

// Result is the outcome of one named check.
type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Healthy indicates whether this check passed.
func (r Result) Healthy() bool {
	return r.Err == nil
}

// Results aggregates the outcomes of a single Runner.Run invocation,
// in registration order.
type Results []Result

// Healthy indicates whether every check passed.
func (r Results) Healthy() bool {
	for _, result := range r {
		if result.Err != nil {
			return false
		}
	}

	return true
}

// RunnerOption configures a Runner at construction time.
type RunnerOption func(*Runner)

// WithCheck registers a named check, exactly as Runner.Register does.
func WithCheck(name string, check Check) RunnerOption {
	return func(r *Runner) {
		r.Register(name, check)
	}
}

// WithRegisterer registers the runner's outcome counter with the given
// prometheus Registerer.
func WithRegisterer(registry prometheus.Registerer) RunnerOption {
	return func(r *Runner) {
		registry.MustRegister(r.outcomes)
	}
}

// Runner executes a set of named checks.  Checks run synchronously in
// registration order; a Runner holds no state across Run invocations
// other than its check set.
type Runner struct {
	names    []string
	checks   map[string]Check
	logger   log.Logger
	outcomes *prometheus.CounterVec
}

// NewRunner constructs a Runner.  A nil logger is replaced with the
// package default NOP logger.
func NewRunner(logger log.Logger, options ...RunnerOption) *Runner {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	runner := &Runner{
		checks: make(map[string]Check),
		logger: logger,
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "servicecheck",
				Name:      "checks_total",
				Help:      "count of service check executions by check name and outcome",
			},
			[]string{"check", "outcome"},
		),
	}

	for _, option := range options {
		option(runner)
	}

	return runner
}

// Register adds a named check.  Registering a name that already exists
// replaces the prior check but keeps its original position in the run
// order.
func (r *Runner) Register(name string, check Check) {
	if _, present := r.checks[name]; !present {
		r.names = append(r.names, name)
	}

	r.checks[name] = check
}

// Names returns the registered check names in run order.
func (r *Runner) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Run executes every registered check in order and returns one Result
// per check.  Run never stops early: a failing check does not prevent
// later checks from executing.
func (r *Runner) Run(ctx context.Context) Results {
	results := make(Results, 0, len(r.names))
	for _, name := range r.names {
		start := time.Now()
		err := r.checks[name].Check(ctx)
		duration := time.Since(start)

		if err != nil {
			r.outcomes.WithLabelValues(name, OutcomeFailure).Inc()
			logging.Error(r.logger).Log(
				logging.MessageKey(), "service check failed",
				"check", name,
				"duration", duration,
				logging.ErrorKey(), err,
			)
		} else {
			r.outcomes.WithLabelValues(name, OutcomeSuccess).Inc()
			logging.Info(r.logger).Log(
				logging.MessageKey(), "service check passed",
				"check", name,
				"duration", duration,
			)
		}

		results = append(results, Result{Name: name, Err: err, Duration: duration})
	}

	return results
}
