package services

import (
	"time"

	"github.com/robfig/cron/v3"

	"haircare-web/checkout"
	"haircare-web/pkg/logging"
)

// Janitor expires checkout flows abandoned mid-way, keeping the registry
// bounded to active sessions.
type Janitor struct {
	flows  *checkout.Registry
	ttl    time.Duration
	logger *logging.Logger
	cron   *cron.Cron
}

// NewJanitor builds a janitor for the given flow registry and idle TTL.
func NewJanitor(flows *checkout.Registry, ttl time.Duration, logger *logging.Logger) *Janitor {
	if logger == nil {
		logger = logging.Default()
	}
	return &Janitor{flows: flows, ttl: ttl, logger: logger}
}

// StartScheduler sweeps once a minute until Stop is called.
func (j *Janitor) StartScheduler() {
	j.cron = cron.New()
	j.cron.AddFunc("@every 1m", j.Sweep)
	j.cron.Start()
	j.logger.Info("checkout janitor started", "ttl", j.ttl.String())
}

// Stop halts the scheduler.
func (j *Janitor) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// Sweep prunes idle flows and logs when anything was dropped.
func (j *Janitor) Sweep() {
	pruned := j.flows.PruneIdle(j.ttl, time.Now())
	if pruned > 0 {
		j.logger.Info("expired abandoned checkouts", "count", pruned)
	}
}
