// Package tasks runs periodic maintenance against the store: expired
// idempotency keys and old search-log rows are removed on a cron schedule.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tbourn/transport-edu-backend/internal/observability"
	"github.com/tbourn/transport-edu-backend/internal/repo"
	"github.com/tbourn/transport-edu-backend/internal/sysutil"
)

// DefaultSchedule runs the janitor once an hour.
const DefaultSchedule = "@hourly"

// Report counts rows removed by one run.
type Report struct {
	Idempotency int64
	SearchLogs  int64
}

// Janitor deletes expired rows on a schedule. The zero value is not usable;
// construct with NewJanitor.
type Janitor struct {
	db        *gorm.DB
	schedule  string
	retention time.Duration
	log       zerolog.Logger
	now       func() time.Time

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// NewJanitor returns a Janitor. retention <= 0 keeps search logs forever.
func NewJanitor(db *gorm.DB, schedule string, retention time.Duration, log zerolog.Logger) *Janitor {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Janitor{
		db:        db,
		schedule:  schedule,
		retention: retention,
		log:       log.With().Str("component", "janitor").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// RunOnce performs one cleanup pass.
func (j *Janitor) RunOnce(ctx context.Context) (Report, error) {
	var rep Report
	now := j.now()

	n, errIdem := repo.DeleteExpiredIdempotency(ctx, j.db, now)
	if errIdem == nil {
		rep.Idempotency = n
		observability.ObserveJanitorDeleted("idempotency", n)
	}

	var errLogs error
	if j.retention > 0 {
		n, errLogs = repo.DeleteSearchLogsBefore(ctx, j.db, now.Add(-j.retention))
		if errLogs == nil {
			rep.SearchLogs = n
			observability.ObserveJanitorDeleted("search_logs", n)
		}
	}
	return rep, errors.Join(errIdem, errLogs)
}

// Start schedules the janitor. It stops when ctx is cancelled or Stop is called.
func (j *Janitor) Start(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.running {
		return nil
	}

	logger := cronLogger{j.log}
	c := cron.New(
		cron.WithParser(sysutil.CronParser),
		cron.WithLocation(time.UTC),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(j.schedule, func() { j.run(ctx) }); err != nil {
		return fmt.Errorf("schedule janitor %q: %w", j.schedule, err)
	}
	c.Start()
	j.cron, j.running = c, true
	j.log.Info().Str("schedule", j.schedule).Dur("retention", j.retention).Msg("janitor started")

	go func() {
		<-ctx.Done()
		j.Stop()
	}()
	return nil
}

// Stop halts scheduling and waits for a running pass to finish.
func (j *Janitor) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.running {
		return
	}
	<-j.cron.Stop().Done()
	j.running = false
	j.log.Info().Msg("janitor stopped")
}

func (j *Janitor) run(ctx context.Context) {
	rep, err := j.RunOnce(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("janitor pass failed")
		return
	}
	j.log.Debug().
		Int64("idempotency_deleted", rep.Idempotency).
		Int64("search_logs_deleted", rep.SearchLogs).
		Msg("janitor pass done")
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct{ l zerolog.Logger }

func (c cronLogger) Info(msg string, kv ...interface{}) {
	c.l.Debug().Fields(kv).Msg(msg)
}

func (c cronLogger) Error(err error, msg string, kv ...interface{}) {
	c.l.Error().Err(err).Fields(kv).Msg(msg)
}
