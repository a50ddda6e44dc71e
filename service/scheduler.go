package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler pre-warms the generation cache so the morning dashboard does not
// wait on the model.
type Scheduler struct {
	cron       *cron.Cron
	dashboard  *DashboardService
	operations *OperationsService
	timeout    time.Duration
	log        zerolog.Logger
}

func NewScheduler(schedule string, dashboard *DashboardService, operations *OperationsService, timeout time.Duration, log zerolog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		dashboard:  dashboard,
		operations: operations,
		timeout:    timeout,
		log:        log.With().Str("component", "scheduler").Logger(),
	}

	s.cron = cron.New(
		cron.WithLogger(cronLogger{log: s.log}),
		cron.WithChain(cron.Recover(cronLogger{log: s.log}), cron.SkipIfStillRunning(cronLogger{log: s.log})),
	)

	if _, err := s.cron.AddFunc(schedule, s.Warm); err != nil {
		return nil, fmt.Errorf("invalid briefing schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

// Warm runs one pre-warm pass.
func (s *Scheduler) Warm() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	generated := 0
	for _, insight := range s.dashboard.WarmBriefings(ctx) {
		if insight.Generated {
			generated++
		}
	}
	if s.operations.Telemetry(ctx).Summary.Generated {
		generated++
	}

	s.log.Info().
		Int("generated", generated).
		Dur("took", time.Since(start)).
		Msg("generation cache warmed")
}

type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
