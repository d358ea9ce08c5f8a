package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/limbo/vital/pkg/cleanup"
	"github.com/robfig/cron/v3"
)

const jobTimeout = time.Minute

type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type LimiterPruner interface {
	PruneRateLimiters() int
}

// Scheduler runs housekeeping on cron specs.
type Scheduler struct {
	cron    *cron.Cron
	purger  SessionPurger
	limiter LimiterPruner
}

func New(loc *time.Location, purger SessionPurger, limiter LimiterPruner) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		purger:  purger,
		limiter: limiter,
	}
}

// Register adds the session purge on purgeSpec and limiter pruning every
// five minutes.
func (s *Scheduler) Register(purgeSpec string) error {
	if _, err := s.cron.AddFunc(purgeSpec, s.PurgeSessions); err != nil {
		return fmt.Errorf("registering session purge with spec %q: %w", purgeSpec, err)
	}
	if s.limiter != nil {
		if _, err := s.cron.AddFunc("@every 5m", s.PruneLimiters); err != nil {
			return fmt.Errorf("registering limiter pruning: %w", err)
		}
	}
	return nil
}

// Start launches the scheduler and registers its stop as a cleanup job.
func (s *Scheduler) Start() {
	s.cron.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping scheduler",
		F: func() error {
			<-s.cron.Stop().Done()
			return nil
		},
	})
}

func (s *Scheduler) PurgeSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	n, err := s.purger.PurgeExpiredSessions(ctx)
	if err != nil {
		slog.Error("purging expired sessions error", slog.String("error", err.Error()))
		return
	}
	slog.Info("expired sessions purged", slog.Int64("count", n))
}

func (s *Scheduler) PruneLimiters() {
	if n := s.limiter.PruneRateLimiters(); n > 0 {
		slog.Debug("idle rate limiters pruned", slog.Int("count", n))
	}
}
