package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/kg-3rd/grand-adventure-hub/internal/service"
)

// Scheduler runs periodic maintenance. Today that is one job: pruning order
// sidecar entries whose objects were deleted since the last save.
type Scheduler struct {
	cron    *cron.Cron
	media   *service.MediaService
	buckets []string
	log     zerolog.Logger
}

func NewScheduler(media *service.MediaService, buckets []string, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		media:   media,
		buckets: buckets,
		log:     log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 3 * * *", s.pruneOrders); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish, up to a grace period.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) pruneOrders() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, bucket := range s.buckets {
		removed, err := s.media.PruneOrder(ctx, bucket)
		if err != nil {
			s.log.Error().Err(err).Str("bucket", bucket).Msg("order prune failed")
			continue
		}
		if removed > 0 {
			s.log.Info().Str("bucket", bucket).Int("removed", removed).Msg("order entries pruned")
		}
	}
}
