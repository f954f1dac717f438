package expiry

import (
	"context"
	"time"

	"gymdesk/internal/logger"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 5 * time.Minute

// cronLogger routes cron's own messages into the application logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

// NewScheduler registers the sweeper on spec (standard five field cron or a
// descriptor such as "@hourly"). Overlapping runs are skipped and a panic in
// a run is recovered. The caller starts and stops the returned cron.
func NewScheduler(s *Sweeper, spec string) (*cron.Cron, error) {
	l := cronLogger{}
	c := cron.New(
		cron.WithLogger(l),
		cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
	)

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		start := time.Now()
		res, err := s.Run(ctx)
		if err != nil {
			logger.Error("membership sweep failed", "error", err)
			return
		}
		logger.Info("membership sweep finished",
			"expired", res.Expired,
			"reminded", res.Reminded,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
