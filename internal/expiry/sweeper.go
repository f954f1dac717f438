// Package expiry moves ended memberships to expired and reminds gym owners
// and members about memberships that are about to end.
package expiry

import (
	"context"
	"fmt"
	"time"

	"gymdesk/internal/logger"
	"gymdesk/internal/membership"
	"gymdesk/internal/metrics"
)

const notificationTypeMembership = "membership"

// Store is the membership persistence the sweeper needs.
type Store interface {
	ExpireEnded(ctx context.Context, now time.Time) (int64, error)
	ListDueForReminder(ctx context.Context, from, to time.Time) ([]membership.Expiring, error)
	MarkReminded(ctx context.Context, id int, at time.Time) error
}

type Notifier interface {
	Notify(ctx context.Context, userID int, notificationType, title, message string) error
}

type Mailer interface {
	SendMembershipExpiring(ctx context.Context, to, name, gymName, planName string, endsAt time.Time) error
}

// Result summarizes one sweep.
type Result struct {
	Expired  int64
	Reminded int
}

type Sweeper struct {
	store        Store
	notifier     Notifier
	mailer       Mailer
	reminderDays int
	now          func() time.Time
}

// NewSweeper builds a sweeper. mailer may be nil, in which case only owner
// notifications are created.
func NewSweeper(store Store, notifier Notifier, mailer Mailer, reminderDays int) *Sweeper {
	return &Sweeper{
		store:        store,
		notifier:     notifier,
		mailer:       mailer,
		reminderDays: reminderDays,
		now:          time.Now,
	}
}

// Run performs one sweep. A reminder that fails to notify the owner is left
// unmarked so the next sweep retries it.
func (s *Sweeper) Run(ctx context.Context) (Result, error) {
	var res Result
	now := s.now()

	expired, err := s.store.ExpireEnded(ctx, now)
	if err != nil {
		return res, fmt.Errorf("expire ended memberships: %w", err)
	}
	res.Expired = expired
	metrics.RecordMembershipsExpired(int(expired))

	if s.reminderDays <= 0 {
		return res, nil
	}

	due, err := s.store.ListDueForReminder(ctx, now, now.AddDate(0, 0, s.reminderDays))
	if err != nil {
		return res, fmt.Errorf("list memberships due for reminder: %w", err)
	}

	for _, m := range due {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if s.remind(ctx, m, now) {
			res.Reminded++
		}
	}

	return res, nil
}

func (s *Sweeper) remind(ctx context.Context, m membership.Expiring, now time.Time) bool {
	title := "Membership expiring"
	message := fmt.Sprintf("%s's %s membership ends on %s", m.MemberName, m.PlanName, m.EndDate.Format("Jan 2, 2006"))

	if err := s.notifier.Notify(ctx, m.OwnerID, notificationTypeMembership, title, message); err != nil {
		logger.Warn("failed to notify owner of expiring membership", "membership_id", m.ID, "error", err)
		return false
	}

	if s.mailer != nil && m.MemberEmail != nil && *m.MemberEmail != "" {
		if err := s.mailer.SendMembershipExpiring(ctx, *m.MemberEmail, m.MemberName, m.GymName, m.PlanName, m.EndDate); err != nil {
			logger.Warn("failed to queue expiry email", "membership_id", m.ID, "error", err)
		}
	}

	if err := s.store.MarkReminded(ctx, m.ID, now); err != nil {
		logger.Error("failed to mark membership reminded", "membership_id", m.ID, "error", err)
		return false
	}

	metrics.RecordExpiryReminder()
	return true
}
