package dashboard

import (
	"context"
	"strconv"
	"time"

	"gymdesk/internal/access"
	"gymdesk/internal/apperr"
	"gymdesk/internal/membership"
	"gymdesk/internal/payment"
)

// ExpiringLister is the membership query the dashboard needs.
type ExpiringLister interface {
	ListExpiring(ctx context.Context, gymID int, from, to time.Time) ([]membership.Membership, error)
}

// RecentPaymentLister is the payment query the dashboard needs.
type RecentPaymentLister interface {
	ListRecentByGym(ctx context.Context, gymID, limit int) ([]payment.Payment, error)
}

type Service interface {
	Dashboard(ctx context.Context, userID, gymID int) (*Overview, error)
	Stats(ctx context.Context, userID, gymID int) (*Stats, error)
	MembershipDistribution(ctx context.Context, userID, gymID int) ([]TypeCount, error)
	RevenueOverview(ctx context.Context, userID, gymID int, period string) ([]RevenuePoint, error)
	ExpiringMemberships(ctx context.Context, userID, gymID, days int) ([]membership.Membership, error)
	RecentPayments(ctx context.Context, userID, gymID, limit int) ([]payment.Payment, error)
}

type service struct {
	repo        Repository
	memberships ExpiringLister
	payments    RecentPaymentLister
	gate        access.Gate
	now         func() time.Time
}

func NewService(repo Repository, memberships ExpiringLister, payments RecentPaymentLister, gate access.Gate, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:        repo,
		memberships: memberships,
		payments:    payments,
		gate:        gate,
		now:         now,
	}
}

func (s *service) Dashboard(ctx context.Context, userID, gymID int) (*Overview, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}

	now := s.now()

	stats, err := s.stats(ctx, gymID, now)
	if err != nil {
		return nil, err
	}
	distribution, err := s.repo.Distribution(ctx, gymID)
	if err != nil {
		return nil, err
	}
	revenue, err := s.revenue(ctx, gymID, PeriodMonthly, now)
	if err != nil {
		return nil, err
	}
	recent, err := s.payments.ListRecentByGym(ctx, gymID, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	expiring, err := s.memberships.ListExpiring(ctx, gymID, now, now.AddDate(0, 0, dashboardExpiringDays))
	if err != nil {
		return nil, err
	}

	return &Overview{
		Stats:                  *stats,
		MembershipDistribution: distribution,
		MonthlyRevenue:         revenue,
		RecentPayments:         recent,
		Expiring:               expiring,
	}, nil
}

func (s *service) Stats(ctx context.Context, userID, gymID int) (*Stats, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	return s.stats(ctx, gymID, s.now())
}

func (s *service) stats(ctx context.Context, gymID int, now time.Time) (*Stats, error) {
	var (
		st  Stats
		err error
	)

	if st.TotalMembers, err = s.repo.CountMembers(ctx, gymID); err != nil {
		return nil, err
	}
	if st.ActiveMembers, err = s.repo.CountActiveMembers(ctx, gymID); err != nil {
		return nil, err
	}

	from := monthStart(now)
	if st.MonthlyRevenue, err = s.repo.SumRevenue(ctx, gymID, from, from.AddDate(0, 1, 0)); err != nil {
		return nil, err
	}
	if st.ExpiringThisWeek, err = s.repo.CountExpiring(ctx, gymID, now, now.AddDate(0, 0, dashboardExpiringDays)); err != nil {
		return nil, err
	}

	return &st, nil
}

func (s *service) MembershipDistribution(ctx context.Context, userID, gymID int) ([]TypeCount, error) {
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	return s.repo.Distribution(ctx, gymID)
}

func (s *service) RevenueOverview(ctx context.Context, userID, gymID int, period string) ([]RevenuePoint, error) {
	if period != PeriodMonthly && period != PeriodYearly {
		return nil, apperr.Validation(apperr.Field("period", "period must be one of: monthly, yearly"))
	}
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	return s.revenue(ctx, gymID, period, s.now())
}

// revenue returns the buckets oldest first, the current month or year last.
func (s *service) revenue(ctx context.Context, gymID int, period string, now time.Time) ([]RevenuePoint, error) {
	n, start, step, label := monthlyBuckets, monthStart(now), monthStep, monthLabel
	if period == PeriodYearly {
		n, start, step, label = yearlyBuckets, yearStart(now), yearStep, yearLabel
	}

	points := make([]RevenuePoint, n)
	for i := 0; i < n; i++ {
		from := step(start, i-(n-1))
		amount, err := s.repo.SumRevenue(ctx, gymID, from, step(from, 1))
		if err != nil {
			return nil, err
		}
		points[i] = RevenuePoint{Period: label(from), Amount: amount}
	}
	return points, nil
}

func (s *service) ExpiringMemberships(ctx context.Context, userID, gymID, days int) ([]membership.Membership, error) {
	if days < 0 {
		return nil, apperr.Validation(apperr.Field("days", "days must be greater than or equal to 0"))
	}
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	now := s.now()
	return s.memberships.ListExpiring(ctx, gymID, now, now.AddDate(0, 0, days))
}

func (s *service) RecentPayments(ctx context.Context, userID, gymID, limit int) ([]payment.Payment, error) {
	if limit <= 0 {
		return nil, apperr.Validation(apperr.Field("limit", "limit must be greater than 0"))
	}
	if err := s.gate.Authorize(ctx, userID, access.KindGym, gymID); err != nil {
		return nil, err
	}
	return s.payments.ListRecentByGym(ctx, gymID, limit)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func yearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func monthStep(t time.Time, n int) time.Time { return t.AddDate(0, n, 0) }
func yearStep(t time.Time, n int) time.Time  { return t.AddDate(n, 0, 0) }

func monthLabel(t time.Time) string { return t.Format("Jan") }
func yearLabel(t time.Time) string  { return strconv.Itoa(t.Year()) }
