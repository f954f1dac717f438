package dashboard

import (
	"gymdesk/internal/membership"
	"gymdesk/internal/payment"
)

const (
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"

	monthlyBuckets = 12
	yearlyBuckets  = 5

	dashboardExpiringDays = 7
	dashboardRecentLimit  = 5
)

type Stats struct {
	TotalMembers     int     `json:"totalMembers" example:"42"`
	ActiveMembers    int     `json:"activeMembers" example:"38"`
	MonthlyRevenue   float64 `json:"monthlyRevenue" example:"54000"`
	ExpiringThisWeek int     `json:"expiringThisWeek" example:"3"`
}

// TypeCount is the number of active memberships on plans of one type.
type TypeCount struct {
	Type  string `db:"type" json:"type" example:"monthly"`
	Count int    `db:"count" json:"count" example:"12"`
}

// RevenuePoint is one bucket of a revenue overview. Period is a short month
// name ("Jan") or a four digit year.
type RevenuePoint struct {
	Period string  `json:"period" example:"Jan"`
	Amount float64 `json:"amount" example:"18000"`
}

type Overview struct {
	Stats                  Stats                   `json:"stats"`
	MembershipDistribution []TypeCount             `json:"membershipDistribution"`
	MonthlyRevenue         []RevenuePoint          `json:"monthlyRevenue"`
	RecentPayments         []payment.Payment       `json:"recentPayments"`
	Expiring               []membership.Membership `json:"expiring"`
}
