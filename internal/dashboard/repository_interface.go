package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	CountMembers(ctx context.Context, gymID int) (int, error)
	CountActiveMembers(ctx context.Context, gymID int) (int, error)
	// SumRevenue adds up payments dated in [from, to). Zero rows sum to 0.
	SumRevenue(ctx context.Context, gymID int, from, to time.Time) (float64, error)
	// CountExpiring counts active memberships ending in [from, to].
	CountExpiring(ctx context.Context, gymID int, from, to time.Time) (int, error)
	Distribution(ctx context.Context, gymID int) ([]TypeCount, error)
}
