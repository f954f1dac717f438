package dashboard

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDashboardMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return NewRepository(sqlxDB), m
}

func TestCountMembers(t *testing.T) {
	repo, m := setupDashboardMock(t)
	ctx := context.Background()

	m.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM members WHERE gym_id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	m.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM members WHERE gym_id = $1 AND active = TRUE")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.CountMembers(ctx, 1)
	require.NoError(t, err)
	active, err := repo.CountActiveMembers(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, total)
	assert.Equal(t, 3, active)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestSumRevenueEmptyIsZero(t *testing.T) {
	repo, m := setupDashboardMock(t)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	m.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(p.amount), 0)")).
		WithArgs(1, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))

	sum, err := repo.SumRevenue(context.Background(), 1, from, to)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum)
}

func TestCountExpiringInclusiveWindow(t *testing.T) {
	repo, m := setupDashboardMock(t)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	m.ExpectQuery(regexp.QuoteMeta("AND ms.end_date BETWEEN $2 AND $3")).
		WithArgs(1, now, now.AddDate(0, 0, 7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountExpiring(context.Background(), 1, now, now.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDistribution(t *testing.T) {
	repo, m := setupDashboardMock(t)

	m.ExpectQuery(regexp.QuoteMeta("GROUP BY p.type")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"type", "count"}).
			AddRow("annual", 2).
			AddRow("monthly", 5))

	list, err := repo.Distribution(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []TypeCount{{Type: "annual", Count: 2}, {Type: "monthly", Count: 5}}, list)
}
