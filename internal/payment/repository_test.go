package payment

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

var paymentRowColumns = []string{"id", "member_id", "membership_id", "amount", "payment_date", "payment_method", "reference", "status", "created_at", "updated_at"}

func setupPaymentMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewRepository(sqlxDB), m
}

func TestCreateZeroAmountPayment(t *testing.T) {
	repo, m := setupPaymentMock(t)
	now := time.Now()

	m.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments (member_id, membership_id, amount, payment_date, payment_method, reference, status)")).
		WithArgs(3, nil, 0.0, now, "cash", nil, StatusPaid).
		WillReturnRows(sqlmock.NewRows(paymentRowColumns).AddRow(1, 3, nil, "0.00", now, "cash", nil, StatusPaid, now, now))

	p, err := repo.Create(context.Background(), 3, &Payment{Amount: 0, PaymentDate: now, PaymentMethod: "cash", Status: StatusPaid})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Amount)
	assert.Nil(t, p.MembershipID)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestListByMemberNewestFirst(t *testing.T) {
	repo, m := setupPaymentMock(t)
	now := time.Now()

	m.ExpectQuery(regexp.QuoteMeta("FROM payments WHERE member_id = $1 ORDER BY payment_date DESC")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(paymentRowColumns).
			AddRow(2, 3, 5, "1500.00", now, "upi", nil, StatusPaid, now, now).
			AddRow(1, 3, 5, "1500.00", now.AddDate(0, -1, 0), "cash", nil, StatusPaid, now, now))

	list, err := repo.ListByMember(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].PaymentDate.After(list[1].PaymentDate))
	require.NotNil(t, list[0].MembershipID)
	assert.Equal(t, 5, *list[0].MembershipID)
}

func TestListRecentByGym(t *testing.T) {
	repo, m := setupPaymentMock(t)

	m.ExpectQuery(regexp.QuoteMeta("WHERE m.gym_id = $1")+`\s+ORDER BY p.payment_date DESC, p.id DESC\s+LIMIT \$2`).
		WithArgs(2, 5).
		WillReturnRows(sqlmock.NewRows(paymentRowColumns))

	list, err := repo.ListRecentByGym(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestMembershipBelongsTo(t *testing.T) {
	repo, m := setupPaymentMock(t)

	m.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM memberships WHERE id = $1 AND member_id = $2)")).
		WithArgs(5, 3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.MembershipBelongsTo(context.Background(), 5, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetPayer(t *testing.T) {
	repo, m := setupPaymentMock(t)

	m.ExpectQuery(regexp.QuoteMeta("JOIN gyms g ON g.id = m.gym_id")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"member_id", "name", "email", "gym_name", "owner_id"}).
			AddRow(3, "Asha Rao", "asha@example.com", "Fitness Plus", 1))

	p, err := repo.GetPayer(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, p.OwnerID)
	assert.Equal(t, "asha@example.com", *p.Email)
}
