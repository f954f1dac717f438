package member

import (
	"context"
	"regexp"
	"testing"
	"time"

	"gymdesk/internal/api"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memberRowColumns = []string{"id", "name", "email", "phone", "address", "date_of_birth", "gender", "emergency_contact", "active", "gym_id", "created_at", "updated_at"}

func setupMemberMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewRepository(sqlxDB), m
}

func ashaRow(now time.Time, active bool) *sqlmock.Rows {
	return sqlmock.NewRows(memberRowColumns).
		AddRow(7, "Asha Rao", nil, "9000000001", nil, nil, nil, nil, active, 2, now, now)
}

func TestCreateMemberRoundTrip(t *testing.T) {
	repo, m := setupMemberMock(t)
	ctx := context.Background()
	now := time.Now()
	active := true

	m.ExpectQuery(regexp.QuoteMeta("INSERT INTO members (name, email, phone, address, date_of_birth, gender, emergency_contact, active, gym_id)")).
		WithArgs("Asha Rao", nil, "9000000001", nil, nil, nil, nil, true, 2).
		WillReturnRows(ashaRow(now, true))

	created, err := repo.Create(ctx, 2, CreateMemberRequest{Name: "Asha Rao", Phone: "9000000001", Active: &active})
	require.NoError(t, err)

	m.ExpectQuery(regexp.QuoteMeta("FROM members WHERE id = $1")).
		WithArgs(7).
		WillReturnRows(ashaRow(now, true))

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", fetched.Name)
	assert.Equal(t, "9000000001", fetched.Phone)
	assert.True(t, fetched.Active)
	assert.Equal(t, created.ID, fetched.ID)
	assert.False(t, fetched.CreatedAt.IsZero())
	assert.False(t, fetched.UpdatedAt.IsZero())
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestCreateMemberDefaultsActive(t *testing.T) {
	repo, m := setupMemberMock(t)

	m.ExpectQuery(regexp.QuoteMeta("INSERT INTO members")).
		WithArgs("Ravi", nil, "9876500000", nil, nil, nil, nil, true, 2).
		WillReturnRows(ashaRow(time.Now(), true))

	_, err := repo.Create(context.Background(), 2, CreateMemberRequest{Name: "Ravi", Phone: "9876500000"})
	require.NoError(t, err)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestUpdateMemberDeactivate(t *testing.T) {
	repo, m := setupMemberMock(t)
	inactive := false

	m.ExpectQuery(regexp.QuoteMeta("UPDATE members SET active = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(false, 7).
		WillReturnRows(ashaRow(time.Now(), false))

	got, err := repo.Update(context.Background(), 7, UpdateMemberRequest{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestListMembersEmpty(t *testing.T) {
	repo, m := setupMemberMock(t)

	m.ExpectQuery(regexp.QuoteMeta("FROM members WHERE gym_id = $1 ORDER BY name")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(memberRowColumns))

	members, err := repo.ListByGym(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestCreateMemberWritesCalendarDate(t *testing.T) {
	repo, m := setupMemberMock(t)
	dob := api.NewDate(time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC))

	m.ExpectQuery(regexp.QuoteMeta("INSERT INTO members")).
		WithArgs("Ravi", nil, "9876500000", nil, "1990-05-01", nil, nil, true, 2).
		WillReturnRows(ashaRow(time.Now(), true))

	_, err := repo.Create(context.Background(), 2, CreateMemberRequest{Name: "Ravi", Phone: "9876500000", DateOfBirth: &dob})
	require.NoError(t, err)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestUpdateMemberClearsDateOfBirth(t *testing.T) {
	repo, m := setupMemberMock(t)

	m.ExpectQuery(regexp.QuoteMeta("UPDATE members SET date_of_birth = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(nil, 7).
		WillReturnRows(ashaRow(time.Now(), true))

	_, err := repo.Update(context.Background(), 7, UpdateMemberRequest{DateOfBirth: &api.Date{}})
	require.NoError(t, err)
	assert.NoError(t, m.ExpectationsWereMet())
}
