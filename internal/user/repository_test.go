package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "username", "password", "name", "email", "phone", "role", "created_at", "updated_at"}

func setupUserMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestCreateAndFindUser(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password, name, email, phone, role) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, username")).
		WithArgs("owner", "hash", "Owner", "owner@example.com", nil, RoleOwner).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "owner", "hash", "Owner", "owner@example.com", nil, RoleOwner, now, now))

	u, err := repo.Create(ctx, &User{Username: "owner", Password: "hash", Name: "Owner", Email: "owner@example.com", Role: RoleOwner})
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.Nil(t, u.Phone)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("owner").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "owner", "hash", "Owner", "owner@example.com", "555-1234", RoleOwner, now, now))

	fu, err := repo.FindByUsername(ctx, "owner")
	require.NoError(t, err)
	require.Equal(t, "555-1234", *fu.Phone)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "owner", "hash", "Owner", "owner@example.com", nil, RoleOwner, now, now))

	byID, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "owner", byID.Username)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsernameExists(t *testing.T) {
	repo, mock, close := setupUserMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)")).
		WithArgs("owner").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.UsernameExists(context.Background(), "owner")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.UsernameExists(context.Background(), "nobody")
	require.NoError(t, err)
	require.False(t, exists)
}
