package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujenziiq/ujenziiq-go/internal/auth"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDb.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDb,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewRepository(db, zap.NewNop().Sugar(), nil), mock
}

func TestNotificationMarkAllAsRead(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	updated, err := repo.Notification.MarkAllAsRead(context.Background(), nil, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationMarkAsRead(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Notification.MarkAsRead(context.Background(), nil, "notif-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ListForUser must scope rows to the principal regardless of filters.
func TestNotificationListForUserScopesToPrincipal(t *testing.T) {
	repo, mock := newMockRepository(t)

	authUser := &auth.JWTPayload{ID: "user-1", UserType: constant.UserTypeWorker}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE notifications\.user_id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "is_read"}).
		AddRow("n1", "user-1", "Task assigned", false).
		AddRow("n2", "user-1", "Incident reported", true)
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE notifications\.user_id = \$1 ORDER BY notifications\.created_at DESC LIMIT \$2`).
		WithArgs("user-1", 25).
		WillReturnRows(rows)

	notifications, total, err := repo.Notification.ListForUser(context.Background(), nil, authUser, NotificationFilter{}, 1, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, notifications, 2)
	assert.Equal(t, "n1", notifications[0].ID)
	assert.Equal(t, "Task assigned", notifications[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
