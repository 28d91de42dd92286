package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
)

// The dashboard's task summary is derived from grouped status counts.
func TestTaskStatusCounts(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("pending", 3).
		AddRow("in_progress", 2).
		AddRow("completed", 5)
	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS count FROM "tasks" WHERE project_id = \$1 GROUP BY`).
		WithArgs("project-1").
		WillReturnRows(rows)

	pending, completed, total, err := repo.Project.TaskStatusCounts(context.Background(), nil, "project-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), pending)
	assert.Equal(t, int64(5), completed)
	assert.Equal(t, int64(10), total)

	// 5 of 10 tasks completed
	assert.Equal(t, 50, model.CompletionPercentage(completed, total))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStatusCountsNoTasks(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS count FROM "tasks" WHERE project_id = \$1 GROUP BY`).
		WithArgs("project-empty").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}))

	pending, completed, total, err := repo.Project.TaskStatusCounts(context.Background(), nil, "project-empty")
	require.NoError(t, err)
	assert.Zero(t, pending)
	assert.Zero(t, completed)
	assert.Zero(t, total)
	assert.Equal(t, 0, model.CompletionPercentage(completed, total))
	assert.NoError(t, mock.ExpectationsWereMet())
}
