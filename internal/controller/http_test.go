package controller_test

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appcontext "github.com/ujenziiq/ujenziiq-go/internal/app_context"
	"github.com/ujenziiq/ujenziiq-go/internal/auth"
	"github.com/ujenziiq/ujenziiq-go/internal/config"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/controller"
	"github.com/ujenziiq/ujenziiq-go/internal/middleware"
	"github.com/ujenziiq/ujenziiq-go/internal/repository"
	"github.com/ujenziiq/ujenziiq-go/internal/route"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// captureArg matches any value and records it, so assertions can check what
// reached the database without depending on column order.
type captureArg struct {
	values *[]driver.Value
}

func (a captureArg) Match(v driver.Value) bool {
	*a.values = append(*a.values, v)
	return true
}

func newTestServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, auth.JWTInterface) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		require.NoError(t, v.RegisterValidation("strNotEmpty", util.StrNotEmpty))
	}

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

	log := zap.NewNop().Sugar()
	jwtService := auth.NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, log)
	app := &appcontext.Application{
		Logger:     log,
		Repository: repository.NewRepository(db, log, nil),
		JWTService: jwtService,
	}

	m := middleware.NewMiddleware(app, nil)
	c := controller.NewController(app)

	r := gin.New()
	rApi := r.Group("/api")
	route.Comments(rApi, c.Comment, m)
	route.Projects(rApi, c.Project, m)
	return r, mock, jwtService
}

func accessTokenFor(t *testing.T, jwtService auth.JWTInterface, userId string) string {
	t.Helper()
	_, access, err := jwtService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:       userId,
		Email:    "worker@example.com",
		UserType: constant.UserTypeWorker,
	})
	require.NoError(t, err)
	return *access
}

// An unauthenticated request must be rejected by the middleware before any
// query reaches the database.
func TestCreateCommentUnauthenticated(t *testing.T) {
	r, mock, _ := newTestServer(t)

	body, _ := json.Marshal(gin.H{
		"content":    "looks done to me",
		"comment_on": "task",
		"project_id": "project-1",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The stored author always comes from the JWT principal, never the body.
func TestCreateCommentStampsAuthorFromToken(t *testing.T) {
	r, mock, jwtService := newTestServer(t)
	token := accessTokenFor(t, jwtService, "user-1")

	var inserted []driver.Value
	args := make([]driver.Value, 10)
	for i := range args {
		args[i] = captureArg{values: &inserted}
	}

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectCommit()

	body, _ := json.Marshal(gin.H{
		"content":    "rebar inspection passed",
		"comment_on": "task",
		"project_id": "project-1",
		"task_id":    "task-9",
		"author_id":  "attacker-1",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "commentId")
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Contains(t, inserted, driver.Value("user-1"))
	assert.NotContains(t, inserted, driver.Value("attacker-1"))
}

// The dashboard payload keeps the key names existing clients consume:
// task_summary with completion_percentage, recent_safety, recent_materials.
func TestGetDashboardPayloadKeys(t *testing.T) {
	r, mock, jwtService := newTestServer(t)
	token := accessTokenFor(t, jwtService, "user-1")

	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE projects\.id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "status"}).
			AddRow("project-1", "Riverside Mall", "riverside-mall", "in_progress"))

	empty := func(col string) *sqlmock.Rows { return sqlmock.NewRows([]string{col}) }
	mock.ExpectQuery(`FROM "project_images" WHERE "project_images"\."project_id"`).WillReturnRows(empty("id"))
	mock.ExpectQuery(`FROM "progress_reports" WHERE "progress_reports"\."project_id"`).WillReturnRows(empty("id"))
	mock.ExpectQuery(`FROM "resource_allocations" WHERE "resource_allocations"\."project_id"`).WillReturnRows(empty("id"))
	mock.ExpectQuery(`FROM "safety_incidents" WHERE "safety_incidents"\."project_id"`).WillReturnRows(empty("id"))
	mock.ExpectQuery(`FROM "tasks" WHERE "tasks"\."project_id"`).WillReturnRows(empty("id"))
	mock.ExpectQuery(`FROM "project_team_members" WHERE "project_team_members"\."project_id"`).WillReturnRows(empty("project_id"))

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS count FROM "tasks" WHERE project_id = \$1 GROUP BY`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 1).
			AddRow("completed", 3))

	mock.ExpectQuery(`FROM "safety_incidents" WHERE project_id = \$1 ORDER BY date_occurred DESC`).WillReturnRows(empty("id"))
	mock.ExpectQuery(`FROM "resource_allocations" WHERE project_id = \$1 ORDER BY allocated_date DESC`).WillReturnRows(empty("id"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/projects/project-1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope.Data, "project")
	assert.Contains(t, envelope.Data, "task_summary")
	assert.Contains(t, envelope.Data, "recent_safety")
	assert.Contains(t, envelope.Data, "recent_materials")

	var summary struct {
		Pending              int64 `json:"pending"`
		Completed            int64 `json:"completed"`
		CompletionPercentage int   `json:"completion_percentage"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data["task_summary"], &summary))
	assert.Equal(t, int64(1), summary.Pending)
	assert.Equal(t, int64(3), summary.Completed)
	assert.Equal(t, 75, summary.CompletionPercentage)
	assert.NoError(t, mock.ExpectationsWereMet())
}
