package repository

import (
	"context"

	"github.com/ujenziiq/ujenziiq-go/internal/auth"
	constant "github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/policy"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

// ProjectFilter carries the list-endpoint query filters.
type ProjectFilter struct {
	Status      []constant.ProjectStatus
	ProjectType constant.ProjectType
	Search      string
}

func (pf ProjectFilter) apply(query *gorm.DB) *gorm.DB {
	if len(pf.Status) > 0 {
		query = query.Where("projects.status IN (?)", pf.Status)
	}
	if pf.ProjectType != "" {
		query = query.Where("projects.project_type = ?", pf.ProjectType)
	}
	if pf.Search != "" {
		like := "%" + pf.Search + "%"
		query = query.Where("projects.name ILIKE ? OR projects.description ILIKE ? OR projects.location ILIKE ?", like, like, like)
	}
	return query
}

// Create inserts a project, deriving the slug from the name. On a slug
// collision the slug gets a random suffix and the insert is retried once.
func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project, teamMemberIds []string) (*model.Project, error) {
	pr.logger.Debugf("Create project with name: %s \n", project.Name)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	slug := util.Slugify(project.Name)

	var count int64
	if err := db.WithContext(ctx).Model(&model.Project{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		var err error
		slug, err = util.SlugWithSuffix(slug)
		if err != nil {
			return nil, err
		}
	}
	project.Slug = slug

	err := pr.withTx(db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(project).Error; err != nil {
			return err
		}

		if len(teamMemberIds) > 0 {
			var members []model.User
			if err := tx.WithContext(ctx).Where("id IN (?)", teamMemberIds).Find(&members).Error; err != nil {
				return err
			}
			if err := tx.WithContext(ctx).Model(project).Association("TeamMembers").Replace(members); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (pr ProjectRepository) GetById(ctx context.Context, tx *gorm.DB, projectId string) (*model.Project, error) {
	pr.logger.Debugf("Get project by id: %s \n", projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Client").
		Preload("ProjectManager").
		Preload("TeamMembers").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.due_date, tasks.priority")
		}).
		Preload("Tasks.Assignees").
		Preload("Images").
		Preload("Images.UploadedBy").
		Preload("SafetyIncidents").
		Preload("SafetyIncidents.ReportedBy").
		Preload("SafetyIncidents.AssignedTo").
		Preload("ProgressReports").
		Preload("ProgressReports.SubmittedBy").
		Preload("ResourceAllocations").
		Preload("ResourceAllocations.Material").
		Preload("ResourceAllocations.Material.Supplier").
		Where("projects.id = ?", projectId).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (pr ProjectRepository) list(ctx context.Context, query *gorm.DB, filter ProjectFilter, page, pageSize uint) ([]model.Project, int64, error) {
	query = filter.apply(query)

	// The membership scope filters through a subquery, so a plain count is
	// already duplicate-free.
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []model.Project
	if err := query.
		Preload("Client").
		Preload("ProjectManager").
		// Task status is enough for the derived completion percentage.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Select("tasks.id, tasks.project_id, tasks.status")
		}).
		Order("projects.created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (pr ProjectRepository) List(ctx context.Context, tx *gorm.DB, filter ProjectFilter, page, pageSize uint) ([]model.Project, int64, error) {
	pr.logger.Debug("List projects \n")

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return pr.list(ctx, db.WithContext(ctx).Model(&model.Project{}), filter, page, pageSize)
}

// ListForUser returns the principal's projects: managed, owned as client, or
// joined as a team member, each exactly once.
func (pr ProjectRepository) ListForUser(ctx context.Context, tx *gorm.DB, authUser *auth.JWTPayload, filter ProjectFilter, page, pageSize uint) ([]model.Project, int64, error) {
	pr.logger.Debugf("List projects for user: %s \n", authUser.ID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := policy.ApplyScope(policy.EntityProject, db.WithContext(ctx).Model(&model.Project{}), authUser)
	return pr.list(ctx, query, filter, page, pageSize)
}

func (pr *ProjectRepository) Update(ctx context.Context, tx *gorm.DB, projectId string, updates map[string]any, teamMemberIds []string) error {
	pr.logger.Debugf("Update project %s \n", projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return pr.withTx(db, func(tx *gorm.DB) error {
		if len(updates) > 0 {
			res := tx.WithContext(ctx).Model(&model.Project{}).Where("id = ?", projectId).Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if teamMemberIds != nil {
			var members []model.User
			if err := tx.WithContext(ctx).Where("id IN (?)", teamMemberIds).Find(&members).Error; err != nil {
				return err
			}
			project := model.Project{BaseModel: model.BaseModel{ID: projectId}}
			if err := tx.WithContext(ctx).Model(&project).Association("TeamMembers").Replace(members); err != nil {
				return err
			}
		}

		return nil
	})
}

func (pr *ProjectRepository) Delete(ctx context.Context, tx *gorm.DB, projectId string) error {
	pr.logger.Debugf("Delete project %s \n", projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", projectId).Delete(&model.Project{}).Error
}

func (pr ProjectRepository) IsTeamMember(ctx context.Context, tx *gorm.DB, projectId, userId string) (bool, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Table("project_team_members").
		Where("project_id = ? AND user_id = ?", projectId, userId).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// TaskStatusCounts returns (pending, completed, total) task counts for a
// project in one grouped query.
func (pr ProjectRepository) TaskStatusCounts(ctx context.Context, tx *gorm.DB, projectId string) (pending, completed, total int64, err error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	type statusCount struct {
		Status constant.TaskStatus
		Count  int64
	}

	var counts []statusCount
	if err = db.WithContext(ctx).Model(&model.Task{}).
		Select("status, COUNT(*) AS count").
		Where("project_id = ?", projectId).
		Group("status").
		Scan(&counts).Error; err != nil {
		return 0, 0, 0, err
	}

	for _, sc := range counts {
		total += sc.Count
		switch sc.Status {
		case constant.TaskStatusPending:
			pending = sc.Count
		case constant.TaskStatusCompleted:
			completed = sc.Count
		}
	}

	return pending, completed, total, nil
}

// Dashboard is the read-only aggregation behind GET /api/projects/:id/dashboard.
// Recomputed per request, nothing cached.
type Dashboard struct {
	Project        *model.Project
	Pending        int64
	Completed      int64
	Completion     int
	RecentSafety   []model.Safety
	RecentResource []model.ResourceAllocation
}

func (pr ProjectRepository) GetDashboard(ctx context.Context, tx *gorm.DB, projectId string) (*Dashboard, error) {
	pr.logger.Debugf("Get dashboard for project: %s \n", projectId)

	project, err := pr.GetById(ctx, tx, projectId)
	if err != nil {
		return nil, err
	}

	pending, completed, total, err := pr.TaskStatusCounts(ctx, tx, projectId)
	if err != nil {
		return nil, err
	}

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var recentSafety []model.Safety
	if err := db.WithContext(ctx).Model(&model.Safety{}).
		Preload("ReportedBy").
		Preload("AssignedTo").
		Where("project_id = ?", projectId).
		Order("date_occurred DESC").
		Limit(constant.DashboardRecentLimit).
		Find(&recentSafety).Error; err != nil {
		return nil, err
	}

	var recentResource []model.ResourceAllocation
	if err := db.WithContext(ctx).Model(&model.ResourceAllocation{}).
		Preload("Material").
		Where("project_id = ?", projectId).
		Order("allocated_date DESC").
		Limit(constant.DashboardRecentLimit).
		Find(&recentResource).Error; err != nil {
		return nil, err
	}

	return &Dashboard{
		Project:        project,
		Pending:        pending,
		Completed:      completed,
		Completion:     model.CompletionPercentage(completed, total),
		RecentSafety:   recentSafety,
		RecentResource: recentResource,
	}, nil
}
