package repository

import (
	"context"

	"github.com/ujenziiq/ujenziiq-go/internal/auth"
	constant "github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/policy"
	"github.com/ujenziiq/ujenziiq-go/pkg/taskgraph"
	"gorm.io/gorm"
)

type TaskRepository struct {
	*baseRepository
}

type TaskFilter struct {
	ProjectID string
	Status    constant.TaskStatus
	Priority  constant.TaskPriority
	Search    string
}

func (tf TaskFilter) apply(query *gorm.DB) *gorm.DB {
	if tf.ProjectID != "" {
		query = query.Where("tasks.project_id = ?", tf.ProjectID)
	}
	if tf.Status != "" {
		query = query.Where("tasks.status = ?", tf.Status)
	}
	if tf.Priority != "" {
		query = query.Where("tasks.priority = ?", tf.Priority)
	}
	if tf.Search != "" {
		like := "%" + tf.Search + "%"
		query = query.Where("tasks.name ILIKE ? OR tasks.description ILIKE ?", like, like)
	}
	return query
}

func (tr TaskRepository) Create(ctx context.Context, tx *gorm.DB, task *model.Task, assigneeIds, dependencyIds []string) (*model.Task, error) {
	tr.logger.Debugf("Create task %s for project %s \n", task.Name, task.ProjectID)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := tr.withTx(db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(task).Error; err != nil {
			return err
		}

		if len(assigneeIds) > 0 {
			var assignees []model.User
			if err := tx.WithContext(ctx).Where("id IN (?)", assigneeIds).Find(&assignees).Error; err != nil {
				return err
			}
			if err := tx.WithContext(ctx).Model(task).Association("Assignees").Replace(assignees); err != nil {
				return err
			}
		}

		if len(dependencyIds) > 0 {
			var deps []model.Task
			if err := tx.WithContext(ctx).Where("id IN (?)", dependencyIds).Find(&deps).Error; err != nil {
				return err
			}
			if err := tx.WithContext(ctx).Model(task).Association("Dependencies").Replace(deps); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (tr TaskRepository) GetById(ctx context.Context, tx *gorm.DB, taskId string) (*model.Task, error) {
	tr.logger.Debugf("Get task by id: %s \n", taskId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var task model.Task
	if err := db.WithContext(ctx).Model(&model.Task{}).
		Preload("Assignees").
		Preload("Dependencies").
		Where("tasks.id = ?", taskId).
		First(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

func (tr TaskRepository) list(query *gorm.DB, filter TaskFilter, page, pageSize uint) ([]model.Task, int64, error) {
	query = filter.apply(query)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	if err := query.
		Preload("Assignees").
		Order("tasks.due_date, tasks.priority").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func (tr TaskRepository) List(ctx context.Context, tx *gorm.DB, filter TaskFilter, page, pageSize uint) ([]model.Task, int64, error) {
	tr.logger.Debug("List tasks \n")

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return tr.list(db.WithContext(ctx).Model(&model.Task{}), filter, page, pageSize)
}

// ListForUser returns tasks the principal is assigned to.
func (tr TaskRepository) ListForUser(ctx context.Context, tx *gorm.DB, authUser *auth.JWTPayload, filter TaskFilter, page, pageSize uint) ([]model.Task, int64, error) {
	tr.logger.Debugf("List tasks for user: %s \n", authUser.ID)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := policy.ApplyScope(policy.EntityTask, db.WithContext(ctx).Model(&model.Task{}), authUser)
	return tr.list(query, filter, page, pageSize)
}

func (tr *TaskRepository) Update(ctx context.Context, tx *gorm.DB, taskId string, updates map[string]any, assigneeIds, dependencyIds []string) error {
	tr.logger.Debugf("Update task %s \n", taskId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return tr.withTx(db, func(tx *gorm.DB) error {
		if len(updates) > 0 {
			res := tx.WithContext(ctx).Model(&model.Task{}).Where("id = ?", taskId).Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		task := model.Task{BaseModel: model.BaseModel{ID: taskId}}

		if assigneeIds != nil {
			var assignees []model.User
			if err := tx.WithContext(ctx).Where("id IN (?)", assigneeIds).Find(&assignees).Error; err != nil {
				return err
			}
			if err := tx.WithContext(ctx).Model(&task).Association("Assignees").Replace(assignees); err != nil {
				return err
			}
		}

		if dependencyIds != nil {
			var deps []model.Task
			if err := tx.WithContext(ctx).Where("id IN (?)", dependencyIds).Find(&deps).Error; err != nil {
				return err
			}
			if err := tx.WithContext(ctx).Model(&task).Association("Dependencies").Replace(deps); err != nil {
				return err
			}
		}

		return nil
	})
}

func (tr *TaskRepository) Delete(ctx context.Context, tx *gorm.DB, taskId string) error {
	tr.logger.Debugf("Delete task %s \n", taskId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", taskId).Delete(&model.Task{}).Error
}

// DependencyGraph loads the dependency edges of every task in a project into
// a taskgraph.Graph. Used to surface cycles to callers; the stored relation
// itself is allowed to be cyclic.
func (tr TaskRepository) DependencyGraph(ctx context.Context, tx *gorm.DB, projectId string) (*taskgraph.Graph, error) {
	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var taskIds []string
	if err := db.WithContext(ctx).Model(&model.Task{}).
		Where("project_id = ?", projectId).
		Pluck("id", &taskIds).Error; err != nil {
		return nil, err
	}

	g := taskgraph.New()
	for _, id := range taskIds {
		g.AddNode(id)
	}

	type edge struct {
		TaskID      string
		DependsOnID string
	}
	var edges []edge
	if err := db.WithContext(ctx).Table("task_dependencies").
		Where("task_id IN (?)", taskIds).
		Scan(&edges).Error; err != nil {
		return nil, err
	}

	for _, e := range edges {
		g.AddEdge(e.TaskID, e.DependsOnID)
	}

	return g, nil
}
