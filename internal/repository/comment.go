package repository

import (
	"context"

	constant "github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"gorm.io/gorm"
)

type CommentRepository struct {
	*baseRepository
}

type CommentFilter struct {
	ProjectID        string
	TaskID           string
	SafetyIncidentID string
	CommentOn        constant.CommentOn
}

func (cf CommentFilter) apply(query *gorm.DB) *gorm.DB {
	if cf.ProjectID != "" {
		query = query.Where("comments.project_id = ?", cf.ProjectID)
	}
	if cf.TaskID != "" {
		query = query.Where("comments.task_id = ?", cf.TaskID)
	}
	if cf.SafetyIncidentID != "" {
		query = query.Where("comments.safety_incident_id = ?", cf.SafetyIncidentID)
	}
	if cf.CommentOn != "" {
		query = query.Where("comments.comment_on = ?", cf.CommentOn)
	}
	return query
}

func (cr *CommentRepository) Create(ctx context.Context, tx *gorm.DB, comment *model.Comment) (*model.Comment, error) {
	cr.logger.Debugf("Create comment by %s on %s \n", comment.AuthorID, comment.CommentOn)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}

	return comment, nil
}

func (cr CommentRepository) GetById(ctx context.Context, tx *gorm.DB, commentId string) (*model.Comment, error) {
	cr.logger.Debugf("Get comment by id: %s \n", commentId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var comment model.Comment
	if err := db.WithContext(ctx).Model(&model.Comment{}).
		Preload("Author").
		Where("comments.id = ?", commentId).
		First(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// List returns every comment matching the filter, ordered oldest first.
// Reply threading is assembled by the caller from the flat rows, so a single
// query serves arbitrarily deep threads.
func (cr CommentRepository) List(ctx context.Context, tx *gorm.DB, filter CommentFilter) ([]model.Comment, error) {
	cr.logger.Debug("List comments \n")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := filter.apply(db.WithContext(ctx).Model(&model.Comment{}))

	var comments []model.Comment
	if err := query.
		Preload("Author").
		Order("comments.created_at").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	return comments, nil
}

func (cr *CommentRepository) Update(ctx context.Context, tx *gorm.DB, commentId string, updates map[string]any) error {
	cr.logger.Debugf("Update comment %s \n", commentId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", commentId).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (cr *CommentRepository) Delete(ctx context.Context, tx *gorm.DB, commentId string) error {
	cr.logger.Debugf("Delete comment %s \n", commentId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", commentId).Delete(&model.Comment{}).Error
}
