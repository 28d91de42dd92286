package repository

import (
	"context"

	constant "github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"gorm.io/gorm"
)

type SafetyRepository struct {
	*baseRepository
}

type SafetyFilter struct {
	ProjectID string
	Severity  constant.SafetySeverity
	Status    constant.SafetyStatus
	Search    string
}

func (sf SafetyFilter) apply(query *gorm.DB) *gorm.DB {
	if sf.ProjectID != "" {
		query = query.Where("safety_incidents.project_id = ?", sf.ProjectID)
	}
	if sf.Severity != "" {
		query = query.Where("safety_incidents.severity = ?", sf.Severity)
	}
	if sf.Status != "" {
		query = query.Where("safety_incidents.status = ?", sf.Status)
	}
	if sf.Search != "" {
		like := "%" + sf.Search + "%"
		query = query.Where("safety_incidents.title ILIKE ? OR safety_incidents.description ILIKE ?", like, like)
	}
	return query
}

func (sr *SafetyRepository) Create(ctx context.Context, tx *gorm.DB, incident *model.Safety, imageIds []string) (*model.Safety, error) {
	sr.logger.Debugf("Create safety incident: %s \n", incident.Title)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := sr.withTx(db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(incident).Error; err != nil {
			return err
		}

		if len(imageIds) > 0 {
			var images []model.ProjectImage
			if err := tx.WithContext(ctx).Where("id IN (?)", imageIds).Find(&images).Error; err != nil {
				return err
			}
			if err := tx.WithContext(ctx).Model(incident).Association("Images").Replace(images); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return incident, nil
}

func (sr SafetyRepository) GetById(ctx context.Context, tx *gorm.DB, incidentId string) (*model.Safety, error) {
	sr.logger.Debugf("Get safety incident by id: %s \n", incidentId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var incident model.Safety
	if err := db.WithContext(ctx).Model(&model.Safety{}).
		Preload("ReportedBy").
		Preload("AssignedTo").
		Preload("Images").
		Where("safety_incidents.id = ?", incidentId).
		First(&incident).Error; err != nil {
		return nil, err
	}

	return &incident, nil
}

func (sr SafetyRepository) List(ctx context.Context, tx *gorm.DB, filter SafetyFilter, page, pageSize uint) ([]model.Safety, int64, error) {
	sr.logger.Debug("List safety incidents \n")

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := filter.apply(db.WithContext(ctx).Model(&model.Safety{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var incidents []model.Safety
	if err := query.
		Preload("ReportedBy").
		Preload("AssignedTo").
		Order("safety_incidents.date_occurred DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&incidents).Error; err != nil {
		return nil, 0, err
	}

	return incidents, total, nil
}

func (sr *SafetyRepository) Update(ctx context.Context, tx *gorm.DB, incidentId string, updates map[string]any) error {
	sr.logger.Debugf("Update safety incident %s \n", incidentId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.Safety{}).Where("id = ?", incidentId).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (sr *SafetyRepository) Delete(ctx context.Context, tx *gorm.DB, incidentId string) error {
	sr.logger.Debugf("Delete safety incident %s \n", incidentId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", incidentId).Delete(&model.Safety{}).Error
}
