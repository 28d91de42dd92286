package repository

import (
	"context"

	constant "github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"gorm.io/gorm"
)

type ProgressReportRepository struct {
	*baseRepository
}

type ProgressReportFilter struct {
	ProjectID  string
	ReportType constant.ReportType
}

func (pf ProgressReportFilter) apply(query *gorm.DB) *gorm.DB {
	if pf.ProjectID != "" {
		query = query.Where("progress_reports.project_id = ?", pf.ProjectID)
	}
	if pf.ReportType != "" {
		query = query.Where("progress_reports.report_type = ?", pf.ReportType)
	}
	return query
}

func (rr *ProgressReportRepository) Create(ctx context.Context, tx *gorm.DB, report *model.ProgressReport, completedTaskIds, imageIds []string) (*model.ProgressReport, error) {
	rr.logger.Debugf("Create progress report %s for project %s \n", report.Title, report.ProjectID)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := rr.withTx(db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(report).Error; err != nil {
			return err
		}

		if len(completedTaskIds) > 0 {
			var tasks []model.Task
			if err := tx.WithContext(ctx).Where("id IN (?)", completedTaskIds).Find(&tasks).Error; err != nil {
				return err
			}
			if err := tx.WithContext(ctx).Model(report).Association("TasksCompleted").Replace(tasks); err != nil {
				return err
			}
		}

		if len(imageIds) > 0 {
			var images []model.ProjectImage
			if err := tx.WithContext(ctx).Where("id IN (?)", imageIds).Find(&images).Error; err != nil {
				return err
			}
			if err := tx.WithContext(ctx).Model(report).Association("Images").Replace(images); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (rr ProgressReportRepository) GetById(ctx context.Context, tx *gorm.DB, reportId string) (*model.ProgressReport, error) {
	rr.logger.Debugf("Get progress report by id: %s \n", reportId)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var report model.ProgressReport
	if err := db.WithContext(ctx).Model(&model.ProgressReport{}).
		Preload("SubmittedBy").
		Preload("TasksCompleted").
		Preload("TasksCompleted.Assignees").
		Preload("Images").
		Where("progress_reports.id = ?", reportId).
		First(&report).Error; err != nil {
		return nil, err
	}

	return &report, nil
}

func (rr ProgressReportRepository) List(ctx context.Context, tx *gorm.DB, filter ProgressReportFilter, page, pageSize uint) ([]model.ProgressReport, int64, error) {
	rr.logger.Debug("List progress reports \n")

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := filter.apply(db.WithContext(ctx).Model(&model.ProgressReport{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []model.ProgressReport
	if err := query.
		Preload("SubmittedBy").
		Order("progress_reports.submission_date DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&reports).Error; err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (rr *ProgressReportRepository) Update(ctx context.Context, tx *gorm.DB, reportId string, updates map[string]any) error {
	rr.logger.Debugf("Update progress report %s \n", reportId)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.ProgressReport{}).Where("id = ?", reportId).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (rr *ProgressReportRepository) Delete(ctx context.Context, tx *gorm.DB, reportId string) error {
	rr.logger.Debugf("Delete progress report %s \n", reportId)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", reportId).Delete(&model.ProgressReport{}).Error
}
