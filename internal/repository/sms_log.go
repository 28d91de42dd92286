package repository

import (
	"context"

	constant "github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"gorm.io/gorm"
)

type SMSLogRepository struct {
	*baseRepository
}

func (sr *SMSLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.SMSLog) (*model.SMSLog, error) {
	sr.logger.Debugf("Create sms log for user: %s \n", log.UserID)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}

	return log, nil
}

func (sr SMSLogRepository) GetById(ctx context.Context, tx *gorm.DB, logId string) (*model.SMSLog, error) {
	sr.logger.Debugf("Get sms log by id: %s \n", logId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var log model.SMSLog
	if err := db.WithContext(ctx).Model(&model.SMSLog{}).
		Preload("User").
		Where("sms_logs.id = ?", logId).
		First(&log).Error; err != nil {
		return nil, err
	}

	return &log, nil
}

func (sr SMSLogRepository) List(ctx context.Context, tx *gorm.DB, userId string, status constant.SMSStatus, page, pageSize uint) ([]model.SMSLog, int64, error) {
	sr.logger.Debug("List sms logs \n")

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.SMSLog{})
	if userId != "" {
		query = query.Where("sms_logs.user_id = ?", userId)
	}
	if status != "" {
		query = query.Where("sms_logs.status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.SMSLog
	if err := query.
		Preload("User").
		Order("sms_logs.sent_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (sr *SMSLogRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, logId string, status constant.SMSStatus) error {
	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.SMSLog{}).
		Where("id = ?", logId).
		Update("status", status).Error
}
