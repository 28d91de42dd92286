package repository

import (
	"context"

	"github.com/ujenziiq/ujenziiq-go/internal/auth"
	constant "github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/policy"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	*baseRepository
}

type NotificationFilter struct {
	NotificationType constant.NotificationType
	IsRead           *bool
	ProjectID        string
}

func (nf NotificationFilter) apply(query *gorm.DB) *gorm.DB {
	if nf.NotificationType != "" {
		query = query.Where("notifications.notification_type = ?", nf.NotificationType)
	}
	if nf.IsRead != nil {
		query = query.Where("notifications.is_read = ?", *nf.IsRead)
	}
	if nf.ProjectID != "" {
		query = query.Where("notifications.project_id = ?", nf.ProjectID)
	}
	return query
}

func (nr *NotificationRepository) Create(ctx context.Context, tx *gorm.DB, notification *model.Notification) (*model.Notification, error) {
	nr.logger.Debugf("Create notification for user: %s \n", notification.UserID)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(notification).Error; err != nil {
		return nil, err
	}

	return notification, nil
}

func (nr NotificationRepository) GetById(ctx context.Context, tx *gorm.DB, notificationId string) (*model.Notification, error) {
	nr.logger.Debugf("Get notification by id: %s \n", notificationId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var notification model.Notification
	if err := db.WithContext(ctx).Model(&model.Notification{}).
		Preload("User").
		Where("notifications.id = ?", notificationId).
		First(&notification).Error; err != nil {
		return nil, err
	}

	return &notification, nil
}

// ListForUser only ever returns the principal's own notifications.
func (nr NotificationRepository) ListForUser(ctx context.Context, tx *gorm.DB, authUser *auth.JWTPayload, filter NotificationFilter, page, pageSize uint) ([]model.Notification, int64, error) {
	nr.logger.Debugf("List notifications for user: %s \n", authUser.ID)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := policy.ApplyScope(policy.EntityNotification, db.WithContext(ctx).Model(&model.Notification{}), authUser)
	query = filter.apply(query)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []model.Notification
	if err := query.
		Order("notifications.created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (nr *NotificationRepository) MarkAsRead(ctx context.Context, tx *gorm.DB, notificationId string) error {
	nr.logger.Debugf("Mark notification %s as read \n", notificationId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", notificationId).
		Update("is_read", true).Error
}

// MarkAllAsRead flips every unread notification belonging to the user.
func (nr *NotificationRepository) MarkAllAsRead(ctx context.Context, tx *gorm.DB, userId string) (int64, error) {
	nr.logger.Debugf("Mark all notifications as read for user: %s \n", userId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userId, false).
		Update("is_read", true)

	return res.RowsAffected, res.Error
}

func (nr *NotificationRepository) MarkSMSSent(ctx context.Context, tx *gorm.DB, notificationId string) error {
	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", notificationId).
		Update("is_sms_sent", true).Error
}
