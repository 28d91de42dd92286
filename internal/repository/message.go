package repository

import (
	"context"

	"github.com/ujenziiq/ujenziiq-go/internal/auth"
	constant "github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/policy"
	"gorm.io/gorm"
)

type MessageRepository struct {
	*baseRepository
}

type MessageFilter struct {
	ProjectID      string
	IsGroupMessage *bool
	IsRead         *bool
}

func (mf MessageFilter) apply(query *gorm.DB) *gorm.DB {
	if mf.ProjectID != "" {
		query = query.Where("messages.project_id = ?", mf.ProjectID)
	}
	if mf.IsGroupMessage != nil {
		query = query.Where("messages.is_group_message = ?", *mf.IsGroupMessage)
	}
	if mf.IsRead != nil {
		query = query.Where("messages.is_read = ?", *mf.IsRead)
	}
	return query
}

func (mr *MessageRepository) Create(ctx context.Context, tx *gorm.DB, message *model.Message) (*model.Message, error) {
	mr.logger.Debugf("Create message from %s in project %s \n", message.SenderID, message.ProjectID)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}

	return message, nil
}

func (mr MessageRepository) GetById(ctx context.Context, tx *gorm.DB, messageId string) (*model.Message, error) {
	mr.logger.Debugf("Get message by id: %s \n", messageId)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var message model.Message
	if err := db.WithContext(ctx).Model(&model.Message{}).
		Preload("Sender").
		Preload("Recipient").
		Where("messages.id = ?", messageId).
		First(&message).Error; err != nil {
		return nil, err
	}

	return &message, nil
}

// ListForUser returns messages the principal sent, received, or can see as a
// team member of a project with group messages. The scope deduplicates by
// construction.
func (mr MessageRepository) ListForUser(ctx context.Context, tx *gorm.DB, authUser *auth.JWTPayload, filter MessageFilter, page, pageSize uint) ([]model.Message, int64, error) {
	mr.logger.Debugf("List messages for user: %s \n", authUser.ID)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := policy.ApplyScope(policy.EntityMessage, db.WithContext(ctx).Model(&model.Message{}), authUser)
	query = filter.apply(query)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []model.Message
	if err := query.
		Preload("Sender").
		Preload("Recipient").
		Order("messages.created_at").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (mr *MessageRepository) MarkAsRead(ctx context.Context, tx *gorm.DB, messageId string) error {
	mr.logger.Debugf("Mark message %s as read \n", messageId)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Message{}).
		Where("id = ?", messageId).
		Update("is_read", true).Error
}
