package model

import (
	"time"

	"github.com/ujenziiq/ujenziiq-go/internal/constant"
)

type SMSLog struct {
	BaseModel
	UserID      string `gorm:"type:text;not null;index" json:"user_id" form:"user_id" binding:"required"`
	User        User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PhoneNumber string `gorm:"type:varchar(15);not null" json:"phone_number" form:"phone_number" binding:"required"`
	Message     string `gorm:"type:text;not null" json:"message" form:"message" binding:"required"`

	NotificationID *string       `gorm:"type:text;default:null" json:"notification_id" form:"notification_id"`
	Notification   *Notification `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	SentAt *time.Time         `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP;not null" json:"sent_at"`
	Status constant.SMSStatus `gorm:"type:varchar(50);not null;default:'pending'" json:"status" form:"status"`
}

func (sl SMSLog) TableName() string {
	return "sms_logs"
}
