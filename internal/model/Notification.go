package model

import "github.com/ujenziiq/ujenziiq-go/internal/constant"

type Notification struct {
	BaseModel
	UserID           string                    `gorm:"type:text;not null;index" json:"user_id" form:"user_id" binding:"required"`
	User             User                      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title            string                    `gorm:"type:varchar(255);not null" json:"title" form:"title" binding:"required,strNotEmpty,max=255"`
	Message          string                    `gorm:"type:text;not null" json:"message" form:"message" binding:"required"`
	NotificationType constant.NotificationType `gorm:"type:varchar(20);not null" json:"notification_type" form:"notification_type" binding:"required"`

	ProjectID *string  `gorm:"type:text;default:null" json:"project_id" form:"project_id"`
	Project   *Project `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TaskID    *string  `gorm:"type:text;default:null" json:"task_id" form:"task_id"`
	Task      *Task    `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	IsRead    bool `gorm:"type:boolean;default:false" json:"is_read"`
	IsSMSSent bool `gorm:"column:is_sms_sent;type:boolean;default:false" json:"is_sms_sent"`
}

func (n Notification) TableName() string {
	return "notifications"
}
