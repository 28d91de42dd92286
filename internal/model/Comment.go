package model

import "github.com/ujenziiq/ujenziiq-go/internal/constant"

type Comment struct {
	BaseModel
	AuthorID  string             `gorm:"type:text;not null" json:"author_id" form:"-"`
	Author    User               `gorm:"foreignKey:AuthorID" json:"-"`
	Content   string             `gorm:"type:text;not null" json:"content" form:"content" binding:"required,strNotEmpty"`
	CommentOn constant.CommentOn `gorm:"type:varchar(20);not null" json:"comment_on" form:"comment_on" binding:"required,oneof=task project safety progress_report"`
	ProjectID string             `gorm:"type:text;not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project   Project            `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	TaskID           *string  `gorm:"type:text;default:null" json:"task_id" form:"task_id"`
	Task             *Task    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SafetyIncidentID *string  `gorm:"type:text;default:null" json:"safety_incident_id" form:"safety_incident_id"`
	SafetyIncident   *Safety  `gorm:"foreignKey:SafetyIncidentID;constraint:OnDelete:CASCADE" json:"-"`
	ParentID         *string  `gorm:"column:parent_comment_id;type:text;default:null" json:"parent_comment_id" form:"parent_comment_id"`
	Parent           *Comment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c Comment) TableName() string {
	return "comments"
}
