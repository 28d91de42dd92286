package model

import (
	"time"

	"github.com/ujenziiq/ujenziiq-go/internal/constant"
)

type ProgressReport struct {
	BaseModel
	ProjectID   string              `gorm:"type:text;not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project     Project             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReportType  constant.ReportType `gorm:"type:varchar(20);not null" json:"report_type" form:"report_type" binding:"required,oneof=daily weekly monthly special"`
	Title       string              `gorm:"type:varchar(255);not null" json:"title" form:"title" binding:"required,strNotEmpty,max=255"`
	Summary     string              `gorm:"type:text;not null" json:"summary" form:"summary" binding:"required"`
	PeriodStart time.Time           `gorm:"type:date;not null" json:"period_start" form:"period_start" binding:"required" time_format:"2006-01-02"`
	PeriodEnd   time.Time           `gorm:"type:date;not null" json:"period_end" form:"period_end" binding:"required" time_format:"2006-01-02"`

	SubmittedByID  string     `gorm:"type:text;not null" json:"submitted_by_id" form:"-"`
	SubmittedBy    User       `gorm:"foreignKey:SubmittedByID" json:"-"`
	SubmissionDate *time.Time `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP;not null" json:"submission_date"`

	MaterialsUsed string `gorm:"type:text;default:null" json:"materials_used" form:"materials_used"`
	Challenges    string `gorm:"type:text;default:null" json:"challenges" form:"challenges"`
	NextSteps     string `gorm:"type:text;default:null" json:"next_steps" form:"next_steps"`

	TasksCompleted []Task         `gorm:"many2many:progress_report_tasks" json:"-"`
	Images         []ProjectImage `gorm:"many2many:progress_report_images" json:"-"`
}

func (pr ProgressReport) TableName() string {
	return "progress_reports"
}
