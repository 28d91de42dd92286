package model

import (
	"time"

	"github.com/ujenziiq/ujenziiq-go/internal/constant"
)

type Safety struct {
	BaseModel
	ProjectID       string                  `gorm:"type:text;not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project         Project                 `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title           string                  `gorm:"type:varchar(255);not null" json:"title" form:"title" binding:"required,strNotEmpty,max=255"`
	Description     string                  `gorm:"type:text;not null" json:"description" form:"description" binding:"required"`
	DateOccurred    time.Time               `gorm:"type:timestamptz;not null" json:"date_occurred" form:"date_occurred" binding:"required"`
	LocationInSite  string                  `gorm:"type:varchar(255);not null" json:"location_in_site" form:"location_in_site" binding:"required"`
	Severity        constant.SafetySeverity `gorm:"type:varchar(20);not null" json:"severity" form:"severity" binding:"required,oneof=low medium high critical"`
	Status          constant.SafetyStatus   `gorm:"type:varchar(20);not null;default:'reported'" json:"status" form:"status"`
	ResolutionNotes string                  `gorm:"type:text;default:null" json:"resolution_notes" form:"resolution_notes"`

	ReportedByID string         `gorm:"type:text;not null" json:"reported_by_id" form:"-"`
	ReportedBy   User           `gorm:"foreignKey:ReportedByID" json:"-"`
	AssignedToID *string        `gorm:"type:text;default:null" json:"assigned_to_id" form:"assigned_to_id"`
	AssignedTo   *User          `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"-"`
	Images       []ProjectImage `gorm:"many2many:safety_images" json:"-"`
}

func (s Safety) TableName() string {
	return "safety_incidents"
}
