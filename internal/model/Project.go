package model

import (
	"time"

	"github.com/ujenziiq/ujenziiq-go/internal/constant"
)

type Project struct {
	BaseModel
	Name           string                 `gorm:"type:varchar(255);not null" json:"name" form:"name" binding:"required,strNotEmpty,max=255"`
	Slug           string                 `gorm:"type:varchar(255);unique;not null" json:"slug" form:"-"`
	Description    string                 `gorm:"type:text;not null" json:"description" form:"description" binding:"required"`
	ProjectType    constant.ProjectType   `gorm:"type:varchar(20);not null" json:"project_type" form:"project_type" binding:"required,oneof=residential commercial industrial infrastructure renovation other"`
	Location       string                 `gorm:"type:varchar(255);not null" json:"location" form:"location" binding:"required"`
	GPSCoordinates string                 `gorm:"type:varchar(100);default:null" json:"gps_coordinates" form:"gps_coordinates"`
	StartDate      time.Time              `gorm:"type:date;not null" json:"start_date" form:"start_date" binding:"required" time_format:"2006-01-02"`
	ExpectedEnd    time.Time              `gorm:"column:expected_end_date;type:date;not null" json:"expected_end_date" form:"expected_end_date" binding:"required" time_format:"2006-01-02"`
	ActualEnd      *time.Time             `gorm:"column:actual_end_date;type:date;default:null" json:"actual_end_date" form:"actual_end_date" time_format:"2006-01-02"`
	Status         constant.ProjectStatus `gorm:"type:varchar(20);not null;default:'planning'" json:"status" form:"status"`
	Budget         float64                `gorm:"type:numeric(12,2);not null" json:"budget" form:"budget" binding:"required"`

	ClientID         string `gorm:"type:text;not null" json:"client_id" form:"client_id" binding:"required"`
	Client           User   `gorm:"foreignKey:ClientID" json:"-"`
	ProjectManagerID string `gorm:"type:text;not null" json:"project_manager_id" form:"project_manager_id" binding:"required"`
	ProjectManager   User   `gorm:"foreignKey:ProjectManagerID" json:"-"`
	TeamMembers      []User `gorm:"many2many:project_team_members" json:"-"`

	Tasks               []Task               `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Images              []ProjectImage       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SafetyIncidents     []Safety             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ProgressReports     []ProgressReport     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ResourceAllocations []ResourceAllocation `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (p Project) TableName() string {
	return "projects"
}

// CompletionPercentage is floor(100 * completed / total), 0 for an empty
// project so a fresh project never divides by zero.
func CompletionPercentage(completedTasks, totalTasks int64) int {
	if totalTasks <= 0 {
		return 0
	}
	return int(completedTasks * 100 / totalTasks)
}

// IsDelayed reports whether an in-progress project has passed its expected
// end date. Projects in any other status are never considered delayed, even
// when overdue.
func (p Project) IsDelayed(today time.Time) bool {
	if p.Status != constant.ProjectStatusInProgress {
		return false
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ey, em, ed := p.ExpectedEnd.Date()
	expected := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return expected.Before(day)
}
