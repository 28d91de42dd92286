package model

import (
	"time"

	"github.com/ujenziiq/ujenziiq-go/internal/constant"
)

type Task struct {
	BaseModel
	ProjectID   string                `gorm:"type:text;not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project     Project               `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name        string                `gorm:"type:varchar(255);not null" json:"name" form:"name" binding:"required,strNotEmpty,max=255"`
	Description string                `gorm:"type:text;not null" json:"description" form:"description" binding:"required"`
	Status      constant.TaskStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status" form:"status"`
	Priority    constant.TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority" form:"priority"`
	StartDate   time.Time             `gorm:"type:date;not null" json:"start_date" form:"start_date" binding:"required" time_format:"2006-01-02"`
	DueDate     time.Time             `gorm:"type:date;not null" json:"due_date" form:"due_date" binding:"required" time_format:"2006-01-02"`

	Assignees []User `gorm:"many2many:task_assignees" json:"-"`
	// Directed, non-symmetric dependency edges stored in the task_dependencies
	// join table. The graph is not required to be acyclic.
	Dependencies []Task `gorm:"many2many:task_dependencies;joinForeignKey:TaskID;joinReferences:DependsOnID" json:"-"`
}

func (t Task) TableName() string {
	return "tasks"
}
