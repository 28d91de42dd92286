package constant

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

type ProjectType string

const (
	ProjectTypeResidential    ProjectType = "residential"
	ProjectTypeCommercial     ProjectType = "commercial"
	ProjectTypeIndustrial     ProjectType = "industrial"
	ProjectTypeInfrastructure ProjectType = "infrastructure"
	ProjectTypeRenovation     ProjectType = "renovation"
	ProjectTypeOther          ProjectType = "other"
)
