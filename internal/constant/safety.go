package constant

type SafetySeverity string

const (
	SafetySeverityLow      SafetySeverity = "low"
	SafetySeverityMedium   SafetySeverity = "medium"
	SafetySeverityHigh     SafetySeverity = "high"
	SafetySeverityCritical SafetySeverity = "critical"
)

type SafetyStatus string

const (
	SafetyStatusReported           SafetyStatus = "reported"
	SafetyStatusUnderInvestigation SafetyStatus = "under_investigation"
	SafetyStatusResolved           SafetyStatus = "resolved"
)
