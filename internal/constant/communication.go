package constant

type NotificationType string

const (
	NotificationTypeTaskAssigned      NotificationType = "task_assigned"
	NotificationTypeTaskCompleted     NotificationType = "task_completed"
	NotificationTypeTaskUpdated       NotificationType = "task_updated"
	NotificationTypeSafetyIncident    NotificationType = "safety_incident"
	NotificationTypeMaterialDelivered NotificationType = "material_delivered"
	NotificationTypeProgressReport    NotificationType = "progress_report"
	NotificationTypeComment           NotificationType = "comment"
	NotificationTypeDeadline          NotificationType = "deadline"
	NotificationTypeMilestone         NotificationType = "milestone"
	NotificationTypeOther             NotificationType = "other"
)

// CommentOn names the kind of record a comment is attached to.
type CommentOn string

const (
	CommentOnTask           CommentOn = "task"
	CommentOnProject        CommentOn = "project"
	CommentOnSafety         CommentOn = "safety"
	CommentOnProgressReport CommentOn = "progress_report"
)

type SMSStatus string

const (
	SMSStatusPending SMSStatus = "pending"
	SMSStatusSent    SMSStatus = "sent"
	SMSStatusFailed  SMSStatus = "failed"
)
