// Package policy is the single place row-level access rules live. Each entity
// gets one Rule; controllers apply Rule.Scope to their list queries and the
// mutate predicates before writes, instead of re-deriving filters per
// endpoint.
package policy

import (
	"github.com/ujenziiq/ujenziiq-go/internal/auth"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"gorm.io/gorm"
)

type Entity string

const (
	EntityProject            Entity = "project"
	EntityTask               Entity = "task"
	EntityMaterial           Entity = "material"
	EntityResourceAllocation Entity = "resource_allocation"
	EntitySafety             Entity = "safety"
	EntityProjectImage       Entity = "project_image"
	EntityProgressReport     Entity = "progress_report"
	EntityNotification       Entity = "notification"
	EntityMessage            Entity = "message"
	EntityComment            Entity = "comment"
	EntitySMSLog             Entity = "sms_log"
)

// Scope narrows a query to the rows the principal may read. A nil Scope
// means flat authorization: every authenticated principal sees every row.
type Scope func(db *gorm.DB, user *auth.JWTPayload) *gorm.DB

type Rule struct {
	Scope Scope
	// AdminOnlyRead gates list/get behind the admin user type.
	AdminOnlyRead bool
}

const teamMembershipSubquery = "SELECT project_id FROM project_team_members WHERE user_id = ?"

// "My projects": manager, client, or team member. Membership goes through a
// subquery rather than a join so a user matching several conditions still
// yields each project once.
func projectScope(db *gorm.DB, user *auth.JWTPayload) *gorm.DB {
	return db.Where(
		"projects.project_manager_id = ? OR projects.client_id = ? OR projects.id IN ("+teamMembershipSubquery+")",
		user.ID, user.ID, user.ID,
	)
}

// "My tasks": tasks the principal is assigned to.
func taskScope(db *gorm.DB, user *auth.JWTPayload) *gorm.DB {
	return db.Where("tasks.id IN (SELECT task_id FROM task_assignees WHERE user_id = ?)", user.ID)
}

func notificationScope(db *gorm.DB, user *auth.JWTPayload) *gorm.DB {
	return db.Where("notifications.user_id = ?", user.ID)
}

// Messages a principal may read: ones they sent, ones addressed to them, and
// group messages in projects whose team they belong to.
func messageScope(db *gorm.DB, user *auth.JWTPayload) *gorm.DB {
	return db.Where(
		"messages.sender_id = ? OR messages.recipient_id = ? OR (messages.is_group_message AND messages.project_id IN ("+teamMembershipSubquery+"))",
		user.ID, user.ID, user.ID,
	)
}

var rules = map[Entity]Rule{
	EntityProject:            {Scope: projectScope},
	EntityTask:               {Scope: taskScope},
	EntityNotification:       {Scope: notificationScope},
	EntityMessage:            {Scope: messageScope},
	EntitySMSLog:             {AdminOnlyRead: true},
	EntityMaterial:           {},
	EntityResourceAllocation: {},
	EntitySafety:             {},
	EntityProjectImage:       {},
	EntityProgressReport:     {},
	EntityComment:            {},
}

func RuleFor(entity Entity) Rule {
	return rules[entity]
}

// ApplyScope applies the entity's read scope to a query, passing the query
// through untouched for flat entities.
func ApplyScope(entity Entity, db *gorm.DB, user *auth.JWTPayload) *gorm.DB {
	rule := rules[entity]
	if rule.Scope == nil {
		return db
	}
	return rule.Scope(db, user)
}

func CanReadAdminOnly(user *auth.JWTPayload) bool {
	return user != nil && user.UserType == constant.UserTypeAdmin
}

// ProjectVisibleTo mirrors projectScope for a loaded record.
func ProjectVisibleTo(p *model.Project, userID string) bool {
	if p.ProjectManagerID == userID || p.ClientID == userID {
		return true
	}
	for _, member := range p.TeamMembers {
		if member.ID == userID {
			return true
		}
	}
	return false
}

// CanMarkNotificationRead: only the recipient user may flip is_read.
func CanMarkNotificationRead(n *model.Notification, userID string) bool {
	return n.UserID == userID
}

// CanMarkMessageRead: the direct recipient may mark a message read; for group
// messages any member of the project team may. Senders and outsiders may not.
func CanMarkMessageRead(m *model.Message, userID string, isTeamMember bool) bool {
	if m.RecipientID != nil && *m.RecipientID == userID {
		return true
	}
	return m.IsGroupMessage && isTeamMember
}
