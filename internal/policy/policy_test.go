package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ujenziiq/ujenziiq-go/internal/auth"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
)

func userWithID(id string) model.User {
	return model.User{BaseModel: model.BaseModel{ID: id}}
}

func TestProjectVisibleTo(t *testing.T) {
	p := &model.Project{
		ProjectManagerID: "manager",
		ClientID:         "client",
		TeamMembers:      []model.User{userWithID("member-1"), userWithID("member-2")},
	}

	assert.True(t, ProjectVisibleTo(p, "manager"))
	assert.True(t, ProjectVisibleTo(p, "client"))
	assert.True(t, ProjectVisibleTo(p, "member-2"))
	assert.False(t, ProjectVisibleTo(p, "outsider"))
}

func TestProjectVisibleToMultipleRoles(t *testing.T) {
	// Manager who is also a team member still resolves to visible; the SQL
	// scope uses a membership subquery so the row is produced once.
	p := &model.Project{
		ProjectManagerID: "dual",
		ClientID:         "client",
		TeamMembers:      []model.User{userWithID("dual")},
	}
	assert.True(t, ProjectVisibleTo(p, "dual"))
}

func TestCanMarkNotificationRead(t *testing.T) {
	n := &model.Notification{UserID: "owner"}
	assert.True(t, CanMarkNotificationRead(n, "owner"))
	assert.False(t, CanMarkNotificationRead(n, "other"))
}

func TestCanMarkMessageRead(t *testing.T) {
	recipient := "recipient"

	direct := &model.Message{SenderID: "sender", RecipientID: &recipient}
	assert.True(t, CanMarkMessageRead(direct, "recipient", false))
	assert.False(t, CanMarkMessageRead(direct, "sender", false))
	assert.False(t, CanMarkMessageRead(direct, "outsider", false))

	group := &model.Message{SenderID: "sender", IsGroupMessage: true}
	assert.True(t, CanMarkMessageRead(group, "member", true))
	assert.False(t, CanMarkMessageRead(group, "outsider", false))

	// A non-group message with no recipient is readable by no one but the
	// sender, and not markable at all.
	orphan := &model.Message{SenderID: "sender"}
	assert.False(t, CanMarkMessageRead(orphan, "sender", true))
}

func TestCanReadAdminOnly(t *testing.T) {
	assert.True(t, CanReadAdminOnly(&auth.JWTPayload{UserType: constant.UserTypeAdmin}))
	assert.False(t, CanReadAdminOnly(&auth.JWTPayload{UserType: constant.UserTypeWorker}))
	assert.False(t, CanReadAdminOnly(nil))
}

func TestRuleTable(t *testing.T) {
	assert.NotNil(t, RuleFor(EntityProject).Scope)
	assert.NotNil(t, RuleFor(EntityTask).Scope)
	assert.NotNil(t, RuleFor(EntityNotification).Scope)
	assert.NotNil(t, RuleFor(EntityMessage).Scope)
	assert.True(t, RuleFor(EntitySMSLog).AdminOnlyRead)

	// Flat entities carry no row scoping.
	for _, e := range []Entity{
		EntityMaterial, EntityResourceAllocation, EntitySafety,
		EntityProjectImage, EntityProgressReport, EntityComment,
	} {
		assert.Nil(t, RuleFor(e).Scope, string(e))
		assert.False(t, RuleFor(e).AdminOnlyRead, string(e))
	}
}
