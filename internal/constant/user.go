package constant

// UserType mirrors the roles construction stakeholders hold on a project
// site. Stored as text.
type UserType string

const (
	UserTypeAdmin          UserType = "admin"
	UserTypeProjectManager UserType = "project_manager"
	UserTypeSiteEngineer   UserType = "site_engineer"
	UserTypeContractor     UserType = "contractor"
	UserTypeForeman        UserType = "foreman"
	UserTypeWorker         UserType = "worker"
	UserTypeClient         UserType = "client"
	UserTypeSupplier       UserType = "supplier"
)

func (ut UserType) Valid() bool {
	switch ut {
	case UserTypeAdmin, UserTypeProjectManager, UserTypeSiteEngineer,
		UserTypeContractor, UserTypeForeman, UserTypeWorker,
		UserTypeClient, UserTypeSupplier:
		return true
	}
	return false
}
