package models

type UserRole string
type OpportunityStatus string
type ApplicationStatus string

const (
	UserRoleStudent  UserRole = "student"
	UserRoleBusiness UserRole = "business"

	OpportunityStatusActive OpportunityStatus = "active"
	OpportunityStatusClosed OpportunityStatus = "closed"
	OpportunityStatusDraft  OpportunityStatus = "draft"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusCompleted ApplicationStatus = "completed"
)

// ValidApplicationStatus reports whether s is one of the four statuses an
// application can carry. Any of them may be set at any time; the lifecycle is
// deliberately lenient so a business can reverse a decision.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted,
		ApplicationStatusRejected, ApplicationStatusCompleted:
		return true
	}
	return false
}

// ValidUserRole reports whether r is a role a user can register with.
func ValidUserRole(r UserRole) bool {
	return r == UserRoleStudent || r == UserRoleBusiness
}
