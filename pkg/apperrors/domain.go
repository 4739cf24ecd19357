package apperrors

import "net/http"

// Predefined errors for the marketplace domain. Repositories return their own
// sentinel errors; services translate them into these before they reach a
// handler.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Users
	ErrUserNotFound       = New(CodeNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "Email already exists", http.StatusConflict)
	ErrInvalidUserRole    = New(CodeValidationFailed, "Invalid user role", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeValidationFailed, "Password must be at least 8 characters", http.StatusBadRequest)

	// Profiles
	ErrStudentProfileNotFound  = New(CodeNotFound, "Student profile not found", http.StatusNotFound)
	ErrBusinessProfileNotFound = New(CodeNotFound, "Business profile not found", http.StatusNotFound)
	// ProfileRequired is a business rule, not a lookup failure: the action
	// needs a profile the caller has not created yet.
	ErrStudentProfileRequired  = New(CodeProfileRequired, "Student profile required", http.StatusBadRequest)
	ErrBusinessProfileRequired = New(CodeProfileRequired, "Business profile required", http.StatusBadRequest)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Opportunities
	ErrOpportunityNotFound  = New(CodeNotFound, "Opportunity not found", http.StatusNotFound)
	ErrOpportunityNotActive = New(CodeInvalidStatus, "Opportunity is not active", http.StatusBadRequest)
	ErrOpportunityFull      = New(CodeCapacityReached, "Opportunity has reached its applicant limit", http.StatusConflict)

	// Applications
	ErrApplicationNotFound      = New(CodeNotFound, "Application not found", http.StatusNotFound)
	ErrApplicationAlreadyExists = New(CodeAlreadyExists, "You have already applied to this opportunity", http.StatusConflict)
	ErrInvalidApplicationStatus = New(CodeInvalidStatus, "Invalid application status", http.StatusBadRequest)

	// Messaging
	ErrNotAParticipant = New(CodeForbidden, "You are not a participant of this application", http.StatusForbidden)
	ErrEmptyMessage    = New(CodeValidationFailed, "Message content cannot be empty", http.StatusBadRequest)
)
