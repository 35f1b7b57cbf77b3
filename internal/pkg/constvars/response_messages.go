package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	LoginSuccessMessage         = "successfully login"
	LogoutSuccessMessage        = "successfully logout"
	PasswordResetSuccessMessage = "reset password link already sent to your email"

	// Clinic messages
	GetClinicsSuccessMessage   = "get clinics successfully"
	GetClinicSuccessMessage    = "get clinic successfully"
	CreateClinicSuccessMessage = "clinic created successfully"
	UpdateClinicSuccessMessage = "clinic updated successfully"
	DeleteClinicSuccessMessage = "clinic deleted successfully"

	// Staff messages
	GetStaffSuccessMessage             = "get staff successfully"
	CreateStaffSuccessMessage          = "%s added successfully"
	UpdateStaffSuccessMessage          = "%s updated successfully"
	DeleteStaffSuccessMessage          = "%s deleted successfully"
	DeleteConfirmationOpenedMessage    = "delete confirmation opened"
	DeleteConfirmationCancelledMessage = "delete confirmation cancelled"
	DeleteConfirmationMessageFormat    = "Are you sure you want to delete %s?"
	GetAnalyticsSuccessMessage         = "get analytics successfully"
	GetProviderAnalyticsSuccessMessage = "get provider counts successfully"
	GetNotificationsSuccessMessage     = "get notifications successfully"
)
