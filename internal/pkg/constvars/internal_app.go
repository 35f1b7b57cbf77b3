package constvars

type ContextKey string

const (
	ResourceAuth          = "auth"
	ResourceClinics       = "clinics"
	ResourcePatients      = "patients"
	ResourceAnalytics     = "analytics"
	ResourceNotifications = "notifications"
)

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
)

const (
	REQUEST_ID_PREFIX = "CLNC_DSH_"
)

const (
	URLParamClinicID = "clinic_id"
	URLParamRole     = "role"
	URLParamEntityID = "entity_id"
)

const (
	QueryParamClinicID = "clinicId"
	QueryParamYear     = "year"
)

const (
	RedisKeySessionPrefix      = "session:"
	RedisKeyNotificationPrefix = "toast:"
)

const (
	EventStaffCreated = "staff.created"
	EventStaffUpdated = "staff.updated"
	EventStaffDeleted = "staff.deleted"
)

const (
	DefaultRequestTimeoutInSeconds = 10
)

const (
	MongoCollectionClinics = "clinics"
)
