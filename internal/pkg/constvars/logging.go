package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingSessionIDKey  = "session_id"
	LoggingClinicIDKey   = "clinic_id"
	LoggingRoleKey       = "role"
	LoggingEntityIDKey   = "entity_id"
	LoggingOperationKey  = "operation"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingErrorCodeKey  = "error_code"
	LoggingCountKey      = "count"
	LoggingEventKey      = "event"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingPatientIDKey  = "patient_id"
	LoggingLevelKey      = "level"
)
