package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"uuid":     "must be a valid UUID",
	"role":     "must be one of [Provider, Staff, Moderator, Admin]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidForm                   = "some fields need your attention"
	ErrClientRemoteCallFailed              = "failed to fetch data, please try again"
	ErrClientClinicNotFound                = "clinic not found"
	ErrClientEntityNotFound                = "record not found"
	ErrClientNothingToDelete               = "there is no record selected for deletion"
	ErrClientNoRoleSelected                = "please select a role first"
	ErrClientSelectionNotLoaded            = "the list could not be loaded, please reload it and try again"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "validation failed"
	ErrDevFormValidationFailed        = "form validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON"
	ErrDevCannotMarshalJSON           = "cannot marshal JSON"
	ErrDevURLParamIDValidationFailed  = "failed to validate url param %s"
	ErrDevCreateHTTPRequest           = "failed to create HTTP request"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevUnknownRole                 = "role %s is not registered"
	ErrDevDuplicateRole               = "role %s registered more than once"
	ErrDevMissingOperations           = "role %s has no operations"
	ErrDevAuthTokenMissing            = "auth token missing"
	ErrDevAuthTokenInvalidOrExpired   = "auth token invalid or expired"
	ErrDevAuthGenerateToken           = "failed to generate auth token"
	ErrDevSessionNotFound             = "session not found"
	ErrDevClinicAccessDenied          = "session has no access to clinic %s"
	ErrDevSuperadminRequired          = "superadmin session required"
	ErrDevIdentityProvider            = "identity provider rejected %s"
	ErrDevRemoteCall                  = "remote call %s %s failed"
	ErrDevRemoteStatus                = "remote call %s %s returned status %d"
	ErrDevDecodeResponse              = "failed to decode %s response"
	ErrDevEntityNotInCollection       = "entity %s not in current collection"
	ErrDevDeleteConfirmationNotOpened = "delete confirmation has no target"
	ErrDevFormNotOpened               = "form is not open"
	ErrDevNoRoleSelected              = "list controller has no role selected"
	ErrDevSelectionNotLoaded          = "collection for %s in clinic %s is not loaded"
	ErrDevTooManyRequests             = "rate limit exceeded for %s"
	ErrDevPanicRecovered              = "panic recovered"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDocumentNotFound           = "document not found"

	// Redis
	ErrDevRedisSetData         = "failed to set data in redis"
	ErrDevRedisGetData         = "failed to get data from redis"
	ErrDevRedisDeleteData      = "failed to delete data in redis"
	ErrDevRedisRightPushToList = "failed to push data to redis list"
	ErrDevRedisPopList         = "failed to pop redis list %s"
	ErrDevRedisExpire          = "failed to set expiry of redis key %s"

	// RabbitMQ
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
)

// Identity provider error codes exposed to the dashboard
const (
	AuthCodeEmailAlreadyInUse = "email-already-in-use"
	AuthCodeInvalidCredential = "invalid-credential"
	AuthCodeUserNotFound      = "user-not-found"
	AuthCodeWrongPassword     = "wrong-password"
	AuthCodeUserDisabled      = "user-disabled"
	AuthCodeTooManyRequests   = "too-many-requests"
	AuthCodeWeakPassword      = "weak-password"
	AuthCodeInvalidEmail      = "invalid-email"
	AuthCodeEmailNotVerified  = "email-not-verified"
	AuthCodeInternal          = "internal-error"
)

// Inline messages rendered next to dashboard form fields
const (
	FormErrorNameRequired       = "Name is required"
	FormErrorEmailRequired      = "Email is required"
	FormErrorPasswordRequired   = "Password is required"
	FormErrorDomainRequired     = "Domain is required"
	FormErrorRoomNumberRequired = "Room number is required"
)
