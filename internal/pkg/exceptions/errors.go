package exceptions

import (
	"fmt"

	"clinic-dashboard-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrTooManyRequests = func(clientIP string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevTooManyRequests, clientIP))
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}

	// Registry
	ErrUnknownRole = func(role string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnknownRole, role))
	}
	ErrDuplicateRole = func(role string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDuplicateRole, role))
	}
	ErrMissingOperations = func(role string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMissingOperations, role))
	}

	// Dashboard state
	ErrFormValidation = func(fields map[string]string) *CustomError {
		customErr := BuildNewCustomError(&ValidationError{Fields: fields}, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidForm, constvars.ErrDevFormValidationFailed)
		customErr.Fields = fields
		return customErr
	}
	ErrFormNotOpened = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevFormNotOpened)
	}
	ErrEntityNotInCollection = func(entityID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientEntityNotFound, fmt.Sprintf(constvars.ErrDevEntityNotInCollection, entityID))
	}
	ErrDeleteConfirmationNotOpened = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientNothingToDelete, constvars.ErrDevDeleteConfirmationNotOpened)
	}
	ErrNoRoleSelected = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientNoRoleSelected, constvars.ErrDevNoRoleSelected)
	}
	ErrSelectionNotLoaded = func(clinicID, role string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientSelectionNotLoaded, fmt.Sprintf(constvars.ErrDevSelectionNotLoaded, role, clinicID))
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrSessionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionNotFound)
	}
	ErrClinicAccessDenied = func(clinicID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevClinicAccessDenied, clinicID))
	}
	ErrSuperadminRequired = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevSuperadminRequired)
	}
	ErrIdentityProvider = func(authErr *AuthError, operation string) *CustomError {
		return BuildNewCustomError(authErr, authStatusCode(authErr.Code), authErr.Message, fmt.Sprintf(constvars.ErrDevIdentityProvider, operation))
	}

	// Remote backend
	ErrRemoteCall = func(err error, method, url string) *CustomError {
		remoteErr := &RemoteCallError{Method: method, URL: url, Err: err}
		return BuildNewCustomError(remoteErr, constvars.StatusBadGateway, constvars.ErrClientRemoteCallFailed, fmt.Sprintf(constvars.ErrDevRemoteCall, method, url))
	}
	ErrRemoteStatus = func(method, url string, statusCode int) *CustomError {
		remoteErr := &RemoteCallError{Method: method, URL: url, StatusCode: statusCode}
		return BuildNewCustomError(remoteErr, constvars.StatusBadGateway, constvars.ErrClientRemoteCallFailed, fmt.Sprintf(constvars.ErrDevRemoteStatus, method, url, statusCode))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		remoteErr := &RemoteCallError{Err: err}
		return BuildNewCustomError(remoteErr, constvars.StatusBadGateway, constvars.ErrClientRemoteCallFailed, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBDocumentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientClinicNotFound, constvars.ErrDevDocumentNotFound)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisPushToList = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisRightPushToList)
	}
	ErrRedisPopList = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisPopList, redisKey))
	}
	ErrRedisExpire = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisExpire, redisKey))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
)

func authStatusCode(code string) int {
	switch code {
	case constvars.AuthCodeEmailAlreadyInUse:
		return constvars.StatusConflict
	case constvars.AuthCodeTooManyRequests:
		return constvars.StatusTooManyRequests
	case constvars.AuthCodeWeakPassword, constvars.AuthCodeInvalidEmail:
		return constvars.StatusBadRequest
	case constvars.AuthCodeEmailNotVerified, constvars.AuthCodeUserDisabled:
		return constvars.StatusForbidden
	case constvars.AuthCodeInternal:
		return constvars.StatusBadGateway
	default:
		return constvars.StatusUnauthorized
	}
}
