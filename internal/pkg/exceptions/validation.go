package exceptions

import (
	"strings"

	"clinic-dashboard-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	return strings.ToLower(firstErr.Field()) + " " + formatTag(firstErr.Tag(), firstErr.Param())
}

func formatTag(tag, param string) string {
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		customMessage = strings.Replace(customMessage, "%s", param, 1)
	}
	return customMessage
}
