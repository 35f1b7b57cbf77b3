package utils

import (
	"errors"

	"clinic-dashboard-service/internal/app/contracts"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	_, err := uuid.Parse(param)
	if err != nil {
		return err
	}

	return nil
}

func validateRole(fl validator.FieldLevel) bool {
	_, err := contracts.ParseRole(fl.Field().String())
	return err == nil
}
