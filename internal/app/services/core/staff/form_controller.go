package staff

import (
	"context"
	"strings"
	"sync"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"
)

// SubmitFunc receives a copy of the form values once validation passed.
type SubmitFunc func(ctx context.Context, values map[string]string) error

type FormState struct {
	Open        bool
	Mode        contracts.FormMode
	Target      *models.Entity
	RoleField   string
	Values      map[string]string
	Errors      map[string]string
	ErrorFields []string
}

// FormController keeps the transient add/edit form of one dashboard session.
type FormController struct {
	mu         sync.Mutex
	generation uint64
	open       bool
	mode       contracts.FormMode
	target     *models.Entity
	roleField  string
	values     map[string]string
	errors     map[string]string
}

func NewFormController() *FormController {
	return &FormController{
		values: map[string]string{},
		errors: map[string]string{},
	}
}

// Open resets the form for mode. Edit mode pre-fills the fields from target,
// add mode starts empty.
func (f *FormController) Open(mode contracts.FormMode, target *models.Entity, roleField string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.open = true
	f.mode = mode
	f.roleField = roleField
	f.values = map[string]string{}
	f.errors = map[string]string{}
	f.target = nil

	if mode != contracts.FormModeEdit || target == nil {
		return
	}

	snapshot := *target
	f.target = &snapshot
	f.values[contracts.FieldName] = target.Name
	f.values[contracts.FieldEmail] = target.Email
	switch roleField {
	case contracts.FieldDomain:
		if target.Domain != nil {
			f.values[contracts.FieldDomain] = *target.Domain
		}
	case contracts.FieldRoomNumber:
		if target.RoomNumber != nil {
			f.values[contracts.FieldRoomNumber] = *target.RoomNumber
		}
	}
}

// SetField stores value and clears only that field's error, without revalidating.
func (f *FormController) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[name] = value
	delete(f.errors, name)
}

// Submit validates every required field and reports all violations at once.
// The callback runs only for a valid form, and the form resets and closes only
// when the callback succeeds.
func (f *FormController) Submit(ctx context.Context, submit SubmitFunc) (map[string]string, error) {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return nil, exceptions.ErrFormNotOpened()
	}

	fieldErrors, _ := validateForm(f.mode, f.roleField, f.values)
	if len(fieldErrors) > 0 {
		f.errors = copyValues(fieldErrors)
		f.mu.Unlock()
		return fieldErrors, exceptions.ErrFormValidation(fieldErrors)
	}

	generation := f.generation
	values := copyValues(f.values)
	f.mu.Unlock()

	err := submit(ctx, values)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	if generation == f.generation {
		f.resetLocked()
	}
	f.mu.Unlock()

	return nil, nil
}

func (f *FormController) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.resetLocked()
}

func (f *FormController) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, order := validateForm(f.mode, f.roleField, f.values)
	errorFields := make([]string, 0, len(f.errors))
	for _, field := range order {
		if _, ok := f.errors[field]; ok {
			errorFields = append(errorFields, field)
		}
	}

	var target *models.Entity
	if f.target != nil {
		snapshot := *f.target
		target = &snapshot
	}

	return FormState{
		Open:        f.open,
		Mode:        f.mode,
		Target:      target,
		RoleField:   f.roleField,
		Values:      copyValues(f.values),
		Errors:      copyValues(f.errors),
		ErrorFields: errorFields,
	}
}

func (f *FormController) resetLocked() {
	f.open = false
	f.target = nil
	f.values = map[string]string{}
	f.errors = map[string]string{}
}

// validateForm checks name, the role field, then email and password in add
// mode. It returns the violations and the order the fields were checked in.
func validateForm(mode contracts.FormMode, roleField string, values map[string]string) (map[string]string, []string) {
	fieldErrors := map[string]string{}
	order := []string{contracts.FieldName}

	if isBlank(values[contracts.FieldName]) {
		fieldErrors[contracts.FieldName] = constvars.FormErrorNameRequired
	}

	switch roleField {
	case contracts.FieldDomain:
		order = append(order, contracts.FieldDomain)
		if isBlank(values[contracts.FieldDomain]) {
			fieldErrors[contracts.FieldDomain] = constvars.FormErrorDomainRequired
		}
	case contracts.FieldRoomNumber:
		order = append(order, contracts.FieldRoomNumber)
		if isBlank(values[contracts.FieldRoomNumber]) {
			fieldErrors[contracts.FieldRoomNumber] = constvars.FormErrorRoomNumberRequired
		}
	}

	if mode == contracts.FormModeAdd {
		order = append(order, contracts.FieldEmail, contracts.FieldPassword)
		if isBlank(values[contracts.FieldEmail]) {
			fieldErrors[contracts.FieldEmail] = constvars.FormErrorEmailRequired
		}
		if isBlank(values[contracts.FieldPassword]) {
			fieldErrors[contracts.FieldPassword] = constvars.FormErrorPasswordRequired
		}
	}

	return fieldErrors, order
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func copyValues(values map[string]string) map[string]string {
	copied := make(map[string]string, len(values))
	for key, value := range values {
		copied[key] = value
	}
	return copied
}
