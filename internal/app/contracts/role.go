package contracts

import (
	"fmt"
	"strings"
)

// Role selects which backend endpoints and form fields apply to a staff record.
type Role int

const (
	RoleProvider Role = iota + 1
	RoleStaff
	RoleModerator
	RoleAdmin
)

const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldDomain     = "domain"
	FieldRoomNumber = "room_number"
)

func AllRoles() []Role {
	return []Role{RoleProvider, RoleStaff, RoleModerator, RoleAdmin}
}

func (r Role) Label() string {
	switch r {
	case RoleProvider:
		return "Provider"
	case RoleStaff:
		return "Staff"
	case RoleModerator:
		return "Moderator"
	case RoleAdmin:
		return "Admin"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Type is the machine tag the backend uses for the role.
func (r Role) Type() string {
	switch r {
	case RoleProvider:
		return "doctor"
	case RoleStaff:
		return "nurse"
	case RoleModerator:
		return "moderator"
	case RoleAdmin:
		return "admin"
	default:
		return ""
	}
}

// ResourcePath is the backend collection for the role.
func (r Role) ResourcePath() string {
	switch r {
	case RoleProvider:
		return "doctors"
	case RoleStaff:
		return "nurses"
	case RoleModerator:
		return "moderators"
	case RoleAdmin:
		return "admins"
	default:
		return ""
	}
}

// RequiredField is the role specific form field, empty when the role has none.
func (r Role) RequiredField() string {
	switch r {
	case RoleProvider:
		return FieldDomain
	case RoleStaff:
		return FieldRoomNumber
	default:
		return ""
	}
}

func (r Role) String() string {
	return r.Label()
}

// ParseRole accepts either the label ("Provider") or the type tag ("doctor").
func ParseRole(value string) (Role, error) {
	value = strings.TrimSpace(value)
	for _, role := range AllRoles() {
		if strings.EqualFold(value, role.Label()) || strings.EqualFold(value, role.Type()) {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", value)
}

type FormMode string

const (
	FormModeAdd  FormMode = "add"
	FormModeEdit FormMode = "edit"
)
