package registry

import (
	"fmt"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/pkg/exceptions"
)

// Descriptor binds one role to the remote operations that manage its records.
type Descriptor struct {
	Role               contracts.Role
	ResourcePath       string
	RequiresCredential bool
	Operations         contracts.EntityOperations
}

func (d Descriptor) Label() string {
	return d.Role.Label()
}

func (d Descriptor) TypeTag() string {
	return d.Role.Type()
}

func (d Descriptor) RoleField() string {
	return d.Role.RequiredField()
}

// Registry is the immutable role table built once at startup.
type Registry struct {
	order       []contracts.Role
	descriptors map[contracts.Role]Descriptor
}

func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	registry := &Registry{
		order:       make([]contracts.Role, 0, len(descriptors)),
		descriptors: make(map[contracts.Role]Descriptor, len(descriptors)),
	}

	for _, descriptor := range descriptors {
		if descriptor.Role.Type() == "" {
			return nil, exceptions.ErrUnknownRole(descriptor.Role.String())
		}
		if _, exists := registry.descriptors[descriptor.Role]; exists {
			return nil, exceptions.ErrDuplicateRole(descriptor.Label())
		}
		if descriptor.Operations == nil {
			return nil, exceptions.ErrMissingOperations(descriptor.Label())
		}
		if descriptor.ResourcePath == "" {
			descriptor.ResourcePath = descriptor.Role.ResourcePath()
		}

		registry.order = append(registry.order, descriptor.Role)
		registry.descriptors[descriptor.Role] = descriptor
	}

	return registry, nil
}

// MustNewRegistry builds the table and panics unless every known role resolves.
func MustNewRegistry(descriptors ...Descriptor) *Registry {
	registry, err := NewRegistry(descriptors...)
	if err != nil {
		panic(fmt.Sprintf("failed to build entity registry: %v", err))
	}

	for _, role := range contracts.AllRoles() {
		registry.MustResolve(role)
	}

	return registry
}

func (r *Registry) Resolve(role contracts.Role) (Descriptor, error) {
	descriptor, ok := r.descriptors[role]
	if !ok {
		return Descriptor{}, exceptions.ErrUnknownRole(role.String())
	}
	return descriptor, nil
}

func (r *Registry) MustResolve(role contracts.Role) Descriptor {
	descriptor, err := r.Resolve(role)
	if err != nil {
		panic(fmt.Sprintf("entity registry: %v", err))
	}
	return descriptor
}

// Roles returns the registered roles in declaration order.
func (r *Registry) Roles() []contracts.Role {
	roles := make([]contracts.Role, len(r.order))
	copy(roles, r.order)
	return roles
}
