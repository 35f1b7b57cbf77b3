package models

// Entity is a staff record (doctor, nurse, moderator or admin) of one clinic.
type Entity struct {
	ID         string  `json:"id,omitempty"`
	ClinicID   string  `json:"clinicId,omitempty"`
	Name       string  `json:"name,omitempty"`
	Email      string  `json:"email,omitempty"`
	Domain     *string `json:"domain,omitempty"`
	RoomNumber *string `json:"roomNumber,omitempty"`
}

func (e Entity) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Email
}

// MergeEntity lays the fields present in patch over prior. Empty strings and
// nil pointers in patch count as absent.
func MergeEntity(prior, patch Entity) Entity {
	merged := prior
	if patch.ID != "" {
		merged.ID = patch.ID
	}
	if patch.ClinicID != "" {
		merged.ClinicID = patch.ClinicID
	}
	if patch.Name != "" {
		merged.Name = patch.Name
	}
	if patch.Email != "" {
		merged.Email = patch.Email
	}
	if patch.Domain != nil {
		merged.Domain = patch.Domain
	}
	if patch.RoomNumber != nil {
		merged.RoomNumber = patch.RoomNumber
	}
	return merged
}
