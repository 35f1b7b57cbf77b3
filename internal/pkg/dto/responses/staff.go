package responses

import "clinic-dashboard-service/internal/app/models"

type StaffView struct {
	ClinicID string          `json:"clinic_id"`
	Role     string          `json:"role"`
	RoleType string          `json:"role_type"`
	State    string          `json:"state"`
	Error    string          `json:"error,omitempty"`
	Columns  []string        `json:"columns"`
	Rows     []models.Entity `json:"rows"`

	// set when rows belong to an earlier selection
	RowsClinicID string `json:"rows_clinic_id,omitempty"`
	RowsRole     string `json:"rows_role,omitempty"`
}

type DeleteConfirmation struct {
	EntityID string `json:"entity_id"`
	Message  string `json:"message"`
}
