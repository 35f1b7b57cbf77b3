package requests

// StaffForm carries the add/edit form fields as typed by the user.
type StaffForm struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Domain     *string `json:"domain"`
	RoomNumber *string `json:"room_number"`
}

// StaffPath identifies the collection a staff request works on.
type StaffPath struct {
	ClinicID string `validate:"required"`
	Role     string `validate:"required,role"`
}
