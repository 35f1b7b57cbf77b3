package requests

type CreateClinic struct {
	Name    string `json:"name" validate:"required,max=120"`
	Address string `json:"address" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=32"`
	CEOID   string `json:"ceo_id"`
}

type UpdateClinic struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=120"`
	Address *string `json:"address" validate:"omitempty,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=32"`
	CEOID   *string `json:"ceo_id"`
}
