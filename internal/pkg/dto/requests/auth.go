package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PasswordReset struct {
	Email string `json:"email" validate:"required,email"`
}
