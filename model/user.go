package model

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type LoginInput struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required,min=8" json:"password"`
}

type RegisterInput struct {
	Name                 string `validate:"required,min=2" json:"name"`
	Email                string `validate:"required,email" json:"email"`
	Password             string `validate:"required,min=8" json:"password"`
	PasswordConfirmation string `validate:"required" json:"password_confirmation"`
}
