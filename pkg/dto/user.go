package dto

// UserRead is the auth response shape. Token is present after login and
// register; password-reset endpoints return the bare profile.
type UserRead struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}

// LoginWrite is the JSON login body.
type LoginWrite struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterWrite is validated client-side, then sent as multipart text
// fields (Name, Email, Password, ConfirmPassword) — the one endpoint that
// is not JSON.
type RegisterWrite struct {
	Name            string `validate:"required,min=2,max=100"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// SendCodeWrite requests a password-reset code by email.
type SendCodeWrite struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordWrite submits the emailed code with the new password.
type ResetPasswordWrite struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
