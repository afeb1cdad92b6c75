package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CredentialsRequest is the body of both POST /api/auth/register and
// POST /api/auth/login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r CredentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 100).Error("username must be 1-100 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(1, 128).Error("password must be 1-128 characters"),
		),
	)
}

// TokenResponse is the login success body.
type TokenResponse struct {
	Token string `json:"token"`
}
