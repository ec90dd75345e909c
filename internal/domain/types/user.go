package types

import "time"

// User is the account profile returned by the backend. Beyond the identity
// fields the client treats it as display data and does not validate it.
type User struct {
	ID          UserID     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	CompanyName string     `json:"company_name,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at,omitzero"`
	UpdatedAt   time.Time  `json:"updated_at,omitzero"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// Registration is the payload for creating an account.
type Registration struct {
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	CompanyName     string `json:"company_name,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ProfileUpdate carries the fields of a partial profile update; empty fields
// are left untouched by the backend.
type ProfileUpdate struct {
	FullName    string `json:"full_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// PasswordChange is the payload for the change-password endpoint.
type PasswordChange struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}
