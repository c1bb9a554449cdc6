package dto

/* ==========================
   Login & token
========================== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	AccessToken         string       `json:"access_token"`
	RefreshToken        string       `json:"refresh_token"`
	ForcePasswordChange bool         `json:"force_password_change"`
	User                UserSnapshot `json:"user"`
}

// UserSnapshot: identitas ringkas yang ikut di respons login.
type UserSnapshot struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	ClubID   string `json:"club_id"`
	ClubName string `json:"club_name,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"omitempty"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

/* ==========================
   Register (club + admin pertama)
========================== */

type RegisterRequest struct {
	ClubName      string   `json:"club_name" validate:"required,min=2,max=100"`
	AdminEmail    string   `json:"admin_email" validate:"required,email"`
	AdminPassword string   `json:"admin_password" validate:"required,min=8"`
	BaseFee       *float64 `json:"base_fee" validate:"omitempty,gte=0"`
}

/* ==========================
   Password
========================== */

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
