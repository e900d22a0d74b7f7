package dto

// LoginRequest identifies a user by email. Password is optional for
// compatibility with the legacy email-only login; when present it is
// verified against the stored bcrypt hash.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// LoginResponse carries the signed bearer token plus the user record.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
