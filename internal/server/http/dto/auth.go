package dto

// AuthRequest describes registration and login payload. Role is only used
// by registration and must be farmer or consumer.
type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}
