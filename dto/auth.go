package dto

// LoginRequest carries the admin panel password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful login. The token is a pure
// function of the configured secret, so nothing is persisted server-side
// and the token stays valid until the secret is rotated.
type AuthResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
