package dto

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse confirms a registration. No token is issued here.
type RegisterResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// LoginRequest payload for login. Form-encoded, following the OAuth2
// password-grant field names.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// TokenResponse is the OAuth2-style login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
