package models

// Token is the backend's login response: a signed JWT plus its metadata.
type Token struct {
	// AccessToken is the compact JWS string to present as
	// "Authorization: Bearer <AccessToken>" on protected routes.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds at issue time.
	ExpiresIn int64 `json:"expires_in"`
}
