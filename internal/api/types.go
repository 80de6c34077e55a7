// Package api defines wire types shared across HTTP handlers.
package api

// ErrorResponse is the common error body returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field detail for rejected input.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
