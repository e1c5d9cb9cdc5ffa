package models

// Response is the uniform JSON envelope returned by every endpoint.
//
// Success responses carry Data. Failures carry Message, which is a string for
// single-message failures and a list of strings for validation failures, in
// which case Error is set to "Bad Request".
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message any    `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NotFoundResponse is the failure envelope for missing resources. Data is
// always serialized, as null.
type NotFoundResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// AccessToken is the payload returned by a successful login.
type AccessToken struct {
	AccessToken string `json:"access_token"`
}
