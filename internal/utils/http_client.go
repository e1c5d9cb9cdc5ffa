package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000")
//	resp, err := client.R().SetAuthToken(token).Get("/auth/me")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client that sends and accepts JSON against baseURL.
// Each call returns an independent client instance.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
