package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a thin wrapper around resty.Client preconfigured for the
// JSON API. It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080/api/v1")
//	resp, err := client.R().SetBody(body).Post("/users")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client rooted at baseURL that sends
// and accepts JSON.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)
	return &HTTPClient{Client: client}
}
