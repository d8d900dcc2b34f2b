package openai

import (
	"context"
	"errors"
	"net/http"
)

// IClient defines the interface for the OpenAI Responses API client.
// Implementations are safe for concurrent use.
type IClient interface {
	// CreateResponse sends a model invocation to the Responses API.
	CreateResponse(ctx context.Context, req *Request) (*Response, error)
}

// Config holds client configuration.
type Config struct {
	APIKey     string
	APIURL     string
	HTTPClient *http.Client
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("openai: api key is required")
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// New creates a new OpenAI client with the given configuration.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
