package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type clientImpl struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		apiKey:     cfg.APIKey,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}
}

// CreateResponse sends a model invocation to the Responses API.
func (c *clientImpl) CreateResponse(ctx context.Context, req *Request) (*Response, error) {
	url := fmt.Sprintf("%s/responses", c.apiURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	if result.Error != nil {
		return nil, fmt.Errorf("openai: response error %s: %s", result.Error.Code, result.Error.Message)
	}

	return &result, nil
}
