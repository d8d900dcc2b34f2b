package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultAPIURL = "https://api.twilio.com/2010-04-01"

// Client is the Twilio Messages API client.
type Client struct {
	accountSID string
	authToken  string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Twilio client with the given credentials.
func NewClient(accountSID, authToken string) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Twilio API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SendMessage sends an outbound message. WhatsApp destinations use the
// "whatsapp:+..." address form.
func (c *Client) SendMessage(ctx context.Context, from, to, body string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.apiURL, c.accountSID)

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio: failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("twilio: failed to decode response: %w", err)
	}
	if result.ErrorCode != nil {
		return fmt.Errorf("twilio: message %s failed with code %d: %s", result.SID, *result.ErrorCode, result.ErrorMessage)
	}

	return nil
}
