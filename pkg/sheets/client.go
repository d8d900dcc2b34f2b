// Package sheets wraps the Google Sheets API for the spreadsheet-backed CRM.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client wraps the Google Sheets API service for one spreadsheet.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
}

// NewClientFromCredentialsFile creates a Sheets client from a Service Account
// JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, spreadsheetID string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, spreadsheetID)
}

// NewClientFromCredentialsJSON creates a Sheets client from raw Service
// Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc, spreadsheetID: spreadsheetID}, nil
}

// NewClientFromHTTP creates a Sheets client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, spreadsheetID string) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc, spreadsheetID: spreadsheetID}, nil
}

// ReadRange returns the values of an A1-notation range.
func (c *Client) ReadRange(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return resp.Values, nil
}

// AppendRow appends one row to the given sheet range.
func (c *Client) AppendRow(ctx context.Context, appendRange string, row []interface{}) error {
	body := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, appendRange, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append row to %s: %w", appendRange, err)
	}
	return nil
}

// UpdateRow overwrites the values of an A1-notation range with one row.
func (c *Client) UpdateRow(ctx context.Context, updateRange string, row []interface{}) error {
	body := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err := c.service.Spreadsheets.Values.
		Update(c.spreadsheetID, updateRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", updateRange, err)
	}
	return nil
}
