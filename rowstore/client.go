package rowstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client posts the RPC to the Apps Script deployment. The endpoint
// only accepts text/plain bodies (a CORS workaround on the script
// side), the payload is still JSON.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{},
	}
}

func (c *Client) call(ctx context.Context, req Request) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("row store %s %s: status %d", req.Action, req.Sheet, resp.StatusCode)
	}
	return raw, nil
}

func (c *Client) Get(ctx context.Context, sheet string) ([][]interface{}, error) {
	raw, err := c.call(ctx, Request{Action: "get", Sheet: sheet})
	if err != nil {
		return nil, err
	}
	var rows [][]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("row store get %s: %w", sheet, err)
	}
	return rows, nil
}

func (c *Client) Add(ctx context.Context, sheet string, row []interface{}) error {
	// The ack body is implementation defined, success is the 2xx.
	_, err := c.call(ctx, Request{Action: "add", Sheet: sheet, Row: row})
	return err
}

func (c *Client) Update(ctx context.Context, sheet string, rowIndex int, row []interface{}) error {
	_, err := c.call(ctx, Request{Action: "update", Sheet: sheet, RowIndex: rowIndex, Row: row})
	return err
}

func (c *Client) Delete(ctx context.Context, sheet string, rowIndex int) error {
	_, err := c.call(ctx, Request{Action: "delete", Sheet: sheet, RowIndex: rowIndex})
	return err
}

func (c *Client) Login(ctx context.Context, email, password string) (bool, error) {
	raw, err := c.call(ctx, Request{Action: "login", Email: email, Password: password})
	if err != nil {
		return false, err
	}
	var out struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return false, fmt.Errorf("row store login: %w", err)
	}
	return out.Success, nil
}

func (c *Client) UpdatePassword(ctx context.Context, email, newPassword string) error {
	_, err := c.call(ctx, Request{Action: "updatePassword", Email: email, NewPassword: newPassword})
	return err
}
