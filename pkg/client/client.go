package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Options configures the API client.
type Options struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// Client is a typed wrapper over the inventory API. All methods take a
// context and speak the package's own wire types, so external consumers can
// import it without reaching into the server's internals.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: base,
		token:   opts.Token,
		httpc:   httpc,
	}, nil
}

// SetToken swaps the bearer credential used on subsequent calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ListEquipment fetches the whole inventory.
func (c *Client) ListEquipment(ctx context.Context) ([]Equipment, error) {
	var out []Equipment
	err := c.do(ctx, http.MethodGet, "/api/v1/equipment", nil, nil, &out)
	return out, err
}

// GetEquipment fetches one asset by business key.
func (c *Client) GetEquipment(ctx context.Context, equipmentID string) (Equipment, error) {
	var out Equipment
	err := c.do(ctx, http.MethodGet, "/api/v1/equipment", url.Values{"equipment_id": {equipmentID}}, nil, &out)
	return out, err
}

// CreateEquipment registers a new asset.
func (c *Client) CreateEquipment(ctx context.Context, input CreateEquipmentInput) (Equipment, error) {
	var out Equipment
	err := c.do(ctx, http.MethodPost, "/api/v1/equipment", nil, input, &out)
	return out, err
}

// UpdateEquipment patches one asset by business key.
func (c *Client) UpdateEquipment(ctx context.Context, equipmentID string, input UpdateEquipmentInput) (Equipment, error) {
	var out Equipment
	err := c.do(ctx, http.MethodPut, "/api/v1/equipment", url.Values{"equipment_id": {equipmentID}}, input, &out)
	return out, err
}

// DeleteEquipment removes one asset by business key.
func (c *Client) DeleteEquipment(ctx context.Context, equipmentID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/equipment", url.Values{"equipment_id": {equipmentID}}, nil, nil)
}

// ListScanLogs fetches the scan audit trail.
func (c *Client) ListScanLogs(ctx context.Context) ([]ScanLog, error) {
	var out []ScanLog
	err := c.do(ctx, http.MethodGet, "/api/v1/scan-logs", nil, nil, &out)
	return out, err
}

// CreateScanLog records one scan event.
func (c *Client) CreateScanLog(ctx context.Context, input CreateScanLogInput) (ScanLog, error) {
	var out ScanLog
	err := c.do(ctx, http.MethodPost, "/api/v1/scan-logs", nil, input, &out)
	return out, err
}

// Login exchanges the console credential for a token and keeps it as the
// client's bearer credential.
func (c *Client) Login(ctx context.Context, email, password string) (Token, error) {
	var out Token
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, loginInput{Email: email, Password: password}, &out)
	if err != nil {
		return Token{}, err
	}
	c.token = out.AccessToken
	return out, nil
}

// Logout revokes the current console session and drops the credential.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		var body struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(raw, &body); jsonErr == nil && body.Error != "" {
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
