package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"haircare-web/models"
	"haircare-web/pkg/logging"
)

const defaultTimeout = 20 * time.Second

// ErrUnauthorized is returned when the backend rejects the bearer credential.
var ErrUnauthorized = errors.New("backend: unauthorized")

// APIError is a non-2xx backend response with its payload message, when one
// could be extracted.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend: status %d", e.StatusCode)
}

// Client is a typed HTTP client for the remote salon REST API. The gateway
// never persists anything itself; every read and write goes through here.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

// New creates a backend client for the given API origin.
func New(baseURL string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("backend: login returned no token")
	}
	return out.Token, nil
}

// Register creates an account and returns the bearer token for it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", req, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// ListServices fetches the full service catalog.
func (c *Client) ListServices(ctx context.Context, token string) ([]models.Service, error) {
	var out []models.Service
	if err := c.do(ctx, http.MethodGet, "/api/service", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateService adds a catalog entry. Admin only; the backend re-checks.
func (c *Client) CreateService(ctx context.Context, token string, req CreateServiceRequest) error {
	return c.do(ctx, http.MethodPost, "/api/service", token, req, nil)
}

// UpdateService edits a catalog entry.
func (c *Client) UpdateService(ctx context.Context, token, serviceID string, req UpdateServiceRequest) error {
	return c.do(ctx, http.MethodPut, "/api/service/"+serviceID, token, req, nil)
}

// DeleteService removes a catalog entry.
func (c *Client) DeleteService(ctx context.Context, token, serviceID string) error {
	return c.do(ctx, http.MethodDelete, "/api/service/"+serviceID, token, nil, nil)
}

// GetCart fetches the caller's server-held cart.
func (c *Client) GetCart(ctx context.Context, token string) ([]models.CartLine, error) {
	var out []models.CartLine
	if err := c.do(ctx, http.MethodGet, "/api/cart", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddToCart adds a service with the given quantity.
func (c *Client) AddToCart(ctx context.Context, token, serviceID string, quantity int) error {
	return c.do(ctx, http.MethodPost, "/api/cart", token, cartMutationRequest{ServiceID: serviceID, Quantity: quantity}, nil)
}

// EditCartQuantity overwrites the quantity of an existing line, keyed by
// service identity.
func (c *Client) EditCartQuantity(ctx context.Context, token, serviceID string, quantity int) error {
	return c.do(ctx, http.MethodPut, "/api/cart/edit", token, cartMutationRequest{ServiceID: serviceID, Quantity: quantity}, nil)
}

// RemoveFromCart deletes one line, keyed by service identity.
func (c *Client) RemoveFromCart(ctx context.Context, token, serviceID string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart", token, cartMutationRequest{ServiceID: serviceID}, nil)
}

// ClearCart deletes every line of the caller's cart.
func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart", token, nil, nil)
}

// ResolveLocality translates a postal code pair into an address and a
// travel fee.
func (c *Client) ResolveLocality(ctx context.Context, token, prefix, suffix string) (*FeeQuote, error) {
	var out localityResponse
	err := c.do(ctx, http.MethodPost, "/api/cart/localidade", token,
		localityRequest{PostalCodePrefix: prefix, PostalCodeSuffix: suffix}, &out)
	if err != nil {
		return nil, err
	}
	return &FeeQuote{Location: out.Location, Fee: out.Fee.Decimal}, nil
}

// ListAppointments fetches all appointments visible to the caller.
func (c *Client) ListAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/api/appointment", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppointment submits a draft booking.
func (c *Client) CreateAppointment(ctx context.Context, token string, draft models.AppointmentDraft) error {
	return c.do(ctx, http.MethodPost, "/api/appointment", token, draft, nil)
}

// AppointmentAction posts an accept or reject for an appointment id.
func (c *Client) AppointmentAction(ctx context.Context, token, appointmentID, action string) error {
	return c.do(ctx, http.MethodPost, "/api/appointments/"+action+"/"+appointmentID, token, struct{}{}, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend: create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("backend error",
			"method", method,
			"path", path,
			"status", resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("backend: unmarshal response: %w", err)
		}
	}
	return nil
}

// extractMessage pulls a human-readable message out of an error payload.
func extractMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		msg := string(body)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		return msg
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
