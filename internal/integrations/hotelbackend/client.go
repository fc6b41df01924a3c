package hotelbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
)

// Client is the HTTP client for the hotel booking backend. The backend owns
// all reservation state; the client never retries mutating calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsCollector
}

// NewClient creates a backend client. metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsCollector) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// SearchHotels queries availability. Results come back cheapest-first.
func (c *Client) SearchHotels(ctx context.Context, req SearchRequest) ([]HotelResult, error) {
	var results []HotelResult
	if err := c.postJSON(ctx, "search_hotels", "/api/hotels/search", req, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// CreateReservation registers a new reservation and returns it as the backend
// materialized it (code, derived guest data, price detail, status).
func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := c.postJSON(ctx, "create_reservation", "/api/reservations", req, &reservation); err != nil {
		return nil, err
	}
	c.log.Info("Reservation created: code=%s hotel=%s status=%s",
		reservation.ConfirmationCode, reservation.Hotel, reservation.Status)
	return &reservation, nil
}

// SearchReservation looks a reservation up by confirmation code and contact
// email. A miss is a BusinessError with the backend's 404 message.
func (c *Client) SearchReservation(ctx context.Context, req SearchReservationRequest) (*domain.Reservation, error) {
	var envelope reservationEnvelope
	if err := c.postJSON(ctx, "search_reservation", "/api/reservations/search", req, &envelope); err != nil {
		return nil, err
	}
	if envelope.Reservation == nil {
		return nil, fmt.Errorf("%w: missing reservation payload", ErrInvalidResponse)
	}
	return envelope.Reservation, nil
}

// PricePreview recomputes the price for tentative stay parameters without
// touching the reservation.
func (c *Client) PricePreview(ctx context.Context, req PricePreviewRequest) (*PricePreviewResponse, error) {
	var resp PricePreviewResponse
	if err := c.postJSON(ctx, "price_preview", "/api/price-preview", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Pay settles a pending reservation and returns the updated one.
func (c *Client) Pay(ctx context.Context, req PayRequest) (*domain.Reservation, error) {
	path := fmt.Sprintf("/api/reservations/%s/pay", url.PathEscape(req.ConfirmationCode))
	var envelope reservationEnvelope
	if err := c.postJSON(ctx, "pay_reservation", path, req, &envelope); err != nil {
		return nil, err
	}
	if envelope.Reservation == nil {
		return nil, fmt.Errorf("%w: missing reservation payload", ErrInvalidResponse)
	}
	c.log.Info("Reservation paid: code=%s status=%s", req.ConfirmationCode, envelope.Reservation.Status)
	return envelope.Reservation, nil
}

// Modify changes stay parameters, or previews the price delta when
// req.PreviewOnly is set.
func (c *Client) Modify(ctx context.Context, req ModifyRequest) (*ModifyResponse, error) {
	path := fmt.Sprintf("/api/reservations/%s", url.PathEscape(req.ConfirmationCode))
	var resp ModifyResponse
	if err := c.doJSON(ctx, http.MethodPut, "modify_reservation", path, req, &resp); err != nil {
		return nil, err
	}
	if req.PreviewOnly && resp.Preview == nil {
		return nil, fmt.Errorf("%w: missing preview payload", ErrInvalidResponse)
	}
	if !req.PreviewOnly && resp.Reservation == nil {
		return nil, fmt.Errorf("%w: missing reservation payload", ErrInvalidResponse)
	}
	return &resp, nil
}

// Cancel cancels a reservation and returns the backend's refund decision.
func (c *Client) Cancel(ctx context.Context, confirmationCode string) (*CancelResponse, error) {
	path := fmt.Sprintf("/api/reservations/%s/cancel", url.PathEscape(confirmationCode))
	var resp CancelResponse
	if err := c.postJSON(ctx, "cancel_reservation", path, cancelRequest{ConfirmationCode: confirmationCode}, &resp); err != nil {
		return nil, err
	}
	if resp.Reservation == nil {
		return nil, fmt.Errorf("%w: missing reservation payload", ErrInvalidResponse)
	}
	c.log.Info("Reservation cancelled: code=%s", confirmationCode)
	return &resp, nil
}

// Checkin registers the guest's arrival for a confirmed reservation.
func (c *Client) Checkin(ctx context.Context, confirmationCode string) (*CheckinResult, error) {
	var result CheckinResult
	if err := c.postJSON(ctx, "checkin", "/api/checkin", receptionRequest{ConfirmationCode: confirmationCode}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Checkout finishes an occupied stay and returns the real checkout timestamp.
func (c *Client) Checkout(ctx context.Context, confirmationCode string) (*CheckoutResult, error) {
	var result CheckoutResult
	if err := c.postJSON(ctx, "checkout", "/api/checkout", receptionRequest{ConfirmationCode: confirmationCode}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) postJSON(ctx context.Context, operation, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, operation, path, body, out)
}

// doJSON executes one backend call: JSON in, JSON out, with status-code
// classification. 4xx answers become BusinessError with the backend's own
// messages; transport failures and 5xx become ErrUnavailable.
func (c *Client) doJSON(ctx context.Context, method, operation, path string, body, out interface{}) error {
	start := time.Now()
	err := c.execute(ctx, method, path, body, out)
	c.observe(operation, start, err)
	return err
}

func (c *Client) execute(ctx context.Context, method, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Seguimos con el decode
	case resp.StatusCode >= http.StatusInternalServerError:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	case resp.StatusCode >= http.StatusBadRequest:
		return c.businessError(resp)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) businessError(resp *http.Response) error {
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: undecodable %d body: %v", ErrInvalidResponse, resp.StatusCode, err)
	}
	messages := body.messages()
	if len(messages) == 0 {
		return fmt.Errorf("%w: empty %d body", ErrInvalidResponse, resp.StatusCode)
	}
	return &BusinessError{StatusCode: resp.StatusCode, Messages: messages}
}

func (c *Client) observe(operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "success"
	switch {
	case err == nil:
	case errors.Is(err, ErrBusiness):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	c.metrics.ObserveBackendCall(operation, outcome, time.Since(start).Seconds())
}
