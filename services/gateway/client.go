package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"guestevents/models"

	"go.uber.org/zap"
)

// HTTPGateway talks to the catalog host over JSON POST requests.
type HTTPGateway struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.Logger
}

// NewHTTPGateway returns a gateway for baseURL. A zero timeout leaves
// requests unbounded.
func NewHTTPGateway(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPGateway{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

// RequestOTP asks the server to send a code to mobile. Any 2xx is success.
func (g *HTTPGateway) RequestOTP(ctx context.Context, mobile string) error {
	const op = "RequestOTP"
	status, _, err := g.post(ctx, PathSendOTP, models.SendOTPRequest{Mobile: mobile})
	if err != nil {
		return newError(op, ErrOTPRequestFailed, status, err)
	}
	return nil
}

// VerifyOTP checks code for mobile. Any 2xx is success; the body is ignored.
func (g *HTTPGateway) VerifyOTP(ctx context.Context, mobile, code string) error {
	const op = "VerifyOTP"
	status, _, err := g.post(ctx, PathVerifyOTP, models.VerifyOTPRequest{Mobile: mobile, OTP: code})
	if err != nil {
		return newError(op, ErrOTPInvalid, status, err)
	}
	return nil
}

// ListUpcomingEvents returns the Data array of the listing envelope in
// server order.
func (g *HTTPGateway) ListUpcomingEvents(ctx context.Context) ([]models.EventSummary, error) {
	const op = "ListUpcomingEvents"
	status, body, err := g.post(ctx, PathUpcoming, struct{}{})
	if err != nil {
		return nil, newError(op, ErrListUnavailable, status, err)
	}

	var env struct {
		Data *[]models.EventSummary `json:"Data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, newError(op, ErrListUnavailable, status, fmt.Errorf("decode envelope: %w", err))
	}
	if env.Data == nil {
		return nil, newError(op, ErrListUnavailable, status, fmt.Errorf("no events found in the response"))
	}
	return *env.Data, nil
}

// FetchEventDetail returns the first element of the detail envelope.
func (g *HTTPGateway) FetchEventDetail(ctx context.Context, eventID string) (*models.EventDetail, error) {
	const op = "FetchEventDetail"
	status, body, err := g.post(ctx, PathEventDetail, models.EventDetailRequest{EventUUID: eventID})
	if err != nil {
		return nil, newError(op, ErrDetailUnavailable, status, err)
	}

	var env models.Envelope[models.EventDetail]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, newError(op, ErrDetailUnavailable, status, fmt.Errorf("decode envelope: %w", err))
	}
	if len(env.Data) == 0 {
		return nil, newError(op, ErrDetailUnavailable, status, fmt.Errorf("no event details found for %q", eventID))
	}
	detail := env.Data[0]
	return &detail, nil
}

// post sends payload as JSON to path and returns the status and body of a
// 2xx response. Non-2xx responses are returned as errors with their status.
func (g *HTTPGateway) post(ctx context.Context, path string, payload any) (int, []byte, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+path, bytes.NewReader(buf))
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.Client.Do(req)
	if err != nil {
		g.Logger.Debug("gateway request failed", zap.String("path", path), zap.Error(err))
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	g.Logger.Debug("gateway request",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, body, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.StatusCode, body, nil
}
