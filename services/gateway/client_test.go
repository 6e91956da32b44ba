package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// recordedRequest captures what the gateway sent.
type recordedRequest struct {
	Path        string
	Method      string
	ContentType string
	Body        map[string]any
}

type requestLog struct {
	mu   sync.Mutex
	reqs []recordedRequest
}

func (l *requestLog) all() []recordedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]recordedRequest(nil), l.reqs...)
}

func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *requestLog) {
	t.Helper()
	seen := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body := map[string]any{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Errorf("request body is not a JSON object: %s", raw)
			}
		}
		seen.mu.Lock()
		seen.reqs = append(seen.reqs, recordedRequest{
			Path:        r.URL.Path,
			Method:      r.Method,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		seen.mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func TestRequestOTPSendsMobile(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `whatever`)
	gw := NewHTTPGateway(srv.URL+"/", 0, nil)

	if err := gw.RequestOTP(context.Background(), "9999999999"); err != nil {
		t.Fatalf("RequestOTP: %v", err)
	}
	if len(seen.all()) != 1 {
		t.Fatalf("requests = %d, want 1", len(seen.all()))
	}
	got := seen.all()[0]
	if got.Path != PathSendOTP || got.Method != http.MethodPost {
		t.Fatalf("sent %s %s", got.Method, got.Path)
	}
	if got.ContentType != "application/json" {
		t.Fatalf("Content-Type = %q", got.ContentType)
	}
	if got.Body["mobile"] != "9999999999" {
		t.Fatalf("body = %v", got.Body)
	}
}

func TestRequestOTPFailure(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	gw := NewHTTPGateway(srv.URL, 0, nil)

	err := gw.RequestOTP(context.Background(), "9999999999")
	if !errors.Is(err, ErrOTPRequestFailed) {
		t.Fatalf("err = %v, want ErrOTPRequestFailed", err)
	}
	var gwErr *Error
	if !errors.As(err, &gwErr) || gwErr.Status != http.StatusInternalServerError {
		t.Fatalf("err = %#v, want *Error with status 500", err)
	}
}

func TestVerifyOTPSendsFieldNames(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusNoContent, ``)
	gw := NewHTTPGateway(srv.URL, 0, nil)

	if err := gw.VerifyOTP(context.Background(), "9999999999", "1234"); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	got := seen.all()[0]
	if got.Path != PathVerifyOTP {
		t.Fatalf("path = %q", got.Path)
	}
	if got.Body["mobile"] != "9999999999" || got.Body["Otp"] != "1234" {
		t.Fatalf("body = %v", got.Body)
	}
}

func TestVerifyOTPRejected(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusUnauthorized, `{"error":"OTP does not match"}`)
	gw := NewHTTPGateway(srv.URL, 0, nil)

	err := gw.VerifyOTP(context.Background(), "9999999999", "0000")
	if !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("err = %v, want ErrOTPInvalid", err)
	}
	if errors.Is(err, ErrOTPRequestFailed) {
		t.Fatalf("verify failure must not match the send failure kind")
	}
}

func TestListUpcomingEvents(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `{"Data":[
		{"EventUUID":"e2","EventName":"Zeta","EventOrganizer":"Org B","EventCity":"Delhi"},
		{"EventUUID":"e1","EventName":"Gala","EventOrganizer":"Org A","EventCity":"Pune"}
	]}`)
	gw := NewHTTPGateway(srv.URL, 0, nil)

	events, err := gw.ListUpcomingEvents(context.Background())
	if err != nil {
		t.Fatalf("ListUpcomingEvents: %v", err)
	}
	if seen.all()[0].Path != PathUpcoming || len(seen.all()[0].Body) != 0 {
		t.Fatalf("sent %s %v, want empty object body", seen.all()[0].Path, seen.all()[0].Body)
	}
	if len(events) != 2 || events[0].ID != "e2" || events[1].ID != "e1" {
		t.Fatalf("events = %+v, want server order", events)
	}
	if events[1].Organizer != "Org A" || events[1].City != "Pune" {
		t.Fatalf("events[1] = %+v", events[1])
	}
}

func TestListUpcomingEventsEnvelopeCases(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
		wantLen int
	}{
		{"empty list", http.StatusOK, `{"Data":[]}`, false, 0},
		{"missing data", http.StatusOK, `{"message":"nothing"}`, true, 0},
		{"null data", http.StatusOK, `{"Data":null}`, true, 0},
		{"bad json", http.StatusOK, `<html>`, true, 0},
		{"server error", http.StatusBadGateway, `{}`, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			gw := NewHTTPGateway(srv.URL, 0, nil)
			events, err := gw.ListUpcomingEvents(context.Background())
			if tt.wantErr {
				if !errors.Is(err, ErrListUnavailable) {
					t.Fatalf("err = %v, want ErrListUnavailable", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(events) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(events), tt.wantLen)
			}
		})
	}
}

func TestFetchEventDetailUsesFirstElement(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `{"Data":[
		{"EventUUID":"e1","EventName":"Gala","EventVenue":""},
		{"EventUUID":"e1","EventName":"Ignored"}
	]}`)
	gw := NewHTTPGateway(srv.URL, 0, nil)

	detail, err := gw.FetchEventDetail(context.Background(), "e1")
	if err != nil {
		t.Fatalf("FetchEventDetail: %v", err)
	}
	if seen.all()[0].Path != PathEventDetail || seen.all()[0].Body["EventUUID"] != "e1" {
		t.Fatalf("sent %s %v", seen.all()[0].Path, seen.all()[0].Body)
	}
	if detail.Name != "Gala" {
		t.Fatalf("Name = %q, want first element", detail.Name)
	}
}

func TestFetchEventDetailEmptyEnvelope(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"Data":[]}`)
	gw := NewHTTPGateway(srv.URL, 0, nil)

	if _, err := gw.FetchEventDetail(context.Background(), "nope"); !errors.Is(err, ErrDetailUnavailable) {
		t.Fatalf("err = %v, want ErrDetailUnavailable", err)
	}
}

func TestTransportFailure(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	gw := NewHTTPGateway(url, 0, nil)
	if _, err := gw.FetchEventDetail(context.Background(), "e1"); !errors.Is(err, ErrDetailUnavailable) {
		t.Fatalf("err = %v, want ErrDetailUnavailable", err)
	}
}
