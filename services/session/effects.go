package session

import "fmt"

// Effect is work the reducer asks the runtime to perform. Gateway effects
// produce exactly one result Event when performed.
type Effect interface {
	isEffect()
}

type (
	RequestOTPEffect struct{ Mobile string }
	VerifyOTPEffect  struct {
		Mobile string
		Code   string
	}
	ListEventsEffect  struct{ Token uint64 }
	FetchDetailEffect struct {
		Token   uint64
		EventID string
	}
	// OpenURLEffect is an opaque platform side effect.
	OpenURLEffect struct{ URL string }
	// ReportEffect records a silent failure on the diagnostic channel.
	ReportEffect struct{ Diagnostic Diagnostic }
)

func (RequestOTPEffect) isEffect()  {}
func (VerifyOTPEffect) isEffect()   {}
func (ListEventsEffect) isEffect()  {}
func (FetchDetailEffect) isEffect() {}
func (OpenURLEffect) isEffect()     {}
func (ReportEffect) isEffect()      {}

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind int

const (
	// DiagnosticListUnavailable: the listing call failed; the previous list stays.
	DiagnosticListUnavailable DiagnosticKind = iota
	// DiagnosticDetailUnavailable: the detail call failed; the list stays.
	DiagnosticDetailUnavailable
	// DiagnosticStale: a result arrived for a superseded request and was dropped.
	DiagnosticStale
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticListUnavailable:
		return "list_unavailable"
	case DiagnosticDetailUnavailable:
		return "detail_unavailable"
	case DiagnosticStale:
		return "stale_response"
	}
	return "unknown"
}

// Diagnostic is the internal record of a failure the user never sees.
type Diagnostic struct {
	Kind    DiagnosticKind
	EventID string
	Token   uint64
	Err     error
}

func (d Diagnostic) String() string {
	msg := d.Kind.String()
	if d.EventID != "" {
		msg += " event=" + d.EventID
	}
	if d.Err != nil {
		msg += fmt.Sprintf(" err=%v", d.Err)
	}
	return msg
}
