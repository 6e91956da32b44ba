// Package tui implements the terminal client using Bubble Tea.
//
// # Architecture
//
// The Model wraps a session.State and never decides transitions itself.
// Key presses become session events, session.Reduce produces the next state
// and a list of effects, and Update turns those effects into commands.
//
// # Async Command Pattern
//
// No blocking I/O in the UI. Gateway effects run as tea.Cmd values and come
// back as resultMsg:
//
//	RequestOTPEffect  → OTPRequested
//	VerifyOTPEffect   → OTPVerified
//	ListEventsEffect  → EventsLoaded
//	FetchDetailEffect → DetailLoaded
//
// Results are applied in arrival order. Responses for superseded requests
// are dropped by the reducer and only logged.
//
// # Key Files
//
//   - tui.go: Model definition and Update/View methods
//   - commands.go: effect to tea.Cmd translation
//   - render.go: per-screen rendering
//   - styles.go: Lipgloss styling
package tui
