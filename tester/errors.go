package tester

import "errors"

var (
	// ErrGate marks the concurrency gate being torn down while a unit was
	// still waiting on it. The channel-based gate is only discarded after the
	// counting join completes, so observing this is an invariant violation.
	ErrGate = errors.New("concurrency gate closed while waiting")

	// ErrUnknown is a reserved catch-all for callers that need to classify a
	// failure the engine itself never produces.
	ErrUnknown = errors.New("unknown probe failure")
)

// TransportError wraps the network-level cause of a failed probe. Refused
// connections, DNS failures and per-probe timeouts all surface here.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ConfigError reports a missing or invalid required option at construction
// time, before any proxy is loaded or probed.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return "tester: missing required option: " + e.Field
}
