package redis

import (
	"context"
)

// ProbeStatus is the outcome of a startup connection attempt
type ProbeStatus string

const (
	ProbeConnected   ProbeStatus = "connected"
	ProbeUnavailable ProbeStatus = "unavailable"
)

// ProbeResult is either Connected, carrying a live client, or Unavailable,
// carrying the reason the server could not be used.
type ProbeResult struct {
	Status ProbeStatus
	Client *Client
	Reason string
}

// Connected reports whether the probe produced a usable client.
func (r ProbeResult) Connected() bool {
	return r.Status == ProbeConnected && r.Client != nil
}

// Probe attempts a single connection to the configured server. It never
// returns an error: every failure becomes an Unavailable result so the caller
// can pick another cache backend.
func Probe(ctx context.Context, config *Config) ProbeResult {
	if !config.Configured() {
		return ProbeResult{Status: ProbeUnavailable, Reason: "redis not configured"}
	}

	client, err := NewClientContext(ctx, config)
	if err != nil {
		return ProbeResult{Status: ProbeUnavailable, Reason: err.Error()}
	}

	return ProbeResult{Status: ProbeConnected, Client: client}
}
