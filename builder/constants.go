// SPDX-License-Identifier: MIT
// Package: signaltl/builder
//
// constants.go — generator names and size bounds.

package builder

// Generator names used as error prefixes.
const (
	MethodPulse    = "Pulse"
	MethodChirp    = "Chirp"
	MethodSine     = "Sine"
	MethodRamp     = "Ramp"
	MethodFromFunc = "FromFunc"
	MethodOHLC     = "OHLC"
)

// MinSamples is the smallest signal a generator produces. A single sample
// is a valid, degenerate signal.
const MinSamples = 1

// OHLC channel names.
const (
	ChannelOpen  = "open"
	ChannelHigh  = "high"
	ChannelLow   = "low"
	ChannelClose = "close"
)
