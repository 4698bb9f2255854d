// Package plugin defines the host-facing plugin contract and the
// factory hook the loader shim uses to obtain the concrete effect.
package plugin

import (
	"sync"

	"github.com/volfym/sillydelay/pkg/framework/bus"
	"github.com/volfym/sillydelay/pkg/framework/param"
	"github.com/volfym/sillydelay/pkg/framework/plugin"
	"github.com/volfym/sillydelay/pkg/framework/process"
)

// Plugin is the entry point the loader asks for
type Plugin interface {
	// GetInfo returns plugin metadata
	GetInfo() plugin.Info

	// CreateProcessor creates a new instance of the audio processor
	// at the host's initial sample rate
	CreateProcessor(sampleRate float64) Processor
}

// Processor handles the audio processing lifecycle
type Processor interface {
	// Initialize is called before processing starts
	Initialize(sampleRate float64, maxBlockSize int32) error

	// ProcessAudio processes one block in place. Zero allocations.
	ProcessAudio(ctx *process.Context)

	// SetSampleRate is called when the host changes sample rate
	SetSampleRate(rate float64)

	// GetParameters returns the parameter registry
	GetParameters() *param.Registry

	// GetBuses returns the bus configuration
	GetBuses() *bus.Configuration

	// SetActive is called when processing starts/stops
	SetActive(active bool) error

	// GetLatencySamples returns the plugin's latency in samples
	GetLatencySamples() int32

	// GetTailSamples returns the tail length in samples
	GetTailSamples() int32
}

// Controller is the host-facing parameter surface. Indices outside the
// parameter count degrade gracefully: set is a no-op, get returns 0,
// the string accessors return "".
type Controller interface {
	SetParameter(index int32, value float64)
	GetParameter(index int32) float64
	GetParameterName(index int32) string
	GetParameterText(index int32) string
	GetParameterLabel(index int32) string
}

var (
	registerMu sync.Mutex
	registered Plugin
)

// Register records the plugin the loader shim will expose to the host.
// Last registration wins; there is exactly one plugin per library.
func Register(p Plugin) {
	registerMu.Lock()
	defer registerMu.Unlock()
	registered = p
}

// Registered returns the registered plugin, nil if none
func Registered() Plugin {
	registerMu.Lock()
	defer registerMu.Unlock()
	return registered
}
