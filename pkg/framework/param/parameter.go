// Package param provides the host-automatable parameter model.
package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// Parameter represents a plugin parameter. The host reads and writes
// the raw value in its 0-1 automation range; Min/Max describe the plain
// display range the raw value maps onto.
type Parameter struct {
	ID   uint32
	Name string
	Unit string
	Min  float64
	Max  float64

	// DefaultValue is the initial raw value.
	DefaultValue float64

	// floor is the lowest raw value the parameter accepts. Writes
	// below it are clamped up, never rejected.
	floor float64

	// Atomic storage so a control-thread write never tears against
	// an audio-thread read.
	value uint64

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// GetValue returns the current raw value.
func (p *Parameter) GetValue() float64 {
	return math.Float64frombits(atomic.LoadUint64(&p.value))
}

// SetValue sets the raw value, clamping to the parameter's floor.
// There is no upper clamp; the host contract keeps values in 0-1.
func (p *Parameter) SetValue(value float64) {
	if value < p.floor {
		value = p.floor
	}

	atomic.StoreUint64(&p.value, math.Float64bits(value))
}

// GetPlainValue returns the current value mapped to the display range.
func (p *Parameter) GetPlainValue() float64 {
	return p.Denormalize(p.GetValue())
}

// FormatValue returns the display text for a raw value, without the
// unit label.
func (p *Parameter) FormatValue(raw float64) string {
	plain := p.Denormalize(raw)

	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}

	return fmt.Sprintf("%.2f", plain)
}

// ParseValue parses display text back to a raw value.
func (p *Parameter) ParseValue(str string) (float64, error) {
	if p.parseFunc != nil {
		plain, err := p.parseFunc(str)
		if err != nil {
			return 0, err
		}
		return p.Normalize(plain), nil
	}

	plain, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	return p.Normalize(plain), nil
}

// Normalize converts a plain display value to the raw 0-1 range.
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}

	normalized := (plain - p.Min) / (p.Max - p.Min)
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// Denormalize converts a raw value to the plain display range.
func (p *Parameter) Denormalize(raw float64) float64 {
	return p.Min + raw*(p.Max-p.Min)
}
