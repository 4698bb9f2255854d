// Package process provides the block-processing context handed to the
// audio processor on every host callback.
package process

import (
	"github.com/volfym/sillydelay/pkg/framework/param"
)

// Context carries one block of host audio plus parameter access. The
// host owns the channel slices; the processor mutates Output in place.
// Nothing here allocates once the context is built.
type Context struct {
	Input      [][]float32
	Output     [][]float32
	SampleRate float64

	params *param.Registry
}

// NewContext creates a process context bound to a parameter registry
func NewContext(params *param.Registry) *Context {
	return &Context{params: params}
}

// Param returns the current raw value of a parameter
func (c *Context) Param(id uint32) float64 {
	if p := c.params.Get(id); p != nil {
		return p.GetValue()
	}
	return 0
}

// ParamPlain returns the current plain display value of a parameter
func (c *Context) ParamPlain(id uint32) float64 {
	if p := c.params.Get(id); p != nil {
		return p.GetPlainValue()
	}
	return 0
}

// NumSamples returns the block size
func (c *Context) NumSamples() int {
	if len(c.Input) > 0 && len(c.Input[0]) > 0 {
		return len(c.Input[0])
	}
	if len(c.Output) > 0 && len(c.Output[0]) > 0 {
		return len(c.Output[0])
	}
	return 0
}

// NumInputChannels returns the number of input channels
func (c *Context) NumInputChannels() int {
	return len(c.Input)
}

// NumOutputChannels returns the number of output channels
func (c *Context) NumOutputChannels() int {
	return len(c.Output)
}

// PassThrough copies input to output (for bypass, and for hosts that
// want the dry term present in the output before processing)
func (c *Context) PassThrough() {
	numChannels := c.NumInputChannels()
	if c.NumOutputChannels() < numChannels {
		numChannels = c.NumOutputChannels()
	}

	for ch := 0; ch < numChannels; ch++ {
		copy(c.Output[ch], c.Input[ch])
	}
}

// Clear zeros the output buffers
func (c *Context) Clear() {
	for ch := range c.Output {
		for i := range c.Output[ch] {
			c.Output[ch][i] = 0
		}
	}
}
