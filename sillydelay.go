// Package sillydelay implements the SillyDelay stereo delay effect: a
// single delay line of paired samples with feedback and dry/wet mix.
package sillydelay

import (
	"github.com/volfym/sillydelay/pkg/dsp/delay"
	"github.com/volfym/sillydelay/pkg/dsp/mix"
	"github.com/volfym/sillydelay/pkg/framework/bus"
	"github.com/volfym/sillydelay/pkg/framework/debug"
	"github.com/volfym/sillydelay/pkg/framework/param"
	"github.com/volfym/sillydelay/pkg/framework/plugin"
	"github.com/volfym/sillydelay/pkg/framework/process"
	vstplugin "github.com/volfym/sillydelay/pkg/plugin"
)

// Parameter indices, fixed by the host automation contract
const (
	ParamDelayTime uint32 = 0
	ParamFeedback  uint32 = 1
	ParamDryWet    uint32 = 2
)

const (
	// maxDelaySeconds caps the delay at two seconds of audio. The
	// 2000 ms display range in the parameter table must stay in step
	// with it: both describe the same physical maximum.
	maxDelaySeconds = 2.0

	// feedbackHeadroom is subtracted from the feedback value before it
	// gains the loop, keeping the effective gain in [0, 0.9) so the
	// feedback path cannot run away. The parameter floor equals the
	// headroom, so minimum feedback is effectively zero.
	feedbackHeadroom = 0.1

	// minDelayTime keeps the delay line from ever sizing to zero.
	minDelayTime = 0.001
)

// SillyDelay is the loader-facing plugin entry
type SillyDelay struct{}

// GetInfo returns the plugin metadata reported to the host
func (SillyDelay) GetInfo() plugin.Info {
	return plugin.Info{
		ID:       "com.volfym.sillydelay",
		Name:     "SillyDelay",
		Version:  "1.0.0",
		Vendor:   "Volfym",
		Category: "Fx|Delay",
		UniqueID: 486893,
	}
}

// CreateProcessor creates the audio processor at the host's initial
// sample rate
func (SillyDelay) CreateProcessor(sampleRate float64) vstplugin.Processor {
	return New(sampleRate)
}

// Processor holds the parameter state and the live delay line
type Processor struct {
	params *param.Registry
	buses  *bus.Configuration

	line       *delay.StereoLine
	sampleRate float64
}

var (
	_ vstplugin.Plugin     = SillyDelay{}
	_ vstplugin.Processor  = (*Processor)(nil)
	_ vstplugin.Controller = (*Processor)(nil)
)

// New creates a processor with default parameters (delay time 0.001,
// feedback 0.1, dry/wet 1.0) and a freshly sized delay line.
func New(sampleRate float64) *Processor {
	p := &Processor{
		params:     param.NewRegistry(),
		buses:      bus.NewStereoConfiguration(),
		sampleRate: sampleRate,
	}

	p.params.Add(
		param.New(ParamDelayTime, "Delay Time").
			Range(0, 2000).
			Default(minDelayTime*2000).
			Floor(minDelayTime).
			Unit("ms").
			Formatter(param.TimeFormatter, param.TimeParser).
			Build(),

		param.New(ParamFeedback, "Feedback").
			Range(0, 100).
			Default(feedbackHeadroom*100).
			Floor(feedbackHeadroom).
			Unit("%").
			Formatter(param.PercentFormatter, param.PercentParser).
			Build(),

		param.New(ParamDryWet, "Dry/Wet").
			Range(0, 100).
			Default(100).
			Unit("%").
			Formatter(param.PercentFormatter, param.PercentParser).
			Build(),
	)

	p.reloadDelayLine()

	return p
}

// Initialize implements the Processor interface
func (p *Processor) Initialize(sampleRate float64, maxBlockSize int32) error {
	p.sampleRate = sampleRate
	p.reloadDelayLine()
	return nil
}

// SetSampleRate rebuilds the delay line for a new host sample rate
func (p *Processor) SetSampleRate(rate float64) {
	p.sampleRate = rate
	p.reloadDelayLine()
}

// SetParameter applies a host parameter write. A delay-time write
// rebuilds the delay line, so the change is audible as a reset to
// silence rather than a glide. Unknown indices are ignored.
func (p *Processor) SetParameter(index int32, value float64) {
	prm := p.params.GetByIndex(index)
	if prm == nil {
		return
	}

	prm.SetValue(value)

	if prm.ID == ParamDelayTime {
		p.reloadDelayLine()
	}
}

// GetParameter returns the raw parameter value, 0 for unknown indices
func (p *Processor) GetParameter(index int32) float64 {
	if prm := p.params.GetByIndex(index); prm != nil {
		return prm.GetValue()
	}
	return 0
}

// GetParameterName returns the display name, "" for unknown indices
func (p *Processor) GetParameterName(index int32) string {
	if prm := p.params.GetByIndex(index); prm != nil {
		return prm.Name
	}
	return ""
}

// GetParameterText returns the display value, "" for unknown indices
func (p *Processor) GetParameterText(index int32) string {
	if prm := p.params.GetByIndex(index); prm != nil {
		return prm.FormatValue(prm.GetValue())
	}
	return ""
}

// GetParameterLabel returns the unit label, "" for unknown indices
func (p *Processor) GetParameterLabel(index int32) string {
	if prm := p.params.GetByIndex(index); prm != nil {
		return prm.Unit
	}
	return ""
}

// GetParameters implements the Processor interface
func (p *Processor) GetParameters() *param.Registry {
	return p.params
}

// GetBuses implements the Processor interface
func (p *Processor) GetBuses() *bus.Configuration {
	return p.buses
}

// SetActive implements the Processor interface; deactivating clears
// the delay line so reactivation starts from silence
func (p *Processor) SetActive(active bool) error {
	if !active {
		p.line.Reset(delay.Frame{})
	}
	return nil
}

// GetLatencySamples implements the Processor interface
func (p *Processor) GetLatencySamples() int32 {
	return 0
}

// GetTailSamples reports the delay length so hosts keep rendering the
// echo tail after input stops
func (p *Processor) GetTailSamples() int32 {
	return int32(p.line.Capacity())
}

// ProcessAudio processes one block. For every frame the input plus
// feedback is pushed into the delay line, the frame popped out is fed
// back scaled by the effective feedback gain, and the popped frame is
// mixed into the output against whatever the host left there.
//
// The feedback accumulators are seeded to zero on every call, matching
// the original effect: feedback does not carry across block boundaries.
func (p *Processor) ProcessAudio(ctx *process.Context) {
	feedbackGain := float32(p.params.Get(ParamFeedback).GetValue() - feedbackHeadroom)
	wet := float32(p.params.Get(ParamDryWet).GetValue())

	inL, inR := ctx.Input[0], ctx.Input[1]
	outL, outR := ctx.Output[0], ctx.Output[1]

	var fbL, fbR float32

	n := ctx.NumSamples()
	for i := 0; i < n; i++ {
		popped := p.line.PushPop(delay.Frame{
			Left:  inL[i] + fbL,
			Right: inR[i] + fbR,
		})

		fbL = popped.Left * feedbackGain
		fbR = popped.Right * feedbackGain

		outL[i] = mix.DryWet(outL[i], popped.Left, wet)
		outR[i] = mix.DryWet(outR[i], popped.Right, wet)
	}
}

// reloadDelayLine sizes a fresh delay line from the current sample
// rate and delay time. Old contents are discarded.
func (p *Processor) reloadDelayLine() {
	delayTime := p.params.Get(ParamDelayTime).GetValue()
	capacity := int(p.sampleRate * delayTime * maxDelaySeconds)

	p.line = delay.NewStereo(capacity, delay.Frame{})

	debug.Debug("delay line rebuilt: %d frames at %.0f Hz", p.line.Capacity(), p.sampleRate)
}

func init() {
	vstplugin.Register(SillyDelay{})
}
