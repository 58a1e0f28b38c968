package gainknob

import (
	"github.com/justyntemme/gainknob/pkg/dsp/gain"
	"github.com/justyntemme/gainknob/pkg/framework/bus"
	"github.com/justyntemme/gainknob/pkg/framework/param"
	"github.com/justyntemme/gainknob/pkg/framework/plugin"
	"github.com/justyntemme/gainknob/pkg/framework/process"
)

// GainProcessor applies the gain parameter to every input channel in place
type GainProcessor struct {
	*plugin.BaseProcessor

	// Held directly: the registry takes a lock, the audio path must not
	gain *param.Parameter
}

// NewGainProcessor creates a stereo gain processor driven by p.
// p is registered with the processor's registry.
func NewGainProcessor(p *param.Parameter) (*GainProcessor, error) {
	proc := &GainProcessor{
		BaseProcessor: plugin.NewBaseProcessor(bus.NewStereoConfiguration()),
		gain:          p,
	}
	if err := proc.Parameters().Add(p); err != nil {
		return nil, err
	}
	return proc, nil
}

// Gain returns the parameter driving the processor
func (p *GainProcessor) Gain() *param.Parameter {
	return p.gain
}

// Scalar returns the linear factor for the current gain value
func (p *GainProcessor) Scalar() float32 {
	return float32(gain.DbToLinear(p.gain.Get()))
}

// ProcessBlock multiplies channels [0, numIn) by the current gain and
// silences output channels [numIn, numOut) that have no input.
// Channel counts are clamped to the buffer. No allocations, locks or logging.
func (p *GainProcessor) ProcessBlock(buf *process.Buffer, numInputChannels, numOutputChannels int) {
	if buf == nil {
		return
	}
	numIn := buf.ClampChannels(numInputChannels)
	numOut := buf.ClampChannels(numOutputChannels)

	for ch := numIn; ch < numOut; ch++ {
		buf.ClearChannel(ch)
	}

	// One load and one conversion per block
	scalar := p.Scalar()
	for ch := 0; ch < numIn; ch++ {
		gain.ApplyBuffer(buf.Channels[ch], scalar)
	}
}

var _ plugin.Processor = (*GainProcessor)(nil)
