// Package plugin provides base processor functionality shared by plugins and hosts.
package plugin

import (
	"github.com/justyntemme/gainknob/pkg/framework/bus"
	"github.com/justyntemme/gainknob/pkg/framework/param"
	"github.com/justyntemme/gainknob/pkg/framework/process"
)

// Processor is what a host drives at block rate.
// ProcessBlock must not allocate, lock, log or panic.
type Processor interface {
	Prepare(sampleRate float64, maxBlockSize int32) error
	ProcessBlock(buf *process.Buffer, numInputChannels, numOutputChannels int)
	Release()
	Parameters() *param.Registry
	Buses() *bus.Configuration
	LatencySamples() int32
	TailSamples() int32
}

// BaseProcessor provides common functionality for audio processors
type BaseProcessor struct {
	params       *param.Registry
	buses        *bus.Configuration
	sampleRate   float64
	maxBlockSize int32
	prepared     bool

	// Optional callbacks for customization
	onPrepare func(sampleRate float64, maxBlockSize int32) error
	onRelease func()
}

// NewBaseProcessor creates a new base processor with the given bus configuration
func NewBaseProcessor(buses *bus.Configuration) *BaseProcessor {
	if buses == nil {
		buses = bus.NewStereoConfiguration() // Default to stereo
	}

	return &BaseProcessor{
		params: param.NewRegistry(),
		buses:  buses,
	}
}

// Prepare records the stream format. It can be called any number of times.
func (b *BaseProcessor) Prepare(sampleRate float64, maxBlockSize int32) error {
	b.sampleRate = sampleRate
	b.maxBlockSize = maxBlockSize
	b.prepared = true

	if b.onPrepare != nil {
		return b.onPrepare(sampleRate, maxBlockSize)
	}

	return nil
}

// Release ends playback. Prepare may be called again afterwards.
func (b *BaseProcessor) Release() {
	b.prepared = false
	if b.onRelease != nil {
		b.onRelease()
	}
}

// Parameters returns the parameter registry for adding parameters
func (b *BaseProcessor) Parameters() *param.Registry {
	return b.params
}

// Buses returns the bus layout
func (b *BaseProcessor) Buses() *bus.Configuration {
	return b.buses
}

// TotalInputChannels is the channel count of all active input buses
func (b *BaseProcessor) TotalInputChannels() int {
	return b.buses.TotalChannels(bus.DirectionInput)
}

// TotalOutputChannels is the channel count of all active output buses
func (b *BaseProcessor) TotalOutputChannels() int {
	return b.buses.TotalChannels(bus.DirectionOutput)
}

// LatencySamples - default no latency
func (b *BaseProcessor) LatencySamples() int32 {
	return 0
}

// TailSamples - default no tail
func (b *BaseProcessor) TailSamples() int32 {
	return 0
}

// SampleRate returns the current sample rate
func (b *BaseProcessor) SampleRate() float64 {
	return b.sampleRate
}

// MaxBlockSize returns the largest block the host announced
func (b *BaseProcessor) MaxBlockSize() int32 {
	return b.maxBlockSize
}

// Prepared reports whether Prepare ran since the last Release
func (b *BaseProcessor) Prepared() bool {
	return b.prepared
}

// OnPrepare sets a callback for Prepare
func (b *BaseProcessor) OnPrepare(fn func(sampleRate float64, maxBlockSize int32) error) {
	b.onPrepare = fn
}

// OnRelease sets a callback for Release
func (b *BaseProcessor) OnRelease(fn func()) {
	b.onRelease = fn
}
