// Package bus describes the fixed audio bus layout a processor exposes to its host.
package bus

import "github.com/justyntemme/gainknob/pkg/dsp"

// Direction represents the bus direction
type Direction int32

const (
	// DirectionInput represents input bus
	DirectionInput Direction = 0
	// DirectionOutput represents output bus
	DirectionOutput Direction = 1
)

// Type represents the bus type
type Type int32

const (
	// TypeMain represents main bus
	TypeMain Type = 0
	// TypeAux represents auxiliary bus
	TypeAux Type = 1
)

// Info contains bus configuration
type Info struct {
	Direction    Direction
	ChannelCount int32
	Name         string
	BusType      Type
	IsActive     bool
}

// Configuration manages audio buses
type Configuration struct {
	audioBuses []Info
}

// NewStereoConfiguration creates a standard stereo I/O configuration
func NewStereoConfiguration() *Configuration {
	return &Configuration{
		audioBuses: []Info{
			{Direction: DirectionInput, ChannelCount: dsp.Stereo, Name: "Stereo In", BusType: TypeMain, IsActive: true},
			{Direction: DirectionOutput, ChannelCount: dsp.Stereo, Name: "Stereo Out", BusType: TypeMain, IsActive: true},
		},
	}
}

// NewMonoToStereo creates a mono in, stereo out configuration
func NewMonoToStereo() *Configuration {
	return &Configuration{
		audioBuses: []Info{
			{Direction: DirectionInput, ChannelCount: dsp.Mono, Name: "Mono In", BusType: TypeMain, IsActive: true},
			{Direction: DirectionOutput, ChannelCount: dsp.Stereo, Name: "Stereo Out", BusType: TypeMain, IsActive: true},
		},
	}
}

// GetBusCount returns the number of buses for a direction
func (c *Configuration) GetBusCount(direction Direction) int32 {
	count := int32(0)
	for _, bus := range c.audioBuses {
		if bus.Direction == direction {
			count++
		}
	}
	return count
}

// GetBusInfo returns information about a specific bus
func (c *Configuration) GetBusInfo(direction Direction, index int32) *Info {
	busIndex := int32(0)
	for i := range c.audioBuses {
		if c.audioBuses[i].Direction == direction {
			if busIndex == index {
				return &c.audioBuses[i]
			}
			busIndex++
		}
	}
	return nil
}

// TotalChannels sums the channel counts of the active buses in a direction
func (c *Configuration) TotalChannels(direction Direction) int {
	total := 0
	for _, bus := range c.audioBuses {
		if bus.Direction == direction && bus.IsActive {
			total += int(bus.ChannelCount)
		}
	}
	return total
}
