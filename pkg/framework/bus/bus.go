// Package bus describes the plugin's audio bus layout.
package bus

// Direction represents the bus direction
type Direction int32

const (
	// DirectionInput represents an input bus
	DirectionInput Direction = 0
	// DirectionOutput represents an output bus
	DirectionOutput Direction = 1
)

// Info contains one bus configuration
type Info struct {
	Direction    Direction
	ChannelCount int32
	Name         string
	IsActive     bool
}

// Configuration manages the plugin's audio buses
type Configuration struct {
	buses []Info
}

// NewStereoConfiguration creates the standard stereo in/out layout
func NewStereoConfiguration() *Configuration {
	return &Configuration{
		buses: []Info{
			{
				Direction:    DirectionInput,
				ChannelCount: 2,
				Name:         "Stereo In",
				IsActive:     true,
			},
			{
				Direction:    DirectionOutput,
				ChannelCount: 2,
				Name:         "Stereo Out",
				IsActive:     true,
			},
		},
	}
}

// GetBusCount returns the number of buses in the given direction
func (c *Configuration) GetBusCount(direction Direction) int32 {
	count := int32(0)
	for _, b := range c.buses {
		if b.Direction == direction {
			count++
		}
	}
	return count
}

// GetBusInfo returns the index-th bus in the given direction, nil if
// out of range
func (c *Configuration) GetBusInfo(direction Direction, index int32) *Info {
	busIndex := int32(0)
	for i := range c.buses {
		if c.buses[i].Direction == direction {
			if busIndex == index {
				return &c.buses[i]
			}
			busIndex++
		}
	}
	return nil
}

// InputChannels returns the total input channel count across buses
func (c *Configuration) InputChannels() int32 {
	return c.channels(DirectionInput)
}

// OutputChannels returns the total output channel count across buses
func (c *Configuration) OutputChannels() int32 {
	return c.channels(DirectionOutput)
}

func (c *Configuration) channels(direction Direction) int32 {
	total := int32(0)
	for _, b := range c.buses {
		if b.Direction == direction {
			total += b.ChannelCount
		}
	}
	return total
}
