// Package gainknob is the single-parameter gain stage plugin.
package gainknob

import (
	"fmt"

	"github.com/justyntemme/gainknob/pkg/config"
	"github.com/justyntemme/gainknob/pkg/framework/param"
	"github.com/justyntemme/gainknob/pkg/framework/plugin"
)

// Plugin metadata
const (
	PluginID       = "com.jesseshafer.bestgainknob"
	PluginName     = "Best Gain Knob"
	PluginVersion  = "1.0.0"
	PluginVendor   = "Jesse Shafer"
	PluginCategory = "Fx"
)

// ParamGain is the ID of the only parameter
const ParamGain uint32 = 0

// Plugin composes the gain parameter, its processor and state handling
type Plugin struct {
	*plugin.Base
	Processor *GainProcessor
}

// New builds the plugin for the given gain range.
// A reversed range is swapped and the default clamped into it.
func New(cfg config.Gain) (*Plugin, error) {
	gainParam := param.GainParameter(ParamGain, "gain", cfg.Min, cfg.Max, cfg.Default).
		ShortName("Gain").
		Build()

	proc, err := NewGainProcessor(gainParam)
	if err != nil {
		return nil, fmt.Errorf("create processor: %w", err)
	}

	info := plugin.Info{
		ID:       PluginID,
		Name:     PluginName,
		Version:  PluginVersion,
		Vendor:   PluginVendor,
		Category: PluginCategory,
	}
	if err := info.ValidateUID(); err != nil {
		return nil, err
	}

	return &Plugin{
		Base:      plugin.NewBase(info, proc.Parameters()),
		Processor: proc,
	}, nil
}

// Gain returns the gain parameter
func (p *Plugin) Gain() *param.Parameter {
	return p.Processor.Gain()
}
