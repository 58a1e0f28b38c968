package plugin

import (
	"bytes"

	"github.com/justyntemme/gainknob/pkg/framework/debug"
	"github.com/justyntemme/gainknob/pkg/framework/param"
	"github.com/justyntemme/gainknob/pkg/framework/state"
)

// Base provides core functionality for all plugins
type Base struct {
	Info   Info
	params *param.Registry
	state  *state.Manager
}

// NewBase creates a plugin base over an existing registry.
// A nil registry gets a fresh one.
func NewBase(info Info, params *param.Registry) *Base {
	if params == nil {
		params = param.NewRegistry()
	}
	b := &Base{
		Info:   info,
		params: params,
	}

	// Initialize state manager with parameter registry
	b.state = state.NewManager(b.params)

	return b
}

// Parameters returns the parameter registry for configuration
func (b *Base) Parameters() *param.Registry {
	return b.params
}

// GetState serializes every parameter value
func (b *Base) GetState() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.state.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SetState restores parameter values. It never fails: parameters that cannot
// be restored keep their default and the problem is logged.
func (b *Base) SetState(data []byte) {
	if err := b.state.Restore(bytes.NewReader(data)); err != nil {
		debug.Warn("%s: state restore: %v", b.Info.Name, err)
	}
}
