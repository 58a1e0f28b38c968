// Package state saves and restores parameter values as a binary blob.
package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/justyntemme/gainknob/pkg/framework/param"
)

// Magic identifies a gainknob state blob
const Magic = "GAINKB"

// Version is the current state format version
const Version uint32 = 1

// maxParams bounds the count field so a corrupt blob cannot drive a huge loop
const maxParams = 1 << 16

var (
	// ErrInvalidFormat is returned when the blob is not a gainknob state
	ErrInvalidFormat = errors.New("invalid state format")
	// ErrUnsupportedVersion is returned for blobs written by a newer version
	ErrUnsupportedVersion = errors.New("unsupported state version")
)

// Manager handles plugin state saving and loading
type Manager struct {
	version  uint32
	registry *param.Registry
}

// NewManager creates a new state manager
func NewManager(registry *param.Registry) *Manager {
	return &Manager{
		version:  Version,
		registry: registry,
	}
}

// Save writes the plugin state to a writer
func (m *Manager) Save(w io.Writer) error {
	if _, err := w.Write([]byte(Magic)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, m.version); err != nil {
		return fmt.Errorf("write version: %w", err)
	}

	params := m.registry.All()
	if err := binary.Write(w, binary.LittleEndian, int32(len(params))); err != nil {
		return fmt.Errorf("write parameter count: %w", err)
	}

	// Plain values, so a blob stays meaningful if a range changes
	for _, p := range params {
		if err := binary.Write(w, binary.LittleEndian, p.ID); err != nil {
			return fmt.Errorf("write parameter %d: %w", p.ID, err)
		}
		if err := binary.Write(w, binary.LittleEndian, p.Get()); err != nil {
			return fmt.Errorf("write parameter %d: %w", p.ID, err)
		}
	}

	// No custom data
	if err := binary.Write(w, binary.LittleEndian, uint32(0)); err != nil {
		return fmt.Errorf("write trailer: %w", err)
	}
	return nil
}

// Entry is one decoded parameter value
type Entry struct {
	ID    uint32
	Value float64
}

// Decode reads and validates a blob without touching any parameter
func (m *Manager) Decode(r io.Reader) ([]Entry, error) {
	header := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrInvalidFormat, err)
	}
	if string(header) != Magic {
		return nil, ErrInvalidFormat
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: read version: %v", ErrInvalidFormat, err)
	}
	if version == 0 || version > m.version {
		return nil, fmt.Errorf("%w: %d (supported %d)", ErrUnsupportedVersion, version, m.version)
	}

	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: read parameter count: %v", ErrInvalidFormat, err)
	}
	if count < 0 || count > maxParams {
		return nil, fmt.Errorf("%w: parameter count %d", ErrInvalidFormat, count)
	}

	entries := make([]Entry, 0, count)
	for i := int32(0); i < count; i++ {
		var e Entry
		if err := binary.Read(r, binary.LittleEndian, &e.ID); err != nil {
			return nil, fmt.Errorf("%w: read parameter %d: %v", ErrInvalidFormat, i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &e.Value); err != nil {
			return nil, fmt.Errorf("%w: read parameter %d: %v", ErrInvalidFormat, i, err)
		}
		entries = append(entries, e)
	}

	var hasCustom uint32
	if err := binary.Read(r, binary.LittleEndian, &hasCustom); err != nil {
		return nil, fmt.Errorf("%w: read trailer: %v", ErrInvalidFormat, err)
	}
	if hasCustom != 0 {
		return nil, fmt.Errorf("%w: unexpected custom data", ErrInvalidFormat)
	}

	return entries, nil
}

// Load strictly reads a blob. Values go through Set and are clamped.
// On error no parameter is modified.
func (m *Manager) Load(r io.Reader) error {
	entries, err := m.Decode(r)
	if err != nil {
		return err
	}
	for _, e := range entries {
		// Ignore unknown parameters for forward compatibility
		if p := m.registry.Get(e.ID); p != nil {
			p.Set(e.Value)
		}
	}
	return nil
}

// Restore sets every parameter exactly once: to its value from the blob when
// that value is finite and inside the parameter range, otherwise to its default.
// Readers on other goroutines see either the old value or the restored one.
// A malformed blob leaves all defaults; the error is returned for logging only.
func (m *Manager) Restore(r io.Reader) error {
	entries, err := m.Decode(r)
	if err != nil {
		m.registry.ResetAll()
		return err
	}

	// The last entry for an ID wins
	values := make(map[uint32]float64, len(entries))
	for _, e := range entries {
		values[e.ID] = e.Value
	}

	var rejected []uint32
	for _, p := range m.registry.All() {
		v, ok := values[p.ID]
		switch {
		case !ok:
			p.Reset()
		case math.IsNaN(v) || math.IsInf(v, 0) || !p.Contains(v):
			rejected = append(rejected, p.ID)
			p.Reset()
		default:
			p.Set(v)
		}
	}

	if len(rejected) > 0 {
		return &RejectedError{IDs: rejected}
	}
	return nil
}

// RejectedError lists parameters whose stored values fell back to default
type RejectedError struct {
	IDs []uint32
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("out of range values for parameters %v, using defaults", e.IDs)
}
