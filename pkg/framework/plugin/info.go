package plugin

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Info contains plugin metadata
type Info struct {
	ID       string // Unique plugin identifier (e.g., "com.example.myplugin")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Plugin category (e.g., "Fx", "Instrument")
}

// ErrEmptyID is returned when a plugin has no identifier
var ErrEmptyID = errors.New("plugin ID is empty")

// UID derives a stable 16-byte class ID from the string ID.
// It is a name-based (SHA-1) UUID in the URL namespace.
func (i Info) UID() [16]byte {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(i.ID))
}

// UIDString returns the UID in canonical UUID form
func (i Info) UIDString() string {
	return uuid.UUID(i.UID()).String()
}

// ValidateUID checks that a UID can be derived
func (i Info) ValidateUID() error {
	if strings.TrimSpace(i.ID) == "" {
		return ErrEmptyID
	}
	return nil
}
