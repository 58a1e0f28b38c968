package plugin

import (
	"testing"

	"github.com/google/uuid"
)

func TestUIDGeneration(t *testing.T) {
	tests := []struct {
		name     string
		pluginID string
	}{
		{"Gain knob", "com.jesseshafer.bestgainknob"},
		{"New plugin", "com.mycompany.newplugin"},
		{"Another plugin", "com.mycompany.anotherplugin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &Info{ID: tt.pluginID}

			uid1 := info.UID()
			uid2 := info.UID()
			if uid1 != uid2 {
				t.Errorf("UID generation is not deterministic for %s", tt.pluginID)
			}

			u := uuid.UUID(uid1)
			if u.Version() != 5 {
				t.Errorf("UID version = %d, want 5", u.Version())
			}
			if u.Variant() != uuid.RFC4122 {
				t.Errorf("UID variant = %v, want RFC4122", u.Variant())
			}

			if err := info.ValidateUID(); err != nil {
				t.Errorf("UID validation failed for %s: %v", tt.pluginID, err)
			}
		})
	}
}

func TestUIDUniqueness(t *testing.T) {
	plugins := []string{
		"com.company1.plugin1",
		"com.company1.plugin2",
		"com.company2.plugin1",
		"com.different.name",
	}

	uids := make(map[[16]byte]string)

	for _, pluginID := range plugins {
		info := &Info{ID: pluginID}
		uid := info.UID()

		if existingID, exists := uids[uid]; exists {
			t.Errorf("UID collision between %s and %s", pluginID, existingID)
		}

		uids[uid] = pluginID
	}
}

func TestUIDValidation(t *testing.T) {
	tests := []struct {
		name    string
		info    Info
		wantErr bool
	}{
		{"Valid plugin ID", Info{ID: "com.example.plugin"}, false},
		{"Empty plugin ID", Info{ID: ""}, true},
		{"Blank plugin ID", Info{ID: "   "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.ValidateUID()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUID() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUIDString(t *testing.T) {
	info := Info{ID: "com.example.plugin"}
	want := uuid.NewSHA1(uuid.NameSpaceURL, []byte("com.example.plugin")).String()
	if got := info.UIDString(); got != want {
		t.Errorf("UIDString() = %s, want %s", got, want)
	}
}
