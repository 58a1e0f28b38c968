package bus

import (
	"testing"
)

func TestNewStereoConfiguration(t *testing.T) {
	config := NewStereoConfiguration()

	if got := config.GetBusCount(DirectionInput); got != 1 {
		t.Errorf("Expected 1 audio input bus, got %d", got)
	}
	if got := config.GetBusCount(DirectionOutput); got != 1 {
		t.Errorf("Expected 1 audio output bus, got %d", got)
	}

	inBus := config.GetBusInfo(DirectionInput, 0)
	if inBus == nil {
		t.Fatal("Expected input bus to exist")
	}
	if inBus.ChannelCount != 2 {
		t.Errorf("Expected 2 input channels, got %d", inBus.ChannelCount)
	}
	if inBus.Name != "Stereo In" {
		t.Errorf("Expected input name 'Stereo In', got %s", inBus.Name)
	}

	if config.GetBusInfo(DirectionOutput, 1) != nil {
		t.Error("Expected no second output bus")
	}
}

func TestTotalChannels(t *testing.T) {
	tests := []struct {
		name    string
		config  *Configuration
		wantIn  int
		wantOut int
	}{
		{"Stereo", NewStereoConfiguration(), 2, 2},
		{"Mono to stereo", NewMonoToStereo(), 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.TotalChannels(DirectionInput); got != tt.wantIn {
				t.Errorf("input channels = %d, want %d", got, tt.wantIn)
			}
			if got := tt.config.TotalChannels(DirectionOutput); got != tt.wantOut {
				t.Errorf("output channels = %d, want %d", got, tt.wantOut)
			}
		})
	}
}
