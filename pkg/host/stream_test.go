package host

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/justyntemme/gainknob/pkg/config"
	"github.com/justyntemme/gainknob/pkg/dsp"
	"github.com/justyntemme/gainknob/pkg/framework/process"
	"github.com/justyntemme/gainknob/pkg/gainknob"
)

// constSource writes the same value into every channel
type constSource float32

func (c constSource) Fill(buf *process.Buffer, numChannels int) {
	for ch := 0; ch < buf.ClampChannels(numChannels); ch++ {
		for i := range buf.Channels[ch] {
			buf.Channels[ch][i] = float32(c)
		}
	}
}

func newProcessor(t testing.TB, db float64) *gainknob.GainProcessor {
	t.Helper()
	p, err := gainknob.New(config.Default().Gain)
	if err != nil {
		t.Fatal(err)
	}
	p.Gain().Set(db)
	return p.Processor
}

func samples(t *testing.T, data []byte) []float32 {
	t.Helper()
	out := make([]float32, len(data)/BytesPerSample)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*BytesPerSample:]))
	}
	return out
}

func TestStreamInterleaves(t *testing.T) {
	s, err := NewStream(constSource(0.5), newProcessor(t, -20), 1, 2, 8)
	if err != nil {
		t.Fatal(err)
	}

	data := make([]byte, 8*2*BytesPerSample)
	if _, err := io.ReadFull(s, data); err != nil {
		t.Fatal(err)
	}

	for i, v := range samples(t, data) {
		want := float32(0)
		if i%2 == 0 {
			want = 0.05
		}
		if math.Abs(float64(v-want)) > 1e-6 {
			t.Fatalf("sample %d = %v, want %v", i, v, want)
		}
	}
	if s.Blocks() != 1 {
		t.Errorf("blocks = %d, want 1", s.Blocks())
	}
}

func TestStreamOddReads(t *testing.T) {
	s, err := NewStream(constSource(1), newProcessor(t, 0), 2, 2, 4)
	if err != nil {
		t.Fatal(err)
	}

	// Reads that do not line up with samples or blocks
	var all []byte
	chunk := make([]byte, 7)
	for len(all) < 3*4*2*BytesPerSample {
		n, err := s.Read(chunk)
		if err != nil || n != len(chunk) {
			t.Fatalf("Read = %d, %v", n, err)
		}
		all = append(all, chunk...)
	}

	for i, v := range samples(t, all[:3*4*2*BytesPerSample]) {
		if v != 1 {
			t.Fatalf("sample %d = %v, want 1", i, v)
		}
	}
}

func TestStreamMute(t *testing.T) {
	s, err := NewStream(constSource(1), newProcessor(t, 0), 2, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	s.SetMuted(true)
	if !s.Muted() {
		t.Fatal("expected muted stream")
	}

	data := make([]byte, 4*2*BytesPerSample)
	s.Read(data)
	for i, v := range samples(t, data) {
		if v != 0 {
			t.Fatalf("muted sample %d = %v", i, v)
		}
	}
}

func TestStreamReadDoesNotAllocate(t *testing.T) {
	s, err := NewStream(NewToneSource(48000, 440, -18), newProcessor(t, -6), 2, 2, 512)
	if err != nil {
		t.Fatal(err)
	}
	p := make([]byte, 4096)

	allocs := testing.AllocsPerRun(50, func() {
		s.Read(p)
	})
	if allocs != 0 {
		t.Errorf("Read allocated %v times per run", allocs)
	}
}

func TestNewStreamValidation(t *testing.T) {
	proc := newProcessor(t, 0)

	tests := []struct {
		name      string
		src       Source
		proc      BlockProcessor
		numIn     int
		numOut    int
		blockSize int
	}{
		{"No source", nil, proc, 2, 2, 64},
		{"No processor", Silence{}, nil, 2, 2, 64},
		{"No outputs", Silence{}, proc, 2, 0, 64},
		{"Negative inputs", Silence{}, proc, -1, 2, 64},
		{"Zero block", Silence{}, proc, 2, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStream(tt.src, tt.proc, tt.numIn, tt.numOut, tt.blockSize)
			if !errors.Is(err, ErrInvalidStream) {
				t.Errorf("NewStream error = %v, want ErrInvalidStream", err)
			}
		})
	}
}

func TestToneSource(t *testing.T) {
	tone := NewToneSource(48000, 1000, -6)
	buf := process.NewBuffer(2, 480)
	tone.Fill(buf, 2)

	for i, v := range buf.Channels[0] {
		if buf.Channels[1][i] != v {
			t.Fatalf("channels differ at %d", i)
		}
	}
	peak := dsp.Peak(buf.Channels[0])
	want := float32(math.Pow(10, -6.0/20))
	if math.Abs(float64(peak-want)) > 0.01 {
		t.Errorf("peak = %v, want ~%v", peak, want)
	}

	// Phase continues into the next block
	last := buf.Channels[0][479]
	tone.Fill(buf, 2)
	if math.Abs(float64(buf.Channels[0][0]-last)) > 0.2 {
		t.Errorf("discontinuity between blocks: %v -> %v", last, buf.Channels[0][0])
	}

	tone.Fill(process.NewBuffer(0, 0), 2)
}

func TestSilence(t *testing.T) {
	buf := process.NewBuffer(2, 16)
	constSource(1).Fill(buf, 2)
	Silence{}.Fill(buf, 2)
	for ch := range buf.Channels {
		for _, v := range buf.Channels[ch] {
			if v != 0 {
				t.Fatal("Silence left samples")
			}
		}
	}
}
