package host

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/justyntemme/gainknob/pkg/framework/process"
)

// BytesPerSample is the size of one float32 sample
const BytesPerSample = 4

// ErrInvalidStream is returned for unusable stream settings
var ErrInvalidStream = errors.New("invalid stream settings")

// BlockProcessor is the part of a plugin processor the stream drives
type BlockProcessor interface {
	ProcessBlock(buf *process.Buffer, numInputChannels, numOutputChannels int)
}

// Stream pulls blocks from a Source through a processor.
// Read is meant for an audio player goroutine and does not allocate.
type Stream struct {
	src       Source
	proc      BlockProcessor
	numIn     int
	numOut    int
	blockSize int

	buf *process.Buffer
	out []byte
	pos int

	muted  atomic.Bool
	blocks atomic.Uint64
}

// NewStream allocates every buffer the stream needs
func NewStream(src Source, proc BlockProcessor, numIn, numOut, blockSize int) (*Stream, error) {
	if src == nil || proc == nil {
		return nil, fmt.Errorf("%w: source and processor are required", ErrInvalidStream)
	}
	if numIn < 0 || numOut <= 0 || blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d in, %d out, block %d", ErrInvalidStream, numIn, numOut, blockSize)
	}

	channels := numOut
	if numIn > channels {
		channels = numIn
	}
	out := make([]byte, blockSize*numOut*BytesPerSample)
	return &Stream{
		src:       src,
		proc:      proc,
		numIn:     numIn,
		numOut:    numOut,
		blockSize: blockSize,
		buf:       process.NewBuffer(channels, blockSize),
		out:       out,
		pos:       len(out),
	}, nil
}

// SetMuted makes the stream output silence without stopping the source
func (s *Stream) SetMuted(muted bool) {
	s.muted.Store(muted)
}

// Muted reports whether the stream is muted
func (s *Stream) Muted() bool {
	return s.muted.Load()
}

// Blocks returns how many blocks have been processed
func (s *Stream) Blocks() uint64 {
	return s.blocks.Load()
}

// Channels returns the interleaved output channel count
func (s *Stream) Channels() int {
	return s.numOut
}

// Read fills p with interleaved samples. It never returns an error.
func (s *Stream) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if s.pos == len(s.out) {
			s.render()
		}
		c := copy(p[n:], s.out[s.pos:])
		s.pos += c
		n += c
	}
	return n, nil
}

// render processes one block into the interleaved byte buffer
func (s *Stream) render() {
	s.buf.Clear()
	s.src.Fill(s.buf, s.numIn)
	s.proc.ProcessBlock(s.buf, s.numIn, s.numOut)
	s.blocks.Add(1)

	muted := s.muted.Load()
	off := 0
	for i := 0; i < s.blockSize; i++ {
		for ch := 0; ch < s.numOut; ch++ {
			v := s.buf.Channels[ch][i]
			if muted {
				v = 0
			}
			binary.LittleEndian.PutUint32(s.out[off:], math.Float32bits(v))
			off += BytesPerSample
		}
	}
	s.pos = 0
}
